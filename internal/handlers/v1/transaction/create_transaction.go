package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/spaces-server/internal/handlers/v1/response"
	"github.com/carson-networks/spaces-server/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Type                string  `json:"type" enum:"income,expense"`
	Amount              float64 `json:"amount" exclusiveMinimum:"0" doc:"Positive amount"`
	Category            string  `json:"category" minLength:"1"`
	Subcategory         *string `json:"subcategory,omitempty"`
	Description         *string `json:"description,omitempty"`
	Date                string  `json:"date" format:"date" doc:"YYYY-MM-DD"`
	IsRecurring         bool    `json:"is_recurring,omitempty"`
	RecurrenceFrequency *string `json:"recurrence_frequency,omitempty" enum:"weekly,monthly,yearly"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	SpacePath
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body response.Envelope[Transaction]
}

type transactionCreator interface {
	CreateTransaction(ctx context.Context, spaceID uuid.UUID, in service.TransactionInput) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /api/spaces/{spaceId}/transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/api/spaces/{spaceId}/transactions",
		Summary:       "Create transaction",
		Description:   "Creates a transaction. A recurring transaction with a frequency also gets a paired recurring schedule.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput converts the validated body into service input.
func parseCreateTransactionInput(input *CreateTransactionInput) (uuid.UUID, service.TransactionInput, error) {
	spaceID, err := response.ParseUUID("spaceId", input.SpaceID)
	if err != nil {
		return uuid.Nil, service.TransactionInput{}, err
	}
	txType, err := service.ParseTransactionType(input.Body.Type)
	if err != nil {
		return uuid.Nil, service.TransactionInput{}, err
	}
	date, err := service.ParseDate("date", input.Body.Date)
	if err != nil {
		return uuid.Nil, service.TransactionInput{}, err
	}

	in := service.TransactionInput{
		Type:        txType,
		Amount:      decimal.NewFromFloat(input.Body.Amount),
		Category:    input.Body.Category,
		Subcategory: input.Body.Subcategory,
		Description: input.Body.Description,
		Date:        date,
		IsRecurring: input.Body.IsRecurring,
	}
	if input.Body.RecurrenceFrequency != nil {
		frequency, err := service.ParseFrequency(*input.Body.RecurrenceFrequency)
		if err != nil {
			return uuid.Nil, service.TransactionInput{}, err
		}
		in.RecurrenceFrequency = &frequency
	}
	return spaceID, in, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	spaceID, in, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, response.FromError(err)
	}

	tx, err := h.TransactionService.CreateTransaction(ctx, spaceID, in)
	if err != nil {
		return nil, response.FromError(err)
	}
	return &CreateTransactionOutput{Body: response.OK(FromService(*tx))}, nil
}
