package recurring

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/spaces-server/internal/handlers/v1/response"
	"github.com/carson-networks/spaces-server/internal/service"
)

type CreateRecurringBody struct {
	Name        string  `json:"name" minLength:"1"`
	Type        string  `json:"type" enum:"income,expense"`
	Amount      float64 `json:"amount" exclusiveMinimum:"0"`
	Category    string  `json:"category" minLength:"1"`
	Subcategory *string `json:"subcategory,omitempty"`
	Description *string `json:"description,omitempty"`
	Frequency   string  `json:"frequency" enum:"weekly,monthly,yearly"`
	StartDate   string  `json:"start_date" format:"date" doc:"YYYY-MM-DD"`
}

type CreateRecurringInput struct {
	SpacePath
	Body CreateRecurringBody
}

type RecurringOutput struct {
	Body response.Envelope[RecurringTransaction]
}

type recurringCreator interface {
	CreateRecurringTransaction(ctx context.Context, spaceID uuid.UUID, in service.RecurringTransactionInput) (*service.RecurringTransaction, error)
}

// CreateRecurringHandler handles POST /api/spaces/{spaceId}/recurring-transactions.
type CreateRecurringHandler struct {
	RecurringService recurringCreator
}

func NewCreateRecurringHandler(svc recurringCreator) *CreateRecurringHandler {
	return &CreateRecurringHandler{RecurringService: svc}
}

func (h *CreateRecurringHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-recurring-transaction",
		Method:        http.MethodPost,
		Path:          "/api/spaces/{spaceId}/recurring-transactions",
		Summary:       "Create recurring transaction",
		Description:   "Creates a schedule whose first due date is one period after its start date.",
		Tags:          []string{"Recurring transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateRecurringInput(input *CreateRecurringInput) (uuid.UUID, service.RecurringTransactionInput, error) {
	spaceID, err := response.ParseUUID("spaceId", input.SpaceID)
	if err != nil {
		return uuid.Nil, service.RecurringTransactionInput{}, err
	}
	txType, err := service.ParseTransactionType(input.Body.Type)
	if err != nil {
		return uuid.Nil, service.RecurringTransactionInput{}, err
	}
	frequency, err := service.ParseFrequency(input.Body.Frequency)
	if err != nil {
		return uuid.Nil, service.RecurringTransactionInput{}, err
	}
	startDate, err := service.ParseDate("start_date", input.Body.StartDate)
	if err != nil {
		return uuid.Nil, service.RecurringTransactionInput{}, err
	}

	return spaceID, service.RecurringTransactionInput{
		Name:        input.Body.Name,
		Type:        txType,
		Amount:      decimal.NewFromFloat(input.Body.Amount),
		Category:    input.Body.Category,
		Subcategory: input.Body.Subcategory,
		Description: input.Body.Description,
		Frequency:   frequency,
		StartDate:   startDate,
	}, nil
}

func (h *CreateRecurringHandler) handle(ctx context.Context, input *CreateRecurringInput) (*RecurringOutput, error) {
	spaceID, in, err := parseCreateRecurringInput(input)
	if err != nil {
		return nil, response.FromError(err)
	}

	rt, err := h.RecurringService.CreateRecurringTransaction(ctx, spaceID, in)
	if err != nil {
		return nil, response.FromError(err)
	}
	return &RecurringOutput{Body: response.OK(fromService(*rt))}, nil
}
