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

// UpdateTransactionBody lists the fields that may change. Absent fields keep their value.
type UpdateTransactionBody struct {
	Type                *string  `json:"type,omitempty" enum:"income,expense"`
	Amount              *float64 `json:"amount,omitempty" exclusiveMinimum:"0"`
	Category            *string  `json:"category,omitempty" minLength:"1"`
	Subcategory         *string  `json:"subcategory,omitempty"`
	Description         *string  `json:"description,omitempty"`
	Date                *string  `json:"date,omitempty" format:"date"`
	IsRecurring         *bool    `json:"is_recurring,omitempty"`
	RecurrenceFrequency *string  `json:"recurrence_frequency,omitempty" enum:"weekly,monthly,yearly"`
}

type UpdateTransactionInput struct {
	TransactionPath
	Body UpdateTransactionBody
}

type UpdateTransactionOutput struct {
	Body response.Envelope[Transaction]
}

type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, spaceID, id uuid.UUID, patch service.TransactionPatch) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PUT /api/spaces/{spaceId}/transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/api/spaces/{spaceId}/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Applies a partial update and keeps the paired recurring schedule in step.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseUpdateTransactionInput(input *UpdateTransactionInput) (uuid.UUID, uuid.UUID, service.TransactionPatch, error) {
	var patch service.TransactionPatch

	spaceID, err := response.ParseUUID("spaceId", input.SpaceID)
	if err != nil {
		return uuid.Nil, uuid.Nil, patch, err
	}
	id, err := response.ParseUUID("id", input.ID)
	if err != nil {
		return uuid.Nil, uuid.Nil, patch, err
	}

	body := input.Body
	if body.Type != nil {
		txType, err := service.ParseTransactionType(*body.Type)
		if err != nil {
			return uuid.Nil, uuid.Nil, patch, err
		}
		patch.Type = &txType
	}
	if body.Amount != nil {
		amount := decimal.NewFromFloat(*body.Amount)
		patch.Amount = &amount
	}
	if body.Date != nil {
		d, err := service.ParseDate("date", *body.Date)
		if err != nil {
			return uuid.Nil, uuid.Nil, patch, err
		}
		patch.Date = &d
	}
	if body.RecurrenceFrequency != nil {
		frequency, err := service.ParseFrequency(*body.RecurrenceFrequency)
		if err != nil {
			return uuid.Nil, uuid.Nil, patch, err
		}
		patch.RecurrenceFrequency = &frequency
	}
	patch.Category = body.Category
	patch.Subcategory = body.Subcategory
	patch.Description = body.Description
	patch.IsRecurring = body.IsRecurring

	return spaceID, id, patch, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	spaceID, id, patch, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, response.FromError(err)
	}

	tx, err := h.TransactionService.UpdateTransaction(ctx, spaceID, id, patch)
	if err != nil {
		return nil, response.FromError(err)
	}
	return &UpdateTransactionOutput{Body: response.OK(FromService(*tx))}, nil
}
