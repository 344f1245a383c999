package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/spaces-server/internal/handlers/v1/response"
)

type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, spaceID, id uuid.UUID) error
}

// DeleteTransactionHandler handles DELETE /api/spaces/{spaceId}/transactions/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/api/spaces/{spaceId}/transactions/{id}",
		Summary:       "Delete transaction",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *TransactionPath) (*struct{}, error) {
	spaceID, err := response.ParseUUID("spaceId", input.SpaceID)
	if err != nil {
		return nil, err
	}
	id, err := response.ParseUUID("id", input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.TransactionService.DeleteTransaction(ctx, spaceID, id); err != nil {
		return nil, response.FromError(err)
	}
	return nil, nil
}
