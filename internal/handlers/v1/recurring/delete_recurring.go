package recurring

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/spaces-server/internal/handlers/v1/response"
	"github.com/carson-networks/spaces-server/internal/service"
)

type recurringDeleter interface {
	DeleteRecurringTransaction(ctx context.Context, spaceID uuid.UUID, id string) error
}

// DeleteRecurringHandler handles DELETE /api/spaces/{spaceId}/recurring-transactions/{id}.
// Deleting a schedule that does not exist still succeeds.
type DeleteRecurringHandler struct {
	RecurringService recurringDeleter
}

func NewDeleteRecurringHandler(svc recurringDeleter) *DeleteRecurringHandler {
	return &DeleteRecurringHandler{RecurringService: svc}
}

func (h *DeleteRecurringHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-recurring-transaction",
		Method:        http.MethodDelete,
		Path:          "/api/spaces/{spaceId}/recurring-transactions/{id}",
		Summary:       "Delete recurring transaction",
		Tags:          []string{"Recurring transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteRecurringHandler) handle(ctx context.Context, input *RecurringPath) (*struct{}, error) {
	spaceID, err := response.ParseUUID("spaceId", input.SpaceID)
	if err != nil {
		return nil, err
	}
	id, err := service.ParseScheduleID(input.ID)
	if err != nil {
		return nil, response.FromError(err)
	}

	if err := h.RecurringService.DeleteRecurringTransaction(ctx, spaceID, id); err != nil {
		return nil, response.FromError(err)
	}
	return nil, nil
}
