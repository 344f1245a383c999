package recurring

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/spaces-server/internal/handlers/v1/response"
	"github.com/carson-networks/spaces-server/internal/service"
)

type ListRecurringInput struct {
	SpacePath
	Source string `query:"source" enum:"dedicated,regular_transaction" doc:"Only schedules from this source"`
}

type ListRecurringOutput struct {
	Body response.Envelope[[]RecurringTransaction]
}

type recurringLister interface {
	ListRecurringTransactions(ctx context.Context, spaceID uuid.UUID, source *service.RecurringSource) ([]service.RecurringTransaction, error)
}

// ListRecurringHandler handles GET /api/spaces/{spaceId}/recurring-transactions.
type ListRecurringHandler struct {
	RecurringService recurringLister
}

func NewListRecurringHandler(svc recurringLister) *ListRecurringHandler {
	return &ListRecurringHandler{RecurringService: svc}
}

func (h *ListRecurringHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-recurring-transactions",
		Method:      http.MethodGet,
		Path:        "/api/spaces/{spaceId}/recurring-transactions",
		Summary:     "List recurring transactions",
		Description: "Returns the space's schedules, newest first. Without source the list includes both dedicated schedules and those mirrored from recurring transactions (regular-<transactionId>).",
		Tags:        []string{"Recurring transactions"},
	}, h.handle)
}

func (h *ListRecurringHandler) handle(ctx context.Context, input *ListRecurringInput) (*ListRecurringOutput, error) {
	spaceID, err := response.ParseUUID("spaceId", input.SpaceID)
	if err != nil {
		return nil, err
	}

	var source *service.RecurringSource
	if input.Source != "" {
		s, err := service.ParseRecurringSource(input.Source)
		if err != nil {
			return nil, response.FromError(err)
		}
		source = &s
	}

	list, err := h.RecurringService.ListRecurringTransactions(ctx, spaceID, source)
	if err != nil {
		return nil, response.FromError(err)
	}

	data := make([]RecurringTransaction, len(list))
	for i, rt := range list {
		data[i] = fromService(rt)
	}
	return &ListRecurringOutput{Body: response.OK(data)}, nil
}
