package recurring

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/spaces-server/internal/handlers/v1/response"
	"github.com/carson-networks/spaces-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/spaces-server/internal/logging"
	"github.com/carson-networks/spaces-server/internal/operator/actions"
)

type ProcessedPair struct {
	RecurringTransaction RecurringTransaction    `json:"recurringTransaction" doc:"Schedule after it was advanced"`
	CreatedTransaction   transaction.Transaction `json:"createdTransaction"`
}

type ProcessResult struct {
	Processed    int             `json:"processed"`
	Transactions []ProcessedPair `json:"transactions"`
}

type ProcessRecurringOutput struct {
	Body response.Envelope[ProcessResult]
}

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// ProcessRecurringHandler handles POST /api/spaces/{spaceId}/recurring-transactions/process.
// Batches go through the operator so that one space is never processed twice at once.
type ProcessRecurringHandler struct {
	Operator  actionProcessor
	Processor actions.DueProcessor
}

func NewProcessRecurringHandler(op actionProcessor, processor actions.DueProcessor) *ProcessRecurringHandler {
	return &ProcessRecurringHandler{Operator: op, Processor: processor}
}

func (h *ProcessRecurringHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "process-recurring-transactions",
		Method:      http.MethodPost,
		Path:        "/api/spaces/{spaceId}/recurring-transactions/process",
		Summary:     "Process due recurring transactions",
		Description: "Creates one transaction for every active schedule due today or earlier and advances each schedule. Failing schedules are skipped.",
		Tags:        []string{"Recurring transactions"},
	}, h.handle)
}

func (h *ProcessRecurringHandler) handle(ctx context.Context, input *SpacePath) (*ProcessRecurringOutput, error) {
	spaceID, err := response.ParseUUID("spaceId", input.SpaceID)
	if err != nil {
		return nil, err
	}

	action := &actions.ProcessDue{SpaceID: spaceID, Processor: h.Processor}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, response.FromError(err)
	}

	result := ProcessResult{
		Processed:    action.Result.Processed,
		Transactions: make([]ProcessedPair, len(action.Result.Transactions)),
	}
	for i, p := range action.Result.Transactions {
		result.Transactions[i] = ProcessedPair{
			RecurringTransaction: fromService(p.RecurringTransaction),
			CreatedTransaction:   transaction.FromService(p.CreatedTransaction),
		}
	}
	logging.GetLogData(ctx).AddData("processed", result.Processed)

	return &ProcessRecurringOutput{Body: response.OK(result)}, nil
}
