package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/spaces-server/internal/handlers/v1/response"
	"github.com/carson-networks/spaces-server/internal/logging"
	"github.com/carson-networks/spaces-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	SpacePath
	Page      int    `query:"page" minimum:"1" default:"1" doc:"1-based page number"`
	Limit     int    `query:"limit" minimum:"1" maximum:"100" default:"10" doc:"Page size"`
	Type      string `query:"type" enum:"income,expense"`
	Category  string `query:"category" doc:"Exact category match"`
	StartDate string `query:"start_date" format:"date" doc:"Inclusive lower bound on date"`
	EndDate   string `query:"end_date" format:"date" doc:"Inclusive upper bound on date"`
	Search    string `query:"search" doc:"Case-insensitive substring of description or category"`
}

type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

type Stats struct {
	TotalIncome      float64 `json:"total_income"`
	TotalExpenses    float64 `json:"total_expenses"`
	NetAmount        float64 `json:"net_amount"`
	TransactionCount int     `json:"transaction_count"`
}

type CategoryStat struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

type MonthlyStat struct {
	Month    string  `json:"month" doc:"Three letter month name"`
	Year     int     `json:"year"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// ListTransactionsResponseBody carries one page plus statistics over the whole space.
type ListTransactionsResponseBody struct {
	Success       bool           `json:"success"`
	Data          []Transaction  `json:"data" doc:"Page of transactions, newest first"`
	Pagination    Pagination     `json:"pagination"`
	Stats         Stats          `json:"stats"`
	CategoryStats []CategoryStat `json:"categoryStats"`
	MonthlyStats  []MonthlyStat  `json:"monthlyStats"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

type transactionLister interface {
	ListTransactions(ctx context.Context, spaceID uuid.UUID, filter service.TransactionListFilter) (*service.TransactionList, error)
}

// ListTransactionsHandler handles GET /api/spaces/{spaceId}/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/api/spaces/{spaceId}/transactions",
		Summary:     "List transactions",
		Description: "Returns a filtered page of transactions with statistics computed over every transaction of the space.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput turns the query into a service filter. Empty
// query values mean the filter is not applied.
func parseListTransactionsInput(input *ListTransactionsInput) (uuid.UUID, service.TransactionListFilter, error) {
	spaceID, err := response.ParseUUID("spaceId", input.SpaceID)
	if err != nil {
		return uuid.Nil, service.TransactionListFilter{}, err
	}

	filter := service.TransactionListFilter{Page: input.Page, Limit: input.Limit}
	if input.Type != "" {
		txType, err := service.ParseTransactionType(input.Type)
		if err != nil {
			return uuid.Nil, filter, err
		}
		filter.Type = &txType
	}
	if input.Category != "" {
		filter.Category = &input.Category
	}
	if input.StartDate != "" {
		d, err := service.ParseDate("start_date", input.StartDate)
		if err != nil {
			return uuid.Nil, filter, err
		}
		filter.StartDate = &d
	}
	if input.EndDate != "" {
		d, err := service.ParseDate("end_date", input.EndDate)
		if err != nil {
			return uuid.Nil, filter, err
		}
		filter.EndDate = &d
	}
	if input.Search != "" {
		filter.Search = &input.Search
	}
	return spaceID, filter, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	spaceID, filter, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, response.FromError(err)
	}

	stopTimer := logData.AddTiming("listTransactionsMs")
	list, err := h.TransactionService.ListTransactions(ctx, spaceID, filter)
	stopTimer()
	if err != nil {
		return nil, response.FromError(err)
	}
	logData.AddData("transactionCount", len(list.Transactions))

	resp := ListTransactionsResponseBody{
		Success:       true,
		Data:          make([]Transaction, len(list.Transactions)),
		CategoryStats: make([]CategoryStat, len(list.CategoryStats)),
		MonthlyStats:  make([]MonthlyStat, len(list.MonthlyStats)),
		Pagination: Pagination{
			Page:       list.Pagination.Page,
			Limit:      list.Pagination.Limit,
			Total:      list.Pagination.Total,
			TotalPages: list.Pagination.TotalPages,
			HasNext:    list.Pagination.HasNext,
			HasPrev:    list.Pagination.HasPrev,
		},
		Stats: Stats{
			TotalIncome:      list.Stats.TotalIncome.InexactFloat64(),
			TotalExpenses:    list.Stats.TotalExpenses.InexactFloat64(),
			NetAmount:        list.Stats.NetAmount.InexactFloat64(),
			TransactionCount: list.Stats.TransactionCount,
		},
	}
	for i, tx := range list.Transactions {
		resp.Data[i] = FromService(tx)
	}
	for i, c := range list.CategoryStats {
		resp.CategoryStats[i] = CategoryStat{Category: c.Category, Total: c.Total.InexactFloat64(), Count: c.Count}
	}
	for i, m := range list.MonthlyStats {
		resp.MonthlyStats[i] = MonthlyStat{
			Month:    m.Month,
			Year:     m.Year,
			Income:   m.Income.InexactFloat64(),
			Expenses: m.Expenses.InexactFloat64(),
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
