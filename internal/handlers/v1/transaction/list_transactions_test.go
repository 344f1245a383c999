package transaction

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/spaces-server/internal/service"
)

func TestParseListTransactionsInput_Filters(t *testing.T) {
	spaceID := uuid.Must(uuid.NewV4())

	_, filter, err := parseListTransactionsInput(&ListTransactionsInput{
		SpacePath: SpacePath{SpaceID: spaceID.String()},
		Page:      3,
		Limit:     20,
		Type:      "income",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
		Search:    "coffee",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, 20, filter.Limit)
	require.NotNil(t, filter.Type)
	assert.Equal(t, service.TransactionTypeIncome, *filter.Type)
	assert.Equal(t, "2024-01-01", filter.StartDate.String())
	assert.Equal(t, "2024-01-31", filter.EndDate.String())
	assert.Equal(t, "coffee", *filter.Search)
	assert.Nil(t, filter.Category)
}

func TestHTTP_ListTransactions(t *testing.T) {
	mockSvc := new(mockTransactionService)
	spaceID := uuid.Must(uuid.NewV4())
	tx := sampleTransaction(spaceID)

	mockSvc.On("ListTransactions", mock.Anything, spaceID, mock.MatchedBy(func(f service.TransactionListFilter) bool {
		return f.Page == 2 && f.Limit == 10 && f.Category != nil && *f.Category == "Groceries"
	})).Return(&service.TransactionList{
		Transactions: []service.Transaction{*tx},
		Pagination:   service.NewPagination(2, 10, 25),
		Stats: service.TransactionStats{
			TotalIncome:      decimal.NewFromInt(100),
			TotalExpenses:    decimal.RequireFromString("42.5"),
			NetAmount:        decimal.RequireFromString("57.5"),
			TransactionCount: 25,
		},
		CategoryStats: []service.CategoryStat{{Category: "Groceries", Total: decimal.RequireFromString("42.5"), Count: 1}},
		MonthlyStats:  []service.MonthlyStat{{Month: "Jan", Year: 2024, Income: decimal.NewFromInt(100), Expenses: decimal.RequireFromString("42.5")}},
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/api/spaces/" + spaceID.String() + "/transactions?page=2&limit=10&category=Groceries")

	require.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Data, 1)
	assert.Equal(t, Pagination{Page: 2, Limit: 10, Total: 25, TotalPages: 3, HasNext: true, HasPrev: true}, body.Pagination)
	assert.Equal(t, 57.5, body.Stats.NetAmount)
	assert.Equal(t, []CategoryStat{{Category: "Groceries", Total: 42.5, Count: 1}}, body.CategoryStats)
	assert.Equal(t, "Jan", body.MonthlyStats[0].Month)
}

func TestHTTP_ListTransactions_Defaults(t *testing.T) {
	mockSvc := new(mockTransactionService)
	spaceID := uuid.Must(uuid.NewV4())

	mockSvc.On("ListTransactions", mock.Anything, spaceID, mock.MatchedBy(func(f service.TransactionListFilter) bool {
		return f.Page == 1 && f.Limit == 10 && f.Type == nil && f.Search == nil
	})).Return(&service.TransactionList{
		Transactions:  []service.Transaction{},
		Pagination:    service.NewPagination(1, 10, 0),
		CategoryStats: []service.CategoryStat{},
		MonthlyStats:  []service.MonthlyStat{},
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/api/spaces/" + spaceID.String() + "/transactions")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"data":[]`)
	assert.Contains(t, resp.Body.String(), `"categoryStats":[]`)
}

func TestHTTP_ListTransactions_LimitOutOfRange(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Get("/api/spaces/" + uuid.Must(uuid.NewV4()).String() + "/transactions?limit=500")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "ListTransactions")
}

func TestHTTP_ListTransactions_BadDateFilter(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Get("/api/spaces/" + uuid.Must(uuid.NewV4()).String() + "/transactions?start_date=yesterday")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "ListTransactions")
}
