package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/spaces-server/internal/handlers/v1/response"
	"github.com/carson-networks/spaces-server/internal/service"
)

func strPtr(s string) *string { return &s }

// -- parseCreateTransactionInput unit tests --

func TestParseCreateTransactionInput_ValidInput(t *testing.T) {
	spaceID := uuid.Must(uuid.NewV4())

	input := &CreateTransactionInput{
		SpacePath: SpacePath{SpaceID: spaceID.String()},
		Body: CreateTransactionBody{
			Type:                "expense",
			Amount:              123.45,
			Category:            "Rent",
			Date:                "2024-01-31",
			IsRecurring:         true,
			RecurrenceFrequency: strPtr("monthly"),
		},
	}

	parsedSpaceID, in, err := parseCreateTransactionInput(input)
	require.NoError(t, err)
	assert.Equal(t, spaceID, parsedSpaceID)
	assert.Equal(t, service.TransactionTypeExpense, in.Type)
	assert.True(t, in.Amount.Equal(decimal.RequireFromString("123.45")))
	assert.Equal(t, civil.Date{Year: 2024, Month: time.January, Day: 31}, in.Date)
	require.NotNil(t, in.RecurrenceFrequency)
	assert.Equal(t, service.FrequencyMonthly, *in.RecurrenceFrequency)
}

func TestParseCreateTransactionInput_UnknownFrequency(t *testing.T) {
	input := &CreateTransactionInput{
		SpacePath: SpacePath{SpaceID: uuid.Must(uuid.NewV4()).String()},
		Body: CreateTransactionBody{
			Type:                "expense",
			Amount:              1,
			Category:            "Rent",
			Date:                "2024-01-31",
			RecurrenceFrequency: strPtr("daily"),
		},
	}

	_, _, err := parseCreateTransactionInput(input)

	var validationErr *service.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

// -- HTTP tests --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	mockSvc := new(mockTransactionService)
	spaceID := uuid.Must(uuid.NewV4())
	created := sampleTransaction(spaceID)

	mockSvc.On("CreateTransaction", mock.Anything, spaceID, mock.MatchedBy(func(in service.TransactionInput) bool {
		return in.Category == "Groceries" && in.Amount.Equal(decimal.RequireFromString("42.5")) && !in.IsRecurring
	})).Return(created, nil)

	resp := newTestAPI(t, mockSvc).Post("/api/spaces/"+spaceID.String()+"/transactions", map[string]any{
		"type":     "expense",
		"amount":   42.5,
		"category": "Groceries",
		"date":     "2024-01-15",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body response.Envelope[Transaction]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, created.ID.String(), body.Data.ID)
	assert.Equal(t, 42.5, body.Data.Amount)
	assert.Equal(t, "2024-01-15", body.Data.Date)
	assert.Nil(t, body.Data.RecurrenceFrequency)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_MissingRequiredField(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Post("/api/spaces/"+uuid.Must(uuid.NewV4()).String()+"/transactions", map[string]any{
		"type":   "expense",
		"amount": 10,
		"date":   "2024-01-15",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), `"success":false`)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_NonPositiveAmount(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Post("/api/spaces/"+uuid.Must(uuid.NewV4()).String()+"/transactions", map[string]any{
		"type":     "income",
		"amount":   0,
		"category": "Salary",
		"date":     "2024-01-15",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_InvalidType(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Post("/api/spaces/"+uuid.Must(uuid.NewV4()).String()+"/transactions", map[string]any{
		"type":     "transfer",
		"amount":   5,
		"category": "Misc",
		"date":     "2024-01-15",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_InvalidDate(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Post("/api/spaces/"+uuid.Must(uuid.NewV4()).String()+"/transactions", map[string]any{
		"type":     "expense",
		"amount":   5,
		"category": "Misc",
		"date":     "15/01/2024",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_InvalidSpaceID(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Post("/api/spaces/not-a-uuid/transactions", map[string]any{
		"type":     "expense",
		"amount":   5,
		"category": "Misc",
		"date":     "2024-01-15",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &service.StorageError{Op: "create transaction", Err: errors.New("database unavailable")})

	resp := newTestAPI(t, mockSvc).Post("/api/spaces/"+uuid.Must(uuid.NewV4()).String()+"/transactions", map[string]any{
		"type":     "expense",
		"amount":   5,
		"category": "Misc",
		"date":     "2024-01-15",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), `"error":"Internal server error"`)
	assert.NotContains(t, resp.Body.String(), "database unavailable")
	mockSvc.AssertExpectations(t)
}
