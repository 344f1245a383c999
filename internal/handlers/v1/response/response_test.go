package response

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/spaces-server/internal/service"
)

func statusOf(t *testing.T, err error) (int, *ErrorModel) {
	t.Helper()
	var model *ErrorModel
	require.ErrorAs(t, err, &model)
	return model.GetStatus(), model
}

func TestFromError(t *testing.T) {
	Install(false)

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "not found", err: &service.NotFoundError{Resource: "Budget"}, status: http.StatusNotFound, message: "Budget not found"},
		{name: "validation", err: &service.ValidationError{Field: "amount", Message: "must be a positive number"}, status: http.StatusBadRequest, message: "amount: must be a positive number"},
		{name: "storage", err: &service.StorageError{Op: "get budget", Err: errors.New("dial tcp")}, status: http.StatusInternalServerError, message: "Internal server error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, model := statusOf(t, FromError(tc.err))
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.message, model.Message)
			assert.False(t, model.Success)
		})
	}
}

func TestFromError_DevelopmentShowsDetail(t *testing.T) {
	Install(true)
	defer Install(false)

	_, model := statusOf(t, FromError(&service.StorageError{Op: "get budget", Err: errors.New("dial tcp")}))

	assert.Equal(t, "Internal server error: get budget: dial tcp", model.Message)
}

type echoInput struct {
	ID string `path:"id" format:"uuid"`
}

func TestInstall_ValidationBecomesBadRequest(t *testing.T) {
	Install(false)

	_, api := humatest.New(t)
	huma.Register(api, huma.Operation{
		OperationID: "echo",
		Method:      http.MethodGet,
		Path:        "/echo/{id}",
	}, func(ctx context.Context, input *echoInput) (*struct{}, error) {
		return nil, nil
	})

	resp := api.Get("/echo/not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), `"success":false`)
	assert.Contains(t, resp.Body.String(), `"error":"Validation failed`)
}

func TestParseUUID(t *testing.T) {
	Install(false)

	_, err := ParseUUID("spaceId", "nope")
	status, model := statusOf(t, err)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid spaceId", model.Message)
}
