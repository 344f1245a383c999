package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/spaces-server/internal/service"
)

const internalErrorMessage = "Internal server error"

// Envelope wraps every successful payload as {success:true, data:...}.
type Envelope[T any] struct {
	Success bool `json:"success" doc:"Always true for successful responses"`
	Data    T    `json:"data"`
}

// OK builds a successful envelope around data.
func OK[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: data}
}

// ErrorModel is the body of every failed response.
type ErrorModel struct {
	status  int
	Success bool     `json:"success" doc:"Always false for errors"`
	Message string   `json:"error" doc:"Human readable error"`
	Details []string `json:"details,omitempty" doc:"Individual validation failures"`
}

func (e *ErrorModel) Error() string {
	return e.Message
}

func (e *ErrorModel) GetStatus() int {
	return e.status
}

var (
	devMode     atomic.Bool
	installOnce sync.Once
)

// Install replaces huma's error constructor so that every failure, including
// huma's own request validation, renders as the error envelope. In development
// mode 500 responses carry the underlying message.
func Install(development bool) {
	devMode.Store(development)
	installOnce.Do(func() {
		huma.NewError = newError
	})
}

func newError(status int, msg string, errs ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
	}

	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err == nil {
			continue
		}
		details = append(details, err.Error())
	}

	if status >= http.StatusInternalServerError {
		if !devMode.Load() {
			return &ErrorModel{status: status, Message: internalErrorMessage}
		}
		if len(details) > 0 {
			msg = msg + ": " + strings.Join(details, "; ")
		}
		return &ErrorModel{status: status, Message: msg}
	}

	model := &ErrorModel{status: status, Message: msg}
	if status == http.StatusBadRequest && len(details) > 0 {
		model.Details = details
		if msg == "validation failed" {
			model.Message = "Validation failed: " + details[0]
		}
	}
	return model
}

// FromError maps a service error onto its HTTP status. Errors that already
// carry a status pass through unchanged.
func FromError(err error) error {
	var (
		statusErr     huma.StatusError
		validationErr *service.ValidationError
	)
	switch {
	case errors.As(err, &statusErr):
		return statusErr
	case errors.As(err, &validationErr):
		return huma.NewError(http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, internalErrorMessage, err)
	}
}

// ParseUUID converts a path value that huma has already checked for UUID format.
func ParseUUID(field, value string) (uuid.UUID, error) {
	id, err := uuid.FromString(value)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "Invalid "+field)
	}
	return id, nil
}

// WriteError writes the error envelope outside of huma, for plain handlers and middleware.
func WriteError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorModel{Message: message})
}

// NotFound answers routes no handler claimed.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, http.StatusNotFound, "Route not found")
}
