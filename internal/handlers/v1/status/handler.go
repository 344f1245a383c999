package status

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/carson-networks/spaces-server/internal/logging"
)

// Body is the health check response.
type Body struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type Handler struct {
	now func() time.Time
}

func NewHandler() Handler {
	return Handler{now: time.Now}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(Body{
		Status:    "OK",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}
