package events

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	TypeTransactionCreated = "transaction.created"
	TypeRecurringProcessed = "recurring.processed"
)

// Event is the envelope published for every domain change.
type Event struct {
	Type       string      `json:"type"`
	SpaceID    string      `json:"space_id"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

type TransactionCreated struct {
	TransactionID string `json:"transaction_id"`
	Type          string `json:"type"`
	Amount        string `json:"amount"`
	Category      string `json:"category"`
	Date          string `json:"date"`
	IsRecurring   bool   `json:"is_recurring"`
}

type RecurringProcessed struct {
	RecurringID   string `json:"recurring_id"`
	TransactionID string `json:"transaction_id"`
	DueDate       string `json:"due_date"`
	NextDueDate   string `json:"next_due_date"`
}

// Publisher delivers events. Implementations must be safe for concurrent use.
//
//go:generate mockery --name Publisher --output mock_Publisher.go
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

func (NopPublisher) Close() error { return nil }

// NewPublisher connects to the broker at url, or returns a NopPublisher when url is empty.
func NewPublisher(url, exchange string, logger *logrus.Logger) (Publisher, error) {
	if url == "" {
		logger.Info("Events.NewPublisher.disabled")
		return NopPublisher{}, nil
	}
	return NewAMQPPublisher(url, exchange, logger)
}
