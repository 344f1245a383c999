package service

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/spaces-server/internal/events"
	"github.com/carson-networks/spaces-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Space       *SpaceService
	Transaction *TransactionService
	Budget      *BudgetService
	Recurring   *RecurringService
}

// NewService creates a new Service with the given storage and event publisher.
func NewService(store *storage.Storage, publisher events.Publisher, logger *logrus.Logger) *Service {
	recurring := NewRecurringService(store, publisher, logger)
	return &Service{
		Space:       NewSpaceService(store),
		Transaction: NewTransactionService(store, recurring, publisher, logger),
		Budget:      NewBudgetService(store),
		Recurring:   recurring,
	}
}
