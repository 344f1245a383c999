package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/spaces-server/internal/storage"
)

// BudgetService manages the single monthly budget of each space.
type BudgetService struct {
	storage *storage.Storage
}

func NewBudgetService(store *storage.Storage) *BudgetService {
	return &BudgetService{storage: store}
}

func (s *BudgetService) GetBudget(ctx context.Context, spaceID uuid.UUID) (*Budget, error) {
	row, err := s.storage.Budgets.FindBySpaceID(ctx, spaceID)
	if err != nil {
		return nil, translate("get budget", "Budget", err)
	}
	return budgetFromStorage(row), nil
}

// SetBudget creates the budget or replaces the existing amount.
func (s *BudgetService) SetBudget(ctx context.Context, spaceID uuid.UUID, monthlyBudget decimal.Decimal) (*Budget, error) {
	if err := validateAmount("monthly_budget", monthlyBudget); err != nil {
		return nil, err
	}
	row, err := s.storage.Budgets.Upsert(ctx, spaceID, monthlyBudget)
	if err != nil {
		return nil, &StorageError{Op: "set budget", Err: err}
	}
	return budgetFromStorage(row), nil
}

func (s *BudgetService) DeleteBudget(ctx context.Context, spaceID uuid.UUID) error {
	if err := s.storage.Budgets.Delete(ctx, spaceID); err != nil {
		return &StorageError{Op: "delete budget", Err: err}
	}
	return nil
}
