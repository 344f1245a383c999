package service

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/spaces-server/internal/events"
	"github.com/carson-networks/spaces-server/internal/storage"
	"github.com/carson-networks/spaces-server/internal/storage/sqlconfig"
)

// RecurringService owns recurring schedules: their CRUD, the shadow records
// mirrored from recurring transactions, and due processing.
type RecurringService struct {
	storage   *storage.Storage
	publisher events.Publisher
	logger    *logrus.Logger
	now       func() time.Time
}

func NewRecurringService(store *storage.Storage, publisher events.Publisher, logger *logrus.Logger) *RecurringService {
	return &RecurringService{
		storage:   store,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *RecurringService) today() civil.Date {
	return civil.DateOf(s.now())
}

// ListRecurringTransactions returns schedules newest-created first, optionally
// narrowed to one source.
func (s *RecurringService) ListRecurringTransactions(ctx context.Context, spaceID uuid.UUID, source *RecurringSource) ([]RecurringTransaction, error) {
	if source != nil {
		if _, err := ParseRecurringSource(string(*source)); err != nil {
			return nil, err
		}
	}
	rows, err := s.storage.RecurringTransactions.List(ctx, spaceID, source)
	if err != nil {
		return nil, &StorageError{Op: "list recurring transactions", Err: err}
	}
	result := make([]RecurringTransaction, len(rows))
	for i, row := range rows {
		result[i] = recurringFromStorage(row)
	}
	return result, nil
}

func (s *RecurringService) GetRecurringTransaction(ctx context.Context, spaceID uuid.UUID, id string) (*RecurringTransaction, error) {
	row, err := s.storage.RecurringTransactions.FindByID(ctx, spaceID, id)
	if err != nil {
		return nil, translate("get recurring transaction", "Recurring transaction", err)
	}
	rt := recurringFromStorage(row)
	return &rt, nil
}

// CreateRecurringTransaction stores a dedicated schedule whose first due date
// is one period after the start date.
func (s *RecurringService) CreateRecurringTransaction(ctx context.Context, spaceID uuid.UUID, in RecurringTransactionInput) (*RecurringTransaction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, &StorageError{Op: "generate recurring transaction id", Err: err}
	}
	return s.insert(ctx, id.String(), spaceID, in, RecurringSourceDedicated)
}

// CreateFromRegularTransaction stores the shadow schedule of a recurring transaction.
func (s *RecurringService) CreateFromRegularTransaction(ctx context.Context, transactionID, spaceID uuid.UUID, in RecurringTransactionInput) (*RecurringTransaction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.insert(ctx, ShadowID(transactionID), spaceID, in, RecurringSourceRegularTransaction)
}

func (s *RecurringService) insert(ctx context.Context, id string, spaceID uuid.UUID, in RecurringTransactionInput, source RecurringSource) (*RecurringTransaction, error) {
	row, err := s.storage.RecurringTransactions.Insert(ctx, &sqlconfig.RecurringTransactionCreate{
		ID:          id,
		SpaceID:     spaceID,
		Name:        in.Name,
		Type:        in.Type,
		Amount:      in.Amount,
		Category:    in.Category,
		Subcategory: in.Subcategory,
		Description: in.Description,
		Frequency:   in.Frequency,
		StartDate:   in.StartDate,
		NextDueDate: ComputeNextDue(in.StartDate, in.Frequency, nil),
		IsActive:    true,
		Source:      source,
	})
	if err != nil {
		return nil, &StorageError{Op: "create recurring transaction", Err: err}
	}
	rt := recurringFromStorage(row)
	return &rt, nil
}

// UpdateRecurringTransaction applies patch. When the start date or frequency
// changes, the next due date is recomputed from the stored last processed date,
// falling back to the effective start date.
func (s *RecurringService) UpdateRecurringTransaction(ctx context.Context, spaceID uuid.UUID, id string, patch RecurringTransactionPatch) (*RecurringTransaction, error) {
	if err := patch.validate(); err != nil {
		return nil, err
	}

	current, err := s.storage.RecurringTransactions.FindByID(ctx, spaceID, id)
	if err != nil {
		return nil, translate("get recurring transaction", "Recurring transaction", err)
	}

	update := &sqlconfig.RecurringTransactionUpdate{
		Name:        patch.Name,
		Type:        patch.Type,
		Amount:      patch.Amount,
		Category:    patch.Category,
		Subcategory: patch.Subcategory,
		Description: patch.Description,
		Frequency:   patch.Frequency,
		StartDate:   patch.StartDate,
		IsActive:    patch.IsActive,
		UpdatedAt:   s.now().UTC(),
	}

	if patch.StartDate != nil || patch.Frequency != nil {
		startDate := current.StartDate
		if patch.StartDate != nil {
			startDate = *patch.StartDate
		}
		frequency := current.Frequency
		if patch.Frequency != nil {
			frequency = *patch.Frequency
		}
		next := ComputeNextDue(startDate, frequency, current.LastProcessed)
		update.NextDueDate = &next
	}

	row, err := s.storage.RecurringTransactions.Update(ctx, spaceID, id, update)
	if err != nil {
		return nil, translate("update recurring transaction", "Recurring transaction", err)
	}
	rt := recurringFromStorage(row)
	return &rt, nil
}

// DeleteRecurringTransaction succeeds whether or not the schedule exists.
func (s *RecurringService) DeleteRecurringTransaction(ctx context.Context, spaceID uuid.UUID, id string) error {
	if err := s.storage.RecurringTransactions.Delete(ctx, spaceID, id); err != nil {
		return &StorageError{Op: "delete recurring transaction", Err: err}
	}
	return nil
}

// DueBefore lists active schedules due on or before asOf, which defaults to today.
func (s *RecurringService) DueBefore(ctx context.Context, spaceID uuid.UUID, asOf *civil.Date) ([]RecurringTransaction, error) {
	date := s.today()
	if asOf != nil {
		date = *asOf
	}
	rows, err := s.storage.RecurringTransactions.ListDue(ctx, spaceID, date)
	if err != nil {
		return nil, &StorageError{Op: "list due recurring transactions", Err: err}
	}
	result := make([]RecurringTransaction, len(rows))
	for i, row := range rows {
		result[i] = recurringFromStorage(row)
	}
	return result, nil
}

// Advance marks one cycle as processed on lastProcessed and moves the next due
// date one period past it.
func (s *RecurringService) Advance(ctx context.Context, id string, lastProcessed civil.Date, frequency Frequency) (civil.Date, error) {
	next := ComputeNextDue(lastProcessed, frequency, nil)
	if err := s.storage.RecurringTransactions.Advance(ctx, id, lastProcessed, next); err != nil {
		return civil.Date{}, &StorageError{Op: "advance recurring transaction", Err: err}
	}
	return next, nil
}
