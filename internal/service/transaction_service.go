package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/spaces-server/internal/events"
	"github.com/carson-networks/spaces-server/internal/storage"
	"github.com/carson-networks/spaces-server/internal/storage/sqlconfig"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage   *storage.Storage
	recurring *RecurringService
	publisher events.Publisher
	logger    *logrus.Logger
}

func NewTransactionService(store *storage.Storage, recurring *RecurringService, publisher events.Publisher, logger *logrus.Logger) *TransactionService {
	return &TransactionService{
		storage:   store,
		recurring: recurring,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateTransaction stores the transaction and, when it is flagged recurring
// with a frequency, pairs it with a shadow schedule. Shadow failures are logged only.
func (s *TransactionService) CreateTransaction(ctx context.Context, spaceID uuid.UUID, in TransactionInput) (*Transaction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	row, err := s.storage.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		SpaceID:             spaceID,
		Type:                in.Type,
		Amount:              in.Amount,
		Category:            in.Category,
		Subcategory:         in.Subcategory,
		Description:         in.Description,
		Date:                in.Date,
		IsRecurring:         in.IsRecurring,
		RecurrenceFrequency: in.RecurrenceFrequency,
	})
	if err != nil {
		return nil, &StorageError{Op: "create transaction", Err: err}
	}
	created := transactionFromStorage(row)

	if created.IsRecurring && created.RecurrenceFrequency != nil {
		s.recurring.SyncCreatedTransaction(ctx, created)
	}
	s.publishCreated(ctx, created)

	return &created, nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, spaceID, id uuid.UUID) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, spaceID, id)
	if err != nil {
		return nil, translate("get transaction", "Transaction", err)
	}
	tx := transactionFromStorage(row)
	return &tx, nil
}

// ListTransactions returns the requested page together with statistics over
// every transaction of the space. The page and the full set are read concurrently.
func (s *TransactionService) ListTransactions(ctx context.Context, spaceID uuid.UUID, filter TransactionListFilter) (*TransactionList, error) {
	if err := filter.normalize(); err != nil {
		return nil, err
	}

	storageFilter := &sqlconfig.TransactionFilter{
		Type:      filter.Type,
		Category:  filter.Category,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		Search:    filter.Search,
		Limit:     filter.Limit,
		Offset:    (filter.Page - 1) * filter.Limit,
	}

	var (
		pageRows []*sqlconfig.Transaction
		total    int
		allRows  []*sqlconfig.Transaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pageRows, total, err = s.storage.Transactions.List(gctx, spaceID, storageFilter)
		if err != nil {
			return &StorageError{Op: "list transactions", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		allRows, err = s.storage.Transactions.ListAll(gctx, spaceID)
		if err != nil {
			return &StorageError{Op: "list transactions for statistics", Err: err}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	page := make([]Transaction, len(pageRows))
	for i, row := range pageRows {
		page[i] = transactionFromStorage(row)
	}
	all := make([]Transaction, len(allRows))
	for i, row := range allRows {
		all[i] = transactionFromStorage(row)
	}

	return &TransactionList{
		Transactions:  page,
		Pagination:    NewPagination(filter.Page, filter.Limit, total),
		Stats:         ComputeStats(all),
		CategoryStats: SpendingByCategory(all),
		MonthlyStats:  ComputeMonthlyStats(all),
	}, nil
}

// UpdateTransaction applies patch and then reconciles the shadow schedule with
// the transaction's new recurring state.
func (s *TransactionService) UpdateTransaction(ctx context.Context, spaceID, id uuid.UUID, patch TransactionPatch) (*Transaction, error) {
	if err := patch.validate(); err != nil {
		return nil, err
	}

	currentRow, err := s.storage.Transactions.FindByID(ctx, spaceID, id)
	if err != nil {
		return nil, translate("get transaction", "Transaction", err)
	}
	previous := transactionFromStorage(currentRow)

	row, err := s.storage.Transactions.Update(ctx, spaceID, id, &sqlconfig.TransactionUpdate{
		Type:                patch.Type,
		Amount:              patch.Amount,
		Category:            patch.Category,
		Subcategory:         patch.Subcategory,
		Description:         patch.Description,
		Date:                patch.Date,
		IsRecurring:         patch.IsRecurring,
		RecurrenceFrequency: patch.RecurrenceFrequency,
		UpdatedAt:           time.Now().UTC(),
	})
	if err != nil {
		return nil, translate("update transaction", "Transaction", err)
	}
	updated := transactionFromStorage(row)

	s.recurring.SyncUpdatedTransaction(ctx, previous, updated)

	return &updated, nil
}

// DeleteTransaction removes the transaction and any shadow schedule derived from it.
func (s *TransactionService) DeleteTransaction(ctx context.Context, spaceID, id uuid.UUID) error {
	if err := s.storage.Transactions.Delete(ctx, spaceID, id); err != nil {
		return translate("delete transaction", "Transaction", err)
	}
	s.recurring.RemoveTransactionShadow(ctx, spaceID, id)
	return nil
}

func (s *TransactionService) publishCreated(ctx context.Context, tx Transaction) {
	err := s.publisher.Publish(ctx, events.Event{
		Type:       events.TypeTransactionCreated,
		SpaceID:    tx.SpaceID.String(),
		OccurredAt: time.Now().UTC(),
		Payload: events.TransactionCreated{
			TransactionID: tx.ID.String(),
			Type:          string(tx.Type),
			Amount:        tx.Amount.String(),
			Category:      tx.Category,
			Date:          tx.Date.String(),
			IsRecurring:   tx.IsRecurring,
		},
	})
	if err != nil {
		s.logger.WithError(err).WithField("transactionID", tx.ID.String()).
			Warn("TransactionService.publishCreated.failed")
	}
}
