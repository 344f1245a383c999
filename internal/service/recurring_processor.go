package service

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/spaces-server/internal/events"
	"github.com/carson-networks/spaces-server/internal/logging"
	"github.com/carson-networks/spaces-server/internal/storage/sqlconfig"
)

// ProcessDue materializes one transaction for every schedule due today and
// advances each schedule by one period. A failing schedule is logged and
// skipped; the rest of the batch still runs.
func (s *RecurringService) ProcessDue(ctx context.Context, spaceID uuid.UUID) (*ProcessResult, error) {
	logData := logging.GetLogData(ctx)
	defer logData.AddTiming("processDue")()

	due, err := s.DueBefore(ctx, spaceID, nil)
	if err != nil {
		return nil, err
	}

	result := &ProcessResult{Transactions: []ProcessedRecurring{}}
	for _, rt := range due {
		processed, err := s.processOne(ctx, rt)
		if err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"spaceID":     spaceID.String(),
				"recurringID": rt.ID,
			}).Error("RecurringService.ProcessDue.recordFailed")
			continue
		}
		result.Transactions = append(result.Transactions, *processed)
	}
	result.Processed = len(result.Transactions)

	logData.AddData("dueCount", len(due))
	logData.AddData("processedCount", result.Processed)

	return result, nil
}

func (s *RecurringService) processOne(ctx context.Context, rt RecurringTransaction) (*ProcessedRecurring, error) {
	frequency := rt.Frequency
	row, err := s.storage.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		SpaceID:             rt.SpaceID,
		Type:                rt.Type,
		Amount:              rt.Amount,
		Category:            rt.Category,
		Subcategory:         rt.Subcategory,
		Description:         rt.Description,
		Date:                rt.NextDueDate,
		IsRecurring:         true,
		RecurrenceFrequency: &frequency,
	})
	if err != nil {
		return nil, &StorageError{Op: "create recurring occurrence", Err: err}
	}
	created := transactionFromStorage(row)

	processedOn := rt.NextDueDate
	next, err := s.Advance(ctx, rt.ID, processedOn, rt.Frequency)
	if err != nil {
		return nil, err
	}
	rt.LastProcessed = &processedOn
	rt.NextDueDate = next

	s.publishProcessed(ctx, rt, created, processedOn)

	return &ProcessedRecurring{RecurringTransaction: rt, CreatedTransaction: created}, nil
}

func (s *RecurringService) publishProcessed(ctx context.Context, rt RecurringTransaction, created Transaction, dueDate civil.Date) {
	err := s.publisher.Publish(ctx, events.Event{
		Type:       events.TypeRecurringProcessed,
		SpaceID:    rt.SpaceID.String(),
		OccurredAt: s.now().UTC(),
		Payload: events.RecurringProcessed{
			RecurringID:   rt.ID,
			TransactionID: created.ID.String(),
			DueDate:       dueDate.String(),
			NextDueDate:   rt.NextDueDate.String(),
		},
	})
	if err != nil {
		s.logger.WithError(err).WithField("recurringID", rt.ID).
			Warn("RecurringService.publishProcessed.failed")
	}
}
