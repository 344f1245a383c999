package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/spaces-server/internal/logging"
)

const shadowIDPrefix = "regular-"

// ShadowID is the schedule id mirrored from a recurring transaction.
func ShadowID(transactionID uuid.UUID) string {
	return shadowIDPrefix + transactionID.String()
}

// ParseScheduleID accepts either a schedule UUID or a shadow id.
func ParseScheduleID(id string) (string, error) {
	raw, _ := strings.CutPrefix(id, shadowIDPrefix)
	if _, err := uuid.FromString(raw); err != nil {
		return "", &ValidationError{Field: "id", Message: "must be a UUID or regular-<UUID>"}
	}
	return id, nil
}

func shadowInput(tx Transaction) RecurringTransactionInput {
	name := fmt.Sprintf("%s - %s", tx.Type, tx.Category)
	if tx.Description != nil && *tx.Description != "" {
		name = *tx.Description
	}
	return RecurringTransactionInput{
		Name:        name,
		Type:        tx.Type,
		Amount:      tx.Amount,
		Category:    tx.Category,
		Subcategory: tx.Subcategory,
		Description: tx.Description,
		Frequency:   *tx.RecurrenceFrequency,
		StartDate:   tx.Date,
	}
}

// SyncCreatedTransaction creates the shadow schedule of a freshly created
// recurring transaction. Failures are logged and never surface to the caller.
func (s *RecurringService) SyncCreatedTransaction(ctx context.Context, tx Transaction) {
	if !tx.IsRecurring || tx.RecurrenceFrequency == nil {
		return
	}
	if _, err := s.CreateFromRegularTransaction(ctx, tx.ID, tx.SpaceID, shadowInput(tx)); err != nil {
		s.logSyncFailure(ctx, "create", tx.ID, err)
		return
	}
	logging.GetLogData(ctx).AddData("shadowSchedule", ShadowID(tx.ID))
}

// SyncUpdatedTransaction reconciles the shadow schedule after an update.
// A transaction that is still recurring with a frequency gets its shadow
// updated, or created when missing. One that stopped being recurring loses it.
func (s *RecurringService) SyncUpdatedTransaction(ctx context.Context, previous, updated Transaction) {
	shadowID := ShadowID(updated.ID)

	switch {
	case updated.IsRecurring && updated.RecurrenceFrequency != nil:
		_, err := s.storage.RecurringTransactions.FindByID(ctx, updated.SpaceID, shadowID)
		if err != nil {
			s.SyncCreatedTransaction(ctx, updated)
			return
		}

		in := shadowInput(updated)
		_, err = s.UpdateRecurringTransaction(ctx, updated.SpaceID, shadowID, RecurringTransactionPatch{
			Name:        &in.Name,
			Type:        &in.Type,
			Amount:      &in.Amount,
			Category:    &in.Category,
			Subcategory: in.Subcategory,
			Description: in.Description,
			Frequency:   &in.Frequency,
			StartDate:   &in.StartDate,
		})
		if err != nil {
			s.logSyncFailure(ctx, "update", updated.ID, err)
		}

	case previous.IsRecurring && !updated.IsRecurring:
		s.RemoveTransactionShadow(ctx, updated.SpaceID, updated.ID)
	}
}

// RemoveTransactionShadow deletes the shadow schedule of a transaction if one exists.
func (s *RecurringService) RemoveTransactionShadow(ctx context.Context, spaceID, transactionID uuid.UUID) {
	if err := s.DeleteRecurringTransaction(ctx, spaceID, ShadowID(transactionID)); err != nil {
		s.logSyncFailure(ctx, "delete", transactionID, err)
	}
}

func (s *RecurringService) logSyncFailure(ctx context.Context, action string, transactionID uuid.UUID, err error) {
	s.logger.WithError(err).WithFields(logrus.Fields{
		"action":        action,
		"transactionID": transactionID.String(),
	}).Warn("RecurringService.sync.failed")
	logging.GetLogData(ctx).AddData("shadowSyncError", err.Error())
}
