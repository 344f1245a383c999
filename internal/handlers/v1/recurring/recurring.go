package recurring

import (
	"time"

	"github.com/carson-networks/spaces-server/internal/service"
)

// RecurringTransaction is the API response model for a recurring schedule.
type RecurringTransaction struct {
	ID            string  `json:"id" doc:"UUID, or regular-<transactionId> for schedules mirrored from a transaction"`
	SpaceID       string  `json:"space_id"`
	Name          string  `json:"name"`
	Type          string  `json:"type" enum:"income,expense"`
	Amount        float64 `json:"amount"`
	Category      string  `json:"category"`
	Subcategory   *string `json:"subcategory"`
	Description   *string `json:"description"`
	Frequency     string  `json:"frequency" enum:"weekly,monthly,yearly"`
	StartDate     string  `json:"start_date"`
	NextDueDate   string  `json:"next_due_date"`
	IsActive      bool    `json:"is_active"`
	LastProcessed *string `json:"last_processed"`
	Source        string  `json:"source" enum:"dedicated,regular_transaction"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func fromService(rt service.RecurringTransaction) RecurringTransaction {
	var lastProcessed *string
	if rt.LastProcessed != nil {
		s := rt.LastProcessed.String()
		lastProcessed = &s
	}
	return RecurringTransaction{
		ID:            rt.ID,
		SpaceID:       rt.SpaceID.String(),
		Name:          rt.Name,
		Type:          string(rt.Type),
		Amount:        rt.Amount.InexactFloat64(),
		Category:      rt.Category,
		Subcategory:   rt.Subcategory,
		Description:   rt.Description,
		Frequency:     string(rt.Frequency),
		StartDate:     rt.StartDate.String(),
		NextDueDate:   rt.NextDueDate.String(),
		IsActive:      rt.IsActive,
		LastProcessed: lastProcessed,
		Source:        string(rt.Source),
		CreatedAt:     rt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     rt.UpdatedAt.Format(time.RFC3339),
	}
}

type SpacePath struct {
	SpaceID string `path:"spaceId" format:"uuid" doc:"Space UUID"`
}

type RecurringPath struct {
	SpaceID string `path:"spaceId" format:"uuid" doc:"Space UUID"`
	ID      string `path:"id" doc:"Schedule UUID or regular-<transactionId>"`
}
