package transaction

import (
	"time"

	"github.com/carson-networks/spaces-server/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID                  string  `json:"id" doc:"Transaction UUID"`
	SpaceID             string  `json:"space_id" doc:"Space UUID"`
	Type                string  `json:"type" enum:"income,expense"`
	Amount              float64 `json:"amount"`
	Category            string  `json:"category"`
	Subcategory         *string `json:"subcategory"`
	Description         *string `json:"description"`
	Date                string  `json:"date" doc:"YYYY-MM-DD"`
	IsRecurring         bool    `json:"is_recurring"`
	RecurrenceFrequency *string `json:"recurrence_frequency"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}

// FromService converts a service transaction into its response model.
func FromService(tx service.Transaction) Transaction {
	var frequency *string
	if tx.RecurrenceFrequency != nil {
		f := string(*tx.RecurrenceFrequency)
		frequency = &f
	}
	return Transaction{
		ID:                  tx.ID.String(),
		SpaceID:             tx.SpaceID.String(),
		Type:                string(tx.Type),
		Amount:              tx.Amount.InexactFloat64(),
		Category:            tx.Category,
		Subcategory:         tx.Subcategory,
		Description:         tx.Description,
		Date:                tx.Date.String(),
		IsRecurring:         tx.IsRecurring,
		RecurrenceFrequency: frequency,
		CreatedAt:           tx.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           tx.UpdatedAt.Format(time.RFC3339),
	}
}

type SpacePath struct {
	SpaceID string `path:"spaceId" format:"uuid" doc:"Space UUID"`
}

type TransactionPath struct {
	SpaceID string `path:"spaceId" format:"uuid" doc:"Space UUID"`
	ID      string `path:"id" format:"uuid" doc:"Transaction UUID"`
}
