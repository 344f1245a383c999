package space

import (
	"time"

	"github.com/carson-networks/spaces-server/internal/service"
)

// Space is the API response model for a space.
type Space struct {
	ID        string `json:"id" doc:"Row UUID"`
	SpaceID   string `json:"space_id" doc:"Public space UUID"`
	CreatedAt string `json:"created_at" doc:"RFC3339 creation time"`
	UpdatedAt string `json:"updated_at" doc:"RFC3339 last update time"`
}

func fromService(s *service.Space) Space {
	return Space{
		ID:        s.ID.String(),
		SpaceID:   s.SpaceID.String(),
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}

// PathInput addresses one space.
type PathInput struct {
	SpaceID string `path:"spaceId" format:"uuid" doc:"Space UUID"`
}
