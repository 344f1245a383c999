package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/spaces-server/internal/service"
)

// DueProcessor runs the due-processing batch of one space.
//
//go:generate mockery --name DueProcessor --output mock_DueProcessor.go
type DueProcessor interface {
	ProcessDue(ctx context.Context, spaceID uuid.UUID) (*service.ProcessResult, error)
}

// ProcessDue materializes the due schedules of a space. It is keyed by space so
// two batches for the same space never overlap.
type ProcessDue struct {
	SpaceID   uuid.UUID
	Processor DueProcessor

	Result *service.ProcessResult
}

func (a *ProcessDue) Key() string {
	return a.SpaceID.String()
}

func (a *ProcessDue) Perform(ctx context.Context) error {
	result, err := a.Processor.ProcessDue(ctx, a.SpaceID)
	if err != nil {
		return err
	}
	a.Result = result
	return nil
}
