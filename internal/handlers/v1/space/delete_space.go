package space

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/spaces-server/internal/handlers/v1/response"
)

type spaceDeleter interface {
	DeleteSpace(ctx context.Context, spaceID uuid.UUID) error
}

// DeleteSpaceHandler handles DELETE /api/spaces/{spaceId}. Everything the
// space owns is removed with it.
type DeleteSpaceHandler struct {
	SpaceService spaceDeleter
}

func NewDeleteSpaceHandler(svc spaceDeleter) *DeleteSpaceHandler {
	return &DeleteSpaceHandler{SpaceService: svc}
}

func (h *DeleteSpaceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-space",
		Method:        http.MethodDelete,
		Path:          "/api/spaces/{spaceId}",
		Summary:       "Delete space",
		Tags:          []string{"Spaces"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteSpaceHandler) handle(ctx context.Context, input *PathInput) (*struct{}, error) {
	spaceID, err := response.ParseUUID("spaceId", input.SpaceID)
	if err != nil {
		return nil, err
	}
	if err := h.SpaceService.DeleteSpace(ctx, spaceID); err != nil {
		return nil, response.FromError(err)
	}
	return nil, nil
}
