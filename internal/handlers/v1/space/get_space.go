package space

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/spaces-server/internal/handlers/v1/response"
	"github.com/carson-networks/spaces-server/internal/service"
)

type GetSpaceOutput struct {
	Body response.Envelope[Space]
}

type spaceGetter interface {
	GetSpace(ctx context.Context, spaceID uuid.UUID) (*service.Space, error)
}

// GetSpaceHandler handles GET /api/spaces/{spaceId}.
type GetSpaceHandler struct {
	SpaceService spaceGetter
}

func NewGetSpaceHandler(svc spaceGetter) *GetSpaceHandler {
	return &GetSpaceHandler{SpaceService: svc}
}

func (h *GetSpaceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-space",
		Method:      http.MethodGet,
		Path:        "/api/spaces/{spaceId}",
		Summary:     "Get space",
		Tags:        []string{"Spaces"},
	}, h.handle)
}

func (h *GetSpaceHandler) handle(ctx context.Context, input *PathInput) (*GetSpaceOutput, error) {
	spaceID, err := response.ParseUUID("spaceId", input.SpaceID)
	if err != nil {
		return nil, err
	}

	s, err := h.SpaceService.GetSpace(ctx, spaceID)
	if err != nil {
		return nil, response.FromError(err)
	}
	return &GetSpaceOutput{Body: response.OK(fromService(s))}, nil
}
