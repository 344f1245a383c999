package space

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/spaces-server/internal/handlers/v1/response"
)

type CreatedSpace struct {
	SpaceID string `json:"space_id" doc:"UUID of the new space"`
	Message string `json:"message"`
}

type CreateSpaceOutput struct {
	Body response.Envelope[CreatedSpace]
}

type spaceCreator interface {
	CreateSpace(ctx context.Context) (uuid.UUID, error)
}

// CreateSpaceHandler handles POST /api/spaces.
type CreateSpaceHandler struct {
	SpaceService spaceCreator
}

func NewCreateSpaceHandler(svc spaceCreator) *CreateSpaceHandler {
	return &CreateSpaceHandler{SpaceService: svc}
}

func (h *CreateSpaceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-space",
		Method:        http.MethodPost,
		Path:          "/api/spaces",
		Summary:       "Create space",
		Description:   "Creates a new space and returns its identifier.",
		Tags:          []string{"Spaces"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateSpaceHandler) handle(ctx context.Context, _ *struct{}) (*CreateSpaceOutput, error) {
	spaceID, err := h.SpaceService.CreateSpace(ctx)
	if err != nil {
		return nil, response.FromError(err)
	}

	return &CreateSpaceOutput{Body: response.OK(CreatedSpace{
		SpaceID: spaceID.String(),
		Message: "Space created successfully",
	})}, nil
}
