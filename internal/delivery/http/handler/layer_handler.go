package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/hatamimatt/SCDOT-BufferWidget/internal/pkg/errors"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/pkg/utils"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/pkg/validator"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/usecase"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/usecase/dto"
)

// LayerHandler serves the map-context binding and the layer registry.
type LayerHandler struct {
	registryUC *usecase.RegistryUseCase
	sketchUC   *usecase.SketchUseCase
	logger     *zap.Logger
}

func NewLayerHandler(registryUC *usecase.RegistryUseCase, sketchUC *usecase.SketchUseCase, logger *zap.Logger) *LayerHandler {
	return &LayerHandler{
		registryUC: registryUC,
		sketchUC:   sketchUC,
		logger:     logger,
	}
}

// BindContext godoc
// @Summary Bind the host map context
// @Description Registers the host map and discovers its queryable feature layers. Rebinding replaces the registry, resets the selection and clears any sketch or buffer from the previous context.
// @Tags Layers
// @Accept json
// @Produce json
// @Param request body dto.BindContextRequest true "Map context with its raw layer list"
// @Success 200 {object} utils.SuccessResponse{data=dto.LayersResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/map-context [post]
func (h *LayerHandler) BindContext(c *fiber.Ctx) error {
	var req dto.BindContextRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	h.registryUC.BindContext(req.ToMapContext())

	// A rebind invalidates everything drawn against the previous map.
	h.sketchUC.Clear()

	layers, selected := h.registryUC.Layers()

	return utils.SendSuccess(c, dto.NewLayersResponse(h.registryUC.ContextID(), layers, selected), &utils.Meta{
		Total: len(layers),
	})
}

// Layers godoc
// @Summary List discovered layers
// @Description Returns the layer registry in discovery order together with each layer's selection flag.
// @Tags Layers
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.LayersResponse}
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/layers [get]
func (h *LayerHandler) Layers(c *fiber.Ctx) error {
	if !h.registryUC.Bound() {
		return utils.SendError(c, errors.ErrNoMapContext)
	}

	layers, selected := h.registryUC.Layers()

	return utils.SendSuccess(c, dto.NewLayersResponse(h.registryUC.ContextID(), layers, selected), &utils.Meta{
		Total: len(layers),
	})
}

// Toggle godoc
// @Summary Toggle a layer's selection
// @Description Flips whether the layer participates in the next intersection run. Unknown layer ids are rejected.
// @Tags Layers
// @Produce json
// @Param id path string true "Layer id"
// @Success 200 {object} utils.SuccessResponse{data=dto.LayersResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/layers/{id}/toggle [post]
func (h *LayerHandler) Toggle(c *fiber.Ctx) error {
	if !h.registryUC.Bound() {
		return utils.SendError(c, errors.ErrNoMapContext)
	}

	layerID := c.Params("id")
	if err := h.registryUC.Toggle(layerID); err != nil {
		return utils.SendError(c, err)
	}

	layers, selected := h.registryUC.Layers()

	return utils.SendSuccess(c, dto.NewLayersResponse(h.registryUC.ContextID(), layers, selected), &utils.Meta{
		Total: len(layers),
	})
}
