package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hatamimatt/SCDOT-BufferWidget/internal/domain"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/pkg/errors"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/pkg/utils"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/pkg/validator"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/usecase"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/usecase/dto"
)

// SketchHandler drives the draw lifecycle and the buffer spec.
type SketchHandler struct {
	sketchUC *usecase.SketchUseCase
	logger   *zap.Logger
}

func NewSketchHandler(sketchUC *usecase.SketchUseCase, logger *zap.Logger) *SketchHandler {
	return &SketchHandler{
		sketchUC: sketchUC,
		logger:   logger,
	}
}

// Snapshot godoc
// @Summary Current sketch state
// @Description Returns the sketch controller state: mode, cursor, buffer spec, buffer geometry and display artifacts.
// @Tags Sketch
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SketchResponse}
// @Router /api/v1/sketch [get]
func (h *SketchHandler) Snapshot(c *fiber.Ctx) error {
	return utils.SendSuccess(c, dto.SketchResponse{
		Sketch: h.sketchUC.Snapshot(),
	}, nil)
}

// StartDraw godoc
// @Summary Start a new sketch
// @Description Begins drawing the given geometry kind. Any existing sketch and buffer are discarded first. The returned token must be echoed by the completion event.
// @Tags Sketch
// @Accept json
// @Produce json
// @Param request body dto.StartDrawRequest true "Geometry kind to draw"
// @Success 200 {object} utils.SuccessResponse{data=dto.StartDrawResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/sketch/start [post]
func (h *SketchHandler) StartDraw(c *fiber.Ctx) error {
	var req dto.StartDrawRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	token, sketch, err := h.sketchUC.StartDraw(domain.GeometryKind(req.Kind))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.StartDrawResponse{
		Token:  token.String(),
		Sketch: sketch,
	}, nil)
}

// CompleteDraw godoc
// @Summary Complete the in-flight sketch
// @Description Accepts the finalized geometry, buffers it at the current spec and swaps the sketch artifact for the buffer artifact. Completions carrying a stale token are rejected.
// @Tags Sketch
// @Accept json
// @Produce json
// @Param request body dto.CompleteDrawRequest true "Draw token and finalized geometry"
// @Success 200 {object} utils.SuccessResponse{data=dto.SketchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/sketch/complete [post]
func (h *SketchHandler) CompleteDraw(c *fiber.Ctx) error {
	var req dto.CompleteDrawRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	token, err := uuid.Parse(req.Token)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	sketch, err := h.sketchUC.CompleteDraw(c.Context(), token, req.Geometry.ToDrawnGeometry())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.SketchResponse{Sketch: sketch}, nil)
}

// Clear godoc
// @Summary Clear the sketch and buffer
// @Description Removes all display artifacts and resets the controller to idle. Safe to call at any time, including mid-draw.
// @Tags Sketch
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SketchResponse}
// @Router /api/v1/sketch/clear [post]
func (h *SketchHandler) Clear(c *fiber.Ctx) error {
	sketch := h.sketchUC.Clear()

	return utils.SendSuccess(c, dto.SketchResponse{Sketch: sketch}, nil)
}

// SetBufferSpec godoc
// @Summary Update the buffer spec
// @Description Sets the distance/unit pair used by the next draw completion. An in-flight draw picks up the latest value.
// @Tags Sketch
// @Accept json
// @Produce json
// @Param request body dto.BufferSpecRequest true "Distance and unit"
// @Success 200 {object} utils.SuccessResponse{data=dto.SketchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/buffer-spec [put]
func (h *SketchHandler) SetBufferSpec(c *fiber.Ctx) error {
	var req dto.BufferSpecRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.sketchUC.SetSpec(req.ToBufferSpec()); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.SketchResponse{
		Sketch: h.sketchUC.Snapshot(),
	}, nil)
}
