package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/hatamimatt/SCDOT-BufferWidget/internal/pkg/utils"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/usecase"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/usecase/dto"
)

// IntersectionHandler triggers intersection runs and exposes the latest report.
type IntersectionHandler struct {
	intersectionUC *usecase.IntersectionUseCase
	logger         *zap.Logger
}

func NewIntersectionHandler(intersectionUC *usecase.IntersectionUseCase, logger *zap.Logger) *IntersectionHandler {
	return &IntersectionHandler{
		intersectionUC: intersectionUC,
		logger:         logger,
	}
}

// Run godoc
// @Summary Run the intersection query
// @Description Queries every selected layer against the current buffer concurrently and returns the aggregated report. Per-layer failures do not abort the run.
// @Tags Intersection
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.RunResponse}
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/intersection/run [post]
func (h *IntersectionHandler) Run(c *fiber.Ctx) error {
	report, err := h.intersectionUC.Run(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.RunResponse{Report: report}, &utils.Meta{
		Total: len(report.Outcomes),
	})
}

// RunAsync godoc
// @Summary Queue an intersection run
// @Description Publishes the run to the worker stream and returns immediately with the run id. The report arrives on the completion stream.
// @Tags Intersection
// @Produce json
// @Success 202 {object} utils.SuccessResponse{data=dto.AsyncRunResponse}
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/intersection/run/async [post]
func (h *IntersectionHandler) RunAsync(c *fiber.Ctx) error {
	runID, err := h.intersectionUC.RequestAsync(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusAccepted)
	return utils.SendSuccess(c, dto.AsyncRunResponse{RunID: runID}, nil)
}

// Report godoc
// @Summary Latest intersection report
// @Description Returns the report of the most recent completed synchronous run.
// @Tags Intersection
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.RunResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/intersection/report [get]
func (h *IntersectionHandler) Report(c *fiber.Ctx) error {
	report, err := h.intersectionUC.LatestReport()
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.RunResponse{Report: report}, &utils.Meta{
		Total: len(report.Outcomes),
	})
}
