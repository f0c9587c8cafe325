package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/model"
	"portfolioapi/internal/service"
	"portfolioapi/internal/validation"
)

// ListVisualizations returns active visualizations ascending by display order.
//
// @Summary List active visualizations
// @Tags visualizations
// @Produce json
// @Success 200 {array} model.Visualization
// @Router /api/visualizations [get]
func ListVisualizations(svc service.VisualizationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.List(c.UserContext()))
	}
}

// CreateVisualization stores a new visualization record.
//
// @Summary Create visualization
// @Tags visualizations
// @Accept json
// @Produce json
// @Param visualization body model.VisualizationCreate true "visualization fields"
// @Success 200 {object} model.APIResponse
// @Failure 500 {object} model.APIResponse
// @Router /api/visualizations [post]
func CreateVisualization(svc service.VisualizationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.VisualizationCreate
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}
		if errs := validation.Struct(in); errs != nil {
			return writeValidationError(c, errs)
		}

		id, ok := svc.Create(c.UserContext(), in)
		if !ok {
			return writeError(c, fiber.StatusInternalServerError, "failed to create visualization")
		}
		return writeSuccess(c, "Visualization created successfully", fiber.Map{"visualization_id": id})
	}
}
