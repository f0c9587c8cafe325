package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/model"
	"portfolioapi/internal/service"
	"portfolioapi/internal/validation"
)

// LogVisit records a page visit event with request metadata.
//
// @Summary Log a page visit
// @Tags analytics
// @Accept json
// @Produce json
// @Param event body model.AnalyticsCreate true "event fields"
// @Success 200 {object} model.APIResponse
// @Failure 500 {object} model.APIResponse
// @Router /api/analytics/visit [post]
func LogVisit(svc service.AnalyticsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.AnalyticsCreate
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}
		if errs := validation.Struct(in); errs != nil {
			return writeValidationError(c, errs)
		}

		if !svc.RecordVisit(c.UserContext(), in, requestMeta(c)) {
			return writeError(c, fiber.StatusInternalServerError, "failed to log visit")
		}
		return writeSuccess(c, "Visit logged", nil)
	}
}

// LogDownload records a resume download event.
//
// @Summary Log a resume download
// @Tags analytics
// @Produce json
// @Success 200 {object} model.APIResponse
// @Failure 500 {object} model.APIResponse
// @Router /api/analytics/download [post]
func LogDownload(svc service.AnalyticsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !svc.RecordDownload(c.UserContext(), "resume", requestMeta(c)) {
			return writeError(c, fiber.StatusInternalServerError, "failed to log download")
		}
		return writeSuccess(c, "Download logged", nil)
	}
}

// GetAnalyticsStats returns the aggregate statistics. Store faults degrade
// to a zeroed aggregate, never an error status.
//
// @Summary Get analytics statistics
// @Tags analytics
// @Produce json
// @Success 200 {object} model.AnalyticsStats
// @Router /api/analytics/stats [get]
func GetAnalyticsStats(svc service.AnalyticsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Stats(c.UserContext()))
	}
}
