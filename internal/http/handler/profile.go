package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/model"
	"portfolioapi/internal/service"
	"portfolioapi/internal/validation"
)

// GetProfile returns the profile, seeding default content on first access.
//
// @Summary Get profile
// @Tags profile
// @Produce json
// @Success 200 {object} model.Profile
// @Failure 404 {object} model.APIResponse
// @Router /api/profile [get]
func GetProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := svc.Get(c.UserContext())
		if p == nil {
			return writeError(c, fiber.StatusNotFound, "profile not found")
		}
		return c.JSON(p)
	}
}

// UpdateProfile merges the supplied profile blocks.
//
// @Summary Update profile
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body model.ProfileUpdate true "profile fields"
// @Success 200 {object} model.APIResponse
// @Failure 500 {object} model.APIResponse
// @Router /api/profile [put]
func UpdateProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var upd model.ProfileUpdate
		if err := c.BodyParser(&upd); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}
		if errs := validation.Struct(upd); errs != nil {
			return writeValidationError(c, errs)
		}

		if !svc.Upsert(c.UserContext(), upd) {
			return writeError(c, fiber.StatusInternalServerError, "failed to update profile")
		}
		return writeSuccess(c, "Profile updated successfully", nil)
	}
}
