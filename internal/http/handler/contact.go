package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/model"
	"portfolioapi/internal/service"
	"portfolioapi/internal/validation"
)

// SubmitContact stores a contact message and records a "contact" analytics
// event.
//
// @Summary Submit contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param message body model.ContactCreate true "message fields"
// @Success 200 {object} model.APIResponse
// @Failure 400 {object} model.APIResponse
// @Failure 500 {object} model.APIResponse
// @Router /api/contact [post]
func SubmitContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.ContactCreate
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}
		if errs := validation.Struct(in); errs != nil {
			return writeValidationError(c, errs)
		}

		id, ok := svc.Submit(c.UserContext(), in, requestMeta(c))
		if !ok {
			return writeError(c, fiber.StatusInternalServerError, "failed to send message")
		}
		return writeSuccess(c, "Message sent successfully! I'll get back to you within 24 hours.",
			fiber.Map{"message_id": id})
	}
}

// ListContactMessages returns all messages, newest first.
//
// @Summary List contact messages
// @Tags contact
// @Produce json
// @Success 200 {array} model.ContactMessage
// @Router /api/contact [get]
func ListContactMessages(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.List(c.UserContext()))
	}
}

// MarkMessageRead flags a message as read.
//
// @Summary Mark message as read
// @Tags contact
// @Produce json
// @Param id path string true "message id"
// @Success 200 {object} model.APIResponse
// @Failure 404 {object} model.APIResponse
// @Router /api/contact/{id}/read [put]
func MarkMessageRead(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !svc.MarkRead(c.UserContext(), c.Params("id")) {
			return writeError(c, fiber.StatusNotFound, "message not found")
		}
		return writeSuccess(c, "Message marked as read", nil)
	}
}
