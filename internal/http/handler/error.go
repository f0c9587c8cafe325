package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/http/middleware"
	"portfolioapi/internal/model"
	"portfolioapi/internal/validation"
)

// errorPayload is the envelope used on failure paths. It carries no
// internal detail, only a safe message and the request id for correlation.
type errorPayload struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
	Data      any    `json:"data,omitempty"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error envelope without leaking internal errors.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorPayload{
		Success:   false,
		Message:   message,
		RequestID: requestIDFromCtx(c),
	})
}

// writeValidationError reports field-level validation failures. Unlike
// server errors these are specific: the failing fields are named in data.
func writeValidationError(c *fiber.Ctx, errs []validation.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorPayload{
		Success:   false,
		Message:   "validation failed",
		RequestID: requestIDFromCtx(c),
		Data:      errs,
	})
}

// writeSuccess writes the uniform success envelope of mutating/action endpoints.
func writeSuccess(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(model.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "method not allowed")
		default:
			return writeError(c, status, "internal server error")
		}
	}
}
