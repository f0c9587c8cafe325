package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the header used to propagate request ids across services.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is the context-locals key under which the id is stored.
	RequestIDLocalKey = "request_id"
)

// RequestID tags every request with an id: an incoming X-Request-ID is
// kept, otherwise a fresh UUID is generated. The id is stored in the
// request locals for the logger and error envelope, and echoed back in
// the response header.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)

		return c.Next()
	}
}
