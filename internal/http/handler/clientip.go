package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/service"
)

// clientIP extracts the requester address: the first X-Forwarded-For entry
// when present, otherwise the transport-level peer address, otherwise the
// "unknown" sentinel.
func clientIP(c *fiber.Ctx) string {
	if fwd := c.Get(fiber.HeaderXForwardedFor); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	if ip := c.IP(); ip != "" {
		return ip
	}
	return "unknown"
}

// requestMeta collects the request attributes stored with messages and events.
func requestMeta(c *fiber.Ctx) service.RequestMeta {
	return service.RequestMeta{
		IP:        clientIP(c),
		UserAgent: c.Get(fiber.HeaderUserAgent),
		Referrer:  c.Get(fiber.HeaderReferer),
	}
}
