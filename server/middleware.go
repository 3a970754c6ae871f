package server

import (
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/marquee-app/marquee/core"
)

// requestLogger tags every request with an ID and logs method, path and
// status on the way out.
func (s *Server) requestLogger(c fiber.Ctx) error {
	requestID := uuid.New().String()
	c.Locals("request_id", requestID)

	err := c.Next()

	s.log.Info("request",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
	)
	return err
}

// requireAuth guards list routes. The identity module itself holds the
// session; a presented token (header or cookie) must match it, but the
// same-origin UI may also omit the token and rely on the module state.
func (s *Server) requireAuth(c fiber.Ctx) error {
	if !s.identity.LoggedIn() {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": core.ErrNotAuthenticated.Error(),
		})
	}

	if token := extractToken(c); token != "" && token != s.identity.Token() {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid session token",
		})
	}

	return c.Next()
}

// extractToken extracts the session token from the request.
// Checks Authorization header (Bearer token) first, then falls back to cookie.
func extractToken(c fiber.Ctx) string {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}

	return c.Cookies("auth_token")
}
