package server

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/marquee-app/marquee/core"
)

type signUpInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) signUp(c fiber.Ctx) error {
	var input signUpInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	account, err := s.identity.Register(input.Name, input.Email, input.Password)
	if err != nil {
		return handleIdentityError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"account": account.Redacted(),
	})
}

func (s *Server) signIn(c fiber.Ctx) error {
	var input signInInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	account, err := s.identity.Login(input.Email, input.Password)
	if err != nil {
		return handleIdentityError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"account": account.Redacted(),
		"token":   s.identity.Token(),
	})
}

func (s *Server) signOut(c fiber.Ctx) error {
	if err := s.identity.Logout(); err != nil {
		return handleIdentityError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "signed out successfully",
	})
}

func (s *Server) session(c fiber.Ctx) error {
	account := s.identity.Current()
	if account == nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": core.ErrNotAuthenticated.Error(),
		})
	}

	return c.Status(http.StatusOK).JSON(core.SessionData{
		Account:  account.Redacted(),
		LoggedIn: true,
	})
}

// handleIdentityError maps identity errors to HTTP responses.
func handleIdentityError(c fiber.Ctx, err error) error {
	return c.Status(mapErrorToStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrDuplicateEmail):
		return http.StatusConflict

	case errors.Is(err, core.ErrInvalidCredentials),
		errors.Is(err, core.ErrNotAuthenticated):
		return http.StatusUnauthorized

	case errors.Is(err, core.ErrAccountNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
