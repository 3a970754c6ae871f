package server

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/marquee-app/marquee/core"
)

func (s *Server) getList(c fiber.Ctx) error {
	account := s.identity.Current()
	if account == nil {
		return handleIdentityError(c, core.ErrNotAuthenticated)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"myList": account.MyList,
	})
}

func (s *Server) inList(c fiber.Ctx) error {
	contentID := c.Params("id")

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"inList": s.identity.IsInList(contentID),
	})
}

func (s *Server) addToList(c fiber.Ctx) error {
	contentID := c.Params("id")

	if err := s.identity.AddToList(contentID); err != nil {
		return handleIdentityError(c, err)
	}

	return s.getList(c)
}

func (s *Server) removeFromList(c fiber.Ctx) error {
	contentID := c.Params("id")

	if err := s.identity.RemoveFromList(contentID); err != nil {
		return handleIdentityError(c, err)
	}

	return s.getList(c)
}
