package server

import (
	"net/http"

	"github.com/gofiber/fiber/v3"
)

// search proxies GET /api/search?query=&page= to OMDb and forwards the
// upstream JSON verbatim.
func (s *Server) search(c fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "query param is required",
		})
	}
	page := fiber.Query(c, "page", 1)

	cacheKey := "search:" + query + ":" + c.Query("page", "1")
	if cached, err := s.cache.Get(cacheKey); err == nil {
		return sendJSON(c, cached)
	}

	body, err := s.movies.Search(c.Context(), query, page)
	if err != nil {
		s.log.Error("omdb search failed", "query", query, "err", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch from OMDb",
			"details": err.Error(),
		})
	}

	_ = s.cache.Set(cacheKey, body)
	return sendJSON(c, body)
}

// movieByID proxies GET /api/movie/:id to OMDb's detail endpoint.
func (s *Server) movieByID(c fiber.Ctx) error {
	imdbID := c.Params("id")

	cacheKey := "movie:" + imdbID
	if cached, err := s.cache.Get(cacheKey); err == nil {
		return sendJSON(c, cached)
	}

	body, err := s.movies.MovieByID(c.Context(), imdbID)
	if err != nil {
		s.log.Error("omdb detail failed", "imdb_id", imdbID, "err", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch from OMDb",
			"details": err.Error(),
		})
	}

	_ = s.cache.Set(cacheKey, body)
	return sendJSON(c, body)
}

// sendJSON forwards an upstream payload without re-encoding it.
func sendJSON(c fiber.Ctx, body []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(http.StatusOK).Send(body)
}
