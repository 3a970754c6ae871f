// Package server exposes the identity operations and the OMDb proxy over
// HTTP. It is the only surface clients talk to; the OMDb API key never
// leaves this process.
package server

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"

	"github.com/marquee-app/marquee/core"
	"github.com/marquee-app/marquee/omdb"
	"github.com/marquee-app/marquee/pkg/cache"
)

type Config struct {
	Identity *core.Identity
	Movies   *omdb.Client

	// Optional config
	Cache  cache.Cache
	Logger *log.Logger
}

type Server struct {
	app      *fiber.App
	identity *core.Identity
	movies   *omdb.Client
	cache    cache.Cache
	log      *log.Logger
}

func New(config Config) *Server {
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}

	responseCache := config.Cache
	if responseCache == nil {
		responseCache = cache.NewMemory(cache.Config{
			TTL:     5 * time.Minute,
			MaxSize: 500,
		})
	}

	s := &Server{
		app:      fiber.New(),
		identity: config.Identity,
		movies:   config.Movies,
		cache:    responseCache,
		log:      logger,
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.app.Use(s.requestLogger)

	api := s.app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/sign-up", s.signUp)
	auth.Post("/sign-in", s.signIn)
	auth.Post("/sign-out", s.signOut)
	auth.Get("/session", s.session)

	// Proxy routes
	api.Get("/search", s.search)
	api.Get("/movie/:id", s.movieByID)

	// Protected routes
	list := api.Group("/list", s.requireAuth)
	list.Get("/", s.getList)
	list.Get("/:id", s.inList)
	list.Post("/:id", s.addToList)
	list.Delete("/:id", s.removeFromList)
}

// App exposes the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}
