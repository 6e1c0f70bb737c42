package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/hatamimatt/SCDOT-BufferWidget/internal/config"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/delivery/http/handler"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/delivery/http/middleware"
)

// Server - Fiber HTTP server for the buffer widget API
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	layerHandler        *handler.LayerHandler
	sketchHandler       *handler.SketchHandler
	intersectionHandler *handler.IntersectionHandler
}

// NewServer - creates the HTTP server with all routes wired
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	layerHandler *handler.LayerHandler,
	sketchHandler *handler.SketchHandler,
	intersectionHandler *handler.IntersectionHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Buffer Widget Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                 app,
		config:              cfg,
		logger:              logger,
		layerHandler:        layerHandler,
		sketchHandler:       sketchHandler,
		intersectionHandler: intersectionHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Map context and layer registry
	api.Post("/map-context", s.layerHandler.BindContext)
	api.Get("/layers", s.layerHandler.Layers)
	api.Post("/layers/:id/toggle", s.layerHandler.Toggle)

	// Sketch lifecycle
	api.Get("/sketch", s.sketchHandler.Snapshot)
	api.Post("/sketch/start", s.sketchHandler.StartDraw)
	api.Post("/sketch/complete", s.sketchHandler.CompleteDraw)
	api.Post("/sketch/clear", s.sketchHandler.Clear)
	api.Put("/buffer-spec", s.sketchHandler.SetBufferSpec)

	// Intersection runs
	api.Post("/intersection/run", s.intersectionHandler.Run)
	api.Post("/intersection/run/async", s.intersectionHandler.RunAsync)
	api.Get("/intersection/report", s.intersectionHandler.Report)
}

// Start - starts listening on the configured address
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
