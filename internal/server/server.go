package server

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/kayumanis/furniture-order-service/config"
	"github.com/kayumanis/furniture-order-service/internal/apperr"
	"github.com/kayumanis/furniture-order-service/pkg/logger"
	"go.uber.org/zap"
)

const (
	msgTooLarge      = "File size too large. Maximum 5MB allowed."
	msgRouteNotFound = "API endpoint not found"
	msgInternal      = "Internal server error"
)

// RouteMapper is implemented by every domain handler.
type RouteMapper interface {
	MapRoutes(r fiber.Router)
}

type Handlers struct {
	Products RouteMapper
	Folders  RouteMapper
	Buyers   RouteMapper
	Orders   RouteMapper
}

type Server struct {
	app    *fiber.App
	cfg    *config.Config
	logger logger.ZapLogger
}

func New(cfg *config.Config, log logger.ZapLogger, h Handlers) *Server {
	s := &Server{cfg: cfg, logger: log}

	s.app = fiber.New(fiber.Config{
		AppName:               "furniture-order-service",
		DisableStartupMessage: true,
		BodyLimit:             cfg.Server.BodyLimit,
		ErrorHandler:          s.errorHandler,
	})

	s.app.Use(recover.New())
	s.app.Use(requestid.New())
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins(cfg.Server.CORSOrigins),
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	s.app.Use(s.accessLog)

	s.app.Static(cfg.Upload.URLPrefix, cfg.Upload.Dir)

	api := s.app.Group("/api")
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	h.Products.MapRoutes(api.Group("/products"))
	h.Folders.MapRoutes(api.Group("/folders"))
	h.Buyers.MapRoutes(api.Group("/buyers"))
	h.Orders.MapRoutes(api.Group("/orders"))

	api.All("/*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msgRouteNotFound})
	})

	return s
}

func (s *Server) App() *fiber.App { return s.app }

func (s *Server) Listen() error {
	port := s.cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	s.logger.Info("Starting HTTP server", zap.String("port", port))
	return s.app.Listen(port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) accessLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	if err != nil {
		// Render now so the logged status is the one sent.
		if herr := s.app.ErrorHandler(c, err); herr != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	s.logger.Info("HTTP request",
		zap.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", c.Response().StatusCode()),
		zap.Duration("latency", time.Since(start)),
	)
	return nil
}

// errorHandler renders every error as {"error": message}. Internal causes
// are logged and replaced by a generic message.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		if ae.Kind == apperr.KindInternal {
			s.logger.Error(ae.Message,
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(ae.Err),
			)
		}
		body := fiber.Map{"error": ae.Message}
		if ae.Details != nil {
			body["details"] = ae.Details
		}
		return c.Status(ae.Status()).JSON(body)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code == fiber.StatusRequestEntityTooLarge {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msgTooLarge})
		}
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	s.logger.Error("Unhandled error",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgInternal})
}

func corsOrigins(origins string) string {
	origins = strings.TrimSpace(origins)
	if origins == "" {
		return "*"
	}
	return origins
}
