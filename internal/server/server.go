// Package server contains the HTTP handlers for the tickertalk API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tickertalk/internal/bootstrap"
	"tickertalk/internal/config"
	"tickertalk/internal/middleware"
	"tickertalk/internal/models"
	"tickertalk/internal/repository"
	"tickertalk/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	serviceName       = "tickertalk-api"
	globalLimitPerMin = 100
)

// Server holds all dependencies and provides handlers
type Server struct {
	config           *config.Config
	db               *gorm.DB
	redis            *redis.Client
	app              *fiber.App
	postService      *service.PostService
	commentService   *service.CommentService
	userService      *service.UserService
	referenceService *service.ReferenceService
}

// NewServer connects to the database and Redis, seeds reference data when
// configured, and returns a server over those connections.
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	db, redisClient, err := bootstrap.InitRuntime(ctx, cfg, bootstrap.Options{
		SeedReferenceData: cfg.SeedReferenceData,
	})
	if err != nil {
		return nil, err
	}
	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// A nil Redis client disables the per-route write limits.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}
	return newServer(cfg, db, redisClient, repository.NewStore(db)), nil
}

func newServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, store repository.Store) *Server {
	return &Server{
		config:           cfg,
		db:               db,
		redis:            redisClient,
		postService:      service.NewPostService(store),
		commentService:   service.NewCommentService(store),
		userService:      service.NewUserService(store),
		referenceService: service.NewReferenceService(store),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())

	// Propagate the request ID into the user context for logging
	app.Use(middleware.ContextMiddleware())
	app.Use(middleware.TracingMiddleware())
	app.Use(middleware.InitMetrics(app, serviceName))

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	// CORS runs before the limiter so rejected requests still carry CORS headers.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       86400,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        globalLimitPerMin,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	api := app.Group("/api")
	writes := s.config.RateLimitWritesPerMinute

	posts := api.Group("/posts")
	posts.Post("/", middleware.RateLimit(s.redis, writes, time.Minute, "create_post"), s.CreatePost)
	posts.Get("/", s.ListAllPosts)
	// Specific routes before the generic /:userId route
	posts.Get("/symbol/:code", s.ListPostsBySymbol)
	posts.Post("/:id/like", middleware.RateLimit(s.redis, writes, time.Minute, "like_post"), s.LikePost)
	posts.Post("/:id/comments", middleware.RateLimit(s.redis, writes, time.Minute, "create_comment"), s.AddComment)
	posts.Get("/:id/comments", s.GetCommentsForPost)
	posts.Get("/:id/comments/:commentId/replies", s.GetRepliesForComment)
	posts.Get("/:userId", s.ListPostsByUser)

	users := api.Group("/users")
	users.Post("/", middleware.RateLimit(s.redis, writes, time.Minute, "create_user"), s.CreateUser)
	users.Post("/:id/score", s.UpdateScore)
	users.Get("/:username", s.GetUserByUsername)

	api.Get("/symbols", s.ListSymbols)
	api.Get("/sentiments", s.ListSentiments)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests. Redis is optional: a
// server started without it reports "disabled" and stays ready.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "disabled"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus != "healthy" || redisStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// NewApp builds a Fiber app with middleware and routes mounted.
func (s *Server) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "tickertalk API",
		BodyLimit: 1 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok && fe.Code < fiber.StatusInternalServerError {
				return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
			}
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		},
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// Start starts the server
func (s *Server) Start() error {
	s.app = s.NewApp()
	slog.Info("Server starting", slog.String("port", s.config.Port))
	return s.app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			slog.Error("error shutting down HTTP server", slog.String("error", err.Error()))
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			slog.Error("error closing sql DB", slog.String("error", cerr.Error()))
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			slog.Error("error closing redis", slog.String("error", rerr.Error()))
		}
	}

	slog.Info("Server shutdown complete")
	return nil
}
