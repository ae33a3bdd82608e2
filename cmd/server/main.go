package main

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/vidtube/api/comments"
	commentHandlers "github.com/vidtube/api/comments/handlers"
	commentRepository "github.com/vidtube/api/comments/repository"
	commentServices "github.com/vidtube/api/comments/services"
	"github.com/vidtube/api/internal/cache"
	"github.com/vidtube/api/internal/database/postgres"
	"github.com/vidtube/api/internal/pkg/log"
	platformconfig "github.com/vidtube/api/internal/platform/config"
	"github.com/vidtube/api/likes"
	likeHandlers "github.com/vidtube/api/likes/handlers"
	likeRepository "github.com/vidtube/api/likes/repository"
	likeServices "github.com/vidtube/api/likes/services"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		log.Error("Failed to load platform config: %v", err)
		panic(err)
	}
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			// If response already set by handler, don't override it
			if len(c.Response().Body()) > 0 {
				return nil
			}

			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	// Carry the request id into the context handlers pass to services,
	// so service and cache logs correlate with the request.
	app.Use(func(c *fiber.Ctx) error {
		if rid, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok && rid != "" {
			c.SetUserContext(log.WithRequestID(c.UserContext(), rid))
		}
		return c.Next()
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, OPTIONS",
	}))

	if cfg.Server.Debug {
		log.Dump(cfg.Server, cfg.Cache)
	}

	ctx := context.Background()

	pgClient, err := postgres.NewClient(ctx, &cfg.Database.Postgres)
	if err != nil {
		log.Error("Failed to connect to postgres: %v", err)
		panic(err)
	}
	defer pgClient.Close()

	backend, err := cache.New(&cfg.Cache)
	if err != nil {
		log.Error("Failed to initialize cache backend: %v", err)
		panic(err)
	}
	cacheService := cache.NewService(backend, &cfg.Cache)
	if cacheService != nil {
		defer cacheService.Close()
	}

	commentRepo := commentRepository.NewPostgresCommentRepository(pgClient)
	likeRepo := likeRepository.NewPostgresLikeRepository(pgClient)

	commentService := commentServices.NewCommentService(commentRepo, cacheService)
	likeService := likeServices.NewLikeService(likeRepo, cacheService)

	api := app.Group(cfg.Server.BaseRoute)

	comments.RegisterRoutes(api, &comments.CommentsHandlers{
		CommentHandler: commentHandlers.NewCommentHandler(commentService),
	}, cfg)
	likes.RegisterRoutes(api, &likes.LikesHandlers{
		LikeHandler: likeHandlers.NewLikeHandler(likeService),
	}, cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("Starting vidtube API server (Comments + Likes) on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Error("Server stopped: %v", err)
		panic(err)
	}
}
