package comments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vidtube/api/comments/handlers"
	"github.com/vidtube/api/internal/middleware/authjwt"
	platformconfig "github.com/vidtube/api/internal/platform/config"
)

// CommentsHandlers holds all the handlers this router needs
type CommentsHandlers struct {
	CommentHandler *handlers.CommentHandler
}

// RegisterRoutes is the single entry point for setting up comments routes
func RegisterRoutes(app fiber.Router, handlers *CommentsHandlers, cfg *platformconfig.Config) {
	authMiddleware := authjwt.New(authjwt.Config{
		PublicKey: cfg.JWT.PublicKey,
	})
	// Listing works without identity; a token only adds per-viewer state.
	optionalAuthMiddleware := authjwt.New(authjwt.Config{
		PublicKey: cfg.JWT.PublicKey,
		Optional:  true,
	})

	group := app.Group("/comments")

	group.Get("/video/:videoId", optionalAuthMiddleware, handlers.CommentHandler.GetVideoComments)
	group.Post("/video/:videoId", authMiddleware, handlers.CommentHandler.AddComment)
	group.Put("/:commentId", authMiddleware, handlers.CommentHandler.UpdateComment)
	group.Delete("/:commentId", authMiddleware, handlers.CommentHandler.DeleteComment)
}
