package likes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vidtube/api/internal/middleware/authjwt"
	platformconfig "github.com/vidtube/api/internal/platform/config"
	"github.com/vidtube/api/likes/handlers"
)

// LikesHandlers holds all the handlers this router needs
type LikesHandlers struct {
	LikeHandler *handlers.LikeHandler
}

// RegisterRoutes is the single entry point for setting up likes routes
func RegisterRoutes(app fiber.Router, handlers *LikesHandlers, cfg *platformconfig.Config) {
	authMiddleware := authjwt.New(authjwt.Config{
		PublicKey: cfg.JWT.PublicKey,
	})

	group := app.Group("/likes", authMiddleware)

	group.Post("/video/:videoId", handlers.LikeHandler.ToggleVideoLike)
	group.Post("/comment/:commentId", handlers.LikeHandler.ToggleCommentLike)
	group.Post("/tweet/:tweetId", handlers.LikeHandler.ToggleTweetLike)
	group.Get("/videos", handlers.LikeHandler.GetLikedVideos)
}
