package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"

	"github.com/vidtube/api/internal/types"
	"github.com/vidtube/api/likes/errors"
	"github.com/vidtube/api/likes/services"
)

// LikeHandler handles all like-related HTTP requests
type LikeHandler struct {
	likeService services.LikeService
}

// NewLikeHandler creates a new LikeHandler with injected dependencies
func NewLikeHandler(likeService services.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// ToggleVideoLike flips the acting user's like on a video
// Endpoint: POST /likes/video/:videoId
func (h *LikeHandler) ToggleVideoLike(c *fiber.Ctx) error {
	videoID, err := uuid.FromString(c.Params("videoId"))
	if err != nil {
		return errors.HandleUUIDError(c, "videoId")
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	result, err := h.likeService.ToggleVideoLike(c.UserContext(), videoID, user.UserID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	message := "Video unliked successfully"
	if result.IsLiked {
		message = "Video liked successfully"
	}
	return c.Status(http.StatusOK).JSON(types.NewResponse(http.StatusOK, result, message))
}

// ToggleCommentLike flips the acting user's like on a comment
// Endpoint: POST /likes/comment/:commentId
func (h *LikeHandler) ToggleCommentLike(c *fiber.Ctx) error {
	commentID, err := uuid.FromString(c.Params("commentId"))
	if err != nil {
		return errors.HandleUUIDError(c, "commentId")
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	result, err := h.likeService.ToggleCommentLike(c.UserContext(), commentID, user.UserID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	message := "Comment unliked successfully"
	if result.IsLiked {
		message = "Comment liked successfully"
	}
	return c.Status(http.StatusOK).JSON(types.NewResponse(http.StatusOK, result, message))
}

// ToggleTweetLike flips the acting user's like on a tweet
// Endpoint: POST /likes/tweet/:tweetId
func (h *LikeHandler) ToggleTweetLike(c *fiber.Ctx) error {
	tweetID, err := uuid.FromString(c.Params("tweetId"))
	if err != nil {
		return errors.HandleUUIDError(c, "tweetId")
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	result, err := h.likeService.ToggleTweetLike(c.UserContext(), tweetID, user.UserID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	message := "Tweet unliked successfully"
	if result.IsLiked {
		message = "Tweet liked successfully"
	}
	return c.Status(http.StatusOK).JSON(types.NewResponse(http.StatusOK, result, message))
}

// GetLikedVideos lists every video the acting user has liked
// Endpoint: GET /likes/videos
func (h *LikeHandler) GetLikedVideos(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	videos, err := h.likeService.GetLikedVideos(c.UserContext(), user.UserID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(
		types.NewResponse(http.StatusOK, videos, "All liked videos fetched successfully"))
}
