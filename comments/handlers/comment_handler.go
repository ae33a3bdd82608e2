package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"

	"github.com/vidtube/api/comments/errors"
	"github.com/vidtube/api/comments/models"
	"github.com/vidtube/api/comments/services"
	"github.com/vidtube/api/internal/types"
)

// CommentHandler handles all comment-related HTTP requests
type CommentHandler struct {
	commentService services.CommentService
}

// NewCommentHandler creates a new CommentHandler with injected dependencies
func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// GetVideoComments lists a video's comments, paginated and enriched.
// Identity is optional; an authenticated viewer gets per-comment isLiked.
// Endpoint: GET /comments/video/:videoId?page=&limit=
func (h *CommentHandler) GetVideoComments(c *fiber.Ctx) error {
	videoID, err := uuid.FromString(c.Params("videoId"))
	if err != nil {
		return errors.HandleUUIDError(c, "videoId")
	}

	filter := models.CommentQueryFilter{
		Page:  parseQueryInt(c, "page", 1),
		Limit: parseQueryInt(c, "limit", 10),
	}

	viewerID := uuid.Nil
	if user, ok := c.Locals(types.UserCtxName).(types.UserContext); ok {
		viewerID = user.UserID
	}

	result, err := h.commentService.GetVideoComments(c.UserContext(), videoID, viewerID, filter)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(
		types.NewResponse(http.StatusOK, result, "Comments fetched successfully"))
}

// AddComment creates a comment on a video for the acting user
// Endpoint: POST /comments/video/:videoId
func (h *CommentHandler) AddComment(c *fiber.Ctx) error {
	videoID, err := uuid.FromString(c.Params("videoId"))
	if err != nil {
		return errors.HandleUUIDError(c, "videoId")
	}

	var req models.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	comment, err := h.commentService.AddComment(c.UserContext(), videoID, user.UserID, &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(
		types.NewResponse(http.StatusOK, comment, "Comment added successfully"))
}

// UpdateComment replaces a comment's content; only the owner may do this
// Endpoint: PUT /comments/:commentId
func (h *CommentHandler) UpdateComment(c *fiber.Ctx) error {
	commentID, err := uuid.FromString(c.Params("commentId"))
	if err != nil {
		return errors.HandleUUIDError(c, "commentId")
	}

	var req models.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	comment, err := h.commentService.UpdateComment(c.UserContext(), commentID, user.UserID, &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(
		types.NewResponse(http.StatusOK, comment, "Comment updated successfully"))
}

// DeleteComment removes a comment permanently; only the owner may do this
// Endpoint: DELETE /comments/:commentId
func (h *CommentHandler) DeleteComment(c *fiber.Ctx) error {
	commentID, err := uuid.FromString(c.Params("commentId"))
	if err != nil {
		return errors.HandleUUIDError(c, "commentId")
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	comment, err := h.commentService.DeleteComment(c.UserContext(), commentID, user.UserID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(
		types.NewResponse(http.StatusOK, comment, "Comment deleted successfully"))
}

func parseQueryInt(c *fiber.Ctx, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
