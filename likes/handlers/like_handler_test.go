package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidtube/api/internal/types"
	"github.com/vidtube/api/likes/handlers"
	"github.com/vidtube/api/likes/models"
)

// MockLikeService implements the LikeService interface for testing
type MockLikeService struct {
	toggleVideoLikeFunc   func(ctx context.Context, videoID, userID uuid.UUID) (*models.ToggleResponse, error)
	toggleCommentLikeFunc func(ctx context.Context, commentID, userID uuid.UUID) (*models.ToggleResponse, error)
	toggleTweetLikeFunc   func(ctx context.Context, tweetID, userID uuid.UUID) (*models.ToggleResponse, error)
	getLikedVideosFunc    func(ctx context.Context, userID uuid.UUID) ([]models.LikedVideo, error)
}

func (m *MockLikeService) ToggleVideoLike(ctx context.Context, videoID, userID uuid.UUID) (*models.ToggleResponse, error) {
	if m.toggleVideoLikeFunc != nil {
		return m.toggleVideoLikeFunc(ctx, videoID, userID)
	}
	return &models.ToggleResponse{}, nil
}

func (m *MockLikeService) ToggleCommentLike(ctx context.Context, commentID, userID uuid.UUID) (*models.ToggleResponse, error) {
	if m.toggleCommentLikeFunc != nil {
		return m.toggleCommentLikeFunc(ctx, commentID, userID)
	}
	return &models.ToggleResponse{}, nil
}

func (m *MockLikeService) ToggleTweetLike(ctx context.Context, tweetID, userID uuid.UUID) (*models.ToggleResponse, error) {
	if m.toggleTweetLikeFunc != nil {
		return m.toggleTweetLikeFunc(ctx, tweetID, userID)
	}
	return &models.ToggleResponse{}, nil
}

func (m *MockLikeService) GetLikedVideos(ctx context.Context, userID uuid.UUID) ([]models.LikedVideo, error) {
	if m.getLikedVideosFunc != nil {
		return m.getLikedVideosFunc(ctx, userID)
	}
	return []models.LikedVideo{}, nil
}

func withUserContext(app *fiber.App, userID uuid.UUID) {
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(types.UserCtxName, types.UserContext{
			UserID:      userID,
			Username:    "testuser",
			DisplayName: "Test User",
		})
		return c.Next()
	})
}

func TestLikeHandler_ToggleVideoLike(t *testing.T) {
	videoID, _ := uuid.NewV4()
	userID, _ := uuid.NewV4()

	t.Run("Like", func(t *testing.T) {
		mockService := &MockLikeService{
			toggleVideoLikeFunc: func(ctx context.Context, vID, uID uuid.UUID) (*models.ToggleResponse, error) {
				assert.Equal(t, videoID, vID)
				assert.Equal(t, userID, uID)
				return &models.ToggleResponse{IsLiked: true}, nil
			},
		}

		handler := handlers.NewLikeHandler(mockService)
		app := fiber.New()
		withUserContext(app, userID)
		app.Post("/likes/video/:videoId", handler.ToggleVideoLike)

		req := httptest.NewRequest("POST", "/likes/video/"+videoID.String(), nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var response struct {
			Message string `json:"message"`
			Data    struct {
				IsLiked bool `json:"isLiked"`
			} `json:"data"`
		}
		err = json.NewDecoder(resp.Body).Decode(&response)
		require.NoError(t, err)
		assert.Equal(t, "Video liked successfully", response.Message)
		assert.True(t, response.Data.IsLiked)
	})

	t.Run("Unlike", func(t *testing.T) {
		mockService := &MockLikeService{
			toggleVideoLikeFunc: func(ctx context.Context, vID, uID uuid.UUID) (*models.ToggleResponse, error) {
				return &models.ToggleResponse{IsLiked: false}, nil
			},
		}

		handler := handlers.NewLikeHandler(mockService)
		app := fiber.New()
		withUserContext(app, userID)
		app.Post("/likes/video/:videoId", handler.ToggleVideoLike)

		req := httptest.NewRequest("POST", "/likes/video/"+videoID.String(), nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var response struct {
			Message string `json:"message"`
			Data    struct {
				IsLiked bool `json:"isLiked"`
			} `json:"data"`
		}
		err = json.NewDecoder(resp.Body).Decode(&response)
		require.NoError(t, err)
		assert.Equal(t, "Video unliked successfully", response.Message)
		assert.False(t, response.Data.IsLiked)
	})

	t.Run("Invalid video id", func(t *testing.T) {
		handler := handlers.NewLikeHandler(&MockLikeService{})
		app := fiber.New()
		withUserContext(app, userID)
		app.Post("/likes/video/:videoId", handler.ToggleVideoLike)

		req := httptest.NewRequest("POST", "/likes/video/not-a-uuid", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Missing user context", func(t *testing.T) {
		handler := handlers.NewLikeHandler(&MockLikeService{})
		app := fiber.New()
		app.Post("/likes/video/:videoId", handler.ToggleVideoLike)

		req := httptest.NewRequest("POST", "/likes/video/"+videoID.String(), nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestLikeHandler_ToggleCommentLike(t *testing.T) {
	commentID, _ := uuid.NewV4()
	userID, _ := uuid.NewV4()

	mockService := &MockLikeService{
		toggleCommentLikeFunc: func(ctx context.Context, cID, uID uuid.UUID) (*models.ToggleResponse, error) {
			assert.Equal(t, commentID, cID)
			return &models.ToggleResponse{IsLiked: true}, nil
		},
	}

	handler := handlers.NewLikeHandler(mockService)
	app := fiber.New()
	withUserContext(app, userID)
	app.Post("/likes/comment/:commentId", handler.ToggleCommentLike)

	req := httptest.NewRequest("POST", "/likes/comment/"+commentID.String(), nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var response struct {
		Message string `json:"message"`
	}
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)
	assert.Equal(t, "Comment liked successfully", response.Message)
}

func TestLikeHandler_ToggleTweetLike(t *testing.T) {
	tweetID, _ := uuid.NewV4()
	userID, _ := uuid.NewV4()

	mockService := &MockLikeService{
		toggleTweetLikeFunc: func(ctx context.Context, tID, uID uuid.UUID) (*models.ToggleResponse, error) {
			assert.Equal(t, tweetID, tID)
			return &models.ToggleResponse{IsLiked: false}, nil
		},
	}

	handler := handlers.NewLikeHandler(mockService)
	app := fiber.New()
	withUserContext(app, userID)
	app.Post("/likes/tweet/:tweetId", handler.ToggleTweetLike)

	req := httptest.NewRequest("POST", "/likes/tweet/"+tweetID.String(), nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var response struct {
		Message string `json:"message"`
	}
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)
	assert.Equal(t, "Tweet unliked successfully", response.Message)
}

func TestLikeHandler_GetLikedVideos(t *testing.T) {
	userID, _ := uuid.NewV4()

	t.Run("Success", func(t *testing.T) {
		videoID, _ := uuid.NewV4()
		mockService := &MockLikeService{
			getLikedVideosFunc: func(ctx context.Context, uID uuid.UUID) ([]models.LikedVideo, error) {
				assert.Equal(t, userID, uID)
				return []models.LikedVideo{
					{
						ID:    videoID,
						Title: "a video",
						Owner: models.OwnerDetails{Username: "alice", Fullname: "Alice", Avatar: "a.png"},
					},
				}, nil
			},
		}

		handler := handlers.NewLikeHandler(mockService)
		app := fiber.New()
		withUserContext(app, userID)
		app.Get("/likes/videos", handler.GetLikedVideos)

		req := httptest.NewRequest("GET", "/likes/videos", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var response struct {
			Message string `json:"message"`
			Data    []struct {
				ID    string `json:"id"`
				Title string `json:"title"`
			} `json:"data"`
		}
		err = json.NewDecoder(resp.Body).Decode(&response)
		require.NoError(t, err)
		assert.Equal(t, "All liked videos fetched successfully", response.Message)
		require.Len(t, response.Data, 1)
		assert.Equal(t, videoID.String(), response.Data[0].ID)
	})

	t.Run("Missing user context", func(t *testing.T) {
		handler := handlers.NewLikeHandler(&MockLikeService{})
		app := fiber.New()
		app.Get("/likes/videos", handler.GetLikedVideos)

		req := httptest.NewRequest("GET", "/likes/videos", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
