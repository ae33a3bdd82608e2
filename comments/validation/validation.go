package validation

import (
	"fmt"
	"strings"

	"github.com/vidtube/api/comments/models"
)

// ValidateAddCommentRequest validates the add comment request
func ValidateAddCommentRequest(req *models.AddCommentRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if req.Content == "" {
		return fmt.Errorf("content is required")
	}

	if len(req.Content) > 1000 {
		return fmt.Errorf("content must be less than 1000 characters")
	}

	if len(strings.TrimSpace(req.Content)) < 1 {
		return fmt.Errorf("content cannot be empty or whitespace only")
	}

	return nil
}

// ValidateUpdateCommentRequest validates the update comment request
func ValidateUpdateCommentRequest(req *models.UpdateCommentRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if req.Content == "" {
		return fmt.Errorf("content is required")
	}

	if len(req.Content) > 1000 {
		return fmt.Errorf("content must be less than 1000 characters")
	}

	if len(strings.TrimSpace(req.Content)) < 1 {
		return fmt.Errorf("content cannot be empty or whitespace only")
	}

	return nil
}

// ValidateCommentQueryFilter applies defaults and bounds to pagination
func ValidateCommentQueryFilter(filter *models.CommentQueryFilter) error {
	if filter == nil {
		return fmt.Errorf("filter is required")
	}

	if filter.Page < 1 {
		filter.Page = 1
	}

	if filter.Limit < 1 {
		filter.Limit = 10
	}

	if filter.Limit > 100 {
		filter.Limit = 100
	}

	return nil
}
