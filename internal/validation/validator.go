package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/portfolio-cms-api/internal/models"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidateArticleInput validates an admin article payload
func ValidateArticleInput(input *models.ArticleInput, now time.Time) []ValidationError {
	var errors []ValidationError

	// Validate slug
	if input.Slug == "" {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug is required"})
	} else if !slugRegex.MatchString(input.Slug) {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug must be lowercase alphanumeric with hyphens", Value: input.Slug})
	}

	// Validate default-locale title; the Persian title may lag behind
	if input.TitleEn == "" {
		errors = append(errors, ValidationError{Field: "title_en", Message: "title_en is required"})
	}

	// Validate status and its scheduling latch
	status := models.ArticleStatus(input.Status)
	if input.Status == "" {
		errors = append(errors, ValidationError{Field: "status", Message: "status is required"})
	} else if !models.ValidArticleStatuses[status] {
		errors = append(errors, ValidationError{
			Field:   "status",
			Message: "invalid status, must be one of: draft, scheduled, published",
			Value:   input.Status,
		})
	} else {
		switch status {
		case models.ArticleStatusScheduled:
			if input.ScheduledPublishAt == nil {
				errors = append(errors, ValidationError{Field: "scheduled_publish_at", Message: "scheduled articles require scheduled_publish_at"})
			} else if !input.ScheduledPublishAt.After(now) {
				errors = append(errors, ValidationError{Field: "scheduled_publish_at", Message: "scheduled_publish_at must be in the future", Value: input.ScheduledPublishAt})
			}
		default:
			if input.ScheduledPublishAt != nil {
				errors = append(errors, ValidationError{Field: "scheduled_publish_at", Message: "only scheduled articles may carry scheduled_publish_at"})
			}
		}
	}

	return errors
}

// ValidateCommentInput validates a public comment payload
func ValidateCommentInput(input *models.CommentInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.AuthorName) == "" {
		errors = append(errors, ValidationError{Field: "author_name", Message: "author_name is required"})
	}

	if input.AuthorEmail != "" && !emailRegex.MatchString(input.AuthorEmail) {
		errors = append(errors, ValidationError{Field: "author_email", Message: "invalid email format", Value: input.AuthorEmail})
	}

	body := strings.TrimSpace(input.Body)
	if body == "" {
		errors = append(errors, ValidationError{Field: "body", Message: "body is required"})
	} else if len(strings.Fields(body)) > models.MaxCommentWords {
		errors = append(errors, ValidationError{
			Field:   "body",
			Message: fmt.Sprintf("body exceeds %d words", models.MaxCommentWords),
		})
	}

	return errors
}
