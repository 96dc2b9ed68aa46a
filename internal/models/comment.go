package models

import (
	"time"
)

// CommentStatus represents the moderation state of a comment
type CommentStatus string

const (
	CommentStatusPending  CommentStatus = "pending"
	CommentStatusApproved CommentStatus = "approved"
)

// Comment represents a visitor comment on an article.
// New comments start as pending and become visible after moderation.
type Comment struct {
	ID          string        `json:"id" db:"id"`
	ArticleID   string        `json:"article_id" db:"article_id"`
	AuthorName  string        `json:"author_name" db:"author_name"`
	AuthorEmail string        `json:"-" db:"author_email"`
	Body        string        `json:"body" db:"body"`
	Status      CommentStatus `json:"status" db:"status"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
}

// CommentInput is the public payload for creating a comment
type CommentInput struct {
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email,omitempty"`
	Body        string `json:"body"`
}

// MaxCommentWords is the maximum allowed words in a comment body
const MaxCommentWords = 500
