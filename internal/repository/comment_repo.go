package repository

import (
	"context"
	"time"

	"github.com/portfolio-cms-api/internal/database"
	"github.com/portfolio-cms-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment in pending state
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, article_id, author_name, author_email, body, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.ArticleID, comment.AuthorName, comment.AuthorEmail,
		comment.Body, comment.Status, time.Now(),
	)
	return err
}

// ListApproved retrieves visible comments for an article, oldest first
func (r *commentRepo) ListApproved(ctx context.Context, articleID string) ([]*models.Comment, error) {
	query := `
		SELECT id, article_id, author_name, author_email, body, status, created_at
		FROM comments
		WHERE article_id = $1 AND status = 'approved'
		ORDER BY created_at ASC
	`
	return r.list(ctx, query, articleID)
}

// ListPending retrieves comments awaiting moderation
func (r *commentRepo) ListPending(ctx context.Context) ([]*models.Comment, error) {
	query := `
		SELECT id, article_id, author_name, author_email, body, status, created_at
		FROM comments
		WHERE status = 'pending'
		ORDER BY created_at ASC
	`
	return r.list(ctx, query)
}

func (r *commentRepo) list(ctx context.Context, query string, args ...interface{}) ([]*models.Comment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID, &comment.ArticleID, &comment.AuthorName, &comment.AuthorEmail,
			&comment.Body, &comment.Status, &comment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}
	return comments, rows.Err()
}

// Approve marks a pending comment as approved. Returns false when no
// pending comment with that id exists.
func (r *commentRepo) Approve(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE comments SET status = 'approved' WHERE id = $1 AND status = 'pending'", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Delete removes a comment
func (r *commentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE id = $1", id)
	return err
}
