package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/portfolio-cms-api/internal/database"
	"github.com/portfolio-cms-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

const articleColumns = `id, slug, title_en, title_fa, excerpt_en, excerpt_fa,
	content_en, content_fa, status, scheduled_publish_at, published_at, created_at, updated_at`

// Create inserts a new article
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	query := `
		INSERT INTO articles (id, slug, title_en, title_fa, excerpt_en, excerpt_fa,
			content_en, content_fa, status, scheduled_publish_at, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		article.ID, article.Slug, article.TitleEn, article.TitleFa,
		article.ExcerptEn, article.ExcerptFa, article.ContentEn, article.ContentFa,
		article.Status, article.ScheduledPublishAt, article.PublishedAt,
		now, now,
	)
	return err
}

// Update rewrites the editable fields of an article
func (r *articleRepo) Update(ctx context.Context, article *models.Article) error {
	query := `
		UPDATE articles
		SET slug = $2, title_en = $3, title_fa = $4, excerpt_en = $5, excerpt_fa = $6,
			content_en = $7, content_fa = $8, status = $9, scheduled_publish_at = $10,
			published_at = $11, updated_at = $12
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		article.ID, article.Slug, article.TitleEn, article.TitleFa,
		article.ExcerptEn, article.ExcerptFa, article.ContentEn, article.ContentFa,
		article.Status, article.ScheduledPublishAt, article.PublishedAt,
		time.Now(),
	)
	return err
}

// Delete removes an article and its comments (FK cascade)
func (r *articleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = $1", id)
	return err
}

// GetByID retrieves an article by ID
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	return r.getOne(ctx, "SELECT "+articleColumns+" FROM articles WHERE id = $1", id)
}

// GetBySlug retrieves an article by slug
func (r *articleRepo) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	return r.getOne(ctx, "SELECT "+articleColumns+" FROM articles WHERE slug = $1", slug)
}

func (r *articleRepo) getOne(ctx context.Context, query string, arg interface{}) (*models.Article, error) {
	row := r.db.QueryRowContext(ctx, query, arg)
	article, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

// SlugExists checks if an article with the given slug exists
func (r *articleRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1)", slug).Scan(&exists)
	return exists, err
}

// ListPublished retrieves published articles, newest first
func (r *articleRepo) ListPublished(ctx context.Context, limit, offset int) ([]*models.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE status = 'published'
		ORDER BY published_at DESC
		LIMIT $1 OFFSET $2
	`
	return r.list(ctx, query, limit, offset)
}

// List retrieves articles of any status for the admin panel
func (r *articleRepo) List(ctx context.Context, status string, limit, offset int) ([]*models.Article, error) {
	if status != "" {
		query := `
			SELECT ` + articleColumns + `
			FROM articles
			WHERE status = $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3
		`
		return r.list(ctx, query, status, limit, offset)
	}
	query := `
		SELECT ` + articleColumns + `
		FROM articles
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	return r.list(ctx, query, limit, offset)
}

func (r *articleRepo) list(ctx context.Context, query string, args ...interface{}) ([]*models.Article, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*models.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// PublishedSlugs retrieves the slugs of all published articles (sitemap)
func (r *articleRepo) PublishedSlugs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT slug FROM articles WHERE status = 'published' ORDER BY published_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, err
		}
		slugs = append(slugs, slug)
	}
	return slugs, rows.Err()
}

// PublishDue performs the scheduled -> published transition as one
// conditional update. Rows already published are never matched again, so
// overlapping cron invocations publish each article at most once.
func (r *articleRepo) PublishDue(ctx context.Context, now time.Time) ([]string, error) {
	query := `
		UPDATE articles
		SET status = 'published', published_at = $1, scheduled_publish_at = NULL, updated_at = $1
		WHERE status = 'scheduled' AND scheduled_publish_at <= $1
		RETURNING slug
	`
	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, err
		}
		slugs = append(slugs, slug)
	}
	return slugs, rows.Err()
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanArticle(row rowScanner) (*models.Article, error) {
	var article models.Article
	var scheduledAt, publishedAt sql.NullTime

	err := row.Scan(
		&article.ID, &article.Slug, &article.TitleEn, &article.TitleFa,
		&article.ExcerptEn, &article.ExcerptFa, &article.ContentEn, &article.ContentFa,
		&article.Status, &scheduledAt, &publishedAt, &article.CreatedAt, &article.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if scheduledAt.Valid {
		article.ScheduledPublishAt = &scheduledAt.Time
	}
	if publishedAt.Valid {
		article.PublishedAt = &publishedAt.Time
	}
	return &article, nil
}
