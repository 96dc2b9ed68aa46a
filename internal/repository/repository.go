package repository

import (
	"context"
	"time"

	"github.com/portfolio-cms-api/internal/database"
	"github.com/portfolio-cms-api/internal/models"
)

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	ListPublished(ctx context.Context, limit, offset int) ([]*models.Article, error)
	List(ctx context.Context, status string, limit, offset int) ([]*models.Article, error)
	PublishedSlugs(ctx context.Context) ([]string, error)
	// PublishDue transitions every article still in scheduled state whose
	// scheduled_publish_at has elapsed to published, in a single
	// conditional update. Overlapping invocations converge: the second
	// one matches zero rows. Returns the slugs that were published.
	PublishDue(ctx context.Context, now time.Time) ([]string, error)
	Count(ctx context.Context) (int, error)
}

// ProjectRepository defines the interface for project data operations
type ProjectRepository interface {
	// UpsertSynced inserts or updates a GitHub-synced project, matched on
	// its GitHub repository id. Admin-managed fields are left untouched
	// on update.
	UpsertSynced(ctx context.Context, project *models.Project) error
	List(ctx context.Context, includeHidden bool) ([]*models.Project, error)
	GetByRepoID(ctx context.Context, repoID int64) (*models.Project, error)
	Count(ctx context.Context) (int, error)
}

// SettingsRepository provides access to the single sync_settings row
type SettingsRepository interface {
	Get(ctx context.Context) (*models.SyncSettings, error)
	Update(ctx context.Context, settings *models.SyncSettings) error
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListApproved(ctx context.Context, articleID string) ([]*models.Comment, error)
	ListPending(ctx context.Context) ([]*models.Comment, error)
	Approve(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article  ArticleRepository
	Project  ProjectRepository
	Settings SettingsRepository
	Comment  CommentRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Article:  NewArticleRepo(db),
		Project:  NewProjectRepo(db),
		Settings: NewSettingsRepo(db),
		Comment:  NewCommentRepo(db),
	}
}
