package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/portfolio-cms-api/internal/models"
)

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	mu         sync.Mutex
	Articles   map[string]*models.Article // keyed by ID
	GetErr     error
	PublishErr error
}

// NewMockArticleRepository creates a new mock article repository
func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles: make(map[string]*models.Article),
	}
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.Articles[article.ID]; exists {
		return fmt.Errorf("article %s already exists", article.ID)
	}
	m.Articles[article.ID] = article
	return nil
}

func (m *MockArticleRepository) Update(ctx context.Context, article *models.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Articles[article.ID] = article
	return nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Articles, id)
	return nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Articles[id], nil
}

func (m *MockArticleRepository) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.Articles {
		if a.Slug == slug {
			return a, nil
		}
	}
	return nil, nil
}

func (m *MockArticleRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	a, _ := m.GetBySlug(ctx, slug)
	return a != nil, nil
}

func (m *MockArticleRepository) ListPublished(ctx context.Context, limit, offset int) ([]*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Article
	for _, a := range m.Articles {
		if a.Status == models.ArticleStatusPublished {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MockArticleRepository) List(ctx context.Context, status string, limit, offset int) ([]*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Article
	for _, a := range m.Articles {
		if status == "" || string(a.Status) == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MockArticleRepository) PublishedSlugs(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var slugs []string
	for _, a := range m.Articles {
		if a.Status == models.ArticleStatusPublished {
			slugs = append(slugs, a.Slug)
		}
	}
	return slugs, nil
}

// PublishDue mirrors the conditional UPDATE of the real repository: only
// rows still in scheduled state with an elapsed publish time transition.
func (m *MockArticleRepository) PublishDue(ctx context.Context, now time.Time) ([]string, error) {
	if m.PublishErr != nil {
		return nil, m.PublishErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var slugs []string
	for _, a := range m.Articles {
		if a.Status == models.ArticleStatusScheduled &&
			a.ScheduledPublishAt != nil && !a.ScheduledPublishAt.After(now) {
			a.Status = models.ArticleStatusPublished
			publishedAt := now
			a.PublishedAt = &publishedAt
			a.ScheduledPublishAt = nil
			slugs = append(slugs, a.Slug)
		}
	}
	return slugs, nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Articles), nil
}

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	mu        sync.Mutex
	Projects  map[int64]*models.Project // synced projects keyed by GitHub repo id
	UpsertErr error
	Upserts   int
}

// NewMockProjectRepository creates a new mock project repository
func NewMockProjectRepository() *MockProjectRepository {
	return &MockProjectRepository{
		Projects: make(map[int64]*models.Project),
	}
}

// UpsertSynced mirrors the ON CONFLICT behavior: an existing row keeps its
// id and admin-managed fields, the synced attributes are rewritten.
func (m *MockProjectRepository) UpsertSynced(ctx context.Context, project *models.Project) error {
	if m.UpsertErr != nil {
		return m.UpsertErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Upserts++

	repoID := *project.GithubRepoID
	if existing, ok := m.Projects[repoID]; ok {
		existing.TitleEn = project.TitleEn
		existing.Description = project.Description
		existing.URL = project.URL
		existing.Language = project.Language
		existing.Stars = project.Stars
		existing.Forks = project.Forks
		existing.IsGithubSynced = true
		return nil
	}
	m.Projects[repoID] = project
	return nil
}

func (m *MockProjectRepository) List(ctx context.Context, includeHidden bool) ([]*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Project
	for _, p := range m.Projects {
		if includeHidden || p.Status == models.ProjectStatusVisible {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MockProjectRepository) GetByRepoID(ctx context.Context, repoID int64) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Projects[repoID], nil
}

func (m *MockProjectRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Projects), nil
}

// MockSettingsRepository is a mock implementation of SettingsRepository
type MockSettingsRepository struct {
	Settings *models.SyncSettings
	GetErr   error
}

// NewMockSettingsRepository creates a mock settings repository with sync
// enabled for the given username
func NewMockSettingsRepository(enabled bool, username string) *MockSettingsRepository {
	return &MockSettingsRepository{
		Settings: &models.SyncSettings{
			SyncEnabled:    enabled,
			GithubUsername: username,
			UpdatedAt:      time.Now(),
		},
	}
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*models.SyncSettings, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.Settings, nil
}

func (m *MockSettingsRepository) Update(ctx context.Context, settings *models.SyncSettings) error {
	m.Settings = settings
	return nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	mu       sync.Mutex
	Comments map[string]*models.Comment
}

// NewMockCommentRepository creates a new mock comment repository
func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[string]*models.Comment),
	}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Comments[comment.ID] = comment
	return nil
}

func (m *MockCommentRepository) ListApproved(ctx context.Context, articleID string) ([]*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Comment
	for _, c := range m.Comments {
		if c.ArticleID == articleID && c.Status == models.CommentStatusApproved {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MockCommentRepository) ListPending(ctx context.Context) ([]*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Comment
	for _, c := range m.Comments {
		if c.Status == models.CommentStatusPending {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MockCommentRepository) Approve(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.Comments[id]
	if !ok || c.Status != models.CommentStatusPending {
		return false, nil
	}
	c.Status = models.CommentStatusApproved
	return true, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Comments, id)
	return nil
}
