package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/portfolio-cms-api/internal/database"
	"github.com/portfolio-cms-api/internal/models"
)

// projectRepo is the concrete implementation of ProjectRepository
type projectRepo struct {
	db *database.DB
}

// NewProjectRepo creates a new project repository
func NewProjectRepo(db *database.DB) ProjectRepository {
	return &projectRepo{db: db}
}

const projectColumns = `id, github_repo_id, title_en, title_fa, description, url,
	language, stars, forks, is_github_synced, sort_order, status, featured, created_at, updated_at`

// UpsertSynced inserts or updates a GitHub-synced project keyed on the
// upstream repository id. On conflict, only the synced attributes are
// rewritten; title_fa, sort_order, status and featured stay as the admin
// set them.
func (r *projectRepo) UpsertSynced(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (id, github_repo_id, title_en, title_fa, description, url,
			language, stars, forks, is_github_synced, sort_order, status, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE, $10, $11, $12, $13, $13)
		ON CONFLICT (github_repo_id) DO UPDATE
		SET title_en = EXCLUDED.title_en,
			description = EXCLUDED.description,
			url = EXCLUDED.url,
			language = EXCLUDED.language,
			stars = EXCLUDED.stars,
			forks = EXCLUDED.forks,
			is_github_synced = TRUE,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.ExecContext(ctx, query,
		project.ID, project.GithubRepoID, project.TitleEn, project.TitleFa,
		project.Description, project.URL, project.Language, project.Stars, project.Forks,
		project.SortOrder, project.Status, project.Featured, time.Now(),
	)
	return err
}

// List retrieves projects, featured first, then by sort order
func (r *projectRepo) List(ctx context.Context, includeHidden bool) ([]*models.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE ($1 OR status = 'visible')
		ORDER BY featured DESC, sort_order ASC, stars DESC
	`
	rows, err := r.db.QueryContext(ctx, query, includeHidden)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

// GetByRepoID retrieves a project by its GitHub repository id
func (r *projectRepo) GetByRepoID(ctx context.Context, repoID int64) (*models.Project, error) {
	query := "SELECT " + projectColumns + " FROM projects WHERE github_repo_id = $1"
	project, err := scanProject(r.db.QueryRowContext(ctx, query, repoID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return project, nil
}

// Count returns the total number of projects
func (r *projectRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM projects").Scan(&count)
	return count, err
}

func scanProject(row rowScanner) (*models.Project, error) {
	var project models.Project
	var repoID sql.NullInt64
	var language sql.NullString

	err := row.Scan(
		&project.ID, &repoID, &project.TitleEn, &project.TitleFa,
		&project.Description, &project.URL, &language, &project.Stars, &project.Forks,
		&project.IsGithubSynced, &project.SortOrder, &project.Status, &project.Featured,
		&project.CreatedAt, &project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if repoID.Valid {
		project.GithubRepoID = &repoID.Int64
	}
	if language.Valid {
		project.Language = language.String
	}
	return &project, nil
}
