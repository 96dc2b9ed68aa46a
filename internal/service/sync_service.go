package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/portfolio-cms-api/internal/github"
	"github.com/portfolio-cms-api/internal/i18n"
	"github.com/portfolio-cms-api/internal/models"
	"github.com/portfolio-cms-api/internal/repository"
	"github.com/rs/zerolog"
)

// SyncService reconciles the project store with the owner's GitHub
// repositories. Upserts are keyed on the GitHub repo id, so repeated runs
// against an unchanged repository list converge instead of duplicating.
type SyncService struct {
	settings repository.SettingsRepository
	projects repository.ProjectRepository
	github   RepoLister
	rev      Revalidator
	log      zerolog.Logger
}

// NewSyncService creates a new SyncService
func NewSyncService(
	settings repository.SettingsRepository,
	projects repository.ProjectRepository,
	gh RepoLister,
	rev Revalidator,
	log zerolog.Logger,
) *SyncService {
	return &SyncService{
		settings: settings,
		projects: projects,
		github:   gh,
		rev:      rev,
		log:      log.With().Str("task", "github_sync").Logger(),
	}
}

// Run performs one sync pass. Disabled sync or a missing username yields a
// skipped result with no network call; fetch and persistence failures are
// returned inside the result, never as a panic or process abort.
func (s *SyncService) Run(ctx context.Context) *models.SyncTaskResult {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return &models.SyncTaskResult{Error: fmt.Sprintf("read sync settings: %v", err)}
	}

	if !settings.SyncEnabled || settings.GithubUsername == "" {
		s.log.Info().Msg("GitHub sync disabled, skipping")
		return &models.SyncTaskResult{Success: true, Skipped: true, Message: "github sync disabled"}
	}

	repos, err := s.github.ListUserRepos(ctx, settings.GithubUsername)
	if err != nil {
		return &models.SyncTaskResult{Error: fmt.Sprintf("list repositories for %s: %v", settings.GithubUsername, err)}
	}

	synced := 0
	failed := 0
	for i := range repos {
		repo := &repos[i]
		if repo.Fork || repo.Archived {
			continue
		}

		if err := s.projects.UpsertSynced(ctx, projectFromRepo(repo)); err != nil {
			failed++
			s.log.Error().Err(err).Str("repo", repo.FullName).Msg("Failed to upsert project")
			continue
		}
		synced++
	}

	s.log.Info().
		Int("fetched", len(repos)).
		Int("synced", synced).
		Int("failed", failed).
		Msg("GitHub sync completed")

	// Persistence failures are task-level errors even when other repos
	// made it through; the partial count still reports what did.
	if failed > 0 {
		if synced > 0 {
			s.rev.Revalidate(ctx, localePaths("/")...)
		}
		return &models.SyncTaskResult{
			Synced: synced,
			Error:  fmt.Sprintf("%d of %d repositories failed to upsert", failed, synced+failed),
		}
	}

	// Home pages show the project list; mark them stale in every locale
	s.rev.Revalidate(ctx, localePaths("/")...)

	return &models.SyncTaskResult{Success: true, Synced: synced}
}

// projectFromRepo maps a GitHub repository onto the project shape. The
// generated id only applies on insert; conflicts keep the existing row id.
func projectFromRepo(repo *github.Repo) *models.Project {
	repoID := repo.ID
	return &models.Project{
		ID:             uuid.New().String(),
		GithubRepoID:   &repoID,
		TitleEn:        repo.Name,
		Description:    repo.Description,
		URL:            repo.HTMLURL,
		Language:       repo.Language,
		Stars:          repo.StargazersCount,
		Forks:          repo.ForksCount,
		IsGithubSynced: true,
		Status:         models.ProjectStatusVisible,
	}
}

// localePaths prefixes a logical path with every supported locale
func localePaths(path string) []string {
	if path == "/" {
		path = ""
	}
	paths := make([]string, 0, len(i18n.Locales))
	for _, locale := range i18n.Locales {
		paths = append(paths, "/"+locale+path)
	}
	return paths
}
