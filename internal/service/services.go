package service

import (
	"context"

	"github.com/portfolio-cms-api/internal/github"
	"github.com/portfolio-cms-api/internal/models"
	"github.com/portfolio-cms-api/internal/repository"
	"github.com/rs/zerolog"
)

// RepoLister lists a user's repositories from the external VCS API
type RepoLister interface {
	ListUserRepos(ctx context.Context, username string) ([]github.Repo, error)
}

// Revalidator marks cached rendered paths as stale (fire-and-forget)
type Revalidator interface {
	Revalidate(ctx context.Context, paths ...string)
}

// CronService runs the reconciliation tasks and aggregates their outcomes
type CronService interface {
	// Run executes the named tasks. An empty list runs every registered
	// task. Unknown names are reported in the result's error list without
	// aborting the known ones.
	Run(ctx context.Context, jobs []string) *models.CronRunResult
}

// Services holds all service interfaces
type Services struct {
	Sync    *SyncService
	Publish *PublishService
	Cron    CronService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, gh RepoLister, rev Revalidator, log zerolog.Logger) *Services {
	syncSvc := NewSyncService(repos.Settings, repos.Project, gh, rev, log)
	publishSvc := NewPublishService(repos.Article, rev, log)

	return &Services{
		Sync:    syncSvc,
		Publish: publishSvc,
		Cron:    NewCronService(syncSvc, publishSvc, log),
	}
}
