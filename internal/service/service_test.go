package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/portfolio-cms-api/internal/github"
	"github.com/portfolio-cms-api/internal/mocks"
	"github.com/portfolio-cms-api/internal/models"
	"github.com/portfolio-cms-api/internal/service"
	"github.com/rs/zerolog"
)

type fixture struct {
	articles *mocks.MockArticleRepository
	projects *mocks.MockProjectRepository
	settings *mocks.MockSettingsRepository
	lister   *mocks.MockRepoLister
	rev      *mocks.RecordingRevalidator
	sync     *service.SyncService
	publish  *service.PublishService
	cron     service.CronService
}

func newFixture(syncEnabled bool, repos ...github.Repo) *fixture {
	f := &fixture{
		articles: mocks.NewMockArticleRepository(),
		projects: mocks.NewMockProjectRepository(),
		settings: mocks.NewMockSettingsRepository(syncEnabled, "octocat"),
		lister:   mocks.NewMockRepoLister(repos...),
		rev:      mocks.NewRecordingRevalidator(),
	}
	log := zerolog.Nop()
	f.sync = service.NewSyncService(f.settings, f.projects, f.lister, f.rev, log)
	f.publish = service.NewPublishService(f.articles, f.rev, log)
	f.cron = service.NewCronService(f.sync, f.publish, log)
	return f
}

func githubRepo(id int64, name string) github.Repo {
	return github.Repo{
		ID:              id,
		Name:            name,
		FullName:        "octocat/" + name,
		Description:     "a project",
		HTMLURL:         "https://github.com/octocat/" + name,
		Language:        "Go",
		StargazersCount: 10,
	}
}

func scheduledArticle(id, slug string, publishAt time.Time) *models.Article {
	at := publishAt
	return &models.Article{
		ID:                 id,
		Slug:               slug,
		TitleEn:            "Title " + slug,
		Status:             models.ArticleStatusScheduled,
		ScheduledPublishAt: &at,
		CreatedAt:          time.Now(),
	}
}

func TestSyncTask_SkippedWhenDisabled(t *testing.T) {
	f := newFixture(false, githubRepo(1, "repo-one"))

	result := f.sync.Run(context.Background())

	if !result.Success || !result.Skipped {
		t.Errorf("Expected skipped success, got %+v", result)
	}
	if f.lister.Calls != 0 {
		t.Errorf("Expected no API calls when sync disabled, got %d", f.lister.Calls)
	}
	if len(f.rev.Paths) != 0 {
		t.Errorf("Expected no revalidation when skipped, got %v", f.rev.Paths)
	}
}

func TestSyncTask_SkippedWhenUsernameEmpty(t *testing.T) {
	f := newFixture(true, githubRepo(1, "repo-one"))
	f.settings.Settings.GithubUsername = ""

	result := f.sync.Run(context.Background())

	if !result.Skipped {
		t.Errorf("Expected skipped result for empty username, got %+v", result)
	}
	if f.lister.Calls != 0 {
		t.Errorf("Expected no API calls, got %d", f.lister.Calls)
	}
}

func TestSyncTask_UpsertIdempotent(t *testing.T) {
	f := newFixture(true, githubRepo(1, "repo-one"), githubRepo(2, "repo-two"))
	ctx := context.Background()

	first := f.sync.Run(ctx)
	second := f.sync.Run(ctx)

	if first.Synced != 2 || second.Synced != 2 {
		t.Errorf("Expected synced=2 both runs, got %d and %d", first.Synced, second.Synced)
	}

	// No duplicate rows: the second run matched the same two projects
	count, _ := f.projects.Count(ctx)
	if count != 2 {
		t.Errorf("Expected 2 project rows after repeated sync, got %d", count)
	}
}

func TestSyncTask_SkipsForksAndArchived(t *testing.T) {
	fork := githubRepo(3, "forked")
	fork.Fork = true
	archived := githubRepo(4, "old")
	archived.Archived = true

	f := newFixture(true, githubRepo(1, "repo-one"), fork, archived)

	result := f.sync.Run(context.Background())

	if result.Synced != 1 {
		t.Errorf("Expected 1 synced (forks/archived skipped), got %d", result.Synced)
	}
}

func TestSyncTask_PreservesAdminFieldsOnUpdate(t *testing.T) {
	f := newFixture(true, githubRepo(1, "repo-one"))
	ctx := context.Background()

	f.sync.Run(ctx)

	// Admin customizes the synced project
	project, _ := f.projects.GetByRepoID(ctx, 1)
	project.TitleFa = "پروژه من"
	project.Featured = true

	f.sync.Run(ctx)

	updated, _ := f.projects.GetByRepoID(ctx, 1)
	if updated.TitleFa != "پروژه من" || !updated.Featured {
		t.Errorf("Sync overwrote admin-managed fields: %+v", updated)
	}
}

func TestSyncTask_RevalidatesHomePaths(t *testing.T) {
	f := newFixture(true, githubRepo(1, "repo-one"))

	f.sync.Run(context.Background())

	for _, path := range []string{"/en", "/fa"} {
		if !f.rev.Contains(path) {
			t.Errorf("Expected home path %q revalidated, got %v", path, f.rev.Paths)
		}
	}
}

func TestSyncTask_UpsertFailuresAreTaskErrors(t *testing.T) {
	f := newFixture(true, githubRepo(1, "repo-one"), githubRepo(2, "repo-two"))
	f.projects.UpsertErr = fmt.Errorf("connection refused")

	result := f.sync.Run(context.Background())

	if result.Success {
		t.Error("Expected failure when every upsert failed")
	}
	if result.Error == "" {
		t.Error("Expected task-level error for upsert failures")
	}
	if len(f.rev.Paths) != 0 {
		t.Errorf("Expected no revalidation when nothing synced, got %v", f.rev.Paths)
	}

	// The aggregate carries the failure, so the endpoint reports 207
	f2 := newFixture(true, githubRepo(1, "repo-one"))
	f2.projects.UpsertErr = fmt.Errorf("connection refused")
	run := f2.cron.Run(context.Background(), nil)
	if len(run.Errors) != 1 {
		t.Errorf("Expected 1 aggregate error, got %v", run.Errors)
	}
	if !run.HasErrors() {
		t.Error("Expected HasErrors for failed upserts")
	}
}

func TestPublishTask_PublishesDueArticles(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	f.articles.Create(ctx, scheduledArticle("a1", "due-post", time.Now().Add(-time.Minute)))
	f.articles.Create(ctx, scheduledArticle("a2", "future-post", time.Now().Add(time.Hour)))

	result := f.publish.Run(ctx)

	if !result.Success || result.Published != 1 {
		t.Errorf("Expected 1 published, got %+v", result)
	}

	due, _ := f.articles.GetByID(ctx, "a1")
	if due.Status != models.ArticleStatusPublished {
		t.Errorf("Expected a1 published, got %s", due.Status)
	}
	if due.PublishedAt == nil {
		t.Error("Expected published_at set")
	}
	if due.ScheduledPublishAt != nil {
		t.Error("Expected scheduling latch cleared")
	}

	future, _ := f.articles.GetByID(ctx, "a2")
	if future.Status != models.ArticleStatusScheduled {
		t.Errorf("Expected a2 still scheduled, got %s", future.Status)
	}
}

func TestPublishTask_Idempotent(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	f.articles.Create(ctx, scheduledArticle("a1", "due-post", time.Now().Add(-time.Minute)))

	first := f.publish.Run(ctx)
	second := f.publish.Run(ctx)

	if first.Published != 1 {
		t.Errorf("Expected 1 published on first run, got %d", first.Published)
	}
	if second.Published != 0 {
		t.Errorf("Expected 0 published on second run, got %d", second.Published)
	}
}

func TestPublishTask_RevalidatesBlogPaths(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	f.articles.Create(ctx, scheduledArticle("a1", "due-post", time.Now().Add(-time.Minute)))
	f.publish.Run(ctx)

	for _, path := range []string{"/en/blog", "/fa/blog", "/en/blog/due-post", "/fa/blog/due-post"} {
		if !f.rev.Contains(path) {
			t.Errorf("Expected %q revalidated, got %v", path, f.rev.Paths)
		}
	}
}

func TestCron_RunsBothTasksByDefault(t *testing.T) {
	f := newFixture(true, githubRepo(1, "repo-one"))

	result := f.cron.Run(context.Background(), nil)

	if result.GithubSync == nil || result.ScheduledPublish == nil {
		t.Fatalf("Expected both task results, got %+v", result)
	}
	if result.HasErrors() {
		t.Errorf("Expected clean run, got errors %v", result.Errors)
	}
	if result.GithubSync.Synced != 1 {
		t.Errorf("Expected 1 synced, got %d", result.GithubSync.Synced)
	}
}

func TestCron_TaskIsolation(t *testing.T) {
	f := newFixture(true, githubRepo(1, "repo-one"))
	f.lister.Err = fmt.Errorf("rate limited (status 403)")

	ctx := context.Background()
	f.articles.Create(ctx, scheduledArticle("a1", "due-post", time.Now().Add(-time.Minute)))

	result := f.cron.Run(ctx, nil)

	// GitHub failure must not prevent the publish task from running
	if result.GithubSync.Success {
		t.Error("Expected github sync failure")
	}
	if result.ScheduledPublish == nil || !result.ScheduledPublish.Success {
		t.Fatalf("Expected publish to succeed despite sync failure, got %+v", result.ScheduledPublish)
	}
	if result.ScheduledPublish.Published != 1 {
		t.Errorf("Expected 1 published, got %d", result.ScheduledPublish.Published)
	}
	if len(result.Errors) != 1 {
		t.Errorf("Expected exactly 1 error, got %v", result.Errors)
	}
}

func TestCron_PublishFailureIsolated(t *testing.T) {
	f := newFixture(true, githubRepo(1, "repo-one"))
	f.articles.PublishErr = fmt.Errorf("connection refused")

	result := f.cron.Run(context.Background(), nil)

	if !result.GithubSync.Success {
		t.Error("Expected github sync to succeed despite publish failure")
	}
	if result.ScheduledPublish.Success {
		t.Error("Expected publish failure")
	}
	if len(result.Errors) != 1 {
		t.Errorf("Expected exactly 1 error, got %v", result.Errors)
	}
}

func TestCron_SubsetSelection(t *testing.T) {
	f := newFixture(true, githubRepo(1, "repo-one"))

	result := f.cron.Run(context.Background(), []string{models.CronTaskScheduledPublish})

	if result.GithubSync != nil {
		t.Error("Expected github sync not run for publish-only request")
	}
	if result.ScheduledPublish == nil {
		t.Error("Expected publish task result")
	}
	if f.lister.Calls != 0 {
		t.Errorf("Expected no GitHub API calls, got %d", f.lister.Calls)
	}
}

func TestCron_UnknownJobReported(t *testing.T) {
	f := newFixture(true)

	result := f.cron.Run(context.Background(), []string{"backup", models.CronTaskScheduledPublish})

	if len(result.Errors) != 1 {
		t.Fatalf("Expected 1 error for unknown job, got %v", result.Errors)
	}
	if result.ScheduledPublish == nil || !result.ScheduledPublish.Success {
		t.Error("Expected known job to still run")
	}
}

func TestCron_SettingsErrorRecorded(t *testing.T) {
	f := newFixture(true)
	f.settings.GetErr = fmt.Errorf("connection refused")

	result := f.cron.Run(context.Background(), []string{models.CronTaskGithubSync})

	if result.GithubSync.Success {
		t.Error("Expected sync failure when settings cannot be read")
	}
	if len(result.Errors) != 1 {
		t.Errorf("Expected 1 error, got %v", result.Errors)
	}
}
