package service

import (
	"context"
	"fmt"
	"time"

	"github.com/portfolio-cms-api/internal/models"
	"github.com/rs/zerolog"
)

// taskFunc runs one reconciliation task and writes its outcome into the
// aggregate result
type taskFunc func(ctx context.Context, res *models.CronRunResult)

// cronService is the concrete implementation of CronService. Tasks are
// registered in a static table at construction; there is no runtime task
// resolution. Task failures are captured at the task boundary and never
// abort the remaining tasks.
type cronService struct {
	sync    *SyncService
	publish *PublishService
	tasks   map[string]taskFunc
	order   []string
	log     zerolog.Logger
}

// NewCronService creates a new CronService with its task table
func NewCronService(sync *SyncService, publish *PublishService, log zerolog.Logger) CronService {
	s := &cronService{
		sync:    sync,
		publish: publish,
		log:     log.With().Str("service", "cron").Logger(),
	}
	s.tasks = map[string]taskFunc{
		models.CronTaskGithubSync:       s.runGithubSync,
		models.CronTaskScheduledPublish: s.runScheduledPublish,
	}
	s.order = []string{models.CronTaskGithubSync, models.CronTaskScheduledPublish}
	return s
}

// Run executes the selected tasks sequentially and aggregates their
// outcomes. There are no retries here: the external scheduler's next tick
// is the retry mechanism.
func (s *cronService) Run(ctx context.Context, jobs []string) *models.CronRunResult {
	start := time.Now()
	result := &models.CronRunResult{
		Timestamp: start.UTC(),
		Errors:    []string{},
	}

	if len(jobs) == 0 {
		jobs = s.order
	}

	for _, name := range jobs {
		task, ok := s.tasks[name]
		if !ok {
			result.Errors = append(result.Errors, fmt.Sprintf("unknown job: %s", name))
			continue
		}
		s.runIsolated(ctx, name, task, result)
	}

	result.DurationMs = time.Since(start).Milliseconds()

	s.log.Info().
		Strs("jobs", jobs).
		Int64("duration_ms", result.DurationMs).
		Int("errors", len(result.Errors)).
		Msg("Cron run completed")

	return result
}

// runIsolated is the task boundary: a panicking task is recorded as a
// task-level error instead of taking the invocation down.
func (s *cronService) runIsolated(ctx context.Context, name string, task taskFunc, result *models.CronRunResult) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Str("job", name).Msg("Cron task panicked - recovered")
			result.Errors = append(result.Errors, fmt.Sprintf("%s: panic: %v", name, r))
		}
	}()
	task(ctx, result)
}

func (s *cronService) runGithubSync(ctx context.Context, result *models.CronRunResult) {
	taskResult := s.sync.Run(ctx)
	result.GithubSync = taskResult
	if taskResult.Error != "" {
		s.log.Error().Str("error", taskResult.Error).Msg("GitHub sync task failed")
		result.Errors = append(result.Errors, "github: "+taskResult.Error)
	}
}

func (s *cronService) runScheduledPublish(ctx context.Context, result *models.CronRunResult) {
	taskResult := s.publish.Run(ctx)
	result.ScheduledPublish = taskResult
	if taskResult.Error != "" {
		s.log.Error().Str("error", taskResult.Error).Msg("Scheduled publish task failed")
		result.Errors = append(result.Errors, "publish: "+taskResult.Error)
	}
}
