package models

import (
	"time"
)

// Cron task names accepted by POST /v1/cron
const (
	CronTaskGithubSync       = "github"
	CronTaskScheduledPublish = "publish"
)

// SyncTaskResult reports the outcome of one GitHub sync run.
// Skipped is true when sync is disabled in settings; that is an explicit
// non-error outcome and no network call was made.
type SyncTaskResult struct {
	Success bool   `json:"success"`
	Skipped bool   `json:"skipped,omitempty"`
	Synced  int    `json:"synced"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// PublishTaskResult reports the outcome of one scheduled-publish run
type PublishTaskResult struct {
	Success   bool   `json:"success"`
	Published int    `json:"published"`
	Error     string `json:"error,omitempty"`
}

// CronRunResult is the per-invocation aggregate returned by the cron
// endpoint. It is never persisted. Task fields are nil when the task was
// not selected for the run.
type CronRunResult struct {
	Timestamp        time.Time          `json:"timestamp"`
	DurationMs       int64              `json:"duration_ms"`
	GithubSync       *SyncTaskResult    `json:"github_sync,omitempty"`
	ScheduledPublish *PublishTaskResult `json:"scheduled_publish,omitempty"`
	Errors           []string           `json:"errors"`
}

// HasErrors reports whether any task in the run failed
func (r *CronRunResult) HasErrors() bool {
	return len(r.Errors) > 0
}
