package mocks

import (
	"context"
	"sync"

	"github.com/portfolio-cms-api/internal/github"
	"github.com/portfolio-cms-api/internal/models"
)

// MockRepoLister is a mock GitHub repository lister
type MockRepoLister struct {
	Repos []github.Repo
	Err   error
	Calls int
}

// NewMockRepoLister creates a mock lister returning the given repos
func NewMockRepoLister(repos ...github.Repo) *MockRepoLister {
	return &MockRepoLister{Repos: repos}
}

func (m *MockRepoLister) ListUserRepos(ctx context.Context, username string) ([]github.Repo, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Repos, nil
}

// RecordingRevalidator records every path it is asked to invalidate
type RecordingRevalidator struct {
	mu    sync.Mutex
	Paths []string
}

// NewRecordingRevalidator creates a recording revalidator
func NewRecordingRevalidator() *RecordingRevalidator {
	return &RecordingRevalidator{}
}

func (r *RecordingRevalidator) Revalidate(ctx context.Context, paths ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Paths = append(r.Paths, paths...)
}

// Contains reports whether a path was revalidated
func (r *RecordingRevalidator) Contains(path string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.Paths {
		if p == path {
			return true
		}
	}
	return false
}

// MockCronService returns a canned cron result
type MockCronService struct {
	Result   *models.CronRunResult
	LastJobs []string
	Calls    int
}

func (m *MockCronService) Run(ctx context.Context, jobs []string) *models.CronRunResult {
	m.Calls++
	m.LastJobs = jobs
	return m.Result
}

// MockLimiter is a stub comment rate limiter
type MockLimiter struct {
	Deny bool
}

func (m *MockLimiter) Allow(ctx context.Context, identity string) (bool, error) {
	return !m.Deny, nil
}
