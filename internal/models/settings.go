package models

import (
	"time"
)

// SyncSettings holds the single-row GitHub sync configuration.
// Mutated through the admin interface; the cron runner only reads it.
// The API token itself lives in the environment, not in this row.
type SyncSettings struct {
	SyncEnabled    bool      `json:"sync_enabled" db:"sync_enabled"`
	GithubUsername string    `json:"github_username" db:"github_username"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
