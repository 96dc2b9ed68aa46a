package models

import (
	"time"
)

// Project represents a portfolio project. Projects synced from GitHub carry
// the upstream repository id; repeated syncs update the same row, matched on
// that id, never duplicating it. Admin-managed fields (title_fa, sort_order,
// featured, status) are preserved across syncs.
type Project struct {
	ID             string    `json:"id" db:"id"`
	GithubRepoID   *int64    `json:"github_repo_id,omitempty" db:"github_repo_id"`
	TitleEn        string    `json:"title_en" db:"title_en"`
	TitleFa        string    `json:"title_fa" db:"title_fa"`
	Description    string    `json:"description" db:"description"`
	URL            string    `json:"url" db:"url"`
	Language       string    `json:"language,omitempty" db:"language"`
	Stars          int       `json:"stars" db:"stars"`
	Forks          int       `json:"forks" db:"forks"`
	IsGithubSynced bool      `json:"is_github_synced" db:"is_github_synced"`
	SortOrder      int       `json:"sort_order" db:"sort_order"`
	Status         string    `json:"status" db:"status"`
	Featured       bool      `json:"featured" db:"featured"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Project visibility statuses
const (
	ProjectStatusVisible = "visible"
	ProjectStatusHidden  = "hidden"
)
