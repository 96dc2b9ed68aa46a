package github

import (
	"time"
)

// Repo is the subset of the GitHub repository payload consumed by the
// project sync task. The numeric ID is the stable identity used for
// upserts; names can be renamed upstream.
type Repo struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	FullName        string     `json:"full_name"`
	Description     string     `json:"description"`
	HTMLURL         string     `json:"html_url"`
	Homepage        string     `json:"homepage"`
	Language        string     `json:"language"`
	StargazersCount int        `json:"stargazers_count"`
	ForksCount      int        `json:"forks_count"`
	Fork            bool       `json:"fork"`
	Archived        bool       `json:"archived"`
	CreatedAt       *time.Time `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
	PushedAt        *time.Time `json:"pushed_at"`
}
