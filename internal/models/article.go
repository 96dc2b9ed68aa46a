package models

import (
	"time"
)

// ArticleStatus represents the publication state of an article
type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusScheduled ArticleStatus = "scheduled"
	ArticleStatusPublished ArticleStatus = "published"
)

// ValidArticleStatuses defines allowed article statuses
var ValidArticleStatuses = map[ArticleStatus]bool{
	ArticleStatusDraft:     true,
	ArticleStatusScheduled: true,
	ArticleStatusPublished: true,
}

// Article represents a bilingual blog article.
// State machine: draft -> scheduled (future scheduled_publish_at) -> published.
// The scheduled -> published transition is performed by the cron publish task.
type Article struct {
	ID                 string        `json:"id" db:"id"`
	Slug               string        `json:"slug" db:"slug"`
	TitleEn            string        `json:"title_en" db:"title_en"`
	TitleFa            string        `json:"title_fa" db:"title_fa"`
	ExcerptEn          string        `json:"excerpt_en" db:"excerpt_en"`
	ExcerptFa          string        `json:"excerpt_fa" db:"excerpt_fa"`
	ContentEn          string        `json:"content_en" db:"content_en"`
	ContentFa          string        `json:"content_fa" db:"content_fa"`
	Status             ArticleStatus `json:"status" db:"status"`
	ScheduledPublishAt *time.Time    `json:"scheduled_publish_at,omitempty" db:"scheduled_publish_at"`
	PublishedAt        *time.Time    `json:"published_at,omitempty" db:"published_at"`
	CreatedAt          time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at" db:"updated_at"`
}

// ArticleInput is the admin payload for creating or updating an article
type ArticleInput struct {
	Slug               string     `json:"slug"`
	TitleEn            string     `json:"title_en"`
	TitleFa            string     `json:"title_fa"`
	ExcerptEn          string     `json:"excerpt_en"`
	ExcerptFa          string     `json:"excerpt_fa"`
	ContentEn          string     `json:"content_en"`
	ContentFa          string     `json:"content_fa"`
	Status             string     `json:"status"`
	ScheduledPublishAt *time.Time `json:"scheduled_publish_at,omitempty"`
}

// LocalizedArticle is the public, single-locale view of an article
type LocalizedArticle struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Locale      string     `json:"locale"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// Localize projects the bilingual article onto a single locale,
// falling back to English when the Persian field is empty.
func (a *Article) Localize(locale string, includeContent bool) *LocalizedArticle {
	la := &LocalizedArticle{
		ID:          a.ID,
		Slug:        a.Slug,
		Locale:      locale,
		Title:       a.TitleEn,
		Excerpt:     a.ExcerptEn,
		PublishedAt: a.PublishedAt,
	}
	if locale == "fa" {
		if a.TitleFa != "" {
			la.Title = a.TitleFa
		}
		if a.ExcerptFa != "" {
			la.Excerpt = a.ExcerptFa
		}
	}
	if includeContent {
		la.Content = a.ContentEn
		if locale == "fa" && a.ContentFa != "" {
			la.Content = a.ContentFa
		}
	}
	return la
}
