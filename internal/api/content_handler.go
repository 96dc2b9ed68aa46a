package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/portfolio-cms-api/internal/i18n"
	"github.com/portfolio-cms-api/internal/models"
	"github.com/portfolio-cms-api/internal/repository"
	"github.com/portfolio-cms-api/internal/validation"
	"github.com/rs/zerolog"
)

const defaultPageSize = 10

// CommentLimiter gates comment creation per client identity
type CommentLimiter interface {
	Allow(ctx context.Context, identity string) (bool, error)
}

// ContentHandler serves the public read API and comment submission
type ContentHandler struct {
	repos   *repository.Repositories
	limiter CommentLimiter
	log     zerolog.Logger
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(repos *repository.Repositories, limiter CommentLimiter, log zerolog.Logger) *ContentHandler {
	return &ContentHandler{
		repos:   repos,
		limiter: limiter,
		log:     log.With().Str("handler", "content").Logger(),
	}
}

// ListArticles handles GET /v1/articles?locale=&page=&per_page=
func (h *ContentHandler) ListArticles(c *gin.Context) {
	ctx := c.Request.Context()
	locale := requestLocale(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPageSize)))
	if perPage < 1 || perPage > 50 {
		perPage = defaultPageSize
	}

	articles, err := h.repos.Article.ListPublished(ctx, perPage, (page-1)*perPage)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list articles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list articles"})
		return
	}

	localized := make([]*models.LocalizedArticle, 0, len(articles))
	for _, a := range articles {
		localized = append(localized, a.Localize(locale, false))
	}

	c.JSON(http.StatusOK, gin.H{
		"locale":   locale,
		"page":     page,
		"per_page": perPage,
		"articles": localized,
	})
}

// GetArticle handles GET /v1/articles/:slug?locale=
func (h *ContentHandler) GetArticle(c *gin.Context) {
	ctx := c.Request.Context()
	locale := requestLocale(c)

	article, err := h.repos.Article.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		h.log.Error().Err(err).Str("slug", c.Param("slug")).Msg("Failed to get article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get article"})
		return
	}
	if article == nil || article.Status != models.ArticleStatusPublished {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	c.JSON(http.StatusOK, article.Localize(locale, true))
}

// ListProjects handles GET /v1/projects
func (h *ContentHandler) ListProjects(c *gin.Context) {
	projects, err := h.repos.Project.List(c.Request.Context(), false)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list projects")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// ListComments handles GET /v1/articles/:slug/comments
func (h *ContentHandler) ListComments(c *gin.Context) {
	ctx := c.Request.Context()

	article, err := h.repos.Article.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		h.log.Error().Err(err).Str("slug", c.Param("slug")).Msg("Failed to get article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list comments"})
		return
	}
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	comments, err := h.repos.Comment.ListApproved(ctx, article.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list comments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment handles POST /v1/articles/:slug/comments.
// Submissions are rate limited per client IP and enter moderation as
// pending.
func (h *ContentHandler) CreateComment(c *gin.Context) {
	ctx := c.Request.Context()

	allowed, _ := h.limiter.Allow(ctx, c.ClientIP())
	if !allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many comments, slow down"})
		return
	}

	article, err := h.repos.Article.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		h.log.Error().Err(err).Str("slug", c.Param("slug")).Msg("Failed to get article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create comment"})
		return
	}
	if article == nil || article.Status != models.ArticleStatusPublished {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	var input models.CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateCommentInput(&input); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": errs})
		return
	}

	comment := &models.Comment{
		ID:          uuid.New().String(),
		ArticleID:   article.ID,
		AuthorName:  input.AuthorName,
		AuthorEmail: input.AuthorEmail,
		Body:        input.Body,
		Status:      models.CommentStatusPending,
	}

	if err := h.repos.Comment.Create(ctx, comment); err != nil {
		h.log.Error().Err(err).Msg("Failed to create comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create comment"})
		return
	}

	h.log.Info().Str("article", article.Slug).Msg("Comment submitted for moderation")

	c.JSON(http.StatusAccepted, gin.H{
		"id":      comment.ID,
		"status":  comment.Status,
		"message": "comment submitted for moderation",
	})
}

// requestLocale resolves the locale query parameter, falling back to the
// default for missing or unsupported values
func requestLocale(c *gin.Context) string {
	locale := c.Query("locale")
	if !i18n.IsValid(locale) {
		return i18n.DefaultLocale
	}
	return locale
}
