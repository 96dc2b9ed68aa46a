package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/portfolio-cms-api/internal/models"
	"github.com/portfolio-cms-api/internal/repository"
	"github.com/portfolio-cms-api/internal/validation"
	"github.com/rs/zerolog"
)

// AdminHandler serves the admin CRUD endpoints. The route group is guarded
// by the admin bearer token.
type AdminHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(repos *repository.Repositories, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		repos: repos,
		log:   log.With().Str("handler", "admin").Logger(),
	}
}

// ListArticles handles GET /v1/admin/articles?status=&page=
func (h *AdminHandler) ListArticles(c *gin.Context) {
	articles, err := h.repos.Article.List(c.Request.Context(), c.Query("status"), 100, 0)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list articles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list articles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// CreateArticle handles POST /v1/admin/articles
func (h *AdminHandler) CreateArticle(c *gin.Context) {
	ctx := c.Request.Context()

	var input models.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateArticleInput(&input, time.Now()); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": errs})
		return
	}

	exists, err := h.repos.Article.SlugExists(ctx, input.Slug)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to check slug")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create article"})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "slug already in use"})
		return
	}

	article := articleFromInput(&input)
	article.ID = uuid.New().String()
	if article.Status == models.ArticleStatusPublished {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := h.repos.Article.Create(ctx, article); err != nil {
		h.log.Error().Err(err).Msg("Failed to create article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create article"})
		return
	}

	h.log.Info().Str("slug", article.Slug).Str("status", string(article.Status)).Msg("Article created")
	c.JSON(http.StatusCreated, article)
}

// UpdateArticle handles PUT /v1/admin/articles/:id
func (h *AdminHandler) UpdateArticle(c *gin.Context) {
	ctx := c.Request.Context()

	existing, err := h.repos.Article.GetByID(ctx, c.Param("id"))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to get article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update article"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	var input models.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateArticleInput(&input, time.Now()); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": errs})
		return
	}

	article := articleFromInput(&input)
	article.ID = existing.ID
	article.CreatedAt = existing.CreatedAt
	article.PublishedAt = existing.PublishedAt
	if article.Status == models.ArticleStatusPublished && article.PublishedAt == nil {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := h.repos.Article.Update(ctx, article); err != nil {
		h.log.Error().Err(err).Msg("Failed to update article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update article"})
		return
	}

	c.JSON(http.StatusOK, article)
}

// DeleteArticle handles DELETE /v1/admin/articles/:id
func (h *AdminHandler) DeleteArticle(c *gin.Context) {
	if err := h.repos.Article.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.log.Error().Err(err).Msg("Failed to delete article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete article"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListProjects handles GET /v1/admin/projects, hidden projects included
func (h *AdminHandler) ListProjects(c *gin.Context) {
	projects, err := h.repos.Project.List(c.Request.Context(), true)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list projects")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// GetSettings handles GET /v1/admin/settings
func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.repos.Settings.Get(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to get settings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings handles PUT /v1/admin/settings
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var input struct {
		SyncEnabled    bool   `json:"sync_enabled"`
		GithubUsername string `json:"github_username"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	settings := &models.SyncSettings{
		SyncEnabled:    input.SyncEnabled,
		GithubUsername: input.GithubUsername,
	}
	if err := h.repos.Settings.Update(c.Request.Context(), settings); err != nil {
		h.log.Error().Err(err).Msg("Failed to update settings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update settings"})
		return
	}

	h.log.Info().Bool("sync_enabled", settings.SyncEnabled).Msg("Sync settings updated")
	c.JSON(http.StatusOK, settings)
}

// ListPendingComments handles GET /v1/admin/comments
func (h *AdminHandler) ListPendingComments(c *gin.Context) {
	comments, err := h.repos.Comment.ListPending(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list pending comments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list comments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// ApproveComment handles POST /v1/admin/comments/:id/approve
func (h *AdminHandler) ApproveComment(c *gin.Context) {
	approved, err := h.repos.Comment.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to approve comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to approve comment"})
		return
	}
	if !approved {
		c.JSON(http.StatusNotFound, gin.H{"error": "pending comment not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "approved"})
}

// DeleteComment handles DELETE /v1/admin/comments/:id
func (h *AdminHandler) DeleteComment(c *gin.Context) {
	if err := h.repos.Comment.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.log.Error().Err(err).Msg("Failed to delete comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete comment"})
		return
	}
	c.Status(http.StatusNoContent)
}

func articleFromInput(input *models.ArticleInput) *models.Article {
	return &models.Article{
		Slug:               input.Slug,
		TitleEn:            input.TitleEn,
		TitleFa:            input.TitleFa,
		ExcerptEn:          input.ExcerptEn,
		ExcerptFa:          input.ExcerptFa,
		ContentEn:          input.ContentEn,
		ContentFa:          input.ContentFa,
		Status:             models.ArticleStatus(input.Status),
		ScheduledPublishAt: input.ScheduledPublishAt,
	}
}
