package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-cms-api/internal/config"
	"github.com/portfolio-cms-api/internal/repository"
	"github.com/portfolio-cms-api/internal/service"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(
	services *service.Services,
	repos *repository.Repositories,
	limiter CommentLimiter,
	cfg *config.Config,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	cronHandler := NewCronHandler(services.Cron, log)
	contentHandler := NewContentHandler(repos, limiter, log)
	adminHandler := NewAdminHandler(repos, log)
	seoHandler := NewSEOHandler(repos, &cfg.Site, log)

	// Health check, metrics and sitemap live outside the versioned API
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(repos))
	router.GET("/sitemap.xml", seoHandler.Sitemap)

	// API v1
	v1 := router.Group("/v1")
	{
		// Public content
		v1.GET("/articles", contentHandler.ListArticles)
		v1.GET("/articles/:slug", contentHandler.GetArticle)
		v1.GET("/articles/:slug/comments", contentHandler.ListComments)
		v1.POST("/articles/:slug/comments", contentHandler.CreateComment)
		v1.GET("/projects", contentHandler.ListProjects)
		v1.GET("/meta", seoHandler.GetMeta)

		// Cron endpoint, hit by the external scheduler
		cron := v1.Group("/cron", bearerAuth(cfg.Cron.Secret, log))
		{
			cron.GET("", cronHandler.Run)
			cron.POST("", cronHandler.RunJobs)
		}

		// Admin panel
		admin := v1.Group("/admin", bearerAuth(cfg.Admin.Token, log))
		{
			admin.GET("/articles", adminHandler.ListArticles)
			admin.POST("/articles", adminHandler.CreateArticle)
			admin.PUT("/articles/:id", adminHandler.UpdateArticle)
			admin.DELETE("/articles/:id", adminHandler.DeleteArticle)
			admin.GET("/projects", adminHandler.ListProjects)
			admin.GET("/settings", adminHandler.GetSettings)
			admin.PUT("/settings", adminHandler.UpdateSettings)
			admin.GET("/comments", adminHandler.ListPendingComments)
			admin.POST("/comments/:id/approve", adminHandler.ApproveComment)
			admin.DELETE("/comments/:id", adminHandler.DeleteComment)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "portfolio-cms-api",
	})
}

// metricsHandler returns content store counts
func metricsHandler(repos *repository.Repositories) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		articlesCount, _ := repos.Article.Count(ctx)
		projectsCount, _ := repos.Project.Count(ctx)

		c.JSON(http.StatusOK, gin.H{
			"database": gin.H{
				"articles": articlesCount,
				"projects": projectsCount,
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
