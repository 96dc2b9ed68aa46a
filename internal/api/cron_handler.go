package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-cms-api/internal/models"
	"github.com/portfolio-cms-api/internal/service"
	"github.com/rs/zerolog"
)

// CronHandler exposes the reconciliation job runner to the external
// scheduler. Authentication happens in the route group middleware.
type CronHandler struct {
	cron service.CronService
	log  zerolog.Logger
}

// NewCronHandler creates a new CronHandler
func NewCronHandler(cron service.CronService, log zerolog.Logger) *CronHandler {
	return &CronHandler{
		cron: cron,
		log:  log.With().Str("handler", "cron").Logger(),
	}
}

// Run handles GET /v1/cron and runs every registered task.
// 200 when all tasks succeeded, 207 when some produced errors.
func (h *CronHandler) Run(c *gin.Context) {
	result := h.cron.Run(c.Request.Context(), nil)
	c.JSON(statusFor(result), result)
}

// RunJobs handles POST /v1/cron and runs a selected subset of tasks.
// Body: {"jobs": ["github", "publish"]}; an empty list, an empty object
// or no body at all runs both.
func (h *CronHandler) RunJobs(c *gin.Context) {
	var req struct {
		Jobs []string `json:"jobs"`
	}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	result := h.cron.Run(c.Request.Context(), req.Jobs)
	c.JSON(statusFor(result), result)
}

func statusFor(result *models.CronRunResult) int {
	if result.HasErrors() {
		return http.StatusMultiStatus
	}
	return http.StatusOK
}
