package service

import (
	"context"
	"fmt"
	"time"

	"github.com/portfolio-cms-api/internal/models"
	"github.com/portfolio-cms-api/internal/repository"
	"github.com/rs/zerolog"
)

// PublishService transitions scheduled articles whose publish time has
// elapsed to published. The transition is a single conditional update, so
// overlapping cron invocations publish each article at most once.
type PublishService struct {
	articles repository.ArticleRepository
	rev      Revalidator
	log      zerolog.Logger
	now      func() time.Time
}

// NewPublishService creates a new PublishService
func NewPublishService(articles repository.ArticleRepository, rev Revalidator, log zerolog.Logger) *PublishService {
	return &PublishService{
		articles: articles,
		rev:      rev,
		log:      log.With().Str("task", "scheduled_publish").Logger(),
		now:      time.Now,
	}
}

// Run publishes every due article and reports the count
func (s *PublishService) Run(ctx context.Context) *models.PublishTaskResult {
	slugs, err := s.articles.PublishDue(ctx, s.now())
	if err != nil {
		return &models.PublishTaskResult{Error: fmt.Sprintf("publish due articles: %v", err)}
	}

	if len(slugs) > 0 {
		s.log.Info().Int("published", len(slugs)).Strs("slugs", slugs).Msg("Published scheduled articles")

		paths := localePaths("/blog")
		for _, slug := range slugs {
			paths = append(paths, localePaths("/blog/"+slug)...)
		}
		s.rev.Revalidate(ctx, paths...)
	}

	return &models.PublishTaskResult{Success: true, Published: len(slugs)}
}
