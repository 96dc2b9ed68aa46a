package benchmark

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/portfolio-cms-api/internal/github"
	"github.com/portfolio-cms-api/internal/i18n"
	"github.com/portfolio-cms-api/internal/mocks"
	"github.com/portfolio-cms-api/internal/models"
	"github.com/portfolio-cms-api/internal/service"
	"github.com/portfolio-cms-api/internal/validation"
	"github.com/rs/zerolog"
)

// BenchmarkGithubSync benchmarks one full sync pass over 1000 repositories
func BenchmarkGithubSync(b *testing.B) {
	repos := make([]github.Repo, 1000)
	for i := range repos {
		repos[i] = github.Repo{
			ID:              int64(i + 1),
			Name:            fmt.Sprintf("repo-%04d", i),
			FullName:        fmt.Sprintf("bench/repo-%04d", i),
			Description:     "benchmark repository",
			HTMLURL:         fmt.Sprintf("https://github.com/bench/repo-%04d", i),
			Language:        "Go",
			StargazersCount: i,
		}
	}

	settings := mocks.NewMockSettingsRepository(true, "bench")
	projects := mocks.NewMockProjectRepository()
	lister := mocks.NewMockRepoLister(repos...)
	rev := mocks.NewRecordingRevalidator()
	sync := service.NewSyncService(settings, projects, lister, rev, zerolog.Nop())

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		sync.Run(context.Background())
	}

	b.ReportMetric(float64(1000*b.N)/b.Elapsed().Seconds(), "repos/sec")
}

// BenchmarkAlternateURLs benchmarks alternate URL generation
func BenchmarkAlternateURLs(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		i18n.AlternateURLsFor("/fa/blog/some-long-article-slug", "https://example.com")
	}
}

// BenchmarkLocalize benchmarks article localization
func BenchmarkLocalize(b *testing.B) {
	now := time.Now()
	article := &models.Article{
		ID:          "550e8400-e29b-41d4-a716-446655440000",
		Slug:        "benchmark-post",
		TitleEn:     "Benchmark Post",
		TitleFa:     "پست آزمایشی",
		ExcerptEn:   "An excerpt",
		ContentEn:   "Body text",
		ContentFa:   "متن بدنه",
		Status:      models.ArticleStatusPublished,
		PublishedAt: &now,
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		article.Localize("fa", true)
	}
}

// BenchmarkCommentValidation benchmarks the comment validation pipeline
func BenchmarkCommentValidation(b *testing.B) {
	input := &models.CommentInput{
		AuthorName:  "Test User",
		AuthorEmail: "test@example.com",
		Body:        "A reasonably sized comment body used to measure the word count check.",
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		validation.ValidateCommentInput(input)
	}
}
