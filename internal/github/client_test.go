package github_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/portfolio-cms-api/internal/config"
	"github.com/portfolio-cms-api/internal/github"
	"github.com/rs/zerolog"
)

func testClient(baseURL, token string, pageSize int) *github.Client {
	cfg := &config.GitHubConfig{
		APIBaseURL:     baseURL,
		Token:          token,
		PageSize:       pageSize,
		Timeout:        2 * time.Second,
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}
	return github.NewClient(cfg, zerolog.Nop())
}

func repoPage(start, count int) []github.Repo {
	repos := make([]github.Repo, count)
	for i := 0; i < count; i++ {
		repos[i] = github.Repo{
			ID:   int64(start + i),
			Name: fmt.Sprintf("repo-%d", start+i),
		}
	}
	return repos
}

func TestListUserRepos_Pagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		switch page {
		case "1":
			json.NewEncoder(w).Encode(repoPage(1, 2))
		case "2":
			json.NewEncoder(w).Encode(repoPage(3, 1))
		default:
			t.Errorf("unexpected page %q requested", page)
			json.NewEncoder(w).Encode([]github.Repo{})
		}
	}))
	defer server.Close()

	client := testClient(server.URL, "", 2)
	repos, err := client.ListUserRepos(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("ListUserRepos failed: %v", err)
	}

	if len(repos) != 3 {
		t.Errorf("Expected 3 repos across pages, got %d", len(repos))
	}
	if repos[2].Name != "repo-3" {
		t.Errorf("Expected repo-3 last, got %s", repos[2].Name)
	}
}

func TestListUserRepos_TokenHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]github.Repo{})
	}))
	defer server.Close()

	client := testClient(server.URL, "gh-token-123", 100)
	if _, err := client.ListUserRepos(context.Background(), "octocat"); err != nil {
		t.Fatalf("ListUserRepos failed: %v", err)
	}

	if gotAuth != "Bearer gh-token-123" {
		t.Errorf("Expected bearer token header, got %q", gotAuth)
	}
}

func TestListUserRepos_RetriesThenSucceeds(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(repoPage(1, 1))
	}))
	defer server.Close()

	client := testClient(server.URL, "", 100)
	repos, err := client.ListUserRepos(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("Expected success after retries, got %v", err)
	}
	if len(repos) != 1 {
		t.Errorf("Expected 1 repo, got %d", len(repos))
	}
	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", attempts)
	}
}

func TestListUserRepos_UserNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := testClient(server.URL, "", 100)
	if _, err := client.ListUserRepos(context.Background(), "ghost"); err == nil {
		t.Fatal("Expected error for 404 response")
	}
}
