package repository

import (
	"context"
	"time"

	"github.com/portfolio-cms-api/internal/database"
	"github.com/portfolio-cms-api/internal/models"
)

// settingsRepo is the concrete implementation of SettingsRepository.
// sync_settings is a single-row table seeded by migration.
type settingsRepo struct {
	db *database.DB
}

// NewSettingsRepo creates a new settings repository
func NewSettingsRepo(db *database.DB) SettingsRepository {
	return &settingsRepo{db: db}
}

// Get reads the sync settings row
func (r *settingsRepo) Get(ctx context.Context) (*models.SyncSettings, error) {
	var settings models.SyncSettings
	err := r.db.QueryRowContext(ctx,
		"SELECT sync_enabled, github_username, updated_at FROM sync_settings WHERE id = 1").
		Scan(&settings.SyncEnabled, &settings.GithubUsername, &settings.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update rewrites the sync settings row
func (r *settingsRepo) Update(ctx context.Context, settings *models.SyncSettings) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE sync_settings SET sync_enabled = $1, github_username = $2, updated_at = $3 WHERE id = 1",
		settings.SyncEnabled, settings.GithubUsername, time.Now(),
	)
	return err
}
