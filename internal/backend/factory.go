package backend

import (
	"context"
	"fmt"
	"log/slog"

	"billfold/internal/config"
	"billfold/internal/storage"
	"billfold/internal/store/memory"
)

// Config holds what the factory needs to build a backend.
type Config struct {
	Type         Type
	SQLiteDBPath string
	SeedDemoData bool
}

// FromAppConfig converts the application config to a backend config.
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	backendType := Type(appConfig.DataBackend)
	if !backendType.IsValid() {
		return Config{}, fmt.Errorf("invalid backend type in config: %s (valid: %v)", appConfig.DataBackend, Types())
	}

	return Config{
		Type:         backendType,
		SQLiteDBPath: appConfig.SQLiteDBPath,
		SeedDemoData: appConfig.SeedDemoData,
	}, nil
}

// Create builds the backend described by cfg.
func Create(ctx context.Context, cfg Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !cfg.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s (valid: %v)", cfg.Type, Types())
	}

	switch cfg.Type {
	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize SQLite repository: %w", err)
		}
		if cfg.SeedDemoData {
			if err := repo.SeedIfEmpty(ctx); err != nil {
				repo.Close()
				return nil, fmt.Errorf("seed demo data: %w", err)
			}
		}
		logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Backend: repo, Cleanup: repo.Close}, nil

	default:
		var s Backend
		if cfg.SeedDemoData {
			s = memory.NewSeeded()
		} else {
			s = memory.New()
		}
		logger.Info("Initialized memory backend", "seeded", cfg.SeedDemoData)
		return &Result{Backend: s, Cleanup: nil}, nil
	}
}
