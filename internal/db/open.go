package db

import (
	"context"
	"fmt"

	"github.com/jonathan/meeting-mbti/internal/config"
)

// OpenStore connects to the backend selected by cfg.StorageDriver and
// brings its schema up to date.
func OpenStore(ctx context.Context, cfg *config.ServerConfig) (Store, error) {
	var (
		store Store
		err   error
	)
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		store, err = Connect(ctx, cfg.DatabaseURL)
	case config.DriverSQLite:
		store, err = OpenSQLite(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}
