// Package store persists pass outputs so reports and the API can be
// served without re-running the pipeline.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/guestlink/guestlink/internal/config"
	"github.com/guestlink/guestlink/internal/model"
)

// Store defines the persistence interface for pass results.
type Store interface {
	SavePass(ctx context.Context, pass *model.PassResult) error
	GetPass(ctx context.Context, id string) (*model.PassResult, error)
	LatestPass(ctx context.Context) (*model.PassResult, error)
	ListPasses(ctx context.Context, limit int) ([]model.PassSummary, error)

	Migrate(ctx context.Context) error
	Close() error
}

// New creates a Store for the configured driver.
func New(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case "sqlite", "":
		return NewSQLite(cfg.DatabaseURL)
	case "postgres":
		return NewPostgres(ctx, cfg.DatabaseURL)
	default:
		return nil, eris.Errorf("store: unknown driver %q", cfg.Driver)
	}
}
