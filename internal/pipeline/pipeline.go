// Package pipeline orchestrates one processing pass: resolution,
// journey building, and quality assessment over a shared, fully
// materialized raw input.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/guestlink/guestlink/internal/journey"
	"github.com/guestlink/guestlink/internal/model"
	"github.com/guestlink/guestlink/internal/quality"
	"github.com/guestlink/guestlink/internal/resolve"
)

// Run executes the three core stages concurrently. They share only
// the read-only raw record sets and each writes its own result field,
// so no locking is needed. A pass either completes fully or the
// partial result is discarded.
func Run(ctx context.Context, raw *model.RawRecords, journeyOpts journey.Options) (*model.PassResult, error) {
	result := &model.PassResult{
		ID:        uuid.New().String(),
		StartedAt: time.Now().UTC(),
	}
	log := zap.L().With(zap.String("pass_id", result.ID))
	log.Info("pipeline: pass started",
		zap.Int("ledger", len(raw.Ledger)),
		zap.Int("lead_forms", len(raw.LeadForms)),
		zap.Int("crm", len(raw.CRM)),
		zap.Int("reservations", len(raw.Reservations)),
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return eris.Wrap(err, "pipeline: resolve cancelled")
		}
		result.Profiles = resolve.Run(raw)
		return nil
	})
	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return eris.Wrap(err, "pipeline: journey cancelled")
		}
		result.Journeys = journey.Build(raw, journeyOpts)
		return nil
	})
	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return eris.Wrap(err, "pipeline: quality cancelled")
		}
		result.Quality = quality.Assess(raw)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.FinishedAt = time.Now().UTC()
	log.Info("pipeline: pass complete",
		zap.Int("profiles", len(result.Profiles)),
		zap.Int("journeys", len(result.Journeys)),
		zap.Duration("elapsed", result.FinishedAt.Sub(result.StartedAt)),
	)
	return result, nil
}
