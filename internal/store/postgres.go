package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/guestlink/guestlink/internal/model"
)

// pgxPool is the subset of pgxpool.Pool the store uses; pgxmock
// implements it for tests.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool pgxPool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS passes (
	id            TEXT PRIMARY KEY,
	started_at    TIMESTAMPTZ NOT NULL,
	finished_at   TIMESTAMPTZ NOT NULL,
	profile_count INTEGER NOT NULL,
	journey_count INTEGER NOT NULL,
	profiles      JSONB NOT NULL,
	journeys      JSONB NOT NULL,
	quality       JSONB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_passes_started_at ON passes(started_at);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) SavePass(ctx context.Context, pass *model.PassResult) error {
	profiles, journeys, quality, err := marshalPass(pass)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO passes (id, started_at, finished_at, profile_count, journey_count, profiles, journeys, quality)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		pass.ID, pass.StartedAt, pass.FinishedAt,
		len(pass.Profiles), len(pass.Journeys),
		profiles, journeys, quality,
	)
	return eris.Wrapf(err, "postgres: insert pass %s", pass.ID)
}

func (s *PostgresStore) GetPass(ctx context.Context, id string) (*model.PassResult, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, started_at, finished_at, profiles::text, journeys::text, quality::text FROM passes WHERE id = $1`,
		id,
	)
	return scanPass(row, "postgres")
}

func (s *PostgresStore) LatestPass(ctx context.Context) (*model.PassResult, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, started_at, finished_at, profiles::text, journeys::text, quality::text FROM passes
		 ORDER BY started_at DESC LIMIT 1`,
	)
	return scanPass(row, "postgres")
}

func (s *PostgresStore) ListPasses(ctx context.Context, limit int) ([]model.PassSummary, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, started_at, finished_at, profile_count, journey_count FROM passes
		 ORDER BY started_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list passes")
	}
	defer rows.Close()

	var passes []model.PassSummary
	for rows.Next() {
		var p model.PassSummary
		if err := rows.Scan(&p.ID, &p.StartedAt, &p.FinishedAt, &p.ProfileCount, &p.JourneyCount); err != nil {
			return nil, eris.Wrap(err, "postgres: scan pass summary")
		}
		passes = append(passes, p)
	}
	return passes, eris.Wrap(rows.Err(), "postgres: list passes iterate")
}
