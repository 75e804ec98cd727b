package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/guestlink/guestlink/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS passes (
	id            TEXT PRIMARY KEY,
	started_at    DATETIME NOT NULL,
	finished_at   DATETIME NOT NULL,
	profile_count INTEGER NOT NULL,
	journey_count INTEGER NOT NULL,
	profiles      TEXT NOT NULL,
	journeys      TEXT NOT NULL,
	quality       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_passes_started_at ON passes(started_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SavePass(ctx context.Context, pass *model.PassResult) error {
	profiles, journeys, quality, err := marshalPass(pass)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO passes (id, started_at, finished_at, profile_count, journey_count, profiles, journeys, quality)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		pass.ID, pass.StartedAt, pass.FinishedAt,
		len(pass.Profiles), len(pass.Journeys),
		profiles, journeys, quality,
	)
	return eris.Wrapf(err, "sqlite: insert pass %s", pass.ID)
}

func (s *SQLiteStore) GetPass(ctx context.Context, id string) (*model.PassResult, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, started_at, finished_at, profiles, journeys, quality FROM passes WHERE id = ?`,
		id,
	)
	return scanPass(row, "sqlite")
}

func (s *SQLiteStore) LatestPass(ctx context.Context) (*model.PassResult, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, started_at, finished_at, profiles, journeys, quality FROM passes
		 ORDER BY started_at DESC LIMIT 1`,
	)
	return scanPass(row, "sqlite")
}

func (s *SQLiteStore) ListPasses(ctx context.Context, limit int) ([]model.PassSummary, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, finished_at, profile_count, journey_count FROM passes
		 ORDER BY started_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list passes")
	}
	defer rows.Close()

	var passes []model.PassSummary
	for rows.Next() {
		var p model.PassSummary
		if err := rows.Scan(&p.ID, &p.StartedAt, &p.FinishedAt, &p.ProfileCount, &p.JourneyCount); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan pass summary")
		}
		passes = append(passes, p)
	}
	return passes, eris.Wrap(rows.Err(), "sqlite: list passes iterate")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func marshalPass(pass *model.PassResult) (profiles, journeys, quality string, err error) {
	p, err := json.Marshal(pass.Profiles)
	if err != nil {
		return "", "", "", eris.Wrap(err, "store: marshal profiles")
	}
	j, err := json.Marshal(pass.Journeys)
	if err != nil {
		return "", "", "", eris.Wrap(err, "store: marshal journeys")
	}
	q, err := json.Marshal(pass.Quality)
	if err != nil {
		return "", "", "", eris.Wrap(err, "store: marshal quality")
	}
	return string(p), string(j), string(q), nil
}

func scanPass(row rowScanner, backend string) (*model.PassResult, error) {
	var pass model.PassResult
	var profiles, journeys, quality string

	err := row.Scan(&pass.ID, &pass.StartedAt, &pass.FinishedAt, &profiles, &journeys, &quality)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "%s: scan pass", backend)
	}

	if err := json.Unmarshal([]byte(profiles), &pass.Profiles); err != nil {
		return nil, eris.Wrapf(err, "%s: unmarshal profiles", backend)
	}
	if err := json.Unmarshal([]byte(journeys), &pass.Journeys); err != nil {
		return nil, eris.Wrapf(err, "%s: unmarshal journeys", backend)
	}
	if err := json.Unmarshal([]byte(quality), &pass.Quality); err != nil {
		return nil, eris.Wrapf(err, "%s: unmarshal quality", backend)
	}
	return &pass, nil
}
