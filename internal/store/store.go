// Package store provides an optional pgxpool-backed sink that mirrors the
// CSV output into Postgres.
package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albapepper/superliga-data/internal/normalize"
)

const fixturesTable = "superliga_fixtures"

// Store wraps a pgx connection pool for fixture upserts.
type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// New creates a connection pool, verifies connectivity, and ensures the
// fixtures table exists.
func New(ctx context.Context, databaseURL string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS `+fixturesTable+` (
			fixture_id     BIGINT PRIMARY KEY,
			date           TEXT,
			home_team_id   BIGINT,
			home_team_name TEXT,
			away_team_id   BIGINT,
			away_team_name TEXT,
			home_goals     INT NOT NULL,
			away_goals     INT NOT NULL,
			home_formation TEXT,
			away_formation TEXT,
			goal_diff      INT NOT NULL,
			result         TEXT NOT NULL,
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure fixtures table: %w", err)
	}

	return &Store{pool: pool, logger: logger}, nil
}

// Close releases the underlying pool.
func (s *Store) Close() {
	s.pool.Close()
}

// UpsertFixtures writes records row by row, warn-and-continue on per-row
// failures. Returns the number of rows successfully upserted.
func (s *Store) UpsertFixtures(ctx context.Context, records []normalize.Record) (int, error) {
	upserted := 0
	for _, rec := range records {
		_, err := s.pool.Exec(ctx, `
			INSERT INTO `+fixturesTable+` (
				fixture_id, date, home_team_id, home_team_name,
				away_team_id, away_team_name, home_goals, away_goals,
				home_formation, away_formation, goal_diff, result
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
			ON CONFLICT (fixture_id) DO UPDATE SET
				date = EXCLUDED.date,
				home_team_id = EXCLUDED.home_team_id,
				home_team_name = EXCLUDED.home_team_name,
				away_team_id = EXCLUDED.away_team_id,
				away_team_name = EXCLUDED.away_team_name,
				home_goals = EXCLUDED.home_goals,
				away_goals = EXCLUDED.away_goals,
				home_formation = EXCLUDED.home_formation,
				away_formation = EXCLUDED.away_formation,
				goal_diff = EXCLUDED.goal_diff,
				result = EXCLUDED.result,
				updated_at = NOW()`,
			rec.FixtureID, nilEmpty(rec.Date), rec.HomeTeamID, rec.HomeTeamName,
			rec.AwayTeamID, rec.AwayTeamName, rec.HomeGoals, rec.AwayGoals,
			rec.HomeFormation, rec.AwayFormation, rec.GoalDiff, string(rec.Result),
		)
		if err != nil {
			s.logger.Warn("upsert fixture failed", "fixture_id", rec.FixtureID, "error", err)
			continue
		}
		upserted++
	}

	if upserted == 0 && len(records) > 0 {
		return 0, fmt.Errorf("all %d fixture upserts failed", len(records))
	}
	return upserted, nil
}

// nilEmpty returns nil for empty strings (maps to SQL NULL).
func nilEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
