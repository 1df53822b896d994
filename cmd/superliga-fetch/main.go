// Command superliga-fetch discovers the Danish Superliga on the SportMonks
// Football API, picks an accessible season, downloads its fixtures, and
// writes them as a CSV file (plus an optional Postgres mirror).
//
// Usage:
//
//	superliga-fetch
//	superliga-fetch --season-id 23584 --season-id 21644
//	superliga-fetch --max-pages 2 --out fixtures.csv
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/superliga-data/internal/config"
	"github.com/albapepper/superliga-data/internal/export"
	"github.com/albapepper/superliga-data/internal/normalize"
	"github.com/albapepper/superliga-data/internal/resolve"
	"github.com/albapepper/superliga-data/internal/sportmonks"
	"github.com/albapepper/superliga-data/internal/store"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	var (
		seasonIDs []int
		maxPages  int
		perPage   int
		outFile   string
	)

	root := &cobra.Command{
		Use:           "superliga-fetch",
		Short:         "Fetch Danish Superliga fixtures from SportMonks",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if perPage > 0 {
				cfg.PerPage = perPage
			}
			if outFile != "" {
				cfg.OutputFile = outFile
			}

			return run(ctx, cfg, seasonIDs, maxPages)
		},
	}

	root.Flags().IntSliceVar(&seasonIDs, "season-id", nil, "Override season ID(s) to fetch, bypassing season discovery")
	root.Flags().IntVar(&maxPages, "max-pages", 0, "Max pages to fetch per season (0 = unlimited)")
	root.Flags().IntVar(&perPage, "per-page", 0, "Fixtures per page (defaults to PER_PAGE env or 100)")
	root.Flags().StringVar(&outFile, "out", "", "Output CSV path (defaults to OUTPUT_FILE env)")

	if err := root.Execute(); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// run executes the full pipeline: resolve league, resolve or accept
// seasons, fetch, normalize, write. The output file is only written at the
// very end, so an interrupted run leaves no partial output.
func run(ctx context.Context, cfg *config.Config, seasonIDs []int, maxPages int) error {
	client := sportmonks.NewClient(cfg.SportMonksAPIToken, cfg.RequestsPerMinute, cfg.HTTPTimeout, logger)

	// Step 1: find the league
	leagues, err := client.ListLeagues(ctx)
	if err != nil {
		return fmt.Errorf("list leagues: %w", err)
	}
	logLeagueNames(leagues)

	league, tier, ok := resolve.League(leagues)
	if !ok {
		return fmt.Errorf("Danish Superliga not found among %d accessible leagues", len(leagues))
	}
	logger.Info("selected league", "name", league.Name, "league_id", league.ID, "matched_by", tier)

	// Step 2: determine seasons
	if len(seasonIDs) > 0 {
		logger.Info("using override seasons", "season_ids", seasonIDs)
	} else {
		seasons, err := client.LeagueSeasons(ctx, league.ID)
		if err != nil {
			return fmt.Errorf("fetch seasons: %w", err)
		}
		logger.Info("testing seasons from most recent", "league_id", league.ID, "count", len(seasons))

		sid, ok := resolve.Season(ctx, seasons, client.ProbeSeason, logger)
		if !ok {
			return fmt.Errorf("no accessible season found for league %d", league.ID)
		}
		seasonIDs = []int{sid}
	}

	// Step 3: fetch fixtures for all seasons. A season whose fetch fails
	// contributes zero fixtures; other seasons are unaffected. Fixtures
	// appearing in more than one season are kept as-is, no dedup.
	var allFixtures []normalize.RawFixture
	for _, sid := range seasonIDs {
		fixtures, err := client.SeasonFixtures(ctx, sid, cfg.PerPage, maxPages)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Warn("no fixtures retrieved for season", "season_id", sid, "error", err)
			continue
		}
		logger.Info("retrieved fixtures", "season_id", sid, "count", len(fixtures))
		allFixtures = append(allFixtures, fixtures...)
	}
	if len(allFixtures) == 0 {
		return fmt.Errorf("no fixtures retrieved from any season")
	}

	// Step 4: normalize
	records := normalize.Normalize(allFixtures, logger)
	if len(records) == 0 {
		return fmt.Errorf("no fixtures could be parsed")
	}

	// Step 5: write outputs
	if err := export.WriteCSV(cfg.OutputFile, records); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	logger.Info("saved fixtures", "file", cfg.OutputFile, "count", len(records))

	if cfg.DatabaseURL != "" {
		if err := mirrorToPostgres(ctx, cfg.DatabaseURL, records); err != nil {
			// The CSV is already on disk; the mirror is best-effort.
			logger.Warn("postgres mirror failed", "error", err)
		}
	}

	return nil
}

// logLeagueNames surfaces the unfiltered league list so a failed resolution
// can be diagnosed from the log alone.
func logLeagueNames(leagues []sportmonks.League) {
	names := make([]string, 0, 10)
	for _, l := range leagues {
		names = append(names, l.Name)
		if len(names) == 10 {
			break
		}
	}
	logger.Info("available leagues", "total", len(leagues), "first", names)
}

func mirrorToPostgres(ctx context.Context, databaseURL string, records []normalize.Record) error {
	st, err := store.New(ctx, databaseURL, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	start := time.Now()
	upserted, err := st.UpsertFixtures(ctx, records)
	if err != nil {
		return err
	}
	logger.Info("mirrored fixtures to postgres",
		"upserted", upserted, "duration", time.Since(start).Round(time.Millisecond))
	return nil
}
