package resolve

import (
	"context"
	"log/slog"
	"sort"

	"github.com/albapepper/superliga-data/internal/sportmonks"
)

// Probe tests whether one season is queryable. It returns the fixture count
// of the probe request on success; a non-nil error means the season is not
// accessible with the current token.
type Probe func(ctx context.Context, seasonID int) (int, error)

// Season picks the first accessible season, probing candidates from most
// recent to oldest with the current season, if any, tried first. A probe
// reporting zero fixtures still counts as accessible. Probe failures are
// logged and skipped, never escalated; ok is false only when every
// candidate fails or the input is empty.
func Season(ctx context.Context, seasons []sportmonks.Season, probe Probe, logger *slog.Logger) (int, bool) {
	if logger == nil {
		logger = slog.Default()
	}

	ordered := orderSeasons(seasons)

	for _, season := range ordered {
		count, err := probe(ctx, season.ID)
		if err != nil {
			logger.Warn("season not accessible",
				"season", season.Label(), "season_id", season.ID, "error", err)
			continue
		}
		logger.Info("season accessible",
			"season", season.Label(), "season_id", season.ID, "fixtures", count)
		return season.ID, true
	}
	return 0, false
}

// orderSeasons sorts descending by starting_at (ISO dates compare fine as
// strings), then moves the first current season to the front. Both steps
// are stable so the remaining seasons keep their relative order.
func orderSeasons(seasons []sportmonks.Season) []sportmonks.Season {
	ordered := make([]sportmonks.Season, len(seasons))
	copy(ordered, seasons)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartingAt > ordered[j].StartingAt
	})

	for i, s := range ordered {
		if s.IsCurrent {
			current := ordered[i]
			copy(ordered[1:i+1], ordered[:i])
			ordered[0] = current
			break
		}
	}
	return ordered
}
