package normalize

import (
	"fmt"
	"log/slog"
)

// dateKeys are candidate fixture timestamp fields, most reliable first.
var dateKeys = []string{"starting_at", "time", "date"}

// Normalize flattens raw fixtures into records. A fixture whose extraction
// fails is logged and skipped; the rest of the batch is unaffected.
func Normalize(fixtures []RawFixture, logger *slog.Logger) []Record {
	if logger == nil {
		logger = slog.Default()
	}

	records := make([]Record, 0, len(fixtures))
	unknownScores := 0
	for _, f := range fixtures {
		rec, scoreKnown, err := normalizeOne(f)
		if err != nil {
			logger.Warn("skipping fixture", "fixture_id", f["id"], "error", err)
			continue
		}
		if !scoreKnown {
			// The 0-0 default in the output is indistinguishable from a
			// genuine goalless draw, so the count is surfaced here.
			unknownScores++
		}
		records = append(records, rec)
	}
	if unknownScores > 0 {
		logger.Info("fixtures without a determinable score defaulted to 0-0",
			"count", unknownScores, "total", len(records))
	}
	return records
}

// normalizeOne builds a single record from a raw fixture. Only a missing or
// non-numeric fixture ID is fatal; every other field degrades to nil or a
// default.
func normalizeOne(f RawFixture) (Record, bool, error) {
	id, ok := asInt(f["id"])
	if !ok {
		return Record{}, false, fmt.Errorf("fixture has no numeric id (got %T)", f["id"])
	}

	score := ExtractGoals(f)

	rec := Record{
		FixtureID: id,
		Date:      firstDate(f),
		HomeGoals: score.Home,
		AwayGoals: score.Away,
		GoalDiff:  score.Home - score.Away,
		Result:    deriveResult(score.Home, score.Away),
	}

	rec.HomeTeamID, rec.HomeTeamName, rec.AwayTeamID, rec.AwayTeamName = extractTeams(f)
	rec.HomeFormation, rec.AwayFormation = extractFormations(f)

	return rec, score.Known, nil
}

func firstDate(f RawFixture) string {
	for _, key := range dateKeys {
		if s, ok := asString(f[key]); ok && s != "" {
			return s
		}
	}
	return ""
}

// extractTeams pulls team identity from the participants list, using the
// nested meta.location discriminator. Any side may be absent.
func extractTeams(f RawFixture) (homeID *int, homeName *string, awayID *int, awayName *string) {
	participants, ok := asList(f["participants"])
	if !ok {
		return nil, nil, nil, nil
	}

	for _, entry := range participants {
		p, ok := asMap(entry)
		if !ok {
			continue
		}
		meta, _ := asMap(p["meta"])
		location, _ := asString(meta["location"])

		switch location {
		case "home":
			homeID = intField(p, "id")
			homeName = stringField(p, "name")
		case "away":
			awayID = intField(p, "id")
			awayName = stringField(p, "name")
		}
	}
	return homeID, homeName, awayID, awayName
}

// extractFormations pulls tactical shapes from the formations list, which
// carries a flat "location" field rather than nested meta.
func extractFormations(f RawFixture) (home *string, away *string) {
	formations, ok := asList(f["formations"])
	if !ok {
		return nil, nil
	}

	for _, entry := range formations {
		fm, ok := asMap(entry)
		if !ok {
			continue
		}
		switch location, _ := asString(fm["location"]); location {
		case "home":
			home = stringField(fm, "formation")
		case "away":
			away = stringField(fm, "formation")
		}
	}
	return home, away
}

func intField(m map[string]any, key string) *int {
	if n, ok := asInt(m[key]); ok {
		return &n
	}
	return nil
}

func stringField(m map[string]any, key string) *string {
	if s, ok := asString(m[key]); ok && s != "" {
		return &s
	}
	return nil
}
