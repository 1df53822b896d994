// Package export serializes normalized fixture records to delimited files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/albapepper/superliga-data/internal/normalize"
)

// header lists the output columns in their fixed order.
var header = []string{
	"fixture_id", "date",
	"home_team_id", "home_team_name",
	"away_team_id", "away_team_name",
	"home_goals", "away_goals",
	"home_formation", "away_formation",
	"goal_diff", "result",
}

// dateLayouts are the timestamp shapes SportMonks has been seen to emit.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// WriteCSV writes records to path as a header-led CSV, sorted ascending by
// kickoff date. Records whose date cannot be parsed sort to the front in
// their original relative order.
func WriteCSV(path string, records []normalize.Record) error {
	sorted := make([]normalize.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return parseDate(sorted[i].Date).Before(parseDate(sorted[j].Date))
	})

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, rec := range sorted {
		row := []string{
			strconv.Itoa(rec.FixtureID),
			rec.Date,
			intCell(rec.HomeTeamID),
			stringCell(rec.HomeTeamName),
			intCell(rec.AwayTeamID),
			stringCell(rec.AwayTeamName),
			strconv.Itoa(rec.HomeGoals),
			strconv.Itoa(rec.AwayGoals),
			stringCell(rec.HomeFormation),
			stringCell(rec.AwayFormation),
			strconv.Itoa(rec.GoalDiff),
			string(rec.Result),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write fixture %d: %w", rec.FixtureID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func intCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func stringCell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
