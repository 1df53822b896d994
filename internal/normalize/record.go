// Package normalize flattens loosely-structured SportMonks fixture payloads
// into tabular records.
//
// Upstream fixtures vary wildly in shape: the same semantic fact (goals
// scored) can arrive as a structured scores list, flat fields, a mapping, a
// scoreboard entry, or free text. Everything here is written to tolerate
// missing keys and wrong types rather than reject them.
package normalize

// RawFixture is a fixture exactly as the API returned it: a dynamically
// shaped tree of strings, numbers, booleans, lists, and nested mappings.
// It is only ever read, never mutated.
type RawFixture map[string]any

// Result classifies a fixture outcome from the home side's perspective.
type Result string

const (
	ResultHome Result = "HOME"
	ResultAway Result = "AWAY"
	ResultDraw Result = "DRAW"
)

// Score carries a pair of goal counts plus whether they were actually found.
// Known=false means no strategy could determine a score; the zero counts in
// that case are a sentinel, not a nil-nil draw.
type Score struct {
	Home  int
	Away  int
	Known bool
}

// Record is the canonical flat output unit, one per successfully parsed
// fixture. Pointer fields are nil when the upstream payload had no value.
type Record struct {
	FixtureID     int
	Date          string
	HomeTeamID    *int
	HomeTeamName  *string
	AwayTeamID    *int
	AwayTeamName  *string
	HomeGoals     int
	AwayGoals     int
	HomeFormation *string
	AwayFormation *string
	GoalDiff      int
	Result        Result
}

// deriveResult computes the outcome enum from goal counts.
func deriveResult(homeGoals, awayGoals int) Result {
	switch {
	case homeGoals > awayGoals:
		return ResultHome
	case awayGoals > homeGoals:
		return ResultAway
	default:
		return ResultDraw
	}
}

// --------------------------------------------------------------------------
// Loose-shape accessors
//
// encoding/json decodes all numbers into float64, but values occasionally
// pass through as native ints in tests and internal callers, so both are
// accepted. Strings are deliberately not numbers here.
// --------------------------------------------------------------------------

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asList(v any) ([]any, bool) {
	l, ok := v.([]any)
	return l, ok
}
