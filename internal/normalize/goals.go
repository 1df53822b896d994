package normalize

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// scorePattern matches "2-1", "2 : 1", "3–0" and similar digit pairs joined
// by a hyphen, colon, or en-dash.
var scorePattern = regexp.MustCompile(`(\d+)\s*[-:\x{2013}]\s*(\d+)`)

// Field name aliases seen across SportMonks API versions and sibling feeds.
var (
	directHomeKeys = []string{"localteam_score", "local_team_score", "home_score", "home_goals", "home"}
	directAwayKeys = []string{"visitorteam_score", "visitor_team_score", "away_score", "away_goals", "away"}

	mapHomeKeys = []string{"home", "local", "localteam", "team1"}
	mapAwayKeys = []string{"away", "visitor", "visitorteam", "team2"}

	boardHomeKeys = []string{"score_local", "local_score", "home_score", "home"}
	boardAwayKeys = []string{"score_visitor", "visitor_score", "away_score", "away"}
)

// goalStrategy is one independent way a fixture might carry its score.
type goalStrategy struct {
	name    string
	extract func(RawFixture) (home, away int, ok bool)
}

// goalStrategies is evaluated in order; the first strategy that yields a
// definite pair wins. Order encodes confidence: structured data first,
// free-text scraping last.
var goalStrategies = []goalStrategy{
	{"scores-current", goalsFromCurrentScores},
	{"direct-fields", goalsFromDirectFields},
	{"scores-map", goalsFromScoresMap},
	{"scoreboards", goalsFromScoreboards},
	{"score-string", goalsFromScoreString},
	{"text-scan", goalsFromText},
}

// ExtractGoals determines home and away goal counts for a fixture. When no
// strategy succeeds it returns a Score with Known=false rather than minting
// a fake 0-0, so callers can distinguish "scoreless" from "score unknown".
func ExtractGoals(f RawFixture) Score {
	for _, s := range goalStrategies {
		if home, away, ok := s.extract(f); ok {
			return Score{Home: home, Away: away, Known: true}
		}
	}
	return Score{}
}

// goalsFromCurrentScores reads the SportMonks v3 scores relation: a list of
// entries where description "CURRENT" carries per-participant goal counts.
// Both sides must be present for the strategy to succeed.
func goalsFromCurrentScores(f RawFixture) (int, int, bool) {
	scores, ok := asList(f["scores"])
	if !ok {
		return 0, 0, false
	}

	var home, away *int
	for _, entry := range scores {
		m, ok := asMap(entry)
		if !ok {
			continue
		}
		if desc, _ := asString(m["description"]); desc != "CURRENT" {
			continue
		}
		score, ok := asMap(m["score"])
		if !ok {
			continue
		}
		goals, ok := asInt(score["goals"])
		if !ok {
			continue
		}
		switch participant, _ := asString(score["participant"]); participant {
		case "home":
			g := goals
			home = &g
		case "away":
			g := goals
			away = &g
		}
	}

	if home != nil && away != nil {
		return *home, *away, true
	}
	return 0, 0, false
}

// goalsFromDirectFields checks known flat field alias pairs at the fixture's
// top level, first pair where both sides are numeric wins.
func goalsFromDirectFields(f RawFixture) (int, int, bool) {
	for _, hk := range directHomeKeys {
		home, ok := asInt(f[hk])
		if !ok {
			continue
		}
		for _, ak := range directAwayKeys {
			if away, ok := asInt(f[ak]); ok {
				return home, away, true
			}
		}
	}
	return 0, 0, false
}

// goalsFromScoresMap handles "scores" (or "scores_calculated") when it is a
// mapping rather than a list: first by semantic key pairs, then by grabbing
// the first two numeric values in key order. The latter is the
// lowest-confidence rule in the chain; key order makes it deterministic.
func goalsFromScoresMap(f RawFixture) (int, int, bool) {
	m, ok := asMap(f["scores"])
	if !ok {
		m, ok = asMap(f["scores_calculated"])
	}
	if !ok {
		return 0, 0, false
	}

	for _, hk := range mapHomeKeys {
		home, ok := asInt(m[hk])
		if !ok {
			continue
		}
		for _, ak := range mapAwayKeys {
			if away, ok := asInt(m[ak]); ok {
				return home, away, true
			}
		}
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	nums := make([]int, 0, 2)
	for _, k := range keys {
		if n, ok := asInt(m[k]); ok {
			nums = append(nums, n)
			if len(nums) == 2 {
				return nums[0], nums[1], true
			}
		}
	}
	return 0, 0, false
}

// goalsFromScoreboards scans a scoreboards list for paired numeric fields or
// a single "N-N" string field.
func goalsFromScoreboards(f RawFixture) (int, int, bool) {
	boards, ok := asList(f["scoreboards"])
	if !ok {
		return 0, 0, false
	}

	for _, entry := range boards {
		sb, ok := asMap(entry)
		if !ok {
			continue
		}
		for _, hk := range boardHomeKeys {
			home, ok := asInt(sb[hk])
			if !ok {
				continue
			}
			for _, ak := range boardAwayKeys {
				if away, ok := asInt(sb[ak]); ok {
					return home, away, true
				}
			}
		}
		for _, key := range []string{"score", "value", "score_string"} {
			if s, ok := asString(sb[key]); ok {
				if home, away, ok := splitScoreString(s); ok {
					return home, away, true
				}
			}
		}
	}
	return 0, 0, false
}

// goalsFromScoreString handles a fixture-level "score" (or "scores") field
// that is itself a string like "2-1".
func goalsFromScoreString(f RawFixture) (int, int, bool) {
	for _, key := range []string{"score", "scores"} {
		if s, ok := asString(f[key]); ok {
			if home, away, ok := splitScoreString(s); ok {
				return home, away, true
			}
		}
	}
	return 0, 0, false
}

// goalsFromText is the last resort: a regex scan of the result description,
// then a recursive scan of the participants, stats, and events subtrees for
// any string value matching the score pattern.
func goalsFromText(f RawFixture) (int, int, bool) {
	for _, key := range []string{"result_info", "result"} {
		if s, ok := asString(f[key]); ok {
			if home, away, ok := matchScorePattern(s); ok {
				return home, away, true
			}
		}
	}

	for _, key := range []string{"participants", "stats", "events"} {
		if v, present := f[key]; present {
			if home, away, ok := findScoreInTree(v); ok {
				return home, away, true
			}
		}
	}
	return 0, 0, false
}

func findScoreInTree(v any) (int, int, bool) {
	switch node := v.(type) {
	case string:
		return matchScorePattern(node)
	case map[string]any:
		for _, child := range node {
			if home, away, ok := findScoreInTree(child); ok {
				return home, away, true
			}
		}
	case []any:
		for _, child := range node {
			if home, away, ok := findScoreInTree(child); ok {
				return home, away, true
			}
		}
	}
	return 0, 0, false
}

func matchScorePattern(s string) (int, int, bool) {
	m := scorePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	home, err1 := strconv.Atoi(m[1])
	away, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return home, away, true
}

// splitScoreString parses a plain "N-N" score string. Unlike the regex scan
// it requires the whole field to be the two halves of a score, so trailing
// annotations like "2-1 (agg)" don't match.
func splitScoreString(s string) (int, int, bool) {
	if !strings.Contains(s, "-") {
		return 0, 0, false
	}
	parts := strings.SplitN(s, "-", 2)
	home, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	away, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return home, away, true
}
