// Package resolve selects a league and a usable season from loosely
// structured API listings using ordered best-effort heuristics.
package resolve

import (
	"strings"

	"github.com/albapepper/superliga-data/internal/sportmonks"
)

// leagueTier is one name-matching heuristic. Tiers are independent and
// evaluated in confidence order: the first tier that matches any league
// wins, and within a tier the first matching league wins.
type leagueTier struct {
	name  string
	match func(lowerName string) bool
}

var leagueTiers = []leagueTier{
	{"superliga", func(n string) bool {
		return strings.Contains(n, "superliga") && !strings.Contains(n, "play")
	}},
	{"superliga-exact", func(n string) bool {
		return strings.TrimSpace(n) == "superliga"
	}},
	{"super", func(n string) bool {
		return strings.Contains(n, "super") && !strings.Contains(n, "play")
	}},
	{"denmark", func(n string) bool {
		return strings.Contains(n, "denmark")
	}},
}

// League picks the Danish Superliga from a league listing. The matched
// league and the name of the winning tier are returned for diagnostics;
// ok is false when no tier matches anything.
func League(leagues []sportmonks.League) (league sportmonks.League, tier string, ok bool) {
	for _, t := range leagueTiers {
		for _, l := range leagues {
			if t.match(strings.ToLower(l.Name)) {
				return l, t.name, true
			}
		}
	}
	return sportmonks.League{}, "", false
}
