package resolve

import (
	"testing"

	"github.com/albapepper/superliga-data/internal/sportmonks"
)

func TestLeague_PrefersSuperligaOverPlayoffs(t *testing.T) {
	t.Parallel()

	leagues := []sportmonks.League{
		{ID: 1326, Name: "Superliga Play-offs"},
		{ID: 271, Name: "Superliga"},
	}

	league, tier, ok := League(leagues)
	if !ok {
		t.Fatalf("expected a match")
	}
	if league.ID != 271 {
		t.Fatalf("expected league 271, got=%d (%s)", league.ID, league.Name)
	}
	if tier != "superliga" {
		t.Fatalf("expected superliga tier, got=%q", tier)
	}
}

func TestLeague_CaseInsensitive(t *testing.T) {
	t.Parallel()

	leagues := []sportmonks.League{{ID: 271, Name: "SUPERLIGA"}}

	league, _, ok := League(leagues)
	if !ok || league.ID != 271 {
		t.Fatalf("expected league 271, got ok=%v league=%+v", ok, league)
	}
}

func TestLeague_SuperFallbackSkipsPlayoffs(t *testing.T) {
	t.Parallel()

	leagues := []sportmonks.League{
		{ID: 10, Name: "Super League Play-offs"},
		{ID: 11, Name: "Swiss Super League"},
	}

	league, tier, ok := League(leagues)
	if !ok {
		t.Fatalf("expected a match")
	}
	if league.ID != 11 {
		t.Fatalf("expected league 11, got=%d", league.ID)
	}
	if tier != "super" {
		t.Fatalf("expected super tier, got=%q", tier)
	}
}

func TestLeague_DenmarkFallback(t *testing.T) {
	t.Parallel()

	leagues := []sportmonks.League{
		{ID: 20, Name: "Premier League"},
		{ID: 21, Name: "Denmark 1"},
	}

	league, tier, ok := League(leagues)
	if !ok {
		t.Fatalf("expected a match")
	}
	if league.ID != 21 {
		t.Fatalf("expected league 21, got=%d", league.ID)
	}
	if tier != "denmark" {
		t.Fatalf("expected denmark tier, got=%q", tier)
	}
}

func TestLeague_NoMatch(t *testing.T) {
	t.Parallel()

	leagues := []sportmonks.League{
		{ID: 20, Name: "Premier League"},
		{ID: 30, Name: "Bundesliga"},
	}

	if _, _, ok := League(leagues); ok {
		t.Fatalf("expected no match")
	}
	if _, _, ok := League(nil); ok {
		t.Fatalf("expected no match on empty input")
	}
}

func TestLeague_TierOneBeatsLaterTiersRegardlessOfOrder(t *testing.T) {
	t.Parallel()

	// Denmark-named entry listed first must still lose to the superliga tier.
	leagues := []sportmonks.League{
		{ID: 21, Name: "Denmark Series"},
		{ID: 271, Name: "Superliga"},
	}

	league, _, ok := League(leagues)
	if !ok || league.ID != 271 {
		t.Fatalf("expected league 271, got ok=%v league=%+v", ok, league)
	}
}
