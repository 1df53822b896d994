package resolve

import (
	"context"
	"fmt"
	"testing"

	"github.com/albapepper/superliga-data/internal/sportmonks"
)

// recordingProbe remembers probe order and answers from a canned table.
func recordingProbe(order *[]int, accessible map[int]bool) Probe {
	return func(ctx context.Context, seasonID int) (int, error) {
		*order = append(*order, seasonID)
		if accessible[seasonID] {
			return 1, nil
		}
		return 0, fmt.Errorf("season %d returned 403", seasonID)
	}
}

func TestSeason_ProbesMostRecentFirst(t *testing.T) {
	t.Parallel()

	seasons := []sportmonks.Season{
		{ID: 2023, StartingAt: "2023-01-01"},
		{ID: 2024, StartingAt: "2024-01-01"},
		{ID: 2022, StartingAt: "2022-01-01"},
	}

	var order []int
	id, ok := Season(context.Background(), seasons,
		recordingProbe(&order, map[int]bool{2022: true}), nil)
	if !ok || id != 2022 {
		t.Fatalf("expected season 2022, got ok=%v id=%d", ok, id)
	}

	want := []int{2024, 2023, 2022}
	if len(order) != len(want) {
		t.Fatalf("expected %d probes, got=%v", len(want), order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected probe order %v, got=%v", want, order)
		}
	}
}

func TestSeason_CurrentSeasonProbedFirst(t *testing.T) {
	t.Parallel()

	seasons := []sportmonks.Season{
		{ID: 2023, StartingAt: "2023-01-01"},
		{ID: 2024, StartingAt: "2024-01-01"},
		{ID: 2022, StartingAt: "2022-01-01", IsCurrent: true},
	}

	var order []int
	id, ok := Season(context.Background(), seasons,
		recordingProbe(&order, map[int]bool{2022: true}), nil)
	if !ok || id != 2022 {
		t.Fatalf("expected season 2022, got ok=%v id=%d", ok, id)
	}
	if order[0] != 2022 {
		t.Fatalf("expected current season probed first, got order=%v", order)
	}
	// Remaining seasons keep their recency order.
	if order[1] != 2024 || order[2] != 2023 {
		t.Fatalf("expected stable remainder [2024 2023], got order=%v", order)
	}
}

func TestSeason_FirstAccessibleWins(t *testing.T) {
	t.Parallel()

	seasons := []sportmonks.Season{
		{ID: 1, StartingAt: "2024-01-01"},
		{ID: 2, StartingAt: "2023-01-01"},
		{ID: 3, StartingAt: "2022-01-01"},
	}

	var order []int
	id, ok := Season(context.Background(), seasons,
		recordingProbe(&order, map[int]bool{2: true, 3: true}), nil)
	if !ok || id != 2 {
		t.Fatalf("expected season 2, got ok=%v id=%d", ok, id)
	}
	if len(order) != 2 {
		t.Fatalf("expected probing to stop at first success, got order=%v", order)
	}
}

func TestSeason_ZeroFixturesStillAccessible(t *testing.T) {
	t.Parallel()

	seasons := []sportmonks.Season{{ID: 7, StartingAt: "2024-01-01"}}

	probe := func(ctx context.Context, seasonID int) (int, error) {
		return 0, nil
	}
	id, ok := Season(context.Background(), seasons, probe, nil)
	if !ok || id != 7 {
		t.Fatalf("expected season 7 despite zero fixtures, got ok=%v id=%d", ok, id)
	}
}

func TestSeason_AllProbesFail(t *testing.T) {
	t.Parallel()

	seasons := []sportmonks.Season{
		{ID: 1, StartingAt: "2024-01-01"},
		{ID: 2, StartingAt: "2023-01-01"},
	}

	var order []int
	if _, ok := Season(context.Background(), seasons,
		recordingProbe(&order, nil), nil); ok {
		t.Fatalf("expected no accessible season")
	}
	if len(order) != 2 {
		t.Fatalf("expected every season probed, got order=%v", order)
	}
}

func TestSeason_EmptyInput(t *testing.T) {
	t.Parallel()

	probe := func(ctx context.Context, seasonID int) (int, error) {
		t.Fatalf("probe must not be called for empty input")
		return 0, nil
	}
	if _, ok := Season(context.Background(), nil, probe, nil); ok {
		t.Fatalf("expected no season from empty input")
	}
}

func TestSeason_InputNotMutated(t *testing.T) {
	t.Parallel()

	seasons := []sportmonks.Season{
		{ID: 1, StartingAt: "2022-01-01"},
		{ID: 2, StartingAt: "2024-01-01", IsCurrent: true},
		{ID: 3, StartingAt: "2023-01-01"},
	}

	var order []int
	Season(context.Background(), seasons, recordingProbe(&order, nil), nil)

	if seasons[0].ID != 1 || seasons[1].ID != 2 || seasons[2].ID != 3 {
		t.Fatalf("input slice was reordered: %+v", seasons)
	}
}
