package cli

import (
	"testing"

	"github.com/planitapp/planit/internal/client/api"
)

func placements(batch []api.ReorderItem) map[string][2]int {
	out := make(map[string][2]int, len(batch))
	for _, item := range batch {
		out[item.ID] = [2]int{*item.Day, *item.Position}
	}
	return out
}

func TestBuildMoveBatch_AcrossDays(t *testing.T) {
	board := []api.Task{
		{ID: "a", Day: 0, Position: 0},
		{ID: "b", Day: 0, Position: 1},
		{ID: "c", Day: 0, Position: 2},
		{ID: "d", Day: 3, Position: 0},
	}

	batch := buildMoveBatch(board, "b", 3, 0)
	got := placements(batch)

	// source bucket closes the gap
	if got["a"] != [2]int{0, 0} || got["c"] != [2]int{0, 1} {
		t.Fatalf("source bucket: %v", got)
	}
	// moved task lands first, displacing the resident
	if got["b"] != [2]int{3, 0} || got["d"] != [2]int{3, 1} {
		t.Fatalf("target bucket: %v", got)
	}
}

func TestBuildMoveBatch_AppendWhenNoPosition(t *testing.T) {
	board := []api.Task{
		{ID: "a", Day: 0, Position: 0},
		{ID: "b", Day: 2, Position: 0},
		{ID: "c", Day: 2, Position: 1},
	}

	batch := buildMoveBatch(board, "a", 2, -1)
	got := placements(batch)

	if got["a"] != [2]int{2, 2} {
		t.Fatalf("moved task not appended: %v", got)
	}
	if got["b"] != [2]int{2, 0} || got["c"] != [2]int{2, 1} {
		t.Fatalf("residents disturbed: %v", got)
	}
}

func TestBuildMoveBatch_WithinSameDay(t *testing.T) {
	board := []api.Task{
		{ID: "a", Day: 1, Position: 0},
		{ID: "b", Day: 1, Position: 1},
		{ID: "c", Day: 1, Position: 2},
	}

	batch := buildMoveBatch(board, "c", 1, 0)
	got := placements(batch)

	if got["c"] != [2]int{1, 0} || got["a"] != [2]int{1, 1} || got["b"] != [2]int{1, 2} {
		t.Fatalf("bucket order: %v", got)
	}
	// every entry belongs to the one affected bucket
	if len(batch) != 3 {
		t.Fatalf("batch size: %d", len(batch))
	}
}

func TestBuildMoveBatch_OverlongPositionClamped(t *testing.T) {
	board := []api.Task{
		{ID: "a", Day: 0, Position: 0},
		{ID: "b", Day: 4, Position: 0},
	}

	batch := buildMoveBatch(board, "a", 4, 99)
	got := placements(batch)

	if got["a"] != [2]int{4, 1} {
		t.Fatalf("position not clamped: %v", got)
	}
}

func TestBuildMoveBatch_UnknownTask(t *testing.T) {
	board := []api.Task{{ID: "a", Day: 0, Position: 0}}

	if batch := buildMoveBatch(board, "ghost", 1, 0); batch != nil {
		t.Fatalf("expected nil batch, got %v", batch)
	}
}
