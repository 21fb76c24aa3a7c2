package layout

import (
	"math"
	"testing"
)

func TestComputeColumns(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		name     string
		width    float64
		previous int
		want     int
	}{
		{"collapse at breakpoint", 672, 3, 1},
		{"just above breakpoint", 700, 1, 2},
		{"wide container", 1200, 1, 4},
		{"very wide clamps to max", 4000, 1, 4},
		{"missing geometry keeps previous", math.NaN(), 3, 3},
		{"missing geometry first pass", math.NaN(), 0, 1},
		{"zero width keeps previous", 0, 2, 2},
		{"negative width keeps previous", -5, 2, 2},
		{"infinite width keeps previous", math.Inf(1), 2, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeColumns(tc.width, cfg, tc.previous); got != tc.want {
				t.Fatalf("ComputeColumns(%v, previous=%d) = %d, want %d", tc.width, tc.previous, got, tc.want)
			}
		})
	}
}

func TestComputeColumnsWorkedExample(t *testing.T) {
	// floor((700+16)/(256+16)) = floor(2.63) = 2.
	cfg := Config{Gap: 16, MinColumnWidth: 256, CollapseAt: 672, MaxColumns: 4}
	if got := ComputeColumns(700, cfg, 1); got != 2 {
		t.Fatalf("expected 2 columns at 700px, got %d", got)
	}
}

func TestComputeColumnsMonotonic(t *testing.T) {
	cfg := DefaultConfig()
	previous := 0
	last := 0
	for width := 1.0; width <= 3000; width += 13 {
		got := ComputeColumns(width, cfg, previous)
		if got < last {
			t.Fatalf("columns decreased from %d to %d at width %v", last, got, width)
		}
		if got < 1 || got > cfg.MaxColumns {
			t.Fatalf("columns %d outside [1, %d] at width %v", got, cfg.MaxColumns, width)
		}
		last = got
		previous = got
	}
}

func TestComputeColumnsClampsStalePrevious(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxColumns = 2
	// A previous count from a more permissive configuration is clamped back
	// into range when geometry is missing.
	if got := ComputeColumns(math.NaN(), cfg, 4); got != 2 {
		t.Fatalf("expected stale previous clamped to 2, got %d", got)
	}
}
