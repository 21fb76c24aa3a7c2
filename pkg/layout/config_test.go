package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formlayout/pkg/geometry"
)

func intPtr(v int) *int { return &v }

func TestResolveConfigDefaults(t *testing.T) {
	got := ResolveConfig(Overrides{}, nil, nil)
	if diff := cmp.Diff(DefaultConfig(), got); diff != "" {
		t.Fatalf("empty overrides must resolve to defaults (-want +got):\n%s", diff)
	}
}

func TestResolveConfigAppliesOverrides(t *testing.T) {
	ov := Overrides{
		Gap:              geometry.Px(20),
		MinColumnWidth:   geometry.Dim(20, "rem"),
		CollapseAt:       geometry.Px(600),
		GroupGap:         geometry.Px(32),
		MaxColumns:       intPtr(3),
		ColumnChars:      intPtr(10),
		SpanPaddingChars: intPtr(0),
		Groups: map[string]GroupOverride{
			"address": {GapBefore: geometry.Px(48)},
		},
	}

	got := ResolveConfig(ov, nil, nil)

	want := Config{
		Gap:              20,
		MinColumnWidth:   320, // 20rem via the 16px fallback
		CollapseAt:       600,
		GroupGap:         32,
		MaxColumns:       3,
		ColumnChars:      10,
		SpanPaddingChars: 0,
		Groups: map[string]GroupConfig{
			"address": {GapBefore: 48},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveConfigReplacesInvalidValues(t *testing.T) {
	ov := Overrides{
		Gap:              geometry.Px(-4),
		MinColumnWidth:   geometry.Px(0),
		MaxColumns:       intPtr(0),
		ColumnChars:      intPtr(-2),
		SpanPaddingChars: intPtr(-1),
	}

	got := ResolveConfig(ov, nil, nil)

	if got.Gap != DefaultGap {
		t.Fatalf("negative gap must fall back to default, got %v", got.Gap)
	}
	if got.MinColumnWidth != DefaultMinColumnWidth {
		t.Fatalf("zero min column width must fall back to default, got %v", got.MinColumnWidth)
	}
	if got.MaxColumns != DefaultMaxColumns || got.ColumnChars != DefaultColumnChars {
		t.Fatalf("non-positive integers must fall back: %+v", got)
	}
	if got.SpanPaddingChars != DefaultSpanPaddingChars {
		t.Fatalf("negative span padding must fall back, got %d", got.SpanPaddingChars)
	}
}

func TestResolveConfigUsesMeasurer(t *testing.T) {
	measurer := geometry.MeasurerFunc(func(unit string) (float64, bool) {
		if unit == "rem" {
			return 10, true
		}
		return 0, false
	})

	got := ResolveConfig(Overrides{Gap: geometry.Dim(2, "rem")}, measurer, nil)
	if got.Gap != 20 {
		t.Fatalf("expected measurer-resolved gap 20, got %v", got.Gap)
	}
}

func TestResolveConfigUnknownUnitFallsBack(t *testing.T) {
	got := ResolveConfig(Overrides{Gap: geometry.Dim(10, "vw")}, nil, nil)
	if got.Gap != DefaultGap {
		t.Fatalf("unknown unit must fall back to default, got %v", got.Gap)
	}
}

func TestOverridesMerge(t *testing.T) {
	base := Overrides{
		Gap:        geometry.Px(16),
		MaxColumns: intPtr(4),
		Groups: map[string]GroupOverride{
			"address": {GapBefore: geometry.Px(24)},
		},
	}
	got := base.Merge(Overrides{
		Gap:        geometry.Px(20),
		ColumnChars: intPtr(10),
		Groups: map[string]GroupOverride{
			"billing": {GapBefore: geometry.Px(48)},
		},
	})

	if got.Gap.String() != "20px" {
		t.Fatalf("expected overlay gap to win, got %q", got.Gap.String())
	}
	if got.MaxColumns == nil || *got.MaxColumns != 4 {
		t.Fatalf("expected base maxColumns preserved, got %v", got.MaxColumns)
	}
	if got.ColumnChars == nil || *got.ColumnChars != 10 {
		t.Fatalf("expected overlay columnChars applied, got %v", got.ColumnChars)
	}
	if len(got.Groups) != 2 {
		t.Fatalf("expected merged group maps, got %v", got.Groups)
	}
	if len(base.Groups) != 1 {
		t.Fatalf("merge must not mutate the base group map")
	}
}

func TestGroupGapBefore(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Groups = map[string]GroupConfig{"address": {GapBefore: 40}}

	if got := cfg.GroupGapBefore("address"); got != 40 {
		t.Fatalf("expected 40, got %v", got)
	}
	if got := cfg.GroupGapBefore("other"); got != cfg.GroupGap {
		t.Fatalf("expected global gap, got %v", got)
	}
}
