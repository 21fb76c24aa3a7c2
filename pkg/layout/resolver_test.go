package layout

import (
	"testing"

	"github.com/goliatone/go-formlayout/pkg/field"
	"github.com/goliatone/go-formlayout/pkg/preset"
)

func TestDesiredSpanPrecedence(t *testing.T) {
	cfg := DefaultConfig()
	presetSpan2 := &preset.Preset{Key: "two", Span: field.SpanOf(2)}

	cases := []struct {
		name string
		desc field.Descriptor
		p    *preset.Preset
		want field.Span
	}{
		{
			name: "stacked forces full",
			desc: field.Descriptor{Name: "a", Stacked: true, Span: field.SpanOf(2)},
			want: field.FullSpan(),
		},
		{
			name: "full-only forces full",
			desc: field.Descriptor{Name: "a", FullOnly: true, Span: field.SpanOf(2)},
			want: field.FullSpan(),
		},
		{
			name: "explicit span beats preset",
			desc: field.Descriptor{Name: "a", Span: field.SpanOf(3)},
			p:    presetSpan2,
			want: field.SpanOf(3),
		},
		{
			name: "explicit full span",
			desc: field.Descriptor{Name: "a", Span: field.FullSpan()},
			p:    presetSpan2,
			want: field.FullSpan(),
		},
		{
			name: "preset span applies",
			desc: field.Descriptor{Name: "a"},
			p:    presetSpan2,
			want: field.SpanOf(2),
		},
		{
			name: "preset without span falls through",
			desc: field.Descriptor{Name: "a", MaxChars: 10},
			p:    &preset.Preset{Key: "bare"},
			want: field.SpanOf(1),
		},
		{
			name: "maxChars heuristic",
			desc: field.Descriptor{Name: "a", MaxChars: 60},
			want: field.SpanOf(4),
		},
		{
			name: "maxChars beats multiline",
			desc: field.Descriptor{Name: "a", MaxChars: 10, Multiline: true},
			want: field.SpanOf(1),
		},
		{
			name: "multiline defaults to full",
			desc: field.Descriptor{Name: "a", Multiline: true},
			want: field.FullSpan(),
		},
		{
			name: "default single column",
			desc: field.Descriptor{Name: "a"},
			want: field.SpanOf(1),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DesiredSpan(tc.desc, tc.p, cfg); got != tc.want {
				t.Fatalf("DesiredSpan = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDesiredSpanCharHeuristic(t *testing.T) {
	// ceil((60+2)/12) = 6, clamped to maxColumns 4.
	cfg := DefaultConfig()
	if got := DesiredSpan(field.Descriptor{Name: "a", MaxChars: 60}, nil, cfg); got.Columns() != 4 {
		t.Fatalf("expected span 4 for 60 chars, got %v", got)
	}

	// ceil((20+2)/12) = 2.
	if got := DesiredSpan(field.Descriptor{Name: "a", MaxChars: 20}, nil, cfg); got.Columns() != 2 {
		t.Fatalf("expected span 2 for 20 chars, got %v", got)
	}

	// The heuristic never leaves [1, maxColumns].
	for maxChars := 1; maxChars <= 400; maxChars += 7 {
		got := DesiredSpan(field.Descriptor{Name: "a", MaxChars: maxChars}, nil, cfg)
		if got.IsFull() || got.Columns() < 1 || got.Columns() > cfg.MaxColumns {
			t.Fatalf("maxChars=%d produced span %v outside [1, %d]", maxChars, got, cfg.MaxColumns)
		}
	}
}
