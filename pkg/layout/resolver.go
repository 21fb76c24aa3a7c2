package layout

import (
	"github.com/goliatone/go-formlayout/pkg/field"
	"github.com/goliatone/go-formlayout/pkg/preset"
)

// DesiredSpan computes the span a field asks for before clamping against the
// live column count. Precedence, first applicable rule wins:
//
//  1. stacked fields and full-only kinds take the full row;
//  2. a valid explicit span on the field;
//  3. a valid span on the resolved preset;
//  4. a width derived from maxChars, sized in column-character units;
//  5. multiline fields take the full row;
//  6. a single column.
//
// Invalid spans are zero by construction and fall through to the next rule.
func DesiredSpan(desc field.Descriptor, p *preset.Preset, cfg Config) field.Span {
	if desc.Stacked || desc.FullOnly {
		return field.FullSpan()
	}
	if !desc.Span.IsZero() {
		return desc.Span
	}
	if p != nil && !p.Span.IsZero() {
		return p.Span
	}
	if desc.MaxChars > 0 {
		return spanFromChars(desc.MaxChars, cfg)
	}
	if desc.Multiline {
		return field.FullSpan()
	}
	return field.SpanOf(1)
}

// spanFromChars sizes a field to roughly fit maxChars characters:
// ceil((maxChars + spanPaddingChars) / columnChars), clamped to
// [1, maxColumns].
func spanFromChars(maxChars int, cfg Config) field.Span {
	chars := cfg.ColumnChars
	if chars < 1 {
		chars = DefaultColumnChars
	}
	padding := cfg.SpanPaddingChars
	if padding < 0 {
		padding = 0
	}
	span := (maxChars + padding + chars - 1) / chars
	return field.SpanOf(clampInt(span, 1, maxColumnsOf(cfg)))
}

func maxColumnsOf(cfg Config) int {
	if cfg.MaxColumns < 1 {
		return DefaultMaxColumns
	}
	return cfg.MaxColumns
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
