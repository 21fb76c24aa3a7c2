package layout

import (
	"log/slog"

	"github.com/goliatone/go-formlayout/pkg/geometry"
)

// Built-in configuration defaults, used whenever an override is absent or
// invalid.
const (
	DefaultGap              = 16.0
	DefaultMinColumnWidth   = 256.0
	DefaultCollapseAt       = 672.0
	DefaultGroupGap         = 24.0
	DefaultMaxColumns       = 4
	DefaultColumnChars      = 12
	DefaultSpanPaddingChars = 2
)

// Overrides carries externally supplied configuration before validation.
// Dimensions may be expressed in any unit geometry understands; nil integer
// fields mean "keep the default".
type Overrides struct {
	Gap              geometry.Dimension
	MinColumnWidth   geometry.Dimension
	CollapseAt       geometry.Dimension
	GroupGap         geometry.Dimension
	MaxColumns       *int
	ColumnChars      *int
	SpanPaddingChars *int
	Groups           map[string]GroupOverride
}

// GroupOverride adjusts the gap inserted before one named group.
type GroupOverride struct {
	GapBefore geometry.Dimension
}

// Merge overlays other on top of the receiver: set fields in other win.
func (o Overrides) Merge(other Overrides) Overrides {
	out := o
	if !other.Gap.IsZero() {
		out.Gap = other.Gap
	}
	if !other.MinColumnWidth.IsZero() {
		out.MinColumnWidth = other.MinColumnWidth
	}
	if !other.CollapseAt.IsZero() {
		out.CollapseAt = other.CollapseAt
	}
	if !other.GroupGap.IsZero() {
		out.GroupGap = other.GroupGap
	}
	if other.MaxColumns != nil {
		out.MaxColumns = other.MaxColumns
	}
	if other.ColumnChars != nil {
		out.ColumnChars = other.ColumnChars
	}
	if other.SpanPaddingChars != nil {
		out.SpanPaddingChars = other.SpanPaddingChars
	}
	if len(other.Groups) > 0 {
		merged := make(map[string]GroupOverride, len(o.Groups)+len(other.Groups))
		for name, g := range o.Groups {
			merged[name] = g
		}
		for name, g := range other.Groups {
			merged[name] = g
		}
		out.Groups = merged
	}
	return out
}

// Config is the validated, pixel-resolved configuration one pass works with.
// It is immutable for the duration of the pass and rebuilt fresh from the
// configuration source at the start of every full pass.
type Config struct {
	Gap              float64
	MinColumnWidth   float64
	CollapseAt       float64
	GroupGap         float64
	MaxColumns       int
	ColumnChars      int
	SpanPaddingChars int
	Groups           map[string]GroupConfig
}

// GroupConfig is the resolved per-group configuration.
type GroupConfig struct {
	GapBefore float64
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Gap:              DefaultGap,
		MinColumnWidth:   DefaultMinColumnWidth,
		CollapseAt:       DefaultCollapseAt,
		GroupGap:         DefaultGroupGap,
		MaxColumns:       DefaultMaxColumns,
		ColumnChars:      DefaultColumnChars,
		SpanPaddingChars: DefaultSpanPaddingChars,
	}
}

// ResolveConfig validates overrides into a usable Config. Every invalid or
// unresolvable value is replaced with its built-in default; replacements are
// logged through logger when one is supplied, and never abort resolution.
func ResolveConfig(ov Overrides, m geometry.Measurer, logger *slog.Logger) Config {
	cfg := DefaultConfig()

	cfg.Gap = resolveDimension(ov.Gap, m, cfg.Gap, false, "gap", logger)
	cfg.MinColumnWidth = resolveDimension(ov.MinColumnWidth, m, cfg.MinColumnWidth, true, "minColumnWidth", logger)
	cfg.CollapseAt = resolveDimension(ov.CollapseAt, m, cfg.CollapseAt, false, "collapseAt", logger)
	cfg.GroupGap = resolveDimension(ov.GroupGap, m, cfg.GroupGap, false, "groupGap", logger)

	cfg.MaxColumns = resolvePositive(ov.MaxColumns, cfg.MaxColumns, "maxColumns", logger)
	cfg.ColumnChars = resolvePositive(ov.ColumnChars, cfg.ColumnChars, "columnChars", logger)
	if ov.SpanPaddingChars != nil {
		if *ov.SpanPaddingChars >= 0 {
			cfg.SpanPaddingChars = *ov.SpanPaddingChars
		} else {
			warnReplaced(logger, "spanPaddingChars", *ov.SpanPaddingChars, cfg.SpanPaddingChars)
		}
	}

	if len(ov.Groups) > 0 {
		cfg.Groups = make(map[string]GroupConfig, len(ov.Groups))
		for name, g := range ov.Groups {
			gap := resolveDimension(g.GapBefore, m, cfg.GroupGap, false, "groups."+name+".gapBefore", logger)
			cfg.Groups[name] = GroupConfig{GapBefore: gap}
		}
	}

	return cfg
}

// GroupGapBefore returns the gap to insert before the named group: the
// per-group override when present, the global group gap otherwise.
func (c Config) GroupGapBefore(group string) float64 {
	if g, ok := c.Groups[group]; ok {
		return g.GapBefore
	}
	return c.GroupGap
}

func resolveDimension(dim geometry.Dimension, m geometry.Measurer, fallback float64, requirePositive bool, name string, logger *slog.Logger) float64 {
	if dim.IsZero() {
		return fallback
	}
	px, known := dim.Pixels(m)
	if !known {
		warnReplaced(logger, name, dim.String(), fallback)
		return fallback
	}
	if px < 0 || (requirePositive && px == 0) {
		warnReplaced(logger, name, dim.String(), fallback)
		return fallback
	}
	return px
}

func resolvePositive(value *int, fallback int, name string, logger *slog.Logger) int {
	if value == nil {
		return fallback
	}
	if *value < 1 {
		warnReplaced(logger, name, *value, fallback)
		return fallback
	}
	return *value
}

func warnReplaced(logger *slog.Logger, name string, got, used any) {
	if logger == nil {
		return
	}
	logger.Warn("invalid layout configuration value replaced",
		slog.String("option", name),
		slog.Any("got", got),
		slog.Any("used", used),
	)
}
