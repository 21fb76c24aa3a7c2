package uiconfig

import (
	"log/slog"
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formlayout/pkg/geometry"
	"github.com/goliatone/go-formlayout/pkg/layout"
	"github.com/goliatone/go-formlayout/pkg/preset"
)

// Token keys the theme source understands. Dimension tokens accept any
// length expression geometry can parse; count tokens must be positive
// integers. Per-group gaps use "layout.group.<name>.gapBefore".
const (
	TokenGap              = "layout.gap"
	TokenMinColumnWidth   = "layout.minColumnWidth"
	TokenCollapseAt       = "layout.collapseAt"
	TokenGroupGap         = "layout.groupGap"
	TokenMaxColumns       = "layout.maxColumns"
	TokenColumnChars      = "layout.columnChars"
	TokenSpanPaddingChars = "layout.spanPaddingChars"

	tokenGroupPrefix = "layout.group."
	tokenGroupSuffix = ".gapBefore"
)

// ThemeSource resolves a go-theme selection on every read and maps its
// layout.* tokens onto configuration overrides, layered over an optional
// base source. Because the engine reads its source once per full pass, a
// theme or variant switch takes effect on the next structural recompute.
type ThemeSource struct {
	Selector theme.ThemeSelector
	Theme    string
	Variant  string

	// Base supplies the overrides the theme tokens are merged over.
	// Optional.
	Base Source

	// Logger reports unresolvable selections and malformed token values.
	// Optional.
	Logger *slog.Logger
}

// LayoutOverrides implements Source.
func (s *ThemeSource) LayoutOverrides() layout.Overrides {
	var base layout.Overrides
	if s.Base != nil {
		base = s.Base.LayoutOverrides()
	}
	tokens := s.tokens()
	if len(tokens) == 0 {
		return base
	}
	return base.Merge(tokenOverrides(tokens, s.logger()))
}

// PresetOverrides implements Source. Themes carry no presets; the base
// source's presets pass through.
func (s *ThemeSource) PresetOverrides() []preset.Preset {
	if s.Base == nil {
		return nil
	}
	return s.Base.PresetOverrides()
}

// tokens resolves the selection and merges base tokens with the selected
// variant's tokens, variant winning on collision.
func (s *ThemeSource) tokens() map[string]string {
	if s.Selector == nil {
		return nil
	}
	selection, err := s.Selector.Select(s.Theme, s.Variant)
	if err != nil || selection == nil || selection.Manifest == nil {
		s.logger().Warn("theme selection unavailable, using base configuration",
			slog.String("theme", s.Theme),
			slog.String("variant", s.Variant),
			slog.Any("error", err),
		)
		return nil
	}

	manifest := selection.Manifest
	merged := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		merged[key] = value
	}
	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			merged[key] = value
		}
	}
	return merged
}

func (s *ThemeSource) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func tokenOverrides(tokens map[string]string, logger *slog.Logger) layout.Overrides {
	var ov layout.Overrides

	ov.Gap = dimensionToken(tokens, TokenGap, logger)
	ov.MinColumnWidth = dimensionToken(tokens, TokenMinColumnWidth, logger)
	ov.CollapseAt = dimensionToken(tokens, TokenCollapseAt, logger)
	ov.GroupGap = dimensionToken(tokens, TokenGroupGap, logger)

	ov.MaxColumns = countToken(tokens, TokenMaxColumns, logger)
	ov.ColumnChars = countToken(tokens, TokenColumnChars, logger)
	ov.SpanPaddingChars = countToken(tokens, TokenSpanPaddingChars, logger)

	for key, value := range tokens {
		if !strings.HasPrefix(key, tokenGroupPrefix) || !strings.HasSuffix(key, tokenGroupSuffix) {
			continue
		}
		name := strings.TrimSuffix(strings.TrimPrefix(key, tokenGroupPrefix), tokenGroupSuffix)
		if name == "" {
			continue
		}
		dim, ok := geometry.DimensionValue(value)
		if !ok {
			warnToken(logger, key, value)
			continue
		}
		if ov.Groups == nil {
			ov.Groups = make(map[string]layout.GroupOverride)
		}
		ov.Groups[name] = layout.GroupOverride{GapBefore: dim}
	}

	return ov
}

func dimensionToken(tokens map[string]string, key string, logger *slog.Logger) geometry.Dimension {
	raw, ok := tokens[key]
	if !ok {
		return geometry.Dimension{}
	}
	dim, valid := geometry.DimensionValue(raw)
	if !valid {
		warnToken(logger, key, raw)
		return geometry.Dimension{}
	}
	return dim
}

func countToken(tokens map[string]string, key string, logger *slog.Logger) *int {
	raw, ok := tokens[key]
	if !ok {
		return nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 0 {
		warnToken(logger, key, raw)
		return nil
	}
	return &value
}

func warnToken(logger *slog.Logger, key, value string) {
	if logger == nil {
		return
	}
	logger.Warn("unparseable theme token ignored",
		slog.String("token", key),
		slog.String("value", value),
	)
}
