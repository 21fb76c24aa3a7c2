package uiconfig

import (
	"github.com/goliatone/go-formlayout/pkg/layout"
	"github.com/goliatone/go-formlayout/pkg/preset"
)

// Source supplies layout overrides and preset overrides to the engine. It
// matches the engine's configuration-source contract, so any Source can be
// passed to the engine directly.
type Source interface {
	LayoutOverrides() layout.Overrides
	PresetOverrides() []preset.Preset
}

// Store holds the parsed configuration from one or more documents. It is
// immutable after loading and safe for concurrent readers.
type Store struct {
	overrides layout.Overrides
	presets   []preset.Preset
}

// LayoutOverrides implements Source.
func (s *Store) LayoutOverrides() layout.Overrides {
	if s == nil {
		return layout.Overrides{}
	}
	return s.overrides
}

// PresetOverrides implements Source.
func (s *Store) PresetOverrides() []preset.Preset {
	if s == nil {
		return nil
	}
	return append([]preset.Preset(nil), s.presets...)
}

// Empty reports whether the store carries neither overrides nor presets.
func (s *Store) Empty() bool {
	if s == nil {
		return true
	}
	return len(s.presets) == 0 &&
		s.overrides.Gap.IsZero() &&
		s.overrides.MinColumnWidth.IsZero() &&
		s.overrides.CollapseAt.IsZero() &&
		s.overrides.GroupGap.IsZero() &&
		s.overrides.MaxColumns == nil &&
		s.overrides.ColumnChars == nil &&
		s.overrides.SpanPaddingChars == nil &&
		len(s.overrides.Groups) == 0
}
