package engine

import (
	"github.com/goliatone/go-formlayout/pkg/field"
	"github.com/goliatone/go-formlayout/pkg/layout"
	"github.com/goliatone/go-formlayout/pkg/preset"
)

// Surface is the rendering side of the controller: it reports the current
// controls and container geometry and receives the computed snapshot. The
// engine holds no other reference to the rendering environment, so any host
// that can answer these three calls can be laid out.
type Surface interface {
	// Controls returns the form controls in document order.
	Controls() []field.Control

	// ContainerWidth reports the measured container width in pixels. The
	// boolean is false when the surface has no geometry, in which case the
	// engine keeps the previous column count.
	ContainerWidth() (float64, bool)

	// Apply receives the freshly computed snapshot. Surfaces that mirror
	// the snapshot onto observed state may trigger a notification from
	// inside Apply; the engine's guard drops it.
	Apply(snapshot layout.Snapshot) error
}

// ConfigSource supplies external configuration. It is consulted once per
// full pass, so changes take effect on the next structural recompute without
// any cache invalidation protocol.
type ConfigSource interface {
	// LayoutOverrides returns the layout configuration overrides to merge
	// over the built-in defaults.
	LayoutOverrides() layout.Overrides

	// PresetOverrides returns presets merged over the built-in registry.
	// Same-key entries replace built-ins wholesale.
	PresetOverrides() []preset.Preset
}

// StaticConfig is a ConfigSource returning fixed values, useful for tests
// and callers without an external configuration document.
type StaticConfig struct {
	Overrides layout.Overrides
	Presets   []preset.Preset
}

// LayoutOverrides implements ConfigSource.
func (c StaticConfig) LayoutOverrides() layout.Overrides { return c.Overrides }

// PresetOverrides implements ConfigSource.
func (c StaticConfig) PresetOverrides() []preset.Preset { return c.Presets }
