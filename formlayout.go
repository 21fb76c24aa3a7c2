// Package formlayout computes adaptive grid placement for form fields: a
// preset registry resolves named layout presets by pattern, a span resolver
// weighs the competing width signals per field, and a controller recomputes
// the grid against live container geometry without feedback loops. The root
// package re-exports the common types and offers one-call helpers; the full
// API lives under pkg/.
package formlayout

import (
	"github.com/goliatone/go-formlayout/pkg/engine"
	"github.com/goliatone/go-formlayout/pkg/field"
	"github.com/goliatone/go-formlayout/pkg/formdef"
	"github.com/goliatone/go-formlayout/pkg/layout"
	"github.com/goliatone/go-formlayout/pkg/preset"
)

// Snapshot is the engine's output: live columns plus per-field placement.
type Snapshot = layout.Snapshot

// FieldLayout is one field's computed placement.
type FieldLayout = layout.FieldLayout

// Config is the validated layout configuration of one pass.
type Config = layout.Config

// Overrides carries externally supplied configuration before validation.
type Overrides = layout.Overrides

// Control is the raw view of one form control.
type Control = field.Control

// Descriptor is the normalized snapshot of a control.
type Descriptor = field.Descriptor

// Span is a field's grid width: columns or full row.
type Span = field.Span

// Preset bundles layout defaults for pattern-matched fields.
type Preset = preset.Preset

// Document is a declarative form definition.
type Document = formdef.Document

// NewEngine constructs a layout engine over a surface. It mirrors
// engine.New and exists so simple callers need only the root import.
func NewEngine(surface engine.Surface, options ...engine.Option) (*engine.Engine, error) {
	return engine.New(surface, options...)
}

// Compute lays out a declarative document at the given container width in
// one shot: build a static surface, run a full pass, return the snapshot.
// A non-positive width computes the degrade-safe single-column layout.
func Compute(doc formdef.Document, widthPx float64, options ...engine.Option) (layout.Snapshot, error) {
	surface := formdef.NewSurface(doc)
	if widthPx > 0 {
		surface.SetWidth(widthPx)
	}

	eng, err := engine.New(surface, options...)
	if err != nil {
		return layout.Snapshot{}, err
	}
	eng.Recompute()
	return eng.Snapshot(), nil
}

// DefaultRegistry returns a registry seeded with the built-in presets.
func DefaultRegistry() *preset.Registry {
	return preset.DefaultRegistry()
}
