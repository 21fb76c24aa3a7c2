// Package render defines the preview seam: a renderer turns a computed
// layout snapshot into bytes (HTML, terminal output), and a registry keeps
// renderers discoverable by name.
package render

import (
	"context"

	"github.com/goliatone/go-formlayout/pkg/layout"
)

// Form is a renderer's input: the form title and the snapshot the engine
// computed for it. Renderers draw placement metadata only; they never see
// field values.
type Form struct {
	Title    string
	Snapshot layout.Snapshot
}

// Options carries per-request rendering instructions.
type Options struct {
	// Labels overrides the display label per field name. Fields without an
	// entry render their name.
	Labels map[string]string

	// ShowMeta includes resolution details (preset keys, base spans) in
	// renderers that support an inspection mode.
	ShowMeta bool
}

// Renderer converts a form layout into a byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form Form, options Options) ([]byte, error)
}
