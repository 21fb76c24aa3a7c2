// Package htmlgrid renders a layout snapshot as a CSS-grid HTML preview:
// one cell per field with its span, group, and gap expressed as inline grid
// placement. The output carries placement metadata only; it contains no
// inputs and handles no values.
package htmlgrid

import (
	"context"
	"fmt"
	"io/fs"
	"strconv"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formlayout/pkg/field"
	"github.com/goliatone/go-formlayout/pkg/layout"
	"github.com/goliatone/go-formlayout/pkg/render"
)

const (
	rendererName = "html"
	templateName = "form.html.tpl"
)

// Option customises the renderer before construction.
type Option func(*Renderer)

// WithTemplates overrides the embedded template filesystem. The tree must
// contain form.html.tpl at its root.
func WithTemplates(fsys fs.FS) Option {
	return func(r *Renderer) {
		r.templates = fsys
	}
}

// Renderer is the CSS-grid HTML preview renderer.
type Renderer struct {
	templates fs.FS

	mu       sync.RWMutex
	compiled *pongo2.Template
	set      *pongo2.TemplateSet
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer over the embedded templates unless an option
// overrides them.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{templates: Templates()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	r.set = pongo2.NewSet("htmlgrid", pongo2.NewFSLoader(r.templates))
	return r, nil
}

// Name implements render.Renderer.
func (r *Renderer) Name() string { return rendererName }

// ContentType implements render.Renderer.
func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Render implements render.Renderer.
func (r *Renderer) Render(ctx context.Context, form render.Form, options render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tmpl, err := r.template()
	if err != nil {
		return nil, err
	}

	out, err := tmpl.ExecuteBytes(pongo2.Context{
		"title":    sanitizeLabel(form.Title),
		"columns":  columnsOf(form.Snapshot),
		"revision": form.Snapshot.Revision,
		"cells":    cellViews(form.Snapshot, options),
		"meta":     options.ShowMeta,
	})
	if err != nil {
		return nil, fmt.Errorf("htmlgrid: execute template: %w", err)
	}
	return out, nil
}

func (r *Renderer) template() (*pongo2.Template, error) {
	r.mu.RLock()
	cached := r.compiled
	r.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.compiled != nil {
		return r.compiled, nil
	}
	tmpl, err := r.set.FromFile(templateName)
	if err != nil {
		return nil, fmt.Errorf("htmlgrid: load template %s: %w", templateName, err)
	}
	r.compiled = tmpl
	return tmpl, nil
}

func columnsOf(snap layout.Snapshot) int {
	if snap.Columns < 1 {
		return 1
	}
	return snap.Columns
}

func cellViews(snap layout.Snapshot, options render.Options) []pongo2.Context {
	cells := make([]pongo2.Context, 0, len(snap.Fields))
	for _, fl := range snap.Fields {
		label := fl.Name
		if custom, ok := options.Labels[fl.Name]; ok {
			label = custom
		}
		cells = append(cells, pongo2.Context{
			"name":       fl.Name,
			"label":      sanitizeLabel(label),
			"preset":     fl.PresetKey,
			"group":      fl.Group,
			"format":     fl.Format,
			"spanCSS":    spanCSS(fl.LiveSpan),
			"groupStart": fl.GroupStart,
			"gapBefore":  strconv.FormatFloat(fl.GapBefore, 'f', -1, 64),
			"baseSpan":   spanText(fl.BaseSpan),
			"liveSpan":   spanText(fl.LiveSpan),
		})
	}
	return cells
}

// spanCSS renders a span as a grid-column value: full rows stretch across
// the explicit grid with "1 / -1".
func spanCSS(s field.Span) string {
	if s.IsFull() {
		return "1 / -1"
	}
	cols := s.Columns()
	if cols < 1 {
		cols = 1
	}
	return "span " + strconv.Itoa(cols)
}

func spanText(s field.Span) string {
	if text := s.String(); text != "" {
		return text
	}
	return "1"
}
