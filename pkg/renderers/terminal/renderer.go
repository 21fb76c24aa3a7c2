// Package terminal renders layout snapshots in the terminal: a one-shot
// lipgloss grid for CLI output and a bubbletea model for a live preview
// whose resize events feed the engine as geometry notifications.
package terminal

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-formlayout/pkg/field"
	"github.com/goliatone/go-formlayout/pkg/layout"
	"github.com/goliatone/go-formlayout/pkg/render"
)

const (
	rendererName = "terminal"

	// defaultWidth is the drawing width used when no terminal geometry is
	// known.
	defaultWidth = 80
)

// Option customises the renderer.
type Option func(*Renderer)

// WithWidth fixes the drawing width in terminal cells.
func WithWidth(cells int) Option {
	return func(r *Renderer) {
		if cells > 0 {
			r.width = cells
		}
	}
}

// Renderer draws a snapshot as bordered boxes laid out on the computed
// grid.
type Renderer struct {
	width int
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a terminal renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{width: defaultWidth}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Name implements render.Renderer.
func (r *Renderer) Name() string { return rendererName }

// ContentType implements render.Renderer.
func (r *Renderer) ContentType() string { return "text/plain; charset=utf-8" }

// Render implements render.Renderer.
func (r *Renderer) Render(ctx context.Context, form render.Form, options render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []byte(drawGrid(form, options, r.width)), nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	cellStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	metaStyle = lipgloss.NewStyle().Faint(true)
)

// drawGrid lays the fields out row by row: a full span takes the whole
// drawing width, a column span takes its share of it, and a span that no
// longer fits wraps to the next row.
func drawGrid(form render.Form, options render.Options, width int) string {
	if width < 8 {
		width = 8
	}
	columns := form.Snapshot.Columns
	if columns < 1 {
		columns = 1
	}
	colWidth := width / columns

	var b strings.Builder
	if form.Title != "" {
		b.WriteString(titleStyle.Render(form.Title))
		b.WriteString("\n")
	}

	var row []string
	remaining := columns
	flush := func() {
		if len(row) == 0 {
			return
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		b.WriteString("\n")
		row = row[:0]
		remaining = columns
	}

	for _, fl := range form.Snapshot.Fields {
		span := spanColumns(fl.LiveSpan, columns)
		if span > remaining {
			flush()
		}
		if fl.GroupStart {
			flush()
			b.WriteString("\n")
		}

		row = append(row, renderCell(fl, options, span*colWidth))
		remaining -= span
		if remaining <= 0 {
			flush()
		}
	}
	flush()

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func renderCell(fl layout.FieldLayout, options render.Options, width int) string {
	label := fl.Name
	if custom, ok := options.Labels[fl.Name]; ok && custom != "" {
		label = custom
	}

	content := label
	if options.ShowMeta {
		details := []string{"span " + spanText(fl.LiveSpan)}
		if fl.PresetKey != "" {
			details = append(details, "preset "+fl.PresetKey)
		}
		if fl.Group != "" {
			details = append(details, "group "+fl.Group)
		}
		content += "\n" + metaStyle.Render(strings.Join(details, " · "))
	}

	// Border and padding consume four cells.
	inner := width - 4
	if inner < 1 {
		inner = 1
	}
	return cellStyle.Width(inner).Render(content)
}

func spanColumns(s field.Span, columns int) int {
	if s.IsFull() {
		return columns
	}
	cols := s.Columns()
	if cols < 1 {
		return 1
	}
	if cols > columns {
		return columns
	}
	return cols
}

func spanText(s field.Span) string {
	if text := s.String(); text != "" {
		return text
	}
	return "1"
}
