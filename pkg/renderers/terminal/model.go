package terminal

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-formlayout/pkg/engine"
	"github.com/goliatone/go-formlayout/pkg/formdef"
	"github.com/goliatone/go-formlayout/pkg/render"
)

// CellPixels is the assumed pixel width of one terminal cell, matching the
// conventional ch ratio. Terminal resizes are translated through it so the
// engine keeps working in pixels.
const CellPixels = 8.0

// Model is the bubbletea model for the live preview: every terminal resize
// becomes a geometry notification, so dragging the window exercises cheap
// passes while the drawn grid reflows.
type Model struct {
	eng     *engine.Engine
	surface *formdef.Surface
	title   string
	options render.Options
	width   int
}

var _ tea.Model = Model{}

// NewModel wires a preview model over an engine and the surface it lays
// out.
func NewModel(eng *engine.Engine, surface *formdef.Surface, title string, options render.Options) Model {
	return Model{
		eng:     eng,
		surface: surface,
		title:   title,
		options: options,
		width:   defaultWidth,
	}
}

// Init implements tea.Model by requesting the initial full pass.
func (m Model) Init() tea.Cmd {
	m.eng.Recompute()
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.surface.SetWidth(float64(msg.Width) * CellPixels)
			m.eng.Notify(engine.Geometry())
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.eng.Recompute()
			return m, nil
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	snap := m.eng.Snapshot()
	grid := drawGrid(render.Form{Title: m.title, Snapshot: snap}, m.options, m.width)
	help := lipgloss.NewStyle().Faint(true).Render("resize to reflow · r recompute · q quit")
	return grid + "\n" + help + "\n"
}
