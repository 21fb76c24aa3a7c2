package layout

import "github.com/goliatone/go-formlayout/pkg/field"

// FieldLayout is the placement computed for one field: the resolved preset
// and group, the desired (base) span, and the live span after clamping
// against the current column count. GapBefore carries pixels only when
// GroupStart is set.
type FieldLayout struct {
	Name       string     `json:"name"`
	Order      int        `json:"order"`
	PresetKey  string     `json:"preset,omitempty"`
	Group      string     `json:"group,omitempty"`
	Format     string     `json:"format,omitempty"`
	BaseSpan   field.Span `json:"baseSpan"`
	LiveSpan   field.Span `json:"liveSpan"`
	GroupStart bool       `json:"groupStart,omitempty"`
	GapBefore  float64    `json:"gapBefore,omitempty"`
}

// Snapshot is the engine's sole output: the live column count plus the
// per-field placements in document order. Snapshots are recomputed wholesale
// and never patched incrementally; Revision increases with every published
// pass.
type Snapshot struct {
	Columns  int           `json:"columns"`
	Fields   []FieldLayout `json:"fields"`
	Revision uint64        `json:"revision"`
}

// Clone returns a deep copy, so callers can hold a snapshot across passes.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Fields = append([]FieldLayout(nil), s.Fields...)
	return out
}

// ClampSpans recomputes every live span against the given column count,
// leaving base spans untouched. It keeps the invariant that a live span
// never exceeds the column count unless it is full.
func ClampSpans(fields []FieldLayout, columns int) {
	for i := range fields {
		fields[i].LiveSpan = fields[i].BaseSpan.Clamp(columns)
	}
}
