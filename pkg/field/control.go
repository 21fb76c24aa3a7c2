package field

// Kind identifies the archetype of a form control.
type Kind string

// Control kinds the extractor recognises.
const (
	KindInput       Kind = "input"
	KindTextarea    Kind = "textarea"
	KindSelect      Kind = "select"
	KindCheckbox    Kind = "checkbox"
	KindRadioGroup  Kind = "radio-group"
	KindOptionGroup Kind = "option-group"
	KindSubmit      Kind = "submit"
	KindReset       Kind = "reset"
)

// Control is the raw view of a single form control as the surface reports
// it: a kind, a name, and its attribute map. Attribute keys are matched
// case-insensitively during extraction.
type Control struct {
	Kind  Kind
	Name  string
	Attrs map[string]string
}

// Descriptor is the normalized, read-only snapshot of a control that a
// layout pass works from. A zero field means the control did not supply
// that signal.
type Descriptor struct {
	Name      string
	Span      Span
	PresetKey string
	MaxChars  int
	Stacked   bool
	FullOnly  bool
	Multiline bool
	Group     string
	Format    string
	Order     int
}
