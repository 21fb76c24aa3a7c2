package engine

// EventKind classifies a change notification.
type EventKind uint8

const (
	// EventStructural reports that the field set or field attributes
	// changed. Any batch containing one forces a full pass.
	EventStructural EventKind = iota + 1

	// EventGeometry reports that only the container size changed. A batch
	// of geometry events runs a cheap pass reusing the last base spans.
	EventGeometry
)

// String names the event kind for logs.
func (k EventKind) String() string {
	switch k {
	case EventStructural:
		return "structural"
	case EventGeometry:
		return "geometry"
	default:
		return "unknown"
	}
}

// Event is one change notification delivered to the controller.
type Event struct {
	Kind EventKind
}

// Structural returns a structural change event.
func Structural() Event { return Event{Kind: EventStructural} }

// Geometry returns a geometry-only change event.
func Geometry() Event { return Event{Kind: EventGeometry} }
