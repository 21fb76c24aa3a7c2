package formdef

import (
	"sync"

	"github.com/goliatone/go-formlayout/pkg/field"
	"github.com/goliatone/go-formlayout/pkg/layout"
)

// Surface is a static rendering surface backed by a document: controls come
// from the document, the container width is whatever the caller last set,
// and applied snapshots are retained for inspection. It satisfies the
// engine's surface contract.
type Surface struct {
	mu       sync.RWMutex
	controls []field.Control
	width    float64
	hasWidth bool
	applied  layout.Snapshot
	hasSnap  bool
	onApply  func(layout.Snapshot)
}

// NewSurface builds a surface from a document. The surface starts without
// geometry; call SetWidth to enable responsive column computation.
func NewSurface(doc Document) *Surface {
	return &Surface{controls: doc.FieldControls()}
}

// Controls implements the engine surface contract.
func (s *Surface) Controls() []field.Control {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]field.Control(nil), s.controls...)
}

// ContainerWidth implements the engine surface contract.
func (s *Surface) ContainerWidth() (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.hasWidth
}

// Apply implements the engine surface contract, retaining the snapshot and
// forwarding it to the listener when one is registered.
func (s *Surface) Apply(snapshot layout.Snapshot) error {
	s.mu.Lock()
	s.applied = snapshot
	s.hasSnap = true
	listener := s.onApply
	s.mu.Unlock()

	if listener != nil {
		listener(snapshot)
	}
	return nil
}

// SetWidth records the container width in pixels. The caller is responsible
// for delivering the matching geometry notification to the engine.
func (s *Surface) SetWidth(px float64) {
	s.mu.Lock()
	s.width = px
	s.hasWidth = true
	s.mu.Unlock()
}

// ClearWidth removes the geometry, putting the surface back into the
// degrade-safe no-measurement state.
func (s *Surface) ClearWidth() {
	s.mu.Lock()
	s.width = 0
	s.hasWidth = false
	s.mu.Unlock()
}

// Replace swaps the backing document. The caller delivers the structural
// notification.
func (s *Surface) Replace(doc Document) {
	s.mu.Lock()
	s.controls = doc.FieldControls()
	s.mu.Unlock()
}

// Applied returns the last snapshot the engine wrote back.
func (s *Surface) Applied() (layout.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.applied, s.hasSnap
}

// OnApply registers a listener invoked after every write-back. Listeners
// run on the engine's pass; a listener that notifies the engine will see
// its notification dropped by the guard.
func (s *Surface) OnApply(fn func(layout.Snapshot)) {
	s.mu.Lock()
	s.onApply = fn
	s.mu.Unlock()
}
