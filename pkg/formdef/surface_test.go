package formdef

import (
	"testing"

	"github.com/goliatone/go-formlayout/pkg/engine"
	"github.com/goliatone/go-formlayout/pkg/layout"
)

func TestSurfaceDrivesEngine(t *testing.T) {
	doc, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	surface := NewSurface(doc)

	var delivered []layout.Snapshot
	surface.OnApply(func(s layout.Snapshot) { delivered = append(delivered, s) })

	eng, err := engine.New(surface)
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}

	// No geometry: the first pass degrades to a single column.
	eng.Recompute()
	snap, ok := surface.Applied()
	if !ok {
		t.Fatal("expected a write-back")
	}
	if snap.Columns != 1 {
		t.Fatalf("columns = %d, want 1 without geometry", snap.Columns)
	}

	surface.SetWidth(1200)
	eng.Notify(engine.Geometry())
	snap, _ = surface.Applied()
	if snap.Columns != 4 {
		t.Fatalf("columns = %d, want 4 at 1200px", snap.Columns)
	}

	// Structural change: drop the trailing action control.
	doc.Controls = doc.Controls[:3]
	surface.Replace(doc)
	eng.Notify(engine.Structural())
	snap, _ = surface.Applied()
	if len(snap.Fields) != 3 {
		t.Fatalf("fields = %d, want 3 after replace", len(snap.Fields))
	}

	if len(delivered) != 3 {
		t.Fatalf("listener saw %d snapshots, want 3", len(delivered))
	}
}

func TestSurfaceListenerNotificationIsDropped(t *testing.T) {
	doc, _ := Parse([]byte(sampleYAML))
	surface := NewSurface(doc)
	eng, err := engine.New(surface)
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}

	surface.OnApply(func(layout.Snapshot) {
		if eng.Notify(engine.Structural()) {
			t.Fatal("listener notification must be dropped mid-pass")
		}
	})

	eng.Recompute()
	if eng.Dropped() != 1 {
		t.Fatalf("dropped = %d, want 1", eng.Dropped())
	}
}
