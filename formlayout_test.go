package formlayout

import (
	"testing"

	"github.com/goliatone/go-formlayout/pkg/formdef"
)

func TestComputeOneShot(t *testing.T) {
	doc, err := formdef.Parse([]byte(`
title: Contact
controls:
  - {kind: input, name: email}
  - {kind: input, name: zipCode}
  - {kind: textarea, name: message}
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	snap, err := Compute(doc, 700)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if snap.Columns != 2 {
		t.Fatalf("columns = %d, want 2 at 700px", snap.Columns)
	}
	if len(snap.Fields) != 3 {
		t.Fatalf("fields = %d, want 3", len(snap.Fields))
	}
	if snap.Fields[0].PresetKey != "email" {
		t.Fatalf("email preset = %q", snap.Fields[0].PresetKey)
	}
	if !snap.Fields[2].LiveSpan.IsFull() {
		t.Fatalf("textarea live span = %v, want full", snap.Fields[2].LiveSpan)
	}
}

func TestComputeWithoutWidthCollapses(t *testing.T) {
	doc, _ := formdef.Parse([]byte("controls:\n  - {kind: input, name: email}\n"))
	snap, err := Compute(doc, 0)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if snap.Columns != 1 {
		t.Fatalf("columns = %d, want 1 without geometry", snap.Columns)
	}
}
