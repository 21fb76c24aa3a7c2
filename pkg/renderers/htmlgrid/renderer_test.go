package htmlgrid

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-formlayout/pkg/field"
	"github.com/goliatone/go-formlayout/pkg/layout"
	"github.com/goliatone/go-formlayout/pkg/render"
)

func sampleForm() render.Form {
	return render.Form{
		Title: "Contact",
		Snapshot: layout.Snapshot{
			Columns:  3,
			Revision: 7,
			Fields: []layout.FieldLayout{
				{Name: "email", PresetKey: "email", Format: "email", BaseSpan: field.SpanOf(2), LiveSpan: field.SpanOf(2)},
				{Name: "zip", Group: "address", BaseSpan: field.SpanOf(1), LiveSpan: field.SpanOf(1)},
				{Name: "bio", BaseSpan: field.FullSpan(), LiveSpan: field.FullSpan(), GroupStart: true, GapBefore: 24},
			},
		},
	}
}

func TestRenderGridPlacement(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := renderer.Render(context.Background(), sampleForm(), render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		`data-columns="3"`,
		`data-revision="7"`,
		"repeat(3, minmax(0, 1fr))",
		"grid-column: span 2",
		"grid-column: span 1",
		"grid-column: 1 / -1",
		"margin-top: 24px",
		`data-preset="email"`,
		`data-group="address"`,
		`data-format="email"`,
		"formlayout__cell--group-start",
		"<h2 class=\"formlayout__title\">Contact</h2>",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q:\n%s", want, html)
		}
	}
}

func TestRenderSanitizesLabels(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	form := sampleForm()
	out, err := renderer.Render(context.Background(), form, render.Options{
		Labels: map[string]string{
			"email": `<script>alert(1)</script><strong>Email</strong>`,
		},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)

	if strings.Contains(html, "<script>") {
		t.Fatal("script element survived sanitization")
	}
	if !strings.Contains(html, "<strong>Email</strong>") {
		t.Fatalf("inline markup should survive:\n%s", html)
	}
}

func TestRenderMetaMode(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := renderer.Render(context.Background(), sampleForm(), render.Options{ShowMeta: true})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), "base full, live full") {
		t.Fatalf("meta mode output missing span details:\n%s", out)
	}
}

func TestRenderZeroColumnSnapshot(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := renderer.Render(context.Background(), render.Form{}, render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), `data-columns="1"`) {
		t.Fatalf("empty snapshot should render a single column:\n%s", out)
	}
}

func TestContentTypeAndName(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if renderer.Name() != "html" {
		t.Fatalf("Name() = %q", renderer.Name())
	}
	if !strings.HasPrefix(renderer.ContentType(), "text/html") {
		t.Fatalf("ContentType() = %q", renderer.ContentType())
	}
}
