package field

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractMapsAttributes(t *testing.T) {
	cases := []struct {
		name string
		ctl  Control
		want Descriptor
	}{
		{
			name: "plain input",
			ctl:  Control{Kind: KindInput, Name: "email"},
			want: Descriptor{Name: "email", Order: 3},
		},
		{
			name: "explicit span",
			ctl: Control{Kind: KindInput, Name: "city", Attrs: map[string]string{
				"span": "2",
			}},
			want: Descriptor{Name: "city", Span: SpanOf(2), Order: 3},
		},
		{
			name: "data-span alias",
			ctl: Control{Kind: KindInput, Name: "city", Attrs: map[string]string{
				"data-span": "full",
			}},
			want: Descriptor{Name: "city", Span: FullSpan(), Order: 3},
		},
		{
			name: "invalid span ignored",
			ctl: Control{Kind: KindInput, Name: "city", Attrs: map[string]string{
				"span": "-2",
			}},
			want: Descriptor{Name: "city", Order: 3},
		},
		{
			name: "preset group format",
			ctl: Control{Kind: KindInput, Name: "zip_code", Attrs: map[string]string{
				"preset": " zip ",
				"group":  "address",
				"format": "postal",
			}},
			want: Descriptor{Name: "zip_code", PresetKey: "zip", Group: "address", Format: "postal", Order: 3},
		},
		{
			name: "maxlength wins over validation",
			ctl: Control{Kind: KindInput, Name: "bio", Attrs: map[string]string{
				"maxlength":  "40",
				"validation": "required|max:90",
			}},
			want: Descriptor{Name: "bio", MaxChars: 40, Order: 3},
		},
		{
			name: "max token from validation",
			ctl: Control{Kind: KindInput, Name: "bio", Attrs: map[string]string{
				"validation": "required|MAX:60|min:5",
			}},
			want: Descriptor{Name: "bio", MaxChars: 60, Order: 3},
		},
		{
			name: "validate fallback attribute",
			ctl: Control{Kind: KindInput, Name: "bio", Attrs: map[string]string{
				"validate": "max:12",
			}},
			want: Descriptor{Name: "bio", MaxChars: 12, Order: 3},
		},
		{
			name: "bare stacked attribute",
			ctl: Control{Kind: KindInput, Name: "terms", Attrs: map[string]string{
				"stacked": "",
			}},
			want: Descriptor{Name: "terms", Stacked: true, Order: 3},
		},
		{
			name: "stacked html idiom",
			ctl: Control{Kind: KindInput, Name: "terms", Attrs: map[string]string{
				"stacked": "stacked",
			}},
			want: Descriptor{Name: "terms", Stacked: true, Order: 3},
		},
		{
			name: "stacked false",
			ctl: Control{Kind: KindInput, Name: "terms", Attrs: map[string]string{
				"stacked": "false",
			}},
			want: Descriptor{Name: "terms", Order: 3},
		},
		{
			name: "textarea is multiline",
			ctl:  Control{Kind: KindTextarea, Name: "notes"},
			want: Descriptor{Name: "notes", Multiline: true, Order: 3},
		},
		{
			name: "option group is full only",
			ctl:  Control{Kind: KindOptionGroup, Name: "plan"},
			want: Descriptor{Name: "plan", FullOnly: true, Order: 3},
		},
		{
			name: "submit action is full only",
			ctl:  Control{Kind: KindSubmit, Name: "save"},
			want: Descriptor{Name: "save", FullOnly: true, Order: 3},
		},
		{
			name: "name recovered from attributes",
			ctl: Control{Kind: KindInput, Attrs: map[string]string{
				"name": "phone",
			}},
			want: Descriptor{Name: "phone", Order: 3},
		},
		{
			name: "case-insensitive attribute keys",
			ctl: Control{Kind: KindInput, Name: "city", Attrs: map[string]string{
				"Span":  "2",
				"GROUP": "address",
			}},
			want: Descriptor{Name: "city", Span: SpanOf(2), Group: "address", Order: 3},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Extract(tc.ctl, 3)
			if !ok {
				t.Fatalf("Extract(%+v) excluded the control", tc.ctl)
			}
			if diff := cmp.Diff(tc.want, got, cmp.AllowUnexported(Span{})); diff != "" {
				t.Fatalf("descriptor mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractExcludesUnrecognisedUnnamed(t *testing.T) {
	if _, ok := Extract(Control{Kind: Kind("legend")}, 0); ok {
		t.Fatalf("expected unnamed unrecognised control to be excluded")
	}
	if _, ok := Extract(Control{Kind: Kind("legend"), Name: "title"}, 0); !ok {
		t.Fatalf("expected named control to survive an unrecognised kind")
	}
	if _, ok := Extract(Control{Kind: KindInput}, 0); !ok {
		t.Fatalf("expected recognised kind to survive a missing name")
	}
}

func TestExtractAllKeepsDocumentOrder(t *testing.T) {
	controls := []Control{
		{Kind: KindInput, Name: "first"},
		{Kind: Kind("divider")},
		{Kind: KindInput, Name: "second"},
	}

	descriptors := ExtractAll(controls)
	if len(descriptors) != 2 {
		t.Fatalf("expected 2 descriptors, got %d", len(descriptors))
	}
	if descriptors[0].Order != 0 || descriptors[1].Order != 2 {
		t.Fatalf("expected orders [0 2], got [%d %d]", descriptors[0].Order, descriptors[1].Order)
	}
	if descriptors[0].Order >= descriptors[1].Order {
		t.Fatalf("document order must be strictly increasing")
	}
}
