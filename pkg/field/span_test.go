package field

import "testing"

func TestParseSpan(t *testing.T) {
	cases := []struct {
		raw  string
		want Span
		ok   bool
	}{
		{"3", SpanOf(3), true},
		{" 2 ", SpanOf(2), true},
		{"full", FullSpan(), true},
		{"FULL", FullSpan(), true},
		{"", Span{}, false},
		{"0", Span{}, false},
		{"-1", Span{}, false},
		{"wide", Span{}, false},
		{"2.5", Span{}, false},
	}

	for _, tc := range cases {
		got, ok := ParseSpan(tc.raw)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseSpan(%q) = %v, %t; want %v, %t", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSpanValueCoercion(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  Span
		ok    bool
	}{
		{"int", 3, SpanOf(3), true},
		{"int64", int64(2), SpanOf(2), true},
		{"whole float", float64(4), SpanOf(4), true},
		{"fractional float", 2.5, Span{}, false},
		{"string keyword", "full", FullSpan(), true},
		{"string number", "2", SpanOf(2), true},
		{"zero", 0, Span{}, false},
		{"negative", -3, Span{}, false},
		{"nil", nil, Span{}, false},
		{"bool", true, Span{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := SpanValue(tc.value)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("SpanValue(%v) = %v, %t; want %v, %t", tc.value, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestSpanClamp(t *testing.T) {
	if got := FullSpan().Clamp(2); !got.IsFull() {
		t.Fatalf("full span must survive clamping, got %v", got)
	}
	if got := SpanOf(4).Clamp(2); got.Columns() != 2 {
		t.Fatalf("expected span clamped to 2, got %v", got)
	}
	if got := SpanOf(1).Clamp(3); got.Columns() != 1 {
		t.Fatalf("expected span untouched, got %v", got)
	}
	if got := (Span{}).Clamp(3); got.Columns() != 1 {
		t.Fatalf("expected zero span to clamp to a single column, got %v", got)
	}
	if got := SpanOf(5).Clamp(0); got.Columns() != 1 {
		t.Fatalf("expected degenerate column count to clamp to 1, got %v", got)
	}
}

func TestSpanText(t *testing.T) {
	for _, tc := range []struct {
		span Span
		want string
	}{
		{SpanOf(2), "2"},
		{FullSpan(), "full"},
		{Span{}, ""},
	} {
		if got := tc.span.String(); got != tc.want {
			t.Fatalf("String() = %q, want %q", got, tc.want)
		}
	}

	var span Span
	if err := span.UnmarshalText([]byte("full")); err != nil || !span.IsFull() {
		t.Fatalf("UnmarshalText(full) = %v, %v", span, err)
	}
	if err := span.UnmarshalText([]byte("")); err != nil || !span.IsZero() {
		t.Fatalf("UnmarshalText(empty) = %v, %v", span, err)
	}
	if err := span.UnmarshalText([]byte("nope")); err == nil {
		t.Fatalf("expected error for invalid span text")
	}
}
