package field

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SpanFullKeyword is the textual form of a full-row span.
const SpanFullKeyword = "full"

// Span is the grid width a field asks for: a positive column count or the
// full-row keyword. The zero value means no span was requested.
type Span struct {
	cols int
	full bool
}

// SpanOf returns a span covering cols columns. Non-positive counts yield the
// zero span, so invalid requests read as "not requested".
func SpanOf(cols int) Span {
	if cols < 1 {
		return Span{}
	}
	return Span{cols: cols}
}

// FullSpan returns the full-row span.
func FullSpan() Span {
	return Span{full: true}
}

// IsZero reports whether no span was requested.
func (s Span) IsZero() bool {
	return !s.full && s.cols == 0
}

// IsFull reports whether the span covers the whole row.
func (s Span) IsFull() bool {
	return s.full
}

// Columns returns the requested column count. Full and zero spans report 0.
func (s Span) Columns() int {
	if s.full {
		return 0
	}
	return s.cols
}

// Clamp bounds the span to the live column count: full spans pass through,
// column spans are forced into [1, columns]. Zero spans clamp to a single
// column so the result is always renderable.
func (s Span) Clamp(columns int) Span {
	if s.full {
		return s
	}
	if columns < 1 {
		columns = 1
	}
	cols := s.cols
	if cols < 1 {
		cols = 1
	}
	if cols > columns {
		cols = columns
	}
	return Span{cols: cols}
}

// String renders the span as an attribute value: "full", a positive integer,
// or the empty string for the zero span.
func (s Span) String() string {
	switch {
	case s.full:
		return SpanFullKeyword
	case s.cols > 0:
		return strconv.Itoa(s.cols)
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Span) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty input yields the
// zero span.
func (s *Span) UnmarshalText(text []byte) error {
	trimmed := strings.TrimSpace(string(text))
	if trimmed == "" {
		*s = Span{}
		return nil
	}
	parsed, ok := ParseSpan(trimmed)
	if !ok {
		return fmt.Errorf("field: invalid span %q", trimmed)
	}
	*s = parsed
	return nil
}

// ParseSpan interprets a raw attribute value as a span: the full keyword
// (case-insensitive) or a positive integer. Anything else reports false.
func ParseSpan(raw string) (Span, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return Span{}, false
	}
	if trimmed == SpanFullKeyword {
		return FullSpan(), true
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil || value < 1 {
		return Span{}, false
	}
	return Span{cols: value}, true
}

// SpanValue coerces a loosely typed configuration value (JSON/YAML scalar)
// into a span. Strings go through ParseSpan; numeric types must be positive
// integers.
func SpanValue(value any) (Span, bool) {
	switch v := value.(type) {
	case Span:
		if v.IsZero() {
			return Span{}, false
		}
		return v, true
	case string:
		return ParseSpan(v)
	case int:
		return spanFromInt(v)
	case int8:
		return spanFromInt(int(v))
	case int16:
		return spanFromInt(int(v))
	case int32:
		return spanFromInt(int(v))
	case int64:
		return spanFromInt(int(v))
	case uint:
		return spanFromInt(int(v))
	case uint8:
		return spanFromInt(int(v))
	case uint16:
		return spanFromInt(int(v))
	case uint32:
		return spanFromInt(int(v))
	case uint64:
		return spanFromInt(int(v))
	case float64:
		if v == math.Trunc(v) {
			return spanFromInt(int(v))
		}
	case float32:
		if float64(v) == math.Trunc(float64(v)) {
			return spanFromInt(int(v))
		}
	}
	return Span{}, false
}

func spanFromInt(value int) (Span, bool) {
	if value < 1 {
		return Span{}, false
	}
	return Span{cols: value}, true
}
