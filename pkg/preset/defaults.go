package preset

import (
	"regexp"

	"github.com/goliatone/go-formlayout/pkg/field"
)

// Group names assigned by the built-in presets.
const (
	GroupAddress  = "address"
	GroupIdentity = "identity"
)

var phonePattern = regexp.MustCompile(`(?i)(phone|mobile|fax)`)

// builtinPresets returns the presets every default registry starts from.
// Registration order doubles as scan precedence, so the narrow matchers come
// first: "email_address" should resolve as an email field, not an address
// line.
func builtinPresets() []Preset {
	return []Preset{
		{
			Key:      "email",
			Patterns: []Pattern{Literal("email")},
			Span:     field.SpanOf(2),
			Format:   "email",
		},
		{
			Key:      "phone",
			Patterns: []Pattern{Literal("tel"), Regex(phonePattern)},
			Span:     field.SpanOf(2),
			Format:   "tel",
		},
		{
			Key:      "url",
			Patterns: []Pattern{Literal("url"), Literal("website"), Literal("homepage")},
			Span:     field.SpanOf(2),
			Format:   "url",
		},
		{
			Key:      "zip",
			Patterns: []Pattern{Literal("zip"), Literal("postalcode"), Literal("postcode")},
			Span:     field.SpanOf(1),
			Group:    GroupAddress,
		},
		{
			Key:      "city",
			Patterns: []Pattern{Literal("city"), Literal("town")},
			Span:     field.SpanOf(2),
			Group:    GroupAddress,
		},
		{
			Key:      "state",
			Patterns: []Pattern{Literal("state"), Literal("province"), Literal("region")},
			Span:     field.SpanOf(1),
			Group:    GroupAddress,
		},
		{
			Key:      "country",
			Patterns: []Pattern{Literal("country")},
			Span:     field.SpanOf(2),
			Group:    GroupAddress,
		},
		{
			Key:      "street",
			Patterns: []Pattern{Literal("street"), Literal("addr")},
			Span:     field.FullSpan(),
			Group:    GroupAddress,
		},
		{
			Key:      "firstname",
			Patterns: []Pattern{Literal("firstname"), Literal("givenname"), Literal("fname")},
			Span:     field.SpanOf(2),
			Group:    GroupIdentity,
		},
		{
			Key:      "lastname",
			Patterns: []Pattern{Literal("lastname"), Literal("surname"), Literal("familyname"), Literal("lname")},
			Span:     field.SpanOf(2),
			Group:    GroupIdentity,
		},
		{
			Key:      "date",
			Patterns: []Pattern{Literal("date"), Literal("dob")},
			Span:     field.SpanOf(1),
			Format:   "date",
		},
		{
			Key:      "notes",
			Patterns: []Pattern{Literal("note"), Literal("comment"), Literal("description")},
			Span:     field.FullSpan(),
		},
	}
}
