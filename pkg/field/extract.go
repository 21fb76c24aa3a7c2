package field

import (
	"regexp"
	"strconv"
	"strings"
)

// Attribute names the extractor understands.
const (
	AttrName       = "name"
	AttrSpan       = "span"
	AttrDataSpan   = "data-span"
	AttrPreset     = "preset"
	AttrGroup      = "group"
	AttrStacked    = "stacked"
	AttrMultiline  = "multiline"
	AttrFormat     = "format"
	AttrMaxLength  = "maxlength"
	AttrValidation = "validation"
	AttrValidate   = "validate"
)

// maxRulePattern locates the first max:<N> token in a validation-rule
// string, e.g. "required|max:60".
var maxRulePattern = regexp.MustCompile(`(?i)max:(\d+)`)

var recognizedKinds = map[Kind]struct{}{
	KindInput:       {},
	KindTextarea:    {},
	KindSelect:      {},
	KindCheckbox:    {},
	KindRadioGroup:  {},
	KindOptionGroup: {},
	KindSubmit:      {},
	KindReset:       {},
}

// Extract maps a raw control to its descriptor, keyed to the supplied
// document order. The boolean is false when the control takes no part in
// layout: an unrecognised kind that also carries no name.
func Extract(ctl Control, order int) (Descriptor, bool) {
	name := strings.TrimSpace(ctl.Name)
	if name == "" {
		if raw, ok := lookupAttr(ctl.Attrs, AttrName); ok {
			name = strings.TrimSpace(raw)
		}
	}
	if _, known := recognizedKinds[ctl.Kind]; !known && name == "" {
		return Descriptor{}, false
	}

	desc := Descriptor{
		Name:      name,
		PresetKey: trimmedAttr(ctl.Attrs, AttrPreset),
		Group:     trimmedAttr(ctl.Attrs, AttrGroup),
		Format:    trimmedAttr(ctl.Attrs, AttrFormat),
		Stacked:   boolAttr(ctl.Attrs, AttrStacked),
		FullOnly:  fullOnlyKind(ctl.Kind),
		Multiline: ctl.Kind == KindTextarea || boolAttr(ctl.Attrs, AttrMultiline),
		MaxChars:  maxChars(ctl.Attrs),
		Order:     order,
	}

	if raw, ok := lookupAttr(ctl.Attrs, AttrSpan, AttrDataSpan); ok {
		if span, valid := ParseSpan(raw); valid {
			desc.Span = span
		}
	}

	return desc, true
}

// ExtractAll maps controls to descriptors in document order, skipping
// controls that take no part in layout. The descriptor order is the index
// of the control in the input slice, so gaps mark excluded controls.
func ExtractAll(controls []Control) []Descriptor {
	out := make([]Descriptor, 0, len(controls))
	for idx, ctl := range controls {
		desc, ok := Extract(ctl, idx)
		if !ok {
			continue
		}
		out = append(out, desc)
	}
	return out
}

// fullOnlyKind reports whether the kind always breaks the grid: option
// groups and submit/reset actions occupy a full row regardless of other
// signals.
func fullOnlyKind(kind Kind) bool {
	switch kind {
	case KindOptionGroup, KindSubmit, KindReset:
		return true
	default:
		return false
	}
}

// maxChars derives the expected character width of a control: an explicit
// length constraint wins, otherwise the first max:<N> validation token.
// Zero means no usable source was found.
func maxChars(attrs map[string]string) int {
	if raw, ok := lookupAttr(attrs, AttrMaxLength); ok {
		if value, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && value > 0 {
			return value
		}
	}

	rules, ok := lookupAttr(attrs, AttrValidation)
	if !ok || strings.TrimSpace(rules) == "" {
		rules, ok = lookupAttr(attrs, AttrValidate)
	}
	if !ok {
		return 0
	}

	match := maxRulePattern.FindStringSubmatch(rules)
	if len(match) != 2 {
		return 0
	}
	value, err := strconv.Atoi(match[1])
	if err != nil || value <= 0 {
		return 0
	}
	return value
}

func trimmedAttr(attrs map[string]string, key string) string {
	raw, ok := lookupAttr(attrs, key)
	if !ok {
		return ""
	}
	return strings.TrimSpace(raw)
}

// boolAttr treats a bare attribute (empty value) or the usual truthy
// spellings as true, including the HTML idiom of repeating the attribute
// name as its value.
func boolAttr(attrs map[string]string, key string) bool {
	raw, ok := lookupAttr(attrs, key)
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "1", "true", "yes", "on", strings.ToLower(key):
		return true
	default:
		return false
	}
}

// lookupAttr returns the first attribute present under any of the supplied
// keys. Exact matches are preferred over case-insensitive ones, and ties
// between case variants break on the lexicographically smallest key so the
// lookup is deterministic.
func lookupAttr(attrs map[string]string, keys ...string) (string, bool) {
	if len(attrs) == 0 {
		return "", false
	}
	for _, key := range keys {
		if value, ok := attrs[key]; ok {
			return value, true
		}
	}
	for _, key := range keys {
		best := ""
		found := false
		for name := range attrs {
			if !strings.EqualFold(name, key) {
				continue
			}
			if !found || name < best {
				best = name
				found = true
			}
		}
		if found {
			return attrs[best], true
		}
	}
	return "", false
}
