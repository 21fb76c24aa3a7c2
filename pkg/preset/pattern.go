package preset

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-formlayout/pkg/field"
)

// Predicate decides whether a preset applies to a field. It receives the raw
// field name and the full descriptor. A panicking predicate counts as a
// non-match; it never aborts resolution.
type Predicate func(name string, desc field.Descriptor) bool

type patternKind uint8

const (
	patternLiteral patternKind = iota + 1
	patternRegex
	patternPredicate
)

// Pattern is a closed matcher variant: a normalized-substring literal, a
// regular expression over the raw field name, or a predicate. The zero
// pattern never matches.
type Pattern struct {
	kind      patternKind
	literal   string
	re        *regexp.Regexp
	predicate Predicate
}

// Literal builds a pattern that matches when its normalized text is a
// substring of the normalized field name.
func Literal(text string) Pattern {
	return Pattern{kind: patternLiteral, literal: Normalize(text)}
}

// Regex builds a pattern that tests the raw, unnormalized field name.
func Regex(re *regexp.Regexp) Pattern {
	return Pattern{kind: patternRegex, re: re}
}

// RegexString compiles expr into a regex pattern.
func RegexString(expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("preset: compile pattern %q: %w", expr, err)
	}
	return Regex(re), nil
}

// Match builds a pattern from a predicate function.
func Match(fn Predicate) Pattern {
	return Pattern{kind: patternPredicate, predicate: fn}
}

// String describes the pattern for logs and error messages.
func (p Pattern) String() string {
	switch p.kind {
	case patternLiteral:
		return fmt.Sprintf("literal(%q)", p.literal)
	case patternRegex:
		if p.re == nil {
			return "regex(<nil>)"
		}
		return fmt.Sprintf("regex(%q)", p.re.String())
	case patternPredicate:
		return "predicate"
	default:
		return "none"
	}
}

// matches evaluates the pattern against a field. The normalized name is
// passed in so a resolve pass normalizes each field name once.
func (p Pattern) matches(raw, normalized string, desc field.Descriptor) (matched bool) {
	switch p.kind {
	case patternLiteral:
		return p.literal != "" && strings.Contains(normalized, p.literal)
	case patternRegex:
		return p.re != nil && p.re.MatchString(raw)
	case patternPredicate:
		if p.predicate == nil {
			return false
		}
		defer func() {
			if recover() != nil {
				matched = false
			}
		}()
		return p.predicate(raw, desc)
	default:
		return false
	}
}
