package geometry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidLength reports a length expression that could not be parsed.
var ErrInvalidLength = errors.New("geometry: invalid length")

// Measurer resolves the pixel size of one unit on the surface being laid
// out. Implementations typically probe the rendering environment; ok is
// false for units the measurer cannot resolve.
type Measurer interface {
	UnitPixels(unit string) (float64, bool)
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(unit string) (float64, bool)

// UnitPixels implements Measurer.
func (f MeasurerFunc) UnitPixels(unit string) (float64, bool) {
	return f(unit)
}

// fallbackUnitPixels approximates the conventional browser ratios used when
// no measurer is available or the measurer does not know the unit.
var fallbackUnitPixels = map[string]float64{
	"px":  1,
	"pt":  96.0 / 72.0,
	"rem": 16,
	"em":  16,
	"ch":  8,
}

// Length is a parsed length expression: a value and its unit. A bare number
// parses with the pixel unit.
type Length struct {
	Value float64
	Unit  string
}

// ParseLength parses expressions like "16", "256px", or "1.5rem". The unit
// is whatever trails the numeric part; it is validated at resolution time,
// not here.
func ParseLength(raw string) (Length, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Length{}, fmt.Errorf("%w: empty expression", ErrInvalidLength)
	}

	split := len(trimmed)
	for i, r := range trimmed {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' {
			continue
		}
		split = i
		break
	}

	value, err := strconv.ParseFloat(trimmed[:split], 64)
	if err != nil {
		return Length{}, fmt.Errorf("%w: %q", ErrInvalidLength, raw)
	}

	unit := strings.ToLower(strings.TrimSpace(trimmed[split:]))
	if unit == "" {
		unit = "px"
	}
	return Length{Value: value, Unit: unit}, nil
}

// Pixels converts the length to pixels. A non-nil measurer is consulted
// first; unknown units fall back to conventional ratios. The boolean is
// false when the unit was recognised by neither, in which case the raw value
// is returned as pixels.
func (l Length) Pixels(m Measurer) (float64, bool) {
	unit := strings.ToLower(strings.TrimSpace(l.Unit))
	if unit == "" {
		unit = "px"
	}
	if m != nil {
		if per, ok := m.UnitPixels(unit); ok && per > 0 {
			return l.Value * per, true
		}
	}
	if per, ok := fallbackUnitPixels[unit]; ok {
		return l.Value * per, true
	}
	return l.Value, false
}

// String renders the length in its original unit.
func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + l.Unit
}
