package geometry

import (
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Dimension is an optional length that may arrive from configuration as a
// bare number (pixels) or a unit expression ("24px", "1.5rem"). The zero
// value means the dimension was not set.
type Dimension struct {
	length Length
	set    bool
}

// Px returns a pixel dimension.
func Px(value float64) Dimension {
	return Dimension{length: Length{Value: value, Unit: "px"}, set: true}
}

// Dim returns a dimension in the given unit.
func Dim(value float64, unit string) Dimension {
	return Dimension{length: Length{Value: value, Unit: unit}, set: true}
}

// ParseDimension parses a length expression into a set dimension.
func ParseDimension(raw string) (Dimension, error) {
	length, err := ParseLength(raw)
	if err != nil {
		return Dimension{}, err
	}
	return Dimension{length: length, set: true}, nil
}

// IsZero reports whether the dimension was never set.
func (d Dimension) IsZero() bool {
	return !d.set
}

// Length returns the underlying parsed length. Only meaningful when the
// dimension is set.
func (d Dimension) Length() Length {
	return d.length
}

// Pixels resolves the dimension against the measurer. Unset dimensions
// report false.
func (d Dimension) Pixels(m Measurer) (float64, bool) {
	if !d.set {
		return 0, false
	}
	return d.length.Pixels(m)
}

// String renders the dimension, or the empty string when unset.
func (d Dimension) String() string {
	if !d.set {
		return ""
	}
	return d.length.String()
}

// MarshalJSON implements json.Marshaler, emitting null for unset dimensions.
func (d Dimension) MarshalJSON() ([]byte, error) {
	if !d.set {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts numbers (pixels), strings (length expressions), and
// null (unset).
func (d *Dimension) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("geometry: decode dimension: %w", err)
	}
	return d.fromValue(raw)
}

// UnmarshalYAML accepts the same scalar shapes as UnmarshalJSON.
func (d *Dimension) UnmarshalYAML(value *yaml.Node) error {
	var raw any
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("geometry: decode dimension: %w", err)
	}
	return d.fromValue(raw)
}

func (d *Dimension) fromValue(raw any) error {
	dim, ok := DimensionValue(raw)
	if !ok {
		if raw == nil {
			*d = Dimension{}
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidLength, raw)
	}
	*d = dim
	return nil
}

// DimensionValue coerces a loosely typed configuration value into a
// dimension: numeric types read as pixels, strings parse as length
// expressions. Anything else, including non-finite floats, reports false.
func DimensionValue(value any) (Dimension, bool) {
	switch v := value.(type) {
	case Dimension:
		if v.IsZero() {
			return Dimension{}, false
		}
		return v, true
	case string:
		dim, err := ParseDimension(v)
		if err != nil {
			return Dimension{}, false
		}
		return dim, true
	case int:
		return Px(float64(v)), true
	case int8:
		return Px(float64(v)), true
	case int16:
		return Px(float64(v)), true
	case int32:
		return Px(float64(v)), true
	case int64:
		return Px(float64(v)), true
	case uint:
		return Px(float64(v)), true
	case uint8:
		return Px(float64(v)), true
	case uint16:
		return Px(float64(v)), true
	case uint32:
		return Px(float64(v)), true
	case uint64:
		return Px(float64(v)), true
	case float32:
		return dimensionFromFloat(float64(v))
	case float64:
		return dimensionFromFloat(v)
	default:
		return Dimension{}, false
	}
}

func dimensionFromFloat(v float64) (Dimension, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Dimension{}, false
	}
	return Px(v), true
}
