package formdef

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formlayout/pkg/field"
)

// ControlDef is one control as declared in a document. Attribute values may
// be written as any scalar; they are coerced to strings during conversion.
type ControlDef struct {
	Kind  string         `json:"kind" yaml:"kind"`
	Name  string         `json:"name" yaml:"name"`
	Attrs map[string]any `json:"attrs" yaml:"attrs"`
}

// Document is a declarative form: a title and its controls in document
// order.
type Document struct {
	Title    string       `json:"title" yaml:"title"`
	Controls []ControlDef `json:"controls" yaml:"controls"`
}

// Parse reads a document from raw JSON or YAML bytes.
func Parse(data []byte) (Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("formdef: document is empty")
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	doc = Document{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return Document{}, fmt.Errorf("formdef: invalid JSON or YAML")
}

// Load reads and parses one document from a filesystem.
func Load(fsys fs.FS, name string) (Document, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Document{}, fmt.Errorf("formdef: read %s: %w", name, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("formdef: parse %s: %w", name, err)
	}
	return doc, nil
}

// FieldControls converts the document's controls to the extractor's input
// shape, preserving document order.
func (d Document) FieldControls() []field.Control {
	out := make([]field.Control, 0, len(d.Controls))
	for _, def := range d.Controls {
		out = append(out, field.Control{
			Kind:  field.Kind(strings.TrimSpace(def.Kind)),
			Name:  strings.TrimSpace(def.Name),
			Attrs: stringAttrs(def.Attrs),
		})
	}
	return out
}

func stringAttrs(attrs map[string]any) map[string]string {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]string, len(attrs))
	for key, value := range attrs {
		out[key] = attrString(value)
	}
	return out
}

// attrString renders a scalar attribute the way it was written: integral
// floats lose their fraction so JSON numbers round-trip as "60", not "60.0".
func attrString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
