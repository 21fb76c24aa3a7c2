package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formlayout/pkg/field"
	pkgopenapi "github.com/goliatone/go-formlayout/pkg/openapi"
)

// ControlSource flattens an operation's request body into layout controls.
type ControlSource struct {
	options pkgopenapi.ControlOptions
}

var _ pkgopenapi.ControlSource = (*ControlSource)(nil)

// NewControlSource constructs a ControlSource from resolved options.
func NewControlSource(options pkgopenapi.ControlOptions) *ControlSource {
	if len(options.MediaTypes) == 0 {
		options.MediaTypes = pkgopenapi.NewControlOptions().MediaTypes
	}
	return &ControlSource{options: options}
}

// Controls locates operationID in the document and maps its request body
// properties to controls, ordered by their x-layout order extension first
// and property name second.
func (c *ControlSource) Controls(ctx context.Context, doc pkgopenapi.Document, operationID string) (pkgopenapi.Form, error) {
	if err := ctx.Err(); err != nil {
		return pkgopenapi.Form{}, err
	}
	if len(doc.Raw) == 0 {
		return pkgopenapi.Form{}, errors.New("openapi controls: document payload is empty")
	}
	if strings.TrimSpace(operationID) == "" {
		return pkgopenapi.Form{}, errors.New("openapi controls: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(doc.Raw)
	if err != nil {
		return pkgopenapi.Form{}, fmt.Errorf("openapi controls: load document: %w", err)
	}

	op := findOperation(spec, operationID)
	if op == nil {
		return pkgopenapi.Form{}, fmt.Errorf("openapi controls: operation %q not found", operationID)
	}

	form := pkgopenapi.Form{
		OperationID: operationID,
		Title:       strings.TrimSpace(op.Summary),
	}
	if form.Title == "" {
		form.Title = operationID
	}

	schema := c.requestSchema(op)
	if schema != nil {
		form.Controls = c.propertyControls(schema)
	}

	if c.options.AppendSubmit {
		form.Controls = append(form.Controls, field.Control{
			Kind: field.KindSubmit,
			Name: "submit",
		})
	}

	return form, nil
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range item.Operations() {
			if op != nil && op.OperationID == operationID {
				return op
			}
		}
	}
	return nil
}

func (c *ControlSource) requestSchema(op *openapi3.Operation) *openapi3.Schema {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	content := op.RequestBody.Value.Content
	for _, mediaType := range c.options.MediaTypes {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

// ordered pairs a property with its sort rank before the final pass.
type ordered struct {
	name  string
	order int
	ctl   field.Control
}

const unordered = 1 << 30

func (c *ControlSource) propertyControls(schema *openapi3.Schema) []field.Control {
	if schema == nil || len(schema.Properties) == 0 {
		return nil
	}

	entries := make([]ordered, 0, len(schema.Properties))
	for name, ref := range schema.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		ctl, order, ok := propertyControl(name, ref.Value)
		if !ok {
			continue
		}
		entries = append(entries, ordered{name: name, order: order, ctl: ctl})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].order != entries[j].order {
			return entries[i].order < entries[j].order
		}
		return entries[i].name < entries[j].name
	})

	out := make([]field.Control, len(entries))
	for i, entry := range entries {
		out[i] = entry.ctl
	}
	return out
}

// propertyControl maps one schema property to a control. Nested objects and
// arrays have no flat-grid placement and are skipped.
func propertyControl(name string, schema *openapi3.Schema) (field.Control, int, bool) {
	kind := controlKind(schema)
	if kind == "" {
		return field.Control{}, 0, false
	}

	attrs := map[string]string{}
	if schema.MaxLength != nil && *schema.MaxLength > 0 {
		attrs[field.AttrMaxLength] = strconv.FormatUint(*schema.MaxLength, 10)
	}
	if format := strings.TrimSpace(schema.Format); format != "" && format != "textarea" {
		attrs[field.AttrFormat] = format
	}

	order := unordered
	for key, value := range layoutExtension(schema.Extensions) {
		switch key {
		case "order":
			if n, ok := intValue(value); ok {
				order = n
			}
		case "span", "preset", "group", "format", "stacked", "multiline":
			attrs[key] = extensionString(value)
		}
	}
	if len(attrs) == 0 {
		attrs = nil
	}

	return field.Control{Kind: kind, Name: name, Attrs: attrs}, order, true
}

func controlKind(schema *openapi3.Schema) field.Kind {
	switch schemaType(schema) {
	case "boolean":
		return field.KindCheckbox
	case "object", "array":
		return ""
	}
	if len(schema.Enum) > 0 {
		return field.KindSelect
	}
	if schema.Format == "textarea" {
		return field.KindTextarea
	}
	return field.KindInput
}

func schemaType(schema *openapi3.Schema) string {
	if schema.Type == nil {
		return ""
	}
	values := schema.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func layoutExtension(extensions map[string]any) map[string]any {
	raw, ok := extensions[pkgopenapi.ExtensionNamespace]
	if !ok {
		return nil
	}
	values, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	return values
}

func extensionString(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func intValue(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int64(v)) {
			return int(v), true
		}
	}
	return 0, false
}
