package openapi

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"path/filepath"
	"time"

	"github.com/goliatone/go-formlayout/pkg/field"
)

// ExtensionNamespace is the vendor extension property mined for layout
// attributes. A schema property may carry
//
//	x-layout: {span: 2, preset: zip, group: address, stacked: true, order: 3}
//
// and each entry becomes the matching control attribute.
const ExtensionNamespace = "x-layout"

// Source identifies where an OpenAPI document originates.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

type source struct {
	kind     SourceKind
	location string
}

func (s source) Kind() SourceKind { return s.kind }

func (s source) Location() string { return s.location }

// FileSource returns a Source pointing at an on-disk document.
func FileSource(path string) Source {
	return source{kind: SourceKindFile, location: filepath.Clean(path)}
}

// FSSource returns a Source naming an entry inside the loader's fs.FS.
func FSSource(name string) Source {
	return source{kind: SourceKindFS, location: name}
}

// URLSource returns a Source for an HTTP/HTTPS endpoint. The URL is
// validated eagerly so configuration mistakes surface at construction.
func URLSource(raw string) (Source, error) {
	if raw == "" {
		return nil, errors.New("openapi: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		return nil, fmt.Errorf("openapi: invalid URL %q: %w", raw, err)
	}
	return source{kind: SourceKindURL, location: raw}, nil
}

// Document wraps a raw OpenAPI payload together with its origin.
type Document struct {
	Source Source
	Raw    []byte
}

// Loader fetches a document from a source.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// Form is the flattened view of one operation's request body: the controls
// in a deterministic document order, ready for the layout engine.
type Form struct {
	OperationID string
	Title       string
	Controls    []field.Control
}

// ControlSource extracts a Form from a document.
type ControlSource interface {
	Controls(ctx context.Context, doc Document, operationID string) (Form, error)
}

// LoaderOptions configures the built-in loader.
type LoaderOptions struct {
	// FileSystem backs FSSource lookups.
	FileSystem fs.FS

	// HTTPClient handles URLSource fetches. nil with AllowHTTP set means a
	// default client with RequestTimeout applies.
	HTTPClient *http.Client

	// AllowHTTP enables URL sources.
	AllowHTTP bool

	// RequestTimeout bounds HTTP fetches.
	RequestTimeout time.Duration
}

// NewLoaderOptions returns the defaults: no filesystem, HTTP enabled with a
// 30 second timeout.
func NewLoaderOptions() LoaderOptions {
	return LoaderOptions{
		AllowHTTP:      true,
		RequestTimeout: 30 * time.Second,
	}
}

// ControlOptions configures request-body flattening.
type ControlOptions struct {
	// MediaTypes is the preference order for picking the request body
	// content entry.
	MediaTypes []string

	// AppendSubmit adds a trailing submit control so the rendered layout
	// carries the full-row action the original form would have.
	AppendSubmit bool
}

// NewControlOptions returns the defaults: JSON-first media types and a
// trailing submit control.
func NewControlOptions() ControlOptions {
	return ControlOptions{
		MediaTypes: []string{
			"application/json",
			"application/x-www-form-urlencoded",
			"multipart/form-data",
		},
		AppendSubmit: true,
	}
}
