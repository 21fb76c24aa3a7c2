package uiconfig

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formlayout/pkg/field"
	"github.com/goliatone/go-formlayout/pkg/geometry"
	"github.com/goliatone/go-formlayout/pkg/layout"
	"github.com/goliatone/go-formlayout/pkg/preset"
)

// LoadFS walks the provided filesystem and parses every JSON/YAML
// configuration document it finds. Documents merge in walk order: later
// layout settings win field by field, presets accumulate, and a preset key
// defined twice is an error. A nil fsys yields an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{}
	if fsys == nil {
		return store, nil
	}

	seen := map[string]string{}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isConfigFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("uiconfig: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		store.overrides = store.overrides.Merge(doc.overrides())

		presets, err := doc.presets(path)
		if err != nil {
			return err
		}
		for _, p := range presets {
			key := preset.Normalize(p.Key)
			if prior, dup := seen[key]; dup {
				return fmt.Errorf("uiconfig: preset %q defined in both %s and %s", p.Key, prior, path)
			}
			seen[key] = path
			store.presets = append(store.presets, p)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Parse reads a single configuration document from raw bytes.
func Parse(data []byte) (*Store, error) {
	doc, err := parseDocument(data, "inline")
	if err != nil {
		return nil, err
	}
	presets, err := doc.presets("inline")
	if err != nil {
		return nil, err
	}
	return &Store{overrides: doc.overrides(), presets: presets}, nil
}

func isConfigFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

type documentFile struct {
	Layout  layoutFile            `json:"layout" yaml:"layout"`
	Groups  map[string]groupFile  `json:"groups" yaml:"groups"`
	Presets map[string]presetFile `json:"presets" yaml:"presets"`
}

type layoutFile struct {
	Gap              geometry.Dimension `json:"gap" yaml:"gap"`
	MinColumnWidth   geometry.Dimension `json:"minColumnWidth" yaml:"minColumnWidth"`
	CollapseAt       geometry.Dimension `json:"collapseAt" yaml:"collapseAt"`
	GroupGap         geometry.Dimension `json:"groupGap" yaml:"groupGap"`
	MaxColumns       *int               `json:"maxColumns" yaml:"maxColumns"`
	ColumnChars      *int               `json:"columnChars" yaml:"columnChars"`
	SpanPaddingChars *int               `json:"spanPaddingChars" yaml:"spanPaddingChars"`
}

type groupFile struct {
	GapBefore geometry.Dimension `json:"gapBefore" yaml:"gapBefore"`
}

type presetFile struct {
	Match  []string `json:"match" yaml:"match"`
	Regex  string   `json:"regex" yaml:"regex"`
	Span   any      `json:"span" yaml:"span"`
	Group  string   `json:"group" yaml:"group"`
	Format string   `json:"format" yaml:"format"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("uiconfig: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("uiconfig: parse %s: invalid JSON or YAML", source)
}

func (d documentFile) overrides() layout.Overrides {
	ov := layout.Overrides{
		Gap:              d.Layout.Gap,
		MinColumnWidth:   d.Layout.MinColumnWidth,
		CollapseAt:       d.Layout.CollapseAt,
		GroupGap:         d.Layout.GroupGap,
		MaxColumns:       d.Layout.MaxColumns,
		ColumnChars:      d.Layout.ColumnChars,
		SpanPaddingChars: d.Layout.SpanPaddingChars,
	}
	if len(d.Groups) > 0 {
		ov.Groups = make(map[string]layout.GroupOverride, len(d.Groups))
		for name, g := range d.Groups {
			trimmed := strings.TrimSpace(name)
			if trimmed == "" {
				continue
			}
			ov.Groups[trimmed] = layout.GroupOverride{GapBefore: g.GapBefore}
		}
	}
	return ov
}

// presets converts the preset table to registry entries. Map order is not
// stable, so keys are sorted to keep the scan order deterministic across
// passes.
func (d documentFile) presets(source string) ([]preset.Preset, error) {
	if len(d.Presets) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(d.Presets))
	for key := range d.Presets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]preset.Preset, 0, len(keys))
	for _, key := range keys {
		trimmed := strings.TrimSpace(key)
		if preset.Normalize(trimmed) == "" {
			return nil, fmt.Errorf("uiconfig: file %s defines a preset with an empty key", source)
		}

		raw := d.Presets[key]
		p := preset.Preset{
			Key:    trimmed,
			Group:  strings.TrimSpace(raw.Group),
			Format: strings.TrimSpace(raw.Format),
		}

		for _, text := range raw.Match {
			value := strings.TrimSpace(text)
			if value == "" {
				return nil, fmt.Errorf("uiconfig: file %s preset %q contains an empty match pattern", source, trimmed)
			}
			p.Patterns = append(p.Patterns, preset.Literal(value))
		}
		if expr := strings.TrimSpace(raw.Regex); expr != "" {
			pattern, err := preset.RegexString(expr)
			if err != nil {
				return nil, fmt.Errorf("uiconfig: file %s preset %q: %w", source, trimmed, err)
			}
			p.Patterns = append(p.Patterns, pattern)
		}

		if raw.Span != nil {
			span, ok := field.SpanValue(raw.Span)
			if !ok {
				return nil, fmt.Errorf("uiconfig: file %s preset %q has invalid span %v", source, trimmed, raw.Span)
			}
			p.Span = span
		}

		out = append(out, p)
	}

	return out, nil
}
