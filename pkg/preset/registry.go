package preset

import (
	"strings"
	"sync"

	"github.com/goliatone/go-formlayout/pkg/field"
)

// Preset bundles the layout defaults applied to fields that match one of its
// patterns: an optional span, group, and format. Key is matched after
// normalization, so "Zip-Code" and "zipcode" name the same preset.
type Preset struct {
	Key      string
	Patterns []Pattern
	Span     field.Span
	Group    string
	Format   string
}

// Registry stores presets in registration order and resolves one preset per
// field. Resolution is first-hit-wins: an explicit preset key, then an exact
// field-name match, then a pattern scan in registration order. Registering a
// preset under an existing key replaces the original in place, keeping its
// position in the scan order.
type Registry struct {
	mu      sync.RWMutex
	presets []Preset
	index   map[string]int
}

// NewRegistry constructs a registry holding only the supplied presets.
// Presets with keys that normalize to the empty string are skipped.
func NewRegistry(presets ...Preset) *Registry {
	reg := &Registry{index: make(map[string]int)}
	for _, p := range presets {
		reg.Register(p)
	}
	return reg
}

// DefaultRegistry constructs a registry seeded with the built-in presets.
func DefaultRegistry() *Registry {
	return NewRegistry(builtinPresets()...)
}

// Register adds a preset or, when the normalized key already exists,
// replaces the existing entry wholesale while preserving its position.
func (r *Registry) Register(p Preset) {
	if r == nil {
		return
	}
	key := Normalize(p.Key)
	if key == "" {
		return
	}
	p.Key = strings.TrimSpace(p.Key)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.index == nil {
		r.index = make(map[string]int)
	}
	if at, exists := r.index[key]; exists {
		r.presets[at] = p
		return
	}
	r.index[key] = len(r.presets)
	r.presets = append(r.presets, p)
}

// Merge returns a new registry holding this registry's presets overlaid with
// the supplied overrides. The receiver is not modified, so a shared built-in
// registry can be merged fresh on every pass.
func (r *Registry) Merge(overrides ...Preset) *Registry {
	merged := NewRegistry(r.Presets()...)
	for _, p := range overrides {
		merged.Register(p)
	}
	return merged
}

// Presets returns a copy of the registered presets in registration order.
func (r *Registry) Presets() []Preset {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Preset(nil), r.presets...)
}

// Len reports the number of registered presets.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.presets)
}

// Lookup returns the preset registered under the normalized form of key.
func (r *Registry) Lookup(key string) (Preset, bool) {
	if r == nil {
		return Preset{}, false
	}
	normalized := Normalize(key)
	if normalized == "" {
		return Preset{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	at, ok := r.index[normalized]
	if !ok {
		return Preset{}, false
	}
	return r.presets[at], true
}

// Resolve picks the preset for a field, first hit wins:
//
//  1. the descriptor's explicit preset key, matched exactly after
//     normalization;
//  2. the field name, matched exactly after normalization;
//  3. the first preset whose patterns match, scanning in registration order.
//
// The boolean is false when nothing matches. Resolution never mutates the
// registry, so identical inputs always resolve identically.
func (r *Registry) Resolve(desc field.Descriptor) (Preset, bool) {
	if r == nil {
		return Preset{}, false
	}
	explicitKey := Normalize(desc.PresetKey)
	nameKey := Normalize(desc.Name)

	r.mu.RLock()
	if explicitKey != "" {
		if at, ok := r.index[explicitKey]; ok {
			p := r.presets[at]
			r.mu.RUnlock()
			return p, true
		}
	}
	if nameKey != "" {
		if at, ok := r.index[nameKey]; ok {
			p := r.presets[at]
			r.mu.RUnlock()
			return p, true
		}
	}
	presets := append([]Preset(nil), r.presets...)
	r.mu.RUnlock()

	// Predicates run user code, so the scan works on a copy outside the lock.
	for _, p := range presets {
		for _, pattern := range p.Patterns {
			if pattern.matches(desc.Name, nameKey, desc) {
				return p, true
			}
		}
	}

	return Preset{}, false
}
