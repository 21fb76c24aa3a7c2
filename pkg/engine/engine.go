package engine

import (
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/goliatone/go-formlayout/pkg/field"
	"github.com/goliatone/go-formlayout/pkg/geometry"
	"github.com/goliatone/go-formlayout/pkg/layout"
	"github.com/goliatone/go-formlayout/pkg/preset"
)

// Option customises the engine configuration.
type Option func(*Engine)

// WithConfigSource injects the external configuration source consulted at
// the start of every full pass.
func WithConfigSource(source ConfigSource) Option {
	return func(e *Engine) {
		e.source = source
	}
}

// WithBaseRegistry replaces the built-in preset registry that configuration
// overrides are merged onto.
func WithBaseRegistry(registry *preset.Registry) Option {
	return func(e *Engine) {
		e.base = registry
	}
}

// WithMeasurer injects the unit measurer used to resolve dimension
// configuration to pixels. Without one the conventional fallback ratios
// apply.
func WithMeasurer(m geometry.Measurer) Option {
	return func(e *Engine) {
		e.measurer = m
	}
}

// WithLogger sets the logger for degraded-path reporting. Pass nil to use
// slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Engine is the layout controller. It owns the last computed snapshot and
// the Idle/Recomputing guard; all recompute work runs synchronously inside
// the notification call that triggered it.
type Engine struct {
	surface  Surface
	source   ConfigSource
	base     *preset.Registry
	measurer geometry.Measurer
	logger   *slog.Logger

	recomputing atomic.Bool
	dropped     atomic.Uint64

	mu       sync.RWMutex
	snapshot layout.Snapshot
	config   layout.Config
	hasFull  bool
}

// New constructs an engine bound to a surface. Missing collaborators fall
// back to the built-in implementations: an empty static configuration, the
// default preset registry, and slog.Default.
func New(surface Surface, options ...Option) (*Engine, error) {
	if surface == nil {
		return nil, errors.New("engine: surface is required")
	}
	e := &Engine{surface: surface}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if e.source == nil {
		e.source = StaticConfig{}
	}
	if e.base == nil {
		e.base = preset.DefaultRegistry()
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	e.config = layout.DefaultConfig()
	return e, nil
}

// SetConfigSource swaps the configuration source consulted on the next
// full pass. Passing nil restores the empty static configuration.
func (e *Engine) SetConfigSource(source ConfigSource) {
	if source == nil {
		source = StaticConfig{}
	}
	e.mu.Lock()
	e.source = source
	e.mu.Unlock()
}

// Snapshot returns a copy of the last computed snapshot. Before the first
// pass the snapshot is empty with zero columns.
func (e *Engine) Snapshot() layout.Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshot.Clone()
}

// Dropped reports how many notifications arrived while a pass was running
// and were discarded by the guard.
func (e *Engine) Dropped() uint64 {
	return e.dropped.Load()
}

// Notify delivers a batch of change events. A batch with any structural
// event runs a full pass, a purely geometric batch runs a cheap pass, and
// an empty batch is ignored. The return value is false when the batch was
// dropped because a pass was already running.
func (e *Engine) Notify(events ...Event) bool {
	structural := false
	seen := false
	for _, ev := range events {
		switch ev.Kind {
		case EventStructural:
			structural = true
			seen = true
		case EventGeometry:
			seen = true
		}
	}
	if !seen {
		return false
	}
	return e.run(structural)
}

// Recompute forces a full pass. It is the manual entry point for callers
// that want to re-read configuration without a change notification, and the
// recovery path after a dropped batch.
func (e *Engine) Recompute() bool {
	return e.run(true)
}

// run is the Idle/Recomputing transition: a non-blocking try-lock that
// drops, rather than queues, anything arriving mid-pass. Self-triggered
// notifications from the write-back land here and go no further.
func (e *Engine) run(full bool) bool {
	if !e.recomputing.CompareAndSwap(false, true) {
		e.dropped.Add(1)
		e.logger.Debug("notification dropped during recompute",
			slog.Bool("structural", full),
			slog.Uint64("dropped", e.dropped.Load()),
		)
		return false
	}
	defer e.recomputing.Store(false)

	if full {
		e.fullPass()
	} else {
		e.cheapPass()
	}
	return true
}

// fullPass re-reads configuration, re-extracts every control, re-resolves
// presets and spans, recomputes columns, annotates groups, and publishes.
func (e *Engine) fullPass() {
	e.mu.RLock()
	source := e.source
	e.mu.RUnlock()

	cfg := layout.ResolveConfig(source.LayoutOverrides(), e.measurer, e.logger)
	registry := e.base.Merge(source.PresetOverrides()...)

	controls := e.surface.Controls()
	fields := make([]layout.FieldLayout, 0, len(controls))
	for idx, ctl := range controls {
		fl, ok := e.fieldLayout(ctl, idx, registry, cfg)
		if !ok {
			continue
		}
		fields = append(fields, fl)
	}

	columns := e.columns(cfg)
	layout.ClampSpans(fields, columns)
	layout.AnnotateGroups(fields, cfg)

	e.publish(layout.Snapshot{Columns: columns, Fields: fields}, cfg, true)
}

// cheapPass recomputes columns and re-clamps the previous base spans,
// leaving presets, groups, and formats untouched. Without a prior full pass
// there is nothing to reuse, so the first notification of any kind pays for
// a full one.
func (e *Engine) cheapPass() {
	e.mu.RLock()
	ready := e.hasFull
	cfg := e.config
	previous := e.snapshot
	e.mu.RUnlock()

	if !ready {
		e.fullPass()
		return
	}

	columns := e.columns(cfg)
	fields := append([]layout.FieldLayout(nil), previous.Fields...)
	layout.ClampSpans(fields, columns)

	e.publish(layout.Snapshot{Columns: columns, Fields: fields}, cfg, false)
}

// columns derives the live column count, retaining the previous count when
// the surface reports no usable geometry.
func (e *Engine) columns(cfg layout.Config) int {
	e.mu.RLock()
	previous := e.snapshot.Columns
	e.mu.RUnlock()

	width, ok := e.surface.ContainerWidth()
	if !ok {
		return layout.ComputeColumns(-1, cfg, previous)
	}
	return layout.ComputeColumns(width, cfg, previous)
}

// fieldLayout turns one control into its placement. Any panic while
// extracting or resolving degrades the field to safe defaults instead of
// aborting the pass.
func (e *Engine) fieldLayout(ctl field.Control, order int, registry *preset.Registry, cfg layout.Config) (fl layout.FieldLayout, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("field degraded to safe defaults",
				slog.String("field", ctl.Name),
				slog.Any("cause", r),
			)
			fl = layout.FieldLayout{
				Name:     strings.TrimSpace(ctl.Name),
				Order:    order,
				BaseSpan: field.SpanOf(1),
			}
			ok = true
		}
	}()

	desc, keep := field.Extract(ctl, order)
	if !keep {
		return layout.FieldLayout{}, false
	}

	fl = layout.FieldLayout{
		Name:   desc.Name,
		Order:  desc.Order,
		Group:  desc.Group,
		Format: desc.Format,
	}

	var resolved *preset.Preset
	if p, matched := registry.Resolve(desc); matched {
		resolved = &p
		fl.PresetKey = p.Key
		if fl.Group == "" {
			fl.Group = p.Group
		}
		if fl.Format == "" {
			fl.Format = p.Format
		}
	}

	fl.BaseSpan = layout.DesiredSpan(desc, resolved, cfg)
	return fl, true
}

// publish stores the snapshot and writes it back to the surface. The store
// happens first so Snapshot is current even while Apply runs; the guard is
// still held, so anything Apply triggers is dropped.
func (e *Engine) publish(snap layout.Snapshot, cfg layout.Config, full bool) {
	e.mu.Lock()
	snap.Revision = e.snapshot.Revision + 1
	e.snapshot = snap
	e.config = cfg
	if full {
		e.hasFull = true
	}
	e.mu.Unlock()

	if err := e.surface.Apply(snap.Clone()); err != nil {
		e.logger.Warn("snapshot write-back failed", slog.Any("error", err))
	}
}
