// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values: programmer error),
//   - gatherOptions helper (internal) that applies defaults.
//
// Design goals:
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRows and DefaultCols define the shape built by NewDefault.
	DefaultRows = 3
	DefaultCols = 3

	// DefaultFill is the element value used by constructors without WithFill.
	DefaultFill int64 = 0
)

// Options holds constructor configuration. Build it through Option values.
type Options struct {
	fill     int64     // initial value of every element
	registry *Registry // registry counting the constructed instance
}

// Option mutates Options. Options are applied in order; the last one wins.
type Option func(*Options)

// WithFill sets the value every element is initialised to.
// Ignored by constructors that copy their elements from a source.
func WithFill(v int64) Option {
	return func(o *Options) { o.fill = v }
}

// WithRegistry makes the constructed instance count against r instead of
// DefaultRegistry. Panics if r is nil.
func WithRegistry(r *Registry) Option {
	if r == nil {
		panic("matrix: WithRegistry(nil)")
	}

	return func(o *Options) { o.registry = r }
}

// gatherOptions applies user options on top of defaults.
// base is the registry used when no WithRegistry option is given.
func gatherOptions(base *Registry, user ...Option) Options {
	if base == nil {
		base = DefaultRegistry
	}
	o := Options{
		fill:     DefaultFill,
		registry: base,
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
