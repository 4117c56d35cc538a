// SPDX-License-Identifier: MIT

// Package matrix - live-instance accounting.
//
// Purpose:
//   - Track how many Dense values are constructed but not yet closed.
//   - Keep the counter explicit: a Registry value with atomic fields, zero at
//     creation, changed only by construction (acquire) and Close (release).
//   - Expose the counter for observability via the introspection interfaces.
//
// Concurrency:
//   - All counters are atomic; matrices may be built and closed from any goroutine.

package matrix

import (
	"sync/atomic"

	"github.com/aretw0/introspection"
)

// componentRegistry is the component type reported to introspection consumers.
const componentRegistry = "matrix-registry"

// Registry counts live Dense instances.
// The zero value is ready to use and starts at zero.
type Registry struct {
	live        atomic.Int64 // constructed - closed
	constructed atomic.Int64 // monotonic total of successful constructions
	closed      atomic.Int64 // monotonic total of Close calls that released a buffer
}

// RegistryState is the snapshot returned by (*Registry).State.
type RegistryState struct {
	Live        int64 `json:"live"`
	Constructed int64 `json:"constructed"`
	Closed      int64 `json:"closed"`
}

// DefaultRegistry counts every matrix built without WithRegistry.
var DefaultRegistry = NewRegistry()

// Compile-time assertions for introspection conformance.
var (
	_ introspection.Introspectable = (*Registry)(nil)
	_ introspection.Component      = (*Registry)(nil)
)

// NewRegistry returns an empty registry.
func NewRegistry() *Registry { return &Registry{} }

// Live returns the number of instances constructed but not yet closed.
// Complexity: O(1).
func (r *Registry) Live() int64 { return r.live.Load() }

// State implements introspection.Introspectable.
func (r *Registry) State() any {
	return RegistryState{
		Live:        r.live.Load(),
		Constructed: r.constructed.Load(),
		Closed:      r.closed.Load(),
	}
}

// ComponentType implements introspection.Component.
func (r *Registry) ComponentType() string { return componentRegistry }

func (r *Registry) acquire() {
	r.constructed.Add(1)
	r.live.Add(1)
}

func (r *Registry) release() {
	r.closed.Add(1)
	r.live.Add(-1)
}

// LiveInstances returns DefaultRegistry.Live().
func LiveInstances() int64 { return DefaultRegistry.Live() }

// registryOf returns the registry that should count a result derived from m:
// the registry of a *Dense, DefaultRegistry otherwise.
func registryOf(m Matrix) *Registry {
	if d, ok := m.(*Dense); ok && d != nil && d.reg != nil {
		return d.reg
	}

	return DefaultRegistry
}
