// Copyright (c) 2026 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the chainkit library.

// Package params holds named network parameters and resolves numeric
// expressions against them.
//
// Concrete networks configure the scaffold with a flat map of named values,
// typically loaded from a YAML preset. Components that need derived sizes
// evaluate expressions like "HASH_SIZE*2" against the registry; results are
// cached per expression string.
package params

import (
	"fmt"

	"github.com/casbin/govaluate"
)

type cachedValue struct {
	resolved bool
	value    uint64
}

// Registry is a set of named network parameters with an expression cache.
// Build it once and read it afterward; Merge drops the cache and is not
// meant to race with resolution.
type Registry struct {
	values map[string]any
	cache  map[string]*cachedValue
}

// New creates a Registry over the given values. A nil map is allowed and
// yields a registry that resolves nothing.
func New(values map[string]any) *Registry {
	if values == nil {
		values = map[string]any{}
	}
	return &Registry{
		values: values,
		cache:  map[string]*cachedValue{},
	}
}

// Value returns the raw parameter stored under name.
func (r *Registry) Value(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Merge overlays values onto the registry, replacing existing names, and
// drops all cached expression results.
func (r *Registry) Merge(values map[string]any) {
	for k, v := range values {
		r.values[k] = v
	}
	r.cache = map[string]*cachedValue{}
}

// ResolveUint evaluates expr against the registry values and reports whether
// it resolved, together with the resolved value.
//
// Expression parse errors are returned. An expression that references
// unknown names or yields a non-numeric result resolves to false, and that
// outcome is cached like any other. Fractional results are rounded up to
// the next whole unit, since partial bytes cannot be serialized.
func (r *Registry) ResolveUint(expr string) (bool, uint64, error) {
	if cached := r.cache[expr]; cached != nil {
		return cached.resolved, cached.value, nil
	}

	cached := &cachedValue{}
	expression, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return false, 0, fmt.Errorf("error parsing parameter expression: %v", err)
	}

	result, err := expression.Evaluate(r.values)
	if err == nil {
		value, ok := result.(float64)
		if ok {
			cached.resolved = true
			cached.value = uint64(value)
			if float64(cached.value) < value {
				// round up, partial bytes cannot be serialized
				cached.value++
			}
		}
	}

	r.cache[expr] = cached
	return cached.resolved, cached.value, nil
}
