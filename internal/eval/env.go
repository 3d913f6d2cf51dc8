// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package eval implements the moji interpreter.
package eval

import "nickandperla.net/moji/internal/value"

// Env is a scope frame: a local name→value map plus an optional parent.
// Child frames are created per function call and conditional block and
// discarded when the call returns; the parent is shared, not owned.
// Execution is single-threaded, so frames carry no locking.
type Env struct {
	vars   map[string]value.Value
	parent *Env
}

// NewEnv creates a new root environment.
func NewEnv() *Env {
	return &Env{vars: make(map[string]value.Value)}
}

// NewChild creates a new environment that delegates to parent.
func NewChild(parent *Env) *Env {
	return &Env{vars: make(map[string]value.Value), parent: parent}
}

// Get retrieves a value by name, searching local first, then the parent
// chain. The boolean reports whether any frame held a binding.
func (e *Env) Get(name string) (value.Value, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, false
}

// Has returns true if name is bound in this frame or any ancestor.
func (e *Env) Has(name string) bool {
	_, ok := e.Get(name)
	return ok
}

// Define binds name locally, shadowing any ancestor binding. Used for
// parameter binding, which must never clobber an outer variable.
func (e *Env) Define(name string, v value.Value) {
	e.vars[name] = v
}

// Assign mutates the nearest enclosing frame that already owns name.
// A brand-new name is created locally, so it does not outlive the frame.
func (e *Env) Assign(name string, v value.Value) {
	if _, ok := e.vars[name]; ok {
		e.vars[name] = v
		return
	}
	if e.parent != nil && e.parent.Has(name) {
		e.parent.Assign(name, v)
		return
	}
	e.vars[name] = v
}
