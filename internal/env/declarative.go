// Copyright 2024 The ECMA Runtime Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package env

import (
	"github.com/ecma-go/runtime/internal/host"
	"github.com/ecma-go/runtime/internal/langerr"
)

// Declarative is a Declarative Environment Record (spec.md §4.2): a set
// of named bindings plus an outer-environment pointer. Function records
// embed one to get `let`/`const`/`var` binding semantics for free, the
// way original_source/boa/src/environment/function_environment_record.rs
// embeds a DeclarativeEnvironmentRecord and forwards every binding
// operation to it.
type Declarative struct {
	outer    Record
	bindings map[string]*binding
}

// NewDeclarative creates an empty Declarative record with the given
// outer environment (nil for a record with no enclosing scope, though in
// practice only the Global record's halves have no outer).
func NewDeclarative(outer Record) *Declarative {
	return &Declarative{outer: outer, bindings: map[string]*binding{}}
}

func (d *Declarative) Kind() Kind    { return DeclarativeKind }
func (d *Declarative) Outer() Record { return d.outer }

func (d *Declarative) HasBinding(name string) bool {
	_, ok := d.bindings[name]
	return ok
}

// CreateMutableBinding installs a new mutable binding for name. Per
// spec.md §4.2, creating a binding for an already-present name fails
// with "binding already exists" unless allowReuse is true — boa's own
// extension to plain ECMA-262 §8.1.1.1.1, used to let `var` re-declare
// itself without tripping the duplicate-declaration check that `let`/
// `const` are subject to.
func (d *Declarative) CreateMutableBinding(name string, deletable, allowReuse bool) error {
	if !allowReuse {
		if _, exists := d.bindings[name]; exists {
			return langerr.NewType("binding already exists for %q", name)
		}
	}
	d.bindings[name] = newMutableBinding(deletable)
	return nil
}

// CreateImmutableBinding installs a new immutable binding for name. It
// always rejects redeclaration; `let`/`const` catch their duplicate
// declarations this way.
func (d *Declarative) CreateImmutableBinding(name string, strict bool) error {
	if _, exists := d.bindings[name]; exists {
		return langerr.NewType("binding already exists for %q", name)
	}
	d.bindings[name] = newImmutableBinding(strict)
	return nil
}

// InitializeBinding sets the value of a binding that was created but not
// yet given a value, and marks it initialized. Calling this on a name
// with no binding is a programming error — the compiler is responsible
// for creating a binding before ever initializing it.
func (d *Declarative) InitializeBinding(name string, v host.Value) error {
	b, ok := d.bindings[name]
	if !ok {
		langerr.Fatal("env: initialize_binding on non-existent binding %q", name)
	}
	b.value = v
	b.initialized = true
	return nil
}

// GetBindingValue reads a binding's value. Reading an uninitialized
// binding fails with a reference error (spec.md §3 Binding invariants);
// strict is accepted to satisfy the Record interface uniformly across
// variants but is not consulted here — only Object records vary their
// read behavior on strictness.
func (d *Declarative) GetBindingValue(name string, strict bool) (host.Value, error) {
	b, ok := d.bindings[name]
	if !ok {
		return nil, langerr.NewReference("%q is not defined", name)
	}
	if !b.initialized {
		return nil, langerr.NewReference("cannot access %q before initialization", name)
	}
	return b.value, nil
}

// SetMutableBinding writes a binding's value.
//
//   - Writing an uninitialized binding sets the value and marks it
//     initialized (spec.md §3).
//   - Writing an immutable, initialized binding raises a TypeError when
//     the write is strict or the binding was created strict; otherwise it
//     is a silent no-op.
//   - Writing a name with no binding at all raises a reference error
//     (the compiler should have created one; this only happens for
//     dynamically-resolved globals, which the Global record handles
//     separately).
func (d *Declarative) SetMutableBinding(name string, v host.Value, strict bool) error {
	b, ok := d.bindings[name]
	if !ok {
		return langerr.NewReference("%q is not defined", name)
	}
	if !b.initialized {
		b.value = v
		b.initialized = true
		return nil
	}
	if !b.mutable {
		if strict || b.strict {
			return langerr.NewType("assignment to constant variable %q", name)
		}
		return nil
	}
	b.value = v
	return nil
}

// DeleteBinding removes a binding, refusing non-deletable ones.
func (d *Declarative) DeleteBinding(name string) (bool, error) {
	b, ok := d.bindings[name]
	if !ok {
		return true, nil
	}
	if !b.deletable {
		return false, nil
	}
	delete(d.bindings, name)
	return true, nil
}

func (d *Declarative) HasThisBinding() bool                        { return false }
func (d *Declarative) HasSuperBinding() bool                       { return false }
func (d *Declarative) WithBaseObject() (host.Object, bool)         { return nil, false }
