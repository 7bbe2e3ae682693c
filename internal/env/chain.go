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

// Chain walking (spec.md §4.6) is implemented here as a small family of
// free functions over Record rather than as recursive methods each
// record variant re-implements (the approach
// original_source/boa/src/environment/{function,global}_environment_record.rs
// takes with its recursive_* trait methods): every record already knows
// how to answer for itself via Record, so the walker only needs to know
// how to go Outer() and when to stop. This mirrors the iterative
// Parent-pointer walk cuelang.org/go/internal/core/adt.Environment and
// the pulumi evaluator's localScope.Lookup both use for the same
// problem: follow an Up/Parent pointer until something answers or the
// chain ends.
package env

import (
	"github.com/ecma-go/runtime/internal/host"
	"github.com/ecma-go/runtime/internal/langerr"
)

// VariableScope distinguishes how far a creation operation should walk
// before installing a binding: function-level declarations (`var`) climb
// to the nearest Function or Global record, while block-level
// declarations (`let`/`const`) stay at the current record.
type VariableScope int

const (
	// BlockScope stops at the record the walk started from.
	BlockScope VariableScope = iota
	// FunctionScope stops at the nearest Function or Global record.
	FunctionScope
)

func stopsAt(r Record, scope VariableScope, start Record) bool {
	if scope == BlockScope {
		return r == start
	}
	return r.Kind() == FunctionKind || r.Kind() == GlobalKind
}

// HasBinding walks outward from start until a record reports the
// binding, or the chain ends.
func HasBinding(start Record, name string) bool {
	for r := start; r != nil; r = r.Outer() {
		if r.HasBinding(name) {
			return true
		}
	}
	return false
}

// GetBindingValue walks outward from start, returning the first record's
// answer for name. It propagates the first failure upward without trying
// further records — matching how the chain walker fails fast per
// spec.md §7 ("propagates the first failure upward without attempting
// other records").
func GetBindingValue(start Record, name string, strict bool) (host.Value, error) {
	for r := start; r != nil; r = r.Outer() {
		if r.HasBinding(name) {
			return r.GetBindingValue(name, strict)
		}
	}
	return nil, missingBinding(name)
}

// SetMutableBinding walks outward from start looking for an existing
// binding to assign. If none is found anywhere in the chain, a global
// (sloppy-mode implicit global) write is the caller's responsibility —
// this walker only ever writes to a binding that already exists
// somewhere in the chain.
func SetMutableBinding(start Record, name string, v host.Value, strict bool) error {
	for r := start; r != nil; r = r.Outer() {
		if r.HasBinding(name) {
			return r.SetMutableBinding(name, v, strict)
		}
	}
	return missingBinding(name)
}

// CreateMutableBinding walks outward from start until it reaches the
// record scope dictates (Block: start itself; Function: the nearest
// Function or Global record) and installs the binding there.
func CreateMutableBinding(start Record, name string, deletable, allowReuse bool, scope VariableScope) error {
	target := targetRecord(start, scope)
	return target.CreateMutableBinding(name, deletable, allowReuse)
}

// CreateImmutableBinding installs an immutable binding at the record
// scope dictates. `let`/`const` always use Block scope in practice, but
// the parameter is accepted for symmetry with CreateMutableBinding.
func CreateImmutableBinding(start Record, name string, strict bool, scope VariableScope) error {
	target := targetRecord(start, scope)
	return target.CreateImmutableBinding(name, strict)
}

// InitializeBinding walks outward from start to the record that already
// holds the binding and initializes it there.
func InitializeBinding(start Record, name string, v host.Value) error {
	for r := start; r != nil; r = r.Outer() {
		if r.HasBinding(name) {
			return r.InitializeBinding(name, v)
		}
	}
	return missingBinding(name)
}

// DeleteBinding walks outward from start to the record holding the
// binding and deletes it there.
func DeleteBinding(start Record, name string) (bool, error) {
	for r := start; r != nil; r = r.Outer() {
		if r.HasBinding(name) {
			return r.DeleteBinding(name)
		}
	}
	return true, nil
}

// targetRecord walks outward from start to the record a creation
// operation of the given scope should install its binding on.
func targetRecord(start Record, scope VariableScope) Record {
	r := start
	for r.Outer() != nil && !stopsAt(r, scope, start) {
		r = r.Outer()
	}
	return r
}

func missingBinding(name string) error {
	return langerr.NewReference("%q is not defined", name)
}
