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

// Package env implements the ECMA-262 §8.1 lexical-environment record
// hierarchy: Declarative, Object, Function and Global records, and the
// chain walker that resolves identifiers across them. It is adapted from
// original_source/boa/src/environment/{function,global}_environment_record.rs
// and the Environment/Conjunct linking pattern in
// cuelang.org/go/internal/core/adt.Environment (an Up pointer to the
// enclosing scope, walked outward on every lookup).
//
// Rather than an inheritance hierarchy, the record family is a tagged
// variant (per spec.md §9 "Polymorphism over record kinds"): every
// concrete record implements Record, and callers that need to know which
// variant they hold switch on Kind().
package env

import "github.com/ecma-go/runtime/internal/host"

// Kind tags which of the four concrete Environment Record variants a
// Record is.
type Kind int

const (
	DeclarativeKind Kind = iota
	ObjectKind
	FunctionKind
	GlobalKind
)

func (k Kind) String() string {
	switch k {
	case DeclarativeKind:
		return "declarative"
	case ObjectKind:
		return "object"
	case FunctionKind:
		return "function"
	case GlobalKind:
		return "global"
	default:
		return "unknown"
	}
}

// Record is the capability table every Environment Record variant
// implements: the binding operations of ECMA-262 §8.1.1.1 plus the
// this/super/with-base-object/kind queries spec.md §9 calls out
// explicitly. The Global record is itself a composite of two other
// Record implementations and dispatches declarative-first,
// object-second (see global.go) rather than inheriting from either.
type Record interface {
	Kind() Kind

	// Outer returns the enclosing record, or nil if this is the
	// outermost (Global) record. This is the edge the chain walker
	// follows; the GC keeps it alive as an ownership edge, never a weak
	// back-pointer (spec.md §3 "Ownership").
	Outer() Record

	HasBinding(name string) bool
	CreateMutableBinding(name string, deletable, allowReuse bool) error
	CreateImmutableBinding(name string, strict bool) error
	InitializeBinding(name string, v host.Value) error
	GetBindingValue(name string, strict bool) (host.Value, error)
	SetMutableBinding(name string, v host.Value, strict bool) error
	DeleteBinding(name string) (bool, error)

	HasThisBinding() bool
	HasSuperBinding() bool
	// WithBaseObject returns the wrapped object and true iff this record
	// is an Object record created for a `with` statement; every other
	// record variant returns (nil, false).
	WithBaseObject() (host.Object, bool)
}
