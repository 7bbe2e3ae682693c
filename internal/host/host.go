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

// Package host names the contracts the environment-record core consumes
// from the rest of the engine (object construction, property operations,
// error construction, value-to-string conversion) without designing their
// implementations. Per spec.md §1, the built-in object constructors
// (Error, ReferenceError, TypeError, …), the parser, the bytecode VM, and
// the garbage collector are EXTERNAL COLLABORATORS: this package is the
// seam between them and the core.
package host

import "github.com/ecma-go/runtime/internal/prim"

// Value stands in for the engine's tagged primitive/object union
// (spec.md §3 "Value"). The core only ever stores and forwards a Value;
// it never inspects its variants, so a concrete representation is out of
// scope here.
type Value interface{}

// PropertyDescriptor is the subset of ECMA-262 §6.2.6's Property
// Descriptor record the environment core needs to install and inspect
// object-record bindings and Global's var/function bindings.
type PropertyDescriptor struct {
	Value        Value
	Writable     bool
	Enumerable   bool
	Configurable bool
	HasValue     bool
}

// Object is the property-operation surface a Context exposes on a heap
// object. The Object Environment Record and the Global Environment
// Record's object half are implemented entirely in terms of this
// interface; the object's own semantics (prototype chain walking,
// [[Unscopables]], exotic behavior) belong to the external object system.
type Object interface {
	// Get returns the value of property name, or ok=false if absent.
	Get(name string) (Value, bool)
	// Set assigns property name. strict controls whether a failed write
	// (e.g. non-writable) is reported as an error or silently dropped.
	Set(name string, v Value, strict bool) error
	// Has reports whether name resolves on this object (its own
	// properties and, for exotic objects, its prototype chain).
	Has(name string) bool
	// HasOwn reports whether name is an own property of this object.
	HasOwn(name string) bool
	// Delete removes an own property, returning whether it succeeded.
	Delete(name string) bool
	// GetOwnProperty returns the descriptor for an own property.
	GetOwnProperty(name string) (PropertyDescriptor, bool)
	// DefineOwnProperty installs or updates an own property per desc.
	DefineOwnProperty(name string, desc PropertyDescriptor) bool
	// IsExtensible reports whether new own properties may be added.
	IsExtensible() bool
	// Prototype returns the object's [[Prototype]], or nil for null.
	Prototype() Object
}

// ErrorFactory constructs thrown error values for the built-in
// ReferenceError/TypeError constructors. Per spec.md §6, these are a
// convenience that RETURNS a failure result so callers can propagate it
// rather than throwing directly across the Go/ECMAScript boundary.
type ErrorFactory interface {
	ReferenceError(message string) error
	TypeError(message string) error
}

// ObjectConstructor creates heap objects with a given prototype. The
// Global Environment Record's object half and Function Environment
// Record's new_target/home_object slots are populated through values
// produced this way; the core never constructs an Object itself.
type ObjectConstructor interface {
	NewObject(proto Object) Object
}

// StandardObjects exposes the canonical prototypes the error-throwing
// path needs: the Error.prototype object and the per-native-error
// prototype (ReferenceError.prototype, TypeError.prototype, …).
type StandardObjects interface {
	ErrorPrototype() Object
	NativeErrorPrototype(kind string) Object
}

// Context bundles everything the environment core needs from the engine
// state (spec.md §1's "a Context object that bundles the engine state").
type Context interface {
	ObjectConstructor
	ErrorFactory
	StandardObjects
	// ToString converts a Value to its PrimStr representation using the
	// engine's full ToString abstract operation (ECMA-262 §7.1.17),
	// including invoking user-defined toString/valueOf — all of which is
	// out of scope here and implemented by the host.
	ToString(v Value) (prim.PrimStr, error)
}
