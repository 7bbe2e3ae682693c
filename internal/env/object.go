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

// Object is an Object Environment Record (spec.md §4.3): bindings are
// properties of a wrapped host object rather than entries in a private
// map. Used for `with` statements and as the object half of the Global
// record (wrapping the global object's properties).
type Object struct {
	outer           Record
	bindings        host.Object
	withEnvironment bool
}

// NewObject creates an Object record wrapping bindings. withEnvironment
// marks a record created for a `with` statement: only such records
// return their bindings object from WithBaseObject.
func NewObject(outer Record, bindings host.Object, withEnvironment bool) *Object {
	return &Object{outer: outer, bindings: bindings, withEnvironment: withEnvironment}
}

func (o *Object) Kind() Kind    { return ObjectKind }
func (o *Object) Outer() Record { return o.outer }

func (o *Object) HasBinding(name string) bool {
	return o.bindings.Has(name)
}

// CreateMutableBinding installs a writable, enumerable data property,
// configurable iff deletable. allowReuse is accepted to satisfy Record
// uniformly but object bindings are properties, which ECMA-262 already
// allows redefining, so it is never consulted.
func (o *Object) CreateMutableBinding(name string, deletable, allowReuse bool) error {
	o.bindings.DefineOwnProperty(name, host.PropertyDescriptor{
		HasValue:     true,
		Value:        nil,
		Writable:     true,
		Enumerable:   true,
		Configurable: deletable,
	})
	return nil
}

// CreateImmutableBinding has no ECMA-262 meaning for an Object record
// (§8.1.1.2 does not define it); reaching this path is a compiler bug,
// since `let`/`const` only ever target Declarative-backed scopes.
func (o *Object) CreateImmutableBinding(name string, strict bool) error {
	langerr.Fatal("env: create_immutable_binding is not defined for an object record (name=%q)", name)
	return nil
}

func (o *Object) InitializeBinding(name string, v host.Value) error {
	return o.bindings.Set(name, v, false)
}

// GetBindingValue reads the wrapped object's property. If the property
// has since been deleted out from under the binding and strict is true,
// this raises a reference error rather than silently returning
// undefined.
func (o *Object) GetBindingValue(name string, strict bool) (host.Value, error) {
	v, ok := o.bindings.Get(name)
	if !ok {
		if strict {
			return nil, langerr.NewReference("%q is not defined", name)
		}
		return nil, nil
	}
	return v, nil
}

func (o *Object) SetMutableBinding(name string, v host.Value, strict bool) error {
	return o.bindings.Set(name, v, strict)
}

func (o *Object) DeleteBinding(name string) (bool, error) {
	return o.bindings.Delete(name), nil
}

func (o *Object) HasThisBinding() bool  { return false }
func (o *Object) HasSuperBinding() bool { return false }

// WithBaseObject returns the wrapped object iff this record was created
// for a `with` statement.
func (o *Object) WithBaseObject() (host.Object, bool) {
	if o.withEnvironment {
		return o.bindings, true
	}
	return nil, false
}
