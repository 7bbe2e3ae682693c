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

package env_test

import "github.com/ecma-go/runtime/internal/host"

// fakeObject is a minimal in-memory host.Object used to exercise the
// Object and Global records without a real object system. Per spec.md
// §1, the object system is an external collaborator; this is a test
// double, not a reference implementation of one.
type fakeObject struct {
	props      map[string]host.PropertyDescriptor
	extensible bool
	proto      host.Object
}

func newFakeObject() *fakeObject {
	return &fakeObject{props: map[string]host.PropertyDescriptor{}, extensible: true}
}

func (o *fakeObject) Get(name string) (host.Value, bool) {
	d, ok := o.props[name]
	if !ok {
		return nil, false
	}
	return d.Value, true
}

func (o *fakeObject) Set(name string, v host.Value, strict bool) error {
	d, ok := o.props[name]
	if !ok {
		if !o.extensible {
			return nil
		}
		o.props[name] = host.PropertyDescriptor{HasValue: true, Value: v, Writable: true, Enumerable: true, Configurable: true}
		return nil
	}
	if !d.Writable {
		return nil
	}
	d.Value = v
	o.props[name] = d
	return nil
}

func (o *fakeObject) Has(name string) bool    { return o.HasOwn(name) }
func (o *fakeObject) HasOwn(name string) bool { _, ok := o.props[name]; return ok }

func (o *fakeObject) Delete(name string) bool {
	d, ok := o.props[name]
	if !ok {
		return true
	}
	if !d.Configurable {
		return false
	}
	delete(o.props, name)
	return true
}

func (o *fakeObject) GetOwnProperty(name string) (host.PropertyDescriptor, bool) {
	d, ok := o.props[name]
	return d, ok
}

func (o *fakeObject) DefineOwnProperty(name string, desc host.PropertyDescriptor) bool {
	o.props[name] = desc
	return true
}

func (o *fakeObject) IsExtensible() bool    { return o.extensible }
func (o *fakeObject) Prototype() host.Object { return o.proto }

// hostDescriptor builds a data-property descriptor for test fixtures.
func hostDescriptor(value host.Value, writable, enumerable, configurable bool) host.PropertyDescriptor {
	return host.PropertyDescriptor{
		HasValue:     true,
		Value:        value,
		Writable:     writable,
		Enumerable:   enumerable,
		Configurable: configurable,
	}
}
