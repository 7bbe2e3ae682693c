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

import "github.com/ecma-go/runtime/internal/host"

// binding is a named slot inside a Declarative record (spec.md §3
// "Binding"). An uninitialized binding has initialized == false and a
// zero Value; reading it fails with a reference error, writing it sets
// the value and flips initialized to true.
type binding struct {
	value       host.Value
	initialized bool
	mutable     bool
	deletable   bool
	// strict only matters for immutable bindings: it decides whether a
	// write attempt raises a TypeError or is silently dropped.
	strict bool
}

func newMutableBinding(deletable bool) *binding {
	return &binding{mutable: true, deletable: deletable}
}

func newImmutableBinding(strict bool) *binding {
	return &binding{mutable: false, deletable: false, strict: strict}
}
