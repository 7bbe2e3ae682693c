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

// ThisStatus is the tri-state `this`-binding state machine spec.md §4.4
// requires as an explicit enumeration — never overloaded onto the
// this_value slot with a sentinel, per spec.md §9's design note.
type ThisStatus int

const (
	// Lexical records (arrow functions) have no local `this`; it
	// resolves from the outer environment. A Lexical record never
	// transitions to another state.
	Lexical ThisStatus = iota
	// Uninitialized records (ordinary functions before their prologue
	// runs) fail a `this` read with a reference error.
	Uninitialized
	// Initialized records have an observable this_value. The only way
	// to reach this state from Uninitialized is BindThisValue.
	Initialized
)

// Function is a Function Environment Record (spec.md §4.4): a
// Declarative record plus `this`-binding state, the owning function
// object, a [[HomeObject]] for `super`, and [[NewTarget]]. Ported from
// original_source/boa/src/environment/function_environment_record.rs,
// which embeds a DeclarativeEnvironmentRecord and forwards every binding
// operation to it exactly as this type does.
type Function struct {
	*Declarative

	thisValue  host.Value
	thisStatus ThisStatus

	function   host.Object // the function object whose invocation created this record
	homeObject host.Object // nil means "undefined" (no super binding)
	newTarget  host.Object // nil means "undefined" (not a [[Construct]] invocation)
}

// NewFunction creates a Function record. status is the initial
// this_binding_status; initialThis, when non-nil, is bound immediately
// the way boa's FunctionEnvironmentRecord::new does when constructed
// with Some(this). A non-nil initialThis is accepted only with status
// Uninitialized; with any other status it is fatal. A record created
// directly with status Initialized and a nil initialThis starts
// Initialized with a nil this_value.
func NewFunction(outer Record, function host.Object, status ThisStatus, newTarget host.Object, initialThis host.Value) *Function {
	f := &Function{
		Declarative: NewDeclarative(outer),
		thisStatus:  status,
		function:    function,
		newTarget:   newTarget,
	}
	if initialThis != nil {
		if status != Uninitialized {
			langerr.Fatal("env: NewFunction given an initial this value for a non-Uninitialized record")
		}
		if err := f.BindThisValue(initialThis); err != nil {
			langerr.Fatal("env: BindThisValue failed during construction: %v", err)
		}
	}
	return f
}

func (f *Function) Kind() Kind { return FunctionKind }

// Function returns the function object this record was created for.
func (f *Function) Function() host.Object { return f.function }

// NewTarget returns the [[NewTarget]] value: the constructor object that
// was invoked with `new`, or nil for "undefined" (not a construct call).
func (f *Function) NewTarget() host.Object { return f.newTarget }

// HomeObject returns [[HomeObject]], or nil for "undefined".
func (f *Function) HomeObject() host.Object { return f.homeObject }

// SetHomeObject installs [[HomeObject]] for a method, enabling `super`.
func (f *Function) SetHomeObject(home host.Object) { f.homeObject = home }

// BindThisValue transitions Uninitialized -> Initialized, storing v.
// Calling it on a Lexical record is a programming error: arrow functions
// must never reach this path, since their `this` always resolves from
// the outer environment. Calling it on an already-Initialized record
// raises a reference error rather than silently overwriting this_value.
func (f *Function) BindThisValue(v host.Value) error {
	switch f.thisStatus {
	case Lexical:
		langerr.Fatal("env: bind_this_value called on a Lexical function record")
		return nil
	case Initialized:
		return langerr.NewReference("cannot bind to an initialised function")
	default: // Uninitialized
		f.thisValue = v
		f.thisStatus = Initialized
		return nil
	}
}

// GetThisBinding returns this_value for an Initialized record. Calling
// it on a Lexical record is a programming error — the caller was
// supposed to resolve `this` from the outer environment instead of
// asking this record for it. Calling it on Uninitialized raises a
// reference error.
func (f *Function) GetThisBinding() (host.Value, error) {
	switch f.thisStatus {
	case Lexical:
		langerr.Fatal("env: get_this_binding called on a Lexical function record")
		return nil, nil
	case Uninitialized:
		return nil, langerr.NewReference("must call super constructor before accessing 'this'")
	default: // Initialized
		return f.thisValue, nil
	}
}

// HasThisBinding is true iff this record's status is not Lexical.
func (f *Function) HasThisBinding() bool { return f.thisStatus != Lexical }

// HasSuperBinding is true iff the record is not Lexical and has a
// [[HomeObject]] that is an object — per spec.md §8 scenario 5, this
// returns false for a Lexical record regardless of home_object.
func (f *Function) HasSuperBinding() bool {
	if f.thisStatus == Lexical {
		return false
	}
	return f.homeObject != nil
}

// GetSuperBase returns [[HomeObject]]'s prototype, or nil ("undefined")
// if there is no home object.
func (f *Function) GetSuperBase() host.Object {
	if f.homeObject == nil {
		return nil
	}
	return f.homeObject.Prototype()
}

func (f *Function) WithBaseObject() (host.Object, bool) { return nil, false }
