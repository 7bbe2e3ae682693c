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

// Package langerr defines the two error kinds the runtime core is allowed to
// throw into user code (ReferenceError, TypeError) plus the fatal-diagnostic
// path for conditions the spec treats as engine bugs rather than script
// failures.
package langerr

import (
	"errors"
	"fmt"
)

// Kind distinguishes the ECMAScript error constructors a Bottom-style
// failure should surface as. The core never constructs the actual Error
// object (that's an external collaborator, see internal/host); it only
// carries enough information for the host to pick the right constructor.
type Kind int

const (
	// Reference marks failures that should surface as a ReferenceError:
	// reads of an uninitialized or missing binding, re-binding an
	// already-initialized function `this`.
	Reference Kind = iota
	// Type marks failures that should surface as a TypeError: duplicate
	// declarations, strict-mode writes to immutable bindings.
	Type
)

func (k Kind) String() string {
	switch k {
	case Reference:
		return "ReferenceError"
	case Type:
		return "TypeError"
	default:
		return "Error"
	}
}

// Error is a thrown value as seen by the core: a kind plus a
// human-readable message. It intentionally carries no source position —
// the parser that would produce one is out of scope for this core.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

// Is reports whether target is a *Error with the same Kind, so
// errors.Is(err, target) holds for any target built with the same
// constructor (NewReference or NewType), whatever its message.
func (e *Error) Is(target error) bool {
	var o *Error
	if errors.As(target, &o) {
		return o.Kind == e.Kind
	}
	return false
}

// NewReference builds a ReferenceError-kind failure.
func NewReference(format string, args ...interface{}) *Error {
	return &Error{Kind: Reference, msg: fmt.Sprintf(format, args...)}
}

// NewType builds a TypeError-kind failure.
func NewType(format string, args ...interface{}) *Error {
	return &Error{Kind: Type, msg: fmt.Sprintf(format, args...)}
}

// IsReference reports whether err is (or wraps) a ReferenceError-kind Error.
func IsReference(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == Reference
}

// IsType reports whether err is (or wraps) a TypeError-kind Error.
func IsType(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == Type
}

// Unwrap, Is and As are re-exported thinly the way
// cuelang.org/go/cue/errors wraps the standard errors package, so callers
// of this package never need to import "errors" directly alongside it.
func Unwrap(err error) error           { return errors.Unwrap(err) }
func Is(err, target error) bool        { return errors.Is(err, target) }
func As(err error, target interface{}) bool { return errors.As(err, target) }
