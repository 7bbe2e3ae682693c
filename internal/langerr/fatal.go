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

package langerr

import (
	"fmt"

	"go.uber.org/zap"
)

// log is the package-wide structured logger for fatal/programming-error
// paths. It is a no-op logger by default; the host wires a real one in
// with SetLogger during engine startup, the way cuelang.org/go's runtime
// is threaded explicitly into the components that need it rather than
// reaching for a package-global config.
var log *zap.Logger = zap.NewNop()

// SetLogger installs the structured logger used for Fatal diagnostics.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	log = l
}

// FatalError marks a condition the spec treats as an engine bug rather
// than a script-visible failure: calling bind_this_value on a Lexical
// function record, a refcount underflow on PrimStr, or any other
// "impossible state machine transition". These are never returned as
// errors; Fatal panics with one, and the engine's top-level driver is the
// only place that should recover from it.
type FatalError struct {
	msg string
}

func (e *FatalError) Error() string { return e.msg }

// Fatal logs the diagnostic and panics with a *FatalError. Per spec §7,
// these conditions "signal engine bugs and crash the process with a
// diagnostic" — panic is that crash; recovery, if any, happens at the
// engine boundary, not inside the core.
func Fatal(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	log.Error("fatal runtime invariant violated", zap.String("detail", msg))
	panic(&FatalError{msg: msg})
}
