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

package langerr_test

import (
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/ecma-go/runtime/internal/langerr"
)

func TestNewReferenceIsReference(t *testing.T) {
	err := langerr.NewReference("%q is not defined", "x")
	qt.Assert(t, qt.IsTrue(langerr.IsReference(err)))
	qt.Assert(t, qt.IsFalse(langerr.IsType(err)))
	qt.Assert(t, qt.Equals(err.Error(), `ReferenceError: "x" is not defined`))
}

func TestNewTypeIsType(t *testing.T) {
	err := langerr.NewType("binding already exists for %q", "y")
	qt.Assert(t, qt.IsTrue(langerr.IsType(err)))
	qt.Assert(t, qt.IsFalse(langerr.IsReference(err)))
}

func TestWrappedErrorStillMatchesKind(t *testing.T) {
	inner := langerr.NewType("boom")
	wrapped := fmt.Errorf("while doing something: %w", inner)
	qt.Assert(t, qt.IsTrue(langerr.IsType(wrapped)))
}

func TestFatalPanicsWithFatalError(t *testing.T) {
	defer func() {
		r := recover()
		qt.Assert(t, qt.IsNotNil(r))
		_, ok := r.(*langerr.FatalError)
		qt.Assert(t, qt.IsTrue(ok))
	}()
	langerr.Fatal("invariant violated: %d", 42)
}
