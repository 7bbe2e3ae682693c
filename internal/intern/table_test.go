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

package intern_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/ecma-go/runtime/internal/intern"
)

func TestInternStableAndUnique(t *testing.T) {
	tbl := intern.New()
	a := tbl.Intern("foo")
	b := tbl.Intern("bar")
	c := tbl.Intern("foo")

	qt.Assert(t, qt.Equals(a, c))
	qt.Assert(t, qt.Not(qt.Equals(a, b)))
	qt.Assert(t, qt.Equals(tbl.Len(), 2))
}

func TestInternLookupMiss(t *testing.T) {
	tbl := intern.New()
	_, ok := tbl.Lookup("never-interned")
	qt.Assert(t, qt.IsFalse(ok))

	id := tbl.Intern("now-interned")
	got, ok := tbl.Lookup("now-interned")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(got, id))
}

func TestInternNameRoundtrip(t *testing.T) {
	tbl := intern.New()
	id := tbl.Intern("roundtrip")
	qt.Assert(t, qt.Equals(tbl.Name(id), "roundtrip"))
}

func TestInternNamePanicsOutOfRange(t *testing.T) {
	tbl := intern.New()
	defer func() {
		r := recover()
		qt.Assert(t, qt.IsNotNil(r))
	}()
	tbl.Name(42)
}
