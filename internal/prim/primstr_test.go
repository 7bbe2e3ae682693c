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

package prim_test

import (
	"math"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/ecma-go/runtime/internal/prim"
)

func TestNewAndLen(t *testing.T) {
	s := prim.New("hello")
	qt.Assert(t, qt.Equals(s.AsString(), "hello"))
	qt.Assert(t, qt.Equals(s.Len(), 5))
	qt.Assert(t, qt.IsFalse(s.IsEmpty()))
}

func TestEmptyString(t *testing.T) {
	s := prim.New("")
	qt.Assert(t, qt.IsTrue(s.IsEmpty()))
	qt.Assert(t, qt.Equals(s.Len(), 0))
}

func TestRefcountTrajectory(t *testing.T) {
	var frees int
	prim.SetFreeHook(func() { frees++ })
	defer prim.SetFreeHook(nil)

	s := prim.New("hello")
	qt.Assert(t, qt.Equals(s.Refcount(), int64(1)))

	a := s.Clone()
	qt.Assert(t, qt.Equals(s.Refcount(), int64(2)))
	qt.Assert(t, qt.Equals(a.Refcount(), int64(2)))

	b := s.Clone()
	qt.Assert(t, qt.Equals(s.Refcount(), int64(3)))

	b.Drop()
	qt.Assert(t, qt.Equals(s.Refcount(), int64(2)))

	a.Drop()
	qt.Assert(t, qt.Equals(s.Refcount(), int64(1)))

	s.Drop()
	qt.Assert(t, qt.Equals(frees, 1))
}

func TestConcat(t *testing.T) {
	a := prim.New("hello")
	b := prim.New(", ")
	c := prim.New("world")

	got := prim.Concat(prim.Concat(a, b), c)
	qt.Assert(t, qt.Equals(got.AsString(), "hello, world"))
	qt.Assert(t, qt.Equals(got.Refcount(), int64(1)))
}

func TestPtrEqAndEquals(t *testing.T) {
	x := prim.New("abc")
	y := x.Clone()
	qt.Assert(t, qt.IsTrue(prim.PtrEq(x, y)))

	z := prim.New("abc")
	qt.Assert(t, qt.IsTrue(prim.Equals(x, z)))
}

func TestHashLaw(t *testing.T) {
	x := prim.New("same bytes")
	y := prim.New("same bytes")
	qt.Assert(t, qt.IsFalse(prim.PtrEq(x, y)))
	qt.Assert(t, qt.Equals(prim.Hash(x), prim.Hash(y)))
}

func TestIndexOf(t *testing.T) {
	cases := []struct {
		name      string
		self      string
		needle    string
		fromIndex int
		wantIndex int
		wantFound bool
	}{
		{"empty needle at bound", "", "", 0, 0, true},
		{"fromIndex beyond len", "abc", "", 5, 0, false},
		{"needle at start", "aaa", "aa", 0, 0, true},
		{"astral code unit index", "\U0001D30Cx", "x", 0, 2, true},
		{"first match", "ababab", "bab", 0, 1, true},
		{"match after fromIndex", "ababab", "bab", 2, 3, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			idx, ok := prim.IndexOf(prim.New(c.self), prim.New(c.needle), c.fromIndex)
			qt.Assert(t, qt.Equals(ok, c.wantFound))
			if c.wantFound {
				qt.Assert(t, qt.Equals(idx, c.wantIndex))
			}
		})
	}
}

func TestStringToNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", 0.0},
		{"  42 ", 42.0},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"inf", math.NaN()},
		{"0xFF", 255.0},
		{"abc", math.NaN()},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got := prim.StringToNumber(prim.New(c.in))
			if math.IsNaN(c.want) {
				qt.Assert(t, qt.IsTrue(math.IsNaN(got)))
				return
			}
			qt.Assert(t, qt.Equals(got, c.want))
		})
	}
}
