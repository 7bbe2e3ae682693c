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

// Package prim implements PrimStr, the engine's immutable, reference-
// counted primitive string. It is a Go port of the heap layout in
// original_source/boa/src/string.rs: a header holding a length, a
// refcount, and the UTF-8 bytes, reached through a single pointer-sized
// handle. Go has no flexible-array-member idiom, so the three fields live
// in a normal struct rather than header-plus-offset math. The handle is
// one pointer and the refcount sits beside the bytes, but the bytes are
// not stored inline: the header and its byte slice are two separate heap
// allocations.
package prim

import "github.com/ecma-go/runtime/internal/langerr"

// header is the shared state behind every PrimStr handle that points to
// it. Its bytes field refers to a second, separate allocation.
type header struct {
	length   int
	refcount int64
	bytes    []byte
}

// PrimStr is a handle to a header. It holds exactly one pointer, so
// sizeof(PrimStr) == sizeof(pointer) and the zero value (h == nil) is a
// valid "no string" sentinel the same size as a populated handle —
// mirroring Rust's null-pointer-optimized Option<JsString>.
type PrimStr struct {
	h *header
}

// onFree is a test-only hook invoked exactly once per allocation, right
// before it is released, so tests can assert "freed exactly once"
// (spec.md §8) without reaching into unexported state.
var onFree func()

// SetFreeHook installs f to be called whenever a PrimStr allocation's
// refcount drops to zero. Passing nil disables the hook. Intended for
// tests only.
func SetFreeHook(f func()) { onFree = f }

// New allocates a fresh PrimStr holding a copy of s, with refcount 1.
func New(s string) PrimStr {
	b := make([]byte, len(s))
	copy(b, s)
	return PrimStr{h: &header{length: len(b), refcount: 1, bytes: b}}
}

// Concat allocates a fresh PrimStr holding the concatenation of a and b's
// bytes, with refcount 1. a and b are left untouched (their refcounts are
// not affected).
func Concat(a, b PrimStr) PrimStr {
	total := a.Len() + b.Len()
	buf := make([]byte, total)
	copy(buf, a.AsString())
	copy(buf[a.Len():], b.AsString())
	return PrimStr{h: &header{length: total, refcount: 1, bytes: buf}}
}

// Clone returns a handle to the same allocation as s, incrementing its
// refcount. The refcount is a plain int64, not atomic: spec.md §5 assumes
// a single execution thread per context and PrimStr is documented as
// unsafe to share across threads.
func (s PrimStr) Clone() PrimStr {
	if s.h == nil {
		return s
	}
	s.h.refcount++
	return s
}

// Drop decrements s's refcount, releasing the allocation when it reaches
// zero. Calling Drop on a handle whose allocation has already reached
// zero refcount is a programming error (double free) and is fatal.
func (s PrimStr) Drop() {
	if s.h == nil {
		return
	}
	if s.h.refcount <= 0 {
		langerr.Fatal("prim: double drop of a released PrimStr allocation")
	}
	s.h.refcount--
	if s.h.refcount == 0 {
		if onFree != nil {
			onFree()
		}
		s.h.bytes = nil
	}
}

// AsString returns the UTF-8 content of s. The result is a copy of the
// bytes, so it stays valid after the handle is dropped.
func (s PrimStr) AsString() string {
	if s.h == nil {
		return ""
	}
	return string(s.h.bytes)
}

// Len returns the byte length of s. O(1): the length is stored in the
// header, never recomputed.
func (s PrimStr) Len() int {
	if s.h == nil {
		return 0
	}
	return s.h.length
}

// IsEmpty reports whether s has zero length.
func (s PrimStr) IsEmpty() bool { return s.Len() == 0 }

// Refcount reports the current refcount of s's allocation. Diagnostic
// only; scripts and the core never branch on it.
func (s PrimStr) Refcount() int64 {
	if s.h == nil {
		return 0
	}
	return s.h.refcount
}

// PtrEq reports whether a and b are handles to the same allocation.
func PtrEq(a, b PrimStr) bool { return a.h == b.h }

// Equals reports whether a and b hold byte-identical content, short-
// circuiting on PtrEq first.
func Equals(a, b PrimStr) bool {
	if PtrEq(a, b) {
		return true
	}
	return a.AsString() == b.AsString()
}

// Hash returns a hash of s's bytes. It is defined to equal the hash of
// s.AsString() for any equal-content handle, per spec.md §8's hash law:
// two PrimStr values compare Equals iff they hash the same (barring
// collisions), regardless of which allocation backs them.
func Hash(s PrimStr) uint64 {
	return fnv1a(s.AsString())
}

// fnv1a is the 64-bit FNV-1a hash. No repo in the retrieval pack vendors
// a non-cryptographic string hash library (xxhash, cityhash, …); FNV-1a
// is small enough, and exactly deterministic enough across runs, that
// pulling in a dependency for it would not serve any component this spec
// describes. See DESIGN.md.
func fnv1a(s string) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}
