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

// Package intern provides the name-interning table behind the Global
// record's var-names set. It is adapted from
// cuelang.org/go/internal/core/runtime.Index, which interns CUE field
// labels into a dense int64 "Feature" domain; here it interns identifier
// names into a dense int64 domain so the Global record's var-names set can
// be a map[int64]struct{}. Each Global record owns its own Table;
// Declarative records key their bindings on plain strings and do not use
// this package.
package intern

// Table maps names to a dense, stable integer domain and back. It
// implements the same contract as cuelang.org/go/internal/core/adt.StringIndexer:
// for any pair of names s, t it returns the same id if and only if s == t.
//
// A Table is not safe for concurrent use, matching the single-threaded
// cooperative scheduling model the rest of the core assumes (spec §5).
type Table struct {
	byName map[string]int64
	names  []string
}

// New creates an empty interning table.
func New() *Table {
	return &Table{byName: map[string]int64{}}
}

// Intern returns the unique id for name, assigning a fresh one on first
// use.
func (t *Table) Intern(name string) int64 {
	if id, ok := t.byName[name]; ok {
		return id
	}
	id := int64(len(t.names))
	t.names = append(t.names, name)
	t.byName[name] = id
	return id
}

// Lookup returns the id already assigned to name, if any.
func (t *Table) Lookup(name string) (id int64, ok bool) {
	id, ok = t.byName[name]
	return id, ok
}

// Name returns the name previously interned as id. It panics if id was
// never produced by this table — that can only happen on a programming
// error (an id leaked from a different table), so it is not modeled as a
// recoverable failure.
func (t *Table) Name(id int64) string {
	if id < 0 || int(id) >= len(t.names) {
		panic("intern: id out of range")
	}
	return t.names[id]
}

// Len reports how many distinct names have been interned.
func (t *Table) Len() int { return len(t.names) }
