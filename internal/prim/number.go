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

package prim

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
)

// IndexOf implements ECMA-262 6.1.4.1 StringIndexOf. Indices are measured
// in UTF-16 code units (not UTF-8 bytes), so astral characters count as
// two units — required for spec-compatible behavior. fromIndex is
// assumed to be a non-negative integer, per the abstract operation's own
// precondition; the core never calls this with a negative fromIndex.
func IndexOf(self, needle PrimStr, fromIndex int) (int, bool) {
	selfUnits := utf16.Encode([]rune(self.AsString()))
	needleUnits := utf16.Encode([]rune(needle.AsString()))

	length := len(selfUnits)
	searchLen := len(needleUnits)

	if searchLen == 0 {
		if fromIndex <= length {
			return fromIndex, true
		}
		return 0, false
	}

	for i := fromIndex; i <= length-searchLen; i++ {
		if unitsEqual(selfUnits[i:i+searchLen], needleUnits) {
			return i, true
		}
	}
	return 0, false
}

func unitsEqual(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// isJSWhitespace reports whether r is in the set of code points
// ECMA-262's WhiteSpace and LineTerminator productions recognize, i.e. the
// same set the engine's String.prototype.trim uses (spec.md §4.1).
func isJSWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		0x00A0, 0x1680,
		0x2000, 0x2001, 0x2002, 0x2003, 0x2004, 0x2005, 0x2006, 0x2007, 0x2008, 0x2009, 0x200A,
		0x2028, 0x2029, 0x202F, 0x205F, 0x3000,
		0xFEFF:
		return true
	default:
		return false
	}
}

// StringToNumber converts s to an IEEE-754 double following spec.md
// §4.1's StrNumericLiteral-adjacent algorithm.
func StringToNumber(s PrimStr) float64 {
	trimmed := strings.TrimFunc(s.AsString(), isJSWhitespace)

	switch trimmed {
	case "":
		return 0.0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if v, ok := parseNonDecimalInteger(trimmed); ok {
		return v
	}

	// Guard against a permissive float parser accepting abbreviated
	// "inf"/"nan" forms that the spec's grammar does not: check the
	// first four characters case-insensitively before handing off.
	prefix := trimmed
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}
	switch strings.ToLower(prefix) {
	case "inf", "+inf", "-inf", "nan", "+nan", "-nan":
		return math.NaN()
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// parseNonDecimalInteger recognizes the 0x/0o/0b NonDecimalIntegerLiteral
// forms ECMA-262's StringNumericLiteral grammar accepts (e.g. "0xFF" ==
// 255), which a plain IEEE-754 float parser does not.
func parseNonDecimalInteger(s string) (float64, bool) {
	if len(s) < 3 || s[0] != '0' {
		return 0, false
	}
	var base int
	switch s[1] {
	case 'x', 'X':
		base = 16
	case 'o', 'O':
		base = 8
	case 'b', 'B':
		base = 2
	default:
		return 0, false
	}
	n, err := strconv.ParseUint(s[2:], base, 64)
	if err != nil {
		return 0, false
	}
	return float64(n), true
}
