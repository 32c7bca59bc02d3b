// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package calc

import (
	"slices"
	"strings"
	"unicode"

	"github.com/consensys/go-calcconv/pkg/util/source"
)

var (
	caret   = []rune(")^(")
	powName = []rune(PowFunction)
	powCall = []rune(PowFunction + "(")
)

// Rewrite every infix power "(base)^(exponent)" into the call form
// "pow(base, exponent)".  Both operands must be parenthesised.  When the base
// group is the argument list of a call (e.g. "pow(a, b)^(c)"), the whole call
// is taken as the base.  Each rewrite removes one caret and introduces none,
// hence restarting the search from the rewritten base terminates, and resolves
// powers nested inside either operand.  String literals are never searched.
func rewritePowerInfix(text []rune) ([]rune, error) {
	for from := 0; ; {
		plain := blankStrings(text)
		i := index(plain, caret, from)
		//
		if i < 0 {
			return text, nil
		}
		// Base is bounded by the group closing at i.
		base, err := source.MatchDelimiter(plain, i)
		if err != nil {
			return nil, err
		}
		// Exponent is bounded by the group opening at i+2.
		exponent, err := source.MatchDelimiter(plain, i+2)
		if err != nil {
			return nil, err
		}
		//
		start := base.Start()
		operand := source.Slice(text, base.Inner())
		// Check for a call
		if j := identifierStart(plain, start); j < start {
			operand = source.Slice(text, source.NewSpan(j, base.End()))
			start = j
		}
		//
		replacement := slices.Concat(powCall, operand, []rune(", "), source.Slice(text, exponent.Inner()), []rune(")"))
		text = slices.Concat(text[:start], replacement, text[exponent.End():])
		from = start
	}
}

// Rewrite every call "pow(base, exponent)" into the infix form
// "(base)^(exponent)".  The single space following the separating comma is
// dropped, making this the exact inverse of rewritePowerInfix for operands
// without a call prefix.  Whitespace between the name and its arguments is
// dropped, and string literals are never searched.
func rewritePowerCall(text []rune) ([]rune, error) {
	for from := 0; ; {
		plain := blankStrings(text)
		i, open := findCall(plain, from)
		//
		if i < 0 {
			return text, nil
		}
		//
		args, err := source.MatchDelimiter(plain, open)
		if err != nil {
			return nil, err
		}
		//
		inner := args.Inner()
		commas := topLevelCommas(source.Slice(text, inner))
		//
		if len(commas) != 1 {
			arity := len(commas) + 1
			if strings.TrimSpace(string(source.Slice(text, inner))) == "" {
				arity = 0
			}
			//
			return nil, &MalformedCallError{PowFunction, arity, source.NewSpan(i, args.End())}
		}
		//
		comma := inner.Start() + commas[0]
		base := text[inner.Start():comma]
		exponent := text[comma+1 : inner.End()]
		//
		if len(exponent) > 0 && exponent[0] == ' ' {
			exponent = exponent[1:]
		}
		//
		replacement := slices.Concat([]rune("("), base, caret, exponent, []rune(")"))
		text = slices.Concat(text[:i], replacement, text[args.End():])
		from = i
	}
}

// Find the next call to the power function at or after a given position,
// returning the positions of its name and of its opening parenthesis, or -1 for
// both if there is none.  A match inside some other name (e.g. "math.pow" or
// "power") is skipped.
func findCall(text []rune, from int) (int, int) {
	for {
		i := index(text, powName, from)
		if i < 0 {
			return -1, -1
		}
		//
		open := i + len(powName)
		for open < len(text) && unicode.IsSpace(text[open]) {
			open++
		}
		//
		if (i == 0 || !isIdentifierRune(text[i-1])) && open < len(text) && text[open] == '(' {
			return i, open
		}
		//
		from = i + 1
	}
}

// Determine the offsets of all commas within a given argument list which are
// not nested inside parentheses, brackets or string literals.
func topLevelCommas(args []rune) []int {
	var (
		commas []int
		depth  int
		quote  rune
	)
	//
	for i, c := range args {
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(' || c == '[':
			depth++
		case c == ')' || c == ']':
			depth--
		case c == ',' && depth == 0:
			commas = append(commas, i)
		}
	}
	//
	return commas
}

// Determine where the identifier (if any) ending immediately before a given
// position starts.  If there is no such identifier, the position itself is
// returned.
func identifierStart(text []rune, end int) int {
	start := end
	for start > 0 && isIdentifierRune(text[start-1]) {
		start--
	}
	// Identifiers start with a letter or underscore
	if start == end || text[start] == '.' || ('0' <= text[start] && text[start] <= '9') {
		return end
	}
	//
	return start
}

// Find the first occurrence of a pattern in the text at or after a given
// position, or -1 if there is none.
func index(text []rune, pattern []rune, from int) int {
	for i := from; i+len(pattern) <= len(text); i++ {
		if slices.Equal(text[i:i+len(pattern)], pattern) {
			return i
		}
	}
	//
	return -1
}
