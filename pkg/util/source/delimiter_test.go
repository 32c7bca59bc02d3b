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
package source

import (
	"strings"
	"testing"

	"github.com/consensys/go-calcconv/pkg/util/assert"
)

func Test_Delimiter_00(t *testing.T) {
	checkMatch(t, "()", 0, 0, 2)
	checkMatch(t, "()", 1, 0, 2)
}

func Test_Delimiter_01(t *testing.T) {
	checkMatch(t, "(x)^(2)", 0, 0, 3)
	checkMatch(t, "(x)^(2)", 2, 0, 3)
	checkMatch(t, "(x)^(2)", 4, 4, 7)
	checkMatch(t, "(x)^(2)", 6, 4, 7)
}

func Test_Delimiter_02(t *testing.T) {
	checkMatch(t, "((a)+(b))", 0, 0, 9)
	checkMatch(t, "((a)+(b))", 8, 0, 9)
	checkMatch(t, "((a)+(b))", 5, 5, 8)
	checkMatch(t, "((a)+(b))", 3, 1, 4)
}

func Test_Delimiter_03(t *testing.T) {
	checkMatch(t, "f(g(h(1)), 2) + 3", 1, 1, 13)
	checkMatch(t, "f(g(h(1)), 2) + 3", 12, 1, 13)
}

func Test_Delimiter_04(t *testing.T) {
	// Unmatched closer
	checkUnmatched(t, Parentheses, "x)", 1)
	checkUnmatched(t, Parentheses, "(x))", 3)
}

func Test_Delimiter_05(t *testing.T) {
	// Unmatched opener
	checkUnmatched(t, Parentheses, "(x", 0)
	checkUnmatched(t, Parentheses, "((x)", 0)
}

func Test_Delimiter_06(t *testing.T) {
	// Not a delimiter, or out of bounds
	checkUnmatched(t, Parentheses, "(x)", 1)
	checkUnmatched(t, Parentheses, "(x)", 3)
	checkUnmatched(t, Parentheses, "(x)", -1)
	checkUnmatched(t, Parentheses, "", 0)
}

func Test_Delimiter_07(t *testing.T) {
	// Brackets are not registered by default
	checkUnmatched(t, Parentheses, "[x]", 0)
}

// The parenthesis cases above, rerun with every delimiter pair substituted, to
// check the nesting rule generalises.
func Test_Delimiter_08(t *testing.T) {
	tables := NewDelimiters("()", "[]", "{}")
	//
	for _, pair := range []string{"()", "[]", "{}"} {
		r := strings.NewReplacer("(", pair[:1], ")", pair[1:])
		//
		checkMatchWith(t, tables, r.Replace("(x)^(2)"), 4, 4, 7)
		checkMatchWith(t, tables, r.Replace("((a)+(b))"), 8, 0, 9)
		checkMatchWith(t, tables, r.Replace("f(g(h(1)), 2) + 3"), 1, 1, 13)
		checkUnmatched(t, tables, r.Replace("(x))"), 3)
		checkUnmatched(t, tables, r.Replace("((x)"), 0)
	}
}

func Test_Delimiter_09(t *testing.T) {
	// Mixed pairs do not interfere with each other's nesting level
	tables := NewDelimiters("()", "[]")
	checkMatchWith(t, tables, "([a)(b])", 0, 0, 4)
	checkMatchWith(t, tables, "([a)(b])", 1, 1, 7)
}

func Test_Delimiter_10(t *testing.T) {
	checkPanics(t, func() { NewDelimiters("((") })
	checkPanics(t, func() { NewDelimiters("(") })
	checkPanics(t, func() { NewDelimiters("()", ")(") })
	checkPanics(t, func() { NewDelimiters("()", "(]") })
}

// Every opener in a well-formed string matches a span which starts and ends
// with a registered pair, and is internally balanced.
func Test_Delimiter_11(t *testing.T) {
	inputs := []string{
		"((x)^(2))^((y))",
		"pow((a), ((b)+(c)))",
		"()()(())",
		"f(a, g(b, h(c, (d))))",
	}
	//
	for _, input := range inputs {
		text := []rune(input)
		//
		for i, c := range text {
			if c != '(' && c != ')' {
				continue
			}
			//
			span, err := MatchDelimiter(text, i)
			assert.NoError(t, err)
			assert.Equal(t, '(', text[span.Start()])
			assert.Equal(t, ')', text[span.End()-1])
			assert.True(t, span.Start() == i || span.End()-1 == i)
			assert.True(t, balanced(Slice(text, span.Inner())), "inner %q unbalanced", string(Slice(text, span)))
		}
	}
}

func Test_Delimiter_12(t *testing.T) {
	// Same input, same answer.
	text := []rune("((a)+(b))")
	s1, _ := MatchDelimiter(text, 0)
	s2, _ := MatchDelimiter(text, 0)
	assert.Equal(t, s1, s2)
}

// ============================================================================
// Helpers
// ============================================================================

func checkMatch(t *testing.T, input string, position int, start int, end int) {
	t.Helper()
	checkMatchWith(t, Parentheses, input, position, start, end)
}

func checkMatchWith(t *testing.T, table *Delimiters, input string, position int, start int, end int) {
	t.Helper()
	//
	span, err := table.Match([]rune(input), position)
	assert.NoError(t, err, "matching %q at %d", input, position)
	assert.Equal(t, NewSpan(start, end), span, "matching %q at %d", input, position)
}

func checkUnmatched(t *testing.T, table *Delimiters, input string, position int) {
	t.Helper()
	//
	_, err := table.Match([]rune(input), position)
	e := assert.ErrorAs[*UnmatchedDelimiterError](t, err, "matching %q at %d", input, position)
	assert.Equal(t, position, e.Position)
}

func checkPanics(t *testing.T, fn func()) {
	t.Helper()
	//
	defer func() {
		assert.True(t, recover() != nil, "expected panic")
	}()
	//
	fn()
}

func balanced(text []rune) bool {
	level := 0
	//
	for _, c := range text {
		switch c {
		case '(':
			level++
		case ')':
			level--
		}
		//
		if level < 0 {
			return false
		}
	}
	//
	return level == 0
}
