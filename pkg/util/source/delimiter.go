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
	"fmt"
)

// Parentheses is the default delimiter table, which matches round brackets
// only.
var Parentheses = NewDelimiters("()")

// Delimiters is a table of (opening, closing) character pairs used for nested
// grouping.  Each character can be registered at most once, either as an
// opener or as a closer.
type Delimiters struct {
	// Maps each opening character to its closing counterpart.
	closers map[rune]rune
	// Maps each closing character to its opening counterpart.
	openers map[rune]rune
}

// NewDelimiters constructs a delimiter table from a given set of pairs, where
// each pair is a two character string such as "()" or "[]".  This panics if a
// pair is malformed, or a character is registered more than once.
func NewDelimiters(pairs ...string) *Delimiters {
	table := &Delimiters{make(map[rune]rune), make(map[rune]rune)}
	//
	for _, pair := range pairs {
		chars := []rune(pair)
		//
		if len(chars) != 2 || chars[0] == chars[1] {
			panic(fmt.Sprintf("invalid delimiter pair %q", pair))
		} else if table.IsOpener(chars[0]) || table.IsCloser(chars[0]) ||
			table.IsOpener(chars[1]) || table.IsCloser(chars[1]) {
			panic(fmt.Sprintf("delimiter pair %q overlaps existing pair", pair))
		}
		//
		table.closers[chars[0]] = chars[1]
		table.openers[chars[1]] = chars[0]
	}
	//
	return table
}

// IsOpener checks whether a given character is a registered opening delimiter.
func (p *Delimiters) IsOpener(c rune) bool {
	_, ok := p.closers[c]
	return ok
}

// IsCloser checks whether a given character is a registered closing delimiter.
func (p *Delimiters) IsCloser(c rune) bool {
	_, ok := p.openers[c]
	return ok
}

// Match finds the delimiter matching the one at a given position in the text,
// returning the span which covers the delimited region including both
// delimiters.  When the character at the position is an opener, the text is
// scanned forwards; when it is a closer, it is scanned backwards.  In either
// case, further occurrences of the same character increase the nesting level,
// whilst occurrences of its counterpart decrease it.  Matching succeeds when the
// level reaches zero.
func (p *Delimiters) Match(text []rune, position int) (Span, error) {
	if position < 0 || position >= len(text) {
		return Span{}, &UnmatchedDelimiterError{position, 0, "position out of bounds"}
	}
	//
	char := text[position]
	//
	if comp, ok := p.closers[char]; ok {
		if end, ok := scan(text, position, 1, char, comp); ok {
			return NewSpan(position, end+1), nil
		}
	} else if comp, ok := p.openers[char]; ok {
		if start, ok := scan(text, position, -1, char, comp); ok {
			return NewSpan(start, position+1), nil
		}
	} else {
		return Span{}, &UnmatchedDelimiterError{position, char, "not a delimiter"}
	}
	// Scan ran off the end (or start) of the text.
	return Span{}, &UnmatchedDelimiterError{position, char, "no matching delimiter"}
}

// MatchDelimiter matches a parenthesis at a given position in the text.  See
// Delimiters.Match for more details.
func MatchDelimiter(text []rune, position int) (Span, error) {
	return Parentheses.Match(text, position)
}

// Scan from a given starting position in a given direction, looking for the
// position at which the nesting level drops to zero.
func scan(text []rune, start int, delta int, char rune, comp rune) (int, bool) {
	level := 1
	//
	for i := start + delta; i >= 0 && i < len(text); i += delta {
		switch text[i] {
		case char:
			level++
		case comp:
			level--
		}
		//
		if level == 0 {
			return i, true
		}
	}
	//
	return 0, false
}

// UnmatchedDelimiterError is reported when a delimiter cannot be matched, either
// because the nesting never balances, or because the given position does not
// identify a registered delimiter.
type UnmatchedDelimiterError struct {
	// Position in the text where matching started.
	Position int
	// Character at that position (or zero when out of bounds).
	Char rune
	// Reason matching failed.
	Reason string
}

// Span returns the single character span at which matching started.
func (e *UnmatchedDelimiterError) Span() Span {
	return NewSpan(max(0, e.Position), max(0, e.Position)+1)
}

func (e *UnmatchedDelimiterError) Error() string {
	if e.Char == 0 {
		return fmt.Sprintf("unmatched delimiter at %d (%s)", e.Position, e.Reason)
	}
	//
	return fmt.Sprintf("unmatched delimiter '%c' at %d (%s)", e.Char, e.Position, e.Reason)
}
