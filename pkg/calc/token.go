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

	"github.com/consensys/go-calcconv/pkg/util/source"
	"github.com/consensys/go-calcconv/pkg/util/source/lex"
)

// Token kinds recognised in expressions of either grammar.  Lexing is total:
// any character not covered by a more specific rule becomes an OTHER token, so
// concatenating the tokens always reproduces the original text.
const (
	WSPACE uint = iota
	NUMBER
	IDENTIFIER
	STRING
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	COMMA
	OTHER
)

var (
	digit      = lex.Within('0', '9')
	letter     = lex.Or(lex.Within('a', 'z'), lex.Within('A', 'Z'), lex.Unit('_'))
	identifier = lex.SequenceNullableLast(letter, lex.Many(lex.Or(letter, digit, lex.Unit('.'))))
	number     = lex.SequenceNullableLast(digit, lex.Many(lex.Or(digit, lex.Unit('.'))))
	whitespace = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\n'), lex.Unit('\r')))
)

var rules = []lex.LexRule[rune]{
	lex.Rule(whitespace, WSPACE),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(number, NUMBER),
	lex.Rule(lex.Or(lex.Quoted('"'), lex.Quoted('\'')), STRING),
	lex.Rule(lex.Unit('('), LPAREN),
	lex.Rule(lex.Unit(')'), RPAREN),
	lex.Rule(lex.Unit('['), LBRACKET),
	lex.Rule(lex.Unit(']'), RBRACKET),
	lex.Rule(lex.Unit(','), COMMA),
	lex.Rule(lex.Any[rune](), OTHER),
}

// tokenStream is a lexed expression, retaining the text so token contents can
// be recovered.
type tokenStream struct {
	text   []rune
	tokens []lex.Token
}

func tokenize(text []rune) tokenStream {
	return tokenStream{text, lex.NewLexer(text, rules...).Collect()}
}

// Text returns the characters covered by the ith token.
func (p *tokenStream) Text(i int) string {
	return string(source.Slice(p.text, p.tokens[i].Span))
}

// Has checks whether the ith token exists and has a given kind.
func (p *tokenStream) Has(i int, kind uint) bool {
	return i >= 0 && i < len(p.tokens) && p.tokens[i].Kind == kind
}

// Spanning returns the span from the start of the ith token to the end of the
// jth token.
func (p *tokenStream) Spanning(i int, j int) source.Span {
	return source.NewSpan(p.tokens[i].Span.Start(), p.tokens[j].Span.End())
}

// blankStrings returns a copy of the text in which every character of a string
// literal, quotes included, is replaced by a space.  Positions in the copy are
// positions in the original, so the copy can be searched and matched in place of
// the text without seeing delimiters inside literals.
func blankStrings(text []rune) []rune {
	plain := slices.Clone(text)
	//
	for _, token := range tokenize(text).tokens {
		if token.Is(STRING) {
			for i := token.Span.Start(); i < token.Span.End(); i++ {
				plain[i] = ' '
			}
		}
	}
	//
	return plain
}

// isName checks whether a string is a plain name, as permitted between the
// brackets of an instrument reference.  That is, a non-empty sequence of
// letters, digits and underscores.
func isName(name string) bool {
	if name == "" {
		return false
	}
	//
	for _, c := range name {
		if !isNameRune(c) {
			return false
		}
	}
	//
	return true
}

func isNameRune(c rune) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// isIdentifierRune additionally admits the dot used in qualified names.
func isIdentifierRune(c rune) bool {
	return isNameRune(c) || c == '.'
}
