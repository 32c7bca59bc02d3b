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
package lex

import "github.com/consensys/go-calcconv/pkg/util/source"

// Token associates a kind with a given range of characters in the text being
// scanned.
type Token struct {
	Kind uint
	Span source.Span
}

// Is checks whether this token has a given kind.
func (t Token) Is(kind uint) bool {
	return t.Kind == kind
}

// LexRule is simply a rule for associating groups of characters with a given
// tag.
//
// nolint
type LexRule[T any] struct {
	scanner Scanner[T]
	tag     uint
}

// Rule constructs a new lexing rule which maps matching characters to a given
// tag.
func Rule[T any](scanner Scanner[T], tag uint) LexRule[T] {
	return LexRule[T]{scanner, tag}
}

// Lexer provides a top-level construct for tokenising a given input.  Rules
// are tried in order at each position, and the first rule to match wins.
type Lexer[T any] struct {
	items []T
	index int
	rules []LexRule[T]
}

// NewLexer constructs a new lexer with a given set of lexing rules.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{input, 0, rules}
}

// Index returns the current index within the items array.
func (p *Lexer[T]) Index() int {
	return p.index
}

// Remaining determines how many items from the original sequence are left.
func (p *Lexer[T]) Remaining() int {
	return len(p.items) - p.index
}

// Next attempts to match the next token, returning false when no rule matches
// (which includes reaching the end of the input).
func (p *Lexer[T]) Next() (Token, bool) {
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > 0 {
			end := min(len(p.items), p.index+int(n))
			token := Token{r.tag, source.NewSpan(p.index, end)}
			p.index = end
			//
			return token, true
		}
	}
	//
	return Token{}, false
}

// Collect is a convenience function which lexes all remaining tokens in one
// go.  Lexing stops at the first position where no rule matches, which can be
// detected by checking Remaining().
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	//
	for {
		token, ok := p.Next()
		if !ok {
			return tokens
		}
		//
		tokens = append(tokens, token)
	}
}
