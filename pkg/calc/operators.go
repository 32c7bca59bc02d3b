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
	"fmt"
	"regexp"

	"github.com/consensys/go-calcconv/pkg/util/source"
)

// Operator pairs the spelling of an operator in the schema grammar with its
// spelling in the instrument grammar.
type Operator struct {
	Schema     string
	Instrument string
}

// Operators is the ordered operator table.  Substitutions towards the
// instrument grammar are applied in table order, and those towards the schema
// grammar in reverse table order.
var Operators = []Operator{
	{"<>", "!="},
}

// substitution is a compiled operator rewrite.
type substitution struct {
	pattern     *regexp.Regexp
	replacement string
}

var toInstrumentOps, toSchemaOps = compileOperators(Operators)

// Apply a sequence of substitutions to the text between string literals.  The
// literals themselves are copied unchanged.
func rewriteOperators(text []rune, subs []substitution) []rune {
	var (
		out   = make([]rune, 0, len(text))
		start = 0
	)
	//
	for _, token := range tokenize(text).tokens {
		if token.Is(STRING) {
			out = append(out, []rune(substitute(string(text[start:token.Span.Start()]), subs))...)
			out = append(out, source.Slice(text, token.Span)...)
			start = token.Span.End()
		}
	}
	//
	return append(out, []rune(substitute(string(text[start:]), subs))...)
}

func substitute(expr string, subs []substitution) string {
	for _, s := range subs {
		expr = s.pattern.ReplaceAllLiteralString(expr, s.replacement)
	}
	//
	return expr
}

// Compile the operator table into its forward and reverse substitutions,
// checking that each side is injective and that no substitution produces text
// which a later substitution in the same direction would rewrite again.  This
// panics if the table is not well formed.
func compileOperators(table []Operator) (forward []substitution, reverse []substitution) {
	schema := make(map[string]bool)
	instrument := make(map[string]bool)
	//
	for _, op := range table {
		if op.Schema == "" || op.Instrument == "" {
			panic(fmt.Sprintf("operator %v has an empty spelling", op))
		} else if schema[op.Schema] || instrument[op.Instrument] {
			panic(fmt.Sprintf("operator %v is not uniquely spelled", op))
		}
		//
		schema[op.Schema] = true
		instrument[op.Instrument] = true
		forward = append(forward, substitution{regexp.MustCompile(regexp.QuoteMeta(op.Schema)), op.Instrument})
	}
	//
	for i := len(table) - 1; i >= 0; i-- {
		op := table[i]
		reverse = append(reverse, substitution{regexp.MustCompile(regexp.QuoteMeta(op.Instrument)), op.Schema})
	}
	//
	checkNoRematch(forward)
	checkNoRematch(reverse)
	//
	return forward, reverse
}

func checkNoRematch(subs []substitution) {
	for i, s := range subs {
		for _, later := range subs[i+1:] {
			if later.pattern.MatchString(s.replacement) {
				panic(fmt.Sprintf("operator %q is rewritten again by %q", s.replacement, later.pattern))
			}
		}
	}
}
