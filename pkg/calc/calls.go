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

// Rename every called function (i.e. an identifier followed, possibly after
// whitespace, by an opening parenthesis) using a given lookup.  The power
// function is left alone, as are names immediately following an opening bracket
// (which are references, not calls).  Any other function unknown to the lookup
// is an error.
func rewriteCalls(text []rune, rename func(string) (string, bool)) ([]rune, error) {
	var (
		ts  = tokenize(text)
		out = make([]rune, 0, len(text))
	)
	//
	for i, token := range ts.tokens {
		name := ts.Text(i)
		//
		if token.Is(IDENTIFIER) && ts.Has(ts.skipSpace(i+1), LPAREN) && !ts.Has(i-1, LBRACKET) && name != PowFunction {
			renamed, ok := rename(name)
			if !ok {
				return nil, &UnknownFunctionError{name, token.Span}
			}
			//
			name = renamed
		}
		//
		out = append(out, []rune(name)...)
	}
	//
	return out, nil
}

// Keywords which may precede a parenthesised group without forming a call, and
// which are therefore kept as written.
var (
	schemaKeywords     = map[string]bool{"and": true, "or": true, "not": true, "if": true, "else": true, "in": true, "is": true}
	instrumentKeywords = map[string]bool{"and": true, "or": true}
)

func schemaToInstrumentName(name string) (string, bool) {
	if fn, ok := FunctionBySchemaName(name); ok {
		return fn.InstrumentName(), true
	} else if schemaKeywords[name] {
		return name, true
	}
	//
	return "", false
}

func instrumentToSchemaName(name string) (string, bool) {
	if fn, ok := FunctionByInstrumentName(name); ok {
		return fn.SchemaName(), true
	} else if instrumentKeywords[name] {
		return name, true
	}
	//
	return "", false
}
