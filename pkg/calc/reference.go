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
)

// Reserved containers of the schema grammar, used for values in the
// instrument's own scope.
const (
	// ExternalFields holds values supplied directly by the instrument.
	ExternalFields = "assessment"
	// ComputedValues holds the results of earlier calculations.
	ComputedValues = "calculations"
)

// Rewrite schema references into instrument references.  That is,
// container["field"] becomes [container][field], whilst the reserved forms
// assessment["field"] and calculations["field"] both become [field].  Single
// quotes are permitted, provided the closing quote matches the opening one.
func referencesToInstrument(text []rune) ([]rune, error) {
	var (
		ts  = tokenize(text)
		out = make([]rune, 0, len(text))
	)
	//
	for i := 0; i < len(ts.tokens); i++ {
		switch {
		case ts.Has(i, IDENTIFIER) && ts.Has(i+1, LBRACKET):
			container, field, end, err := ts.schemaReference(i)
			if err != nil {
				return nil, err
			}
			//
			if container == ExternalFields || container == ComputedValues {
				out = append(out, []rune(fmt.Sprintf("[%s]", field))...)
			} else {
				out = append(out, []rune(fmt.Sprintf("[%s][%s]", container, field))...)
			}
			//
			i = end
		case ts.Has(i, LBRACKET) || ts.Has(i, RBRACKET):
			return nil, ts.malformed(i, i, "bracket outside of a reference")
		default:
			out = append(out, []rune(ts.Text(i))...)
		}
	}
	//
	return out, nil
}

// Rewrite instrument references into schema references.  That is,
// [container][field] becomes container["field"], whilst a bare [name] becomes
// calculations["name"] when name is already known to be a calculation, and
// assessment["name"] otherwise.
func referencesToSchema(text []rune, known *Names) ([]rune, error) {
	var (
		ts  = tokenize(text)
		out = make([]rune, 0, len(text))
	)
	//
	for i := 0; i < len(ts.tokens); i++ {
		switch {
		case ts.Has(i, LBRACKET):
			name, end, err := ts.instrumentName(i)
			if err != nil {
				return nil, err
			}
			//
			var replacement string
			//
			if ts.Has(end+1, LBRACKET) {
				field, last, err := ts.instrumentName(end + 1)
				if err != nil {
					return nil, err
				}
				//
				replacement, end = fmt.Sprintf("%s[\"%s\"]", name, field), last
			} else if known.Contains(name) {
				replacement = fmt.Sprintf("%s[\"%s\"]", ComputedValues, name)
			} else {
				replacement = fmt.Sprintf("%s[\"%s\"]", ExternalFields, name)
			}
			//
			out = append(out, []rune(replacement)...)
			i = end
		case ts.Has(i, RBRACKET):
			return nil, ts.malformed(i, i, "unbalanced bracket")
		default:
			out = append(out, []rune(ts.Text(i))...)
		}
	}
	//
	return out, nil
}

// Parse a schema reference starting with the container identifier at index i,
// returning the container, the field and the index of the closing bracket.
// Whitespace is permitted inside the brackets.
func (p *tokenStream) schemaReference(i int) (string, string, int, error) {
	container := p.Text(i)
	j := p.skipSpace(i + 2)
	//
	if !p.Has(j, STRING) {
		return "", "", 0, p.malformed(i, j, "expected quoted field name")
	}
	//
	quoted := p.Text(j)
	field := quoted[1 : len(quoted)-1]
	k := p.skipSpace(j + 1)
	//
	switch {
	case !p.Has(k, RBRACKET):
		return "", "", 0, p.malformed(i, k, "expected closing bracket")
	case !isName(container):
		return "", "", 0, p.malformed(i, k, "container is not a plain name")
	case !isName(field):
		return "", "", 0, p.malformed(i, k, "field is not a plain name")
	}
	//
	return container, field, k, nil
}

// Parse a single bracketed instrument name starting at index i, returning the
// name and the index of its closing bracket.
func (p *tokenStream) instrumentName(i int) (string, int, error) {
	if !p.Has(i+1, IDENTIFIER) || !p.Has(i+2, RBRACKET) {
		return "", 0, p.malformed(i, i+2, "expected a bracketed name")
	}
	//
	name := p.Text(i + 1)
	if !isName(name) {
		return "", 0, p.malformed(i, i+2, "name is not a plain name")
	}
	//
	return name, i + 2, nil
}

func (p *tokenStream) skipSpace(i int) int {
	for p.Has(i, WSPACE) {
		i++
	}
	//
	return i
}

// Construct an error covering tokens i through j (clamped to the stream).
func (p *tokenStream) malformed(i int, j int, reason string) error {
	j = min(j, len(p.tokens)-1)
	span := p.Spanning(i, j)
	//
	return &MalformedReferenceError{string(p.text[span.Start():span.End()]), reason, span}
}
