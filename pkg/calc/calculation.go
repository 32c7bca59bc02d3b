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
	"strings"
)

// Method identifies how a calculation's expression is evaluated.
type Method uint8

const (
	// MethodPython expressions are written in the calculation grammars, and
	// are therefore rewritten on conversion.
	MethodPython Method = iota
	// MethodHTSQL expressions are database queries, which pass through
	// conversion untouched.
	MethodHTSQL
)

// ParseMethod parses the name of an evaluation method.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "python", "":
		return MethodPython, nil
	case "htsql":
		return MethodHTSQL, nil
	default:
		return 0, fmt.Errorf("unknown calculation method %q", name)
	}
}

func (m Method) String() string {
	switch m {
	case MethodPython:
		return "python"
	case MethodHTSQL:
		return "htsql"
	default:
		return fmt.Sprintf("Method(%d)", m)
	}
}

// Calculation is a named, derived value computed from an expression.
type Calculation struct {
	ID          string
	Description string
	// Type of the computed value (e.g. "float").
	Type       string
	Method     Method
	Expression string
}

// Direction identifies which way a conversion runs.
type Direction uint8

const (
	// SchemaToInstrument converts schema grammar into instrument grammar.
	SchemaToInstrument Direction = iota
	// InstrumentToSchema converts instrument grammar into schema grammar.
	InstrumentToSchema
)

// ParseDirection parses a direction from the name of its target grammar.
func ParseDirection(target string) (Direction, error) {
	switch strings.ToLower(target) {
	case "instrument":
		return SchemaToInstrument, nil
	case "schema":
		return InstrumentToSchema, nil
	default:
		return 0, fmt.Errorf("unknown target grammar %q (expected \"schema\" or \"instrument\")", target)
	}
}

func (d Direction) String() string {
	if d == SchemaToInstrument {
		return "schema->instrument"
	}
	//
	return "instrument->schema"
}

// DuplicateCalculationError is reported when a calculation identifier is
// registered twice within the same conversion run.
type DuplicateCalculationError struct {
	ID string
}

func (e *DuplicateCalculationError) Error() string {
	return fmt.Sprintf("duplicate calculation %q", e.ID)
}
