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

// PowFunction is the name of the call form of the power operator in the
// instrument grammar.  It is handled by the power rewriter, and is therefore
// reserved: it may not appear in the function table.
const PowFunction = "pow"

// Function identifies a function which can be called from an expression in
// either grammar.  Each function has exactly one name in each grammar.
type Function uint8

// Known functions.
const (
	Min Function = iota
	Max
	Mean
	Median
	Sum
	Stdev
	Round
	RoundUp
	RoundDown
	Sqrt
	Abs
	DateDiff
	numFunctions
)

// Names used by the instrument grammar.
var instrumentNames = [numFunctions]string{
	Min:       "min",
	Max:       "max",
	Mean:      "mean",
	Median:    "median",
	Sum:       "sum",
	Stdev:     "stdev",
	Round:     "round",
	RoundUp:   "roundup",
	RoundDown: "rounddown",
	Sqrt:      "sqrt",
	Abs:       "abs",
	DateDiff:  "datediff",
}

// Fully-qualified names used by the schema grammar.
var schemaNames = [numFunctions]string{
	Min:       "min",
	Max:       "max",
	Mean:      "calc.lib.mean",
	Median:    "calc.lib.median",
	Sum:       "calc.lib.sum",
	Stdev:     "calc.lib.stdev",
	Round:     "calc.lib.round",
	RoundUp:   "calc.lib.roundup",
	RoundDown: "calc.lib.rounddown",
	Sqrt:      "math.sqrt",
	Abs:       "abs",
	DateDiff:  "calc.lib.datediff",
}

var (
	byInstrumentName = indexNames(instrumentNames)
	bySchemaName     = indexNames(schemaNames)
)

// Functions returns every known function, in declaration order.
func Functions() []Function {
	fns := make([]Function, numFunctions)
	for i := range fns {
		fns[i] = Function(i)
	}
	//
	return fns
}

// FunctionByInstrumentName looks up a function by its instrument grammar name.
func FunctionByInstrumentName(name string) (Function, bool) {
	fn, ok := byInstrumentName[name]
	return fn, ok
}

// FunctionBySchemaName looks up a function by its schema grammar name.
func FunctionBySchemaName(name string) (Function, bool) {
	fn, ok := bySchemaName[name]
	return fn, ok
}

// InstrumentName returns the name of this function in the instrument grammar.
func (f Function) InstrumentName() string {
	return instrumentNames[f]
}

// SchemaName returns the name of this function in the schema grammar.
func (f Function) SchemaName() string {
	return schemaNames[f]
}

func (f Function) String() string {
	if f >= numFunctions {
		return fmt.Sprintf("Function(%d)", f)
	}
	//
	return instrumentNames[f]
}

// Build the reverse index for one column of the function table, checking the
// column is injective.  Since both columns have exactly one entry per function,
// this makes the table a bijection between the two grammars.
func indexNames(names [numFunctions]string) map[string]Function {
	index := make(map[string]Function, len(names))
	//
	for i, name := range names {
		if name == "" {
			panic(fmt.Sprintf("function %d has no name", i))
		} else if name == PowFunction {
			panic(fmt.Sprintf("function %d uses reserved name %q", i, name))
		} else if j, ok := index[name]; ok {
			panic(fmt.Sprintf("functions %d and %d share name %q", j, i, name))
		}
		//
		index[name] = Function(i)
	}
	//
	return index
}
