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
	"testing"

	"github.com/consensys/go-calcconv/pkg/util/assert"
)

func Test_Functions_00(t *testing.T) {
	// Every function maps to itself through both columns of the table.
	for _, fn := range Functions() {
		byInstrument, ok := FunctionByInstrumentName(fn.InstrumentName())
		assert.True(t, ok, "no instrument name for %s", fn)
		assert.Equal(t, fn, byInstrument)
		//
		bySchema, ok := FunctionBySchemaName(fn.SchemaName())
		assert.True(t, ok, "no schema name for %s", fn)
		assert.Equal(t, fn, bySchema)
	}
}

func Test_Functions_01(t *testing.T) {
	checkFunction(t, "mean", "calc.lib.mean")
	checkFunction(t, "sqrt", "math.sqrt")
	checkFunction(t, "min", "min")
	checkFunction(t, "datediff", "calc.lib.datediff")
}

func Test_Functions_02(t *testing.T) {
	_, ok := FunctionByInstrumentName(PowFunction)
	assert.False(t, ok)
	_, ok = FunctionBySchemaName(PowFunction)
	assert.False(t, ok)
	_, ok = FunctionByInstrumentName("calc.lib.mean")
	assert.False(t, ok)
	_, ok = FunctionBySchemaName("mean")
	assert.False(t, ok)
}

func Test_Functions_03(t *testing.T) {
	names := instrumentNames
	names[Max] = names[Min]
	checkPanics(t, func() { indexNames(names) })
	//
	names = schemaNames
	names[Abs] = PowFunction
	checkPanics(t, func() { indexNames(names) })
	//
	names[Abs] = ""
	checkPanics(t, func() { indexNames(names) })
}

func Test_Operators_00(t *testing.T) {
	assert.Equal(t, "a != b", string(rewriteOperators([]rune("a <> b"), toInstrumentOps)))
	assert.Equal(t, "a <> b", string(rewriteOperators([]rune("a != b"), toSchemaOps)))
	assert.Equal(t, "a <> b", string(rewriteOperators([]rune("a <> b"), toSchemaOps)))
	assert.Equal(t, "a<>b<>c", string(rewriteOperators([]rune("a!=b!=c"), toSchemaOps)))
}

func Test_Operators_01(t *testing.T) {
	table := []Operator{{"==", "="}, {"<>", "!="}}
	forward, reverse := compileOperators(table)
	//
	assert.Equal(t, "a = b != c", string(rewriteOperators([]rune("a == b <> c"), forward)))
	assert.Equal(t, "a == b <> c", string(rewriteOperators([]rune("a = b != c"), reverse)))
}

func Test_Operators_02(t *testing.T) {
	// Not injective
	checkPanics(t, func() { compileOperators([]Operator{{"<>", "!="}, {"~=", "!="}}) })
	// Empty spelling
	checkPanics(t, func() { compileOperators([]Operator{{"", "!="}}) })
	// Output of the first rewritten by the second
	checkPanics(t, func() { compileOperators([]Operator{{"<>", "!="}, {"!", "not"}}) })
}

func Test_Names_00(t *testing.T) {
	names := NewNames("b", "a")
	//
	assert.True(t, names.Add("c"))
	assert.False(t, names.Add("a"))
	assert.True(t, names.Contains("a"))
	assert.False(t, names.Contains("d"))
	assert.Equal(t, 3, names.Len())
	assert.Equal(t, []string{"b", "a", "c"}, names.List())
}

func Test_Names_01(t *testing.T) {
	var names *Names
	//
	assert.False(t, names.Contains("a"))
	assert.Equal(t, 0, names.Len())
	assert.Equal(t, 0, len(names.List()))
}

func Test_Names_02(t *testing.T) {
	names := NewNames("a")
	list := names.List()
	list[0] = "z"
	// Listing returns a copy
	assert.True(t, names.Contains("a"))
	assert.False(t, names.Contains("z"))
}

func checkFunction(t *testing.T, instrument string, schema string) {
	t.Helper()
	//
	fn, ok := FunctionByInstrumentName(instrument)
	assert.True(t, ok, "unknown function %q", instrument)
	assert.Equal(t, schema, fn.SchemaName())
	assert.Equal(t, instrument, fn.String())
}

func checkPanics(t *testing.T, fn func()) {
	t.Helper()
	//
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	//
	fn()
}
