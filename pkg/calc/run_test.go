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
	"github.com/google/go-cmp/cmp"
)

func Test_Run_00(t *testing.T) {
	r := NewRun()
	//
	c, err := r.ToSchema(Calculation{ID: "bmi", Type: "float", Expression: "[weight] / pow([height], 2)"})
	assert.NoError(t, err)
	assert.Equal(t, `assessment["weight"] / (assessment["height"])^(2)`, c.Expression)
	assert.Equal(t, "float", c.Type)
	assert.Equal(t, []string{"bmi"}, r.Known().List())
}

func Test_Run_01(t *testing.T) {
	// A calculation sees those registered before it, but not itself.
	r := NewRun()
	//
	c, err := r.ToSchema(Calculation{ID: "x", Expression: "[x] + 1"})
	assert.NoError(t, err)
	assert.Equal(t, `assessment["x"] + 1`, c.Expression)
	//
	c, err = r.ToSchema(Calculation{ID: "y", Expression: "[x] + 1"})
	assert.NoError(t, err)
	assert.Equal(t, `calculations["x"] + 1`, c.Expression)
}

func Test_Run_02(t *testing.T) {
	r := NewRun()
	//
	_, err := r.ToSchema(Calculation{ID: "a", Expression: "1"})
	assert.NoError(t, err)
	//
	_, err = r.ToSchema(Calculation{ID: "a", Expression: "2"})
	dup := assert.ErrorAs[*DuplicateCalculationError](t, err)
	assert.Equal(t, "a", dup.ID)
	assert.Equal(t, 1, r.Known().Len())
}

func Test_Run_03(t *testing.T) {
	// Failed calculations are not registered.
	r := NewRun()
	//
	_, err := r.ToSchema(Calculation{ID: "a", Expression: "foo(1)"})
	terr := assert.ErrorAs[*TranspileError](t, err)
	assert.Equal(t, 3, len(terr.Frames()))
	assert.Equal(t, Frame{"Skipping calculation with ID:", "a"}, terr.Frames()[2])
	assert.False(t, r.Known().Contains("a"))
	//
	c, err := r.ToSchema(Calculation{ID: "b", Expression: "[a]"})
	assert.NoError(t, err)
	assert.Equal(t, `assessment["a"]`, c.Expression)
}

func Test_Run_04(t *testing.T) {
	// HTSQL expressions pass through untouched, but are still registered.
	r := NewRun()
	query := "/measure{sum(value)}?code='x'"
	//
	c, err := r.ToSchema(Calculation{ID: "q", Method: MethodHTSQL, Expression: query})
	assert.NoError(t, err)
	assert.Equal(t, query, c.Expression)
	assert.True(t, r.Known().Contains("q"))
	//
	c, err = r.ToInstrument(Calculation{ID: "q", Method: MethodHTSQL, Expression: query})
	assert.NoError(t, err)
	assert.Equal(t, query, c.Expression)
}

func Test_Run_05(t *testing.T) {
	r := NewRun()
	input := []Calculation{
		{ID: "c1", Expression: "[q1] + 1"},
		{ID: "c2", Expression: "mean([c1], [q2])"},
		{ID: "bad", Expression: "unknown([q1])"},
		{ID: "c3", Expression: "[bad] != [c2]"},
	}
	expected := []Calculation{
		{ID: "c1", Expression: `assessment["q1"] + 1`},
		{ID: "c2", Expression: `calc.lib.mean(calculations["c1"], assessment["q2"])`},
		{ID: "c3", Expression: `assessment["bad"] <> calculations["c2"]`},
	}
	//
	actual, errs := r.ConvertAll(InstrumentToSchema, input)
	//
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("ConvertAll() mismatch (-want +got):\n%s", diff)
	}
	//
	assert.Equal(t, 1, len(errs))
	assert.Equal(t, KindUnknownFunction, assert.ErrorAs[*TranspileError](t, errs[0]).Kind())
	assert.Equal(t, []string{"c1", "c2", "c3"}, r.Known().List())
}

func Test_Run_06(t *testing.T) {
	r := NewRun()
	input := []Calculation{
		{ID: "c1", Description: "squared", Expression: `(assessment["a"])^(2)`},
		{ID: "c2", Expression: `foo(calculations["c1"])`},
		{ID: "c3", Expression: `calc.lib.sum(calculations["c1"], t["f"])`},
	}
	expected := []Calculation{
		{ID: "c1", Description: "squared", Expression: "pow([a], 2)"},
		{ID: "c3", Expression: "sum([c1], [t][f])"},
	}
	//
	actual, errs := r.ConvertAll(SchemaToInstrument, input)
	//
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("ConvertAll() mismatch (-want +got):\n%s", diff)
	}
	//
	assert.Equal(t, 1, len(errs))
	// Converting towards the instrument grammar registers nothing.
	assert.Equal(t, 0, r.Known().Len())
}

func Test_Method_00(t *testing.T) {
	checkMethod(t, "python", MethodPython)
	checkMethod(t, "", MethodPython)
	checkMethod(t, "HTSQL", MethodHTSQL)
	//
	_, err := ParseMethod("sql")
	assert.True(t, err != nil)
}

func Test_Direction_00(t *testing.T) {
	dir, err := ParseDirection("schema")
	assert.NoError(t, err)
	assert.Equal(t, InstrumentToSchema, dir)
	//
	dir, err = ParseDirection("instrument")
	assert.NoError(t, err)
	assert.Equal(t, SchemaToInstrument, dir)
	//
	_, err = ParseDirection("both")
	assert.True(t, err != nil)
}

func checkMethod(t *testing.T, name string, expected Method) {
	t.Helper()
	//
	method, err := ParseMethod(name)
	assert.NoError(t, err)
	assert.Equal(t, expected, method)
}
