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
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/consensys/go-calcconv/pkg/calc"
	"github.com/consensys/go-calcconv/pkg/calcset"
	"github.com/consensys/go-calcconv/pkg/util/assert"
	"github.com/consensys/go-calcconv/pkg/util/source"
	"github.com/consensys/go-calcconv/pkg/util/termio"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func Test_Expr_00(t *testing.T) {
	out, _, err := execute(t, "expr", "--to", "instrument", "(x)^(2)", `assessment["a"] <> 1`)
	assert.NoError(t, err)
	assert.Equal(t, "pow(x, 2)\n[a] != 1\n", out)
}

func Test_Expr_01(t *testing.T) {
	out, _, err := execute(t, "expr", "--to", "schema", "--known", "c1,c2", "[c1] + [q]", "pow([c2], 2)")
	assert.NoError(t, err)
	assert.Equal(t, "calculations[\"c1\"] + assessment[\"q\"]\n(calculations[\"c2\"])^(2)\n", out)
}

func Test_Expr_02(t *testing.T) {
	out, _, err := execute(t, "expr", "--to", "schema", "--trigger", "[a] = 1")
	assert.NoError(t, err)
	assert.Equal(t, "!(assessment[\"a\"] = 1)\n", out)
	//
	out, _, err = execute(t, "expr", "--to", "instrument", "--trigger", `!(assessment["a"] = 1)`)
	assert.NoError(t, err)
	assert.Equal(t, "[a] = 1\n", out)
}

func Test_Expr_03(t *testing.T) {
	// Failures are reported, but do not prevent later conversions.
	out, errOut, err := execute(t, "expr", "--to", "instrument", "foo(1)", "(x)^(2)")
	assert.Equal(t, "pow(x, 2)\n", out)
	assert.True(t, strings.Contains(errOut, "unknown function \"foo\""), errOut)
	assert.True(t, strings.HasSuffix(errOut, "    foo(1)\n    ^^^\n"), errOut)
	assert.Equal(t, 1, exitCode(err))
}

func Test_Expr_04(t *testing.T) {
	_, _, err := execute(t, "expr", "--to", "sideways", "x")
	assert.True(t, err != nil)
	assert.Equal(t, 2, exitCode(err))
	//
	_, _, err = execute(t, "expr", "x")
	assert.True(t, err != nil)
}

func Test_Expr_05(t *testing.T) {
	// Repeated and comma separated names accumulate.
	out, _, err := execute(t, "expr", "--to", "schema", "--known", "c1", "-k", "c2,c3", "[c1] + [c2] + [c3] + [q]")
	assert.NoError(t, err)
	assert.Equal(t, "calculations[\"c1\"] + calculations[\"c2\"] + calculations[\"c3\"] + assessment[\"q\"]\n", out)
}

func Test_Convert_00(t *testing.T) {
	filename := writeFile(t, "set.hcl", `
instrument {
  id = "urn:test"
}

calculation "total" {
  expression = "sum([q1], [q2])"
}

calculation "double" {
  expression = "[total] * 2"
}`)
	//
	out, _, err := execute(t, "convert", "--to", "schema", filename)
	assert.NoError(t, err)
	//
	set, err := calcset.ReadJSON(strings.NewReader(out))
	assert.NoError(t, err)
	//
	expected := &calcset.Set{
		Instrument: calcset.Instrument{ID: "urn:test"},
		Calculations: []calc.Calculation{
			{ID: "total", Type: "float", Expression: `calc.lib.sum(assessment["q1"], assessment["q2"])`},
			{ID: "double", Type: "float", Expression: `calculations["total"] * 2`},
		},
	}
	//
	if diff := cmp.Diff(expected, set); diff != "" {
		t.Errorf("convert mismatch (-want +got):\n%s", diff)
	}
}

func Test_Convert_01(t *testing.T) {
	filename := writeFile(t, "set.json", `{
  "instrument": {"id": "urn:test", "version": "1"},
  "calculations": [
    {"id": "a", "method": "python", "options": {"expression": "calc.lib.mean(assessment[\"x\"], 1)"}},
    {"id": "b", "method": "python", "options": {"expression": "if(1, 2, 3)"}}
  ]
}`)
	output := filepath.Join(t.TempDir(), "out.csv")
	//
	_, errOut, err := execute(t, "convert", "--to", "instrument", "--format", "csv", "--output", output, filename)
	assert.Equal(t, 1, exitCode(err))
	assert.True(t, strings.Contains(errOut, "Skipping calculation with ID:\n    b"), errOut)
	//
	set, err := calcset.ReadFile(output)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(set.Calculations))
	assert.Equal(t, "mean([x], 1)", set.Calculations[0].Expression)
}

func Test_Convert_02(t *testing.T) {
	_, _, err := execute(t, "convert", "--to", "schema", filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, 2, exitCode(err))
	//
	_, _, err = execute(t, "convert", "--to", "schema", "--format", "hcl", writeFile(t, "set.json", `{}`))
	assert.Equal(t, 2, exitCode(err))
}

func Test_Functions_00(t *testing.T) {
	out, _, err := execute(t, "functions")
	assert.NoError(t, err)
	//
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Heading, one line per function and power
	assert.Equal(t, len(calc.Functions())+2, len(lines))
	assert.True(t, strings.HasPrefix(lines[0], "INSTRUMENT"))
	assert.True(t, strings.Contains(out, "calc.lib.datediff"))
}

func Test_Version_00(t *testing.T) {
	out, _, err := execute(t, "--version")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "calcconv "))
}

func Test_Highlight_00(t *testing.T) {
	checkHighlight(t, "abc", source.NewSpan(1, 2), "    abc\n     ^\n")
	checkHighlight(t, "abc", source.NewSpan(3, 3), "    abc\n       ^\n")
	checkHighlight(t, "ab\ncd", source.NewSpan(3, 10), "    cd\n    ^^\n")
}

func checkHighlight(t *testing.T, text string, span source.Span, expected string) {
	t.Helper()
	//
	var buf bytes.Buffer
	//
	printHighlight(&buf, termio.NewStyler(&buf), text, span)
	assert.Equal(t, "\n"+expected, buf.String())
}

// Execute the root command with a given set of arguments, returning what was
// written to its output and error streams.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	//
	var out, errOut bytes.Buffer
	//
	resetFlags(rootCmd)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	//
	err := rootCmd.Execute()
	//
	return out.String(), errOut.String(), err
}

// Flags retain their values between executions, so must be reset.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if slice, ok := f.Value.(pflag.SliceValue); ok {
			_ = slice.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		//
		f.Changed = false
	}
	//
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	//
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func writeFile(t *testing.T, name string, contents string) string {
	filename := filepath.Join(t.TempDir(), name)
	//
	if err := os.WriteFile(filename, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	//
	return filename
}
