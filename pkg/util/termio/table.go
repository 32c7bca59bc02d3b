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
package termio

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// TablePrinter is useful for printing left-aligned tables of text, with an
// optional heading row.
type TablePrinter struct {
	widths  []int
	heading []string
	rows    [][]string
	styler  Styler
}

// NewTablePrinter constructs a new table with a given number of columns.
func NewTablePrinter(columns int) *TablePrinter {
	return &TablePrinter{widths: make([]int, columns)}
}

// SetHeading sets the heading row, which is printed in bold when escapes are
// enabled.
func (p *TablePrinter) SetHeading(vals ...string) {
	p.heading = p.check(vals)
}

// AddRow appends a row to this table.
func (p *TablePrinter) AddRow(vals ...string) {
	p.rows = append(p.rows, p.check(vals))
}

// Height returns the number of rows in this table, excluding the heading.
func (p *TablePrinter) Height() int {
	return len(p.rows)
}

// AnsiEscapes determines whether escapes are used, based on the writer which
// the table will be printed to.
func (p *TablePrinter) AnsiEscapes(styler Styler) {
	p.styler = styler
}

// Print the table.
func (p *TablePrinter) Print(w io.Writer) {
	if p.heading != nil {
		p.printRow(w, p.heading, NewAnsiEscape().Bold())
	}
	//
	for _, row := range p.rows {
		p.printRow(w, row, NewAnsiEscape())
	}
}

func (p *TablePrinter) printRow(w io.Writer, row []string, escape AnsiEscape) {
	var builder strings.Builder
	//
	for j, col := range row {
		if j > 0 {
			builder.WriteString("  ")
		}
		// Last column is not padded
		if j+1 < len(row) {
			col += strings.Repeat(" ", p.widths[j]-utf8.RuneCountInString(col))
		}
		//
		builder.WriteString(p.styler.Apply(escape, col))
	}
	//
	fmt.Fprintln(w, strings.TrimRight(builder.String(), " "))
}

func (p *TablePrinter) check(vals []string) []string {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i, val := range vals {
		p.widths[i] = max(p.widths[i], utf8.RuneCountInString(val))
	}
	//
	return vals
}
