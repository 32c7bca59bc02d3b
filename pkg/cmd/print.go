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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/consensys/go-calcconv/pkg/calc"
	"github.com/consensys/go-calcconv/pkg/util/source"
	"github.com/consensys/go-calcconv/pkg/util/termio"
)

var highlight = termio.NewAnsiEscape().Bold().FgColour(termio.Red)

// Print a conversion error.  Where the error identifies the offending part of
// the expression, this is shown highlighted beneath the error.
func printError(w io.Writer, err error) {
	var terr *calc.TranspileError
	//
	if !errors.As(err, &terr) {
		fmt.Fprintln(w, err)
		return
	}
	//
	fmt.Fprintln(w, terr.Error())
	//
	if span, ok := terr.Span(); ok {
		printHighlight(w, termio.NewStyler(w), terr.Text, span)
	}
}

// Print the line of text enclosing a given span, with the span underlined.
func printHighlight(w io.Writer, styler termio.Styler, text string, span source.Span) {
	var (
		runes            = []rune(text)
		line, lineOffset = enclosingLine(runes, span.Start())
		offset           = span.Start() - lineOffset
		// Ensure don't overflow line
		length = max(1, min(len(line)-offset, span.Length()))
	)
	// Print separator line
	fmt.Fprintln(w)
	// Print line
	fmt.Fprintf(w, "    %s\n", string(line))
	// Print indent (todo: account for tabs)
	fmt.Fprint(w, strings.Repeat(" ", 4+offset))
	// Print highlight
	fmt.Fprintln(w, styler.Apply(highlight, strings.Repeat("^", length)))
}

// Determine the line enclosing a given index, along with the index at which
// that line starts.  An index at the very end is taken as part of the last
// line.
func enclosingLine(text []rune, index int) ([]rune, int) {
	start := 0
	//
	for i := 0; i < min(index, len(text)); i++ {
		if text[i] == '\n' {
			start = i + 1
		}
	}
	//
	end := start
	for end < len(text) && text[end] != '\n' {
		end++
	}
	//
	return text[start:end], start
}
