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
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal checks whether a given writer is attached to a terminal, and
// hence whether escapes will be interpreted rather than shown.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	//
	return ok && term.IsTerminal(int(file.Fd()))
}

// Styler applies escapes to text only when writing to a terminal.
type Styler struct {
	enabled bool
}

// NewStyler constructs a styler for a given writer.
func NewStyler(w io.Writer) Styler {
	return Styler{IsTerminal(w)}
}

// Apply an escape to some text, if enabled.
func (p Styler) Apply(escape AnsiEscape, text string) string {
	if !p.enabled {
		return text
	}
	//
	return escape.Wrap(text)
}
