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
package calcset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies a calculation set file format.
type Format uint8

// Supported formats.
const (
	FormatHCL Format = iota
	FormatJSON
	FormatCSV
)

// ParseFormat parses the name of a file format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "hcl":
		return FormatHCL, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	default:
		return 0, fmt.Errorf("unknown format %q (expected \"hcl\", \"json\" or \"csv\")", name)
	}
}

// FormatOf determines the format of a file from its extension.
func FormatOf(filename string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(filename), "."))
}

func (f Format) String() string {
	switch f {
	case FormatHCL:
		return "hcl"
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	default:
		return fmt.Sprintf("Format(%d)", f)
	}
}

// ReadFile reads a calculation set from a file, whose format is determined by
// its extension.
func ReadFile(filename string) (*Set, error) {
	format, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	//
	if format == FormatHCL {
		return ReadHCLFile(filename)
	}
	//
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	//
	defer file.Close()
	//
	if format == FormatJSON {
		return ReadJSON(file)
	}
	//
	return ReadCSV(file)
}

// Write a calculation set in a given format.  HCL is read-only.
func Write(w io.Writer, format Format, set *Set) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, set)
	case FormatCSV:
		return WriteCSV(w, set)
	default:
		return fmt.Errorf("cannot write %s calculation sets", format)
	}
}
