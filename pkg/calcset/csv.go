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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/consensys/go-calcconv/pkg/calc"
	log "github.com/sirupsen/logrus"
)

// Columns of a data dictionary, as written.
var dictionaryColumns = []string{
	"Variable / Field Name",
	"Form Name",
	"Section Header",
	"Field Type",
	"Field Label",
	"Choices, Calculations, OR Slider Labels",
	"Field Note",
	"Text Validation Type OR Show Slider Number",
	"Text Validation Min",
	"Text Validation Max",
	"Identifier?",
	"Branching Logic (Show field only if...)",
	"Required Field?",
	"Custom Alignment",
	"Question Number (surveys only)",
	"Matrix Group Name",
	"Matrix Ranking?",
	"Field Annotation",
}

// Canonical names of the data dictionary columns used for calculations.
const (
	columnName       = "variable_field_name"
	columnType       = "field_type"
	columnLabel      = "field_label"
	columnExpression = "choices_or_calculations"
)

// CalcFieldType is the field type marking a data dictionary row as a
// calculation.
const CalcFieldType = "calc"

// CalcFormName is the form under which calculations are written.
const CalcFormName = "calculations"

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	errNoHeader     = errors.New("data dictionary is empty")
)

// CanonicalName converts a column or field name into canonical form.  That is,
// lowercase with each run of other characters replaced by an underscore, and
// leading or trailing underscores removed.  A name starting with a digit is
// prefixed with "id_".  Since the same column has been titled in several ways,
// any choices column mentioning calculations is "choices_or_calculations", and
// any branching logic column is "branching_logic".
func CanonicalName(name string) string {
	x := nonAlphanumeric.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "_")
	x = strings.Trim(x, "_")
	//
	switch {
	case strings.HasPrefix(x, "choices") && strings.Contains(x, "calc"):
		x = columnExpression
	case strings.HasPrefix(x, "branching_logic"):
		x = "branching_logic"
	}
	//
	if x != "" && '0' <= x[0] && x[0] <= '9' {
		x = "id_" + x
	}
	//
	return x
}

// ReadCSV reads the calculations from a data dictionary.  Only rows whose field
// type is "calc" are calculations, and all other rows are ignored.  Since a
// data dictionary does not identify its instrument, the instrument of the
// returned set is empty.
func ReadCSV(r io.Reader) (*Set, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	//
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errNoHeader
	} else if err != nil {
		return nil, fmt.Errorf("failed to read data dictionary: %w", err)
	}
	//
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[CanonicalName(name)] = i
	}
	//
	for _, name := range []string{columnName, columnType, columnExpression} {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("data dictionary missing column %q (found %s)", name, strings.Join(header, ", "))
		}
	}
	//
	set := &Set{}
	//
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return set, nil
		} else if err != nil {
			return nil, fmt.Errorf("failed to read data dictionary: %w", err)
		}
		//
		field := func(column string) string {
			if i, ok := columns[column]; ok && i < len(record) {
				return record[i]
			}
			//
			return ""
		}
		//
		if strings.TrimSpace(field(columnType)) != CalcFieldType {
			continue
		}
		//
		id := CanonicalName(field(columnName))
		if id == "" {
			log.Warnf("skipping calculation without a name on line %d", line)
			continue
		}
		//
		set.Calculations = append(set.Calculations, calc.Calculation{
			ID:          id,
			Description: field(columnLabel),
			Type:        DefaultType,
			Method:      calc.MethodPython,
			Expression:  field(columnExpression),
		})
	}
}

// WriteCSV writes the calculations of a set as data dictionary rows.  A data
// dictionary can only hold expressions, hence HTSQL calculations are skipped.
func WriteCSV(w io.Writer, set *Set) error {
	writer := csv.NewWriter(w)
	//
	if err := writer.Write(dictionaryColumns); err != nil {
		return err
	}
	//
	for _, c := range set.Calculations {
		if c.Method != calc.MethodPython {
			log.Warnf("skipping %s calculation %q", c.Method, c.ID)
			continue
		}
		//
		row := make([]string, len(dictionaryColumns))
		row[0], row[1], row[3], row[4], row[5] = c.ID, CalcFormName, CalcFieldType, c.Description, c.Expression
		//
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	//
	writer.Flush()
	//
	return writer.Error()
}
