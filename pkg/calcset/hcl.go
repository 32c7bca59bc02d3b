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

	"github.com/consensys/go-calcconv/pkg/calc"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// hclFile is the top-level structure of a calculation set written in HCL.  For
// example:
//
//	instrument {
//	  id      = "urn:phq"
//	  version = "1.0"
//	}
//
//	calculation "total" {
//	  description = "Total score"
//	  method      = python
//	  expression  = "sum([q1], [q2])"
//	}
type hclFile struct {
	Instrument   *hclInstrument   `hcl:"instrument,block"`
	Calculations []hclCalculation `hcl:"calculation,block"`
}

type hclInstrument struct {
	ID      string `hcl:"id"`
	Version string `hcl:"version,optional"`
}

type hclCalculation struct {
	ID          string `hcl:"id,label"`
	Description string `hcl:"description,optional"`
	Type        string `hcl:"type,optional"`
	Method      string `hcl:"method,optional"`
	Expression  string `hcl:"expression"`
}

// Variables available within a calculation set, naming the evaluation methods
// so they can be written without quotes.
var hclContext = &hcl.EvalContext{
	Variables: map[string]cty.Value{
		calc.MethodPython.String(): cty.StringVal(calc.MethodPython.String()),
		calc.MethodHTSQL.String():  cty.StringVal(calc.MethodHTSQL.String()),
	},
}

// ReadHCLFile reads a calculation set from an HCL file.
func ReadHCLFile(filename string) (*Set, error) {
	parser := hclparse.NewParser()
	//
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	//
	return decodeHCL(filename, file)
}

// ReadHCL reads a calculation set from HCL source text, where the filename is
// used only for reporting.
func ReadHCL(filename string, bytes []byte) (*Set, error) {
	parser := hclparse.NewParser()
	//
	file, diags := parser.ParseHCL(bytes, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	//
	return decodeHCL(filename, file)
}

func decodeHCL(filename string, file *hcl.File) (*Set, error) {
	var contents hclFile
	//
	if diags := gohcl.DecodeBody(file.Body, hclContext, &contents); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	//
	set := &Set{}
	//
	if contents.Instrument != nil {
		set.Instrument = Instrument{contents.Instrument.ID, contents.Instrument.Version}
	}
	//
	for _, c := range contents.Calculations {
		method, err := calc.ParseMethod(c.Method)
		if err != nil {
			return nil, fmt.Errorf("calculation %q in %s: %w", c.ID, filename, err)
		}
		//
		set.Calculations = append(set.Calculations, calc.Calculation{
			ID:          c.ID,
			Description: c.Description,
			Type:        typeOrDefault(c.Type),
			Method:      method,
			Expression:  c.Expression,
		})
	}
	//
	return set, nil
}

// DefaultType is the type of a calculation which does not declare one.
const DefaultType = "float"

func typeOrDefault(t string) string {
	if t == "" {
		return DefaultType
	}
	//
	return t
}
