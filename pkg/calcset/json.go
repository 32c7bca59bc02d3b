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
	"encoding/json"
	"fmt"
	"io"

	"github.com/consensys/go-calcconv/pkg/calc"
)

type jsonSet struct {
	Instrument   jsonInstrument    `json:"instrument"`
	Calculations []jsonCalculation `json:"calculations"`
}

type jsonInstrument struct {
	ID      string `json:"id"`
	Version string `json:"version"`
}

type jsonCalculation struct {
	ID          string      `json:"id"`
	Description string      `json:"description"`
	Type        string      `json:"type"`
	Method      string      `json:"method"`
	Options     jsonOptions `json:"options"`
}

type jsonOptions struct {
	Expression string `json:"expression"`
}

// ReadJSON reads a calculation set in JSON form.
func ReadJSON(r io.Reader) (*Set, error) {
	var contents jsonSet
	//
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	//
	if err := decoder.Decode(&contents); err != nil {
		return nil, fmt.Errorf("failed to read calculation set: %w", err)
	}
	//
	set := &Set{Instrument: Instrument{contents.Instrument.ID, contents.Instrument.Version}}
	//
	for i, c := range contents.Calculations {
		if c.ID == "" {
			return nil, fmt.Errorf("calculation %d has no identifier", i)
		}
		//
		method, err := calc.ParseMethod(c.Method)
		if err != nil {
			return nil, fmt.Errorf("calculation %q: %w", c.ID, err)
		}
		//
		set.Calculations = append(set.Calculations, calc.Calculation{
			ID:          c.ID,
			Description: c.Description,
			Type:        typeOrDefault(c.Type),
			Method:      method,
			Expression:  c.Options.Expression,
		})
	}
	//
	return set, nil
}

// WriteJSON writes a calculation set in (indented) JSON form.
func WriteJSON(w io.Writer, set *Set) error {
	contents := jsonSet{
		Instrument:   jsonInstrument{set.Instrument.ID, set.Instrument.Version},
		Calculations: make([]jsonCalculation, len(set.Calculations)),
	}
	//
	for i, c := range set.Calculations {
		contents.Calculations[i] = jsonCalculation{c.ID, c.Description, c.Type, c.Method.String(),
			jsonOptions{c.Expression}}
	}
	//
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	//
	return encoder.Encode(contents)
}
