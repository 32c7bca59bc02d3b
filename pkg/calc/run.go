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
	"errors"

	log "github.com/sirupsen/logrus"
)

// Run is a single conversion run over the calculations of one document.  It
// owns the set of calculation names converted so far, which is what allows a
// calculation to refer to the results of those declared before it (but never
// after it).  Runs are not safe for concurrent use; independent documents
// should each use their own run.
type Run struct {
	known *Names
}

// NewRun constructs a run with an empty set of known calculations.
func NewRun() *Run {
	return &Run{NewNames()}
}

// Known returns the calculations registered so far.
func (r *Run) Known() *Names {
	return r.known
}

// ToSchema converts a calculation from the instrument grammar into the schema
// grammar and then, if successful, registers its identifier so that later
// calculations see it as a computed value.  A calculation which fails is not
// registered.
func (r *Run) ToSchema(c Calculation) (Calculation, error) {
	if r.known.Contains(c.ID) {
		return Calculation{}, &DuplicateCalculationError{c.ID}
	}
	//
	if c.Method == MethodPython {
		expr, err := ToSchema(c.Expression, r.known)
		if err != nil {
			return Calculation{}, annotate(err, c)
		}
		//
		c.Expression = expr
	}
	//
	r.known.Add(c.ID)
	//
	return c, nil
}

// ToInstrument converts a calculation from the schema grammar into the
// instrument grammar.
func (r *Run) ToInstrument(c Calculation) (Calculation, error) {
	if c.Method == MethodPython {
		expr, err := ToInstrument(c.Expression)
		if err != nil {
			return Calculation{}, annotate(err, c)
		}
		//
		c.Expression = expr
	}
	//
	return c, nil
}

// TriggerToSchema converts a branching trigger against the calculations known
// to this run.
func (r *Run) TriggerToSchema(expr string) (string, error) {
	return TriggerToSchema(expr, r.known)
}

// Convert a single calculation in a given direction.
func (r *Run) Convert(dir Direction, c Calculation) (Calculation, error) {
	if dir == InstrumentToSchema {
		return r.ToSchema(c)
	}
	//
	return r.ToInstrument(c)
}

// ConvertAll converts a sequence of calculations in declaration order.  Each
// calculation is converted independently: one which fails is logged and
// skipped, and the remainder are still converted.  The successfully converted
// calculations are returned, along with the errors for those skipped.
func (r *Run) ConvertAll(dir Direction, calcs []Calculation) ([]Calculation, []error) {
	var (
		converted = make([]Calculation, 0, len(calcs))
		errs      []error
	)
	//
	for _, c := range calcs {
		nc, err := r.Convert(dir, c)
		if err != nil {
			log.Warnf("skipping calculation %q: %v", c.ID, err)
			//
			errs = append(errs, err)
			//
			continue
		}
		//
		log.Debugf("converted calculation %q (%s): %q", c.ID, dir, nc.Expression)
		//
		converted = append(converted, nc)
	}
	//
	return converted, errs
}

// Add the identifying calculation to a conversion error.
func annotate(err error, c Calculation) error {
	var terr *TranspileError
	//
	if errors.As(err, &terr) {
		return terr.Wrap("Skipping calculation with ID:", c.ID)
	}
	//
	return err
}
