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
	"github.com/consensys/go-calcconv/pkg/calc"
	log "github.com/sirupsen/logrus"
)

// Instrument identifies the instrument against which a set of calculations is
// evaluated.
type Instrument struct {
	ID      string
	Version string
}

// Set is an ordered collection of calculations for a single instrument.  The
// order is significant, since a calculation may only refer to those declared
// before it.
type Set struct {
	Instrument   Instrument
	Calculations []calc.Calculation
}

// Convert every calculation in a set in a given direction, using a fresh
// conversion run.  Calculations which cannot be converted are omitted from the
// resulting set, and their errors returned.
func Convert(dir calc.Direction, set *Set) (*Set, []error) {
	log.Debugf("converting %d calculations for %q (%s)", len(set.Calculations), set.Instrument.ID, dir)
	//
	calcs, errs := calc.NewRun().ConvertAll(dir, set.Calculations)
	//
	return &Set{set.Instrument, calcs}, errs
}
