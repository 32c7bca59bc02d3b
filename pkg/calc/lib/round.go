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
package lib

import "math"

// Round a number to a given number of decimal places, with halves rounded away
// from zero.  Negative places round to the left of the decimal point.
func Round(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}

// RoundUp rounds a number to a given number of decimal places, such that the
// result is never below the original.
func RoundUp(x float64, places int) float64 {
	if rounded := Round(x, places); rounded >= x {
		return rounded
	}
	//
	return Round(x+halfUnit(places), places)
}

// RoundDown rounds a number to a given number of decimal places, such that the
// result is never above the original.
func RoundDown(x float64, places int) float64 {
	if rounded := Round(x, places); rounded <= x {
		return rounded
	}
	//
	return Round(x-halfUnit(places), places)
}

// Half of one unit in the last of the given decimal places.
func halfUnit(places int) float64 {
	return 0.5 * math.Pow(10, -float64(places))
}
