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

import (
	"math"
	"slices"
)

// Sum of a sequence of numbers, which is zero when there are none.
func Sum(data ...float64) float64 {
	var sum float64
	//
	for _, x := range data {
		sum += x
	}
	//
	return sum
}

// Mean of a sequence of numbers, which is zero when there are none.
func Mean(data ...float64) float64 {
	if len(data) == 0 {
		return 0
	}
	//
	return Sum(data...) / float64(len(data))
}

// Median of a sequence of numbers.  For an even number of items, this is the
// mean of the middle two.  There is no median of an empty sequence, in which
// case false is returned.
func Median(data ...float64) (float64, bool) {
	n := len(data)
	if n == 0 {
		return 0, false
	}
	//
	sorted := slices.Clone(data)
	slices.Sort(sorted)
	//
	if n%2 == 1 {
		return sorted[n/2], true
	}
	//
	return (sorted[n/2-1] + sorted[n/2]) / 2, true
}

// Stdev computes the population standard deviation of a sequence of numbers,
// which is zero when there are fewer than two.
func Stdev(data ...float64) float64 {
	n := len(data)
	if n < 2 {
		return 0
	}
	//
	var (
		mean = Mean(data...)
		ss   float64
	)
	//
	for _, x := range data {
		ss += (x - mean) * (x - mean)
	}
	//
	return math.Sqrt(ss / float64(n))
}
