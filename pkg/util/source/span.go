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
package source

import "fmt"

// Span represents a contiguous slice of an expression.  Rather than holding the
// slice itself, a span retains the physical indices so that errors can point
// back into the text they were raised against.
type Span struct {
	// The first character of this span in the original text.
	start int
	// One past the final character of this span in the original text.
	end int
}

// NewSpan constructs a new span whilst checking the internal invariants are
// maintained.
func NewSpan(start int, end int) Span {
	if start < 0 || start > end {
		panic(fmt.Sprintf("invalid span [%d,%d)", start, end))
	}

	return Span{start, end}
}

// Start returns the starting index of this span in the original text.
func (p Span) Start() int {
	return p.start
}

// End returns one past the last index of this span in the original text.
func (p Span) End() int {
	return p.end
}

// Length returns the number of characters covered by this span.
func (p Span) Length() int {
	return p.end - p.start
}

// Inner returns the span with its first and last characters removed.  This is
// useful for stripping the delimiters from a matched group.
func (p Span) Inner() Span {
	if p.Length() < 2 {
		return Span{p.start, p.start}
	}

	return Span{p.start + 1, p.end - 1}
}

// Slice extracts the characters covered by this span from a given text.
func Slice[T any](text []T, span Span) []T {
	return text[span.start:span.end]
}

func (p Span) String() string {
	return fmt.Sprintf("[%d,%d)", p.start, p.end)
}
