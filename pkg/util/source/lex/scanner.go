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
package lex

import (
	"cmp"
)

// Scanner is a function which accepts a prefix of the given items, returning
// the number of items accepted.  A return of zero signals failure.
type Scanner[T any] func(items []T) uint

// Or combines zero or more scanners such that the resulting scanner succeeds if
// any of the scanners succeeds.  Observe, however, that there is an implicit
// left-to-right order of evaluation.
func Or[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		for _, scanner := range scanners {
			if n := scanner(items); n > 0 {
				return n
			}
		}
		// fail
		return 0
	}
}

// Unit accepts a given sequence of items, in the order given.
func Unit[T comparable](chars ...T) Scanner[T] {
	return func(items []T) uint {
		if len(items) < len(chars) {
			return 0
		}
		//
		for i, c := range chars {
			if items[i] != c {
				return 0
			}
		}
		//
		return uint(len(chars))
	}
}

// Within accepts any single item within a given (inclusive) range.
func Within[T cmp.Ordered](lowest T, highest T) Scanner[T] {
	return func(items []T) uint {
		if len(items) != 0 && lowest <= items[0] && items[0] <= highest {
			return 1
		}
		// fail
		return 0
	}
}

// Any accepts exactly one item, whatever it is.
func Any[T any]() Scanner[T] {
	return func(items []T) uint {
		if len(items) != 0 {
			return 1
		}
		//
		return 0
	}
}

// Many matches zero or more of a given item.  Since a scanner returning zero
// signals failure, Many on its own fails when nothing matched.
func Many[T any](acceptor Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		index := uint(0)
		//
		for index < uint(len(items)) {
			n := acceptor(items[index:])
			if n == 0 {
				break
			}
			//
			index += n
		}
		//
		return index
	}
}

// Sequence matches all the scanners in order, such that each scanner consumes
// the input right after the previous one ends.  Every scanner must match at
// least one item.
func Sequence[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		n := uint(0)
		//
		for _, scanner := range scanners {
			m := scanner(items[n:])
			if m == 0 {
				return 0
			}
			//
			n += m
		}
		//
		return n
	}
}

// SequenceNullableLast matches all the scanners in order, as for Sequence,
// except that the final scanner is permitted to match nothing.  This is useful
// for things like identifiers, which consist of a leading character followed
// by zero or more others.
func SequenceNullableLast[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		n := uint(0)
		//
		for i, scanner := range scanners {
			m := scanner(items[n:])
			if m == 0 && i != len(scanners)-1 {
				return 0
			}
			//
			n += m
		}
		//
		return n
	}
}

// Quoted matches a quote item followed by everything up to and including the
// next occurrence of the same quote.  Quotes do not nest and there are no
// escapes.  An unterminated quote does not match.
func Quoted[T comparable](quote T) Scanner[T] {
	return func(items []T) uint {
		if len(items) == 0 || items[0] != quote {
			return 0
		}
		//
		for i := 1; i < len(items); i++ {
			if items[i] == quote {
				return uint(i + 1)
			}
		}
		// unterminated
		return 0
	}
}
