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

// Names is the set of calculation identifiers which have been converted so far
// in a given conversion run.  A bare instrument reference to one of these names
// is a reference to a computed value; any other bare reference is to an
// external field.  The set only ever grows, and retains registration order.
type Names struct {
	index map[string]struct{}
	order []string
}

// NewNames constructs a set initially holding the given names.
func NewNames(names ...string) *Names {
	p := &Names{index: make(map[string]struct{})}
	//
	for _, n := range names {
		p.Add(n)
	}
	//
	return p
}

// Add registers a name, returning false if it was already present.
func (p *Names) Add(name string) bool {
	if p.Contains(name) {
		return false
	}
	//
	p.index[name] = struct{}{}
	p.order = append(p.order, name)
	//
	return true
}

// Contains checks whether a given name has been registered.
func (p *Names) Contains(name string) bool {
	if p == nil {
		return false
	}
	//
	_, ok := p.index[name]
	//
	return ok
}

// Len returns the number of registered names.
func (p *Names) Len() int {
	if p == nil {
		return 0
	}
	//
	return len(p.order)
}

// List returns the registered names in registration order.
func (p *Names) List() []string {
	if p == nil {
		return nil
	}
	//
	return append([]string(nil), p.order...)
}
