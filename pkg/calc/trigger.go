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
	"strings"

	"github.com/consensys/go-calcconv/pkg/util/source"
)

// Branching triggers have opposite polarity in the two grammars.  An instrument
// trigger states when a question is shown, whereas a schema trigger states when
// it is disabled.  Hence, converting a trigger also negates it.

// TriggerToSchema converts an instrument "show if" trigger into a schema
// "disable if" trigger of the form "!(...)".  An empty trigger stays empty.
func TriggerToSchema(expr string, known *Names) (string, error) {
	if strings.TrimSpace(expr) == "" {
		return "", nil
	}
	//
	converted, err := ToSchema(expr, known)
	if err != nil {
		return "", err
	}
	//
	return "!(" + converted + ")", nil
}

// TriggerToInstrument converts a schema "disable if" trigger into an instrument
// "show if" trigger.  A trigger of the form "!(...)" is unwrapped; any other
// trigger is negated.  An empty trigger stays empty.
func TriggerToInstrument(expr string) (string, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return "", nil
	}
	//
	text := []rune(trimmed)
	//
	if len(text) > 2 && text[0] == '!' && text[1] == '(' {
		span, err := source.MatchDelimiter(blankStrings(text), 1)
		if err != nil {
			return "", newTranspileError(expr, trimmed, err)
		}
		// Only strip when the negation covers the whole trigger.
		if span.End() == len(text) {
			return ToInstrument(string(source.Slice(text, span.Inner())))
		}
	}
	//
	converted, err := ToInstrument(trimmed)
	if err != nil {
		return "", err
	}
	//
	return "!(" + converted + ")", nil
}
