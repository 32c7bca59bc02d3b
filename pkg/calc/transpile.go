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
	log "github.com/sirupsen/logrus"
)

// pass is a single rewriting stage of a conversion pipeline.
type pass struct {
	name    string
	rewrite func([]rune) ([]rune, error)
}

// ToInstrument converts an expression written in the schema grammar into the
// instrument grammar.  The passes are: operators; infix powers into calls;
// function names; and, finally, references.  On failure, no partial result is
// returned and the error is a *TranspileError.
func ToInstrument(expr string) (string, error) {
	return run(expr,
		pass{"operators", func(text []rune) ([]rune, error) {
			return rewriteOperators(text, toInstrumentOps), nil
		}},
		pass{"powers", rewritePowerInfix},
		pass{"functions", func(text []rune) ([]rune, error) {
			return rewriteCalls(text, schemaToInstrumentName)
		}},
		pass{"references", referencesToInstrument},
	)
}

// ToSchema converts an expression written in the instrument grammar into the
// schema grammar.  Bare references are classified using the given set of known
// calculation names, which is consulted but never modified: registering the
// calculation being converted is the responsibility of the caller, and must
// happen only after its own expression has been converted.  The passes are:
// operators; function names; power calls into infix; and, finally,
// references.  On failure, no partial result is returned and the error is a
// *TranspileError.
func ToSchema(expr string, known *Names) (string, error) {
	return run(expr,
		pass{"operators", func(text []rune) ([]rune, error) {
			return rewriteOperators(text, toSchemaOps), nil
		}},
		pass{"functions", func(text []rune) ([]rune, error) {
			return rewriteCalls(text, instrumentToSchemaName)
		}},
		pass{"powers", rewritePowerCall},
		pass{"references", func(text []rune) ([]rune, error) {
			return referencesToSchema(text, known)
		}},
	)
}

func run(expr string, passes ...pass) (string, error) {
	text := []rune(expr)
	//
	for _, p := range passes {
		next, err := p.rewrite(text)
		if err != nil {
			log.Debugf("%s pass failed on %q: %v", p.name, string(text), err)
			return "", newTranspileError(expr, string(text), err)
		}
		//
		text = next
	}
	//
	return string(text), nil
}
