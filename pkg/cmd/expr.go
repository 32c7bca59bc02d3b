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
package cmd

import (
	"fmt"

	"github.com/consensys/go-calcconv/pkg/calc"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var exprCmd = &cobra.Command{
	Use:   "expr [flags] expression...",
	Short: "convert one or more expressions.",
	Long: `Convert one or more expressions into a given grammar, printing each
	converted expression on its own line.  When converting into the schema
	grammar, bare references to the calculations named with --known are taken as
	references to computed values.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := getDirection(cmd)
		if err != nil {
			return err
		}
		//
		var (
			known    = calc.NewNames(GetStringSlice(cmd, "known")...)
			trigger  = GetFlag(cmd, "trigger")
			failures = 0
		)
		//
		log.Debugf("converting %d expression(s) (%s) with %d known calculation(s)", len(args), dir, known.Len())
		//
		for _, expr := range args {
			converted, err := convertExpression(dir, expr, known, trigger)
			if err != nil {
				printError(cmd.ErrOrStderr(), err)
				//
				failures++
				//
				continue
			}
			//
			fmt.Fprintln(cmd.OutOrStdout(), converted)
		}
		//
		if failures > 0 {
			return reportedError{failures}
		}
		//
		return nil
	},
}

func convertExpression(dir calc.Direction, expr string, known *calc.Names, trigger bool) (string, error) {
	switch {
	case dir == calc.InstrumentToSchema && trigger:
		return calc.TriggerToSchema(expr, known)
	case dir == calc.InstrumentToSchema:
		return calc.ToSchema(expr, known)
	case trigger:
		return calc.TriggerToInstrument(expr)
	default:
		return calc.ToInstrument(expr)
	}
}

func init() {
	rootCmd.AddCommand(exprCmd)
	exprCmd.Flags().StringP("to", "t", "", "target grammar (\"schema\" or \"instrument\")")
	exprCmd.Flags().StringSliceP("known", "k", nil, "names of previously declared calculations")
	exprCmd.Flags().Bool("trigger", false, "convert branching triggers rather than calculations")
	//
	if err := exprCmd.MarkFlagRequired("to"); err != nil {
		panic(err)
	}
}
