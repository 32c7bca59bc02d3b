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
	"github.com/consensys/go-calcconv/pkg/calc"
	"github.com/consensys/go-calcconv/pkg/util/termio"
	"github.com/spf13/cobra"
)

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "list the functions which can be converted.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		table := termio.NewTablePrinter(2)
		table.AnsiEscapes(termio.NewStyler(out))
		table.SetHeading("INSTRUMENT", "SCHEMA")
		//
		for _, fn := range calc.Functions() {
			table.AddRow(fn.InstrumentName(), fn.SchemaName())
		}
		// Power is not in the table, but is converted all the same.
		table.AddRow(calc.PowFunction+"(b, e)", "(b)^(e)")
		//
		table.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(functionsCmd)
}
