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
	"io"
	"os"

	"github.com/consensys/go-calcconv/pkg/calcset"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] calculation_file",
	Short: "convert the calculations of a calculation set.",
	Long: `Convert every calculation in a calculation set into a given grammar.
	Calculation sets can be given as hcl, json or csv (data dictionary) files.
	Calculations which cannot be converted are reported and skipped, with the
	remainder written as json (by default) or csv.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := getDirection(cmd)
		if err != nil {
			return err
		}
		//
		format, err := calcset.ParseFormat(GetString(cmd, "format"))
		if err != nil {
			return err
		}
		//
		set, err := calcset.ReadFile(args[0])
		if err != nil {
			return err
		}
		//
		converted, errs := calcset.Convert(dir, set)
		for _, err := range errs {
			printError(cmd.ErrOrStderr(), err)
		}
		//
		log.Debugf("converted %d of %d calculation(s) from %s", len(converted.Calculations), len(set.Calculations), args[0])
		//
		if err := writeSet(cmd.OutOrStdout(), GetString(cmd, "output"), format, converted); err != nil {
			return err
		}
		//
		if len(errs) > 0 {
			return reportedError{len(errs)}
		}
		//
		return nil
	},
}

// Write a calculation set to a given file or, when no file is given, to the
// command's output.
func writeSet(out io.Writer, filename string, format calcset.Format, set *calcset.Set) error {
	if filename == "" {
		return calcset.Write(out, format, set)
	}
	//
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	//
	if err := calcset.Write(file, format, set); err != nil {
		file.Close()
		return err
	}
	//
	return file.Close()
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("to", "t", "", "target grammar (\"schema\" or \"instrument\")")
	convertCmd.Flags().StringP("format", "f", "json", "output format (\"json\" or \"csv\")")
	convertCmd.Flags().StringP("output", "o", "", "output file (default is stdout)")
	//
	if err := convertCmd.MarkFlagRequired("to"); err != nil {
		panic(err)
	}
}
