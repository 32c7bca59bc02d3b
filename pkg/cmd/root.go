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
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "calcconv",
	Short: "A converter for calculation expressions.",
	Long: `A converter for calculation expressions, between the schema grammar
	(e.g. calc.lib.mean(assessment["a"]) and (x)^(2)) and the instrument
	grammar (e.g. mean([a]) and pow(x, 2)).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !GetFlag(cmd, "version") {
			return cmd.Help()
		}
		//
		out := cmd.OutOrStdout()
		fmt.Fprint(out, "calcconv ")
		//
		if Version != "" {
			// Built via "make"
			fmt.Fprintf(out, "%s", Version)
		} else if info, ok := debug.ReadBuildInfo(); ok {
			// Built via "go install"
			fmt.Fprintf(out, "%s", info.Main.Version)
		} else {
			// Unknown, perhaps "go run"
			fmt.Fprintf(out, "(unknown version)")
		}
		//
		fmt.Fprintln(out)
		//
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if _, ok := err.(reportedError); !ok {
			fmt.Fprintln(os.Stderr, err)
		}
		//
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}
