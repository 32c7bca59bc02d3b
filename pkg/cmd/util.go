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
	"strings"

	"github.com/consensys/go-calcconv/pkg/calc"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetStringSlice gets an expected string slice, or exits if an error arises.
func GetStringSlice(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringSlice(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// Determine the conversion direction from the "to" flag.
func getDirection(cmd *cobra.Command) (calc.Direction, error) {
	return calc.ParseDirection(strings.TrimSpace(GetString(cmd, "to")))
}

// reportedError signals a failure whose details have already been printed, and
// which therefore only determines the exit code.
type reportedError struct {
	failures int
}

func (e reportedError) Error() string {
	return fmt.Sprintf("%d conversion(s) failed", e.failures)
}

// Exit code for a given command error.  Failed conversions exit with 1, and
// anything else (e.g. unreadable input) with 2.
func exitCode(err error) int {
	if _, ok := err.(reportedError); ok {
		return 1
	}
	//
	return 2
}
