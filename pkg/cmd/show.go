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

	"github.com/consensys/go-symcalc/pkg/expr"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [flags] name...",
	Short: "print one or more named expressions.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		for _, e := range lookupEntries(args...) {
			fmt.Printf("%s: %s\n", e.Name, renderExpr(cmd, e.Expr))
			//
			if vars := expr.FreeVariables(e.Expr); len(vars) > 0 {
				fmt.Printf("  variables: %s\n", string(vars))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
