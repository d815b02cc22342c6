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

	"github.com/consensys/go-symcalc/pkg/util"
	"github.com/spf13/cobra"
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify [flags] name...",
	Short: "simplify one or more named expressions.",
	Long: `Simplify one or more named expressions by folding constants and
	applying algebraic identities.  Simplification is applied in a single
	bottom-up pass.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		for _, e := range lookupEntries(args...) {
			stats := util.NewPerfStats()
			simplified := e.Expr.Simplify()
			//
			stats.Log(fmt.Sprintf("Simplifying %s", e.Name))
			fmt.Printf("%s: %s\n", e.Name, renderExpr(cmd, simplified))
		}
	},
}

func init() {
	rootCmd.AddCommand(simplifyCmd)
}
