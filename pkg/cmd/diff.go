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
	"strconv"

	"github.com/consensys/go-symcalc/pkg/expr"
	"github.com/consensys/go-symcalc/pkg/util"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff [flags] name...",
	Short: "differentiate one or more named expressions.",
	Long: `Differentiate one or more named expressions with respect to a given
	variable.  The result is simplified after each differentiation.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			wrt   = parseWrt(GetString(cmd, "wrt"))
			order = GetUint(cmd, "order")
		)
		//
		for _, e := range lookupEntries(args...) {
			stats := util.NewPerfStats()
			//
			d, err := expr.DifferentiateN(e.Expr, wrt, order)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			//
			stats.Log(fmt.Sprintf("Differentiating %s", e.Name))
			fmt.Printf("%s: %s\n", e.Name, renderExpr(cmd, d))
		}
	},
}

// Numeric arguments are accepted and passed through as constants, so that
// differentiation reports them as invalid.
func parseWrt(arg string) expr.Expr {
	if val, err := strconv.ParseFloat(arg, 64); err == nil {
		return expr.Const(val)
	} else if v, err := parseVariable(arg); err == nil {
		return expr.Var(v)
	}
	//
	fmt.Printf("invalid variable \"%s\"\n", arg)
	os.Exit(2)
	// unreachable
	return nil
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().String("wrt", config.Variable, "variable to differentiate with respect to")
	diffCmd.Flags().UintP("order", "n", 1, "number of times to differentiate")
}
