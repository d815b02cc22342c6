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
	"errors"
	"fmt"
	"os"

	"github.com/consensys/go-symcalc/pkg/expr"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] name...",
	Short: "evaluate one or more named expressions.",
	Long: `Evaluate one or more named expressions after binding variables to
	values (e.g. -Dx=2).  With --partial, any expression which does not reduce
	to a constant is printed in its residual form instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		var unresolved *expr.UnresolvedEvaluationError
		//
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		partial := GetFlag(cmd, "partial")
		bindings, err := parseBindings(GetStringArray(cmd, "define"))
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		for _, e := range lookupEntries(args...) {
			val, err := expr.Evaluate(e.Expr, bindings)
			//
			switch {
			case err == nil:
				fmt.Printf("%s: %s\n", e.Name, val)
			case partial && errors.As(err, &unresolved):
				fmt.Printf("%s: %s\n", e.Name, renderExpr(cmd, unresolved.Residual))
			default:
				fmt.Printf("%s: %s\n", e.Name, err)
				os.Exit(1)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringArrayP("define", "D", []string{}, "bind a variable (e.g. -Dx=2)")
	evalCmd.Flags().Bool("partial", false, "print residual expressions rather than failing")
}
