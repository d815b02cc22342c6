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
	"github.com/consensys/go-symcalc/pkg/expr/identity"
	"github.com/consensys/go-symcalc/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] name [name]",
	Short: "check whether named expressions are algebraically equivalent.",
	Long: `Check whether two named expressions denote the same function by
	evaluating them at random points over a prime field.  Given a single name,
	the expression is checked against its own simplification.  Only polynomial
	and rational expressions can be checked.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 || len(args) > 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			cfg     = config.WithFlags(cmd)
			trials  = GetUint(cmd, "trials")
			entries = lookupEntries(args...)
			lhs     = entries[0].Expr
			rhs     expr.Expr
			what    string
		)
		//
		if len(entries) == 2 {
			rhs = entries[1].Expr
			what = fmt.Sprintf("%s and %s", entries[0].Name, entries[1].Name)
		} else {
			rhs = lhs.Simplify()
			what = fmt.Sprintf("%s and its simplification", entries[0].Name)
		}
		//
		log.Debugf("checking %s == %s using %d trials", lhs, rhs, trials)
		//
		ok, err := identity.Equivalent(lhs, rhs, trials)
		//
		switch {
		case err != nil:
			fmt.Printf("cannot check %s: %s\n", what, err)
			os.Exit(1)
		case ok:
			fmt.Printf("%s are %s\n", what, colour(cfg, termio.Green, "equivalent"))
		default:
			fmt.Printf("%s are %s\n", what, colour(cfg, termio.Red, "not equivalent"))
			os.Exit(1)
		}
	},
}

func colour(cfg Config, col termio.Colour, text string) string {
	if !cfg.Colour {
		return text
	}
	//
	return termio.NewAnsiEscape().Bold().Fg(col).Wrap(text)
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Uint("trials", config.Trials, "number of random points to evaluate at")
}
