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
	"github.com/consensys/go-symcalc/pkg/util/termio"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list the named expressions available.",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			cfg     = config.WithFlags(cmd)
			entries = Catalogue()
			table   = termio.NewTablePrinter(4, uint(len(entries)+1))
		)
		//
		if err := table.SetRow(0, "name", "variables", "expression", "summary"); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		table.SetRowEscape(0, termio.NewAnsiEscape().Bold())
		//
		for i, e := range entries {
			row := uint(i + 1)
			table.Set(0, row, e.Name)
			table.Set(1, row, string(expr.FreeVariables(e.Expr)))
			table.Set(2, row, e.Expr.String())
			table.Set(3, row, e.Summary)
			table.SetEscape(0, row, termio.NewAnsiEscape().Fg(termio.Cyan))
		}
		//
		for col := range table.Width() {
			table.AlignLeft(col)
		}
		//
		table.Colour(cfg.Colour)
		table.FitTo(termio.Width(os.Stdout))
		//
		if err := table.Write(os.Stdout); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
