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
	"github.com/consensys/go-symcalc/pkg/plot"
	"github.com/consensys/go-symcalc/pkg/util"
	"github.com/consensys/go-symcalc/pkg/util/termio"
	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample [flags] name",
	Short: "tabulate a named expression over a range of values.",
	Long: `Sample a named expression over a range of values of one variable,
	printing a table of the results.  Any other variables must be bound using
	-D (e.g. -Dy=2).`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			cfg      = config.WithFlags(cmd)
			entry    = lookupEntries(args[0])[0]
			variable = GetVariable(cmd, "var")
			domain   = plot.Domain{From: GetFloat(cmd, "from"), To: GetFloat(cmd, "to")}
			density  = GetUint(cmd, "density")
			bar      = GetUint(cmd, "bar")
		)
		//
		bindings, err := parseBindings(GetStringArray(cmd, "define"))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		stats := util.NewPerfStats()
		points, err := plot.Sample(expr.With(entry.Expr, bindings), variable, domain, float64(density))
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		stats.Log(fmt.Sprintf("Sampling %s (%d points)", entry.Name, len(points)))
		//
		table := plot.Table(points, variable, entry.Name, bar)
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
	rootCmd.AddCommand(sampleCmd)
	sampleCmd.Flags().String("var", config.Variable, "variable to sweep")
	sampleCmd.Flags().Float64("from", -1, "start of range (inclusive)")
	sampleCmd.Flags().Float64("to", 1, "end of range (exclusive)")
	sampleCmd.Flags().Uint("density", config.Density, "number of samples per unit")
	sampleCmd.Flags().Uint("bar", config.BarWidth, "width of bars (zero to disable)")
	sampleCmd.Flags().StringArrayP("define", "D", []string{}, "bind another variable (e.g. -Dy=2)")
}
