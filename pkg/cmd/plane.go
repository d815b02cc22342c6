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

	"github.com/consensys/go-symcalc/pkg/geometry"
	"github.com/consensys/go-symcalc/pkg/util/termio"
	"github.com/spf13/cobra"
)

var planeCmd = &cobra.Command{
	Use:   "plane [flags] a b c d",
	Short: "describe the plane ax + by + cz = d.",
	Long: `Describe the plane ax + by + cz = d, including its unit normal and
	how it meets each of the coordinate axes.  Negative coefficients must follow
	"--" (e.g. symcalc plane -- 1 -2 4 8).`,
	Args: cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			cfg    = config.WithFlags(cmd)
			coeffs [4]float64
		)
		//
		for i, arg := range args {
			val, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				fmt.Printf("invalid coefficient \"%s\"\n", arg)
				os.Exit(2)
			}
			//
			coeffs[i] = val
		}
		//
		if coeffs[0] == 0 && coeffs[1] == 0 && coeffs[2] == 0 {
			fmt.Println("degenerate plane (a, b and c all zero)")
			os.Exit(1)
		}
		//
		plane := geometry.PlaneFromEquation(coeffs[0], coeffs[1], coeffs[2], coeffs[3])
		fmt.Printf("normal: %s\n", plane.Normal)
		fmt.Printf("point: %s\n", plane.Point)
		//
		table := termio.NewTablePrinter(2, 4)
		table.Set(0, 0, "axis")
		table.Set(1, 0, "intersection")
		table.SetRowEscape(0, termio.NewAnsiEscape().Bold())
		table.AlignLeft(1)
		//
		for i, ix := range plane.AxisIntersections() {
			row := uint(i + 1)
			table.Set(0, row, string(rune('x'+i)))
			//
			switch ix.Kind {
			case geometry.Parallel:
				table.Set(1, row, "none (parallel)")
			case geometry.Coincident:
				table.Set(1, row, "entire axis")
			default:
				table.Set(1, row, ix.Point.String())
			}
		}
		//
		table.Colour(cfg.Colour)
		//
		if err := table.Write(os.Stdout); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(planeCmd)
}
