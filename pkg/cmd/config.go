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
	"os"

	"github.com/consensys/go-symcalc/pkg/util/termio"
	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"
)

// Config captures settings shared between commands.  Defaults are taken from
// the environment, and can be overridden by flags.
type Config struct {
	// Number of samples per unit when sampling.
	Density uint
	// Default variable for differentiation and sampling.
	Variable string
	// Number of random points used for identity checks.
	Trials uint
	// Width of bars drawn when sampling (zero for none).
	BarWidth uint
	// Whether ANSI colours should be used.
	Colour bool
}

// DefaultConfig reads the default configuration from the environment.  Colour
// is disabled when NO_COLOR is set, or when stdout is not a terminal.
func DefaultConfig() Config {
	return Config{
		Density:  positive(env.Int("SYMCALC_DENSITY", 10), 10),
		Variable: env.Str("SYMCALC_VARIABLE", "x"),
		Trials:   positive(env.Int("SYMCALC_TRIALS", 32), 32),
		BarWidth: uint(max(env.Int("SYMCALC_BAR_WIDTH", 20), 0)),
		Colour:   !env.Bool("NO_COLOR") && termio.IsTerminal(os.Stdout),
	}
}

// WithFlags applies command-line overrides for the persistent flags.
func (c Config) WithFlags(cmd *cobra.Command) Config {
	if GetFlag(cmd, "no-color") {
		c.Colour = false
	}
	//
	return c
}

func positive(val int, fallback uint) uint {
	if val <= 0 {
		return fallback
	}
	//
	return uint(val)
}

// Defaults are read once, so flag defaults and help messages agree.
var config = DefaultConfig()
