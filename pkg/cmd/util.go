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
	"strings"

	"github.com/consensys/go-symcalc/pkg/expr"
	"github.com/consensys/go-symcalc/pkg/linalg"
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

// GetUint gets an expected unsigned int, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetFloat gets an expected float, or exits if an error arises.
func GetFloat(cmd *cobra.Command, flag string) float64 {
	r, err := cmd.Flags().GetFloat64(flag)
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

// GetStringArray gets an expected string array, or exits if an error arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetVariable gets an expected variable name, or exits if the flag is not a
// single character.
func GetVariable(cmd *cobra.Command, flag string) rune {
	v, err := parseVariable(GetString(cmd, flag))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return v
}

// Parse a variable name, which must consist of exactly one character.
func parseVariable(name string) (rune, error) {
	if runes := []rune(name); len(runes) == 1 {
		return runes[0], nil
	}
	//
	return 0, fmt.Errorf("invalid variable \"%s\" (must be a single character)", name)
}

// Parse a set of bindings of the form "x=2".
func parseBindings(defs []string) (expr.Bindings, error) {
	bindings := make(expr.Bindings, len(defs))
	//
	for _, def := range defs {
		name, value, found := strings.Cut(def, "=")
		if !found {
			return nil, fmt.Errorf("malformed binding \"%s\" (expected name=value)", def)
		}
		//
		v, err := parseVariable(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		//
		val, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed value in binding \"%s\"", def)
		}
		//
		bindings[v] = linalg.Scalar(val)
	}
	//
	return bindings, nil
}

// Render an expression either as text or, when the json flag is given, as a
// JSON tree.
func renderExpr(cmd *cobra.Command, e expr.Expr) string {
	if !GetFlag(cmd, "json") {
		return e.String()
	}
	//
	bytes, err := expr.ToJSON(e)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return string(bytes)
}

// Lookup a given set of catalogue entries, or exit if any does not exist.
func lookupEntries(names ...string) []Entry {
	entries := make([]Entry, len(names))
	//
	for i, name := range names {
		entry, ok := Lookup(name)
		if !ok {
			fmt.Printf("unknown expression \"%s\" (see \"symcalc list\")\n", name)
			os.Exit(2)
		}
		//
		entries[i] = entry
	}
	//
	return entries
}
