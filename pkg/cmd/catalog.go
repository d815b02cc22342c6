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
	"math"

	"github.com/consensys/go-symcalc/pkg/expr"
)

// Entry is a named expression in the catalogue.  Since there is no parser for
// textual formulas, commands operate on catalogue entries.  Every entry is a
// tree in its own right, sharing no nodes with any other.
type Entry struct {
	// Name used to identify this entry on the command line.
	Name string
	// Brief description of the entry.
	Summary string
	// The expression itself.
	Expr expr.Expr
}

var catalogue = []Entry{
	{"linear", "straight line", expr.Sum(expr.Product(expr.Const(0.75), expr.Var('x')), expr.Const(1.5))},
	{"parabola", "simple parabola", expr.Power(expr.Var('x'), expr.Const(2))},
	{"cubic", "cubic with three roots",
		expr.Difference(expr.Power(expr.Var('x'), expr.Const(3)), expr.Product(expr.Const(4), expr.Var('x')))},
	{"square", "expanded square of (x+1)",
		expr.Sum(expr.Sum(expr.Power(expr.Var('x'), expr.Const(2)), expr.Product(expr.Const(2), expr.Var('x'))), expr.Const(1))},
	{"binomial", "square of (x+1)", expr.Power(expr.Sum(expr.Var('x'), expr.Const(1)), expr.Const(2))},
	{"hyperbola", "reciprocal of 1-x^2",
		expr.Quotient(expr.Const(1), expr.Difference(expr.Const(1), expr.Power(expr.Var('x'), expr.Const(2))))},
	{"halve", "quotient by a constant", expr.Quotient(expr.Var('x'), expr.Const(2))},
	{"sine", "sine of a square", expr.Sin(expr.Power(expr.Var('x'), expr.Const(2)))},
	{"cosine", "cosine", expr.Cos(expr.Var('x'))},
	{"ln", "natural logarithm", expr.Ln(expr.Var('x'))},
	{"log2", "binary logarithm", expr.Logarithm(expr.Const(2), expr.Var('x'))},
	{"exponential", "power with a variable exponent", expr.Power(expr.Const(2), expr.Var('x'))},
	{"zero-power", "zero raised to a variable power", expr.Power(expr.Const(0), expr.Var('x'))},
	{"bilinear", "function of two variables",
		expr.Sum(expr.Product(expr.Var('x'), expr.Var('y')), expr.Product(expr.Const(2), expr.Var('y')))},
	{"annihilated", "term multiplied by zero", expr.Sum(expr.Product(expr.Var('x'), expr.Const(0)), expr.Const(7))},
	{"folded", "constant arithmetic",
		expr.Product(expr.Sum(expr.Const(1), expr.Const(2)), expr.Difference(expr.Const(7), expr.Const(3)))},
	{"natural", "power of e", expr.Power(expr.Const(math.E), expr.Var('x'))},
	{"decimal", "decimal coefficients",
		expr.Product(expr.Sum(expr.Const(0.1), expr.Const(0.2)), expr.Var('x'))},
	{"constant-power", "power of a constant", expr.Power(expr.Const(1.5), expr.Const(2))},
}

// Catalogue returns every entry in the catalogue, in a fixed order.
func Catalogue() []Entry {
	return catalogue
}

// Lookup finds the catalogue entry with a given name.
func Lookup(name string) (Entry, bool) {
	for _, e := range catalogue {
		if e.Name == name {
			return e, true
		}
	}
	//
	return Entry{}, false
}
