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
package expr

import (
	"slices"

	"github.com/consensys/go-symcalc/pkg/linalg"
)

// Expr represents a node in the tree of a symbolic formula.  Expressions are
// immutable: every transformation (simplification, differentiation,
// substitution) constructs a fresh tree rather than modifying an existing one.
// Constructors take ownership of their operands, and the results of
// simplification, differentiation and substitution never share subtrees.
type Expr interface {
	// Simplify rewrites this expression into an equivalent (and typically
	// smaller) form.  Children are simplified first, after which a single pass
	// of rewrite rules is applied to the node itself.  For example, "(3 + 4)"
	// becomes "7", whilst "((x * 0) + 7)" also becomes "7".  Since only a
	// single pass is applied at each node, it is not guaranteed that
	// simplification is complete.  The resulting tree is always freshly
	// allocated, and shares no nodes with the original.
	Simplify() Expr
	// Equals determines whether this expression is structurally identical to
	// another.  Addition and multiplication are treated as commutative (i.e.
	// "x + 5" equals "5 + x"), whilst all other operators are order sensitive.
	Equals(Expr) bool
	// String returns a fully parenthesised, human-readable rendering of this
	// expression.
	String() string
	// Determine the derivative of this expression with respect to a given
	// variable.  The result is not necessarily simplified.
	differentiate(wrt rune) Expr
	// Replace all bound variables with their bound values.  The result is not
	// necessarily simplified.
	substitute(bindings Bindings) Expr
	// Append all variables used within this expression to a given slice.
	variables(vars []rune) []rune
}

// Bindings maps variables to the concrete values they should take.
type Bindings map[rune]linalg.Scalar

// Simplify a given expression.  This is equivalent to e.Simplify().
func Simplify(e Expr) Expr {
	return e.Simplify()
}

// FreeVariables returns the (sorted) set of variables used within a given
// expression.
func FreeVariables(e Expr) []rune {
	vars := e.variables(nil)
	// Sort and remove duplicates
	slices.Sort(vars)
	//
	return slices.Compact(vars)
}

// IsConstant checks whether an arbitrary expression corresponds to a constant
// or not, returning its value if so.
func IsConstant(e Expr) (linalg.Scalar, bool) {
	if c, ok := e.(*Constant); ok {
		return c.Value, true
	}
	//
	return 0, false
}

// Check whether a given expression corresponds with the constant zero (within
// epsilon).
func isZero(e Expr) bool {
	c, ok := IsConstant(e)
	return ok && c.IsZero()
}

// Check whether a given expression corresponds with the constant one (within
// epsilon).
func isOne(e Expr) bool {
	c, ok := IsConstant(e)
	return ok && c.IsOne()
}

// Check whether both expressions are constants, returning their values if so.
func areConstants(lhs Expr, rhs Expr) (linalg.Scalar, linalg.Scalar, bool) {
	l, lok := IsConstant(lhs)
	r, rok := IsConstant(rhs)
	//
	return l, r, lok && rok
}

// Check whether two pairs of expressions are equal, either in order or with
// the operands swapped.
func commutativeEquals(l0, r0, l1, r1 Expr) bool {
	return (l0.Equals(l1) && r0.Equals(r1)) || (l0.Equals(r1) && r0.Equals(l1))
}
