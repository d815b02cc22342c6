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

import "fmt"

// Div represents the division of one expression by another.
type Div struct {
	Lhs Expr
	Rhs Expr
}

// Quotient constructs an expression representing the division of one
// expression by another.
func Quotient(lhs Expr, rhs Expr) Expr {
	return &Div{lhs, rhs}
}

// Simplify implementation for Expr interface.
func (p *Div) Simplify() Expr {
	var (
		lhs = p.Lhs.Simplify()
		rhs = p.Rhs.Simplify()
	)
	// Constant folding (division by zero follows IEEE-754)
	if l, r, ok := areConstants(lhs, rhs); ok {
		return &Constant{l.Div(r)}
	}
	// Division by one
	if isOne(rhs) {
		return lhs
	}
	//
	return &Div{lhs, rhs}
}

// Equals implementation for Expr interface.
func (p *Div) Equals(other Expr) bool {
	if o, ok := other.(*Div); ok {
		return p.Lhs.Equals(o.Lhs) && p.Rhs.Equals(o.Rhs)
	}
	//
	return false
}

// String implementation for Expr interface.
func (p *Div) String() string {
	return fmt.Sprintf("(%s / %s)", p.Lhs, p.Rhs)
}

// Differentiate implementation for Expr interface.
//
// NOTE: this applies the product rule (l'*r + r'*l), rather than the quotient
// rule ((l'*r - r'*l) / r^2).  See Test_Diff_Quotient.
func (p *Div) differentiate(wrt rune) Expr {
	var (
		dl = p.Lhs.differentiate(wrt)
		dr = p.Rhs.differentiate(wrt)
	)
	//
	return Sum(Product(dl, p.Rhs), Product(dr, p.Lhs))
}

// Substitute implementation for Expr interface.
func (p *Div) substitute(bindings Bindings) Expr {
	return Quotient(p.Lhs.substitute(bindings), p.Rhs.substitute(bindings))
}

// Variables implementation for Expr interface.
func (p *Div) variables(vars []rune) []rune {
	return p.Rhs.variables(p.Lhs.variables(vars))
}
