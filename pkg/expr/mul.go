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

// Mul represents the product of two expressions.
type Mul struct {
	Lhs Expr
	Rhs Expr
}

// Product constructs an expression representing the product of two
// expressions.
func Product(lhs Expr, rhs Expr) Expr {
	return &Mul{lhs, rhs}
}

// Neg constructs an expression representing the negation of an expression,
// that is "-1 * e".
func Neg(e Expr) Expr {
	return &Mul{Const(-1), e}
}

// Simplify implementation for Expr interface.
func (p *Mul) Simplify() Expr {
	var (
		lhs = p.Lhs.Simplify()
		rhs = p.Rhs.Simplify()
	)
	// Constant folding
	if l, r, ok := areConstants(lhs, rhs); ok {
		return &Constant{l.Mul(r)}
	}
	// Annihilator
	if isZero(lhs) || isZero(rhs) {
		return Const(0)
	}
	// Multiplicative identity
	if isOne(lhs) {
		return rhs
	} else if isOne(rhs) {
		return lhs
	}
	//
	return &Mul{lhs, rhs}
}

// Equals implementation for Expr interface.
func (p *Mul) Equals(other Expr) bool {
	if o, ok := other.(*Mul); ok {
		return commutativeEquals(p.Lhs, p.Rhs, o.Lhs, o.Rhs)
	}
	//
	return false
}

// String implementation for Expr interface.
func (p *Mul) String() string {
	// Negation is rendered in prefix form
	if c, ok := IsConstant(p.Lhs); ok && c == -1 {
		return fmt.Sprintf("-(%s)", p.Rhs)
	} else if c, ok := IsConstant(p.Rhs); ok && c == -1 {
		return fmt.Sprintf("-(%s)", p.Lhs)
	}
	//
	return fmt.Sprintf("(%s * %s)", p.Lhs, p.Rhs)
}

// Differentiate implementation for Expr interface.  Product rule: (l*r)' =
// l'*r + r'*l
func (p *Mul) differentiate(wrt rune) Expr {
	var (
		dl = p.Lhs.differentiate(wrt)
		dr = p.Rhs.differentiate(wrt)
	)
	//
	return Sum(Product(dl, p.Rhs), Product(dr, p.Lhs))
}

// Substitute implementation for Expr interface.
func (p *Mul) substitute(bindings Bindings) Expr {
	return Product(p.Lhs.substitute(bindings), p.Rhs.substitute(bindings))
}

// Variables implementation for Expr interface.
func (p *Mul) variables(vars []rune) []rune {
	return p.Rhs.variables(p.Lhs.variables(vars))
}
