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

// Sub represents the difference of two expressions.
type Sub struct {
	Lhs Expr
	Rhs Expr
}

// Difference constructs an expression representing the subtraction of one
// expression from another.
func Difference(lhs Expr, rhs Expr) Expr {
	return &Sub{lhs, rhs}
}

// Simplify implementation for Expr interface.
func (p *Sub) Simplify() Expr {
	var (
		lhs = p.Lhs.Simplify()
		rhs = p.Rhs.Simplify()
	)
	// Constant folding
	if l, r, ok := areConstants(lhs, rhs); ok {
		return &Constant{l.Sub(r)}
	}
	// Subtracting zero
	if isZero(rhs) {
		return lhs
	}
	//
	return &Sub{lhs, rhs}
}

// Equals implementation for Expr interface.
func (p *Sub) Equals(other Expr) bool {
	if o, ok := other.(*Sub); ok {
		return p.Lhs.Equals(o.Lhs) && p.Rhs.Equals(o.Rhs)
	}
	//
	return false
}

// String implementation for Expr interface.
func (p *Sub) String() string {
	return fmt.Sprintf("(%s - %s)", p.Lhs, p.Rhs)
}

// Differentiate implementation for Expr interface.
func (p *Sub) differentiate(wrt rune) Expr {
	return Difference(p.Lhs.differentiate(wrt), p.Rhs.differentiate(wrt))
}

// Substitute implementation for Expr interface.
func (p *Sub) substitute(bindings Bindings) Expr {
	return Difference(p.Lhs.substitute(bindings), p.Rhs.substitute(bindings))
}

// Variables implementation for Expr interface.
func (p *Sub) variables(vars []rune) []rune {
	return p.Rhs.variables(p.Lhs.variables(vars))
}
