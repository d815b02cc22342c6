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

// Add represents the sum of two expressions.
type Add struct {
	Lhs Expr
	Rhs Expr
}

// Sum constructs an expression representing the sum of two expressions.
func Sum(lhs Expr, rhs Expr) Expr {
	return &Add{lhs, rhs}
}

// Simplify implementation for Expr interface.
func (p *Add) Simplify() Expr {
	var (
		lhs = p.Lhs.Simplify()
		rhs = p.Rhs.Simplify()
	)
	// Constant folding
	if l, r, ok := areConstants(lhs, rhs); ok {
		return &Constant{l.Add(r)}
	}
	// Additive identity
	if isZero(lhs) {
		return rhs
	} else if isZero(rhs) {
		return lhs
	}
	//
	return &Add{lhs, rhs}
}

// Equals implementation for Expr interface.
func (p *Add) Equals(other Expr) bool {
	if o, ok := other.(*Add); ok {
		return commutativeEquals(p.Lhs, p.Rhs, o.Lhs, o.Rhs)
	}
	//
	return false
}

// String implementation for Expr interface.
func (p *Add) String() string {
	return fmt.Sprintf("(%s + %s)", p.Lhs, p.Rhs)
}

// Differentiate implementation for Expr interface.
func (p *Add) differentiate(wrt rune) Expr {
	return Sum(p.Lhs.differentiate(wrt), p.Rhs.differentiate(wrt))
}

// Substitute implementation for Expr interface.
func (p *Add) substitute(bindings Bindings) Expr {
	return Sum(p.Lhs.substitute(bindings), p.Rhs.substitute(bindings))
}

// Variables implementation for Expr interface.
func (p *Add) variables(vars []rune) []rune {
	return p.Rhs.variables(p.Lhs.variables(vars))
}
