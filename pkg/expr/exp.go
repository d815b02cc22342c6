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

// Exp represents a given base raised to a given power.
type Exp struct {
	Base  Expr
	Power Expr
}

// Power constructs an expression representing a given base raised to a given
// power.
func Power(base Expr, power Expr) Expr {
	return &Exp{base, power}
}

// Simplify implementation for Expr interface.
func (p *Exp) Simplify() Expr {
	var (
		base  = p.Base.Simplify()
		power = p.Power.Simplify()
	)
	// Constant folding
	if b, e, ok := areConstants(base, power); ok {
		return &Constant{b.Pow(e)}
	}
	// Power identities
	switch {
	case isOne(base):
		return Const(1)
	case isOne(power):
		return base
	case isZero(base):
		// NOTE: this does not check whether the power is positive.
		return Const(0)
	case isZero(power):
		return Const(1)
	}
	//
	return &Exp{base, power}
}

// Equals implementation for Expr interface.
func (p *Exp) Equals(other Expr) bool {
	if o, ok := other.(*Exp); ok {
		return p.Base.Equals(o.Base) && p.Power.Equals(o.Power)
	}
	//
	return false
}

// String implementation for Expr interface.
func (p *Exp) String() string {
	return fmt.Sprintf("(%s ^ %s)", p.Base, p.Power)
}

// Differentiate implementation for Expr interface.  Power rule: (b^p)' = p *
// b^(p-1) * b'.  Only the base is differentiated, hence this is only correct
// when the power does not depend on the variable in question.
func (p *Exp) differentiate(wrt rune) Expr {
	var (
		db    = p.Base.differentiate(wrt)
		lower = Power(p.Base, Difference(p.Power, Const(1)))
	)
	//
	return Product(Product(p.Power, lower), db)
}

// Substitute implementation for Expr interface.
func (p *Exp) substitute(bindings Bindings) Expr {
	return Power(p.Base.substitute(bindings), p.Power.substitute(bindings))
}

// Variables implementation for Expr interface.
func (p *Exp) variables(vars []rune) []rune {
	return p.Power.variables(p.Base.variables(vars))
}
