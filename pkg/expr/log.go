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
	"fmt"
	"math"

	"github.com/consensys/go-symcalc/pkg/linalg"
)

// Log represents the logarithm of a given argument in a given base.
type Log struct {
	Base Expr
	Arg  Expr
}

// Logarithm constructs an expression representing the logarithm of a given
// argument in a given base.
func Logarithm(base Expr, arg Expr) Expr {
	return &Log{base, arg}
}

// Ln constructs an expression representing the natural logarithm of a given
// argument.
func Ln(arg Expr) Expr {
	return &Log{Const(math.E), arg}
}

// IsNatural checks whether this is a natural logarithm (i.e. its base is a
// constant within epsilon of e).
func (p *Log) IsNatural() bool {
	c, ok := IsConstant(p.Base)
	return ok && c.ApproxEquals(math.E, linalg.Epsilon)
}

// Simplify implementation for Expr interface.
func (p *Log) Simplify() Expr {
	var (
		base = p.Base.Simplify()
		arg  = p.Arg.Simplify()
	)
	// Constant folding
	if b, a, ok := areConstants(base, arg); ok {
		return &Constant{a.Log(b)}
	}
	//
	return &Log{base, arg}
}

// Equals implementation for Expr interface.
func (p *Log) Equals(other Expr) bool {
	if o, ok := other.(*Log); ok {
		return p.Base.Equals(o.Base) && p.Arg.Equals(o.Arg)
	}
	//
	return false
}

// String implementation for Expr interface.
func (p *Log) String() string {
	if p.IsNatural() {
		return fmt.Sprintf("ln(%s)", p.Arg)
	}
	//
	return fmt.Sprintf("log_(%s)(%s)", p.Base, p.Arg)
}

// Differentiate implementation for Expr interface.
//
// NOTE: this computes (1/arg) * base', i.e. it differentiates the base rather
// than the argument.
func (p *Log) differentiate(wrt rune) Expr {
	return Product(Quotient(Const(1), p.Arg), p.Base.differentiate(wrt))
}

// Substitute implementation for Expr interface.
func (p *Log) substitute(bindings Bindings) Expr {
	return Logarithm(p.Base.substitute(bindings), p.Arg.substitute(bindings))
}

// Variables implementation for Expr interface.
func (p *Log) variables(vars []rune) []rune {
	return p.Arg.variables(p.Base.variables(vars))
}
