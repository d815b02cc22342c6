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

import "github.com/consensys/go-symcalc/pkg/linalg"

// Constant represents a constant value within an expression.
type Constant struct {
	Value linalg.Scalar
}

// Const constructs an expression representing a given constant.
func Const(val float64) Expr {
	return &Constant{linalg.Scalar(val)}
}

// ConstScalar constructs an expression representing a given scalar.
func ConstScalar(val linalg.Scalar) Expr {
	return &Constant{val}
}

// Simplify implementation for Expr interface.
func (p *Constant) Simplify() Expr {
	return &Constant{p.Value}
}

// Equals implementation for Expr interface.  Observe that constants are
// compared exactly (i.e. without any tolerance).
func (p *Constant) Equals(other Expr) bool {
	if o, ok := other.(*Constant); ok {
		return p.Value.Equals(o.Value)
	}
	//
	return false
}

// String implementation for Expr interface.
func (p *Constant) String() string {
	return p.Value.String()
}

// Differentiate implementation for Expr interface.
func (p *Constant) differentiate(rune) Expr {
	return Const(0)
}

// Substitute implementation for Expr interface.
func (p *Constant) substitute(Bindings) Expr {
	return p
}

// Variables implementation for Expr interface.
func (p *Constant) variables(vars []rune) []rune {
	return vars
}
