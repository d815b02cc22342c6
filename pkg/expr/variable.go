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

// Variable represents a named (single character) variable.
type Variable struct {
	Name rune
}

// Var constructs an expression representing a given variable.
func Var(name rune) Expr {
	return &Variable{name}
}

// Simplify implementation for Expr interface.
func (p *Variable) Simplify() Expr {
	return &Variable{p.Name}
}

// Equals implementation for Expr interface.
func (p *Variable) Equals(other Expr) bool {
	if o, ok := other.(*Variable); ok {
		return p.Name == o.Name
	}
	//
	return false
}

// String implementation for Expr interface.
func (p *Variable) String() string {
	return string(p.Name)
}

// Differentiate implementation for Expr interface.
func (p *Variable) differentiate(wrt rune) Expr {
	if p.Name == wrt {
		return Const(1)
	}
	//
	return Const(0)
}

// Substitute implementation for Expr interface.
func (p *Variable) substitute(bindings Bindings) Expr {
	if val, ok := bindings[p.Name]; ok {
		return &Constant{val}
	}
	//
	return p
}

// Variables implementation for Expr interface.
func (p *Variable) variables(vars []rune) []rune {
	return append(vars, p.Name)
}
