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

// Call represents the application of a named function to an argument.  Since
// functions carry no numeric evaluation rule, calls are never folded into
// constants.
type Call struct {
	Fn  *Function
	Arg Expr
}

// Apply constructs an expression representing a given function applied to a
// given argument.
func Apply(fn *Function, arg Expr) Expr {
	return &Call{fn, arg}
}

// Simplify implementation for Expr interface.
func (p *Call) Simplify() Expr {
	return &Call{p.Fn, p.Arg.Simplify()}
}

// Equals implementation for Expr interface.
func (p *Call) Equals(other Expr) bool {
	if o, ok := other.(*Call); ok {
		return p.Fn.Equals(o.Fn) && p.Arg.Equals(o.Arg)
	}
	//
	return false
}

// String implementation for Expr interface.
func (p *Call) String() string {
	return fmt.Sprintf("%s(%s)", p.Fn.Name, p.Arg)
}

// Differentiate implementation for Expr interface.  Chain rule: f(a)' = f'(a)
// * a'
func (p *Call) differentiate(wrt rune) Expr {
	return Product(p.Fn.Derivative(p.Arg), p.Arg.differentiate(wrt))
}

// Substitute implementation for Expr interface.
func (p *Call) substitute(bindings Bindings) Expr {
	return Apply(p.Fn, p.Arg.substitute(bindings))
}

// Variables implementation for Expr interface.
func (p *Call) variables(vars []rune) []rune {
	return p.Arg.variables(vars)
}
