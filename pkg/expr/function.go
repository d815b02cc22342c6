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

// DerivativeRule computes the derivative of a function with respect to its
// argument, given that argument.  For example, the rule for sine maps "a" to
// "cos(a)".  The caller is responsible for applying the chain rule.
type DerivativeRule func(arg Expr) Expr

// Function describes a (typically transcendental) function which can be
// embedded within an expression.  Functions are identified by name only: two
// functions with the same name are considered equal, regardless of their rule.
type Function struct {
	// Name used both for identification and display.
	Name string
	// Rule for computing this function's derivative.
	Derivative DerivativeRule
}

// NewFunction constructs a new function descriptor from a given name and
// derivative rule.
func NewFunction(name string, rule DerivativeRule) *Function {
	return &Function{name, rule}
}

// Equals checks whether two function descriptors have the same name.
func (f *Function) Equals(o *Function) bool {
	return f.Name == o.Name
}

// SineFn describes the sine function.
var SineFn *Function

// CosineFn describes the cosine function.
var CosineFn *Function

func init() {
	// NOTE: these are assigned here since their rules refer to each other.
	SineFn = NewFunction("sin", func(arg Expr) Expr {
		return Cos(arg)
	})
	CosineFn = NewFunction("cos", func(arg Expr) Expr {
		return Neg(Sin(arg))
	})
}

// Sin constructs an expression representing the sine of a given argument.
func Sin(arg Expr) Expr {
	return Apply(SineFn, arg)
}

// Cos constructs an expression representing the cosine of a given argument.
func Cos(arg Expr) Expr {
	return Apply(CosineFn, arg)
}
