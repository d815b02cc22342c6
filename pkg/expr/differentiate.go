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

// BadDifferentiationError is returned when attempting to differentiate with
// respect to something other than a variable.
type BadDifferentiationError struct {
	// Expression given in place of the variable.
	Wrt Expr
}

func (e *BadDifferentiationError) Error() string {
	return fmt.Sprintf("cannot differentiate with respect to %s (not a variable)", e.Wrt)
}

// Differentiate computes the derivative of a given expression with respect to
// a given variable.  The result is always simplified.  An error is returned if
// wrt is not a variable.
func Differentiate(e Expr, wrt Expr) (Expr, error) {
	v, ok := wrt.(*Variable)
	//
	if !ok {
		return nil, &BadDifferentiationError{wrt}
	}
	//
	return e.differentiate(v.Name).Simplify(), nil
}

// DifferentiateN computes the nth derivative of a given expression with
// respect to a given variable.  The zeroth derivative is the (simplified)
// expression itself.
func DifferentiateN(e Expr, wrt Expr, n uint) (Expr, error) {
	var err error
	//
	if _, ok := wrt.(*Variable); !ok {
		return nil, &BadDifferentiationError{wrt}
	}
	//
	e = e.Simplify()
	//
	for i := uint(0); i < n && err == nil; i++ {
		e, err = Differentiate(e, wrt)
	}
	//
	return e, err
}
