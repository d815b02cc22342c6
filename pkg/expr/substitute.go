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
	"strings"

	"github.com/consensys/go-symcalc/pkg/linalg"
)

// UnresolvedEvaluationError is returned when an expression cannot be reduced to
// a single constant, either because some variables remain unbound, or because
// it involves a function which cannot be evaluated.
type UnresolvedEvaluationError struct {
	// What remained after substitution and simplification.
	Residual Expr
}

func (e *UnresolvedEvaluationError) Error() string {
	var (
		vars = FreeVariables(e.Residual)
		msg  strings.Builder
	)
	//
	msg.WriteString(fmt.Sprintf("expression did not evaluate to a constant: %s", e.Residual))
	//
	if len(vars) > 0 {
		msg.WriteString(fmt.Sprintf(" (unbound variables %s)", string(vars)))
	}
	//
	return msg.String()
}

// With replaces every variable bound in the given bindings by its value, and
// simplifies the result.  Unbound variables are left untouched.  Observe that,
// when all variables are bound and no functions are involved, the result is
// always a single constant.
func With(e Expr, bindings Bindings) Expr {
	return e.substitute(bindings).Simplify()
}

// Evaluate computes the value of an expression under a given set of bindings.
// This fails if the expression does not reduce to a constant.
func Evaluate(e Expr, bindings Bindings) (linalg.Scalar, error) {
	result := With(e, bindings)
	//
	if c, ok := IsConstant(result); ok {
		return c, nil
	}
	//
	return 0, &UnresolvedEvaluationError{result}
}
