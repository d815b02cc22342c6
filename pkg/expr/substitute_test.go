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
	"errors"
	"testing"

	"github.com/consensys/go-symcalc/pkg/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_With_01(t *testing.T) {
	e := Sum(Product(Const(0.75), x), Const(1.5))
	//
	assert.True(t, With(e, Bindings{'x': 2}).Equals(Const(3)))
	// Original is untouched
	assert.Equal(t, "((0.75 * x) + 1.5)", e.String())
}

func Test_With_02(t *testing.T) {
	// Partial bindings leave a residual
	e := With(Product(x, y), Bindings{'x': 2})
	assert.True(t, e.Equals(Product(Const(2), y)))
	// Bindings for unused variables are ignored
	e = With(Sum(x, Const(1)), Bindings{'y': 2})
	assert.True(t, e.Equals(Sum(x, Const(1))))
}

func Test_With_03(t *testing.T) {
	// Arguments of functions are substituted
	e := With(Sin(Product(x, y)), Bindings{'x': 2, 'y': 3})
	assert.True(t, e.Equals(Sin(Const(6))))
}

func Test_Evaluate_01(t *testing.T) {
	v, err := Evaluate(Sum(Product(Const(0.75), x), Const(1.5)), Bindings{'x': 2})
	require.NoError(t, err)
	assert.Equal(t, linalg.Scalar(3), v)
}

func Test_Evaluate_02(t *testing.T) {
	e := Quotient(Const(1), Difference(Const(1), Power(x, Const(2))))
	v, err := Evaluate(e, Bindings{'x': 3})
	require.NoError(t, err)
	assert.InDelta(t, -0.125, v.Float(), 1e-12)
}

func Test_Evaluate_03(t *testing.T) {
	var unresolved *UnresolvedEvaluationError
	//
	_, err := Evaluate(Product(x, y), Bindings{'x': 2})
	require.True(t, errors.As(err, &unresolved))
	assert.True(t, unresolved.Residual.Equals(Product(Const(2), y)))
	assert.Contains(t, err.Error(), "unbound variables y")
}

func Test_Evaluate_04(t *testing.T) {
	var unresolved *UnresolvedEvaluationError
	// Named functions have no numeric rule
	_, err := Evaluate(Sin(x), Bindings{'x': 0})
	require.True(t, errors.As(err, &unresolved))
	assert.True(t, unresolved.Residual.Equals(Sin(Const(0))))
	assert.NotContains(t, err.Error(), "unbound")
}

func Test_FreeVariables_01(t *testing.T) {
	e := Sum(Product(y, x), Sin(Difference(x, Var('a'))))
	assert.Equal(t, []rune{'a', 'x', 'y'}, FreeVariables(e))
	assert.Empty(t, FreeVariables(Sum(Const(1), Const(2))))
}

func Test_JSON_01(t *testing.T) {
	bytes, err := ToJSON(Sum(x, Sin(Const(2))))
	require.NoError(t, err)
	//
	expected := `{"lhs":{"name":"x","type":"var"},"rhs":{"arg":{"type":"const","value":2},"fn":"sin","type":"call"},"type":"add"}`
	assert.JSONEq(t, expected, string(bytes))
}

func Test_JSON_02(t *testing.T) {
	bytes, err := ToJSON(Quotient(Const(1), Const(0)).Simplify())
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"const","value":"+Inf"}`, string(bytes))
}
