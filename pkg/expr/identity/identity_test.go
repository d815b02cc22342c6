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
package identity

import (
	"errors"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-symcalc/pkg/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trials = 16

var (
	x = expr.Var('x')
	y = expr.Var('y')
)

func Test_Evaluate_01(t *testing.T) {
	e := expr.Sum(expr.Power(x, expr.Const(2)), expr.Const(1))
	val, err := Evaluate(e, Assignment{'x': fr.NewElement(3)})
	require.NoError(t, err)
	//
	expected := fr.NewElement(10)
	assert.True(t, val.Equal(&expected))
}

func Test_Evaluate_02(t *testing.T) {
	// 0.5 * 2 == 1
	val, err := Evaluate(expr.Product(expr.Const(0.5), expr.Const(2)), nil)
	require.NoError(t, err)
	assert.True(t, val.IsOne())
	// -0.75 + 0.75 == 0
	val, err = Evaluate(expr.Sum(expr.Const(-0.75), expr.Const(0.75)), nil)
	require.NoError(t, err)
	assert.True(t, val.IsZero())
}

func Test_Evaluate_03(t *testing.T) {
	_, err := Evaluate(expr.Quotient(expr.Const(1), x), Assignment{'x': fr.NewElement(0)})
	assert.ErrorIs(t, err, ErrSingular)
	//
	_, err = Evaluate(expr.Power(x, expr.Const(-2)), Assignment{'x': fr.NewElement(0)})
	assert.ErrorIs(t, err, ErrSingular)
	//
	_, err = Evaluate(x, Assignment{'y': fr.NewElement(0)})
	assert.Error(t, err)
}

// ===================================================================
// Equivalence
// ===================================================================

func Test_Equivalent_01(t *testing.T) {
	checkEquivalent(t, expr.Sum(x, y), expr.Sum(y, x))
	checkEquivalent(t, expr.Product(x, expr.Sum(y, expr.Const(1))), expr.Sum(expr.Product(x, y), x))
}

func Test_Equivalent_02(t *testing.T) {
	// (x+1)^2 == x^2 + 2x + 1
	lhs := expr.Power(expr.Sum(x, expr.Const(1)), expr.Const(2))
	rhs := expr.Sum(expr.Sum(expr.Power(x, expr.Const(2)), expr.Product(expr.Const(2), x)), expr.Const(1))
	checkEquivalent(t, lhs, rhs)
}

func Test_Equivalent_03(t *testing.T) {
	checkNotEquivalent(t, expr.Power(x, expr.Const(2)), expr.Product(expr.Const(2), x))
	checkNotEquivalent(t, expr.Difference(x, y), expr.Difference(y, x))
	checkNotEquivalent(t, expr.Const(0.1), expr.Const(0.1000001))
}

func Test_Equivalent_04(t *testing.T) {
	checkEquivalent(t, expr.Power(x, expr.Const(-1)), expr.Quotient(expr.Const(1), x))
	checkEquivalent(t, expr.Quotient(expr.Const(3), expr.Const(4)), expr.Const(0.75))
	// Exponents only need to reduce to integers
	checkEquivalent(t, expr.Power(x, expr.Sum(expr.Const(1), expr.Const(1))), expr.Product(x, x))
	// As do logarithms
	checkEquivalent(t, expr.Sum(expr.Logarithm(expr.Const(2), expr.Const(1)), x), x)
}

func Test_Equivalent_05(t *testing.T) {
	_, err := Equivalent(expr.Sin(x), expr.Sin(x), trials)
	assert.ErrorIs(t, err, ErrNotAlgebraic)
	//
	_, err = Equivalent(expr.Ln(x), x, trials)
	assert.ErrorIs(t, err, ErrNotAlgebraic)
	//
	_, err = Equivalent(expr.Power(x, expr.Const(0.5)), x, trials)
	assert.ErrorIs(t, err, ErrNotAlgebraic)
	//
	_, err = Equivalent(expr.Power(expr.Const(2), x), x, 0)
	assert.ErrorIs(t, err, ErrNotAlgebraic)
}

func Test_Equivalent_06(t *testing.T) {
	singular := expr.Quotient(expr.Const(1), expr.Difference(x, x))
	_, err := Equivalent(singular, x, trials)
	assert.True(t, errors.Is(err, ErrSingular))
}

func Test_Equivalent_07(t *testing.T) {
	var a, b = 0.1, 0.2
	// Constants are folded in floating point before entering the field
	checkEquivalent(t, expr.Product(expr.Sum(expr.Const(0.1), expr.Const(0.2)), x), expr.Product(expr.Const(a+b), x))
	checkNotEquivalent(t, expr.Sum(expr.Const(0.1), expr.Const(0.2)), expr.Const(0.3))
	checkEquivalent(t, expr.Quotient(x, expr.Const(10)), expr.Quotient(x, expr.Const(10)))
}

func Test_Equivalent_08(t *testing.T) {
	// Values within epsilon of zero or one are treated as such
	checkEquivalent(t, expr.Sum(x, expr.Const(1e-17)), x)
	checkEquivalent(t, expr.Product(expr.Const(1+0x1p-52), x), x)
	checkNotEquivalent(t, expr.Sum(x, expr.Const(1e-3)), x)
}

func Test_Equivalent_09(t *testing.T) {
	// Variable-free subtrees must still fold
	_, err := Equivalent(expr.Product(expr.Sin(expr.Const(0)), x), x, trials)
	assert.ErrorIs(t, err, ErrNotAlgebraic)
}

// ===================================================================
// Soundness
// ===================================================================

func Test_Simplify_Sound(t *testing.T) {
	for _, e := range algebraicCorpus() {
		checkEquivalent(t, e, e.Simplify())
	}
}

func Test_Differentiate_Sound(t *testing.T) {
	// (x*x)' == 2x
	d, err := expr.Differentiate(expr.Product(x, x), x)
	require.NoError(t, err)
	checkEquivalent(t, d, expr.Product(expr.Const(2), x))
	// (x^3 - 4xy)' == 3x^2 - 4y
	e := expr.Difference(expr.Power(x, expr.Const(3)), expr.Product(expr.Const(4), expr.Product(x, y)))
	d, err = expr.Differentiate(e, x)
	require.NoError(t, err)
	checkEquivalent(t, d, expr.Difference(expr.Product(expr.Const(3), expr.Power(x, expr.Const(2))), expr.Product(expr.Const(4), y)))
}

func Test_Differentiate_Quotient(t *testing.T) {
	// Quotients are differentiated via the product rule, hence (1/x)' is
	// reported as one rather than -1/x^2.
	d, err := expr.Differentiate(expr.Quotient(expr.Const(1), x), x)
	require.NoError(t, err)
	checkNotEquivalent(t, d, expr.Quotient(expr.Const(-1), expr.Power(x, expr.Const(2))))
	checkEquivalent(t, d, expr.Const(1))
}

func algebraicCorpus() []expr.Expr {
	return []expr.Expr{
		expr.Sum(expr.Product(x, expr.Const(0)), expr.Const(7)),
		expr.Product(expr.Product(expr.Const(1), x), expr.Power(y, expr.Const(1))),
		expr.Quotient(expr.Difference(x, expr.Const(0)), expr.Const(1)),
		expr.Power(expr.Power(x, expr.Const(1)), expr.Power(expr.Const(2), expr.Const(0))),
		expr.Sum(expr.Sum(x, expr.Const(1)), expr.Const(2)),
		expr.Neg(expr.Neg(x)),
		expr.Quotient(expr.Const(1), expr.Difference(expr.Const(1), expr.Power(x, expr.Const(2)))),
		expr.Product(expr.Sum(expr.Const(0.1), expr.Const(0.2)), x),
		expr.Sum(expr.Quotient(expr.Const(1), expr.Const(3)), y),
		expr.Sum(x, expr.Const(1e-17)),
		expr.Product(expr.Const(1+0x1p-52), x),
		expr.Power(x, expr.Sum(expr.Const(1e-17), expr.Const(1))),
	}
}

func checkEquivalent(t *testing.T, lhs expr.Expr, rhs expr.Expr) {
	t.Helper()
	//
	ok, err := Equivalent(lhs, rhs, trials)
	//
	if err != nil {
		t.Fatal(err)
	} else if !ok {
		t.Errorf("expected %s == %s", lhs, rhs)
	}
}

func checkNotEquivalent(t *testing.T, lhs expr.Expr, rhs expr.Expr) {
	t.Helper()
	//
	ok, err := Equivalent(lhs, rhs, trials)
	//
	if err != nil {
		t.Fatal(err)
	} else if ok {
		t.Errorf("expected %s != %s", lhs, rhs)
	}
}
