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
	"math"
	"testing"
)

// ===================================================================
// Constant Folding
// ===================================================================

func Test_Simplify_Fold_01(t *testing.T) {
	checkSimplify(t, Sum(Const(3), Const(4)), Const(7))
}

func Test_Simplify_Fold_02(t *testing.T) {
	checkSimplify(t, Difference(Const(3), Const(4)), Const(-1))
	checkSimplify(t, Product(Const(3), Const(4)), Const(12))
	checkSimplify(t, Quotient(Const(3), Const(4)), Const(0.75))
	checkSimplify(t, Power(Const(2), Const(3)), Const(8))
}

func Test_Simplify_Fold_03(t *testing.T) {
	s := Logarithm(Const(2), Const(8)).Simplify()
	//
	if c, ok := IsConstant(s); !ok || !c.ApproxEquals(3, 1e-12) {
		t.Errorf("expected log_2(8) == 3, got %s", s)
	}
}

func Test_Simplify_Fold_04(t *testing.T) {
	// Folding propagates bottom up
	checkSimplify(t, Product(Sum(Const(1), Const(2)), Difference(Const(7), Const(3))), Const(12))
}

func Test_Simplify_Fold_05(t *testing.T) {
	// Division by zero is not guarded
	s := Quotient(Const(1), Const(0)).Simplify()
	//
	if c, ok := IsConstant(s); !ok || !math.IsInf(c.Float(), 1) {
		t.Errorf("expected +Inf, got %s", s)
	}
}

func Test_Simplify_Fold_06(t *testing.T) {
	// Folding is attempted before the annihilator rule
	s := Product(Const(math.Inf(1)), Const(0)).Simplify()
	//
	if c, ok := IsConstant(s); !ok || !math.IsNaN(c.Float()) {
		t.Errorf("expected NaN, got %s", s)
	}
}

// ===================================================================
// Identities
// ===================================================================

func Test_Simplify_Add_01(t *testing.T) {
	checkSimplify(t, Sum(x, Const(0)), x)
	checkSimplify(t, Sum(Const(0), x), x)
	// Zero is tested within epsilon
	checkSimplify(t, Sum(x, Const(1e-17)), x)
}

func Test_Simplify_Sub_01(t *testing.T) {
	checkSimplify(t, Difference(x, Const(0)), x)
	// Subtraction from zero is not simplified
	checkSimplify(t, Difference(Const(0), x), Difference(Const(0), x))
	// Nor is self subtraction
	checkSimplify(t, Difference(x, x), Difference(x, x))
}

func Test_Simplify_Mul_01(t *testing.T) {
	checkSimplify(t, Product(x, Const(0)), Const(0))
	checkSimplify(t, Product(Const(0), x), Const(0))
	checkSimplify(t, Product(x, Const(1)), x)
	checkSimplify(t, Product(Const(1), x), x)
}

func Test_Simplify_Mul_02(t *testing.T) {
	checkSimplify(t, Sum(Product(x, Const(0)), Const(7)), Const(7))
}

func Test_Simplify_Div_01(t *testing.T) {
	checkSimplify(t, Quotient(x, Const(1)), x)
	checkSimplify(t, Quotient(Const(1), x), Quotient(Const(1), x))
	// Zero numerator is not simplified
	checkSimplify(t, Quotient(Const(0), x), Quotient(Const(0), x))
}

func Test_Simplify_Exp_01(t *testing.T) {
	checkSimplify(t, Power(Const(1), x), Const(1))
	checkSimplify(t, Power(x, Const(1)), x)
	checkSimplify(t, Power(x, Const(0)), Const(1))
	checkSimplify(t, Power(x, Const(2)), Power(x, Const(2)))
}

func Test_Simplify_Exp_02(t *testing.T) {
	// NOTE: 0^x is reduced to zero without considering whether x is
	// positive.
	checkSimplify(t, Power(Const(0), x), Const(0))
	checkSimplify(t, Power(Const(0), Difference(Const(0), x)), Const(0))
	// 0^0 is folded instead
	checkSimplify(t, Power(Const(0), Const(0)), Const(1))
}

func Test_Simplify_Log_01(t *testing.T) {
	checkSimplify(t, Ln(Sum(x, Const(0))), Ln(x))
}

func Test_Simplify_Call_01(t *testing.T) {
	// Only the argument is simplified
	checkSimplify(t, Sin(Sum(Const(1), Const(2))), Sin(Const(3)))
	checkSimplify(t, Cos(Product(x, Const(1))), Cos(x))
}

// ===================================================================
// Properties
// ===================================================================

func Test_Simplify_Single_Pass(t *testing.T) {
	// Terms are not reassociated, hence constants separated by a variable
	// are not combined.
	e := Sum(Sum(x, Const(1)), Const(2))
	checkSimplify(t, e, e)
}

func Test_Simplify_Idempotent(t *testing.T) {
	for _, e := range simplificationCorpus() {
		once := e.Simplify()
		twice := once.Simplify()
		//
		if !once.Equals(twice) {
			t.Errorf("simplification of %s not idempotent (%s vs %s)", e, once, twice)
		}
	}
}

func Test_Simplify_Fresh(t *testing.T) {
	v := &Variable{'x'}
	c := &Constant{1}
	//
	if v.Simplify() == Expr(v) || c.Simplify() == Expr(c) {
		t.Errorf("simplification should construct fresh nodes")
	}
	// Original is untouched
	e := Sum(Product(x, Const(0)), Const(7))
	_ = e.Simplify()
	checkString(t, e, "((x * 0) + 7)")
}

func simplificationCorpus() []Expr {
	return []Expr{
		Sum(Const(3), Const(4)),
		Sum(Product(x, Const(0)), Const(7)),
		Sum(Sum(x, Const(0)), Sum(Const(0), Const(0))),
		Product(Product(Const(1), x), Power(y, Const(1))),
		Quotient(Difference(x, Const(0)), Const(1)),
		Power(Power(x, Const(1)), Power(Const(2), Const(0))),
		Power(Sum(Const(0), Const(0)), x),
		Logarithm(Const(2), Sum(Const(4), Const(4))),
		Ln(Sum(x, y)),
		Sin(Product(Const(2), Sum(x, Const(0)))),
		Product(Cos(x), Sin(Power(x, Const(2)))),
		Sum(Sum(x, Const(1)), Const(2)),
		Neg(Neg(x)),
	}
}

func checkSimplify(t *testing.T, e Expr, expected Expr) {
	t.Helper()
	//
	if actual := e.Simplify(); !actual.Equals(expected) {
		t.Errorf("simplify(%s) == %s, expected %s", e, actual, expected)
	}
}
