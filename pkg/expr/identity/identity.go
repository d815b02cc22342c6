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
	"fmt"
	"math"
	"math/big"
	"slices"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-symcalc/pkg/expr"
	"github.com/consensys/go-symcalc/pkg/linalg"
)

// ErrNotAlgebraic is returned when an expression involves something which has
// no meaning over a prime field, such as a named function, a logarithm of a
// variable or a non-integer power.
var ErrNotAlgebraic = errors.New("expression is not algebraic")

// ErrSingular is returned when every sample point attempted resulted in a
// division by zero.
var ErrSingular = errors.New("division by zero at every sample point")

// Assignment maps variables to field elements.
type Assignment map[rune]fr.Element

// Equivalent determines whether two expressions denote the same rational
// function, by evaluating both at a number of uniformly random points of the
// scalar field.  A mismatch at any point proves the expressions differ.  When
// they agree at every point, the probability that they nonetheless differ is
// bounded by d/|F| per trial, where d is the degree of the difference.  Sample
// points which hit a division by zero on either side are discarded.
//
// Constants are interpreted as the simplifier sees them.  Every variable-free
// subtree is first folded using floating point arithmetic, and the rounded
// result is then mapped exactly into the field.  Furthermore, values within
// linalg.Epsilon of zero or one are treated as exactly zero or one.  Thus, for
// example, "(0.1 + 0.2) * x" is equivalent to its simplification, and "x +
// 1e-17" is equivalent to "x", but "0.1 + 0.2" is not equivalent to "0.3".
func Equivalent(lhs expr.Expr, rhs expr.Expr, trials uint) (bool, error) {
	var (
		vars  = slices.Concat(expr.FreeVariables(lhs), expr.FreeVariables(rhs))
		valid uint
	)
	// Check both sides upfront, so errors are reported even for zero trials.
	if err := errors.Join(Check(lhs), Check(rhs)); err != nil {
		return false, err
	}
	//
	for i := uint(0); i < trials; i++ {
		env, err := RandomAssignment(vars)
		if err != nil {
			return false, err
		}
		//
		l, lerr := Evaluate(lhs, env)
		r, rerr := Evaluate(rhs, env)
		//
		if errors.Is(lerr, ErrSingular) || errors.Is(rerr, ErrSingular) {
			continue
		} else if err := errors.Join(lerr, rerr); err != nil {
			return false, err
		} else if !l.Equal(&r) {
			return false, nil
		}
		//
		valid++
	}
	//
	if trials > 0 && valid == 0 {
		return false, ErrSingular
	}
	//
	return true, nil
}

// RandomAssignment assigns a uniformly random field element to each of the
// given variables.
func RandomAssignment(vars []rune) (Assignment, error) {
	env := make(Assignment, len(vars))
	//
	for _, v := range vars {
		var val fr.Element
		//
		if _, err := val.SetRandom(); err != nil {
			return nil, err
		}
		//
		env[v] = val
	}
	//
	return env, nil
}

// Check determines whether a given expression can be evaluated over the scalar
// field, returning ErrNotAlgebraic if not.
func Check(e expr.Expr) error {
	if isConstant(e) {
		_, err := constantOf(e)
		return err
	}
	//
	switch e := e.(type) {
	case *expr.Add:
		return errors.Join(Check(e.Lhs), Check(e.Rhs))
	case *expr.Sub:
		return errors.Join(Check(e.Lhs), Check(e.Rhs))
	case *expr.Mul:
		return errors.Join(Check(e.Lhs), Check(e.Rhs))
	case *expr.Div:
		return errors.Join(Check(e.Lhs), Check(e.Rhs))
	case *expr.Exp:
		if _, err := exponentOf(e.Power); err != nil {
			return err
		}
		//
		return Check(e.Base)
	case *expr.Variable:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrNotAlgebraic, e)
	}
}

// Evaluate an expression at a given point of the scalar field.  Every variable
// used within the expression must be assigned.  Division by zero is reported
// as ErrSingular.  Variable-free subtrees are folded as for Equivalent.
func Evaluate(e expr.Expr, env Assignment) (fr.Element, error) {
	var (
		res      fr.Element
		lhs, rhs fr.Element
		err      error
	)
	//
	if isConstant(e) {
		return constantOf(e)
	}
	//
	switch e := e.(type) {
	case *expr.Add:
		if lhs, rhs, err = evaluatePair(e.Lhs, e.Rhs, env); err == nil {
			res.Add(&lhs, &rhs)
		}
	case *expr.Sub:
		if lhs, rhs, err = evaluatePair(e.Lhs, e.Rhs, env); err == nil {
			res.Sub(&lhs, &rhs)
		}
	case *expr.Mul:
		if lhs, rhs, err = evaluatePair(e.Lhs, e.Rhs, env); err == nil {
			res.Mul(&lhs, &rhs)
		}
	case *expr.Div:
		if lhs, rhs, err = evaluatePair(e.Lhs, e.Rhs, env); err != nil {
			break
		} else if rhs.IsZero() {
			return res, ErrSingular
		}
		//
		res.Inverse(&rhs)
		res.Mul(&lhs, &res)
	case *expr.Exp:
		return evaluateExp(e, env)
	case *expr.Variable:
		val, ok := env[e.Name]
		if !ok {
			return res, fmt.Errorf("variable %s not assigned", string(e.Name))
		}
		//
		return val, nil
	default:
		return res, fmt.Errorf("%w: %s", ErrNotAlgebraic, e)
	}
	//
	return res, err
}

// ElementOf converts a scalar into a field element.  Since every finite float
// is a dyadic rational n/2^k, the conversion is exact.  NaN and infinite values
// cannot be converted.
func ElementOf(val linalg.Scalar) (fr.Element, error) {
	var (
		rat      big.Rat
		num, den fr.Element
	)
	//
	if f := val.Float(); math.IsNaN(f) || math.IsInf(f, 0) {
		return num, fmt.Errorf("%w: constant %s", ErrNotAlgebraic, val)
	}
	//
	rat.SetFloat64(val.Float())
	num.SetBigInt(rat.Num())
	den.SetBigInt(rat.Denom())
	// Denominator is a power of two, hence never zero in the field.
	den.Inverse(&den)
	//
	return *num.Mul(&num, &den), nil
}

func evaluatePair(lhs expr.Expr, rhs expr.Expr, env Assignment) (fr.Element, fr.Element, error) {
	l, lerr := Evaluate(lhs, env)
	r, rerr := Evaluate(rhs, env)
	//
	return l, r, errors.Join(lerr, rerr)
}

func evaluateExp(e *expr.Exp, env Assignment) (fr.Element, error) {
	var res fr.Element
	//
	k, err := exponentOf(e.Power)
	if err != nil {
		return res, err
	}
	//
	base, err := Evaluate(e.Base, env)
	if err != nil {
		return res, err
	}
	// Negative powers invert the base
	if k.Sign() < 0 {
		if base.IsZero() {
			return res, ErrSingular
		}
		//
		base.Inverse(&base)
		k.Neg(k)
	}
	//
	return *res.Exp(base, k), nil
}

// Determine the (integer) value of a power, which must reduce to a constant.
func exponentOf(power expr.Expr) (*big.Int, error) {
	val, err := expr.Evaluate(power, nil)
	//
	if err != nil {
		return nil, fmt.Errorf("%w: variable power %s", ErrNotAlgebraic, power)
	} else if f := val.Float(); math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return nil, fmt.Errorf("%w: non-integer power %s", ErrNotAlgebraic, val)
	}
	//
	k, _ := big.NewFloat(val.Float()).Int(nil)
	//
	return k, nil
}

func isConstant(e expr.Expr) bool {
	return len(expr.FreeVariables(e)) == 0
}

// Fold a variable-free expression into a single float, which is then mapped
// into the field.  This fails for expressions which do not fold, such as those
// involving named functions.
func constantOf(e expr.Expr) (fr.Element, error) {
	val, err := expr.Evaluate(e, nil)
	//
	switch {
	case err != nil:
		return fr.Element{}, fmt.Errorf("%w: %s", ErrNotAlgebraic, e)
	case val.IsZero():
		return fr.NewElement(0), nil
	case val.IsOne():
		return fr.NewElement(1), nil
	}
	//
	return ElementOf(val)
}
