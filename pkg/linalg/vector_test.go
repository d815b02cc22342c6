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
package linalg

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===================================================================
// Scalar Tests
// ===================================================================

func Test_Scalar_01(t *testing.T) {
	s := NewScalar(3)
	//
	assert.Equal(t, Scalar(5), s.AddFloat(2))
	assert.Equal(t, Scalar(5), FloatAdd(2, s))
	assert.Equal(t, Scalar(1), s.SubFloat(2))
	assert.Equal(t, Scalar(-1), FloatSub(2, s))
	assert.Equal(t, Scalar(6), s.MulFloat(2))
	assert.Equal(t, Scalar(6), FloatMul(2, s))
	assert.Equal(t, Scalar(1.5), s.DivFloat(2))
	assert.Equal(t, Scalar(2.0/3.0), FloatDiv(2, s))
}

func Test_Scalar_02(t *testing.T) {
	// Division by zero is not guarded
	s := NewScalar(1).Div(0)
	assert.True(t, math.IsInf(s.Float(), 1))
	//
	n := NewScalar(0).Div(0)
	assert.True(t, math.IsNaN(n.Float()))
	assert.False(t, n.Equals(n))
}

func Test_Scalar_03(t *testing.T) {
	assert.True(t, Scalar(Epsilon/2).IsZero())
	assert.False(t, Scalar(2*Epsilon).IsZero())
	assert.True(t, Scalar(1+Epsilon).IsOne())
	assert.Equal(t, -1, Scalar(1).Cmp(2))
	assert.Equal(t, 0, Scalar(2).Cmp(2))
	assert.Equal(t, 1, Scalar(3).Cmp(2))
	assert.Equal(t, "0.75", Scalar(0.75).String())
	assert.Equal(t, "-7", Scalar(-7).String())
}

func Test_Scalar_04(t *testing.T) {
	assert.Equal(t, Scalar(8), Scalar(2).Pow(3))
	assert.True(t, Scalar(8).Log(2).ApproxEquals(3, 1e-12))
}

// ===================================================================
// Vector Tests
// ===================================================================

func Test_Vector_01(t *testing.T) {
	var (
		u = NewVector(-2, 1, -2)
		v = NewVector(1, 2, 1)
	)
	//
	r, err := u.Scaled(3).Subtracted(v.Scaled(2))
	require.NoError(t, err)
	assert.Equal(t, NewVector(-8, -1, -8), r)
}

func Test_Vector_02(t *testing.T) {
	var (
		u = NewVector(-2, 1, -2)
		v = NewVector(1, 2, 1)
	)
	//
	r, err := u.Added(v.Scaled(3))
	require.NoError(t, err)
	assert.Equal(t, Scalar(math.Sqrt(51)), r.Magnitude())
}

func Test_Vector_03(t *testing.T) {
	v := NewVector(2, -1, 3)
	assert.True(t, v.Divided(Scalar(math.Sqrt(14))).ApproxEquals(v.Unit(), 1e-15))
	assert.True(t, v.Unit().Magnitude().ApproxEquals(1, 1e-15))
}

func Test_Vector_04(t *testing.T) {
	dot, err := NewVector(1, 1, 4).Dot(NewVector(3, 1, -1))
	require.NoError(t, err)
	assert.Equal(t, Scalar(0), dot)
}

func Test_Vector_05(t *testing.T) {
	p, err := NewVector(7, 0, 15).ProjectOnto(NewVector(0, 4, -2))
	require.NoError(t, err)
	assert.True(t, p.Equals(NewVector(0, -6, 3)))
	// Projection onto itself is the identity
	q, err := NewVector(7, 0, 15).ProjectOnto(NewVector(7, 0, 15))
	require.NoError(t, err)
	assert.True(t, q.ApproxEquals(NewVector(7, 0, 15), 1e-12))
}

func Test_Vector_06(t *testing.T) {
	a, err := UnitI3().AngleBetween(UnitJ3())
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, float64(a), 1e-12)
}

func Test_Vector_07(t *testing.T) {
	var mismatch *DimensionMismatchError
	//
	_, err := NewVector(1, 2).Added(NewVector(1, 2, 3))
	require.Error(t, err)
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, uint(2), mismatch.Expected)
	assert.Equal(t, uint(3), mismatch.Actual)
	//
	_, err = NewVector(1, 2).Dot(NewVector(1))
	assert.Error(t, err)
	//
	_, err = NewVector(1, 2).Cross(NewVector(1, 2))
	assert.Error(t, err)
}

func Test_Vector_08(t *testing.T) {
	assert.Equal(t, "<1, -2.5, 0>", NewVector(1, -2.5, 0).String())
	assert.Equal(t, []Vector{UnitI2(), UnitJ2()}, Units(2))
	assert.Equal(t, []Vector{UnitI3(), UnitJ3(), UnitK3()}, Units(3))
}

// ===================================================================
// Cross Product Tests
// ===================================================================

func Test_Cross_01(t *testing.T) {
	checkCross(t, UnitI3(), UnitJ3(), UnitK3())
	checkCross(t, UnitJ3(), UnitK3(), UnitI3())
	checkCross(t, UnitK3(), UnitI3(), UnitJ3())
}

func Test_Cross_02(t *testing.T) {
	checkCross(t, NewVector(2, 1, 3), NewVector(-1, 2, 2), NewVector(-4, -7, 5))
}

func Test_Cross_03(t *testing.T) {
	var (
		u = NewVector(3, -4, 1)
		v = NewVector(-1, 2, 5)
	)
	//
	checkCross(t, u, u, NewVector(0, 0, 0))
	checkCross(t, u, v, NewVector(-22, -16, 2))
	checkCross(t, v, u, NewVector(-22, -16, 2).Negated())
}

func checkCross(t *testing.T, u, v, expected Vector) {
	t.Helper()
	// Direct computation
	r, err := u.Cross(v)
	if err != nil {
		t.Fatal(err)
	} else if !r.Equals(expected) {
		t.Errorf("%s x %s == %s != %s", u, v, r, expected)
	}
	// Determinant-based computation
	d, err := CrossOf(u, v)
	if err != nil {
		t.Fatal(err)
	} else if !d.Equals(expected) {
		t.Errorf("det(%s, %s) == %s != %s", u, v, d, expected)
	}
}
