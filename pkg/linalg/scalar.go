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
	"math"
	"strconv"
)

// Epsilon is the difference between 1 and the next representable float64.  It
// is the tolerance used for all "approximately zero" style checks.
const Epsilon = 0x1p-52

// Scalar represents a single (double precision) numeric value.  Scalars are
// immutable values, and arithmetic follows IEEE-754 semantics exactly.  In
// particular, division by zero yields an infinity (or NaN) rather than an
// error.
type Scalar float64

// NewScalar constructs a scalar from a given float.
func NewScalar(val float64) Scalar {
	return Scalar(val)
}

// Float returns the underlying value of this scalar.
func (s Scalar) Float() float64 {
	return float64(s)
}

// Add returns s + o
func (s Scalar) Add(o Scalar) Scalar { return s + o }

// Sub returns s - o
func (s Scalar) Sub(o Scalar) Scalar { return s - o }

// Mul returns s * o
func (s Scalar) Mul(o Scalar) Scalar { return s * o }

// Div returns s / o
func (s Scalar) Div(o Scalar) Scalar { return s / o }

// AddFloat returns s + f
func (s Scalar) AddFloat(f float64) Scalar { return s + Scalar(f) }

// SubFloat returns s - f
func (s Scalar) SubFloat(f float64) Scalar { return s - Scalar(f) }

// MulFloat returns s * f
func (s Scalar) MulFloat(f float64) Scalar { return s * Scalar(f) }

// DivFloat returns s / f
func (s Scalar) DivFloat(f float64) Scalar { return s / Scalar(f) }

// FloatAdd returns f + s
func FloatAdd(f float64, s Scalar) Scalar { return Scalar(f) + s }

// FloatSub returns f - s
func FloatSub(f float64, s Scalar) Scalar { return Scalar(f) - s }

// FloatMul returns f * s
func FloatMul(f float64, s Scalar) Scalar { return Scalar(f) * s }

// FloatDiv returns f / s
func FloatDiv(f float64, s Scalar) Scalar { return Scalar(f) / s }

// Neg returns -s
func (s Scalar) Neg() Scalar { return -s }

// Abs returns |s|
func (s Scalar) Abs() Scalar { return Scalar(math.Abs(float64(s))) }

// Sqrt returns the square root of s.
func (s Scalar) Sqrt() Scalar { return Scalar(math.Sqrt(float64(s))) }

// Pow returns s raised to the power p.
func (s Scalar) Pow(p Scalar) Scalar {
	return Scalar(math.Pow(float64(s), float64(p)))
}

// Log returns the logarithm of s in a given base.
func (s Scalar) Log(base Scalar) Scalar {
	return Scalar(math.Log(float64(s)) / math.Log(float64(base)))
}

// Equals performs an exact comparison of two scalars.  NaN is never equal to
// anything (including itself).
func (s Scalar) Equals(o Scalar) bool {
	return s == o
}

// ApproxEquals checks whether two scalars are within a given tolerance of each
// other.
func (s Scalar) ApproxEquals(o Scalar, eps float64) bool {
	return math.Abs(float64(s-o)) <= eps
}

// IsZero checks whether this scalar is within Epsilon of zero.
func (s Scalar) IsZero() bool {
	return s.ApproxEquals(0, Epsilon)
}

// IsOne checks whether this scalar is within Epsilon of one.
func (s Scalar) IsOne() bool {
	return s.ApproxEquals(1, Epsilon)
}

// Cmp returns -1 if s < o, 1 if s > o and 0 otherwise.
func (s Scalar) Cmp(o Scalar) int {
	if s < o {
		return -1
	} else if s > o {
		return 1
	}
	//
	return 0
}

func (s Scalar) String() string {
	return strconv.FormatFloat(float64(s), 'f', -1, 64)
}
