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
	"fmt"
	"math"
	"slices"
	"strings"
)

// DimensionMismatchError is returned when an operation is attempted between
// vectors of incompatible dimensions.
type DimensionMismatchError struct {
	Expected uint
	Actual   uint
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("mismatched dimensions (expected %d, got %d)", e.Expected, e.Actual)
}

// Vector represents a vector of arbitrary (but fixed) dimension.  Operations on
// vectors never modify their operands, instead returning fresh vectors.
type Vector []float64

// NewVector constructs a vector from a given set of components.
func NewVector(components ...float64) Vector {
	return Vector(slices.Clone(components))
}

// Dim returns the dimension of this vector.
func (v Vector) Dim() uint {
	return uint(len(v))
}

// MagnitudeSquared returns the square of the magnitude of this vector.
func (v Vector) MagnitudeSquared() Scalar {
	var sum float64
	//
	for _, x := range v {
		sum += x * x
	}
	//
	return Scalar(sum)
}

// Magnitude returns the (Euclidean) length of this vector.
func (v Vector) Magnitude() Scalar {
	return v.MagnitudeSquared().Sqrt()
}

// Unit returns the unit vector in the direction of this vector.  The zero
// vector has no direction, hence produces a vector of NaNs.
func (v Vector) Unit() Vector {
	return v.Divided(v.Magnitude())
}

// Negated returns the vector pointing in the opposite direction.
func (v Vector) Negated() Vector {
	return v.Scaled(-1)
}

// Scaled returns this vector multiplied by a given scalar.
func (v Vector) Scaled(s Scalar) Vector {
	nv := make(Vector, len(v))
	//
	for i, x := range v {
		nv[i] = x * s.Float()
	}
	//
	return nv
}

// Divided returns this vector divided by a given scalar.
func (v Vector) Divided(s Scalar) Vector {
	return v.Scaled(FloatDiv(1, s))
}

// Added returns the sum of two vectors, or an error if their dimensions differ.
func (v Vector) Added(o Vector) (Vector, error) {
	if err := checkDims(v, o); err != nil {
		return nil, err
	}
	//
	nv := make(Vector, len(v))
	for i := range v {
		nv[i] = v[i] + o[i]
	}
	//
	return nv, nil
}

// Subtracted returns the difference of two vectors, or an error if their
// dimensions differ.
func (v Vector) Subtracted(o Vector) (Vector, error) {
	return v.Added(o.Negated())
}

// Dot returns the dot product of two vectors, or an error if their dimensions
// differ.
func (v Vector) Dot(o Vector) (Scalar, error) {
	var sum float64
	//
	if err := checkDims(v, o); err != nil {
		return 0, err
	}
	//
	for i := range v {
		sum += v[i] * o[i]
	}
	//
	return Scalar(sum), nil
}

// ProjectOnto returns the projection of this vector onto a given base vector.
func (v Vector) ProjectOnto(base Vector) (Vector, error) {
	dot, err := v.Dot(base)
	if err != nil {
		return nil, err
	}
	//
	return base.Scaled(dot.Div(base.MagnitudeSquared())), nil
}

// AngleBetween returns the angle between two vectors.
func (v Vector) AngleBetween(o Vector) (Radians, error) {
	dot, err := v.Dot(o)
	if err != nil {
		return 0, err
	}
	//
	cos := dot.Div(v.Magnitude().Mul(o.Magnitude()))
	//
	return Radians(math.Acos(cos.Float())), nil
}

// Cross returns the cross product of two vectors in three dimensional space.
func (v Vector) Cross(o Vector) (Vector, error) {
	if len(v) != 3 {
		return nil, &DimensionMismatchError{3, v.Dim()}
	} else if len(o) != 3 {
		return nil, &DimensionMismatchError{3, o.Dim()}
	}
	//
	return Vector{
		(v[1] * o[2]) - (v[2] * o[1]),
		-((v[0] * o[2]) - (v[2] * o[0])),
		(v[0] * o[1]) - (v[1] * o[0]),
	}, nil
}

// Equals checks whether two vectors are exactly equal.
func (v Vector) Equals(o Vector) bool {
	return slices.Equal(v, o)
}

// ApproxEquals checks whether two vectors have the same dimension and all of
// their components are within a given tolerance.
func (v Vector) ApproxEquals(o Vector, eps float64) bool {
	if len(v) != len(o) {
		return false
	}
	//
	for i := range v {
		if math.Abs(v[i]-o[i]) > eps {
			return false
		}
	}
	//
	return true
}

func (v Vector) String() string {
	var builder strings.Builder
	//
	builder.WriteString("<")
	//
	for i, x := range v {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(Scalar(x).String())
	}
	//
	builder.WriteString(">")
	//
	return builder.String()
}

// Units returns the n unit vectors of n-dimensional space.
func Units(n uint) []Vector {
	units := make([]Vector, n)
	//
	for i := range units {
		units[i] = make(Vector, n)
		units[i][i] = 1
	}
	//
	return units
}

// UnitI2 returns the unit vector along the x axis in two dimensions.
func UnitI2() Vector { return Vector{1, 0} }

// UnitJ2 returns the unit vector along the y axis in two dimensions.
func UnitJ2() Vector { return Vector{0, 1} }

// UnitI3 returns the unit vector along the x axis in three dimensions.
func UnitI3() Vector { return Vector{1, 0, 0} }

// UnitJ3 returns the unit vector along the y axis in three dimensions.
func UnitJ3() Vector { return Vector{0, 1, 0} }

// UnitK3 returns the unit vector along the z axis in three dimensions.
func UnitK3() Vector { return Vector{0, 0, 1} }

func checkDims(lhs Vector, rhs Vector) error {
	if len(lhs) != len(rhs) {
		return &DimensionMismatchError{lhs.Dim(), rhs.Dim()}
	}
	//
	return nil
}
