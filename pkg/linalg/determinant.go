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
)

// ErrNonSquare is returned when a determinant is requested for a matrix whose
// number of entries is not a perfect square.
var ErrNonSquare = errors.New("matrix is not square")

// ErrMixedValues is returned when a scalar and a vector are added or
// subtracted.
var ErrMixedValues = errors.New("cannot combine scalar and vector")

// Value is an entry in a matrix used for computing (generalised) cross
// products.  It is either a scalar or a vector, and exactly one of the two is
// meaningful.
type Value struct {
	vector Vector
	scalar Scalar
}

// ScalarValue constructs a matrix entry holding a scalar.
func ScalarValue(s Scalar) Value {
	return Value{nil, s}
}

// VectorValue constructs a matrix entry holding a vector.
func VectorValue(v Vector) Value {
	return Value{v, 0}
}

// IsVector checks whether this value holds a vector.
func (v Value) IsVector() bool {
	return v.vector != nil
}

// Vector returns the vector held by this value, or nil if it holds a scalar.
func (v Value) Vector() Vector {
	return v.vector
}

// Scalar returns the scalar held by this value.  This is meaningless if the
// value holds a vector.
func (v Value) Scalar() Scalar {
	return v.scalar
}

// Add two values of the same kind.
func (v Value) Add(o Value) (Value, error) {
	switch {
	case v.IsVector() && o.IsVector():
		r, err := v.vector.Added(o.vector)
		return VectorValue(r), err
	case !v.IsVector() && !o.IsVector():
		return ScalarValue(v.scalar.Add(o.scalar)), nil
	default:
		return Value{}, ErrMixedValues
	}
}

// Sub subtracts two values of the same kind.
func (v Value) Sub(o Value) (Value, error) {
	switch {
	case v.IsVector() && o.IsVector():
		r, err := v.vector.Subtracted(o.vector)
		return VectorValue(r), err
	case !v.IsVector() && !o.IsVector():
		return ScalarValue(v.scalar.Sub(o.scalar)), nil
	default:
		return Value{}, ErrMixedValues
	}
}

// Mul multiplies two values.  The product of two vectors is their dot product,
// whilst the product of a vector and a scalar scales the vector.
func (v Value) Mul(o Value) (Value, error) {
	switch {
	case v.IsVector() && o.IsVector():
		r, err := v.vector.Dot(o.vector)
		return ScalarValue(r), err
	case v.IsVector():
		return VectorValue(v.vector.Scaled(o.scalar)), nil
	case o.IsVector():
		return VectorValue(o.vector.Scaled(v.scalar)), nil
	default:
		return ScalarValue(v.scalar.Mul(o.scalar)), nil
	}
}

// Equals checks whether two values are identical.
func (v Value) Equals(o Value) bool {
	if v.IsVector() != o.IsVector() {
		return false
	} else if v.IsVector() {
		return v.vector.Equals(o.vector)
	}
	//
	return v.scalar.Equals(o.scalar)
}

// Determinant computes the determinant of a square matrix given in row-major
// order, using cofactor expansion along the first row.  Entries in the first
// row may be vectors, in which case the result is a vector.
func Determinant(matrix []Value) (Value, error) {
	var (
		size = int(math.Sqrt(float64(len(matrix))))
		acc  Value
	)
	//
	if len(matrix) == 0 || size*size != len(matrix) {
		return Value{}, ErrNonSquare
	} else if size == 1 {
		return matrix[0], nil
	}
	//
	for col := 0; col < size; col++ {
		minor, err := Determinant(minorOf(matrix, size, col))
		if err != nil {
			return Value{}, err
		}
		// Cofactor
		term, err := minor.Mul(matrix[col])
		if err != nil {
			return Value{}, err
		}
		//
		switch {
		case col == 0:
			acc = term
		case col%2 == 0:
			acc, err = acc.Add(term)
		default:
			acc, err = acc.Sub(term)
		}
		//
		if err != nil {
			return Value{}, err
		}
	}
	//
	return acc, nil
}

// CrossOf computes the generalised cross product of n-1 vectors in n
// dimensional space as the determinant of the matrix whose first row holds the
// unit vectors, and whose remaining rows hold the given vectors.
func CrossOf(vectors ...Vector) (Vector, error) {
	var (
		n      = uint(len(vectors) + 1)
		matrix = make([]Value, 0, n*n)
	)
	//
	for _, u := range Units(n) {
		matrix = append(matrix, VectorValue(u))
	}
	//
	for _, v := range vectors {
		if v.Dim() != n {
			return nil, &DimensionMismatchError{n, v.Dim()}
		}
		//
		for _, x := range v {
			matrix = append(matrix, ScalarValue(Scalar(x)))
		}
	}
	//
	det, err := Determinant(matrix)
	//
	if err != nil {
		return nil, err
	}
	//
	return det.Vector(), nil
}

// Determine the minor of a given column in the first row.  That is, the matrix
// obtained by removing the first row and the given column.
func minorOf(matrix []Value, size int, col int) []Value {
	minor := make([]Value, 0, (size-1)*(size-1))
	//
	for i := size; i < len(matrix); i++ {
		if i%size != col {
			minor = append(minor, matrix[i])
		}
	}
	//
	return minor
}
