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
package geometry

import (
	"fmt"

	"github.com/consensys/go-symcalc/pkg/linalg"
)

// Point3 represents a point in three dimensional space.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// Origin is the point (0,0,0).
var Origin = Point3{0, 0, 0}

// VectorBetween returns the vector from one point to another.
func VectorBetween(from Point3, to Point3) linalg.Vector {
	return linalg.NewVector(to.X-from.X, to.Y-from.Y, to.Z-from.Z)
}

// AsVector returns the position vector of this point.
func (p Point3) AsVector() linalg.Vector {
	return VectorBetween(Origin, p)
}

// Translate returns the point obtained by moving this point along a given
// vector.
func (p Point3) Translate(v linalg.Vector) (Point3, error) {
	if v.Dim() != 3 {
		return p, &linalg.DimensionMismatchError{Expected: 3, Actual: v.Dim()}
	}
	//
	return Point3{p.X + v[0], p.Y + v[1], p.Z + v[2]}, nil
}

func (p Point3) String() string {
	return fmt.Sprintf("(%s, %s, %s)", linalg.Scalar(p.X), linalg.Scalar(p.Y), linalg.Scalar(p.Z))
}
