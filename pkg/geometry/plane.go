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
	"math"

	"github.com/consensys/go-symcalc/pkg/linalg"
)

// Tolerance used when deciding whether a point lies on a plane, or whether two
// normals are parallel.
const tolerance = 1e-9

// Axis identifies one of the three coordinate axes.
type Axis uint

const (
	// XAxis is the x axis.
	XAxis Axis = iota
	// YAxis is the y axis.
	YAxis
	// ZAxis is the z axis.
	ZAxis
)

// IntersectionKind determines how a plane meets a given axis.
type IntersectionKind uint

const (
	// PointIntersection indicates the plane crosses the axis at a single point.
	PointIntersection IntersectionKind = iota
	// Parallel indicates the plane never meets the axis.
	Parallel
	// Coincident indicates the axis lies within the plane.
	Coincident
)

// Intersection describes how a plane meets a given axis.  The point is only
// meaningful for PointIntersection.
type Intersection struct {
	Kind  IntersectionKind
	Point Point3
}

// Plane3 represents a plane in three dimensional space, given by a point on the
// plane and its (unit) normal.
type Plane3 struct {
	Point  Point3
	Normal linalg.Vector
}

// PlaneFromPointAndNormal constructs a plane through a given point with a given
// normal.  The normal is normalised to unit length.
func PlaneFromPointAndNormal(point Point3, normal linalg.Vector) (Plane3, error) {
	if normal.Dim() != 3 {
		return Plane3{}, &linalg.DimensionMismatchError{Expected: 3, Actual: normal.Dim()}
	}
	//
	return Plane3{point, normal.Unit()}, nil
}

// PlaneFromPoints constructs the plane through three given points.
func PlaneFromPoints(p1, p2, p3 Point3) Plane3 {
	// NOTE: cross cannot fail here since both vectors are three dimensional.
	normal, _ := VectorBetween(p1, p2).Cross(VectorBetween(p1, p3))
	//
	return Plane3{p1, normal.Unit()}
}

// PlaneFromEquation constructs the plane satisfying ax + by + cz = d.
func PlaneFromEquation(a, b, c, d float64) Plane3 {
	magnitude := math.Sqrt(a*a + b*b + c*c)
	a /= magnitude
	b /= magnitude
	c /= magnitude
	d /= magnitude
	//
	return Plane3{
		Normal: linalg.NewVector(a, b, c),
		Point:  Point3{a * d, b * d, c * d},
	}
}

// Equation returns the coefficients (a,b,c) and right-hand side d of the
// equation ax + by + cz = d satisfied by all points on this plane.
func (p Plane3) Equation() (linalg.Vector, linalg.Scalar) {
	d, _ := p.Point.AsVector().Dot(p.Normal)
	return p.Normal, d
}

// Contains checks whether a given point lies on this plane.
func (p Plane3) Contains(point Point3) bool {
	lhs, _ := point.AsVector().Dot(p.Normal)
	_, rhs := p.Equation()
	//
	return lhs.ApproxEquals(rhs, tolerance)
}

// Solve substitutes two known coordinates into the plane's equation, and solves
// for the coordinate along the given axis.  The known coordinates are given in
// axis order (e.g. for YAxis, u is x and v is z).  This returns false when the
// plane is parallel to the given axis.
func (p Plane3) Solve(axis Axis, u, v float64) (float64, bool) {
	coeffs, d := p.Equation()
	a, b, c := coeffs[0], coeffs[1], coeffs[2]
	//
	switch axis {
	case XAxis:
		if a == 0 {
			return 0, false
		}
		//
		return (d.Float() - b*u - c*v) / a, true
	case YAxis:
		if b == 0 {
			return 0, false
		}
		//
		return (d.Float() - a*u - c*v) / b, true
	default:
		if c == 0 {
			return 0, false
		}
		//
		return (d.Float() - a*u - b*v) / c, true
	}
}

// AxisIntersections determines how this plane meets each of the x, y and z
// axes (in that order).
func (p Plane3) AxisIntersections() [3]Intersection {
	var (
		onOrigin = p.Contains(Origin)
		result   [3]Intersection
	)
	//
	for i, axis := range []Axis{XAxis, YAxis, ZAxis} {
		val, ok := p.Solve(axis, 0, 0)
		//
		switch {
		case !ok && onOrigin:
			result[i] = Intersection{Kind: Coincident}
		case !ok:
			result[i] = Intersection{Kind: Parallel}
		default:
			var pt Point3
			//
			switch axis {
			case XAxis:
				pt.X = val
			case YAxis:
				pt.Y = val
			default:
				pt.Z = val
			}
			//
			result[i] = Intersection{PointIntersection, pt}
		}
	}
	//
	return result
}

// IsOrthogonal checks whether two planes meet at right angles.
func (p Plane3) IsOrthogonal(o Plane3) bool {
	dot, _ := p.Normal.Dot(o.Normal)
	return dot.IsZero()
}

// IsParallel checks whether two planes are parallel.
func (p Plane3) IsParallel(o Plane3) bool {
	cross, _ := p.Normal.Cross(o.Normal)
	return cross.MagnitudeSquared().Float() <= tolerance
}

// Equals checks whether two planes describe the same set of points.
func (p Plane3) Equals(o Plane3) bool {
	return p.Contains(o.Point) && p.IsParallel(o)
}
