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

import "math"

// Angle captures anything which can be converted into both radians and
// degrees.
type Angle interface {
	Radians() Radians
	Degrees() Degrees
}

// Radians is an angle measured in radians.
type Radians float64

// Degrees is an angle measured in degrees.
type Degrees float64

// Radians implementation for Angle interface.
func (r Radians) Radians() Radians { return r }

// Degrees implementation for Angle interface.
func (r Radians) Degrees() Degrees { return Degrees(float64(r) * 180 / math.Pi) }

// Radians implementation for Angle interface.
func (d Degrees) Radians() Radians { return Radians(float64(d) * math.Pi / 180) }

// Degrees implementation for Angle interface.
func (d Degrees) Degrees() Degrees { return d }

// ToUnitCircle normalises an angle into the half-open interval [0,2π).
func ToUnitCircle(a Angle) Radians {
	r := math.Mod(float64(a.Radians()), 2*math.Pi)
	//
	if r < 0 {
		r += 2 * math.Pi
	}
	//
	return Radians(r)
}

// Equivalent checks whether two angles identify the same position on the unit
// circle.  For example, 300° and -60° are equivalent.
func Equivalent(lhs Angle, rhs Angle) bool {
	// Scale tolerance by 2π since the modulus operation loses some precision.
	var (
		l    = ToUnitCircle(lhs)
		r    = ToUnitCircle(rhs)
		diff = math.Abs(float64(l - r))
		tol  = 8 * math.Pi * Epsilon
	)
	// Account for wrap around either side of zero
	return diff <= tol || math.Abs(diff-2*math.Pi) <= tol
}
