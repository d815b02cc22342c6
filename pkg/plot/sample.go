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
package plot

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/consensys/go-symcalc/pkg/expr"
	"github.com/consensys/go-symcalc/pkg/linalg"
	"github.com/consensys/go-symcalc/pkg/util/termio"
	log "github.com/sirupsen/logrus"
)

// ErrInvalidDensity is returned when sampling with a density which is not a
// positive, finite number.
var ErrInvalidDensity = errors.New("sample density must be positive")

// Domain is the half-open interval [From, To) of values over which a variable
// is swept.
type Domain struct {
	From float64
	To   float64
}

// Range is a closed interval [Min, Max].
type Range struct {
	Min float64
	Max float64
}

// Point is a single sample, pairing a value of the swept variable with the
// value of the expression there.
type Point struct {
	X float64
	Y float64
}

// Sample evaluates an expression of one variable across a given domain.  The
// variable takes the values i/density, for every integer i between
// From*density and To*density (both truncated towards zero, the latter
// exclusive).  Every other variable must already be bound, since sampling fails
// on the first point which does not evaluate to a constant.
func Sample(e expr.Expr, variable rune, domain Domain, density float64) ([]Point, error) {
	if density <= 0 || math.IsInf(density, 0) || math.IsNaN(density) {
		return nil, fmt.Errorf("%w (was %v)", ErrInvalidDensity, density)
	}
	//
	var (
		start = int64(domain.From * density)
		end   = int64(domain.To * density)
		// Reused across samples
		bindings = make(expr.Bindings, 1)
		points   []Point
	)
	//
	log.Debugf("sampling %s over [%v, %v) in steps of %v", e, domain.From, domain.To, 1/density)
	//
	for i := start; i < end; i++ {
		x := float64(i) / density
		bindings[variable] = linalg.Scalar(x)
		//
		y, err := expr.Evaluate(e, bindings)
		if err != nil {
			return nil, fmt.Errorf("sampling at %c = %v: %w", variable, x, err)
		}
		//
		points = append(points, Point{x, y.Float()})
	}
	//
	return points, nil
}

// Bounds determines the smallest and largest values taken by the samples.
// This returns false when there are no samples.  NaN values are ignored.
func Bounds(points []Point) (Range, bool) {
	var (
		bounds = Range{math.Inf(1), math.Inf(-1)}
		found  bool
	)
	//
	for _, p := range points {
		if !math.IsNaN(p.Y) {
			bounds.Min = min(bounds.Min, p.Y)
			bounds.Max = max(bounds.Max, p.Y)
			found = true
		}
	}
	//
	return bounds, found
}

// MapRange maps a value in one range onto the corresponding value in another.
// Values outside the source range are extrapolated.
func MapRange(src Range, value float64, dst Range) float64 {
	return dst.Min + ((value-src.Min)/(src.Max-src.Min))*(dst.Max-dst.Min)
}

// Table lays out a set of samples as a table with one row per sample, preceded
// by a heading row.  When barWidth is non-zero, a third column visualises each
// value as a bar scaled to the range of all values.
func Table(points []Point, variable rune, label string, barWidth uint) *termio.TablePrinter {
	var (
		cols          = uint(2)
		bounds, found = Bounds(points)
		heading       = termio.NewAnsiEscape().Bold()
	)
	//
	if barWidth > 0 {
		cols++
	}
	//
	table := termio.NewTablePrinter(cols, uint(len(points)+1))
	//
	if barWidth > 0 {
		table.AlignLeft(2)
	}
	//
	table.Set(0, 0, string(variable))
	table.Set(1, 0, label)
	table.SetRowEscape(0, heading)
	//
	for i, p := range points {
		row := uint(i + 1)
		table.Set(0, row, linalg.Scalar(p.X).String())
		table.Set(1, row, linalg.Scalar(p.Y).String())
		//
		if barWidth > 0 {
			table.Set(2, row, bar(bounds, found, p.Y, barWidth))
		}
	}
	//
	return table
}

func bar(bounds Range, found bool, y float64, width uint) string {
	switch {
	case !found || math.IsNaN(y) || math.IsInf(y, 0):
		return ""
	case math.IsInf(bounds.Min, 0) || math.IsInf(bounds.Max, 0):
		return ""
	case bounds.Min == bounds.Max:
		return strings.Repeat("#", int(width))
	}
	//
	n := MapRange(bounds, y, Range{0, float64(width)})
	//
	return strings.Repeat("#", int(math.Round(n)))
}
