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
package termio

import (
	"strconv"
	"strings"
)

// Colour identifies one of the eight standard terminal colours.
type Colour uint

const (
	// Black colour
	Black Colour = iota
	// Red colour
	Red
	// Green colour
	Green
	// Yellow colour
	Yellow
	// Blue colour
	Blue
	// Magenta colour
	Magenta
	// Cyan colour
	Cyan
	// White colour
	White
)

// AnsiEscape accumulates a sequence of SGR (Select Graphic Rendition)
// parameters, such as colours or text attributes.  The zero value is the empty
// escape.
type AnsiEscape struct {
	params []int
}

// NewAnsiEscape constructs an empty escape.
func NewAnsiEscape() AnsiEscape {
	return AnsiEscape{}
}

// ResetAnsiEscape constructs an escape which clears all formatting.
func ResetAnsiEscape() AnsiEscape {
	return AnsiEscape{[]int{0}}
}

// Bold adds the bold attribute.
func (p AnsiEscape) Bold() AnsiEscape {
	return p.with(1)
}

// Underline adds the underline attribute.
func (p AnsiEscape) Underline() AnsiEscape {
	return p.with(4)
}

// Fg sets the foreground colour.
func (p AnsiEscape) Fg(col Colour) AnsiEscape {
	return p.with(30 + int(col))
}

// Bg sets the background colour.
func (p AnsiEscape) Bg(col Colour) AnsiEscape {
	return p.with(40 + int(col))
}

// IsEmpty checks whether this escape has no parameters.
func (p AnsiEscape) IsEmpty() bool {
	return len(p.params) == 0
}

// Build constructs the final escape sequence.
func (p AnsiEscape) Build() string {
	var builder strings.Builder
	//
	builder.WriteString("\033[")
	//
	for i, param := range p.params {
		if i != 0 {
			builder.WriteString(";")
		}
		//
		builder.WriteString(strconv.Itoa(param))
	}
	//
	builder.WriteString("m")
	//
	return builder.String()
}

// Wrap surrounds a given string with this escape and a reset.
func (p AnsiEscape) Wrap(text string) string {
	if p.IsEmpty() {
		return text
	}
	//
	return p.Build() + text + ResetAnsiEscape().Build()
}

// Copy-on-write, since escapes are passed around by value.
func (p AnsiEscape) with(param int) AnsiEscape {
	params := make([]int, len(p.params), len(p.params)+1)
	copy(params, p.params)
	//
	return AnsiEscape{append(params, param)}
}
