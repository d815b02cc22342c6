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
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// TablePrinter lays out a grid of cells in aligned columns.  Each column is as
// wide as its widest cell, unless a maximum width is imposed in which case
// longer cells are clipped.
type TablePrinter struct {
	widths  []uint
	rows    [][]string
	escapes [][]AnsiEscape
	// Columns which are left (rather than right) aligned.
	left []bool
	// Determines whether escapes are emitted or not.
	colour bool
}

// NewTablePrinter constructs an empty table with a given number of columns and
// rows.
func NewTablePrinter(cols uint, rows uint) *TablePrinter {
	var (
		cells   = make([][]string, rows)
		escapes = make([][]AnsiEscape, rows)
	)
	//
	for i := range rows {
		cells[i] = make([]string, cols)
		escapes[i] = make([]AnsiEscape, cols)
	}
	//
	return &TablePrinter{make([]uint, cols), cells, escapes, make([]bool, cols), true}
}

// Width returns the number of columns in this table.
func (p *TablePrinter) Width() uint {
	return uint(len(p.widths))
}

// Height returns the number of rows in this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// Set the contents of a given cell.  Widths are measured in runes.
func (p *TablePrinter) Set(col uint, row uint, val string) {
	p.widths[col] = max(p.widths[col], uint(utf8.RuneCountInString(val)))
	p.rows[row][col] = val
}

// Get the contents of a given cell.
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// SetRow sets every cell of a given row.  This fails if the number of values
// does not match the number of columns.
func (p *TablePrinter) SetRow(row uint, vals ...string) error {
	if len(vals) != len(p.widths) {
		return fmt.Errorf("row has %d values, expected %d", len(vals), len(p.widths))
	}
	//
	for col, val := range vals {
		p.Set(uint(col), row, val)
	}
	//
	return nil
}

// SetEscape sets the formatting applied to a given cell.
func (p *TablePrinter) SetEscape(col uint, row uint, escape AnsiEscape) {
	p.escapes[row][col] = escape
}

// SetRowEscape sets the formatting applied to every cell of a given row.
func (p *TablePrinter) SetRowEscape(row uint, escape AnsiEscape) {
	for col := range p.escapes[row] {
		p.escapes[row][col] = escape
	}
}

// AlignLeft left aligns a given column.  Columns are right aligned by default.
func (p *TablePrinter) AlignLeft(col uint) {
	p.left[col] = true
}

// Colour enables or disables ANSI escapes.  These should be disabled when the
// output is not a terminal, since otherwise the raw escape characters appear
// in the output.
func (p *TablePrinter) Colour(enable bool) {
	p.colour = enable
}

// SetMaxWidth puts an upper bound on the width of a given column.  Widths below
// three are raised to three, so there is always room for the clipping marker.
func (p *TablePrinter) SetMaxWidth(col uint, width uint) {
	p.widths[col] = min(p.widths[col], max(width, 3))
}

// FitTo shrinks the widest columns until the table fits within a given number
// of characters (including separators).  Nothing happens if the table already
// fits.
func (p *TablePrinter) FitTo(total uint) {
	for p.totalWidth() > total {
		widest := uint(0)
		//
		for col, w := range p.widths {
			if w > p.widths[widest] {
				widest = uint(col)
			}
		}
		// Give up once nothing more can be clipped
		if p.widths[widest] <= 3 {
			return
		}
		//
		p.widths[widest]--
	}
}

// Write the table to a given writer.
func (p *TablePrinter) Write(w io.Writer) error {
	var builder strings.Builder
	//
	for i, row := range p.rows {
		for j, cell := range row {
			var (
				width  = int(p.widths[j])
				escape = p.escapes[i][j]
			)
			//
			if runes := []rune(cell); uint(len(runes)) > p.widths[j] {
				cell = string(runes[:width-2]) + ".."
			}
			//
			if p.colour && !escape.IsEmpty() {
				builder.WriteString(escape.Build())
			}
			//
			if p.left[j] {
				fmt.Fprintf(&builder, " %-*s", width, cell)
			} else {
				fmt.Fprintf(&builder, " %*s", width, cell)
			}
			//
			if p.colour && !escape.IsEmpty() {
				builder.WriteString(ResetAnsiEscape().Build())
			}
			//
			builder.WriteString(" |")
		}
		//
		builder.WriteString("\n")
	}
	//
	_, err := io.WriteString(w, builder.String())
	//
	return err
}

// Each column occupies its width, plus a leading space and trailing " |".
func (p *TablePrinter) totalWidth() uint {
	total := uint(0)
	//
	for _, w := range p.widths {
		total += w + 3
	}
	//
	return total
}
