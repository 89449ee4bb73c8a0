// split-pdf-spreads - split scanned double-page spreads into single pages
// Copyright (C) 2026  The split-pdf-spreads authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package spread cuts scanned double-page spreads into single pages.
//
// A spread is one physical page containing two logical book pages side by
// side (or stacked, for landscape scans).  The package computes the two
// crop boxes which partition a page along a configurable split line, and
// turns one page dictionary into two independent page dictionaries carrying
// these boxes.
package spread

import (
	"fmt"
	"math"

	"seehuhn.de/go/pdf"
)

// Orientation selects the direction of the split line.
type Orientation int

const (
	// Vertical cuts along a vertical line, yielding a left and a right half.
	Vertical Orientation = iota

	// Horizontal cuts along a horizontal line, yielding a bottom and a top
	// half.
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	default:
		return "vertical"
	}
}

// Set implements the [flag.Value] interface.
func (o *Orientation) Set(s string) error {
	switch s {
	case "vertical":
		*o = Vertical
	case "horizontal":
		*o = Horizontal
	default:
		return fmt.Errorf("invalid orientation %q (use vertical or horizontal)", s)
	}
	return nil
}

// Params describes where a spread is cut.  A Params value is immutable for
// the duration of a batch run and is passed by value.
//
// Ratio is the position of the split line as a fraction of the page width
// (vertical) or height (horizontal); 0.5 cuts in the middle.  Gutter is a
// gap, in PDF points, removed symmetrically around the split line, e.g. to
// cut away the spine of the scanned book.  Offset shifts the split line by
// an absolute number of points.
//
// None of the fields are validated.  Values which push a boundary past the
// page edge produce a degenerate zero-width half rather than an error.
type Params struct {
	Orientation Orientation
	Ratio       float64
	Gutter      float64
	Offset      float64
}

// DefaultParams returns the parameters for a plain 50/50 vertical split.
func DefaultParams() Params {
	return Params{
		Orientation: Vertical,
		Ratio:       0.5,
	}
}

// Boxes computes the two crop boxes for a page of the given size.
//
// For a vertical split the first box is the left half and the second box is
// the right half; for a horizontal split the first box is the bottom half
// and the second box is the top half.  The boxes span the full page in the
// other direction.
//
// Each derived boundary is clamped into the page independently, so both
// boxes always have non-negative area.  Boxes is a pure function.
func Boxes(width, height float64, p Params) (first, second pdf.Rectangle) {
	axis := width
	if p.Orientation == Horizontal {
		axis = height
	}
	split := axis*p.Ratio + p.Offset
	pad := p.Gutter / 2

	lo := clamp(split-pad, axis)
	hi := clamp(split+pad, axis)

	if p.Orientation == Horizontal {
		first = pdf.Rectangle{LLx: 0, LLy: 0, URx: width, URy: lo}
		second = pdf.Rectangle{LLx: 0, LLy: hi, URx: width, URy: height}
	} else {
		first = pdf.Rectangle{LLx: 0, LLy: 0, URx: lo, URy: height}
		second = pdf.Rectangle{LLx: hi, LLy: 0, URx: width, URy: height}
	}
	return first, second
}

func clamp(x, limit float64) float64 {
	return math.Max(0, math.Min(limit, x))
}
