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

package spread

import (
	"maps"

	"seehuhn.de/go/pdf"
)

// SplitPage turns one page dictionary into two.
//
// The two returned dictionaries are independent copies of page: mutating
// the box entries of one half never affects the source page or the other
// half.  Entries other than the page boxes, in particular /Rotate and
// /Contents, are carried over unchanged.
//
// The MediaBox of each half is set equal to its CropBox, so that viewers
// treat each half as a real page of the cropped size rather than as a
// full-sized page with a smaller visible window.  The split position is
// computed from the dimensions of mediaBox, and the resulting boxes are
// anchored at the coordinate origin.
func SplitPage(page pdf.Dict, mediaBox *pdf.Rectangle, p Params) (first, second pdf.Dict) {
	width := mediaBox.URx - mediaBox.LLx
	height := mediaBox.URy - mediaBox.LLy
	boxA, boxB := Boxes(width, height, p)

	first = cropTo(page, boxA)
	second = cropTo(page, boxB)
	return first, second
}

// cropTo returns a copy of the page dictionary with both the visible area
// and the physical page size set to box.  Each call allocates fresh
// rectangle objects, so no two pages share mutable box state.
func cropTo(page pdf.Dict, box pdf.Rectangle) pdf.Dict {
	dict := maps.Clone(page)
	crop := box
	media := box
	dict["CropBox"] = &crop
	dict["MediaBox"] = &media
	return dict
}
