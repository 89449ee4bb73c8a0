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

package spread_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/pdf"

	"github.com/R2D2-cz/split-pdf-spreads/spread"
)

func TestSplitPage(t *testing.T) {
	contents := pdf.NewReference(7, 0)
	src := pdf.Dict{
		"Type":     pdf.Name("Page"),
		"Rotate":   pdf.Integer(90),
		"Contents": contents,
	}
	media := &pdf.Rectangle{URx: 600, URy: 800}

	first, second := spread.SplitPage(src, media, spread.DefaultParams())

	wantFirst := pdf.Rectangle{LLx: 0, LLy: 0, URx: 300, URy: 800}
	wantSecond := pdf.Rectangle{LLx: 300, LLy: 0, URx: 600, URy: 800}
	if d := cmp.Diff(&wantFirst, first["CropBox"]); d != "" {
		t.Errorf("first CropBox differs (-want +got):\n%s", d)
	}
	if d := cmp.Diff(&wantSecond, second["CropBox"]); d != "" {
		t.Errorf("second CropBox differs (-want +got):\n%s", d)
	}

	// the physical page size follows the visible area
	for _, half := range []pdf.Dict{first, second} {
		if d := cmp.Diff(half["CropBox"], half["MediaBox"]); d != "" {
			t.Errorf("MediaBox differs from CropBox (-crop +media):\n%s", d)
		}
		if half["Rotate"] != pdf.Integer(90) {
			t.Errorf("rotation not preserved: %v", half["Rotate"])
		}
		if half["Contents"] != contents {
			t.Errorf("contents not carried over: %v", half["Contents"])
		}
	}
}

// TestSplitPageIndependence checks that the two halves own their box state:
// mutating one half must not change the source page or the other half.
func TestSplitPageIndependence(t *testing.T) {
	src := pdf.Dict{
		"Type":    pdf.Name("Page"),
		"CropBox": &pdf.Rectangle{URx: 600, URy: 800},
	}
	media := &pdf.Rectangle{URx: 600, URy: 800}

	first, second := spread.SplitPage(src, media, spread.DefaultParams())

	first["CropBox"].(*pdf.Rectangle).URx = 999
	first["MediaBox"].(*pdf.Rectangle).URy = 999
	first["Rotate"] = pdf.Integer(180)

	if got := src["CropBox"].(*pdf.Rectangle); *got != (pdf.Rectangle{URx: 600, URy: 800}) {
		t.Errorf("source CropBox changed: %v", got)
	}
	if _, ok := src["MediaBox"]; ok {
		t.Error("source page gained a MediaBox entry")
	}
	if got := second["CropBox"].(*pdf.Rectangle); *got != (pdf.Rectangle{LLx: 300, URx: 600, URy: 800}) {
		t.Errorf("sibling CropBox changed: %v", got)
	}
	if _, ok := second["Rotate"]; ok {
		t.Error("sibling page gained a Rotate entry")
	}

	if first["CropBox"] == first["MediaBox"] {
		t.Error("CropBox and MediaBox share one rectangle object")
	}
}

func TestSplitPageDegenerate(t *testing.T) {
	media := &pdf.Rectangle{}
	first, second := spread.SplitPage(pdf.Dict{"Type": pdf.Name("Page")}, media, spread.DefaultParams())

	for _, half := range []pdf.Dict{first, second} {
		box := half["CropBox"].(*pdf.Rectangle)
		if !box.IsZero() {
			t.Errorf("zero-size page produced box %v", box)
		}
	}
}
