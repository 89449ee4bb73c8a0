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

// Split-spreads cuts scanned double-page spreads into single pages.
//
// Each page of every input PDF is split in two along a configurable line,
// so that a scanned book spread becomes two book pages.  Units are PDF
// points (1/72 inch).
//
// Usage:
//
//	split-spreads -i book.pdf -o out
//	split-spreads -i ./scans -o ./out -ratio 0.55 -gutter 6
//	split-spreads -i ./scans -o ./out -orientation horizontal
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/R2D2-cz/split-pdf-spreads/batch"
	"github.com/R2D2-cz/split-pdf-spreads/spread"
)

func main() {
	var input, output, suffix string
	params := spread.DefaultParams()

	flag.StringVar(&input, "input", "", "input PDF file or directory containing PDFs")
	flag.StringVar(&input, "i", "", "shorthand for -input")
	flag.StringVar(&output, "output", "", "output directory for the split PDFs")
	flag.StringVar(&output, "o", "", "shorthand for -output")
	flag.Var(&params.Orientation, "orientation",
		"split direction: vertical (left/right) or horizontal (bottom/top)")
	flag.Float64Var(&params.Ratio, "ratio", params.Ratio,
		"split position as a fraction of the page width or height")
	flag.Float64Var(&params.Gutter, "gutter", params.Gutter,
		"gap (points) removed around the split line, e.g. for the spine")
	flag.Float64Var(&params.Offset, "offset", params.Offset,
		"absolute shift (points) of the split line")
	flag.StringVar(&suffix, "suffix", "_split",
		"suffix appended to each output file name before the extension")
	flag.Parse()

	if input == "" || output == "" {
		fmt.Fprintln(os.Stderr, "error: -input and -output are required")
		flag.Usage()
		os.Exit(1)
	}

	inputs, err := batch.Discover(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "no PDF files found to process")
		os.Exit(1)
	}

	if err := os.MkdirAll(output, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Printf("processing %d file(s) ...\n", len(inputs))
	exitCode := 0
	for _, in := range inputs {
		outPath, err := batch.ProcessFile(in, output, params, suffix)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", in, err)
			exitCode = 1
			continue
		}
		fmt.Println("wrote", outPath)
	}
	os.Exit(exitCode)
}
