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

// Package batch drives the spread splitter across whole PDF files.
package batch

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"
	"seehuhn.de/go/pdf/pdfcopy"

	"github.com/R2D2-cz/split-pdf-spreads/spread"
)

// Discover returns the input files for the given path.  A directory yields
// its immediate children with a ".pdf" extension (matched case-insensitively,
// without descending into subdirectories), in sorted order.  A PDF file
// yields itself.  Any other path is an error.
func Discover(path string) ([]string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !fi.IsDir() {
		if !isPDF(path) {
			return nil, fmt.Errorf("%q is neither a PDF file nor a directory", path)
		}
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !isPDF(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(path, e.Name()))
	}
	return files, nil
}

func isPDF(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}

// OutputName derives the file name for the split version of path, by
// inserting the suffix between the stem and the extension.
func OutputName(path, suffix string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + suffix + ext
}

// SplitDocument reads every page of r in order, splits it using p, and
// appends the two halves to w, so that source page k becomes output pages
// 2k and 2k+1.  A document with n pages always yields exactly 2n output
// pages.  The document information dictionary is copied over when present.
//
// The assembled page tree is installed in the catalog of w; closing w is
// left to the caller.
func SplitDocument(w *pdf.Writer, r pdf.Getter, p spread.Params) error {
	copier := pdfcopy.NewCopier(w, r)

	numPages, err := pagetree.NumPages(r)
	if err != nil {
		return err
	}

	pagesRef := w.Alloc()
	kids := make(pdf.Array, 0, 2*numPages)
	for i := 0; i < numPages; i++ {
		_, src, err := pagetree.GetPage(r, i)
		if err != nil {
			return fmt.Errorf("page %d: %w", i, err)
		}
		mediaBox, err := pdf.GetRectangle(r, src["MediaBox"])
		if err != nil {
			return fmt.Errorf("page %d: %w", i, err)
		}
		if mediaBox == nil {
			return fmt.Errorf("page %d: missing MediaBox", i)
		}

		// The /Parent link is dropped before copying, so that the copier
		// does not drag the source page tree into the output.
		src = maps.Clone(src)
		delete(src, "Parent")
		dict, err := copier.CopyDict(src)
		if err != nil {
			return fmt.Errorf("page %d: %w", i, err)
		}

		first, second := spread.SplitPage(dict, mediaBox, p)
		for _, half := range []pdf.Dict{first, second} {
			half["Parent"] = pagesRef
			ref := w.Alloc()
			if err := w.Put(ref, half); err != nil {
				return fmt.Errorf("page %d: %w", i, err)
			}
			kids = append(kids, ref)
		}
	}

	// all output pages hang off a single flat /Pages node
	err = w.Put(pagesRef, pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Count": pdf.Integer(len(kids)),
		"Kids":  kids,
	})
	if err != nil {
		return err
	}
	w.GetMeta().Catalog = &pdf.Catalog{Pages: pagesRef}

	if info := r.GetMeta().Info; info != nil {
		newInfo, err := pdfcopy.CopyStruct(copier, info)
		if err != nil {
			return err
		}
		w.GetMeta().Info = newInfo
	}

	return nil
}

// ProcessFile splits every page of the document at inPath and writes the
// result to outDir, using the same PDF version as the input.  It returns
// the path of the written file.  A partly written output file is removed
// when processing fails.
func ProcessFile(inPath, outDir string, p spread.Params, suffix string) (string, error) {
	r, err := pdf.Open(inPath, nil)
	if err != nil {
		return "", err
	}
	defer r.Close()

	outPath := filepath.Join(outDir, OutputName(inPath, suffix))
	w, err := pdf.Create(outPath, pdf.GetVersion(r), nil)
	if err != nil {
		return "", err
	}

	if err := SplitDocument(w, r, p); err != nil {
		w.Close()
		os.Remove(outPath)
		return "", err
	}
	if err := w.Close(); err != nil {
		os.Remove(outPath)
		return "", err
	}
	return outPath, nil
}
