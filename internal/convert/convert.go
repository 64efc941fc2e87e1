// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs the one-shot extraction pass: scan the source
// tree, extract an icon definition from each candidate file, and emit
// the combined document.
package convert

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/iconpack/internal/emit"
	"github.com/pdiddy/iconpack/internal/extract"
	"github.com/pdiddy/iconpack/internal/scan"
	"github.com/pdiddy/iconpack/pkg/types"
)

// Summary holds the outcome of a conversion run.
type Summary struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of files processed.
func (s Summary) Total() int {
	return s.Converted + s.Skipped + s.Failed
}

// HasFailures reports whether any files failed conversion.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Run performs a full conversion pass. Per-file progress goes to w:
// every file visited prints a scanning line, files without a definition
// print a skip line, and files with unclassifiable palette tokens print
// a failure line and are excluded from the document. The document is
// written once, after all files are processed; an unreadable file or an
// unwritable output aborts the run with no output written.
func Run(cfg types.ConvertConfig, w io.Writer) (Summary, error) {
	paths, err := scan.Sources(cfg.SourceDir, cfg.Extension)
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	var blocks []string

	for _, path := range paths {
		fmt.Fprintf(w, "scanning %s\n", path)

		data, err := os.ReadFile(path)
		if err != nil {
			return summary, fmt.Errorf("reading %s: %w", path, err)
		}

		rec, err := extract.Definition(string(data))
		switch {
		case errors.Is(err, extract.ErrNoMatch):
			fmt.Fprintf(w, "skipped %s (no definition)\n", path)
			summary.Skipped++
			continue
		case err != nil:
			fmt.Fprintf(w, "failed  %s: %v\n", path, err)
			summary.Failed++
			continue
		}

		blocks = append(blocks, emit.FormatRecord(rec))
		summary.Converted++
	}

	if err := emit.WriteDocument(cfg.OutputFile, blocks); err != nil {
		return summary, err
	}

	fmt.Fprintf(w, "\nconverted: %d, skipped: %d, failed: %d (total: %d)\n",
		summary.Converted, summary.Skipped, summary.Failed, summary.Total())

	return summary, nil
}

// Records performs the extraction pass without emitting the document.
// The index stage uses it to rebuild from the same source of truth.
func Records(cfg types.ConvertConfig, w io.Writer) ([]*types.Record, Summary, error) {
	paths, err := scan.Sources(cfg.SourceDir, cfg.Extension)
	if err != nil {
		return nil, Summary{}, err
	}

	var summary Summary
	var records []*types.Record

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, summary, fmt.Errorf("reading %s: %w", path, err)
		}

		rec, err := extract.Definition(string(data))
		switch {
		case errors.Is(err, extract.ErrNoMatch):
			fmt.Fprintf(w, "skipped %s (no definition)\n", path)
			summary.Skipped++
			continue
		case err != nil:
			fmt.Fprintf(w, "failed  %s: %v\n", path, err)
			summary.Failed++
			continue
		}

		records = append(records, rec)
		summary.Converted++
	}

	return records, summary, nil
}
