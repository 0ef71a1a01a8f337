// Copyright 2026 The GeoRect Authors
// SPDX-License-Identifier: Apache-2.0

package batch

// Policy selects how a batch reacts to per-file failures.
type Policy int

const (
	// FailClosed validates every file up front and aborts the whole batch
	// before any output is written if one fails.
	FailClosed Policy = iota
	// FailOpen records invalid files as failures and keeps processing the
	// rest.
	FailOpen
)

// Result is the outcome of processing one input file. Values are built by
// the processing call and folded into a Summary by the driver; nothing
// mutates a Result after it is returned.
type Result struct {
	File       string // input filename, without directory
	Output     string // path of the generated file, empty on failure
	Err        error  // nil on success
	RowsOK     int    // tabular mode: rows with bounds appended
	RowsFailed int    // tabular mode: rows whose geometry failed to parse
}

// Summary aggregates the per-file results of one batch run, preserving
// input order within each list.
type Summary struct {
	Succeeded []Result
	Failed    []Result
}

// Fold returns a new Summary with r appended to the matching list.
func (s Summary) Fold(r Result) Summary {
	if r.Err != nil {
		s.Failed = append(s.Failed, r)
	} else {
		s.Succeeded = append(s.Succeeded, r)
	}

	return s
}

// RowErrors totals the failed rows across all processed files.
func (s Summary) RowErrors() int {
	var n int
	for _, r := range s.Succeeded {
		n += r.RowsFailed
	}

	return n
}
