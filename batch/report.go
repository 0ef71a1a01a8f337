// Copyright 2026 The GeoRect Authors
// SPDX-License-Identifier: Apache-2.0

package batch

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Print renders the run summary: successes with their generated files
// (and, for tables, row counts), then failures with their errors.
func (s Summary) Print(w io.Writer) {
	line := strings.Repeat("=", 80)

	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "Batch summary")
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "Processed successfully: %d file(s)\n", len(s.Succeeded))

	for _, r := range s.Succeeded {
		switch {
		case r.RowsOK > 0 || r.RowsFailed > 0:
			fmt.Fprintf(w, "  - %s -> %s (%d rows ok, %d rows failed)\n",
				r.File, filepath.Base(r.Output), r.RowsOK, r.RowsFailed)
		case r.Output != "":
			fmt.Fprintf(w, "  - %s -> %s\n", r.File, filepath.Base(r.Output))
		default:
			fmt.Fprintf(w, "  - %s\n", r.File)
		}
	}

	if len(s.Failed) > 0 {
		fmt.Fprintf(w, "Failed: %d file(s)\n", len(s.Failed))

		for _, r := range s.Failed {
			fmt.Fprintf(w, "  - %s: %s\n", r.File, r.Err)
		}
	}

	fmt.Fprintln(w, line)
}
