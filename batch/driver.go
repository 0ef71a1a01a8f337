// Copyright 2026 The GeoRect Authors
// SPDX-License-Identifier: Apache-2.0

package batch

import (
	"fmt"
	"log"
	"path/filepath"
)

// run is the shared driver for both modes. Every file is validated first
// and every validation result is reported; what happens next depends on
// the policy. Under FailClosed a single invalid file aborts the batch
// before any output is written. Under FailOpen invalid files are folded
// into the summary as failures and the valid ones are still processed.
//
// Files are handled strictly in order, one at a time.
func run(files []string, policy Policy, validate func(string) error, process func(string) Result) (Summary, error) {
	var summary Summary

	log.Printf("Validating %d file(s)", len(files))

	valid := make([]string, 0, len(files))

	for _, f := range files {
		base := filepath.Base(f)

		if err := validate(f); err != nil {
			log.Printf("Validation failed - %s: %s", base, err)

			summary = summary.Fold(Result{File: base, Err: err})

			continue
		}

		log.Printf("Validated %s", base)
		valid = append(valid, f)
	}

	if invalid := len(summary.Failed); policy == FailClosed && invalid > 0 {
		return summary, fmt.Errorf("%d of %d input files failed validation, nothing written", invalid, len(files))
	}

	for _, f := range valid {
		summary = summary.Fold(process(f))
	}

	return summary, nil
}
