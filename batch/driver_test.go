// Copyright 2026 The GeoRect Authors
// SPDX-License-Identifier: Apache-2.0

package batch

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFailClosed(t *testing.T) {
	files := []string{"a.geojson", "b.geojson", "c.geojson"}
	errInvalid := errors.New("bad file")

	var processed []string

	summary, err := run(files, FailClosed,
		func(f string) error {
			if f == "b.geojson" {
				return errInvalid
			}

			return nil
		},
		func(f string) Result {
			processed = append(processed, f)

			return Result{File: f}
		},
	)

	require.Error(t, err)
	assert.Empty(t, processed, "fail-closed must not process anything")
	require.Len(t, summary.Failed, 1)
	assert.Equal(t, "b.geojson", summary.Failed[0].File)
	assert.ErrorIs(t, summary.Failed[0].Err, errInvalid)
}

func TestRunFailOpen(t *testing.T) {
	files := []string{"a.csv", "b.csv", "c.csv"}

	summary, err := run(files, FailOpen,
		func(f string) error {
			if f == "a.csv" {
				return errors.New("missing column")
			}

			return nil
		},
		func(f string) Result {
			if f == "c.csv" {
				return Result{File: f, Err: errors.New("boom")}
			}

			return Result{File: f, RowsOK: 2, RowsFailed: 1}
		},
	)

	require.NoError(t, err, "fail-open batches complete despite bad files")
	require.Len(t, summary.Succeeded, 1)
	assert.Equal(t, "b.csv", summary.Succeeded[0].File)
	require.Len(t, summary.Failed, 2)
	assert.Equal(t, 1, summary.RowErrors())
}

func TestSummaryPrint(t *testing.T) {
	var s Summary

	s = s.Fold(Result{File: "a.csv", Output: "/out/a_with_bounds.csv", RowsOK: 3, RowsFailed: 1})
	s = s.Fold(Result{File: "b.csv", Err: errors.New("geometry column not found")})

	var buf strings.Builder

	s.Print(&buf)

	out := buf.String()
	assert.Contains(t, out, "Processed successfully: 1 file(s)")
	assert.Contains(t, out, "a.csv -> a_with_bounds.csv (3 rows ok, 1 rows failed)")
	assert.Contains(t, out, "Failed: 1 file(s)")
	assert.Contains(t, out, "b.csv: geometry column not found")
}

func TestSummaryFoldPreservesOrder(t *testing.T) {
	var s Summary

	s = s.Fold(Result{File: "1"})
	s = s.Fold(Result{File: "2", Err: errors.New("x")})
	s = s.Fold(Result{File: "3"})

	assert.Equal(t, []string{"1", "3"}, []string{s.Succeeded[0].File, s.Succeeded[1].File})
	assert.Equal(t, "2", s.Failed[0].File)
}
