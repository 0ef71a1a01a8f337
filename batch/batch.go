// Copyright 2026 The GeoRect Authors
// SPDX-License-Identifier: Apache-2.0

// Package batch drives the per-directory processing pipeline: scan,
// validate, process, report.
package batch

import "errors"

var (
	// ErrNoInputFiles is returned when a scan finds nothing to process.
	ErrNoInputFiles = errors.New("no matching input files")
	// ErrFileNotFound is returned when an input disappears between scan
	// and validation.
	ErrFileNotFound = errors.New("file not found")
	// ErrUnsupportedExtension is returned for extensions no reader handles.
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	// ErrEmptyFile is returned for zero-byte inputs.
	ErrEmptyFile = errors.New("file is empty")
	// ErrMissingGeometryColumn is returned when a table lacks the
	// configured geometry column.
	ErrMissingGeometryColumn = errors.New("geometry column not found")
)
