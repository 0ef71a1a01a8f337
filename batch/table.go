// Copyright 2026 The GeoRect Authors
// SPDX-License-Identifier: Apache-2.0

package batch

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/msalgueiro/georect/geometry"
)

// DefaultGeometryField is the column read when no --geom-field is given.
const DefaultGeometryField = "geom"

// TableProcessor runs the fail-open tabular batch mode: a bad row is
// counted but never stops its file, and a bad file never stops the batch.
type TableProcessor struct {
	// OutputDir receives the generated files; empty means alongside each
	// input.
	OutputDir string
	// GeomField is the column holding the geometry string.
	GeomField string
}

// Run scans dir for .csv/.xlsx/.xls files and appends the eight
// bounding-corner columns to each.
func (p *TableProcessor) Run(dir string) (Summary, error) {
	if p.GeomField == "" {
		p.GeomField = DefaultGeometryField
	}

	files, err := ScanDir(dir, tableExtensions)
	if err != nil {
		return Summary{}, err
	}

	log.Printf("Found %d table file(s) under %s", len(files), dir)

	return run(files, FailOpen, p.validate, p.process)
}

func (p *TableProcessor) validate(path string) error {
	if err := checkFile(path); err != nil {
		return err
	}

	table, err := readTable(path)
	if err != nil {
		return err
	}

	if table.ColumnIndex(p.GeomField) < 0 {
		return fmt.Errorf("%w: %q", ErrMissingGeometryColumn, p.GeomField)
	}

	return nil
}

func (p *TableProcessor) process(path string) Result {
	base := filepath.Base(path)

	table, err := readTable(path)
	if err != nil {
		return Result{File: base, Err: err}
	}

	col := table.ColumnIndex(p.GeomField)
	if col < 0 {
		return Result{File: base, Err: fmt.Errorf("%w: %q", ErrMissingGeometryColumn, p.GeomField)}
	}

	log.Printf("Processing %s (%d rows)", base, len(table.Rows))

	width := len(table.Header)
	table.Header = append(table.Header, geometry.BoundFieldNames...)
	bar := newProgressBar(len(table.Rows), "Processing "+base)

	var rowsOK, rowsFailed int

	for i := range table.Rows {
		row := table.Rows[i]
		for len(row) < width {
			row = append(row, "")
		}

		cells := make([]string, len(geometry.BoundFieldNames))
		fields, err := rowBounds(row[col])

		switch {
		case err != nil:
			rowsFailed++

			if bar == nil {
				log.Printf("%s row %d: %s", base, i+2, err)
			}
		case fields != nil:
			for j, v := range fields {
				cells[j] = strconv.FormatFloat(v, 'f', -1, 64)
			}

			rowsOK++
		default:
			// Empty geometry: the new cells stay unset.
		}

		table.Rows[i] = append(row, cells...)

		if bar != nil {
			_ = bar.Add(1)
		} else if (i+1)%100 == 0 {
			log.Printf("%s: %d rows processed", base, i+1)
		}
	}

	outPath := p.outputPath(path)
	if err := writeTable(outPath, table); err != nil {
		return Result{File: base, Err: err}
	}

	log.Printf("Generated %s (%d rows ok, %d failed)", filepath.Base(outPath), rowsOK, rowsFailed)

	return Result{File: base, Output: outPath, RowsOK: rowsOK, RowsFailed: rowsFailed}
}

// rowBounds parses one cell and returns the eight bound fields. A nil
// slice with a nil error means the cell was empty and the row keeps its
// fields unset.
func rowBounds(raw string) ([]float64, error) {
	format := geometry.Detect(raw)
	if format == geometry.FormatEmpty {
		return nil, nil
	}

	points, err := geometry.Parse(format, raw)
	if err != nil {
		return nil, err
	}

	bounds, err := geometry.ComputeBounds(points)
	if err != nil {
		return nil, err
	}

	fields := geometry.BoundFields(bounds)

	return fields[:], nil
}

func (p *TableProcessor) outputPath(input string) string {
	dir := p.OutputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}

	base := filepath.Base(input)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	return filepath.Join(dir, stem+"_with_bounds"+ext)
}
