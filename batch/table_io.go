// Copyright 2026 The GeoRect Authors
// SPDX-License-Identifier: Apache-2.0

package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Table is the in-memory form of one tabular input. Rows may be shorter
// than the header; readers do not pad.
type Table struct {
	Header []string
	Rows   [][]string
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}

	return -1
}

func readTable(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	case ".xlsx":
		return readXLSX(path)
	case ".xls":
		return nil, fmt.Errorf("%w: legacy .xls workbooks are not readable", ErrUnsupportedExtension)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExtension, filepath.Ext(path))
	}
}

func writeTable(path string, t *Table) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return writeCSV(path, t)
	case ".xlsx":
		return writeXLSX(path, t)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedExtension, filepath.Ext(path))
	}
}

func readCSV(path string) (*Table, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("opening csv: %w", err)
	}
	defer f.Close()

	// Spreadsheet exports routinely carry a UTF-8 BOM; strip it so the
	// first header cell compares clean.
	reader := csv.NewReader(transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrEmptyFile)
	}

	return &Table{Header: records[0], Rows: records[1:]}, nil
}

func writeCSV(path string, t *Table) (err error) {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("creating csv: %w", err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing csv: %w", cerr))
		}
	}()

	w := csv.NewWriter(f)

	if err := w.Write(t.Header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	if err := w.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("writing csv rows: %w", err)
	}

	w.Flush()

	return w.Error()
}

func readXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrEmptyFile)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrEmptyFile)
	}

	return &Table{Header: rows[0], Rows: rows[1:]}, nil
}

func writeXLSX(path string, t *Table) (err error) {
	f := excelize.NewFile()

	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing workbook: %w", cerr))
		}
	}()

	sheet := f.GetSheetName(0)

	write := func(rowIdx int, row []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return fmt.Errorf("addressing row %d: %w", rowIdx, err)
		}

		return f.SetSheetRow(sheet, cell, &row)
	}

	if err := write(1, t.Header); err != nil {
		return err
	}

	for i, row := range t.Rows {
		if err := write(i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(filepath.Clean(path)); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}

	return nil
}
