// Copyright 2026 The GeoRect Authors
// SPDX-License-Identifier: Apache-2.0

package batch

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSVStripsBOM(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "bom.csv", "\uFEFFgeom,name\n\"[1,2]\",a\n")

	table, err := readTable(filepath.Join(dir, "bom.csv"))
	require.NoError(t, err)
	assert.Equal(t, []string{"geom", "name"}, table.Header)
	assert.Equal(t, 0, table.ColumnIndex("geom"))
}

func TestReadTableRaggedRows(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "ragged.csv", "a,b,c\n1\n1,2,3\n")

	table, err := readTable(filepath.Join(dir, "ragged.csv"))
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Len(t, table.Rows[0], 1)
	assert.Len(t, table.Rows[1], 3)
}

func TestColumnIndex(t *testing.T) {
	table := &Table{Header: []string{"id", "geom"}}

	assert.Equal(t, 1, table.ColumnIndex("geom"))
	assert.Equal(t, -1, table.ColumnIndex("missing"))
}

func TestXLSXRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	in := &Table{
		Header: []string{"id", "geom"},
		Rows: [][]string{
			{"1", "POINT(1 2)"},
			{"2", "[3,4]"},
		},
	}
	require.NoError(t, writeTable(path, in))

	out, err := readTable(path)
	require.NoError(t, err)
	assert.Equal(t, in.Header, out.Header)
	require.Len(t, out.Rows, 2)
	assert.Equal(t, in.Rows[0], out.Rows[0])
	assert.Equal(t, in.Rows[1], out.Rows[1])
}

func TestReadTableUnsupported(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "doc.xls", "junk")

	_, err := readTable(filepath.Join(dir, "doc.xls"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedExtension)
}
