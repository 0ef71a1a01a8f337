// Copyright 2026 The GeoRect Authors
// SPDX-License-Identifier: Apache-2.0

package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/msalgueiro/georect/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestGeoJSONBatch(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	writeInput(t, inputDir, "parcels.geojson",
		`{"type":"Polygon","coordinates":[[[10,10],[10,20],[30,20],[30,10],[10,10]]]}`)

	p := &GeoJSONProcessor{OutputDir: outputDir}

	summary, err := p.Run(inputDir)
	require.NoError(t, err)
	require.Len(t, summary.Succeeded, 1)
	assert.Empty(t, summary.Failed)

	outPath := filepath.Join(outputDir, "parcels"+geometry.RectangleSuffix+".geojson")
	assert.Equal(t, outPath, summary.Succeeded[0].Output)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	// The rectangle ring must reproduce the input's envelope.
	points, err := geometry.ParseDocument(data)
	require.NoError(t, err)
	require.Len(t, points, 5)

	bounds, err := geometry.ComputeBounds(points)
	require.NoError(t, err)
	assert.Equal(t, geometry.Bounds{MinLon: 10, MaxLon: 30, MinLat: 10, MaxLat: 20}, bounds)

	var doc struct {
		Type     string `json:"type"`
		Features []struct {
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Features, 1)

	props := doc.Features[0].Properties
	assert.Equal(t, "parcels"+geometry.RectangleSuffix, props["name"])
	assert.Equal(t, "parcels", props["source_file"])
	assert.Equal(t, []any{10.0, 10.0, 30.0, 20.0}, props["bbox"])
	assert.Equal(t, []any{20.0, 15.0}, props["center"])
	assert.Equal(t, 20.0, props["width"])
	assert.Equal(t, 10.0, props["height"])
}

// One invalid file aborts the whole batch with nothing written, while the
// summary still carries the validation failure.
func TestGeoJSONBatchFailClosed(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	writeInput(t, inputDir, "a.geojson", `{"type":"Point","coordinates":[1,2]}`)
	writeInput(t, inputDir, "b.geojson", `{"this is": "not geojson"}`)
	writeInput(t, inputDir, "c.geojson", `{"type":"Point","coordinates":[3,4]}`)

	p := &GeoJSONProcessor{OutputDir: outputDir}

	summary, err := p.Run(inputDir)
	require.Error(t, err)
	assert.Empty(t, summary.Succeeded)
	require.Len(t, summary.Failed, 1)
	assert.Equal(t, "b.geojson", summary.Failed[0].File)

	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "fail-closed batch must not write output")
}

func TestGeoJSONBatchValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty.geojson", ""},
		{"truncated.json", `{"type":`},
		{"no-type.json", `{"coordinates":[[1,2]]}`},
		{"bad-type.geojson", `{"type":"Circle","coordinates":[[1,2]]}`},
		{"no-coords.geojson", `{"type":"Polygon","coordinates":[]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inputDir := t.TempDir()
			writeInput(t, inputDir, tc.name, tc.content)

			p := &GeoJSONProcessor{OutputDir: t.TempDir()}

			summary, err := p.Run(inputDir)
			require.Error(t, err)
			require.Len(t, summary.Failed, 1)
			assert.Equal(t, tc.name, summary.Failed[0].File)
		})
	}
}

func TestGeoJSONBatchNoInputs(t *testing.T) {
	p := &GeoJSONProcessor{OutputDir: t.TempDir()}

	_, err := p.Run(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoInputFiles)
}
