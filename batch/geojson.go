// Copyright 2026 The GeoRect Authors
// SPDX-License-Identifier: Apache-2.0

package batch

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/msalgueiro/georect/geometry"
)

// GeoJSONProcessor runs the fail-closed GeoJSON batch mode: every input
// must validate before the first rectangle file is written.
type GeoJSONProcessor struct {
	OutputDir string
}

// Run scans dir for .geojson/.json files and generates one rectangle
// FeatureCollection per input. If any file fails validation the batch
// aborts with zero output and the returned Summary carries every
// validation failure.
func (p *GeoJSONProcessor) Run(dir string) (Summary, error) {
	files, err := ScanDir(dir, geojsonExtensions)
	if err != nil {
		return Summary{}, err
	}

	log.Printf("Found %d geojson file(s) under %s", len(files), dir)

	return run(files, FailClosed, p.validate, p.process)
}

func (p *GeoJSONProcessor) validate(path string) error {
	if err := checkFile(path); err != nil {
		return err
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	return geometry.ValidateDocument(data)
}

func (p *GeoJSONProcessor) process(path string) Result {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Result{File: base, Err: fmt.Errorf("reading file: %w", err)}
	}

	points, err := geometry.ParseDocument(data)
	if err != nil {
		return Result{File: base, Err: fmt.Errorf("extracting coordinates: %w", err)}
	}

	bounds, err := geometry.ComputeBounds(points)
	if err != nil {
		return Result{File: base, Err: fmt.Errorf("computing bounds: %w", err)}
	}

	center := bounds.Center()
	log.Printf(
		"%s: lon %.6f..%.6f lat %.6f..%.6f center (%.6f, %.6f) size %.6f x %.6f",
		base,
		bounds.MinLon, bounds.MaxLon,
		bounds.MinLat, bounds.MaxLat,
		center.Lon, center.Lat,
		bounds.Width(), bounds.Height(),
	)

	output, err := json.MarshalIndent(geometry.NewRectangleCollection(bounds, stem), "", "  ")
	if err != nil {
		return Result{File: base, Err: fmt.Errorf("encoding rectangle: %w", err)}
	}

	outPath := filepath.Join(p.OutputDir, stem+geometry.RectangleSuffix+".geojson")
	if err := os.WriteFile(outPath, output, 0o600); err != nil {
		return Result{File: base, Err: fmt.Errorf("writing rectangle file: %w", err)}
	}

	log.Printf("Generated %s", filepath.Base(outPath))

	return Result{File: base, Output: outPath}
}
