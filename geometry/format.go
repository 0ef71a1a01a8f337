// Copyright 2026 The GeoRect Authors
// SPDX-License-Identifier: Apache-2.0

// Package geometry classifies raw geometry strings, extracts their
// coordinates and reduces them to an axis-aligned bounding rectangle.
package geometry

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Format is the closed set of geometry encodings the detector can report.
// The parser switches over the same values, so detector and parser cannot
// drift apart.
type Format int

const (
	// FormatEmpty marks a null or blank cell.
	FormatEmpty Format = iota
	// FormatGeoJSON marks a JSON object carrying a "type" key.
	FormatGeoJSON
	// FormatWKT marks a well-known-text keyword with a parenthesized body.
	FormatWKT
	// FormatJSON marks any other valid JSON value.
	FormatJSON
	// FormatCoordinatePair marks "(lon, lat)".
	FormatCoordinatePair
	// FormatCoordinateArray marks "[lon, lat]".
	FormatCoordinateArray
	// FormatUnknown marks everything else.
	FormatUnknown
)

func (f Format) String() string {
	switch f {
	case FormatEmpty:
		return "empty"
	case FormatGeoJSON:
		return "geojson"
	case FormatWKT:
		return "wkt"
	case FormatJSON:
		return "json"
	case FormatCoordinatePair:
		return "coordinate pair"
	case FormatCoordinateArray:
		return "coordinate array"
	default:
		return "unknown"
	}
}

var (
	spacesRe = regexp.MustCompile(`\s+`)
	wktRe    = regexp.MustCompile(`^(?:POINT|LINESTRING|POLYGON|MULTIPOINT|MULTILINESTRING|MULTIPOLYGON)\s*\(.*\)$`)
	pairRe   = regexp.MustCompile(`^\s*\(\s*-?\d+\.?\d*\s*,\s*-?\d+\.?\d*\s*\)\s*$`)
	arrayRe  = regexp.MustCompile(`^\s*\[\s*-?\d+\.?\d*\s*,\s*-?\d+\.?\d*\s*\]\s*$`)
)

// Detect classifies a raw geometry string. It is total: every input,
// including malformed or empty text, maps to exactly one Format.
//
// The categories overlap, so the first match wins: a JSON object with a
// "type" key is GeoJSON even though it is also valid JSON, and a WKT body
// is checked before the generic JSON fallback.
func Detect(raw string) Format {
	s := strings.TrimSpace(raw)
	if s == "" {
		return FormatEmpty
	}

	var v any

	jsonOK := json.Unmarshal([]byte(s), &v) == nil
	if jsonOK {
		if obj, ok := v.(map[string]any); ok {
			if _, ok := obj["type"]; ok {
				return FormatGeoJSON
			}
		}
	}

	if wktRe.MatchString(strings.ToUpper(spacesRe.ReplaceAllString(s, " "))) {
		return FormatWKT
	}

	if jsonOK {
		return FormatJSON
	}

	if pairRe.MatchString(s) {
		return FormatCoordinatePair
	}

	if arrayRe.MatchString(s) {
		return FormatCoordinateArray
	}

	return FormatUnknown
}
