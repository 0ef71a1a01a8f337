// Copyright 2026 The GeoRect Authors
// SPDX-License-Identifier: Apache-2.0

package geometry

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Point is a 2-D position. Any z/m components of the source geometry are
// dropped during parsing.
type Point struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// maxCoordinateDepth caps the descent into nested coordinate arrays so a
// pathological payload cannot recurse unbounded.
const maxCoordinateDepth = 64

var (
	numberRe  = regexp.MustCompile(`-?\d+\.?\d*`)
	wktPairRe = regexp.MustCompile(`(-?\d+\.?\d*)\s+(-?\d+\.?\d*)`)
)

// Parse extracts the ordered point list from a classified geometry string.
//
// FormatEmpty yields a nil slice and no error; callers decide whether an
// absent geometry is acceptable. For every other format a successful parse
// returns at least one point, each with exactly two components.
func Parse(format Format, raw string) ([]Point, error) {
	switch format {
	case FormatEmpty:
		return nil, nil
	case FormatGeoJSON, FormatJSON:
		return parseJSON(raw)
	case FormatWKT:
		return parseWKT(raw)
	case FormatCoordinatePair, FormatCoordinateArray:
		return parseSingleCoordinate(raw)
	default:
		return nil, &ParseError{Kind: KindUnrecognizedFormat, Message: "unrecognized geometry format"}
	}
}

func parseJSON(raw string) ([]Point, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, malformed("decoding json geometry", err)
	}

	var pts []Point

	var err error

	switch value := v.(type) {
	case map[string]any:
		pts, err = collectFromObject(value)
	case []any:
		pts, err = collectCoordinates(value, nil, 0)
	default:
		return nil, malformed("json geometry must be an object or an array", nil)
	}

	if err != nil {
		return nil, err
	}

	if len(pts) == 0 {
		return nil, malformed("no coordinates found in json geometry", nil)
	}

	return pts, nil
}

// Walks a GeoJSON-shaped object. A FeatureCollection contributes every
// feature's geometry, a Feature its own geometry, and anything else its
// top-level "coordinates" value.
func collectFromObject(obj map[string]any) ([]Point, error) {
	typ, _ := obj["type"].(string)

	var pts []Point

	var err error

	switch strings.ToLower(typ) {
	case "featurecollection":
		features, _ := obj["features"].([]any)
		for _, f := range features {
			feature, ok := f.(map[string]any)
			if !ok {
				continue
			}

			geom, _ := feature["geometry"].(map[string]any)

			pts, err = collectCoordinates(geom["coordinates"], pts, 0)
			if err != nil {
				return nil, err
			}
		}
	case "feature":
		geom, _ := obj["geometry"].(map[string]any)
		pts, err = collectCoordinates(geom["coordinates"], pts, 0)
	default:
		pts, err = collectCoordinates(obj["coordinates"], pts, 0)
	}

	return pts, err
}

// Depth-first descent into nested coordinate lists. A list whose first
// element is numeric is one position; only its first two components are
// kept. Non-list values are ignored.
func collectCoordinates(v any, pts []Point, depth int) ([]Point, error) {
	if depth > maxCoordinateDepth {
		return nil, malformed("coordinate nesting exceeds depth limit", nil)
	}

	list, ok := v.([]any)
	if !ok {
		return pts, nil
	}

	if len(list) > 0 {
		if _, isNum := list[0].(float64); isNum {
			if len(list) < 2 {
				return nil, malformed("coordinate has fewer than two components", nil)
			}

			lon, okLon := list[0].(float64)

			lat, okLat := list[1].(float64)
			if !okLon || !okLat {
				return nil, malformed("non-numeric coordinate component", nil)
			}

			return append(pts, Point{Lon: lon, Lat: lat}), nil
		}
	}

	for _, item := range list {
		var err error

		pts, err = collectCoordinates(item, pts, depth+1)
		if err != nil {
			return nil, err
		}
	}

	return pts, nil
}

// The ring and paren structure of the WKT body is ignored on purpose: the
// envelope only needs the positions, so a flat scan over "number number"
// token pairs harvests every ring of a MULTIPOLYGON just as well.
func parseWKT(raw string) ([]Point, error) {
	pairs := wktPairRe.FindAllStringSubmatch(raw, -1)

	var pts []Point

	for _, m := range pairs {
		lon, errLon := strconv.ParseFloat(m[1], 64)

		lat, errLat := strconv.ParseFloat(m[2], 64)
		if errLon != nil || errLat != nil {
			continue
		}

		pts = append(pts, Point{Lon: lon, Lat: lat})
	}

	if len(pts) == 0 {
		return nil, malformed("no coordinate pairs in wkt body", nil)
	}

	return pts, nil
}

// Both the "(lon, lat)" and "[lon, lat]" shapes reduce to the first two
// numeric tokens of the string.
func parseSingleCoordinate(raw string) ([]Point, error) {
	numbers := numberRe.FindAllString(raw, -1)
	if len(numbers) < 2 {
		return nil, malformed("coordinate needs two numeric components", nil)
	}

	lon, errLon := strconv.ParseFloat(numbers[0], 64)

	lat, errLat := strconv.ParseFloat(numbers[1], 64)
	if errLon != nil || errLat != nil {
		return nil, malformed("parsing coordinate components", nil)
	}

	return []Point{{Lon: lon, Lat: lat}}, nil
}

// The nine GeoJSON type values a standalone document may carry.
var validDocumentTypes = map[string]struct{}{
	"point":              {},
	"linestring":         {},
	"polygon":            {},
	"multipoint":         {},
	"multilinestring":    {},
	"multipolygon":       {},
	"geometrycollection": {},
	"feature":            {},
	"featurecollection":  {},
}

// ValidateDocument checks that data is a standalone GeoJSON document: a
// JSON object with a recognized "type" and at least one coordinate
// reachable by the same walk Parse uses. It does not verify geometric
// validity beyond that.
func ValidateDocument(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return malformed("invalid json", err)
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return malformed("geojson document must be an object", nil)
	}

	rawType, ok := obj["type"]
	if !ok {
		return &ParseError{Kind: KindMissingField, Message: `missing required "type" field`}
	}

	typ, _ := rawType.(string)
	if _, ok := validDocumentTypes[strings.ToLower(typ)]; !ok {
		return malformed(fmt.Sprintf("invalid geojson type %q", typ), nil)
	}

	pts, err := collectFromObject(obj)
	if err != nil {
		return err
	}

	if len(pts) == 0 {
		return &ParseError{Kind: KindMissingField, Message: "no coordinate data found"}
	}

	return nil
}

// ParseDocument extracts every point of a standalone GeoJSON document.
func ParseDocument(data []byte) ([]Point, error) {
	return parseJSON(string(data))
}
