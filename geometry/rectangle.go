// Copyright 2026 The GeoRect Authors
// SPDX-License-Identifier: Apache-2.0

package geometry

// RectangleSuffix is appended to the source stem when naming the generated
// rectangle, both in the feature properties and the output filename.
const RectangleSuffix = "四角边框矩形面"

// FeatureCollection is the GeoJSON document written for each input file.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is one GeoJSON feature with a polygon geometry.
type Feature struct {
	Type       string          `json:"type"`
	Geometry   PolygonGeometry `json:"geometry"`
	Properties map[string]any  `json:"properties"`
}

// PolygonGeometry holds the polygon rings as [lon, lat] positions.
type PolygonGeometry struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

// NewRectangleCollection wraps the envelope in a single-feature collection
// whose polygon ring runs SW, NW, NE, SE and closes back on SW. Winding
// direction is not enforced. The properties describe the source and the
// raw bounds figures.
func NewRectangleCollection(b Bounds, source string) FeatureCollection {
	sw, nw, ne, se := b.SW(), b.NW(), b.NE(), b.SE()
	ring := [][2]float64{
		{sw.Lon, sw.Lat},
		{nw.Lon, nw.Lat},
		{ne.Lon, ne.Lat},
		{se.Lon, se.Lat},
		{sw.Lon, sw.Lat},
	}

	center := b.Center()

	return FeatureCollection{
		Type: "FeatureCollection",
		Features: []Feature{{
			Type: "Feature",
			Geometry: PolygonGeometry{
				Type:        "Polygon",
				Coordinates: [][][2]float64{ring},
			},
			Properties: map[string]any{
				"name":        source + RectangleSuffix,
				"description": "bounding rectangle derived from " + source,
				"source_file": source,
				"bounds":      b,
				"center":      [2]float64{center.Lon, center.Lat},
				"width":       b.Width(),
				"height":      b.Height(),
				"bbox":        b.BBox(),
			},
		}},
	}
}
