// Copyright 2026 The GeoRect Authors
// SPDX-License-Identifier: Apache-2.0

package geometry

// Bounds is the minimal axis-aligned rectangle enclosing a point set.
// Min values never exceed their Max counterparts.
type Bounds struct {
	MinLon float64 `json:"min_lon"`
	MaxLon float64 `json:"max_lon"`
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
}

// ComputeBounds reduces a point list to its envelope in one linear pass.
// It fails with an EmptyGeometry error when the set is empty; callers must
// filter out empty geometries before reaching here.
func ComputeBounds(points []Point) (Bounds, error) {
	if len(points) == 0 {
		return Bounds{}, &ParseError{Kind: KindEmptyGeometry, Message: "empty geometry"}
	}

	b := Bounds{
		MinLon: points[0].Lon,
		MaxLon: points[0].Lon,
		MinLat: points[0].Lat,
		MaxLat: points[0].Lat,
	}

	for _, p := range points[1:] {
		if p.Lon < b.MinLon {
			b.MinLon = p.Lon
		}

		if p.Lon > b.MaxLon {
			b.MaxLon = p.Lon
		}

		if p.Lat < b.MinLat {
			b.MinLat = p.Lat
		}

		if p.Lat > b.MaxLat {
			b.MaxLat = p.Lat
		}
	}

	return b, nil
}

// Center returns the axis midpoints of the envelope.
func (b Bounds) Center() Point {
	return Point{Lon: (b.MinLon + b.MaxLon) / 2, Lat: (b.MinLat + b.MaxLat) / 2}
}

// Width is the longitude span. Zero for single-point or vertically
// collinear inputs.
func (b Bounds) Width() float64 {
	return b.MaxLon - b.MinLon
}

// Height is the latitude span.
func (b Bounds) Height() float64 {
	return b.MaxLat - b.MinLat
}

// BBox returns [min_lon, min_lat, max_lon, max_lat].
func (b Bounds) BBox() [4]float64 {
	return [4]float64{b.MinLon, b.MinLat, b.MaxLon, b.MaxLat}
}

// SW is the southwest corner.
func (b Bounds) SW() Point { return Point{Lon: b.MinLon, Lat: b.MinLat} }

// NW is the northwest corner.
func (b Bounds) NW() Point { return Point{Lon: b.MinLon, Lat: b.MaxLat} }

// NE is the northeast corner.
func (b Bounds) NE() Point { return Point{Lon: b.MaxLon, Lat: b.MaxLat} }

// SE is the southeast corner.
func (b Bounds) SE() Point { return Point{Lon: b.MaxLon, Lat: b.MinLat} }

// Corners returns the four corners in SW, NW, NE, SE order.
func (b Bounds) Corners() [4]Point {
	return [4]Point{b.SW(), b.NW(), b.NE(), b.SE()}
}
