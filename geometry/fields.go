// Copyright 2026 The GeoRect Authors
// SPDX-License-Identifier: Apache-2.0

package geometry

// BoundFieldNames lists the eight columns appended to tabular rows, in
// output order. "top" is the max latitude side, "left" the min longitude
// side.
var BoundFieldNames = []string{
	"top_left_longitude", "top_left_latitude",
	"bottom_left_longitude", "bottom_left_latitude",
	"top_right_longitude", "top_right_latitude",
	"bottom_right_longitude", "bottom_right_latitude",
}

// BoundFields derives the eight corner scalars from the envelope, in the
// same order as BoundFieldNames: NW, SW, NE, SE as lon/lat pairs.
func BoundFields(b Bounds) [8]float64 {
	return [8]float64{
		b.MinLon, b.MaxLat,
		b.MinLon, b.MinLat,
		b.MaxLon, b.MaxLat,
		b.MaxLon, b.MinLat,
	}
}
