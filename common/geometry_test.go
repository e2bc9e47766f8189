package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeometryConvertible(t *testing.T) {
	coord := Coordinate{Latitude: 1, Longitude: 2}
	line := LineString{{Latitude: 1, Longitude: 2}}
	bounds := CoordinateBounds{Southwest: coord, Northeast: coord}
	poly := Polygon{{{Latitude: 1, Longitude: 2}}}

	// Each concrete type converts to itself.
	assert.Equal(t, Geometry(coord), coord.Geometry())
	assert.Equal(t, Geometry(line), line.Geometry())
	assert.Equal(t, Geometry(bounds), bounds.Geometry())
	assert.Equal(t, Geometry(poly), poly.Geometry())
}

func TestGeometryEqual(t *testing.T) {
	lineA := LineString{{Latitude: 1, Longitude: 2}, {Latitude: 3, Longitude: 4}}
	lineB := LineString{{Latitude: 1, Longitude: 2}, {Latitude: 3, Longitude: 4}}
	lineC := LineString{{Latitude: 1, Longitude: 2}}

	tests := []struct {
		name string
		a, b Geometry
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil vs value", nil, lineA, false},
		{"equal coordinates", Coordinate{Latitude: 5}, Coordinate{Latitude: 5}, true},
		{"different coordinates", Coordinate{Latitude: 5}, Coordinate{Latitude: 6}, false},
		{"equal line strings compare element-wise", lineA, lineB, true},
		{"different lengths", lineA, lineC, false},
		{"different concrete types never equal", Coordinate{Latitude: 1, Longitude: 2}, lineC, false},
		{
			"equal polygons",
			Polygon{{{Latitude: 1}}, {{Latitude: 2}}},
			Polygon{{{Latitude: 1}}, {{Latitude: 2}}},
			true,
		},
		{
			"polygons with different rings",
			Polygon{{{Latitude: 1}}},
			Polygon{{{Latitude: 2}}},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GeometryEqual(tt.a, tt.b))
			assert.Equal(t, tt.want, GeometryEqual(tt.b, tt.a), "equality is symmetric")
		})
	}
}

func TestBoundsOf(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
		want CoordinateBounds
	}{
		{
			"single coordinate is a point-sized bounds",
			Coordinate{Latitude: 10, Longitude: 20},
			CoordinateBounds{
				Southwest: Coordinate{Latitude: 10, Longitude: 20},
				Northeast: Coordinate{Latitude: 10, Longitude: 20},
			},
		},
		{
			"bounds pass through",
			CoordinateBounds{
				Southwest: Coordinate{Latitude: -1, Longitude: -2},
				Northeast: Coordinate{Latitude: 3, Longitude: 4},
			},
			CoordinateBounds{
				Southwest: Coordinate{Latitude: -1, Longitude: -2},
				Northeast: Coordinate{Latitude: 3, Longitude: 4},
			},
		},
		{
			"line string spans its extremes",
			LineString{
				{Latitude: 5, Longitude: -10},
				{Latitude: -5, Longitude: 10},
				{Latitude: 0, Longitude: 0},
			},
			CoordinateBounds{
				Southwest: Coordinate{Latitude: -5, Longitude: -10},
				Northeast: Coordinate{Latitude: 5, Longitude: 10},
			},
		},
		{
			"polygon includes all rings",
			Polygon{
				{{Latitude: 0, Longitude: 0}, {Latitude: 2, Longitude: 2}},
				{{Latitude: -3, Longitude: 1}},
			},
			CoordinateBounds{
				Southwest: Coordinate{Latitude: -3, Longitude: 0},
				Northeast: Coordinate{Latitude: 2, Longitude: 2},
			},
		},
		{"nil geometry yields zero bounds", nil, CoordinateBounds{}},
		{"empty line string yields zero bounds", LineString{}, CoordinateBounds{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BoundsOf(tt.g))
		})
	}
}
