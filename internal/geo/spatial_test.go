package geo

import (
	"testing"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
)

var square = orb.Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}}

func TestPointInPolygon(t *testing.T) {
	t.Parallel()

	centroid, _ := planar.CentroidArea(square)

	assert.True(t, PointInPolygon(centroid, square))
	assert.True(t, PointInPolygon(orb.Point{1, 9}, square))
	assert.False(t, PointInPolygon(orb.Point{50, 50}, square))
	assert.False(t, PointInPolygon(orb.Point{-0.1, 5}, square))
	assert.False(t, PointInPolygon(orb.Point{5, 5}, orb.Polygon{}))
}

func TestPointInPolygon_Concave(t *testing.T) {
	t.Parallel()

	// U shape open to the north
	u := orb.Polygon{{{0, 0}, {9, 0}, {9, 9}, {6, 9}, {6, 3}, {3, 3}, {3, 9}, {0, 9}, {0, 0}}}

	assert.True(t, PointInPolygon(orb.Point{1, 8}, u))
	assert.True(t, PointInPolygon(orb.Point{4.5, 1}, u))
	assert.False(t, PointInPolygon(orb.Point{4.5, 6}, u))
}

func TestBoundsIntersectsPolygon(t *testing.T) {
	t.Parallel()

	triangle := orb.Polygon{{{0, 0}, {10, 0}, {0, 10}, {0, 0}}}

	tests := []struct {
		name  string
		bound orb.Bound
		poly  orb.Polygon
		want  bool
	}{
		{name: "bound inside polygon", bound: orb.Bound{Min: orb.Point{2, 2}, Max: orb.Point{3, 3}}, poly: square, want: true},
		{name: "polygon inside bound", bound: orb.Bound{Min: orb.Point{-1, -1}, Max: orb.Point{11, 11}}, poly: square, want: true},
		{name: "partial overlap", bound: orb.Bound{Min: orb.Point{5, 5}, Max: orb.Point{15, 15}}, poly: square, want: true},
		{name: "strip crossing without vertices inside", bound: orb.Bound{Min: orb.Point{-5, 4}, Max: orb.Point{15, 6}}, poly: square, want: true},
		{name: "touching edge", bound: orb.Bound{Min: orb.Point{10, 2}, Max: orb.Point{12, 3}}, poly: square, want: true},
		{name: "touching corner", bound: orb.Bound{Min: orb.Point{10, 10}, Max: orb.Point{12, 12}}, poly: square, want: true},
		{name: "disjoint", bound: orb.Bound{Min: orb.Point{20, 20}, Max: orb.Point{30, 30}}, poly: square, want: false},
		{name: "bbox overlap but shapes apart", bound: orb.Bound{Min: orb.Point{8, 8}, Max: orb.Point{9, 9}}, poly: triangle, want: false},
		{name: "empty polygon", bound: orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}, poly: orb.Polygon{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, BoundsIntersectsPolygon(tt.bound, tt.poly))
		})
	}
}

func TestDistanceMeters(t *testing.T) {
	t.Parallel()

	a := orb.Point{100.5320, 13.7463}
	b := orb.Point{100.5018, 13.7563}

	assert.Zero(t, DistanceMeters(a, a))
	assert.Equal(t, DistanceMeters(a, b), DistanceMeters(b, a))
	assert.Greater(t, DistanceMeters(a, b), 0.0)

	for _, meters := range []float64{50, 100, 600, 2500} {
		p := orbgeo.PointAtBearingAndDistance(a, 45, meters)
		assert.InDelta(t, meters, DistanceMeters(a, p), 0.01)
	}
}

func TestDistanceMeters_Monotonic(t *testing.T) {
	t.Parallel()

	origin := orb.Point{100.5320, 13.7463}
	prev := 0.0
	for _, meters := range []float64{10, 100, 1000, 10000} {
		d := DistanceMeters(origin, orbgeo.PointAtBearingAndDistance(origin, 120, meters))
		assert.Greater(t, d, prev)
		prev = d
	}
}

func TestBoundAround(t *testing.T) {
	t.Parallel()

	center := orb.Point{100.5320, 13.7463}
	b := BoundAround(center, 500)

	assert.True(t, b.Contains(center))
	assert.True(t, b.Contains(orbgeo.PointAtBearingAndDistance(center, 0, 499)))
	assert.False(t, b.Contains(orbgeo.PointAtBearingAndDistance(center, 90, 2000)))
}
