package geo

import (
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

// PointInPolygon reports whether p lies inside the polygon's outer ring.
// Holes are not modeled. Points on the boundary count as inside.
func PointInPolygon(p orb.Point, poly orb.Polygon) bool {
	if len(poly) == 0 || len(poly[0]) < MinRingPositions {
		return false
	}

	return planar.RingContains(poly[0], p)
}

// BoundsIntersectsPolygon reports whether the polygon and the rectangle meet.
// The test is inclusive: a polygon that only touches the rectangle along an
// edge or at a single point counts as intersecting, so a zone lying exactly
// on the viewport border is still drawn.
func BoundsIntersectsPolygon(b orb.Bound, poly orb.Polygon) bool {
	if len(poly) == 0 || len(poly[0]) == 0 {
		return false
	}

	ring := poly[0]
	if !b.Intersects(ring.Bound()) {
		return false
	}

	// a polygon vertex inside the rectangle
	for _, p := range ring {
		if b.Contains(p) {
			return true
		}
	}

	// rectangle inside the polygon
	corners := boundCorners(b)
	for _, c := range corners {
		if PointInPolygon(c, poly) {
			return true
		}
	}

	// edges crossing with no vertex inside either shape
	for i := 0; i+1 < len(ring); i++ {
		for j := range corners {
			if segmentsIntersect(ring[i], ring[i+1], corners[j], corners[(j+1)%len(corners)]) {
				return true
			}
		}
	}

	return false
}

// DistanceMeters is the great-circle distance between two [lng, lat] points.
func DistanceMeters(a, b orb.Point) float64 {
	if a == b {
		return 0
	}

	return orbgeo.DistanceHaversine(a, b)
}

// BoundAround returns a rectangle enclosing the circle of the given radius.
func BoundAround(center orb.Point, meters float64) orb.Bound {
	return orbgeo.NewBoundAroundPoint(center, meters)
}

func boundCorners(b orb.Bound) []orb.Point {
	return []orb.Point{
		b.Min,
		{b.Max[0], b.Min[1]},
		b.Max,
		{b.Min[0], b.Max[1]},
	}
}

func segmentsIntersect(p1, p2, q1, q2 orb.Point) bool {
	d1 := orientation(q1, q2, p1)
	d2 := orientation(q1, q2, p2)
	d3 := orientation(p1, p2, q1)
	d4 := orientation(p1, p2, q2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	switch {
	case d1 == 0 && onSegment(q1, q2, p1):
		return true
	case d2 == 0 && onSegment(q1, q2, p2):
		return true
	case d3 == 0 && onSegment(p1, p2, q1):
		return true
	case d4 == 0 && onSegment(p1, p2, q2):
		return true
	}

	return false
}

// orientation is the sign of the cross product (b-a) x (c-a).
func orientation(a, b, c orb.Point) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

func onSegment(a, b, p orb.Point) bool {
	return min(a[0], b[0]) <= p[0] && p[0] <= max(a[0], b[0]) &&
		min(a[1], b[1]) <= p[1] && p[1] <= max(a[1], b[1])
}
