package geo

import (
	"github.com/paulmach/orb"

	"safemap/internal/errors"
)

// RepairSwappedPoint returns p with its axes exchanged when p is out of range
// and the exchanged point is valid. Valid points are returned unchanged.
func RepairSwappedPoint(p orb.Point) (orb.Point, bool) {
	if ValidatePoint(p) == nil {
		return p, false
	}

	swapped := orb.Point{p[1], p[0]}
	if ValidatePoint(swapped) != nil {
		return p, false
	}

	return swapped, true
}

// RepairSwappedRing applies RepairSwappedPoint to every vertex and reports how
// many were exchanged. The input is not modified.
func RepairSwappedRing(ring orb.Ring) (orb.Ring, int) {
	out := make(orb.Ring, len(ring))
	fixed := 0
	for i, p := range ring {
		repaired, ok := RepairSwappedPoint(p)
		if ok {
			fixed++
		}
		out[i] = repaired
	}

	return out, fixed
}

// Repair is the result of an offline axis-order fix-up.
type Repair struct {
	Before   string
	After    string
	Swapped  int
	Geometry orb.Geometry
}

// RepairText decodes stored text without validation, swaps any out-of-range
// positions that become valid when exchanged and re-encodes the result.
// It returns (nil, nil) when the text is already valid, and an error when the
// geometry stays invalid after the swap.
func RepairText(text string) (*Repair, error) {
	g, err := decodeUnchecked(text)
	if err != nil {
		return nil, err
	}
	if g == nil || Validate(g) == nil {
		return nil, nil
	}

	var (
		repaired orb.Geometry
		swapped  int
	)
	switch v := g.(type) {
	case orb.Point:
		p, ok := RepairSwappedPoint(v)
		if ok {
			swapped = 1
		}
		repaired = p
	case orb.Polygon:
		if len(v) == 0 {
			return nil, errors.Wrap(ErrRingTooShort, "polygon has no rings")
		}
		ring, n := RepairSwappedRing(v[0])
		swapped = n
		repaired = orb.Polygon{ring}
	default:
		return nil, errors.Wrapf(ErrUnsupportedGeometry, "%T", g)
	}

	encoded, err := Encode(repaired)
	if err != nil {
		return nil, errors.Wrap(err, "geometry still invalid after axis swap")
	}

	return &Repair{
		Before:   text,
		After:    encoded,
		Swapped:  swapped,
		Geometry: repaired,
	}, nil
}
