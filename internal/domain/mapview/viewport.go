package mapview

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"safemap/internal/domain/entity"
	domainerrors "safemap/internal/domain/errors"
	"safemap/internal/geo"
)

// ViewportResult holds the visible subset plus the unfiltered totals for
// "N of M visible" badges.
type ViewportResult struct {
	Zones      []*entity.Zone
	Pins       []*entity.Pin
	TotalZones int
	TotalPins  int
}

// FilterToBounds keeps zones that share area with bounds and pins inside it.
// The input slices are never modified.
func FilterToBounds(bounds orb.Bound, zones []*entity.Zone, pins []*entity.Pin) ViewportResult {
	res := ViewportResult{
		Zones:      make([]*entity.Zone, 0, len(zones)),
		Pins:       make([]*entity.Pin, 0, len(pins)),
		TotalZones: len(zones),
		TotalPins:  len(pins),
	}

	for _, z := range zones {
		if z != nil && geo.BoundsIntersectsPolygon(bounds, z.Area) {
			res.Zones = append(res.Zones, z)
		}
	}
	for _, p := range pins {
		if p != nil && bounds.Contains(p.Location) {
			res.Pins = append(res.Pins, p)
		}
	}

	return res
}

// ParseBBox parses "minLng,minLat,maxLng,maxLat".
func ParseBBox(raw string) (orb.Bound, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return orb.Bound{}, domainerrors.ErrInvalidBounds.WithDetails(raw)
	}

	var v [4]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return orb.Bound{}, domainerrors.ErrInvalidBounds.WithDetails(raw)
		}
		v[i] = f
	}

	b := orb.Bound{Min: orb.Point{v[0], v[1]}, Max: orb.Point{v[2], v[3]}}
	if geo.ValidatePoint(b.Min) != nil || geo.ValidatePoint(b.Max) != nil {
		return orb.Bound{}, domainerrors.ErrInvalidBounds.WithDetails("coordinates out of range")
	}
	if b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] {
		return orb.Bound{}, domainerrors.ErrInvalidBounds.WithDetails("min must not exceed max")
	}

	return b, nil
}
