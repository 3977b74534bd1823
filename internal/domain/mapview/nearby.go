// Package mapview filters published zones and pins for the map viewport and
// for live-location proximity warnings. All functions are pure.
package mapview

import (
	"slices"

	"github.com/paulmach/orb"

	"safemap/internal/domain/entity"
	"safemap/internal/geo"
)

// DefaultRadiusMeters applies when a non-positive radius is requested.
const DefaultRadiusMeters = 500.0

// FindNearby returns the pins within radiusMeters of loc, closest first.
// Equal distances keep their input order.
func FindNearby(loc orb.Point, pins []*entity.Pin, radiusMeters float64) []entity.NearbyWarning {
	if radiusMeters <= 0 {
		radiusMeters = DefaultRadiusMeters
	}

	warnings := make([]entity.NearbyWarning, 0, len(pins))
	for _, pin := range pins {
		if pin == nil {
			continue
		}

		d := geo.DistanceMeters(loc, pin.Location)
		if d <= radiusMeters {
			warnings = append(warnings, entity.NearbyWarning{Pin: pin, DistanceMeters: d})
		}
	}

	slices.SortStableFunc(warnings, func(a, b entity.NearbyWarning) int {
		switch {
		case a.DistanceMeters < b.DistanceMeters:
			return -1
		case a.DistanceMeters > b.DistanceMeters:
			return 1
		default:
			return 0
		}
	})

	return warnings
}

// CurrentZone returns the first zone in the given order that contains loc.
func CurrentZone(loc orb.Point, zones []*entity.Zone) *entity.Zone {
	for _, z := range zones {
		if z != nil && geo.PointInPolygon(loc, z.Area) {
			return z
		}
	}

	return nil
}

// ContainingZones returns every zone containing loc, in the given order.
func ContainingZones(loc orb.Point, zones []*entity.Zone) []*entity.Zone {
	var out []*entity.Zone
	for _, z := range zones {
		if z != nil && geo.PointInPolygon(loc, z.Area) {
			out = append(out, z)
		}
	}

	return out
}
