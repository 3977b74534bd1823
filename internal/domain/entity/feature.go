package entity

import "github.com/paulmach/orb"

// FeatureKind tags a MapFeature.
type FeatureKind string

const (
	FeatureKindZone FeatureKind = "zone"
	FeatureKindPin  FeatureKind = "pin"
)

// MapFeature is a map-renderable published entity. It is implemented only by
// *Zone and *Pin; consumers switch on the concrete type.
type MapFeature interface {
	FeatureKind() FeatureKind
	FeatureGeometry() orb.Geometry
	mapFeature()
}

func (z *Zone) FeatureKind() FeatureKind      { return FeatureKindZone }
func (z *Zone) FeatureGeometry() orb.Geometry { return z.Area }
func (z *Zone) mapFeature()                   {}

func (p *Pin) FeatureKind() FeatureKind      { return FeatureKindPin }
func (p *Pin) FeatureGeometry() orb.Geometry { return p.Location }
func (p *Pin) mapFeature()                   {}

// Features flattens zones and pins into one ordered list, zones first.
func Features(zones []*Zone, pins []*Pin) []MapFeature {
	out := make([]MapFeature, 0, len(zones)+len(pins))
	for _, z := range zones {
		out = append(out, z)
	}
	for _, p := range pins {
		out = append(out, p)
	}

	return out
}
