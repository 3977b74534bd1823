package handler

import (
	"time"

	"safemap/internal/domain/entity"
	"safemap/internal/geo"
	"safemap/internal/usecase"

	"github.com/paulmach/orb/geojson"
)

// CityResponse is the wire form of a city
type CityResponse struct {
	ID      int64             `json:"id"`
	Slug    string            `json:"slug"`
	Name    string            `json:"name"`
	Country string            `json:"country"`
	Center  *geojson.Geometry `json:"center"`
}

// ZoneResponse is the wire form of a published zone
type ZoneResponse struct {
	ID        int64             `json:"id"`
	Kind      string            `json:"kind"`
	CityID    int64             `json:"city_id"`
	Label     string            `json:"label"`
	Level     string            `json:"level"`
	Reason    string            `json:"reason"`
	Source    string            `json:"source"`
	Geometry  *geojson.Geometry `json:"geometry"`
	CreatedAt time.Time         `json:"created_at"`
}

// PinResponse is the wire form of a published pin
type PinResponse struct {
	ID        int64             `json:"id"`
	Kind      string            `json:"kind"`
	CityID    int64             `json:"city_id"`
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Summary   string            `json:"summary"`
	Details   string            `json:"details,omitempty"`
	Source    string            `json:"source"`
	Geometry  *geojson.Geometry `json:"geometry"`
	CreatedAt time.Time         `json:"created_at"`
}

// SubmissionResponse is the wire form of a queued or reviewed submission.
// GeometryInvalid is set when the stored geometry cannot be decoded.
type SubmissionResponse struct {
	ID              int64             `json:"id"`
	Kind            string            `json:"kind"`
	CityID          int64             `json:"city_id"`
	Status          string            `json:"status"`
	SubmitterID     *string           `json:"submitter_id,omitempty"`
	GuestName       string            `json:"guest_name,omitempty"`
	Title           string            `json:"title"`
	Summary         string            `json:"summary"`
	Details         string            `json:"details,omitempty"`
	Category        string            `json:"category,omitempty"`
	PinType         string            `json:"pin_type,omitempty"`
	Level           string            `json:"level,omitempty"`
	Geometry        *geojson.Geometry `json:"geometry,omitempty"`
	GeometryInvalid bool              `json:"geometry_invalid,omitempty"`
	ReviewedBy      *string           `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time        `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

// CityMapResponse carries the visible layers plus unfiltered totals
type CityMapResponse struct {
	City       *CityResponse         `json:"city"`
	Zones      []*ZoneResponse       `json:"zones"`
	Pins       []*PinResponse        `json:"pins"`
	Tips       []*SubmissionResponse `json:"tips"`
	TotalZones int                   `json:"total_zones"`
	TotalPins  int                   `json:"total_pins"`
}

// WarningResponse is a pin with its distance from the caller
type WarningResponse struct {
	Pin            *PinResponse `json:"pin"`
	DistanceMeters float64      `json:"distance_meters"`
}

// NearbyResponse is the result of a live-location lookup
type NearbyResponse struct {
	RadiusMeters    float64            `json:"radius_meters"`
	Zones           []*ZoneResponse    `json:"zones"`
	Warnings        []*WarningResponse `json:"warnings"`
	CurrentZone     *ZoneResponse      `json:"current_zone"`
	ContainingZones []*ZoneResponse    `json:"containing_zones"`
}

// ModerationResponse is the outcome of an approve or reject
type ModerationResponse struct {
	Submission *SubmissionResponse `json:"submission"`
	Zone       *ZoneResponse       `json:"zone,omitempty"`
	Pin        *PinResponse        `json:"pin,omitempty"`
}

func toCityResponse(city *entity.City) *CityResponse {
	if city == nil {
		return nil
	}

	return &CityResponse{
		ID:      city.ID,
		Slug:    city.Slug,
		Name:    city.Name,
		Country: city.Country,
		Center:  geo.ToGeoJSON(city.Center),
	}
}

func toCityResponses(cities []*entity.City) []*CityResponse {
	out := make([]*CityResponse, 0, len(cities))
	for _, city := range cities {
		out = append(out, toCityResponse(city))
	}

	return out
}

func toZoneResponse(zone *entity.Zone) *ZoneResponse {
	if zone == nil {
		return nil
	}

	return &ZoneResponse{
		ID:        zone.ID,
		Kind:      string(entity.FeatureKindZone),
		CityID:    zone.CityID,
		Label:     zone.Label,
		Level:     string(zone.Level),
		Reason:    zone.Reason,
		Source:    string(zone.Source),
		Geometry:  geo.ToGeoJSON(zone.Area),
		CreatedAt: zone.CreatedAt,
	}
}

func toZoneResponses(zones []*entity.Zone) []*ZoneResponse {
	out := make([]*ZoneResponse, 0, len(zones))
	for _, zone := range zones {
		out = append(out, toZoneResponse(zone))
	}

	return out
}

func toPinResponse(pin *entity.Pin) *PinResponse {
	if pin == nil {
		return nil
	}

	return &PinResponse{
		ID:        pin.ID,
		Kind:      string(entity.FeatureKindPin),
		CityID:    pin.CityID,
		Type:      string(pin.Type),
		Title:     pin.Title,
		Summary:   pin.Summary,
		Details:   pin.Details,
		Source:    string(pin.Source),
		Geometry:  geo.ToGeoJSON(pin.Location),
		CreatedAt: pin.CreatedAt,
	}
}

func toPinResponses(pins []*entity.Pin) []*PinResponse {
	out := make([]*PinResponse, 0, len(pins))
	for _, pin := range pins {
		out = append(out, toPinResponse(pin))
	}

	return out
}

func toSubmissionResponse(sub *entity.Submission) *SubmissionResponse {
	if sub == nil {
		return nil
	}

	resp := &SubmissionResponse{
		ID:          sub.ID,
		Kind:        string(sub.Kind),
		CityID:      sub.CityID,
		Status:      string(sub.Status),
		SubmitterID: sub.SubmitterID,
		GuestName:   sub.GuestName,
		Title:       sub.Title,
		Summary:     sub.Summary,
		Details:     sub.Details,
		Category:    string(sub.Category),
		PinType:     string(sub.PinType),
		Level:       string(sub.Level),
		ReviewedBy:  sub.ReviewedBy,
		ReviewedAt:  sub.ReviewedAt,
		CreatedAt:   sub.CreatedAt,
	}

	if sub.HasGeometry() {
		g, err := geo.Decode(sub.Geometry)
		if err != nil {
			resp.GeometryInvalid = true
		} else {
			resp.Geometry = geo.ToGeoJSON(g)
		}
	}

	return resp
}

func toSubmissionResponses(subs []*entity.Submission) []*SubmissionResponse {
	out := make([]*SubmissionResponse, 0, len(subs))
	for _, sub := range subs {
		out = append(out, toSubmissionResponse(sub))
	}

	return out
}

func toCityMapResponse(cityMap *usecase.CityMap) *CityMapResponse {
	return &CityMapResponse{
		City:       toCityResponse(cityMap.City),
		Zones:      toZoneResponses(cityMap.Zones),
		Pins:       toPinResponses(cityMap.Pins),
		Tips:       toSubmissionResponses(cityMap.Tips),
		TotalZones: cityMap.TotalZones,
		TotalPins:  cityMap.TotalPins,
	}
}

func toNearbyResponse(result *usecase.NearbyResult) *NearbyResponse {
	warnings := make([]*WarningResponse, 0, len(result.Warnings))
	for _, w := range result.Warnings {
		warnings = append(warnings, &WarningResponse{Pin: toPinResponse(w.Pin), DistanceMeters: w.DistanceMeters})
	}

	return &NearbyResponse{
		RadiusMeters:    result.RadiusMeters,
		Zones:           toZoneResponses(result.Zones),
		Warnings:        warnings,
		CurrentZone:     toZoneResponse(result.CurrentZone),
		ContainingZones: toZoneResponses(result.ContainingZones),
	}
}

func toModerationResponse(sub *entity.Submission, published entity.MapFeature) *ModerationResponse {
	resp := &ModerationResponse{Submission: toSubmissionResponse(sub)}

	switch f := published.(type) {
	case *entity.Zone:
		resp.Zone = toZoneResponse(f)
	case *entity.Pin:
		resp.Pin = toPinResponse(f)
	}

	return resp
}

// toFeatureCollection renders features as GeoJSON with a kind tag and typed properties.
func toFeatureCollection(features []entity.MapFeature) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, feature := range features {
		f := geojson.NewFeature(feature.FeatureGeometry())
		f.Properties["kind"] = string(feature.FeatureKind())

		switch v := feature.(type) {
		case *entity.Zone:
			f.ID = v.ID
			f.Properties["label"] = v.Label
			f.Properties["level"] = string(v.Level)
			f.Properties["reason"] = v.Reason
			f.Properties["source"] = string(v.Source)
		case *entity.Pin:
			f.ID = v.ID
			f.Properties["type"] = string(v.Type)
			f.Properties["title"] = v.Title
			f.Properties["summary"] = v.Summary
			f.Properties["source"] = string(v.Source)
		}

		fc.Append(f)
	}

	return fc
}
