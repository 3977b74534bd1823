package usecase

import (
	"context"

	"github.com/paulmach/orb"

	"safemap/internal/domain/entity"
)

// CityMap is the published content of a city, optionally narrowed to a viewport.
type CityMap struct {
	City       *entity.City
	Zones      []*entity.Zone
	Pins       []*entity.Pin
	Tips       []*entity.Submission
	TotalZones int
	TotalPins  int
}

// NearbyQuery is a live-location lookup. CitySlug is optional.
type NearbyQuery struct {
	Location     entity.UserLocation
	CitySlug     string
	RadiusMeters float64
}

// NearbyResult carries every candidate zone for client-side containment checks
// plus the ranked warnings.
type NearbyResult struct {
	RadiusMeters    float64
	Zones           []*entity.Zone
	Warnings        []entity.NearbyWarning
	CurrentZone     *entity.Zone
	ContainingZones []*entity.Zone
}

// MapUsecase serves map layers and proximity warnings
type MapUsecase interface {
	ListCities(ctx context.Context) ([]*entity.City, error)
	GetCityMap(ctx context.Context, slug string, bounds *orb.Bound) (*CityMap, error)
	GetCityFeatures(ctx context.Context, slug string, bounds *orb.Bound) ([]entity.MapFeature, error)
	FindNearby(ctx context.Context, query *NearbyQuery) (*NearbyResult, error)
	CityShareQR(ctx context.Context, slug string) ([]byte, error)
	ResolveCityLink(ctx context.Context, link string) (*entity.City, error)
}
