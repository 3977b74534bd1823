package service

import (
	"context"

	"safemap/internal/domain/entity"
)

// MapLayerCache holds the published zones, pins and tips of a city.
// A miss returns nil layers.
//
// Every read also reports the city's generation, which InvalidateCity
// advances. SetCityLayers stores layers only while that generation is still
// current, so a fill that raced an invalidation is dropped.
type MapLayerCache interface {
	GetCityLayers(ctx context.Context, cityID int64) (*entity.CityLayers, int64, error)
	SetCityLayers(ctx context.Context, layers *entity.CityLayers, generation int64) error
	InvalidateCity(ctx context.Context, cityID int64) error
}
