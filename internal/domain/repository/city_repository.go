package repository

import (
	"context"

	"safemap/internal/domain/entity"
	"safemap/internal/errors"
)

// ErrCityNotFound is returned when a city does not exist.
var ErrCityNotFound = errors.New("city not found")

// CityRepository reads the city catalogue.
type CityRepository interface {
	FindCityByID(ctx context.Context, id int64) (*entity.City, error)
	FindCityBySlug(ctx context.Context, slug string) (*entity.City, error)
	FindCities(ctx context.Context) ([]*entity.City, error)
}
