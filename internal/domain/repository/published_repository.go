package repository

import (
	"context"

	"github.com/paulmach/orb"

	"safemap/internal/domain/entity"
	"safemap/internal/errors"
)

// ErrDuplicatePublication is returned when a submission already produced a published entity.
var ErrDuplicatePublication = errors.New("submission already published")

// GeometryRow is a published entity's raw stored geometry.
type GeometryRow struct {
	Kind     entity.FeatureKind
	ID       int64
	Geometry string
}

// PublishedEntityRepository persists the map-visible pins and zones.
type PublishedEntityRepository interface {
	// InsertPublishedEntity stores a *entity.Pin or *entity.Zone and sets its ID.
	// Returns ErrDuplicatePublication if source_submission_id is already taken.
	InsertPublishedEntity(ctx context.Context, feature entity.MapFeature) error

	// FindZonesByCity returns approved zones ordered by ID.
	FindZonesByCity(ctx context.Context, cityID int64) ([]*entity.Zone, error)

	// FindPinsByCity returns approved pins ordered by ID.
	FindPinsByCity(ctx context.Context, cityID int64) ([]*entity.Pin, error)

	// FindPinsWithinRadius returns approved pins within radiusMeters of center, any city.
	FindPinsWithinRadius(ctx context.Context, center orb.Point, radiusMeters float64) ([]*entity.Pin, error)

	// FindZonesNear returns approved zones within radiusMeters of center, any city.
	FindZonesNear(ctx context.Context, center orb.Point, radiusMeters float64) ([]*entity.Zone, error)

	// FindGeometryRows lists stored pin and zone geometry for offline maintenance.
	FindGeometryRows(ctx context.Context, kind entity.FeatureKind, afterID int64, limit int) ([]GeometryRow, error)

	// UpdateGeometry rewrites a stored pin or zone geometry.
	UpdateGeometry(ctx context.Context, kind entity.FeatureKind, id int64, geometry string) error
}
