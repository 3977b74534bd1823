package postgres

import (
	"context"

	"safemap/internal/domain/entity"
	"safemap/internal/domain/repository"
	"safemap/internal/geo"
	"safemap/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const nearbyPointSQL = "ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography"

// publishedEntityRepository implements the domain.PublishedEntityRepository interface.
type publishedEntityRepository struct {
	db *gorm.DB
}

// NewPublishedEntityRepository is the constructor for publishedEntityRepository.
func NewPublishedEntityRepository(db *gorm.DB) repository.PublishedEntityRepository {
	return &publishedEntityRepository{db: db}
}

// InsertPublishedEntity stores an approved pin or zone.
func (repo *publishedEntityRepository) InsertPublishedEntity(ctx context.Context, feature entity.MapFeature) error {
	switch f := feature.(type) {
	case *entity.Pin:
		pinM, err := fromPinDomain(f)
		if err != nil {
			return err
		}
		if err := repo.db.WithContext(ctx).Create(pinM).Error; err != nil {
			return translatePublishError(err, "pin")
		}
		f.ID = pinM.ID
		f.CreatedAt = pinM.CreatedAt
	case *entity.Zone:
		zoneM, err := fromZoneDomain(f)
		if err != nil {
			return err
		}
		if err := repo.db.WithContext(ctx).Create(zoneM).Error; err != nil {
			return translatePublishError(err, "zone")
		}
		f.ID = zoneM.ID
		f.CreatedAt = zoneM.CreatedAt
	default:
		return errors.Errorf("unsupported published entity %T", feature)
	}

	return nil
}

func translatePublishError(err error, kind string) error {
	if isUniqueConstraintViolation(err) {
		return errors.WithStack(repository.ErrDuplicatePublication)
	}
	if isForeignKeyConstraintViolation(err) {
		return errors.Wrapf(err, "%s references a missing city", kind)
	}

	return errors.Wrapf(err, "failed to insert %s", kind)
}

// FindZonesByCity returns approved zones of a city ordered by ID.
func (repo *publishedEntityRepository) FindZonesByCity(ctx context.Context, cityID int64) ([]*entity.Zone, error) {
	var zoneModels []*model.ZoneModel

	if err := repo.db.WithContext(ctx).
		Select(model.ZoneColumns).
		Where("city_id = ? AND status = ?", cityID, entity.PublishedStatus).
		Order("id ASC").
		Find(&zoneModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find zones by city")
	}

	return toZonesDomain(zoneModels)
}

// FindPinsByCity returns approved pins of a city ordered by ID.
func (repo *publishedEntityRepository) FindPinsByCity(ctx context.Context, cityID int64) ([]*entity.Pin, error) {
	var pinModels []*model.PinModel

	if err := repo.db.WithContext(ctx).
		Select(model.PinColumns).
		Where("city_id = ? AND status = ?", cityID, entity.PublishedStatus).
		Order("id ASC").
		Find(&pinModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pins by city")
	}

	return toPinsDomain(pinModels)
}

// FindPinsWithinRadius uses PostGIS ST_DWithin on the geography index.
func (repo *publishedEntityRepository) FindPinsWithinRadius(ctx context.Context, center orb.Point, radiusMeters float64) ([]*entity.Pin, error) {
	var pinModels []*model.PinModel

	if err := repo.db.WithContext(withRedactedParams(ctx)).
		Select(model.PinColumns).
		Where("status = ?", entity.PublishedStatus).
		Where("ST_DWithin(location, "+nearbyPointSQL+", ?)", center.Lon(), center.Lat(), radiusMeters).
		Order("id ASC").
		Find(&pinModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pins within radius")
	}

	return toPinsDomain(pinModels)
}

// FindZonesNear returns approved zones whose area lies within radiusMeters of center.
func (repo *publishedEntityRepository) FindZonesNear(ctx context.Context, center orb.Point, radiusMeters float64) ([]*entity.Zone, error) {
	var zoneModels []*model.ZoneModel

	if err := repo.db.WithContext(withRedactedParams(ctx)).
		Select(model.ZoneColumns).
		Where("status = ?", entity.PublishedStatus).
		Where("ST_DWithin(area, "+nearbyPointSQL+", ?)", center.Lon(), center.Lat(), radiusMeters).
		Order("id ASC").
		Find(&zoneModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find zones near point")
	}

	return toZonesDomain(zoneModels)
}

// FindGeometryRows pages through raw stored geometry of one feature kind.
func (repo *publishedEntityRepository) FindGeometryRows(ctx context.Context, kind entity.FeatureKind, afterID int64, limit int) ([]repository.GeometryRow, error) {
	table, column, err := geometryTarget(kind)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		ID       int64
		Geometry string
	}
	if err := repo.db.WithContext(ctx).
		Table(table).
		Select("id, ST_AsEWKT("+column+") AS geometry").
		Where("id > ?", afterID).
		Order("id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to scan %s geometry", table)
	}

	out := make([]repository.GeometryRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, repository.GeometryRow{Kind: kind, ID: row.ID, Geometry: row.Geometry})
	}

	return out, nil
}

// UpdateGeometry rewrites one stored pin or zone geometry.
func (repo *publishedEntityRepository) UpdateGeometry(ctx context.Context, kind entity.FeatureKind, id int64, geometry string) error {
	table, column, err := geometryTarget(kind)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Table(table).
		Where("id = ?", id).
		Update(column, model.NewGeography(geometry))
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to update %s geometry", table)
	}

	if result.RowsAffected == 0 {
		return errors.Errorf("%s %d not found", kind, id)
	}

	return nil
}

func geometryTarget(kind entity.FeatureKind) (table, column string, err error) {
	switch kind {
	case entity.FeatureKindPin:
		return model.PinModel{}.TableName(), "location", nil
	case entity.FeatureKindZone:
		return model.ZoneModel{}.TableName(), "area", nil
	default:
		return "", "", errors.Errorf("unknown feature kind %q", kind)
	}
}

// --- Mapper Functions ---

func toPinsDomain(pinModels []*model.PinModel) ([]*entity.Pin, error) {
	pins := make([]*entity.Pin, 0, len(pinModels))
	for _, pinM := range pinModels {
		pin, err := toPinDomain(pinM)
		if err != nil {
			return nil, err
		}
		pins = append(pins, pin)
	}

	return pins, nil
}

func toPinDomain(data *model.PinModel) (*entity.Pin, error) {
	g, err := geo.Decode(data.Location.Text)
	if err != nil {
		return nil, errors.Wrapf(err, "pin %d location", data.ID)
	}
	point, ok := g.(orb.Point)
	if !ok {
		return nil, errors.Errorf("pin %d stores %T, want Point", data.ID, g)
	}

	return &entity.Pin{
		ID:                 data.ID,
		CityID:             data.CityID,
		Type:               entity.PinType(data.Type),
		Title:              data.Title,
		Summary:            data.Summary,
		Details:            data.Details,
		Location:           point,
		Status:             data.Status,
		Source:             entity.Source(data.Source),
		VerifiedBy:         data.VerifiedBy,
		SourceSubmissionID: data.SourceSubmissionID,
		CreatedAt:          data.CreatedAt,
	}, nil
}

func fromPinDomain(data *entity.Pin) (*model.PinModel, error) {
	location, err := geo.Encode(data.Location)
	if err != nil {
		return nil, errors.Wrap(err, "encode pin location")
	}

	return &model.PinModel{
		ID:                 data.ID,
		CityID:             data.CityID,
		Type:               string(data.Type),
		Title:              data.Title,
		Summary:            data.Summary,
		Details:            data.Details,
		Location:           model.NewGeography(location),
		Status:             data.Status,
		Source:             string(data.Source),
		VerifiedBy:         data.VerifiedBy,
		SourceSubmissionID: data.SourceSubmissionID,
		CreatedAt:          data.CreatedAt,
	}, nil
}

func toZonesDomain(zoneModels []*model.ZoneModel) ([]*entity.Zone, error) {
	zones := make([]*entity.Zone, 0, len(zoneModels))
	for _, zoneM := range zoneModels {
		zone, err := toZoneDomain(zoneM)
		if err != nil {
			return nil, err
		}
		zones = append(zones, zone)
	}

	return zones, nil
}

func toZoneDomain(data *model.ZoneModel) (*entity.Zone, error) {
	g, err := geo.Decode(data.Area.Text)
	if err != nil {
		return nil, errors.Wrapf(err, "zone %d area", data.ID)
	}
	area, ok := g.(orb.Polygon)
	if !ok {
		return nil, errors.Errorf("zone %d stores %T, want Polygon", data.ID, g)
	}

	return &entity.Zone{
		ID:                 data.ID,
		CityID:             data.CityID,
		Label:              data.Label,
		Level:              entity.SafetyLevel(data.Level),
		Reason:             data.Reason,
		Area:               area,
		Status:             data.Status,
		Source:             entity.Source(data.Source),
		VerifiedBy:         data.VerifiedBy,
		SourceSubmissionID: data.SourceSubmissionID,
		CreatedAt:          data.CreatedAt,
	}, nil
}

func fromZoneDomain(data *entity.Zone) (*model.ZoneModel, error) {
	area, err := geo.Encode(data.Area)
	if err != nil {
		return nil, errors.Wrap(err, "encode zone area")
	}

	return &model.ZoneModel{
		ID:                 data.ID,
		CityID:             data.CityID,
		Label:              data.Label,
		Level:              string(data.Level),
		Reason:             data.Reason,
		Area:               model.NewGeography(area),
		Status:             data.Status,
		Source:             string(data.Source),
		VerifiedBy:         data.VerifiedBy,
		SourceSubmissionID: data.SourceSubmissionID,
		CreatedAt:          data.CreatedAt,
	}, nil
}
