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

// cityRepository implements the domain.CityRepository interface.
type cityRepository struct {
	db *gorm.DB
}

// NewCityRepository is the constructor for cityRepository.
func NewCityRepository(db *gorm.DB) repository.CityRepository {
	return &cityRepository{db: db}
}

// FindCityByID retrieves a city by its ID.
func (repo *cityRepository) FindCityByID(ctx context.Context, id int64) (*entity.City, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindCityBySlug retrieves a city by its URL slug.
func (repo *cityRepository) FindCityBySlug(ctx context.Context, slug string) (*entity.City, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

// FindCities lists all cities by name.
func (repo *cityRepository) FindCities(ctx context.Context) ([]*entity.City, error) {
	var cityModels []*model.CityModel

	if err := repo.db.WithContext(ctx).
		Select(model.CityColumns).
		Order("name ASC").
		Find(&cityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find cities")
	}

	cities := make([]*entity.City, 0, len(cityModels))
	for _, cityM := range cityModels {
		city, err := toCityDomain(cityM)
		if err != nil {
			return nil, err
		}
		cities = append(cities, city)
	}

	return cities, nil
}

func (repo *cityRepository) findOne(ctx context.Context, cond string, arg any) (*entity.City, error) {
	var cityM model.CityModel

	if err := repo.db.WithContext(ctx).
		Select(model.CityColumns).
		Where(cond, arg).
		First(&cityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "failed to find city")
	}

	return toCityDomain(&cityM)
}

func toCityDomain(data *model.CityModel) (*entity.City, error) {
	city := &entity.City{
		ID:      data.ID,
		Slug:    data.Slug,
		Name:    data.Name,
		Country: data.Country,
	}

	if data.Center.Valid {
		g, err := geo.Decode(data.Center.Text)
		if err != nil {
			return nil, errors.Wrapf(err, "city %d center", data.ID)
		}
		if center, ok := g.(orb.Point); ok {
			city.Center = center
		}
	}

	return city, nil
}
