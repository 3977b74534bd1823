package postgres

import (
	"context"

	"safemap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Models lists every table owned by the service.
func Models() []any {
	return []any{
		&model.CityModel{},
		&model.SubmissionModel{},
		&model.PinModel{},
		&model.ZoneModel{},
		&model.UserScoreModel{},
	}
}

// Migrate enables PostGIS and creates or alters the tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)

	if err := tx.Exec("CREATE EXTENSION IF NOT EXISTS postgis").Error; err != nil {
		return errors.Wrap(err, "enable postgis")
	}

	if err := tx.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	return nil
}
