package model

import "time"

// PinModel is the GORM-specific struct for the 'pins' table.
type PinModel struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement"`
	CityID             int64     `gorm:"not null;index"`
	Type               string    `gorm:"type:varchar(32);not null"`
	Title              string    `gorm:"type:varchar(120);not null"`
	Summary            string    `gorm:"type:varchar(280);not null;default:''"`
	Details            string    `gorm:"type:text;not null;default:''"`
	Location           Geography `gorm:"type:geography(Point,4326);not null;index:idx_pins_location,type:gist"`
	Status             string    `gorm:"type:varchar(16);not null;default:approved"`
	Source             string    `gorm:"type:varchar(16);not null;default:curated"`
	VerifiedBy         *string   `gorm:"type:varchar(255)"`
	SourceSubmissionID *int64    `gorm:"uniqueIndex"`
	CreatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (PinModel) TableName() string {
	return "pins"
}

// PinColumns selects every pin column with location as EWKT.
const PinColumns = "id, city_id, type, title, summary, details, ST_AsEWKT(location) AS location, " +
	"status, source, verified_by, source_submission_id, created_at"

// ZoneModel is the GORM-specific struct for the 'zones' table.
type ZoneModel struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement"`
	CityID             int64     `gorm:"not null;index"`
	Label              string    `gorm:"type:varchar(120);not null"`
	Level              string    `gorm:"type:varchar(32);not null"`
	Reason             string    `gorm:"type:varchar(280);not null;default:''"`
	Area               Geography `gorm:"type:geography(Polygon,4326);not null;index:idx_zones_area,type:gist"`
	Status             string    `gorm:"type:varchar(16);not null;default:approved"`
	Source             string    `gorm:"type:varchar(16);not null;default:curated"`
	VerifiedBy         *string   `gorm:"type:varchar(255)"`
	SourceSubmissionID *int64    `gorm:"uniqueIndex"`
	CreatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ZoneModel) TableName() string {
	return "zones"
}

// ZoneColumns selects every zone column with area as EWKT.
const ZoneColumns = "id, city_id, label, level, reason, ST_AsEWKT(area) AS area, " +
	"status, source, verified_by, source_submission_id, created_at"
