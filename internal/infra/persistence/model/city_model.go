package model

import "time"

// CityModel is the GORM-specific struct for the 'cities' table.
type CityModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Slug      string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Country   string    `gorm:"type:varchar(2);not null"`
	Center    Geography `gorm:"type:geography(Point,4326)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CityModel) TableName() string {
	return "cities"
}

// CityColumns selects every city column with center as EWKT.
const CityColumns = "id, slug, name, country, ST_AsEWKT(center) AS center, created_at"

// UserScoreModel is the GORM-specific struct for the 'user_scores' table.
type UserScoreModel struct {
	UserID    string `gorm:"type:varchar(255);primaryKey"`
	Points    int    `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserScoreModel) TableName() string {
	return "user_scores"
}
