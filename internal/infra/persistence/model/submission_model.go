package model

import "time"

// SubmissionModel is the GORM-specific struct for the 'submissions' table.
type SubmissionModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	CityID      int64     `gorm:"not null;index:idx_submissions_queue,priority:3"`
	Kind        string    `gorm:"type:varchar(16);not null;index:idx_submissions_queue,priority:1"`
	Status      string    `gorm:"type:varchar(16);not null;default:pending;index:idx_submissions_queue,priority:2"`
	SubmitterID *string   `gorm:"type:varchar(255);index"`
	GuestName   string    `gorm:"type:varchar(60);not null;default:''"`
	Title       string    `gorm:"type:varchar(120);not null"`
	Summary     string    `gorm:"type:varchar(280);not null;default:''"`
	Details     string    `gorm:"type:text;not null;default:''"`
	Category    string    `gorm:"type:varchar(32);not null;default:''"`
	PinType     string    `gorm:"type:varchar(32);not null;default:''"`
	Level       string    `gorm:"type:varchar(32);not null;default:''"`
	Geometry    Geography `gorm:"type:geography(Geometry,4326)"`
	ReviewedBy  *string   `gorm:"type:varchar(255)"`
	ReviewedAt  *time.Time
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubmissionModel) TableName() string {
	return "submissions"
}

// SubmissionColumns selects every submission column with geometry as EWKT.
const SubmissionColumns = "id, city_id, kind, status, submitter_id, guest_name, title, summary, details, " +
	"category, pin_type, level, ST_AsEWKT(geometry) AS geometry, reviewed_by, reviewed_at, created_at, updated_at"
