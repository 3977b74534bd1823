package model

import (
	"context"
	"database/sql/driver"

	"safemap/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Geography carries a PostGIS geography column as EWKT text. Writes go
// through ST_GeogFromText; reads must select ST_AsEWKT(column) so Scan
// receives text rather than hex EWKB.
type Geography struct {
	Text  string
	Valid bool
}

// NewGeography wraps non-empty text as a valid value.
func NewGeography(text string) Geography {
	return Geography{Text: text, Valid: text != ""}
}

// Scan implements sql.Scanner.
func (g *Geography) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*g = Geography{}
	case string:
		*g = NewGeography(v)
	case []byte:
		*g = NewGeography(string(v))
	default:
		return errors.Errorf("cannot scan %T into Geography", src)
	}

	return nil
}

// Value implements driver.Valuer for drivers that bypass GormValue.
func (g Geography) Value() (driver.Value, error) {
	if !g.Valid {
		return nil, nil
	}

	return g.Text, nil
}

// GormValue implements gorm.Valuer.
func (g Geography) GormValue(_ context.Context, _ *gorm.DB) clause.Expr {
	if !g.Valid {
		return clause.Expr{SQL: "NULL"}
	}

	return clause.Expr{SQL: "ST_GeogFromText(?)", Vars: []any{g.Text}}
}
