// Package submission checks user-proposed tips, pins and zones before they
// enter the moderation queue.
package submission

import (
	"strings"

	"safemap/internal/domain/entity"
	"safemap/internal/geo"
)

// Input is one of TipInput, PinInput or ZoneInput.
type Input interface {
	Kind() entity.SubmissionKind
	normalize()
}

// TipInput is a free-text safety tip, optionally geolocated.
type TipInput struct {
	CityID   int64        `json:"city_id" validate:"required,gt=0"`
	Title    string       `json:"title" validate:"required,max=120"`
	Summary  string       `json:"summary" validate:"required,max=280"`
	Details  string       `json:"details" validate:"max=4000"`
	Category string       `json:"category" validate:"required,oneof=scam harassment overcharge transport theft health general"`
	Location *geo.GeoJSON `json:"location,omitempty"`
}

// PinInput is a point hazard report. Guests must give a display name.
type PinInput struct {
	CityID    int64        `json:"city_id" validate:"required,gt=0"`
	Type      string       `json:"type" validate:"required,oneof=scam harassment overcharge other"`
	Title     string       `json:"title" validate:"required,max=120"`
	Summary   string       `json:"summary" validate:"required,max=280"`
	Details   string       `json:"details" validate:"max=4000"`
	GuestName string       `json:"guest_name" validate:"max=60"`
	Location  *geo.GeoJSON `json:"location"`
}

// ZoneInput is a polygon with a proposed safety level.
type ZoneInput struct {
	CityID      int64        `json:"city_id" validate:"required,gt=0"`
	Label       string       `json:"label" validate:"required,max=120"`
	Level       string       `json:"level" validate:"required,oneof=recommended neutral caution avoid"`
	ReasonShort string       `json:"reason_short" validate:"required,max=280"`
	Details     string       `json:"details" validate:"max=4000"`
	Geom        *geo.GeoJSON `json:"geom"`
}

func (*TipInput) Kind() entity.SubmissionKind  { return entity.SubmissionKindTip }
func (*PinInput) Kind() entity.SubmissionKind  { return entity.SubmissionKindPin }
func (*ZoneInput) Kind() entity.SubmissionKind { return entity.SubmissionKindZone }

func (in *TipInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Summary = strings.TrimSpace(in.Summary)
	in.Details = strings.TrimSpace(in.Details)
	in.Category = strings.ToLower(strings.TrimSpace(in.Category))
}

func (in *PinInput) normalize() {
	in.Type = strings.ToLower(strings.TrimSpace(in.Type))
	in.Title = strings.TrimSpace(in.Title)
	in.Summary = strings.TrimSpace(in.Summary)
	in.Details = strings.TrimSpace(in.Details)
	in.GuestName = strings.TrimSpace(in.GuestName)
}

func (in *ZoneInput) normalize() {
	in.Label = strings.TrimSpace(in.Label)
	in.Level = strings.ToLower(strings.TrimSpace(in.Level))
	in.ReasonShort = strings.TrimSpace(in.ReasonShort)
	in.Details = strings.TrimSpace(in.Details)
}
