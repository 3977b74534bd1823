package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// Source records where a published entity came from.
type Source string

const (
	SourceCurated Source = "curated"
	SourceUser    Source = "user"
)

// PublishedStatus is kept on published rows for display filtering.
const PublishedStatus = "approved"

// PinType classifies a point hazard.
type PinType string

const (
	PinTypeScam       PinType = "scam"
	PinTypeHarassment PinType = "harassment"
	PinTypeOvercharge PinType = "overcharge"
	PinTypeOther      PinType = "other"
)

func (t PinType) IsValid() bool {
	switch t {
	case PinTypeScam, PinTypeHarassment, PinTypeOvercharge, PinTypeOther:
		return true
	default:
		return false
	}
}

// SafetyLevel is the discrete rating of a zone.
type SafetyLevel string

const (
	SafetyLevelRecommended SafetyLevel = "recommended"
	SafetyLevelNeutral     SafetyLevel = "neutral"
	SafetyLevelCaution     SafetyLevel = "caution"
	SafetyLevelAvoid       SafetyLevel = "avoid"
)

func (l SafetyLevel) IsValid() bool {
	switch l {
	case SafetyLevelRecommended, SafetyLevelNeutral, SafetyLevelCaution, SafetyLevelAvoid:
		return true
	default:
		return false
	}
}

// TipCategory is the fixed set of tip topics.
type TipCategory string

const (
	TipCategoryScam       TipCategory = "scam"
	TipCategoryHarassment TipCategory = "harassment"
	TipCategoryOvercharge TipCategory = "overcharge"
	TipCategoryTransport  TipCategory = "transport"
	TipCategoryTheft      TipCategory = "theft"
	TipCategoryHealth     TipCategory = "health"
	TipCategoryGeneral    TipCategory = "general"
)

func (c TipCategory) IsValid() bool {
	switch c {
	case TipCategoryScam, TipCategoryHarassment, TipCategoryOvercharge,
		TipCategoryTransport, TipCategoryTheft, TipCategoryHealth, TipCategoryGeneral:
		return true
	default:
		return false
	}
}

// PinType maps a geolocated tip onto the pin it is promoted to.
func (c TipCategory) PinType() PinType {
	switch c {
	case TipCategoryScam:
		return PinTypeScam
	case TipCategoryHarassment:
		return PinTypeHarassment
	case TipCategoryOvercharge:
		return PinTypeOvercharge
	default:
		return PinTypeOther
	}
}

// City groups zones, pins and submissions.
type City struct {
	ID      int64
	Slug    string
	Name    string
	Country string
	Center  orb.Point
}

// Pin is a published point hazard.
type Pin struct {
	ID                 int64
	CityID             int64
	Type               PinType
	Title              string
	Summary            string
	Details            string
	Location           orb.Point
	Status             string
	Source             Source
	VerifiedBy         *string
	SourceSubmissionID *int64
	CreatedAt          time.Time
}

// Zone is a published polygon with a safety level. Only the outer ring is modeled.
type Zone struct {
	ID                 int64
	CityID             int64
	Label              string
	Level              SafetyLevel
	Reason             string
	Area               orb.Polygon
	Status             string
	Source             Source
	VerifiedBy         *string
	SourceSubmissionID *int64
	CreatedAt          time.Time
}

// CityLayers is the published content of a city.
type CityLayers struct {
	City  *City
	Zones []*Zone
	Pins  []*Pin
	Tips  []*Submission
}
