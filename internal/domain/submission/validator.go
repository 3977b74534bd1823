package submission

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/paulmach/orb"

	"safemap/internal/domain/entity"
	domainerrors "safemap/internal/domain/errors"
	"safemap/internal/errors"
	"safemap/internal/geo"
)

// Validated is a submission that passed every check. Exactly one of Point and
// Polygon is set for pins and zones; tips may carry a Point or nothing.
type Validated struct {
	Kind        entity.SubmissionKind
	CityID      int64
	SubmitterID *string
	GuestName   string
	Title       string
	Summary     string
	Details     string
	Category    entity.TipCategory
	PinType     entity.PinType
	Level       entity.SafetyLevel
	Point       *orb.Point
	Polygon     orb.Polygon
}

// Geometry returns the validated geometry, nil when there is none.
func (v *Validated) Geometry() orb.Geometry {
	switch {
	case v.Point != nil:
		return *v.Point
	case v.Polygon != nil:
		return v.Polygon
	default:
		return nil
	}
}

// ToSubmission encodes the geometry and builds the pending row.
func (v *Validated) ToSubmission(now time.Time) (*entity.Submission, error) {
	var encoded string
	if g := v.Geometry(); g != nil {
		text, err := geo.Encode(g)
		if err != nil {
			return nil, mapGeometryError(err, v.Kind)
		}
		encoded = text
	}

	return &entity.Submission{
		CityID:      v.CityID,
		Kind:        v.Kind,
		SubmitterID: v.SubmitterID,
		GuestName:   v.GuestName,
		Title:       v.Title,
		Summary:     v.Summary,
		Details:     v.Details,
		Category:    v.Category,
		PinType:     v.PinType,
		Level:       v.Level,
		Geometry:    encoded,
		Status:      entity.SubmissionStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Validator checks submissions. It has no side effects and is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds a Validator whose field errors use JSON names.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate runs identity, field and geometry checks in that order and returns
// the first failure as a domain error.
func (v *Validator) Validate(identity *entity.Identity, input Input) (*Validated, error) {
	if input == nil || reflect.ValueOf(input).IsNil() {
		return nil, domainerrors.ErrMissingField.WithDetails("submission body")
	}
	input.normalize()

	switch in := input.(type) {
	case *TipInput:
		return v.validateTip(identity, in)
	case *PinInput:
		return v.validatePin(identity, in)
	case *ZoneInput:
		return v.validateZone(identity, in)
	default:
		return nil, domainerrors.ErrInvalidField.WithDetails("unknown submission kind")
	}
}

func (v *Validator) validateTip(identity *entity.Identity, in *TipInput) (*Validated, error) {
	if !isAuthenticated(identity) {
		return nil, domainerrors.ErrAuthenticationRequired
	}
	if err := v.checkFields(in); err != nil {
		return nil, err
	}

	out := &Validated{
		Kind:        entity.SubmissionKindTip,
		CityID:      in.CityID,
		SubmitterID: submitter(identity),
		Title:       in.Title,
		Summary:     in.Summary,
		Details:     in.Details,
		Category:    entity.TipCategory(in.Category),
	}

	if in.Location != nil {
		p, err := decodePoint(in.Location, entity.SubmissionKindTip)
		if err != nil {
			return nil, err
		}
		out.Point = &p
	}

	return out, nil
}

func (v *Validator) validatePin(identity *entity.Identity, in *PinInput) (*Validated, error) {
	if !isAuthenticated(identity) && in.GuestName == "" {
		return nil, domainerrors.ErrAuthenticationRequired.WithDetails("sign in or provide guest_name")
	}
	if err := v.checkFields(in); err != nil {
		return nil, err
	}
	if in.Location == nil {
		return nil, domainerrors.ErrMissingLocation
	}

	p, err := decodePoint(in.Location, entity.SubmissionKindPin)
	if err != nil {
		return nil, err
	}

	out := &Validated{
		Kind:        entity.SubmissionKindPin,
		CityID:      in.CityID,
		SubmitterID: submitter(identity),
		Title:       in.Title,
		Summary:     in.Summary,
		Details:     in.Details,
		PinType:     entity.PinType(in.Type),
		Point:       &p,
	}
	if out.SubmitterID == nil {
		out.GuestName = in.GuestName
	}

	return out, nil
}

func (v *Validator) validateZone(identity *entity.Identity, in *ZoneInput) (*Validated, error) {
	if !isAuthenticated(identity) {
		return nil, domainerrors.ErrAuthenticationRequired
	}
	if err := v.checkFields(in); err != nil {
		return nil, err
	}
	if in.Geom == nil {
		return nil, domainerrors.ErrInvalidGeometry.WithDetails("geom is required")
	}

	g, err := geo.ParseGeoJSON(*in.Geom)
	if err != nil {
		return nil, mapGeometryError(err, entity.SubmissionKindZone)
	}
	poly, ok := g.(orb.Polygon)
	if !ok {
		return nil, domainerrors.ErrInvalidGeometry.WithDetails("geom must be a Polygon")
	}

	return &Validated{
		Kind:        entity.SubmissionKindZone,
		CityID:      in.CityID,
		SubmitterID: submitter(identity),
		Title:       in.Label,
		Summary:     in.ReasonShort,
		Details:     in.Details,
		Level:       entity.SafetyLevel(in.Level),
		Polygon:     poly,
	}, nil
}

func (v *Validator) checkFields(input any) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	fe := fieldErrs[0]
	if fe.Tag() == "required" {
		return domainerrors.ErrMissingField.WithDetails(fe.Field())
	}

	detail := fe.Field() + " failed " + fe.Tag()
	if fe.Param() != "" {
		detail += "=" + fe.Param()
	}

	return domainerrors.ErrInvalidField.WithDetails(detail)
}

func decodePoint(raw *geo.GeoJSON, kind entity.SubmissionKind) (orb.Point, error) {
	g, err := geo.ParseGeoJSON(*raw)
	if err != nil {
		return orb.Point{}, mapGeometryError(err, kind)
	}

	p, ok := g.(orb.Point)
	if !ok {
		return orb.Point{}, domainerrors.ErrInvalidGeometry.WithDetails("location must be a Point")
	}

	return p, nil
}

// mapGeometryError converts codec errors into submission reason codes.
func mapGeometryError(err error, kind entity.SubmissionKind) error {
	switch {
	case errors.Is(err, geo.ErrRingTooShort):
		return domainerrors.ErrInvalidGeometry.WithDetails(err.Error())
	case errors.Is(err, geo.ErrInvalidRing):
		return domainerrors.ErrInvalidRing.WithDetails(err.Error())
	case errors.Is(err, geo.ErrInvalidCoordinate):
		return domainerrors.ErrInvalidCoordinate.WithDetails(err.Error())
	default:
		return domainerrors.ErrInvalidGeometry.WithDetails(string(kind) + ": " + err.Error())
	}
}

func isAuthenticated(identity *entity.Identity) bool {
	return identity != nil && identity.UserID != ""
}

func submitter(identity *entity.Identity) *string {
	if !isAuthenticated(identity) {
		return nil
	}
	id := identity.UserID

	return &id
}
