// Package geo converts geometry between the GeoJSON wire format, the datastore
// text form and orb values, and provides the planar/spherical predicates used
// by map filtering and nearby search.
package geo

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"

	"safemap/internal/errors"
)

// SRID is the spatial reference of every stored geometry (WGS 84).
const SRID = 4326

// MinRingPositions is the smallest closed ring: a triangle plus its closing vertex.
const MinRingPositions = 4

var (
	ErrInvalidCoordinate   = errors.New("invalid coordinate")
	ErrInvalidRing         = errors.New("invalid polygon ring")
	ErrRingTooShort        = errors.WithMessage(ErrInvalidRing, "too few positions")
	ErrUnsupportedGeometry = errors.New("unsupported geometry type")
	ErrMalformedGeometry   = errors.New("malformed geometry")
)

// GeoJSON is the wire shape of a Point or Polygon geometry.
type GeoJSON struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// ValidatePoint checks that p is [lng, lat] with both values finite and in range.
func ValidatePoint(p orb.Point) error {
	lng, lat := p[0], p[1]
	if math.IsNaN(lng) || math.IsInf(lng, 0) || math.IsNaN(lat) || math.IsInf(lat, 0) {
		return errors.Wrapf(ErrInvalidCoordinate, "non-finite coordinate (%v, %v)", lng, lat)
	}
	if lng < -180 || lng > 180 {
		return errors.Wrapf(ErrInvalidCoordinate, "longitude %v out of range", lng)
	}
	if lat < -90 || lat > 90 {
		return errors.Wrapf(ErrInvalidCoordinate, "latitude %v out of range", lat)
	}

	return nil
}

// ValidateRing checks size, closure and every vertex of an outer ring. A bad
// vertex is reported as ErrInvalidRing with the point error in the message.
func ValidateRing(ring orb.Ring) error {
	if len(ring) < MinRingPositions {
		return errors.Wrapf(ErrRingTooShort, "ring has %d positions, need at least %d", len(ring), MinRingPositions)
	}
	if ring[0] != ring[len(ring)-1] {
		return errors.Wrap(ErrInvalidRing, "ring is not closed")
	}
	for i, p := range ring {
		if err := ValidatePoint(p); err != nil {
			return errors.Wrapf(ErrInvalidRing, "vertex %d: %v", i, err)
		}
	}

	return nil
}

// Validate checks a Point or the outer ring of a Polygon.
func Validate(g orb.Geometry) error {
	switch v := g.(type) {
	case orb.Point:
		return ValidatePoint(v)
	case orb.Polygon:
		if len(v) == 0 {
			return errors.Wrap(ErrRingTooShort, "polygon has no rings")
		}

		return ValidateRing(v[0])
	default:
		return errors.Wrapf(ErrUnsupportedGeometry, "%T", g)
	}
}

// EncodePoint renders a point in the datastore form SRID=4326;POINT(lng lat).
func EncodePoint(lng, lat float64) (string, error) {
	p := orb.Point{lng, lat}
	if err := ValidatePoint(p); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("SRID=")
	b.WriteString(strconv.Itoa(SRID))
	b.WriteString(";POINT(")
	writePosition(&b, p)
	b.WriteString(")")

	return b.String(), nil
}

// EncodePolygon renders an outer ring as POLYGON((x y,x y,...)).
func EncodePolygon(ring orb.Ring) (string, error) {
	if err := ValidateRing(ring); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("POLYGON((")
	for i, p := range ring {
		if i > 0 {
			b.WriteByte(',')
		}
		writePosition(&b, p)
	}
	b.WriteString("))")

	return b.String(), nil
}

// Encode dispatches on the geometry type.
func Encode(g orb.Geometry) (string, error) {
	switch v := g.(type) {
	case orb.Point:
		return EncodePoint(v[0], v[1])
	case orb.Polygon:
		if len(v) == 0 {
			return "", errors.Wrap(ErrRingTooShort, "polygon has no rings")
		}

		return EncodePolygon(v[0])
	default:
		return "", errors.Wrapf(ErrUnsupportedGeometry, "%T", g)
	}
}

func writePosition(b *strings.Builder, p orb.Point) {
	b.WriteString(strconv.FormatFloat(p[0], 'f', -1, 64))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(p[1], 'f', -1, 64))
}

// Decode turns any accepted representation into a validated orb.Point or
// orb.Polygon. A nil input decodes to a nil geometry. Coordinates are never
// reordered; see RepairSwappedPoint for the offline fix-up.
func Decode(raw any) (orb.Geometry, error) {
	g, err := decodeUnchecked(raw)
	if err != nil || g == nil {
		return nil, err
	}

	if err := Validate(g); err != nil {
		return nil, err
	}

	return g, nil
}

func decodeUnchecked(raw any) (orb.Geometry, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case orb.Point:
		return v, nil
	case orb.Polygon:
		return v, nil
	case orb.Ring:
		return orb.Polygon{v}, nil
	case GeoJSON:
		return parseGeoJSON(v)
	case *GeoJSON:
		if v == nil {
			return nil, nil
		}

		return parseGeoJSON(*v)
	case *geojson.Geometry:
		if v == nil {
			return nil, nil
		}

		return outerOnly(v.Geometry())
	case map[string]any:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, errors.Wrap(ErrMalformedGeometry, err.Error())
		}

		return decodeJSON(data)
	case json.RawMessage:
		return decodeBytes(v)
	case []byte:
		return decodeBytes(v)
	case string:
		return decodeText(v)
	case *string:
		if v == nil {
			return nil, nil
		}

		return decodeText(*v)
	default:
		return nil, errors.Wrapf(ErrUnsupportedGeometry, "cannot decode %T", raw)
	}
}

func decodeBytes(data []byte) (orb.Geometry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] == '{' {
		return decodeJSON(trimmed)
	}

	return decodeText(string(trimmed))
}

func decodeJSON(data []byte) (orb.Geometry, error) {
	var wire GeoJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, errors.Wrap(ErrMalformedGeometry, err.Error())
	}

	return parseGeoJSON(wire)
}

// decodeText accepts WKT, EWKT (SRID=4326;...) and JSON text. Any other SRID
// is rejected since coordinates are always read as WGS 84 degrees.
func decodeText(text string) (orb.Geometry, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, nil
	}
	if strings.HasPrefix(s, "{") {
		return decodeJSON([]byte(s))
	}

	if strings.HasPrefix(strings.ToUpper(s), "SRID=") {
		idx := strings.IndexByte(s, ';')
		if idx < 0 {
			return nil, errors.Wrapf(ErrMalformedGeometry, "missing ';' after SRID in %q", s)
		}
		srid, err := strconv.Atoi(strings.TrimSpace(s[len("SRID="):idx]))
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedGeometry, "invalid SRID in %q", s)
		}
		if srid != SRID {
			return nil, errors.Wrapf(ErrMalformedGeometry, "SRID %d is not supported, want %d", srid, SRID)
		}
		s = strings.TrimSpace(s[idx+1:])
	}

	g, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedGeometry, "%s: %q", err.Error(), s)
	}

	return outerOnly(g)
}

// outerOnly narrows to the supported geometry types and drops polygon holes.
func outerOnly(g orb.Geometry) (orb.Geometry, error) {
	switch v := g.(type) {
	case orb.Point:
		return v, nil
	case orb.Polygon:
		if len(v) == 0 {
			return nil, errors.Wrap(ErrRingTooShort, "polygon has no rings")
		}

		return orb.Polygon{v[0]}, nil
	case nil:
		return nil, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedGeometry, "%s", g.GeoJSONType())
	}
}

// ParseGeoJSON decodes and validates a wire geometry.
func ParseGeoJSON(wire GeoJSON) (orb.Geometry, error) {
	g, err := parseGeoJSON(wire)
	if err != nil {
		return nil, err
	}

	if err := Validate(g); err != nil {
		return nil, err
	}

	return g, nil
}

// parseGeoJSON is strict about arity: a position has exactly two numbers.
func parseGeoJSON(wire GeoJSON) (orb.Geometry, error) {
	switch wire.Type {
	case "Point":
		var coords []float64
		if err := json.Unmarshal(wire.Coordinates, &coords); err != nil {
			return nil, errors.Wrap(ErrMalformedGeometry, err.Error())
		}
		if len(coords) != 2 {
			return nil, errors.Wrapf(ErrInvalidCoordinate, "point has %d coordinates, want 2", len(coords))
		}

		return orb.Point{coords[0], coords[1]}, nil
	case "Polygon":
		var rings [][][]float64
		if err := json.Unmarshal(wire.Coordinates, &rings); err != nil {
			return nil, errors.Wrap(ErrMalformedGeometry, err.Error())
		}
		if len(rings) == 0 {
			return nil, errors.Wrap(ErrRingTooShort, "polygon has no rings")
		}

		outer := make(orb.Ring, 0, len(rings[0]))
		for _, pos := range rings[0] {
			if len(pos) != 2 {
				return nil, errors.Wrapf(ErrInvalidRing, "position has %d coordinates, want 2", len(pos))
			}
			outer = append(outer, orb.Point{pos[0], pos[1]})
		}

		return orb.Polygon{outer}, nil
	case "":
		return nil, errors.Wrap(ErrMalformedGeometry, "missing geometry type")
	default:
		return nil, errors.Wrapf(ErrUnsupportedGeometry, "%s", wire.Type)
	}
}

// ToGeoJSON renders an orb geometry for the wire, [lng, lat] axis order.
func ToGeoJSON(g orb.Geometry) *geojson.Geometry {
	if g == nil {
		return nil
	}

	return geojson.NewGeometry(g)
}
