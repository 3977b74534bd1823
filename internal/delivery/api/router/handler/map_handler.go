package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"safemap/internal/delivery/api/response"
	"safemap/internal/domain/mapview"
	"safemap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const geoJSONContentType = "application/geo+json"

// MapHandlerParams holds dependencies for MapHandler, injected by Fx.
type MapHandlerParams struct {
	fx.In

	MapUC  usecase.MapUsecase
	Logger *slog.Logger
}

// MapHandler serves city layers, nearby warnings and share codes
type MapHandler struct {
	mapUC  usecase.MapUsecase
	logger *slog.Logger
}

// NewMapHandler is the constructor for MapHandler
func NewMapHandler(params MapHandlerParams) *MapHandler {
	return &MapHandler{
		mapUC:  params.MapUC,
		logger: params.Logger,
	}
}

// ListCities returns every city with published content
func (h *MapHandler) ListCities(c echo.Context) error {
	cities, err := h.mapUC.ListCities(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCityResponses(cities))
}

// GetCityMap returns the city's zones and pins, narrowed to ?bbox= when given
func (h *MapHandler) GetCityMap(c echo.Context) error {
	bounds, err := parseOptionalBBox(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cityMap, err := h.mapUC.GetCityMap(c.Request().Context(), c.Param("slug"), bounds)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCityMapResponse(cityMap))
}

// GetCityFeatures returns the city's zones and pins as a GeoJSON FeatureCollection
func (h *MapHandler) GetCityFeatures(c echo.Context) error {
	bounds, err := parseOptionalBBox(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	features, err := h.mapUC.GetCityFeatures(c.Request().Context(), c.Param("slug"), bounds)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	raw, err := toFeatureCollection(features).MarshalJSON()
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, geoJSONContentType, raw)
}

// GetCityQR returns a PNG share code for the city map
func (h *MapHandler) GetCityQR(c echo.Context) error {
	png, err := h.mapUC.CityShareQR(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}

// ResolveCityLink returns the city a scanned share link points to, given as ?link=
func (h *MapHandler) ResolveCityLink(c echo.Context) error {
	link := strings.TrimSpace(c.QueryParam("link"))
	if link == "" {
		return response.BadRequest(c, "INVALID_QUERY", "link is required")
	}

	city, err := h.mapUC.ResolveCityLink(c.Request().Context(), link)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCityResponse(city))
}

// FindNearby ranks warnings around ?lat=&lng=, optionally within ?city= and ?radius= meters.
// The location is used for this request only.
func (h *MapHandler) FindNearby(c echo.Context) error {
	var query usecase.NearbyQuery

	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &query.Location.Latitude).
		MustFloat64("lng", &query.Location.Longitude).
		Float64("accuracy", &query.Location.Accuracy).
		String("city", &query.CitySlug).
		Float64("radius", &query.RadiusMeters).
		BindError()
	if err != nil {
		return response.BadRequestWithDetails(c, "INVALID_QUERY", "lat and lng are required numbers", bindingDetails(err))
	}

	result, err := h.mapUC.FindNearby(c.Request().Context(), &query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toNearbyResponse(result))
}

func parseOptionalBBox(c echo.Context) (*orb.Bound, error) {
	raw := strings.TrimSpace(c.QueryParam("bbox"))
	if raw == "" {
		return nil, nil
	}

	bounds, err := mapview.ParseBBox(raw)
	if err != nil {
		return nil, err
	}

	return &bounds, nil
}

func bindingDetails(err error) any {
	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) {
		return map[string]any{"field": bindErr.Field, "values": bindErr.Values}
	}

	return nil
}
