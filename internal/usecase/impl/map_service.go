package impl

import (
	"context"
	"log/slog"

	"github.com/paulmach/orb"
	"go.uber.org/fx"

	"safemap/config"
	deliverycontext "safemap/internal/delivery/context"
	"safemap/internal/domain/entity"
	domainerrors "safemap/internal/domain/errors"
	"safemap/internal/domain/mapview"
	"safemap/internal/domain/repository"
	"safemap/internal/domain/service"
	"safemap/internal/errors"
	"safemap/internal/geo"
	"safemap/internal/usecase"
)

const (
	defaultMaxNearbyRadius = 5000.0
	approvedTipsLimit      = maxListLimit
)

type mapService struct {
	cityRepo       repository.CityRepository
	publishedRepo  repository.PublishedEntityRepository
	submissionRepo repository.SubmissionRepository
	layerCache     service.MapLayerCache
	qrCodeService  service.QRCodeService
	defaultRadius  float64
	maxRadius      float64
	logger         *slog.Logger
}

// MapServiceParams holds dependencies for MapService, injected by Fx.
type MapServiceParams struct {
	fx.In

	CityRepo       repository.CityRepository
	PublishedRepo  repository.PublishedEntityRepository
	SubmissionRepo repository.SubmissionRepository
	LayerCache     service.MapLayerCache
	QRCodeService  service.QRCodeService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewMapService creates a new map service instance
func NewMapService(params MapServiceParams) usecase.MapUsecase {
	defaultRadius, maxRadius := mapview.DefaultRadiusMeters, defaultMaxNearbyRadius
	if params.Config != nil && params.Config.Nearby != nil {
		if params.Config.Nearby.DefaultRadius > 0 {
			defaultRadius = params.Config.Nearby.DefaultRadius
		}
		if params.Config.Nearby.MaxRadius > 0 {
			maxRadius = params.Config.Nearby.MaxRadius
		}
	}

	return &mapService{
		cityRepo:       params.CityRepo,
		publishedRepo:  params.PublishedRepo,
		submissionRepo: params.SubmissionRepo,
		layerCache:     params.LayerCache,
		qrCodeService:  params.QRCodeService,
		defaultRadius:  defaultRadius,
		maxRadius:      max(maxRadius, defaultRadius),
		logger:         params.Logger,
	}
}

func (srv *mapService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCities returns the city catalogue
func (srv *mapService) ListCities(ctx context.Context) ([]*entity.City, error) {
	cities, err := srv.cityRepo.FindCities(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list cities")
	}

	return cities, nil
}

// GetCityMap returns a city's published layers, narrowed to bounds when given
func (srv *mapService) GetCityMap(ctx context.Context, slug string, bounds *orb.Bound) (*usecase.CityMap, error) {
	city, err := srv.findCity(ctx, slug)
	if err != nil {
		return nil, err
	}

	layers, err := srv.loadLayers(ctx, city)
	if err != nil {
		return nil, err
	}

	out := &usecase.CityMap{
		City:       city,
		Zones:      layers.Zones,
		Pins:       layers.Pins,
		Tips:       layers.Tips,
		TotalZones: len(layers.Zones),
		TotalPins:  len(layers.Pins),
	}

	if bounds != nil {
		visible := mapview.FilterToBounds(*bounds, layers.Zones, layers.Pins)
		out.Zones = visible.Zones
		out.Pins = visible.Pins
	}

	return out, nil
}

// GetCityFeatures returns the map layers as a flat feature list
func (srv *mapService) GetCityFeatures(ctx context.Context, slug string, bounds *orb.Bound) ([]entity.MapFeature, error) {
	cityMap, err := srv.GetCityMap(ctx, slug, bounds)
	if err != nil {
		return nil, err
	}

	return entity.Features(cityMap.Zones, cityMap.Pins), nil
}

// FindNearby ranks published pins around a live location. The location is
// used for this computation only and never stored.
func (srv *mapService) FindNearby(ctx context.Context, query *usecase.NearbyQuery) (*usecase.NearbyResult, error) {
	point := query.Location.Point()
	if err := geo.ValidatePoint(point); err != nil {
		return nil, domainerrors.ErrInvalidCoordinate.WithDetails(err.Error())
	}

	radius := query.RadiusMeters
	if radius <= 0 {
		radius = srv.defaultRadius
	}
	radius = min(radius, srv.maxRadius)

	var (
		zones []*entity.Zone
		pins  []*entity.Pin
	)

	if query.CitySlug != "" {
		city, err := srv.findCity(ctx, query.CitySlug)
		if err != nil {
			return nil, err
		}

		layers, err := srv.loadLayers(ctx, city)
		if err != nil {
			return nil, err
		}
		zones, pins = layers.Zones, layers.Pins
	} else {
		var err error
		if pins, err = srv.publishedRepo.FindPinsWithinRadius(ctx, point, radius); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "find nearby pins")
		}
		if zones, err = srv.publishedRepo.FindZonesNear(ctx, point, radius); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "find nearby zones")
		}
	}

	return &usecase.NearbyResult{
		RadiusMeters:    radius,
		Zones:           zones,
		Warnings:        mapview.FindNearby(point, pins, radius),
		CurrentZone:     mapview.CurrentZone(point, zones),
		ContainingZones: mapview.ContainingZones(point, zones),
	}, nil
}

// CityShareQR renders a QR code linking to the city map
func (srv *mapService) CityShareQR(ctx context.Context, slug string) ([]byte, error) {
	city, err := srv.findCity(ctx, slug)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateCityQR(city.Slug)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return png, nil
}

// ResolveCityLink maps a scanned share link back to its city
func (srv *mapService) ResolveCityLink(ctx context.Context, link string) (*entity.City, error) {
	slug, err := srv.qrCodeService.ParseCityQR(link)
	if err != nil {
		return nil, domainerrors.ErrInvalidCityLink.WithDetails(err.Error())
	}

	return srv.findCity(ctx, slug)
}

func (srv *mapService) findCity(ctx context.Context, slug string) (*entity.City, error) {
	city, err := srv.cityRepo.FindCityBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrCityNotFound) {
			return nil, domainerrors.ErrCityNotFound.WithDetails(slug)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find city")
	}

	return city, nil
}

// loadLayers reads through the layer cache. Cache failures only cost a
// database round trip. The fill carries the generation seen on the miss, so
// an approval landing during the database read keeps the stale layers out.
func (srv *mapService) loadLayers(ctx context.Context, city *entity.City) (*entity.CityLayers, error) {
	logger := srv.log(ctx).With("city_id", city.ID)

	cached, generation, err := srv.layerCache.GetCityLayers(ctx, city.ID)
	if err != nil {
		logger.Warn("layer cache read failed", slog.Any("error", err))
	}
	if cached != nil {
		cached.City = city

		return cached, nil
	}

	zones, err := srv.publishedRepo.FindZonesByCity(ctx, city.ID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find zones")
	}

	pins, err := srv.publishedRepo.FindPinsByCity(ctx, city.ID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find pins")
	}

	tips, err := srv.submissionRepo.FindSubmissions(ctx, repository.SubmissionFilter{
		Kind:   entity.SubmissionKindTip,
		Status: entity.SubmissionStatusApproved,
		CityID: city.ID,
		Limit:  approvedTipsLimit,
	})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find approved tips")
	}

	layers := &entity.CityLayers{City: city, Zones: zones, Pins: pins, Tips: tips}
	if err := srv.layerCache.SetCityLayers(ctx, layers, generation); err != nil {
		logger.Warn("layer cache write failed", slog.Any("error", err))
	}

	return layers, nil
}
