// Package cache holds the published map layers of each city in Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"safemap/config"
	"safemap/internal/domain/constants"
	"safemap/internal/domain/entity"
	"safemap/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// LayerCacheParams holds dependencies for the layer cache
type LayerCacheParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

type redisLayerCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLayerCache returns a Redis backed cache, or a no-op cache when no address is configured
func NewLayerCache(params LayerCacheParams) service.MapLayerCache {
	redisCfg := params.Config.Redis
	if redisCfg == nil || redisCfg.Addr == "" {
		params.Logger.Info("Redis address not configured, city layer cache disabled")

		return noopLayerCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Cache is optional; the map falls back to Postgres when Redis is down
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed", slog.String("addr", redisCfg.Addr), slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	params.Logger.Info("City layer cache enabled", slog.String("addr", redisCfg.Addr), slog.Duration("ttl", params.Config.Cache.LayerTTL))

	return NewRedisLayerCache(client, params.Config.Cache.LayerTTL)
}

// NewRedisLayerCache wraps an existing client
func NewRedisLayerCache(client *redis.Client, ttl time.Duration) service.MapLayerCache {
	return &redisLayerCache{client: client, ttl: ttl}
}

// setIfGeneration writes KEYS[1] only while KEYS[2] still holds ARGV[1].
// A missing generation key counts as generation 0. ARGV[3] is the TTL in
// milliseconds, 0 meaning no expiry.
var setIfGeneration = redis.NewScript(`
local gen = redis.call('GET', KEYS[2]) or '0'
if gen ~= ARGV[1] then
	return 0
end
if ARGV[3] == '0' then
	redis.call('SET', KEYS[1], ARGV[2])
else
	redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
end
return 1
`)

// LayerKey is the Redis key of a city's layers
func LayerKey(cityID int64) string {
	return constants.LayerCacheKeyPrefix + strconv.FormatInt(cityID, 10) + ":layers"
}

// GenerationKey is the Redis key of a city's invalidation counter
func GenerationKey(cityID int64) string {
	return constants.LayerCacheKeyPrefix + strconv.FormatInt(cityID, 10) + ":generation"
}

func (c *redisLayerCache) GetCityLayers(ctx context.Context, cityID int64) (*entity.CityLayers, int64, error) {
	values, err := c.client.MGet(ctx, LayerKey(cityID), GenerationKey(cityID)).Result()
	if err != nil {
		return nil, 0, errors.Wrapf(err, "get layers of city %d", cityID)
	}

	generation, err := parseGeneration(values[1])
	if err != nil {
		return nil, 0, errors.Wrapf(err, "generation of city %d", cityID)
	}

	raw, ok := values[0].(string)
	if !ok {
		return nil, generation, nil
	}

	layers, err := decodeLayers([]byte(raw))
	if err != nil {
		return nil, generation, err
	}

	return layers, generation, nil
}

func (c *redisLayerCache) SetCityLayers(ctx context.Context, layers *entity.CityLayers, generation int64) error {
	if layers == nil || layers.City == nil {
		return errors.New("layers without city cannot be cached")
	}

	raw, err := encodeLayers(layers)
	if err != nil {
		return err
	}

	cityID := layers.City.ID
	err = setIfGeneration.Run(ctx, c.client,
		[]string{LayerKey(cityID), GenerationKey(cityID)},
		strconv.FormatInt(generation, 10), raw, c.ttl.Milliseconds(),
	).Err()
	if err != nil {
		return errors.Wrapf(err, "set layers of city %d", cityID)
	}

	return nil
}

// InvalidateCity advances the generation before dropping the layers so any
// fill started earlier is refused.
func (c *redisLayerCache) InvalidateCity(ctx context.Context, cityID int64) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, GenerationKey(cityID))
		pipe.Del(ctx, LayerKey(cityID))

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "invalidate layers of city %d", cityID)
	}

	return nil
}

func parseGeneration(value any) (int64, error) {
	if value == nil {
		return 0, nil
	}

	s, ok := value.(string)
	if !ok {
		return 0, errors.Errorf("unexpected generation type %T", value)
	}

	generation, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "parse generation")
	}

	return generation, nil
}

func encodeLayers(layers *entity.CityLayers) ([]byte, error) {
	raw, err := json.Marshal(layers)
	if err != nil {
		return nil, errors.Wrap(err, "encode city layers")
	}

	return raw, nil
}

func decodeLayers(raw []byte) (*entity.CityLayers, error) {
	layers := &entity.CityLayers{}
	if err := json.Unmarshal(raw, layers); err != nil {
		return nil, errors.Wrap(err, "decode city layers")
	}
	if layers.City == nil {
		return nil, errors.New("cached layers have no city")
	}

	return layers, nil
}

type noopLayerCache struct{}

func (noopLayerCache) GetCityLayers(context.Context, int64) (*entity.CityLayers, int64, error) {
	return nil, 0, nil
}

func (noopLayerCache) SetCityLayers(context.Context, *entity.CityLayers, int64) error { return nil }

func (noopLayerCache) InvalidateCity(context.Context, int64) error { return nil }
