package redis

import (
	"context"
	"encoding/json"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/farmflow/backend/domain"
	"github.com/farmflow/backend/repository"
)

type weatherCache struct {
	client *redislib.Client
	key    string
	ttl    time.Duration
}

// NewWeatherCache creates a Redis-backed weather cache. A cache miss is
// reported as a nil weather, not an error.
func NewWeatherCache(client *redislib.Client, ttl time.Duration) repository.WeatherCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &weatherCache{
		client: client,
		key:    "weather:current",
		ttl:    ttl,
	}
}

func (c *weatherCache) Get(ctx context.Context) (*domain.Weather, error) {
	result, err := c.client.Get(ctx, c.key).Result()
	if err != nil {
		if err == redislib.Nil {
			return nil, nil
		}
		return nil, err
	}

	var weather domain.Weather
	if err := json.Unmarshal([]byte(result), &weather); err != nil {
		return nil, err
	}
	return &weather, nil
}

func (c *weatherCache) Set(ctx context.Context, weather *domain.Weather) error {
	if weather == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(weather)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, payload, c.ttl).Err()
}
