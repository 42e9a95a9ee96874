package repository

import (
	"context"

	"github.com/farmflow/backend/domain"
)

// WeatherCache stores the latest observed conditions with a TTL so repeated
// dashboard loads do not hit the upstream provider.
type WeatherCache interface {
	Get(ctx context.Context) (*domain.Weather, error)
	Set(ctx context.Context, weather *domain.Weather) error
}
