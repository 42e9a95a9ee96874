package weather

import (
	"context"

	"go.uber.org/zap"

	"github.com/farmflow/backend/domain"
	"github.com/farmflow/backend/repository"
)

// Provider supplies observed conditions and the forward forecast.
type Provider interface {
	Current(ctx context.Context) (*domain.Weather, error)
	Forecast(ctx context.Context, days int) ([]domain.ForecastDay, error)
}

const defaultForecastDays = 5

type UseCase struct {
	provider Provider
	cache    repository.WeatherCache
	logger   *zap.Logger
}

func New(provider Provider, cache repository.WeatherCache, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		provider: provider,
		cache:    cache,
		logger:   logger,
	}
}

// Current returns the latest conditions, served from the cache when fresh.
// Cache failures degrade to a direct provider read.
func (uc *UseCase) Current(ctx context.Context) (*domain.Weather, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx)
		if err != nil {
			uc.logger.Warn("weather cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	current, err := uc.provider.Current(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, current); err != nil {
			uc.logger.Warn("weather cache write failed", zap.Error(err))
		}
	}
	return current, nil
}

func (uc *UseCase) Forecast(ctx context.Context, days int) ([]domain.ForecastDay, error) {
	if days <= 0 {
		days = defaultForecastDays
	}
	return uc.provider.Forecast(ctx, days)
}

// Alerts derives field-work advisories from the current conditions.
func (uc *UseCase) Alerts(ctx context.Context) ([]domain.WeatherAlert, error) {
	current, err := uc.Current(ctx)
	if err != nil {
		return nil, err
	}
	return AlertsFor(current), nil
}

// AlertsFor applies the advisory rules to one observation.
func AlertsFor(weather *domain.Weather) []domain.WeatherAlert {
	if weather == nil {
		return nil
	}

	var alerts []domain.WeatherAlert

	if weather.Condition == domain.ConditionRainy || weather.Condition == domain.ConditionStormy {
		alerts = append(alerts, domain.WeatherAlert{
			Type:    "warning",
			Title:   "Heavy Rain Warning",
			Message: "Avoid field work for the next 24 hours. Risk of soil compaction and equipment damage.",
		})
	}
	if weather.Temperature > 35 {
		alerts = append(alerts, domain.WeatherAlert{
			Type:    "advisory",
			Title:   "Heat Advisory",
			Message: "Extreme heat conditions. Ensure adequate hydration for workers and livestock.",
		})
	}
	if weather.Temperature < 5 {
		alerts = append(alerts, domain.WeatherAlert{
			Type:    "warning",
			Title:   "Frost Warning",
			Message: "Protect sensitive crops from frost damage. Consider covering plants overnight.",
		})
	}
	return alerts
}
