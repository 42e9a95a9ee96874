// Package weather provides a self-contained conditions provider used until a
// real meteorological upstream is wired in. Readings vary slightly between
// calls so dashboards do not look frozen.
package weather

import (
	"context"
	"math/rand"
	"time"

	"github.com/farmflow/backend/domain"
)

type StaticProvider struct {
	base domain.Weather
	rand *rand.Rand
	now  func() time.Time
}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{
		base: domain.Weather{
			Temperature: 22,
			Humidity:    55,
			WindSpeed:   12,
			Condition:   domain.ConditionSunny,
		},
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:  time.Now,
	}
}

func (p *StaticProvider) Current(ctx context.Context) (*domain.Weather, error) {
	current := p.base
	current.Temperature += float64(p.rand.Intn(5) - 2)
	current.Humidity = clamp(current.Humidity+p.rand.Float64()*10-5, 20, 80)
	current.WindSpeed = clamp(current.WindSpeed+p.rand.Float64()*6-3, 0, 120)
	current.ObservedAt = p.now()
	return &current, nil
}

func (p *StaticProvider) Forecast(ctx context.Context, days int) ([]domain.ForecastDay, error) {
	conditions := []string{
		domain.ConditionSunny,
		domain.ConditionCloudy,
		domain.ConditionRainy,
		domain.ConditionSunny,
		domain.ConditionCloudy,
	}

	forecast := make([]domain.ForecastDay, 0, days)
	for i := 0; i < days; i++ {
		high := p.base.Temperature + float64(p.rand.Intn(7)-3) + 4
		forecast = append(forecast, domain.ForecastDay{
			Date:      p.now().AddDate(0, 0, i+1),
			High:      high,
			Low:       high - 8 - float64(p.rand.Intn(4)),
			Condition: conditions[i%len(conditions)],
		})
	}
	return forecast, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
