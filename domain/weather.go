package domain

import "time"

// Weather conditions reported by the provider.
const (
	ConditionSunny  = "sunny"
	ConditionCloudy = "cloudy"
	ConditionRainy  = "rainy"
	ConditionStormy = "stormy"
	ConditionSnowy  = "snowy"
)

// Weather holds current conditions for the farm's location.
type Weather struct {
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Condition   string    `json:"condition"`
	ObservedAt  time.Time `json:"observed_at"`
}

// ForecastDay is a single day in the forward forecast.
type ForecastDay struct {
	Date      time.Time `json:"date"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Condition string    `json:"condition"`
}

// WeatherAlert is an advisory derived from current conditions.
type WeatherAlert struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}
