package structs

type (
	// WeatherCode is one condition classification, see https://openweathermap.org/weather-conditions
	WeatherCode struct {
		ID          int
		Main        string
		Description string
		Icon        string
	}

	// MainWeather keeps temperatures in Kelvin, as the provider returns them by default
	MainWeather struct {
		Temp      float64
		FeelsLike float64
		Humidity  float64
	}

	// WeatherObservation is the current weather in one place. Weather is never empty,
	// the first element is the primary condition.
	WeatherObservation struct {
		Name    string
		Main    MainWeather
		Weather []WeatherCode
	}
)

// Primary returns the condition used for display and animation
func (w *WeatherObservation) Primary() WeatherCode {
	return w.Weather[0]
}
