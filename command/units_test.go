package command

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKelvinConversions(t *testing.T) {

	var dataSet = []struct {
		kelvin     float64
		celsius    string
		fahrenheit string
	}{
		{300.15, "27.0", "80.6"},
		{273.15, "0.0", "32.0"},
		{0, "-273.1", "-459.7"},
		{233.15, "-40.0", "-40.0"},
		{373.15, "100.0", "212.0"},
	}

	for _, tt := range dataSet {
		t.Run(fmt.Sprintf("%.2fK", tt.kelvin), func(t *testing.T) {
			assert.Equal(t, tt.celsius, fmt.Sprintf("%.1f", KelvinToCelsius(tt.kelvin)))
			assert.Equal(t, tt.fahrenheit, fmt.Sprintf("%.1f", KelvinToFahrenheit(tt.kelvin)))
		})
	}
}

func TestKelvinConversionsAreLinear(t *testing.T) {
	assert.InDelta(t, 27.0, KelvinToCelsius(300.15), 1e-9)
	assert.InDelta(t, 32.0, KelvinToFahrenheit(273.15), 1e-9)
	assert.InDelta(t, 1.8, KelvinToFahrenheit(301)-KelvinToFahrenheit(300), 1e-9)
}
