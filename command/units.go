package command

import "github.com/w32blaster/bot-current-weather/structs"

const absoluteZeroCelsius = 273.15

func KelvinToCelsius(k float64) float64 {
	return k - absoluteZeroCelsius
}

func KelvinToFahrenheit(k float64) float64 {
	return 9*(k-absoluteZeroCelsius)/5 + 32
}

// fromKelvin converts the provider temperature to the unit the user prefers
func fromKelvin(k float64, unit structs.TempUnit) float64 {
	if unit == structs.Fahrenheit {
		return KelvinToFahrenheit(k)
	}
	return KelvinToCelsius(k)
}
