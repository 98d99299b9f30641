package structs

import "fmt"

// TempUnit is the temperature unit the user wants to see
type TempUnit int

const (
	Celsius TempUnit = iota + 1
	Fahrenheit
)

type UserSettings struct {
	Owner    int64
	TempUnit TempUnit
}

// DefaultSettings is what a user has until they press the toggle button for the first time
func DefaultSettings(owner int64) UserSettings {
	return UserSettings{
		Owner:    owner,
		TempUnit: Celsius,
	}
}

// Toggle switches Celsius to Fahrenheit and back. There is no third state.
func (u TempUnit) Toggle() TempUnit {
	if u == Fahrenheit {
		return Celsius
	}
	return Fahrenheit
}

func (u TempUnit) String() string {
	if u == Fahrenheit {
		return "Fahrenheit"
	}
	return "Celsius"
}

func (u TempUnit) Symbol() string {
	if u == Fahrenheit {
		return "°F"
	}
	return "°C"
}

// Code is the value persisted in the "temp_unit" field
func (u TempUnit) Code() string {
	if u == Fahrenheit {
		return "F"
	}
	return "C"
}

// ParseTempUnitCode is the reverse of Code. Anything else is not silently defaulted.
func ParseTempUnitCode(code string) (TempUnit, error) {
	switch code {
	case "C":
		return Celsius, nil
	case "F":
		return Fahrenheit, nil
	default:
		return 0, fmt.Errorf("unrecognized temp unit: %q", code)
	}
}
