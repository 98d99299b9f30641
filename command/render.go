package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/w32blaster/bot-current-weather/structs"
)

// ToggleTempUnitAction is the callback data of the button on the settings panel
const ToggleTempUnitAction = "toggle-temp-unit"

// AssetID names an animation file, without extension
type AssetID string

const (
	AssetPartialClouds AssetID = "partial_clouds"
	AssetGeneric       AssetID = "oh-oh"
)

// the weather "main" groups we have a special animation for
var knownMainCodes = map[string]bool{
	"Thunderstorm": true,
	"Drizzle":      true,
	"Rain":         true,
	"Snow":         true,
	"Clear":        true,
	"Clouds":       true,
}

var markdownEscaper = strings.NewReplacer(
	"_", "\\_",
	"*", "\\*",
	"`", "\\`",
	"[", "\\[",
)

type (
	// Control is a single inline button
	Control struct {
		Label  string
		Action string
	}

	WeatherMessage struct {
		Caption string
		Asset   AssetID
	}

	SettingsMessage struct {
		Text    string
		Control Control
	}
)

// RenderWeatherMessage builds the caption of the weather animation
func RenderWeatherMessage(obs *structs.WeatherObservation, unit structs.TempUnit) WeatherMessage {
	primary := obs.Primary()

	var b strings.Builder
	b.WriteString("*Place*: " + escapeMarkdown(obs.Name) + "\n")
	b.WriteString("*Weather*: " + escapeMarkdown(primary.Description) + "\n")
	b.WriteString(fmt.Sprintf("*Temperature*: %s (feels like %s)\n",
		degrees(obs.Main.Temp, unit),
		degrees(obs.Main.FeelsLike, unit)))
	b.WriteString("*Humidity*: " + strconv.FormatFloat(obs.Main.Humidity, 'f', -1, 64) + "%")

	return WeatherMessage{
		Caption: b.String(),
		Asset:   AssetFor(primary),
	}
}

// AssetFor picks the animation for a weather condition
func AssetFor(code structs.WeatherCode) AssetID {

	// Clouds group starts at 801, 800 is "Clear". Few or scattered clouds get their own picture
	if code.ID > 800 && code.ID < 803 {
		return AssetPartialClouds
	}

	if !knownMainCodes[code.Main] {
		return AssetGeneric
	}

	return AssetID(strings.ToLower(code.Main))
}

// RenderSettingsMessage the button always offers the other unit, never the current one
func RenderSettingsMessage(settings structs.UserSettings) SettingsMessage {
	return SettingsMessage{
		Text: "*Settings*\n\n🌡 *Temperature unit*: " + settings.TempUnit.String(),
		Control: Control{
			Label:  "Switch to " + settings.TempUnit.Toggle().String(),
			Action: ToggleTempUnitAction,
		},
	}
}

func RenderNotFoundMessage() string {
	return "Couldn't find weather information for that place!"
}

func degrees(kelvin float64, unit structs.TempUnit) string {
	return fmt.Sprintf("%.1f %s", fromKelvin(kelvin, unit), unit.Symbol())
}

func escapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}
