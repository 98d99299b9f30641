package weather

import (
	"encoding/json"
	"fmt"

	"github.com/w32blaster/bot-current-weather/structs"
)

// raw response of the /weather endpoint, pointers let us tell a missing field from a zero value
type (
	rawObservation struct {
		Name    *string           `json:"name"`
		Main    *rawMain          `json:"main"`
		Weather []json.RawMessage `json:"weather"`
	}

	rawMain struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		Humidity  *float64 `json:"humidity"`
	}

	rawCode struct {
		ID          *int    `json:"id"`
		Main        *string `json:"main"`
		Description *string `json:"description"`
		Icon        *string `json:"icon"`
	}
)

// parseObservation decodes the body and checks every required field, nothing is defaulted
func parseObservation(body []byte) (*structs.WeatherObservation, error) {
	var raw rawObservation
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, malformed(err)
	}

	if raw.Name == nil {
		return nil, missing("name")
	}
	if raw.Main == nil {
		return nil, missing("main")
	}
	if raw.Main.Temp == nil {
		return nil, missing("main.temp")
	}
	if raw.Main.FeelsLike == nil {
		return nil, missing("main.feels_like")
	}
	if raw.Main.Humidity == nil {
		return nil, missing("main.humidity")
	}
	if len(raw.Weather) == 0 {
		return nil, &MalformedResponseError{Field: "weather", Reason: "is missing or empty"}
	}

	codes := make([]structs.WeatherCode, 0, len(raw.Weather))
	for i, item := range raw.Weather {
		code, err := parseCode(item, i)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}

	return &structs.WeatherObservation{
		Name: *raw.Name,
		Main: structs.MainWeather{
			Temp:      *raw.Main.Temp,
			FeelsLike: *raw.Main.FeelsLike,
			Humidity:  *raw.Main.Humidity,
		},
		Weather: codes,
	}, nil
}

func parseCode(item json.RawMessage, i int) (structs.WeatherCode, error) {
	prefix := fmt.Sprintf("weather[%d]", i)

	var raw rawCode
	if err := json.Unmarshal(item, &raw); err != nil {
		return structs.WeatherCode{}, malformedAt(prefix, err)
	}

	switch {
	case raw.ID == nil:
		return structs.WeatherCode{}, missing(prefix + ".id")
	case raw.Main == nil:
		return structs.WeatherCode{}, missing(prefix + ".main")
	case raw.Description == nil:
		return structs.WeatherCode{}, missing(prefix + ".description")
	case raw.Icon == nil:
		return structs.WeatherCode{}, missing(prefix + ".icon")
	}

	return structs.WeatherCode{
		ID:          *raw.ID,
		Main:        *raw.Main,
		Description: *raw.Description,
		Icon:        *raw.Icon,
	}, nil
}

func missing(field string) error {
	return &MalformedResponseError{Field: field, Reason: "is missing"}
}

func malformed(err error) error {
	return malformedAt("", err)
}

// a type mismatch names the offending field, a broken document doesn't
func malformedAt(prefix string, err error) error {
	if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
		field := typeErr.Field
		if prefix != "" {
			field = prefix + "." + field
		}
		return &MalformedResponseError{Field: field, Reason: "has type " + typeErr.Value + ", expected " + typeErr.Type.String()}
	}
	if prefix == "" {
		prefix = "(body)"
	}
	return &MalformedResponseError{Field: prefix, Reason: "can't be decoded: " + err.Error()}
}
