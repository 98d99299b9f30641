package structs

import (
	"fmt"
	"strings"
)

const (
	BackendBolt   = "bolt"
	BackendValkey = "valkey"

	DeliveryPoll    = "poll"
	DeliveryWebhook = "webhook"
)

// Opts is the bot configuration, read from environment variables once at startup
type Opts struct {
	Port    int    `env:"PORT" envDefault:"8444"`
	Host    string `env:"HOST" envDefault:"localhost"`
	IsDebug bool   `env:"DEBUG"`

	// sensitive data, never keep it in Github
	BotToken      string `env:"BOT_TOKEN,required"`
	WeatherAPIKey string `env:"OPENWEATHERMAP_API_KEY,required"`

	// SettingsStore is the file path of the bolt database or the address of the Valkey server,
	// depending on the StorageBackend
	SettingsStore   string `env:"SETTINGS_STORE,required"`
	StorageBackend  string `env:"STORAGE_BACKEND" envDefault:"bolt"`
	ValkeyKeyPrefix string `env:"VALKEY_KEY_PREFIX"`

	WeatherAPIURL string `env:"WEATHER_API_URL" envDefault:"https://api.openweathermap.org/data/2.5"`
	AnimationsDir string `env:"ANIMATIONS_DIR" envDefault:"animations"`
	DeliveryMode  string `env:"DELIVERY_MODE" envDefault:"poll"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	SentryDSN     string `env:"SENTRY_DSN"`
}

// ConfigurationError means a required setting is absent or has an unsupported value.
// The bot can't start with it.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Validate checks the values the env parser can't check itself
func (o *Opts) Validate() error {
	// the env parser accepts variables that are set but empty
	for name, value := range map[string]string{
		"BOT_TOKEN":              o.BotToken,
		"OPENWEATHERMAP_API_KEY": o.WeatherAPIKey,
		"SETTINGS_STORE":         o.SettingsStore,
	} {
		if strings.TrimSpace(value) == "" {
			return &ConfigurationError{fmt.Errorf("%s is empty", name)}
		}
	}

	switch o.StorageBackend {
	case BackendBolt, BackendValkey:
	default:
		return &ConfigurationError{fmt.Errorf("invalid STORAGE_BACKEND %q (allowed: bolt, valkey)", o.StorageBackend)}
	}

	switch o.DeliveryMode {
	case DeliveryPoll, DeliveryWebhook:
	default:
		return &ConfigurationError{fmt.Errorf("invalid DELIVERY_MODE %q (allowed: poll, webhook)", o.DeliveryMode)}
	}

	switch strings.ToLower(o.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ConfigurationError{fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", o.LogLevel)}
	}

	if strings.TrimSpace(o.WeatherAPIURL) == "" {
		return &ConfigurationError{fmt.Errorf("WEATHER_API_URL is empty")}
	}
	return nil
}
