package command

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/w32blaster/bot-current-weather/structs"
)

const (
	startText = "Hi! Send me a location marker or the name of a city and I'll reply to you " +
		"with the current weather in that place.\n\n" +
		"Use /settings to choose between Celsius and Fahrenheit."

	privateOnlyText = "This bot only works on private chats!"
)

type (
	// WeatherLookup returns nil observation, nil error when the place is unknown
	WeatherLookup interface {
		ByPlaceName(ctx context.Context, name string) (*structs.WeatherObservation, error)
		ByCoordinates(ctx context.Context, lat, lon float64) (*structs.WeatherObservation, error)
	}

	SettingsStore interface {
		FetchOrDefault(ctx context.Context, owner int64) (structs.UserSettings, error)
		Update(ctx context.Context, settings structs.UserSettings) error
	}

	// Sender issues the outbound chat actions. replyTo is 0 for a plain message.
	Sender interface {
		SendText(chatID int64, replyTo int, text string) error
		SendWithControl(chatID int64, text string, control Control) error
		EditWithControl(chatID int64, messageID int, text string, control Control) error
		SendAnimation(chatID int64, asset AssetID, caption string) error
		AnswerCallback(callbackID string) error
	}

	// Deps is built once at startup and shared by all the events
	Deps struct {
		Weather  WeatherLookup
		Settings SettingsStore
		Sender   Sender
		Logger   *slog.Logger
	}

	// Dispatcher routes inbound events. It keeps no state between events,
	// everything it needs is either in the event or in the settings store.
	Dispatcher struct {
		weather  WeatherLookup
		settings SettingsStore
		sender   Sender
		log      *slog.Logger
	}
)

func NewDispatcher(deps Deps) *Dispatcher {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		weather:  deps.Weather,
		settings: deps.Settings,
		sender:   deps.Sender,
		log:      logger,
	}
}

// Dispatch handles one event to completion. Errors are not retried here,
// they go back to the caller who delivered the event.
func (d *Dispatcher) Dispatch(ctx context.Context, ev structs.Event) error {
	log := d.log.With(
		"event_id", uuid.NewString(),
		"event", ev.Kind.String(),
		"user_id", ev.UserID,
		"chat_id", ev.ChatID,
	)
	log.Debug("event received")

	if err := d.route(ctx, ev, log); err != nil {
		return errors.Wrapf(err, "can't handle %s event of user %d", ev.Kind, ev.UserID)
	}

	log.Debug("event handled")
	return nil
}

func (d *Dispatcher) route(ctx context.Context, ev structs.Event, log *slog.Logger) error {

	// a button press always comes from the user who received the settings panel
	if ev.Kind == structs.EventToggle {
		return d.toggleTempUnit(ctx, ev, log)
	}

	if !ev.IsPrivate() {
		log.Info("rejected non-private chat", "chat_type", ev.ChatType)
		return d.sender.SendText(ev.ChatID, ev.MessageID, privateOnlyText)
	}

	switch ev.Kind {

	case structs.EventStart, structs.EventHelp:
		return d.sender.SendText(ev.ChatID, ev.MessageID, startText)

	case structs.EventSettings:
		settings, err := d.settings.FetchOrDefault(ctx, ev.UserID)
		if err != nil {
			return err
		}
		panel := RenderSettingsMessage(settings)
		return d.sender.SendWithControl(ev.ChatID, panel.Text, panel.Control)

	case structs.EventText:
		return d.sendWeather(ctx, ev, log, func() (*structs.WeatherObservation, error) {
			return d.weather.ByPlaceName(ctx, ev.Text)
		})

	case structs.EventLocation:
		return d.sendWeather(ctx, ev, log, func() (*structs.WeatherObservation, error) {
			return d.weather.ByCoordinates(ctx, ev.Latitude, ev.Longitude)
		})

	case structs.EventUnknownCommand:
		return d.sender.SendText(ev.ChatID, ev.MessageID, "Sorry, I don't recognize such command: /"+
			escapeMarkdown(ev.Text)+", please call /start to see what I can do")

	default:
		return errors.Errorf("unsupported event kind %d", ev.Kind)
	}
}

// sendWeather needs both the observation and the unit, if any of them fails nothing is sent
func (d *Dispatcher) sendWeather(ctx context.Context, ev structs.Event, log *slog.Logger, lookup func() (*structs.WeatherObservation, error)) error {
	obs, err := lookup()
	if err != nil {
		return errors.Wrap(err, "weather lookup")
	}

	if obs == nil {
		log.Info("no weather for the place", "query", strings.TrimSpace(ev.Text))
		return d.sender.SendText(ev.ChatID, 0, RenderNotFoundMessage())
	}

	settings, err := d.settings.FetchOrDefault(ctx, ev.UserID)
	if err != nil {
		return err
	}

	msg := RenderWeatherMessage(obs, settings.TempUnit)
	log.Info("sending weather", "place", obs.Name, "asset", string(msg.Asset), "unit", settings.TempUnit.String())
	return d.sender.SendAnimation(ev.ChatID, msg.Asset, msg.Caption)
}

// toggleTempUnit flips the unit and redraws the settings panel in place
func (d *Dispatcher) toggleTempUnit(ctx context.Context, ev structs.Event, log *slog.Logger) error {
	settings, err := d.settings.FetchOrDefault(ctx, ev.UserID)
	if err != nil {
		return err
	}

	settings.TempUnit = settings.TempUnit.Toggle()
	if err := d.settings.Update(ctx, settings); err != nil {
		return err
	}
	log.Info("temp unit toggled", "unit", settings.TempUnit.String())

	if ev.CallbackID != "" {
		if err := d.sender.AnswerCallback(ev.CallbackID); err != nil {
			log.Warn("can't answer the callback query", "err", err)
		}
	}

	panel := RenderSettingsMessage(settings)

	// the originating message is unknown, for example it is too old
	if ev.MessageID == 0 {
		return d.sender.SendWithControl(ev.UserID, panel.Text, panel.Control)
	}

	return d.sender.EditWithControl(ev.ChatID, ev.MessageID, panel.Text, panel.Control)
}
