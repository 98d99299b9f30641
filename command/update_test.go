package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	tgbotapi "gopkg.in/telegram-bot-api.v4"

	"github.com/w32blaster/bot-current-weather/structs"
)

func TestExtractCommand(t *testing.T) {

	var dataSet = []struct {
		raw      string
		expected string
	}{
		{"/start", "start"},
		{"/settings@WeatherNowBot", "settings"},
		{"/start@WeatherNowBot some args", "start"},
		{"/help arg1 arg2", "help"},
		{"/Settings", "settings"},
		{"", ""},
	}

	for _, tt := range dataSet {
		t.Run("command "+tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractCommand(tt.raw))
		})
	}
}

func TestCommandUpdates(t *testing.T) {

	var dataSet = []struct {
		text         string
		expectedKind structs.EventKind
	}{
		{"/start", structs.EventStart},
		{"/help", structs.EventHelp},
		{"/settings@WeatherNowBot", structs.EventSettings},
		{"/forecast", structs.EventUnknownCommand},
	}

	for _, tt := range dataSet {
		t.Run(tt.text, func(t *testing.T) {

			// Given:
			update := tgbotapi.Update{Message: commandMessage(tt.text)}

			// When:
			ev, ok := EventFromUpdate(update)

			// Then:
			assert.True(t, ok)
			assert.Equal(t, tt.expectedKind, ev.Kind)
			assert.Equal(t, int64(42), ev.ChatID)
			assert.Equal(t, int64(7), ev.UserID)
			assert.Equal(t, 100, ev.MessageID)
			assert.True(t, ev.IsPrivate())
		})
	}
}

func TestUnknownCommandKeepsItsName(t *testing.T) {

	// When:
	ev, ok := EventFromUpdate(tgbotapi.Update{Message: commandMessage("/forecast@WeatherNowBot tomorrow")})

	// Then:
	assert.True(t, ok)
	assert.Equal(t, "forecast", ev.Text)
}

func TestTextUpdate(t *testing.T) {

	// Given:
	message := plainMessage("group")
	message.Text = "London"

	// When:
	ev, ok := EventFromUpdate(tgbotapi.Update{Message: message})

	// Then:
	assert.True(t, ok)
	assert.Equal(t, structs.EventText, ev.Kind)
	assert.Equal(t, "London", ev.Text)
	assert.False(t, ev.IsPrivate())
}

func TestLocationUpdate(t *testing.T) {

	// Given:
	message := plainMessage("private")
	message.Location = &tgbotapi.Location{Latitude: 51.5, Longitude: -0.12}

	// When:
	ev, ok := EventFromUpdate(tgbotapi.Update{Message: message})

	// Then:
	assert.True(t, ok)
	assert.Equal(t, structs.EventLocation, ev.Kind)
	assert.Equal(t, 51.5, ev.Latitude)
	assert.Equal(t, -0.12, ev.Longitude)
}

func TestIgnoredUpdates(t *testing.T) {

	sticker := plainMessage("private")
	sticker.Sticker = &tgbotapi.Sticker{FileID: "abc"}

	var dataSet = []struct {
		name   string
		update tgbotapi.Update
	}{
		{"empty update", tgbotapi.Update{}},
		{"sticker", tgbotapi.Update{Message: sticker}},
		{"unknown button", tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{ID: "1", From: &tgbotapi.User{ID: 7}, Data: "delete-all"}}},
		{"inline query", tgbotapi.Update{InlineQuery: &tgbotapi.InlineQuery{ID: "1", Query: "Lon"}}},
	}

	for _, tt := range dataSet {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := EventFromUpdate(tt.update)
			assert.False(t, ok)
		})
	}
}

func TestToggleCallbackUpdate(t *testing.T) {

	// Given:
	update := tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb-1",
		From:    &tgbotapi.User{ID: 7},
		Message: plainMessage("private"),
		Data:    ToggleTempUnitAction,
	}}

	// When:
	ev, ok := EventFromUpdate(update)

	// Then:
	assert.True(t, ok)
	assert.Equal(t, structs.EventToggle, ev.Kind)
	assert.Equal(t, "cb-1", ev.CallbackID)
	assert.Equal(t, int64(7), ev.UserID)
	assert.Equal(t, int64(42), ev.ChatID)
	assert.Equal(t, 100, ev.MessageID)
}

func plainMessage(chatType string) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 100,
		From:      &tgbotapi.User{ID: 7, UserName: "john"},
		Chat:      &tgbotapi.Chat{ID: 42, Type: chatType},
	}
}

func commandMessage(text string) *tgbotapi.Message {
	message := plainMessage("private")
	message.Text = text
	message.Entities = &[]tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(text)}}
	return message
}
