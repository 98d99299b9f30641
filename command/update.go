package command

import (
	"strings"

	tgbotapi "gopkg.in/telegram-bot-api.v4"

	"github.com/w32blaster/bot-current-weather/structs"
)

// EventFromUpdate converts a Telegram update to an event. The second value is false for
// updates the bot doesn't react to: stickers, photos, inline queries, unknown buttons etc.
func EventFromUpdate(update tgbotapi.Update) (structs.Event, bool) {
	if update.Message != nil {
		return eventFromMessage(update.Message)
	}

	if update.CallbackQuery != nil {
		return eventFromCallback(update.CallbackQuery)
	}

	return structs.Event{}, false
}

func eventFromMessage(message *tgbotapi.Message) (structs.Event, bool) {
	ev := structs.Event{
		MessageID: message.MessageID,
	}
	if message.Chat != nil {
		ev.ChatID = message.Chat.ID
		ev.ChatType = message.Chat.Type
	}
	if message.From != nil {
		ev.UserID = int64(message.From.ID)
	}

	switch {
	case message.IsCommand():
		command := extractCommand(message.Text)
		switch command {
		case "start":
			ev.Kind = structs.EventStart
		case "help":
			ev.Kind = structs.EventHelp
		case "settings":
			ev.Kind = structs.EventSettings
		default:
			ev.Kind = structs.EventUnknownCommand
			ev.Text = command
		}

	case message.Location != nil:
		ev.Kind = structs.EventLocation
		ev.Latitude = message.Location.Latitude
		ev.Longitude = message.Location.Longitude

	case strings.TrimSpace(message.Text) != "":
		ev.Kind = structs.EventText
		ev.Text = message.Text

	default:
		return structs.Event{}, false
	}

	return ev, true
}

func eventFromCallback(query *tgbotapi.CallbackQuery) (structs.Event, bool) {
	if query.Data != ToggleTempUnitAction || query.From == nil {
		return structs.Event{}, false
	}

	ev := structs.Event{
		Kind:       structs.EventToggle,
		UserID:     int64(query.From.ID),
		CallbackID: query.ID,
	}
	if query.Message != nil {
		ev.MessageID = query.Message.MessageID
		if query.Message.Chat != nil {
			ev.ChatID = query.Message.Chat.ID
			ev.ChatType = query.Message.Chat.Type
		}
	}
	return ev, true
}

// properly extracts command from the input string, removing all unnecessary parts
// please refer to unit tests for details
func extractCommand(rawCommand string) string {

	command := strings.TrimSpace(rawCommand)

	// remove slash if necessary
	command = strings.TrimPrefix(command, "/")

	// if command contains the name of our bot, remove it
	command = strings.Split(command, " ")[0]
	command = strings.Split(command, "@")[0]

	return strings.ToLower(command)
}
