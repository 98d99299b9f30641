package structs

// EventKind tags an inbound chat event
type EventKind int

const (
	EventStart EventKind = iota + 1
	EventHelp
	EventSettings
	EventUnknownCommand
	EventText
	EventLocation
	EventToggle
)

var eventKindNames = map[EventKind]string{
	EventStart:          "start",
	EventHelp:           "help",
	EventSettings:       "settings",
	EventUnknownCommand: "unknown-command",
	EventText:           "text",
	EventLocation:       "location",
	EventToggle:         "toggle",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is one inbound update, already stripped from the transport details
type Event struct {
	Kind      EventKind
	ChatID    int64
	ChatType  string
	UserID    int64
	MessageID int

	// Text is the message text for EventText and the command name for EventUnknownCommand
	Text      string
	Latitude  float64
	Longitude float64

	// set for EventToggle only
	CallbackID string
}

// IsPrivate says whether the event comes from a one-to-one chat between the bot and a user
func (e Event) IsPrivate() bool {
	return e.ChatType == "private"
}
