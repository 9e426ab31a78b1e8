package domain

// Event is an optional tag independent of department and subcategory.
type Event string

const (
	EventNone      Event = ""
	EventCouple    Event = "couple"
	EventChristmas Event = "christmas"
	EventCompany   Event = "company"
)

var EventKeys = []Event{EventCouple, EventChristmas, EventCompany}

func (e Event) String() string {
	return string(e)
}

// Valid reports whether e is empty or one of the known event tags.
func (e Event) Valid() bool {
	switch e {
	case EventNone, EventCouple, EventChristmas, EventCompany:
		return true
	default:
		return false
	}
}

// IsEventKey reports whether key names a known (non-empty) event tag.
func IsEventKey(key string) bool {
	e := Event(key)
	return e != EventNone && e.Valid()
}
