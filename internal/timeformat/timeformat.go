package timeformat

import "time"

// The API accepts two datetime layouts, inherited from the upstream service:
// event creation takes the HTML datetime-local shape, every other date field
// takes the space-separated shape. The asymmetry is deliberate compatibility.
const (
	// EventCreateLayout is accepted only by POST /events.
	EventCreateLayout = "2006-01-02T15:04"
	// DateTimeLayout is accepted by every other date-valued field.
	DateTimeLayout = "2006-01-02 15:04:05"
)

// ParseEventCreate parses the event-creation datetime format.
func ParseEventCreate(value string) (time.Time, error) {
	return time.Parse(EventCreateLayout, value)
}

// ParseDateTime parses the standard datetime format.
func ParseDateTime(value string) (time.Time, error) {
	return time.Parse(DateTimeLayout, value)
}
