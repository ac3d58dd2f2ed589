package terminal

// EventType identifies the kind of terminal event
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventClosed // terminal closed or event stream ended
	EventError
)

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)
	KeyEscape
	KeyEnter
	KeyCtrlC
)

// Event is a single input, resize, or lifecycle notification
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune
	Width  int // valid for EventResize
	Height int // valid for EventResize
}
