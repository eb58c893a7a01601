package gfx

// EventType classifies a backend event.
type EventType uint8

const (
	EventOther EventType = iota
	EventQuit
	EventKeyDown
	EventKeyUp
	EventWindowResized
)

func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "quit"
	case EventKeyDown:
		return "key_down"
	case EventKeyUp:
		return "key_up"
	case EventWindowResized:
		return "window_resized"
	default:
		return "other"
	}
}

// Key is a backend-independent key identifier.
type Key uint16

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyA
	KeyD
	KeySpace
	KeyEnter
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyA:
		return "A"
	case KeyD:
		return "D"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	default:
		return "Unknown"
	}
}

// Event is a translated backend event. Width and Height carry the new size of
// an EventWindowResized. Raw keeps the backend's own event value for handlers
// that need more.
type Event struct {
	Type   EventType
	Key    Key
	Repeat bool
	Width  int
	Height int
	Raw    any
}

// QuitEvent builds a quit event.
func QuitEvent() Event {
	return Event{Type: EventQuit}
}

// KeyDownEvent builds a key press event.
func KeyDownEvent(k Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

// ResizeEvent builds a window resize event.
func ResizeEvent(width, height int) Event {
	return Event{Type: EventWindowResized, Width: width, Height: height}
}
