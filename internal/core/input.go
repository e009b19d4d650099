package core

// EventKind identifies the source of a discrete input event.
type EventKind int

const (
	EventNone      EventKind = iota
	EventKeyDown             // A key was pressed this frame
	EventMouseDown           // A mouse button was pressed this frame
	EventTouchDown           // A finger touched the screen this frame
	EventQuit                // Window close / session hang-up
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventKeyDown:
		return "KeyDown"
	case EventMouseDown:
		return "MouseDown"
	case EventTouchDown:
		return "TouchDown"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Key is a host-independent key code. Hosts translate their native key
// events into these; keys the game never looks at map to KeyOther.
type Key int

const (
	KeyOther Key = iota
	KeySpace
	KeyUp
	KeyEscape
	KeyEnter
)

// MouseButton identifies a mouse button for EventMouseDown.
type MouseButton int

const (
	MousePrimary MouseButton = iota
	MouseSecondary
	MouseMiddle
)

// Event is a single discrete input event.
type Event struct {
	Kind   EventKind
	Key    Key         // Set for EventKeyDown
	Button MouseButton // Set for EventMouseDown
}

// KeyDown builds a key press event.
func KeyDown(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// MouseDown builds a mouse press event.
func MouseDown(b MouseButton) Event {
	return Event{Kind: EventMouseDown, Button: b}
}

// TouchDown builds a touch event.
func TouchDown() Event {
	return Event{Kind: EventTouchDown}
}

// Quit builds a quit event.
func Quit() Event {
	return Event{Kind: EventQuit}
}

// IsTap reports whether the event is the primary action used by every phase:
// space, up arrow, primary mouse click or a touch.
func IsTap(ev Event) bool {
	switch ev.Kind {
	case EventKeyDown:
		return ev.Key == KeySpace || ev.Key == KeyUp
	case EventMouseDown:
		return ev.Button == MousePrimary
	case EventTouchDown:
		return true
	}
	return false
}

// IsQuit reports whether the event asks to terminate the game.
func IsQuit(ev Event) bool {
	return ev.Kind == EventQuit || (ev.Kind == EventKeyDown && ev.Key == KeyEscape)
}

// EventQueue collects events between two simulation ticks.
// Hosts push as events arrive and drain once per frame.
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 8)}
}

// Push appends an event.
func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns the pending events in arrival order and empties the queue.
// The returned slice is owned by the caller.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
