package engine

// EventKind names something the presentation layer may want to react to.
type EventKind int

const (
	EventMove EventKind = iota
	EventRotate
	EventLineClear
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "move"
	case EventRotate:
		return "rotate"
	case EventLineClear:
		return "line-clear"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event is delivered synchronously from the operation that caused it.
// Lines is set only for EventLineClear.
type Event struct {
	Kind  EventKind
	Lines int
}

// Listener receives engine events. It runs on the caller's goroutine, in
// the middle of the operation, and must not call back into the engine.
type Listener func(Event)
