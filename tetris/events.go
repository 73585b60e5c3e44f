package tetris

// EventKind identifies what happened during a tick.
type EventKind uint8

const (
	EventPieceLocked EventKind = iota
	EventLinesCleared
	EventLevelUp
	EventPieceHeld
	EventPaused
	EventResumed
	EventGameOver
	EventRestarted
)

func (k EventKind) String() string {
	switch k {
	case EventPieceLocked:
		return "piece-locked"
	case EventLinesCleared:
		return "lines-cleared"
	case EventLevelUp:
		return "level-up"
	case EventPieceHeld:
		return "piece-held"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventGameOver:
		return "game-over"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event describes a state change. Fields that do not apply to Kind are zero.
type Event struct {
	Kind  EventKind
	Piece PieceType

	// Cleared and Points are set for EventLinesCleared.
	Cleared int
	Points  int

	Score int
	Level int
	Lines int
	Combo int

	// NewHighScore is set for EventGameOver.
	NewHighScore bool
}

// Listener receives events after the tick that produced them.
type Listener func(Event)
