package tetris

import "time"

// Snapshot is a read-only copy of a session for renderers and tooling.
type Snapshot struct {
	State        State
	Score        int
	Level        int
	Lines        int
	Combo        int
	CanHold      bool
	Paused       bool
	GameOver     bool
	NewHighScore bool
	FallInterval time.Duration

	Current *View
	Next    *View
	Held    *View
	GhostY  int

	Grid [][]Cell
}

// Snapshot copies the current session state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		State:        g.state,
		Score:        g.score,
		Level:        g.level,
		Lines:        g.lines,
		Combo:        g.combo,
		CanHold:      g.canHold,
		Paused:       g.IsPaused(),
		GameOver:     g.IsGameOver(),
		NewHighScore: g.newHighScore,
		FallInterval: g.fallInterval,
		Grid:         g.board.Cells(),
	}

	if v, ok := g.Current(); ok {
		snap.Current = &v
		snap.GhostY = g.current.GhostY(g.board)
	}
	if v, ok := g.Next(); ok {
		snap.Next = &v
	}
	if v, ok := g.Held(); ok {
		snap.Held = &v
	}
	return snap
}
