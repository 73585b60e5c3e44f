package tetris

import (
	"context"
	"log"
	"time"

	"github.com/plus3/blockfall/engine"
)

// State is the controller's position in the session lifecycle.
type State uint8

const (
	StateSpawning State = iota
	StateFalling
	StatePaused
	StateLocking
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateSpawning:
		return "spawning"
	case StateFalling:
		return "falling"
	case StatePaused:
		return "paused"
	case StateLocking:
		return "locking"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// ScoreRecorder is the part of the high-score store the controller needs.
type ScoreRecorder interface {
	IsHighScore(score int) bool
	SaveScore(score, level, lines int, name string) error
}

// wallKicks are tried in order when a rotation does not fit in place.
var wallKicks = [...][2]int{{1, 0}, {-1, 0}, {0, -1}}

// DefaultPlayerName is recorded with high scores when no name is configured.
const DefaultPlayerName = "Player"

// Game is the per-session controller. It owns the board, the current, next
// and held pieces and all scoring state. It is not safe for concurrent use.
type Game struct {
	board      *Board
	randomizer Randomizer
	scores     ScoreRecorder
	playerName string

	current *Piece
	next    *Piece
	held    *Piece

	state        State
	score        int
	level        int
	lines        int
	combo        int
	canHold      bool
	newHighScore bool
	fallInterval time.Duration
	fallTimer    time.Duration

	intents    IntentSet
	tick       IntentSet
	tickHalted bool
	events     []Event
	listeners  []Listener
	stats      *Stats

	scheduler *engine.Scheduler[Game]
}

// Option configures a Game.
type Option func(*Game)

// WithRandomizer sets the piece source.
func WithRandomizer(r Randomizer) Option {
	return func(g *Game) {
		g.randomizer = r
	}
}

// WithScoreRecorder sets where final scores are recorded on game over.
func WithScoreRecorder(scores ScoreRecorder) Option {
	return func(g *Game) {
		g.scores = scores
	}
}

// WithPlayerName sets the name stored with high scores.
func WithPlayerName(name string) Option {
	return func(g *Game) {
		if name != "" {
			g.playerName = name
		}
	}
}

// WithListener subscribes l to session events.
func WithListener(l Listener) Option {
	return func(g *Game) {
		g.Subscribe(l)
	}
}

// NewGame creates a session and spawns its first piece.
func NewGame(options ...Option) *Game {
	g := &Game{
		board:      NewBoard(),
		playerName: DefaultPlayerName,
		stats:      NewStats(),
	}
	for _, opt := range options {
		opt(g)
	}
	if g.randomizer == nil {
		g.randomizer = NewUniformRandomizer(uint64(time.Now().UnixNano()))
	}

	g.scheduler = engine.NewScheduler(g)
	g.scheduler.Register(&InputSystem{})
	g.scheduler.Register(&RestartSystem{})
	g.scheduler.Register(&PauseSystem{})
	g.scheduler.Register(&HoldSystem{})
	g.scheduler.Register(&MoveSystem{})
	g.scheduler.Register(&RotateSystem{})
	g.scheduler.Register(&HardDropSystem{})
	g.scheduler.Register(&GravitySystem{})
	g.scheduler.Register(&EventSystem{})

	g.resetSession()
	g.spawn()
	return g
}

// Register appends a host system that runs after the built-in systems every tick.
func (g *Game) Register(system engine.System[Game]) {
	g.scheduler.Register(system)
}

// Scheduler exposes the tick scheduler, mainly for its timing statistics.
func (g *Game) Scheduler() *engine.Scheduler[Game] {
	return g.scheduler
}

// Subscribe adds a listener for session events.
func (g *Game) Subscribe(l Listener) {
	if l != nil {
		g.listeners = append(g.listeners, l)
	}
}

// Submit queues intents for the next Update.
func (g *Game) Submit(intents ...Intent) {
	for _, intent := range intents {
		g.intents.Add(intent)
	}
}

// Pending returns the intents queued for the next Update.
func (g *Game) Pending() IntentSet {
	return g.intents
}

// Update advances the simulation by dt seconds, applying the pending intents.
func (g *Game) Update(dt float64) {
	g.scheduler.Once(dt)
}

// Run ticks the session every interval until ctx is cancelled.
func (g *Game) Run(ctx context.Context, interval time.Duration) {
	g.scheduler.Run(ctx, interval)
}

func (g *Game) resetSession() {
	g.board.Reset()
	g.current = nil
	g.next = nil
	g.held = nil
	g.state = StateSpawning
	g.score = 0
	g.level = 1
	g.lines = 0
	g.combo = 0
	g.canHold = true
	g.newHighScore = false
	g.fallInterval = InitialFallInterval
	g.fallTimer = 0
	g.stats.Reset()
}

// active reports whether gameplay intents may change the session.
func (g *Game) active() bool {
	return g.current != nil && g.state == StateFalling
}

func (g *Game) emit(ev Event) {
	ev.Score = g.score
	ev.Level = g.level
	ev.Lines = g.lines
	ev.Combo = g.combo
	g.events = append(g.events, ev)
}

func (g *Game) spawn() {
	g.state = StateSpawning

	if g.next != nil {
		g.current = g.next
	} else {
		g.current = NewPiece(g.randomizer.Next())
	}
	g.next = NewPiece(g.randomizer.Next())
	g.stats.recordSpawn(g.current.Type())

	if !g.current.Fits(g.board) {
		g.gameOver()
		return
	}
	g.state = StateFalling
}

func (g *Game) tryMove(dx, dy int) bool {
	g.current.Move(dx, dy)
	if g.current.Fits(g.board) {
		return true
	}
	g.current.UndoMove(dx, dy)
	return false
}

// MoveLeft shifts the current piece one column left if it fits.
func (g *Game) MoveLeft() bool {
	if !g.active() {
		return false
	}
	return g.tryMove(-1, 0)
}

// MoveRight shifts the current piece one column right if it fits.
func (g *Game) MoveRight() bool {
	if !g.active() {
		return false
	}
	return g.tryMove(1, 0)
}

// SoftDrop moves the current piece one row down and awards SoftDropPoints.
// When the piece cannot move down it is locked instead and SoftDrop returns false.
func (g *Game) SoftDrop() bool {
	if !g.active() {
		return false
	}
	if g.tryMove(0, 1) {
		g.score += SoftDropPoints
		return true
	}
	g.lock()
	return false
}

// fall is one gravity step: like SoftDrop but without points.
func (g *Game) fall() {
	if !g.tryMove(0, 1) {
		g.lock()
	}
}

// Rotate turns the current piece clockwise, trying the wall kicks in order
// when the rotated piece does not fit in place. A rotation that cannot be
// placed leaves the piece unchanged.
func (g *Game) Rotate() bool {
	if !g.active() {
		return false
	}

	p := g.current
	p.Rotate(true)
	if p.Fits(g.board) {
		return true
	}

	for _, kick := range wallKicks {
		p.Move(kick[0], kick[1])
		if p.Fits(g.board) {
			return true
		}
		p.UndoMove(kick[0], kick[1])
	}

	p.UndoRotate(true)
	return false
}

// HardDrop drops the current piece to its ghost row, awards HardDropPoints
// per row and locks it. It returns the distance travelled.
func (g *Game) HardDrop() int {
	if !g.active() {
		return 0
	}

	distance := g.current.GhostY(g.board) - g.current.Y()
	g.score += distance * HardDropPoints
	g.current.Move(0, distance)
	g.lock()
	return distance
}

func (g *Game) lock() {
	g.state = StateLocking
	p := g.current

	g.board.Lock(p.shape(), p.X(), p.Y(), p.Color())
	g.tickHalted = true
	g.emit(Event{Kind: EventPieceLocked, Piece: p.Type()})

	cleared := g.board.ClearLines()
	if cleared > 0 {
		g.lines += cleared
		g.combo++
		points := LineClearScore(cleared, g.level, g.combo)
		g.score += points
		g.emit(Event{Kind: EventLinesCleared, Piece: p.Type(), Cleared: cleared, Points: points})
		g.checkLevelUp()
	} else {
		g.combo = 0
	}
	g.stats.recordLock(cleared, g.combo)

	g.canHold = true
	g.fallTimer = 0
	g.spawn()
}

func (g *Game) checkLevelUp() {
	level := LevelForLines(g.lines)
	if level > g.level {
		g.level = level
		g.fallInterval = FallInterval(level)
		g.emit(Event{Kind: EventLevelUp})
	}
}

// Hold stashes the current piece type. With an empty hold slot the next piece
// comes into play; otherwise the held type returns as a fresh piece at the
// spawn position. Holding is allowed once per locked piece.
func (g *Game) Hold() bool {
	if !g.canHold || !g.active() {
		return false
	}

	currentType := g.current.Type()
	g.canHold = false
	g.emit(Event{Kind: EventPieceHeld, Piece: currentType})

	if g.held != nil {
		heldType := g.held.Type()
		g.held = NewPiece(currentType)
		g.current = NewPiece(heldType)
		g.stats.recordSpawn(heldType)
		if !g.current.Fits(g.board) {
			g.gameOver()
		}
	} else {
		g.held = NewPiece(currentType)
		g.spawn()
	}
	return true
}

// TogglePause pauses or resumes the session. It has no effect after game over.
func (g *Game) TogglePause() bool {
	switch g.state {
	case StatePaused:
		g.state = StateFalling
		g.emit(Event{Kind: EventResumed})
	case StateFalling:
		g.state = StatePaused
		g.emit(Event{Kind: EventPaused})
	default:
		return false
	}
	return true
}

// Restart throws the session away and starts a new one.
func (g *Game) Restart() {
	g.resetSession()
	g.emit(Event{Kind: EventRestarted})
	g.spawn()
}

func (g *Game) gameOver() {
	g.state = StateGameOver

	if g.scores != nil {
		g.newHighScore = g.scores.IsHighScore(g.score)
		if g.score > 0 {
			if err := g.scores.SaveScore(g.score, g.level, g.lines, g.playerName); err != nil {
				log.Printf("tetris: recording final score %d: %v", g.score, err)
			}
		}
	}

	g.emit(Event{Kind: EventGameOver, NewHighScore: g.newHighScore})
}

// Board returns the playing field. Callers must treat it as read-only.
func (g *Game) Board() *Board { return g.board }

// Current returns the falling piece, if any.
func (g *Game) Current() (View, bool) { return pieceView(g.current) }

// Next returns the queued piece, if any.
func (g *Game) Next() (View, bool) { return pieceView(g.next) }

// Held returns the piece in the hold slot, if any.
func (g *Game) Held() (View, bool) { return pieceView(g.held) }

func pieceView(p *Piece) (View, bool) {
	if p == nil {
		return View{}, false
	}
	return p.View(), true
}

// GhostY returns the row the current piece would land on, or false without a piece.
func (g *Game) GhostY() (int, bool) {
	if g.current == nil {
		return 0, false
	}
	return g.current.GhostY(g.board), true
}

func (g *Game) State() State                { return g.state }
func (g *Game) Score() int                  { return g.score }
func (g *Game) Level() int                  { return g.level }
func (g *Game) Lines() int                  { return g.lines }
func (g *Game) Combo() int                  { return g.combo }
func (g *Game) CanHold() bool               { return g.canHold }
func (g *Game) IsPaused() bool              { return g.state == StatePaused }
func (g *Game) IsGameOver() bool            { return g.state == StateGameOver }
func (g *Game) FallInterval() time.Duration { return g.fallInterval }
func (g *Game) Stats() *Stats               { return g.stats }
func (g *Game) PlayerName() string          { return g.playerName }

// IsNewHighScore reports whether the finished session made the top ten.
func (g *Game) IsNewHighScore() bool { return g.newHighScore }
