package engine

import (
	"log/slog"
	"math/rand/v2"
	"time"
)

const (
	SpawnX = 3
	SpawnY = 0

	// PointsPerLine is awarded for every cleared row, with no bonus for
	// clearing several at once.
	PointsPerLine = 100
)

// State is the engine's lifecycle state.
type State int

const (
	Running State = iota
	Over
)

func (s State) String() string {
	if s == Over {
		return "game-over"
	}
	return "running"
}

// Game holds the board, the active piece and the score. It is not safe for
// concurrent use; input and timer events must be serialized by the caller.
type Game struct {
	board     Board
	piece     Piece
	score     int
	lines     int
	over      bool
	rng       *rand.Rand
	listeners []Listener
	logger    *slog.Logger
}

// Option configures a Game in NewGame.
type Option func(*Game)

// WithSeed makes piece selection deterministic.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithBoard starts the game on a prefilled board.
func WithBoard(board Board) Option {
	return func(g *Game) {
		g.board = board
	}
}

func WithListener(l Listener) Option {
	return func(g *Game) {
		if l != nil {
			g.listeners = append(g.listeners, l)
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGame returns a running game with its first piece already spawned.
func NewGame(opts ...Option) *Game {
	g := &Game{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		seed := uint64(time.Now().UnixNano())
		g.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	g.Spawn()
	return g
}

// Spawn replaces the active piece with a random kind at the spawn anchor.
// It does not check whether the new piece fits.
func (g *Game) Spawn() {
	kind := Kind(g.rng.IntN(kindCount)) + I
	g.piece = Piece{Kind: kind, X: SpawnX, Y: SpawnY}
}

// IsValid reports whether shape, placed with its top-left corner at (x, y),
// stays on the board without covering a filled cell.
func (g *Game) IsValid(shape Shape, x, y int) bool {
	for _, cell := range place(shape, x, y) {
		if !In(cell) || g.board.Occupied(cell.X, cell.Y) {
			return false
		}
	}
	return true
}

// Move shifts the active piece by (dx, dy). A blocked downward move locks
// the piece; any other blocked move is ignored.
func (g *Game) Move(dx, dy int) {
	if g.over {
		return
	}
	x, y := g.piece.X+dx, g.piece.Y+dy
	if g.IsValid(g.piece.Shape(), x, y) {
		g.piece.X = x
		g.piece.Y = y
		g.emit(Event{Kind: EventMove})
		return
	}
	if dy == 1 {
		g.Lock()
	}
}

// Rotate advances the active piece to its next rotation state if that
// state fits where the piece is. There is no wall kick.
func (g *Game) Rotate() {
	if g.over {
		return
	}
	next := (g.piece.Rotation + 1) % RotationCount(g.piece.Kind)
	if !g.IsValid(ShapeOf(g.piece.Kind, next), g.piece.X, g.piece.Y) {
		return
	}
	g.piece.Rotation = next
	g.emit(Event{Kind: EventRotate})
}

// Tick applies one step of gravity.
func (g *Game) Tick() {
	g.Move(0, 1)
}

// Lock writes the active piece into the board, clears full rows, scores
// them and spawns the next piece. If that piece does not fit, the game is
// over.
func (g *Game) Lock() {
	if g.over {
		return
	}
	g.board.stamp(g.piece)
	cleared := g.board.clearLines()
	g.logger.Debug("piece locked", "kind", g.piece.Kind, "x", g.piece.X, "y", g.piece.Y, "cleared", cleared)
	if cleared > 0 {
		g.score += PointsPerLine * cleared
		g.lines += cleared
		g.emit(Event{Kind: EventLineClear, Lines: cleared})
	}
	g.Spawn()
	if !g.IsValid(g.piece.Shape(), g.piece.X, g.piece.Y) {
		g.over = true
		g.logger.Debug("game over", "score", g.score, "lines", g.lines)
		g.emit(Event{Kind: EventGameOver})
	}
}

func (g *Game) emit(ev Event) {
	for _, l := range g.listeners {
		l(ev)
	}
}

func (g *Game) Board() Board {
	return g.board
}

func (g *Game) Piece() Piece {
	return g.piece
}

func (g *Game) Score() int {
	return g.score
}

// Lines returns the total number of rows cleared so far.
func (g *Game) Lines() int {
	return g.lines
}

func (g *Game) GameOver() bool {
	return g.over
}

func (g *Game) State() State {
	if g.over {
		return Over
	}
	return Running
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Board    Board
	Grid     Board
	Piece    Piece
	Cells    []Point
	Score    int
	Lines    int
	GameOver bool
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:    g.board,
		Grid:     Overlay(g.board, g.piece),
		Piece:    g.piece,
		Cells:    g.piece.Cells(),
		Score:    g.score,
		Lines:    g.lines,
		GameOver: g.over,
	}
}
