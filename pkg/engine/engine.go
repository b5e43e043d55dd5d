package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/tm-ahad/sigma0/pkg/board"
	"github.com/tm-ahad/sigma0/pkg/board/fen"
	"github.com/tm-ahad/sigma0/pkg/eval"
	"github.com/tm-ahad/sigma0/pkg/search"
)

var version = build.NewVersion(0, 1, 0)

// Options are engine-wide, user-settable parameters, mirroring the UCI option set.
type Options struct {
	// HashMB is the transposition table budget in megabytes. The table itself carries no
	// size accounting, so this currently only gates whether a table is used at all.
	HashMB uint
	// Threads is accepted for UCI compatibility; search in this engine is single-threaded.
	Threads uint
	// MoveOverheadMS is stored and reported for UCI compatibility; search depth does not depend
	// on a clock, so the value has no effect on move selection.
	MoveOverheadMS uint
}

func (o Options) String() string {
	return fmt.Sprintf("{hash=%vMB, threads=%v, overhead=%vms}", o.HashMB, o.Threads, o.MoveOverheadMS)
}

// Engine selects moves for the current position: first by consulting its oracles (endgame
// tablebase, opening book, move database), then by falling through to a fresh alpha-beta
// search. It is the single entry point the UCI driver talks to.
type Engine struct {
	name, author string
	opts         Options

	tablebase Oracle
	book      Oracle
	movedb    *MoveDatabase

	mu       sync.Mutex
	pos      *board.Position
	plies    int
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithOptions sets the initial runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) { e.opts = opts }
}

// WithTablebase overrides the default endgame tablebase oracle.
func WithTablebase(o Oracle) Option {
	return func(e *Engine) { e.tablebase = o }
}

// WithBook overrides the default opening book oracle.
func WithBook(o Oracle) Option {
	return func(e *Engine) { e.book = o }
}

// WithMoveDatabase attaches a persistent move database.
func WithMoveDatabase(db *MoveDatabase) Option {
	return func(e *Engine) { e.movedb = db }
}

// New creates an Engine at the initial position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:      name,
		author:    author,
		opts:      Options{HashMB: 64, Threads: 1, MoveOverheadMS: 2000},
		tablebase: NewEndgameTablebase(),
		book:      NewOpeningBook(),
	}
	for _, fn := range opts {
		fn(e)
	}
	_ = e.Reset(ctx, fen.Initial)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the engine author.
func (e *Engine) Author() string {
	return e.author
}

func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opts
}

func (e *Engine) SetHash(mb uint) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opts.HashMB = mb
}

func (e *Engine) SetThreads(n uint) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opts.Threads = n
}

func (e *Engine) SetMoveOverhead(ms uint) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opts.MoveOverheadMS = ms
}

// Position returns the current position in FEN.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pos.ToFEN()
}

// Reset resets the engine to the given FEN position.
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos, err := board.ParseFEN(position)
	if err != nil {
		return err
	}
	e.pos = pos
	e.plies = 2 * (pos.FullmoveNumber() - 1)
	if pos.Turn() == board.Black {
		e.plies++
	}

	logw.Infof(ctx, "Reset: %v", e.pos)
	return nil
}

// Move applies an opponent (or own) move, given in long algebraic form, to the current
// position. If a move database is attached, the move is recorded in the background.
func (e *Engine) Move(ctx context.Context, uci string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	candidate, err := board.ParseMove(uci)
	if err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	var applied board.Move
	found := false
	for _, m := range e.pos.LegalMoves() {
		if m.Equals(candidate) {
			applied = m
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("illegal move: %v", candidate)
	}

	next, err := e.pos.Apply(applied)
	if err != nil {
		return fmt.Errorf("illegal move: %w", err)
	}

	if e.movedb != nil {
		prior := e.pos
		go e.movedb.Record(context.Background(), prior, applied)
	}

	e.pos = &next
	e.plies++

	logw.Infof(ctx, "Move %v: %v", applied, e.pos)
	return nil
}

// ErrNoMove is returned by BestMove when it has no move to offer: the current position has no
// legal move (the game has already ended), every legal move is excluded from search as a bad
// king move, or the search was cancelled before it examined a move.
var ErrNoMove = fmt.Errorf("no legal move available")

// BestMove selects a move for the current position: an oracle hit if one applies, otherwise
// a fresh alpha-beta search to a depth chosen from the position's phase.
func (e *Engine) BestMove(ctx context.Context) (board.Move, eval.Score, error) {
	e.mu.Lock()
	pos := e.pos
	plies := e.plies
	hashMB := e.opts.HashMB
	e.mu.Unlock()

	legalMoves := pos.LegalMoves()
	if len(legalMoves) == 0 {
		return board.Move{}, 0, ErrNoMove
	}

	pieces := pos.PieceCount()

	if pieces <= eval.MaxPieceForEndgame {
		if m, ok, err := e.tablebase.Move(ctx, pos, legalMoves); err == nil && ok {
			logw.Infof(ctx, "Tablebase hit: %v", m)
			return m, 0, nil
		}
	}

	if plies <= eval.OpeningForDiffEval {
		if m, ok, err := e.book.Move(ctx, pos, legalMoves); err == nil && ok {
			logw.Infof(ctx, "Book hit: %v", m)
			return m, 0, nil
		}
		if e.movedb != nil {
			if m, ok, err := e.movedb.Move(ctx, pos, legalMoves); err == nil && ok {
				logw.Infof(ctx, "Move database hit: %v", m)
				return m, 0, nil
			}
		}
	}

	depth := searchDepth(pieces, plies)
	maximizing := pos.Turn() == board.White

	var tt search.TranspositionTable = search.NoTable{}
	if hashMB > 0 {
		tt = search.NewTable()
	}
	result := search.AlphaBeta{TT: tt}.Search(ctx, pos, legalMoves, depth, plies, maximizing)
	if !result.Found {
		return board.Move{}, 0, ErrNoMove
	}

	logw.Infof(ctx, "Search depth=%v plies=%v move=%v score=%v", depth, plies, result.Move, result.Score)
	return result.Move, result.Score, nil
}

// searchDepth picks the nominal search depth for the given phase: deeper once the position
// has thinned out into the endgame, shallower in the crowded opening, SearchDepth otherwise.
func searchDepth(pieces, plies int) int {
	switch {
	case pieces <= eval.EndgamePieceForGreaterDepth:
		return eval.EndgameSearchDepth
	case plies <= eval.OpeningForPieceSafety:
		return eval.OpeningSearchDepth
	default:
		return eval.SearchDepth
	}
}
