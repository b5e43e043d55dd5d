package engine

import (
	"context"

	"github.com/tm-ahad/sigma0/pkg/board"
)

// Oracle looks up a move for a position without running search, e.g. from an opening book, an
// endgame tablebase, or a store of previously-played games. ok=false with a nil error means
// the oracle has nothing to say about this position; the engine falls through to search.
type Oracle interface {
	Move(ctx context.Context, p *board.Position, legalMoves []board.Move) (board.Move, bool, error)
}
