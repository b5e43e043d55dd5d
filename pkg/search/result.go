// Package search implements alpha-beta game tree search over the board package, guided by
// static evaluation from the eval package.
package search

import (
	"github.com/tm-ahad/sigma0/pkg/board"
	"github.com/tm-ahad/sigma0/pkg/eval"
)

// Result is the outcome of a search at a position: the best move found, if any, and its score.
// A zero Move with a finite Score means the position had no legal moves to search from the
// caller's perspective -- e.g. leaf evaluation -- rather than a bug.
type Result struct {
	Move  board.Move
	Score eval.Score
	Found bool
}
