package search

import (
	"sort"

	"github.com/tm-ahad/sigma0/pkg/board"
	"github.com/tm-ahad/sigma0/pkg/eval"
)

// orderMoves sorts moves by the static evaluation of the position each one leads to: best
// first for the maximizing side, worst first (i.e. best for the opponent) for the minimizing
// side. This is a plain one-ply lookahead ordering, not a move-ordering heuristic like
// killer moves or history tables -- it costs one Evaluate per candidate move, which is cheap
// relative to the subtree it is meant to prune. Ties keep their original (pseudo-legal
// generation) order, since sort.SliceStable is used.
func orderMoves(p *board.Position, moves []board.Move, plies int, maximizing bool) []board.Move {
	if len(moves) < 2 {
		return moves
	}

	type scored struct {
		m board.Move
		s eval.Score
	}
	ordered := make([]scored, len(moves))
	for i, m := range moves {
		child, err := p.Apply(m)
		if err != nil {
			ordered[i] = scored{m: m}
			continue
		}
		ordered[i] = scored{m: m, s: eval.Evaluate(&child, child.LegalMoves(), plies+1, false)}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if maximizing {
			return ordered[i].s > ordered[j].s
		}
		return ordered[i].s < ordered[j].s
	})

	out := make([]board.Move, len(ordered))
	for i, sc := range ordered {
		out[i] = sc.m
	}
	return out
}
