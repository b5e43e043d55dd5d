package search

import (
	"context"

	"github.com/tm-ahad/sigma0/pkg/board"
	"github.com/tm-ahad/sigma0/pkg/eval"
)

// AlphaBeta implements alpha-beta pruning with quiescence at the horizon, a transposition
// cache and an eval-volatility based re-depthing of child nodes: a child whose static
// evaluation swings sharply away from its parent's is searched an extra ply deeper (it likely
// sits mid-exchange or mid-blunder), while one that barely moves the needle is searched a ply
// shallower. Each line extends at most once and de-extends at most once, tracked via
// extended/deExtended, so volatile lines cannot recurse into unbounded depth.
type AlphaBeta struct {
	TT TranspositionTable
}

// Search runs alpha-beta from p to the given depth and returns the best move found, if any.
// legalMoves must be p.LegalMoves(). plies is the number of half-moves played since the start
// of the game, used by eval.Evaluate's phase heuristics.
func (ab AlphaBeta) Search(ctx context.Context, p *board.Position, legalMoves []board.Move, depth, plies int, maximizing bool) Result {
	tt := ab.TT
	if tt == nil {
		tt = NoTable{}
	}
	return alphaBeta(ctx, tt, p, legalMoves, depth, plies, eval.NegInf, eval.Inf, maximizing, false, false)
}

func alphaBeta(ctx context.Context, tt TranspositionTable, p *board.Position, legalMoves []board.Move, depth, plies int, alpha, beta eval.Score, maximizing, extended, deExtended bool) Result {
	hash := p.Hash()
	if r, ok := tt.Read(hash); ok {
		return r
	}

	if len(legalMoves) == 0 || depth <= 0 {
		return leaf(p, legalMoves, plies, depth, maximizing)
	}

	ordered := orderMoves(p, legalMoves, plies, maximizing)

	var best Result
	for _, m := range ordered {
		select {
		case <-ctx.Done():
			return best
		default:
		}

		if eval.IsBadKingMove(p, m, plies) {
			continue
		}

		child, err := p.Apply(m)
		if err != nil {
			continue
		}
		childMoves := child.LegalMoves()
		childDepth, nextExtended, nextDeExtended := nextDepth(p, &child, legalMoves, childMoves, plies, depth, extended, deExtended)

		res := alphaBeta(ctx, tt, &child, childMoves, childDepth, plies+1, alpha, beta, !maximizing, nextExtended, nextDeExtended)

		if !best.Found || better(res.Score, best.Score, maximizing) {
			best = Result{Move: m, Score: res.Score, Found: true}
		}

		if maximizing {
			if best.Score > alpha {
				alpha = best.Score
			}
		} else {
			if best.Score < beta {
				beta = best.Score
			}
		}
		if alpha >= beta {
			break
		}
	}

	if !best.Found {
		return leaf(p, legalMoves, plies, depth, maximizing)
	}

	tt.Write(hash, best)
	return best
}

// nextDepth applies the eval-volatility extension: depth is unchanged (extended) when the
// child's static eval differs from the parent's by more than 1.5, reduced by two (de-extended)
// when it differs by less than 1.0 and depth is above 1, and reduced by one otherwise. A line
// extends at most once and de-extends at most once, bounding the total swing per line.
func nextDepth(parent, child *board.Position, parentMoves, childMoves []board.Move, plies, depth int, extended, deExtended bool) (int, bool, bool) {
	parentScore := eval.Evaluate(parent, parentMoves, plies, false)
	childScore := eval.Evaluate(child, childMoves, plies+1, false)

	delta := childScore - parentScore
	if delta < 0 {
		delta = -delta
	}

	switch {
	case delta > 1.5 && !extended:
		return depth, true, deExtended
	case delta < 1.0 && !deExtended && depth > 1:
		return depth - 2, extended, true
	default:
		return depth - 1, extended, deExtended
	}
}

func leaf(p *board.Position, legalMoves []board.Move, plies, depth int, maximizing bool) Result {
	if plies >= eval.UseQuiescenceSearchAfterNPlies {
		return Result{Score: quiesce(p, legalMoves, plies, 0, eval.NegInf, eval.Inf, maximizing)}
	}
	return Result{Score: eval.Evaluate(p, legalMoves, plies, false)}
}

func better(a, b eval.Score, maximizing bool) bool {
	if maximizing {
		return a > b
	}
	return a < b
}
