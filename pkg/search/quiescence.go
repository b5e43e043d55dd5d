package search

import (
	"github.com/tm-ahad/sigma0/pkg/board"
	"github.com/tm-ahad/sigma0/pkg/eval"
)

// quiesce extends search past the nominal horizon along capture sequences played while in
// check, to avoid the horizon effect of stopping mid-exchange. It is a stand-pat alpha-beta:
// the static evaluation is always a legal choice (the side to move need not capture), so it
// first raises alpha/lowers beta before trying any capture, and only recurses into captures
// that are answered while the mover is in check -- a deliberately narrow widening, not a full
// capture search.
func quiesce(p *board.Position, legalMoves []board.Move, plies, depth int, alpha, beta eval.Score, maximizing bool) eval.Score {
	stand := eval.Evaluate(p, legalMoves, plies, false)

	if maximizing {
		if stand >= beta {
			return stand
		}
		if stand > alpha {
			alpha = stand
		}
	} else {
		if stand <= alpha {
			return stand
		}
		if stand < beta {
			beta = stand
		}
	}

	if depth >= eval.QuiescenceMaxDepth {
		return stand
	}

	inCheck := p.IsChecked(p.Turn())
	best := stand

	ordered := orderMoves(p, legalMoves, plies, maximizing)
	for _, m := range ordered {
		if m.Capture == board.NoPiece || !inCheck {
			continue
		}

		child, err := p.Apply(m)
		if err != nil {
			continue
		}
		childMoves := child.LegalMoves()

		score := quiesce(&child, childMoves, plies+1, depth+1, alpha, beta, !maximizing)

		if maximizing {
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if score < best {
				best = score
			}
			if best < beta {
				beta = best
			}
		}
		if alpha >= beta {
			break
		}
	}
	return best
}
