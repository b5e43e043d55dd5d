package eval

import "github.com/tm-ahad/sigma0/pkg/board"

var queenDirections = [8][2]int{
	{-1, 1}, {1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {0, 1}, {0, -1}, {-1, 0},
}

var knightDirections = [8][2]int{
	{-2, 1}, {-2, -1}, {1, -2}, {-1, -2},
	{2, 1}, {2, -1}, {1, 2}, {-1, 2},
}

// IsDefended reports whether sq is defended (attacked) by color, via an outward ray-scan of
// the 8 queen directions plus the 8 knight offsets. Rays stop at the first occupied square,
// including friendly blockers; a piece never defends itself. As a side effect it folds small
// positional bonuses -- a pawn defending a pawn diagonally from behind, or in the endgame a
// rook defending a friendly pawn -- into acc, favoring color.
func IsDefended(p *board.Position, sq board.Square, color board.Color, endgame bool, acc *Score) bool {
	targetColor, targetPiece, hasTarget := p.PieceOn(sq)
	_ = targetColor

	f, r := int(sq.File()), int(sq.Rank())

	for _, d := range queenDirections {
		nf, nr := f+d[0], r+d[1]
		for board.OnBoard(board.File(nf), board.Rank(nr)) {
			at := board.NewSquare(board.File(nf), board.Rank(nr))
			if at == sq {
				nf += d[0]
				nr += d[1]
				continue
			}
			c, piece, ok := p.PieceOn(at)
			if !ok {
				nf += d[0]
				nr += d[1]
				continue
			}
			// First blocker on this ray: either it defends, or the ray is closed.
			if c != color {
				break
			}

			reaches := false
			switch piece {
			case board.Pawn:
				multiple := abs(d[0] * d[1])
				// A pawn defends diagonally forward of itself, so the defender sits diagonally
				// *behind* the target square: lower rank than sq for White, higher for Black.
				if multiple == 1 && Distance(sq, at) == 0 {
					if color == board.White && d[1] == -1 {
						reaches = true
					} else if color == board.Black && d[1] == 1 {
						reaches = true
					}
				}
			case board.King:
				reaches = Distance(sq, at) == 0
			case board.Bishop:
				reaches = abs(d[0]*d[1]) == 1
			case board.Rook:
				reaches = abs(d[0]*d[1]) == 0
			case board.Queen:
				reaches = true
			}
			if reaches {
				if hasTarget && acc != nil {
					if piece == board.Pawn && targetPiece == board.Pawn {
						*acc += WhiteRelative(PawnChainBonus, color)
					}
					if endgame && piece == board.Rook && targetPiece == board.Pawn {
						*acc += WhiteRelative(EndgamePawnRookDefenseAdvantage, color)
					}
				}
				return true
			}
			break
		}
	}

	for _, d := range knightDirections {
		nf, nr := f+d[0], r+d[1]
		if !board.OnBoard(board.File(nf), board.Rank(nr)) {
			continue
		}
		at := board.NewSquare(board.File(nf), board.Rank(nr))
		c, piece, ok := p.PieceOn(at)
		if ok && c == color && piece == board.Knight {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Distance is Chebyshev distance minus one, so adjacent squares yield 0. The source computed
// this using the same axis index for both dimensions (a bug); this is the intended fix.
func Distance(a, b board.Square) int {
	return board.ChebyshevDistance(a, b) - 1
}
