package eval

import "github.com/tm-ahad/sigma0/pkg/board"

// Material is the nominal centipawn-like value of a piece, independent of square or phase.
// The King's value only anchors piece-square table additions; kings are never captured.
func Material(piece board.Piece) Score {
	switch piece {
	case board.Pawn:
		return 1.00
	case board.Knight:
		return 3.05
	case board.Bishop:
		return 3.35
	case board.Rook:
		return 5.73
	case board.Queen:
		return 9.50
	case board.King:
		return 2.26
	default:
		return 0
	}
}
