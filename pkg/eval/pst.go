package eval

import "github.com/tm-ahad/sigma0/pkg/board"

// Piece-square tables are laid out from Black's perspective: a Black piece on sq reads index
// rank*8+file (a1 is index 0, h8 is 63) and a White piece reads 63 minus that (h8 is index 0),
// so the first row is the owner's promotion rank and the last row its home rank; see pstIndex.
// Only pawns and kings carry a table -- other pieces rely on
// material alone, since their positional worth is captured by the mobility pass instead.

var kingTable = [64]Score{
	-1.0, -1.0, -1.0, -1.0, -1.0, -1.0, -1.0, -1.0,
	-1.0, -1.0, -1.0, -1.0, -1.0, -1.0, -1.0, -1.0,
	-0.5, -0.5, -0.5, -0.5, -0.5, -0.5, -0.5, -0.5,
	-0.5, -0.5, -0.5, -0.5, -0.5, -0.5, -0.5, -0.5,
	-0.5, -0.5, -0.5, -1.0, -1.0, -0.5, -0.5, -0.5,
	-0.5, -0.5, -0.5, -1.0, -1.0, -0.5, -0.5, -0.5,
	-0.3, -0.3, -0.3, -0.3, -0.3, -0.3, -0.3, -0.3,
	0.0, 0.5, -0.1, 0.0, -0.1, 0.4, 0.0, 0.0,
}

var kingTableEndgame = [64]Score{
	-0.9, -0.9, -0.9, -0.9, -0.9, -0.9, -0.9, -0.9,
	-0.9, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, -0.9,
	-0.9, 0.9, 0.9, 0.9, 0.9, 0.9, 0.0, -0.9,
	-0.9, 0.9, 0.9, 1.0, 1.0, 0.9, 0.0, -0.9,
	-0.9, 0.9, 0.9, 1.0, 1.0, 0.9, 0.0, -0.9,
	-0.9, 0.9, 0.9, 0.9, 0.9, 0.9, 0.0, -0.9,
	-0.9, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	-0.9, -1.0, -1.0, -1.0, -1.0, -1.0, -0.9, -0.9,
}

var pawnTable = [64]Score{
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0,
	1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0,
	0.1, 0.1, 0.1, 0.3, 0.3, 0.1, 0.1, 0.1,
	-0.1, -0.1, 0.1, 0.2, 0.2, 0.1, -0.1, -0.1,
	-0.1, -0.1, 0.1, 0.2, 0.2, 0.1, -0.1, -0.1,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
}

var pawnTableEndgame = [64]Score{
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	7.0, 7.0, 7.0, 7.0, 7.0, 7.0, 7.0, 7.0,
	1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0,
	0.4, 0.4, 0.4, 0.4, 0.4, 0.4, 0.4, 0.4,
	0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3,
	0.2, 0.2, 0.2, 0.2, 0.2, 0.1, 0.2, 0.2,
	0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
}

// pstIndex returns the table index for (square, color): for White the index is mirrored
// (63 - idx) since the tables are laid out from Black's perspective.
func pstIndex(sq board.Square, color board.Color) int {
	idx := int(sq.Rank())*8 + int(sq.File())
	if color == board.White {
		return 63 - idx
	}
	return idx
}

// hasCastlingRights reports whether color still holds any castling right.
func hasCastlingRights(castling board.Castling, color board.Color) bool {
	return castling.HasAny(color)
}

// PawnValue returns the PST-plus-material value for a pawn of the given color at sq. Endgame
// phase is used when the position is globally in the endgame, or this color has lost both
// castling rights.
func PawnValue(sq board.Square, color board.Color, pieces int, castling board.Castling) Score {
	endgame := pieces <= MaxPieceForEndgame || !hasCastlingRights(castling, color)
	table := &pawnTable
	if endgame {
		table = &pawnTableEndgame
	}
	return table[pstIndex(sq, color)] + Material(board.Pawn)
}

// KingValue returns the PST-plus-material value for a king of the given color at sq. The
// endgame gate mirrors PawnValue's but uses the side to move's castling rights as proxy,
// rather than the king's own color, since it is the mover who decides whether the position
// still carries opening tension.
func KingValue(sq board.Square, color board.Color, pieces int, castling board.Castling, turn board.Color) Score {
	endgame := pieces <= MaxPieceForEndgame || !hasCastlingRights(castling, turn)
	table := &kingTable
	if endgame {
		table = &kingTableEndgame
	}
	return table[pstIndex(sq, color)] + Material(board.King)
}
