package board

// Piece identifies a chess piece type, independent of color.
type Piece uint8

const (
	NoPiece Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	NumPieces = 7
)

// IsValid returns false for NoPiece.
func (p Piece) IsValid() bool {
	return p != NoPiece
}

func (p Piece) String() string {
	switch p {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "-"
	}
}

// ParsePiece parses a lowercase piece letter, as used in UCI promotions. King and Pawn
// are not valid promotion targets.
func ParsePiece(r rune) (Piece, bool) {
	switch r {
	case 'n':
		return Knight, true
	case 'b':
		return Bishop, true
	case 'r':
		return Rook, true
	case 'q':
		return Queen, true
	default:
		return NoPiece, false
	}
}
