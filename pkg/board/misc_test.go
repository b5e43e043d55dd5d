package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tm-ahad/sigma0/pkg/board"
)

func TestColor(t *testing.T) {
	assert.Equal(t, board.Black, board.White.Opponent())
	assert.Equal(t, board.White, board.Black.Opponent())
	assert.Equal(t, "w", board.White.String())
	assert.Equal(t, "b", board.Black.String())
}

func TestPieceParseAndString(t *testing.T) {
	p, ok := board.ParsePiece('q')
	assert.True(t, ok)
	assert.Equal(t, board.Queen, p)
	assert.Equal(t, "q", p.String())

	_, ok = board.ParsePiece('k')
	assert.False(t, ok, "king is not a valid promotion target")
	_, ok = board.ParsePiece('p')
	assert.False(t, ok, "pawn is not a valid promotion target")

	assert.False(t, board.NoPiece.IsValid())
	assert.True(t, board.Queen.IsValid())
}

func TestCastlingRights(t *testing.T) {
	var c board.Castling
	c |= board.WhiteKingside | board.BlackQueenside

	assert.True(t, c.Has(board.WhiteKingside))
	assert.False(t, c.Has(board.WhiteQueenside))
	assert.Equal(t, "Kq", c.String())

	cleared := c.Clear(board.WhiteKingside)
	assert.False(t, cleared.Has(board.WhiteKingside))
	assert.True(t, cleared.Has(board.BlackQueenside))

	assert.True(t, c.HasAny(board.White))
	assert.False(t, cleared.HasAny(board.White))

	assert.Equal(t, "-", board.Castling(0).String())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "checkmate", board.Checkmate.String())
	assert.Equal(t, "stalemate", board.Stalemate.String())
	assert.Equal(t, "draw", board.Draw.String())
	assert.Equal(t, "ongoing", board.Ongoing.String())
}
