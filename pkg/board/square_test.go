package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tm-ahad/sigma0/pkg/board"
)

func TestNewSquareAndAccessors(t *testing.T) {
	sq := board.NewSquare(2, 3)
	assert.Equal(t, board.File(2), sq.File())
	assert.Equal(t, board.Rank(3), sq.Rank())
	assert.True(t, sq.IsValid())
}

func TestSquareString(t *testing.T) {
	tests := []struct {
		sq   board.Square
		want string
	}{
		{board.NewSquare(0, 0), "a1"},
		{board.NewSquare(7, 7), "h8"},
		{board.NewSquare(4, 0), "e1"},
		{board.Invalid, "-"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.sq.String())
	}
}

func TestParseSquare(t *testing.T) {
	sq, err := board.ParseSquareStr("e4")
	require.NoError(t, err)
	assert.Equal(t, board.NewSquare(4, 3), sq)

	_, err = board.ParseSquareStr("z9")
	assert.Error(t, err)

	_, err = board.ParseSquareStr("e")
	assert.Error(t, err)
}

func TestOnBoard(t *testing.T) {
	assert.True(t, board.OnBoard(0, 0))
	assert.True(t, board.OnBoard(7, 7))
	assert.False(t, board.OnBoard(-1, 0))
	assert.False(t, board.OnBoard(8, 0))
	assert.False(t, board.OnBoard(0, 8))
}

func TestChebyshevDistance(t *testing.T) {
	assert.Equal(t, 0, board.ChebyshevDistance(board.NewSquare(0, 0), board.NewSquare(0, 0)))
	assert.Equal(t, 1, board.ChebyshevDistance(board.NewSquare(0, 0), board.NewSquare(1, 1)))
	assert.Equal(t, 7, board.ChebyshevDistance(board.NewSquare(0, 0), board.NewSquare(7, 7)))
	assert.Equal(t, 7, board.ChebyshevDistance(board.NewSquare(0, 0), board.NewSquare(0, 7)))
}
