package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tm-ahad/sigma0/pkg/board"
	"github.com/tm-ahad/sigma0/pkg/eval"
)

func TestPawnValueEndgameSwitchesOnPieceCount(t *testing.T) {
	sq := board.NewSquare(4, 1) // e2
	full := board.Castling(0xf)

	middlegame := eval.PawnValue(sq, board.White, 32, full)
	endgame := eval.PawnValue(sq, board.White, eval.MaxPieceForEndgame, full)

	assert.NotEqual(t, middlegame, endgame)
}

func TestPawnValueEndgameOnLostCastlingRights(t *testing.T) {
	sq := board.NewSquare(4, 1)

	withRights := eval.PawnValue(sq, board.White, 32, board.Castling(0xf))
	noRights := eval.PawnValue(sq, board.White, 32, board.Castling(0))

	assert.NotEqual(t, withRights, noRights, "losing all castling rights should flip to the endgame pawn table")
}

func TestKingValueIncludesMaterial(t *testing.T) {
	sq := board.NewSquare(4, 0) // e1
	v := eval.KingValue(sq, board.White, 32, board.Castling(0xf), board.White)
	assert.Greater(t, v, eval.Material(board.King)-eval.Score(2))
}

func TestKingValueEndgameKeysOffSideToMoveCastlingRights(t *testing.T) {
	sq := board.NewSquare(4, 0) // e1

	// The king being scored is White's; its own castling rights are intact. The endgame gate
	// must still flip because the side to move (Black) has lost all castling rights.
	rights := board.WhiteKingside | board.WhiteQueenside
	withMoverRights := eval.KingValue(sq, board.White, 32, rights|board.BlackKingside|board.BlackQueenside, board.Black)
	moverLostRights := eval.KingValue(sq, board.White, 32, rights, board.Black)

	assert.NotEqual(t, withMoverRights, moverLostRights, "King PST endgame gate must key off the side to move's rights, not the scored king's own color")
}
