package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tm-ahad/sigma0/pkg/board"
)

func TestHashDiffersAfterMove(t *testing.T) {
	p, err := board.ParseFEN(board.InitialFEN)
	require.NoError(t, err)

	m, err := board.ParseMove("e2e4")
	require.NoError(t, err)
	next, err := p.Apply(m)
	require.NoError(t, err)

	assert.NotEqual(t, p.Hash(), next.Hash())
}

func TestHashStableAcrossCalls(t *testing.T) {
	p, err := board.ParseFEN(board.InitialFEN)
	require.NoError(t, err)

	assert.Equal(t, p.Hash(), p.Hash())
}
