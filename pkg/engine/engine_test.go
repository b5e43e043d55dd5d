package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tm-ahad/sigma0/pkg/board"
	"github.com/tm-ahad/sigma0/pkg/engine"
)

// noOracle never answers, so tests exercise the search path deterministically without
// depending on network access.
type noOracle struct{}

func (noOracle) Move(context.Context, *board.Position, []board.Move) (board.Move, bool, error) {
	return board.Move{}, false, nil
}

func newTestEngine(ctx context.Context) *engine.Engine {
	return engine.New(ctx, "sigma0-test", "test",
		engine.WithTablebase(noOracle{}),
		engine.WithBook(noOracle{}),
	)
}

func TestEngineMateInOne(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(ctx)
	require.NoError(t, e.Reset(ctx, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"))

	m, _, err := e.BestMove(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a1a8", m.String())
}

func TestEngineStalemateHasNoMove(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(ctx)
	require.NoError(t, e.Reset(ctx, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"))

	_, _, err := e.BestMove(ctx)
	assert.ErrorIs(t, err, engine.ErrNoMove)
}

func TestEngineResetRejectsInvalidFEN(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(ctx)

	before := e.Position()
	assert.Error(t, e.Reset(ctx, "not a fen"))
	assert.Equal(t, before, e.Position(), "a failed reset must leave the prior position intact")
}

func TestEngineMoveRejectsIllegalMove(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(ctx)
	require.NoError(t, e.Reset(ctx, board.InitialFEN))

	assert.Error(t, e.Move(ctx, "e2e5"))
}

func TestEngineMoveAppliesLegalMove(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(ctx)
	require.NoError(t, e.Reset(ctx, board.InitialFEN))

	require.NoError(t, e.Move(ctx, "e2e4"))
	assert.Contains(t, e.Position(), " b ")
}

func TestEngineSearchReturnsLegalMove(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(ctx)
	require.NoError(t, e.Reset(ctx, board.InitialFEN))

	m, _, err := e.BestMove(ctx)
	require.NoError(t, err)

	p, err := board.ParseFEN(board.InitialFEN)
	require.NoError(t, err)

	found := false
	for _, legal := range p.LegalMoves() {
		if legal.Equals(m) {
			found = true
		}
	}
	assert.True(t, found)
}
