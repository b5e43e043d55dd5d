package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tm-ahad/sigma0/pkg/board"
	"github.com/tm-ahad/sigma0/pkg/eval"
	"github.com/tm-ahad/sigma0/pkg/search"
)

func TestAlphaBetaMateInOne(t *testing.T) {
	ctx := context.Background()
	p, err := board.ParseFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	require.NoError(t, err)

	ab := search.AlphaBeta{TT: search.NewTable()}
	result := ab.Search(ctx, p, p.LegalMoves(), 3, 0, true)

	require.True(t, result.Found)
	assert.Equal(t, "a1a8", result.Move.String())
	assert.Equal(t, eval.Inf, result.Score)
}

func TestAlphaBetaDeterministicWithFreshCache(t *testing.T) {
	ctx := context.Background()
	p, err := board.ParseFEN(board.InitialFEN)
	require.NoError(t, err)

	run := func() search.Result {
		ab := search.AlphaBeta{TT: search.NewTable()}
		return ab.Search(ctx, p, p.LegalMoves(), 3, 0, true)
	}

	first := run()
	second := run()

	assert.Equal(t, first.Move, second.Move)
	assert.Equal(t, first.Score, second.Score)
}

func TestAlphaBetaTranspositionCoherence(t *testing.T) {
	ctx := context.Background()
	p, err := board.ParseFEN(board.InitialFEN)
	require.NoError(t, err)

	m1, _ := board.ParseMove("e2e4")
	m2, _ := board.ParseMove("e7e5")
	m3, _ := board.ParseMove("g1f3")
	m4, _ := board.ParseMove("b8c6")

	apply := func(start *board.Position, moves []board.Move) *board.Position {
		cur := start
		for _, m := range moves {
			next, err := cur.Apply(m)
			require.NoError(t, err)
			cur = &next
		}
		return cur
	}

	seq1 := apply(p, []board.Move{m1, m2, m3, m4})
	seq2 := apply(p, []board.Move{m3, m2, m1, m4})

	require.Equal(t, seq1.Hash(), seq2.Hash())

	ab := search.AlphaBeta{TT: search.NewTable()}
	r1 := ab.Search(ctx, seq1, seq1.LegalMoves(), 2, 4, true)
	r2 := ab.Search(ctx, seq2, seq2.LegalMoves(), 2, 4, true)

	assert.Equal(t, r1.Move, r2.Move)
	assert.Equal(t, r1.Score, r2.Score)
}

func TestAlphaBetaNoLegalMovesReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	p, err := board.ParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	ab := search.AlphaBeta{TT: search.NewTable()}
	result := ab.Search(ctx, p, p.LegalMoves(), 3, 0, false)

	assert.False(t, result.Found)
	assert.Equal(t, eval.Score(0), result.Score)
}

func TestAlphaBetaReturnsLegalMove(t *testing.T) {
	ctx := context.Background()
	p, err := board.ParseFEN(board.InitialFEN)
	require.NoError(t, err)

	ab := search.AlphaBeta{TT: search.NewTable()}
	result := ab.Search(ctx, p, p.LegalMoves(), 2, 0, true)

	require.True(t, result.Found)

	found := false
	for _, m := range p.LegalMoves() {
		if m.Equals(result.Move) {
			found = true
		}
	}
	assert.True(t, found, "search must return a move legal in the searched position")
}
