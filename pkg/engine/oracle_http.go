package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/seekerror/logw"
	"github.com/tm-ahad/sigma0/pkg/board"
)

// httpOracleTimeout bounds every lookup against the remote oracles. The engine must never
// stall a search waiting on a flaky network call.
const httpOracleTimeout = 2 * time.Second

// httpOracle is the shared shape of the Lichess-backed opening book and tablebase oracles:
// a single GET keyed by FEN, degrading permanently and silently (after one warning) on the
// first failure so a network hiccup never turns into a recurring per-move stall.
type httpOracle struct {
	name     string
	client   *http.Client
	endpoint string
	failed   atomic.Bool
}

func newHTTPOracle(name, endpoint string) *httpOracle {
	return &httpOracle{
		name:     name,
		client:   &http.Client{Timeout: httpOracleTimeout},
		endpoint: endpoint,
	}
}

type lichessMove struct {
	UCI      string `json:"uci"`
	Category string `json:"category"`
}

type lichessResponse struct {
	Moves    []lichessMove `json:"moves"`
	Category string        `json:"category"`
}

func (o *httpOracle) fetch(ctx context.Context, fen string) (lichessResponse, error) {
	var out lichessResponse
	if o.failed.Load() {
		return out, nil
	}

	u := o.endpoint + "?fen=" + url.QueryEscape(fen)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return out, err
	}

	resp, err := o.client.Do(req)
	if err != nil {
		o.fail(ctx, err)
		return out, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		o.fail(ctx, fmt.Errorf("status %v", resp.StatusCode))
		return out, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		o.fail(ctx, err)
		return lichessResponse{}, nil
	}
	return out, nil
}

// fail marks the oracle as permanently bypassed after its first error. It is logged once,
// at warn level, since a dead network oracle is a routine degraded mode, not an engine bug.
func (o *httpOracle) fail(ctx context.Context, err error) {
	if o.failed.CompareAndSwap(false, true) {
		logw.Warningf(ctx, "%v oracle disabled after failure: %v", o.name, err)
	}
}

// OpeningBook looks up the most-played master-level continuation for the current position via
// the Lichess opening explorer. It is consulted only in the opening, per Engine's dispatch
// order, and drops out permanently the first time the lookup fails.
type OpeningBook struct {
	o *httpOracle
}

// NewOpeningBook creates an Oracle backed by the Lichess master game explorer.
func NewOpeningBook() *OpeningBook {
	return &OpeningBook{o: newHTTPOracle("opening book", "https://explorer.lichess.ovh/master")}
}

func (b *OpeningBook) Move(ctx context.Context, p *board.Position, legalMoves []board.Move) (board.Move, bool, error) {
	resp, err := b.o.fetch(ctx, p.ToFEN())
	if err != nil || len(resp.Moves) == 0 {
		return board.Move{}, false, nil
	}
	return matchUCI(resp.Moves[0].UCI, legalMoves)
}

// EndgameTablebase looks up a perfect move from the Lichess 7-man Syzygy tablebase. Engine
// consults it whenever the piece count is at or below eval.MaxPieceForEndgame (12), a range
// that includes positions with more pieces than the tablebase covers.
type EndgameTablebase struct {
	o *httpOracle
}

// NewEndgameTablebase creates an Oracle backed by the Lichess standard tablebase.
func NewEndgameTablebase() *EndgameTablebase {
	return &EndgameTablebase{o: newHTTPOracle("tablebase", "https://tablebase.lichess.ovh/standard")}
}

func (t *EndgameTablebase) Move(ctx context.Context, p *board.Position, legalMoves []board.Move) (board.Move, bool, error) {
	resp, err := t.o.fetch(ctx, p.ToFEN())
	if err != nil || len(resp.Moves) == 0 {
		return board.Move{}, false, nil
	}

	best := resp.Moves[0]
	for _, m := range resp.Moves {
		if rank(m.Category) > rank(best.Category) {
			best = m
		}
	}
	return matchUCI(best.UCI, legalMoves)
}

// rank orders tablebase move categories, higher meaning better for the side to move: the API
// reports the category of the position *after* the move, from the perspective of the side to
// move next (the opponent), so the opponent's "loss" is the best choice here.
func rank(category string) int {
	switch category {
	case "loss":
		return 3
	case "blessed-loss":
		return 2
	case "draw":
		return 1
	default:
		return 0
	}
}

func matchUCI(uci string, legalMoves []board.Move) (board.Move, bool, error) {
	candidate, err := board.ParseMove(uci)
	if err != nil {
		return board.Move{}, false, nil
	}
	for _, m := range legalMoves {
		if m.Equals(candidate) {
			return m, true, nil
		}
	}
	return board.Move{}, false, nil
}
