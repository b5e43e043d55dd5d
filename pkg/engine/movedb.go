package engine

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/seekerror/logw"
	"github.com/tm-ahad/sigma0/pkg/board"
)

// MoveDatabase is a persistent, FEN-keyed store of moves played in prior games, consulted as
// an Oracle before falling through to search and populated in the background by the engine
// as each game progresses. It replaces a server-backed move store with an embedded one: each
// process owns its own on-disk database rather than a shared remote cache.
type MoveDatabase struct {
	db *badger.DB
}

// NewMoveDatabase opens (creating if necessary) the move database at dir.
func NewMoveDatabase(dir string) (*MoveDatabase, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &MoveDatabase{db: db}, nil
}

// Close closes the underlying database.
func (m *MoveDatabase) Close() error {
	return m.db.Close()
}

// Move looks up a previously-recorded move for p's position. A miss is not an error.
func (m *MoveDatabase) Move(ctx context.Context, p *board.Position, legalMoves []board.Move) (board.Move, bool, error) {
	key := []byte(positionKey(p))

	var uci string
	err := m.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			uci = string(val)
			return nil
		})
	})
	if err != nil {
		return board.Move{}, false, err
	}
	if uci == "" {
		return board.Move{}, false, nil
	}
	return matchUCI(uci, legalMoves)
}

// Record stores the move played from position p, overwriting any prior entry for it. It is
// meant to be called from a background goroutine after a move has already been committed to
// the live game, so it never delays the next search.
func (m *MoveDatabase) Record(ctx context.Context, p *board.Position, move board.Move) {
	key := []byte(positionKey(p))
	val := []byte(move.String())

	if err := m.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, val)
	}); err != nil {
		logw.Warningf(ctx, "move database write failed: %v", err)
	}
}

// positionKey drops the halfmove clock and fullmove number from the FEN, so that
// transpositions that differ only by move-count bookkeeping share a database entry.
func positionKey(p *board.Position) string {
	full := p.ToFEN()
	fields := 0
	for i, r := range full {
		if r == ' ' {
			fields++
			if fields == 4 {
				return full[:i]
			}
		}
	}
	return full
}
