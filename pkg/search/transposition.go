package search

import (
	"sync"

	"github.com/tm-ahad/sigma0/pkg/board"
)

// TranspositionTable caches a search Result by position hash. Unlike a conventional engine
// table it carries no depth or bound metadata: a hit is trusted outright regardless of the
// depth or window it was produced at. This trades soundness for simplicity and is a known,
// deliberate property of this engine rather than an oversight -- see Read.
type TranspositionTable interface {
	// Read returns the cached result for hash, if present.
	Read(hash board.ZobristHash) (Result, bool)
	// Write stores result under hash, unconditionally overwriting any prior entry.
	Write(hash board.ZobristHash, result Result)

	// Len returns the number of entries currently stored.
	Len() int
}

// memTable is a TranspositionTable backed by a plain Go map. It never evicts entries; callers
// that run many games in one process should create a fresh table per game via NewTable.
type memTable struct {
	mu sync.RWMutex
	m  map[board.ZobristHash]Result
}

// NewTable creates an empty, thread-safe TranspositionTable.
func NewTable() TranspositionTable {
	return &memTable{m: make(map[board.ZobristHash]Result)}
}

func (t *memTable) Read(hash board.ZobristHash) (Result, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	r, ok := t.m[hash]
	return r, ok
}

func (t *memTable) Write(hash board.ZobristHash, result Result) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.m[hash] = result
}

func (t *memTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.m)
}

// NoTable is a TranspositionTable that never caches anything.
type NoTable struct{}

func (NoTable) Read(board.ZobristHash) (Result, bool) { return Result{}, false }
func (NoTable) Write(board.ZobristHash, Result)        {}
func (NoTable) Len() int                               { return 0 }
