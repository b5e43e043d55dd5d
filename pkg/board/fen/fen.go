// Package fen provides Forsyth-Edwards Notation encode/decode as a thin, named-import
// friendly wrapper over board's own FEN support.
package fen

import "github.com/tm-ahad/sigma0/pkg/board"

// Initial is the FEN of the standard starting position.
const Initial = board.InitialFEN

// Decode parses a FEN string into a position.
func Decode(s string) (*board.Position, error) {
	return board.ParseFEN(s)
}

// Encode renders a position as FEN.
func Encode(p *board.Position) string {
	return p.ToFEN()
}
