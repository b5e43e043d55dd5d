// Package eval contains static position evaluation: material, piece-square tables, king
// safety, pawn structure, defender detection and mobility, fused into a single scalar.
package eval

import (
	"fmt"

	"github.com/tm-ahad/sigma0/pkg/board"
)

// Score is a finite-precision signed scalar. Positive favors White, negative favors Black --
// the evaluator is side-agnostic in sign convention. Inf/NegInf are the mate sentinels.
type Score float32

const (
	NegInf  Score = -1 << 20
	Inf     Score = 1 << 20
	MinTrue Score = NegInf + 1
	MaxTrue Score = Inf - 1
)

func (s Score) String() string {
	switch s {
	case Inf:
		return "+INF"
	case NegInf:
		return "-INF"
	default:
		return fmt.Sprintf("%.2f", float32(s))
	}
}

// Negate flips the sign, including the mate sentinels.
func (s Score) Negate() Score {
	return -s
}

// Unit returns the signed unit for a color: +1 for White, -1 for Black.
func Unit(c board.Color) Score {
	if c == board.White {
		return 1
	}
	return -1
}

// WhiteRelative converts a side-relative advantage into a White-relative score, negating when
// the current mover is Black.
func WhiteRelative(advantage Score, turn board.Color) Score {
	return advantage * Unit(turn)
}

func Max(a, b Score) Score {
	if a > b {
		return a
	}
	return b
}

func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}
