package eval

import "github.com/tm-ahad/sigma0/pkg/board"

// IsBadKingMove reports whether a move should be excluded from both mobility accounting and
// search expansion: in the king-safety opening, a non-castling, non-capturing king move made
// while not in check. Castling, captures and moves played in check are never "bad".
func IsBadKingMove(p *board.Position, m board.Move, plies int) bool {
	if plies > OpeningForKingSafety {
		return false
	}
	if m.Castling || m.Capture != board.NoPiece {
		return false
	}
	if p.IsChecked(p.Turn()) {
		return false
	}
	return m.From == p.KingSquare(board.White) || m.From == p.KingSquare(board.Black)
}

// Evaluate returns a White-relative score for p. legalMoves must be p.LegalMoves(); plies is
// the number of half-moves played since the start of the game. debug is accepted for parity
// with the source evaluator's tracing hook but otherwise unused.
func Evaluate(p *board.Position, legalMoves []board.Move, plies int, debug bool) Score {
	pieces := p.PieceCount()

	switch p.Status() {
	case board.Checkmate:
		if p.Turn() == board.White {
			return NegInf
		}
		return Inf
	case board.Stalemate, board.Draw:
		return 0
	}
	if pieces == 2 {
		return 0
	}

	var score Score

	isEndgame := pieces <= MaxPieceForEndgame
	isOpeningForPieceSafety := plies <= OpeningForPieceSafety
	isOpeningForKingSafety := plies <= OpeningForKingSafety

	// Pass 1: pawn shield.
	var shielded [2]bool
	if isOpeningForKingSafety {
		for _, c := range [2]board.Color{board.White, board.Black} {
			king := p.KingSquare(c)
			rankDelta := 1
			if c == board.Black {
				rankDelta = -1
			}
			rank := int(king.Rank()) + rankDelta
			file := int(king.File())
			if board.OnBoard(board.File(file-1), board.Rank(rank)) &&
				board.OnBoard(board.File(file), board.Rank(rank)) &&
				board.OnBoard(board.File(file+1), board.Rank(rank)) {
				sq1 := board.NewSquare(board.File(file-1), board.Rank(rank))
				sq2 := board.NewSquare(board.File(file), board.Rank(rank))
				sq3 := board.NewSquare(board.File(file+1), board.Rank(rank))
				if !p.IsEmpty(sq1) && !p.IsEmpty(sq2) && !p.IsEmpty(sq3) {
					score += WhiteRelative(PawnShieldScore, c)
					shielded[c] = true
				}
			}
		}
	}

	// Pass 2: per-square features.
	var pawnOnFiles uint8
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		color, piece, ok := p.PieceOn(sq)
		if !ok {
			continue
		}
		rank := int(sq.Rank())

		if piece == board.Rook {
			if color == board.White && rank == 6 {
				score += RookOn7thRankBonus
			}
			if color == board.Black && rank == 1 {
				score -= RookOn7thRankBonus
			}
		}

		if isEndgame && piece == board.Pawn {
			fileIdx := uint(sq.File())
			if pawnOnFiles&(1<<fileIdx) != 0 {
				score -= WhiteRelative(PawnOnSafeFileDisadvantage, color)
			}
			pawnOnFiles |= 1 << fileIdx

			king := p.KingSquare(color)
			enemyKing := p.KingSquare(color.Opponent())
			score += Score(Distance(king, sq)) / 1.6
			score -= Score(Distance(enemyKing, sq)) / 1.6
		}

		if piece == board.Knight && isOpeningForPieceSafety {
			if color == board.White && (sq == board.NewSquare(2, 2) || sq == board.NewSquare(5, 2)) {
				score += GoodKnight
			}
			if color == board.Black && (sq == board.NewSquare(2, 5) || sq == board.NewSquare(5, 5)) {
				score -= GoodKnight
			}
		}

		if piece == board.King && isOpeningForKingSafety {
			divisor := plies
			if divisor == 0 {
				divisor = 8
			}
			if color == board.Black && rank != 7 {
				score += KingMovedNotEndgame / Score(divisor)
			}
			if color == board.White && rank != 0 {
				score -= KingMovedNotEndgame / Score(divisor)
			}
		}

		if piece == board.Queen && plies <= MiddlegameForQueenSafety {
			whiteUnsafe, blackUnsafe := queenSafetyRanges(plies)
			if color == board.White && whiteUnsafe(rank) {
				score -= OpeningQueenSafety
			}
			if color == board.Black && blackUnsafe(rank) {
				score += OpeningQueenSafety
			}
		}

		if piece == board.Queen && !isOpeningForKingSafety {
			enemy := color.Opponent()
			if IsDefended(p, sq, color, isEndgame, &score) && !shielded[enemy] {
				d := Distance(p.KingSquare(enemy), sq)
				bonus := Score(0)
				switch d {
				case 1:
					bonus = 2.6
				case 2:
					bonus = 0.8
				}
				score += WhiteRelative(bonus, color)
			}
		}

		switch piece {
		case board.Pawn:
			score += WhiteRelative(PawnValue(sq, color, pieces, p.Castling()), color)
		case board.King:
			score += WhiteRelative(KingValue(sq, color, pieces, p.Castling(), p.Turn()), color)
		default:
			score += WhiteRelative(Material(piece), color)
		}
	}

	// Pass 3: mobility & capture gain for the side to move. A per-source-square cache prevents
	// double-counting when several moves attack a target from the same origin: once a source
	// has contributed, subsequent moves from it score DefendingPiece instead of re-pricing the
	// capture. maxCaptured tracks the richest single capture seen so far in this pass, so a
	// pile of captures all reachable from different sources doesn't each get priced as if it
	// were the only one on offer.
	contributed := map[board.Square]bool{}
	var maxCaptured Score
	mover := p.Turn()
	for _, m := range legalMoves {
		if IsBadKingMove(p, m, plies) {
			continue
		}
		if m.Capture != board.NoPiece {
			if contributed[m.From] {
				score += WhiteRelative(DefendingPiece, mover)
				continue
			}
			contributed[m.From] = true

			_, attacker, _ := p.PieceOn(m.From)
			d := Material(m.Capture)
			var gain Score
			if IsDefended(p, m.To, mover.Opponent(), isEndgame, nil) {
				gain = Max(0, d-Material(attacker)-maxCaptured)
			} else {
				gain = Max(0, d-maxCaptured)
			}
			maxCaptured = Max(maxCaptured, d)
			score += WhiteRelative(gain, mover)
		} else {
			score += WhiteRelative(ControllingSquare, mover)
		}
	}

	// Pass 4: opponent mobility.
	if opp, ok := p.NullMove(); ok {
		for _, m := range opp.LegalMoves() {
			if m.Capture == board.NoPiece {
				v := ControllingSquare
				if plies <= OpeningForDiffEval {
					v = ControllingSquareOpening
				}
				score += WhiteRelative(v, opp.Turn())
			} else {
				v := DefendingPiece
				if plies <= OpeningForDiffEval {
					v = DefendingPieceOpening
				}
				score += WhiteRelative(v, opp.Turn())

				if isEndgame {
					IsDefended(&opp, m.To, mover, true, &score)
				}
			}
		}
	}

	// Pass 5: endgame king-distance amplifier.
	if isEndgame {
		d := Score(board.ChebyshevDistance(p.KingSquare(board.White), p.KingSquare(board.Black)))
		score *= 1 + d*EndgameKingDistance
	}

	return score
}

// queenSafetyRanges returns the unsafe-rank predicates for White/Black queens, per the
// opening/middlegame phase for queen safety.
func queenSafetyRanges(plies int) (white, black func(rank int) bool) {
	if plies <= OpeningForPieceSafety {
		return func(r int) bool { return r >= 2 && r <= 7 }, func(r int) bool { return r >= 0 && r <= 5 }
	}
	return func(r int) bool { return r >= 4 && r <= 7 }, func(r int) bool { return r >= 0 && r <= 3 }
}
