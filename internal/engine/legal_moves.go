package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalityFilter reduces pseudo-legal candidates to the legal ones.
type LegalityFilter interface {
	Legal(b *chess.Board, candidates []chess.Move) []chess.Move
}

// ReplayFilter decides legality by playing each candidate, generating the
// opponent's replies and looking for one that captures the mover's king.
// It costs a full reply generation per candidate.
type ReplayFilter struct {
	Rules Rules
}

// Legal returns the candidates that do not leave the mover's king attacked,
// in their original order. b is restored before returning.
func (f ReplayFilter) Legal(b *chess.Board, candidates []chess.Move) []chess.Move {
	legal := make([]chess.Move, 0, len(candidates))
	for i := range candidates {
		m := &candidates[i]
		if m.IsSentinel() {
			continue
		}
		if m.IsCastle() && castlePathAttacked(b, m) {
			continue
		}

		applyMove(b, m)
		replies := f.Rules.generate(b, m.Side.Opposite(), m, false)
		ok := !InCheck(m, replies)
		undoMove(b, m)

		if ok {
			legal = append(legal, *m)
		}
	}
	return legal
}

// castlePathAttacked returns true if any square the king crosses or lands on,
// its starting square excluded, is attacked before the castle is played.
func castlePathAttacked(b *chess.Board, m *chess.Move) bool {
	step := sign(m.To - m.From)
	if step == 0 {
		return false
	}
	by := m.Side.Opposite()
	for pos := m.From + step; ; pos += step {
		if SquareAttacked(b, pos, by) {
			return true
		}
		if pos == m.To {
			return false
		}
	}
}
