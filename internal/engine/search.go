package engine

import (
	"math"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// MateScore is the score of being checkmated at the root. Mates further
// away score closer to zero.
const MateScore = 1_000_000

// pieceValues in centipawns, indexed by piece kind.
var pieceValues = [...]int{
	chess.None:   0,
	chess.Pawn:   100,
	chess.Rook:   500,
	chess.Knight: 300,
	chess.Bishop: 300,
	chess.Queen:  900,
	chess.King:   0,
}

// Evaluate returns a static score of b from the point of view of the side to move.
func Evaluate(b *chess.Board) int {
	score := 0
	for pos := 0; pos < b.Size(); pos++ {
		score += squareScore(b, chess.White, pos)
		score -= squareScore(b, chess.Black, pos)
	}
	if b.SideToMove() == chess.Black {
		return -score
	}
	return score
}

// squareScore values the piece of the given colour on pos: material, plus
// a bonus for advanced pawns and for centralised knights and bishops.
func squareScore(b *chess.Board, colour chess.Colour, pos int) int {
	sq := b.Side(colour)[pos]
	if sq.Empty() {
		return 0
	}
	score := pieceValues[sq.Kind]
	switch sq.Kind {
	case chess.Pawn:
		advance := (b.RankOf(pos) - b.PawnRank(colour)) * chess.ColourOffset(colour)
		if advance > 0 {
			score += 10 * advance
		}
	case chess.Knight, chess.Bishop:
		// Distances in doubled coordinates so the centre of even boards is exact.
		spanF, spanR := b.Files()-1, b.Ranks()-1
		dist := abs(2*b.FileOf(pos)-spanF) + abs(2*b.RankOf(pos)-spanR)
		score += spanF + spanR - dist
	}
	return score
}

// EvaluateBestMove searches every line depth plies deep and returns the
// move with the best negamax score together with that score. Ties keep the
// move generated first. With no legal moves it returns "" and the score of
// the position.
func (e *Engine) EvaluateBestMove(depth int) (string, int) {
	defer e.keepRedo()()
	return e.negamax(depth, 0)
}

func (e *Engine) negamax(depth, ply int) (string, int) {
	moves := e.legal.Moves()
	if len(moves) == 0 {
		if e.InCheck() {
			return "", -MateScore + ply
		}
		return "", 0
	}
	if ply > 0 && e.IsFiftyMoveDraw() {
		return "", 0
	}
	if depth <= 0 {
		return "", Evaluate(e.board)
	}

	best := ""
	bestScore := math.MinInt
	for _, lm := range moves {
		e.play(lm.Move, lm.Notation)
		_, score := e.negamax(depth-1, ply+1)
		_ = e.UndoLastMove()

		score = -score
		if score > bestScore {
			best, bestScore = lm.Notation, score
		}
	}
	return best, bestScore
}
