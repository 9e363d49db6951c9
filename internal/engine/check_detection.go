package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// InCheck returns true if any of the opponent's replies to after would
// capture a king of the side that played after.
func InCheck(after *chess.Move, replies []chess.Move) bool {
	for i := range replies {
		reply := &replies[i]
		if reply.Side != after.Side && reply.Captured.Is(chess.King) {
			return true
		}
	}
	return false
}

// IsInCheck returns true if any king of the given colour is attacked.
func IsInCheck(b *chess.Board, colour chess.Colour) bool {
	for _, king := range b.Kings(colour) {
		if SquareAttacked(b, king, colour.Opposite()) {
			return true
		}
	}
	return false
}

// SquareAttacked returns true if pos is attacked by a piece of the given colour.
// The occupant of pos itself is ignored.
func SquareAttacked(b *chess.Board, pos int, byColour chess.Colour) bool {
	attackers := b.Side(byColour)
	rank, file := b.RankOf(pos), b.FileOf(pos)

	// Pawns attack from the rank behind the square, seen from their side
	pawnRank := rank - chess.ColourOffset(byColour)
	for df := -1; df <= 1; df += 2 {
		if b.InBounds(pawnRank, file+df) && attackers[b.Pos(pawnRank, file+df)].Is(chess.Pawn) {
			return true
		}
	}

	if attackedByStep(b, attackers, rank, file, knightOffsets, chess.Knight) {
		return true
	}
	if attackedByStep(b, attackers, rank, file, kingOffsets, chess.King) {
		return true
	}
	if attackedBySlide(b, attackers, rank, file, diagonalDirs, chess.Bishop) {
		return true
	}
	return attackedBySlide(b, attackers, rank, file, straightDirs, chess.Rook)
}

// attackedByStep checks the fixed offsets for a piece of the given kind.
func attackedByStep(b *chess.Board, attackers []chess.Square, rank, file int, offsets [][2]int, kind chess.Piece) bool {
	for _, off := range offsets {
		f, r := file+off[0], rank+off[1]
		if b.InBounds(r, f) && attackers[b.Pos(r, f)].Is(kind) {
			return true
		}
	}
	return false
}

// attackedBySlide walks each ray to the first piece and checks whether it
// is the given slider or a queen.
func attackedBySlide(b *chess.Board, attackers []chess.Square, rank, file int, dirs [][2]int, kind chess.Piece) bool {
	for _, dir := range dirs {
		f, r := file+dir[0], rank+dir[1]
		for b.InBounds(r, f) {
			pos := b.Pos(r, f)
			if b.Occupied(pos) {
				if attackers[pos].Is(kind) || attackers[pos].Is(chess.Queen) {
					return true
				}
				break // Blocked
			}
			f += dir[0]
			r += dir[1]
		}
	}
	return false
}
