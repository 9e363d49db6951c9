package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// DefaultPushLimit is the furthest a pawn may advance on its first move in standard chess.
const DefaultPushLimit = 2

// Rules holds the construction-time switches that vary between chess dialects.
type Rules struct {
	// PushLimit is the furthest an unmoved pawn may advance in one move.
	PushLimit int

	// Castle960 sends the king and rook to the Chess960 castling files
	// instead of moving the king two squares toward the rook.
	Castle960 bool
}

// Offsets as {file, rank} deltas.
var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// GeneratePseudoLegal returns every move side could make on b, ignoring
// whether the mover's own king is left attacked. prev is the move that led
// to this position and is consulted for en passant.
func (r Rules) GeneratePseudoLegal(b *chess.Board, side chess.Colour, prev *chess.Move) []chess.Move {
	return r.generate(b, side, prev, true)
}

// generate produces pseudo-legal moves. Castling is skipped when only
// attacks matter, as it can never capture.
func (r Rules) generate(b *chess.Board, side chess.Colour, prev *chess.Move, castles bool) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for pos, sq := range b.Side(side) {
		switch sq.Kind {
		case chess.Pawn:
			moves = r.pawnMoves(b, side, pos, prev, moves)
		case chess.Knight:
			moves = stepMoves(b, side, pos, knightOffsets, moves)
		case chess.King:
			moves = stepMoves(b, side, pos, kingOffsets, moves)
		case chess.Bishop:
			moves = slideMoves(b, side, pos, diagonalDirs, moves)
		case chess.Rook:
			moves = slideMoves(b, side, pos, straightDirs, moves)
		case chess.Queen:
			moves = slideMoves(b, side, pos, diagonalDirs, moves)
			moves = slideMoves(b, side, pos, straightDirs, moves)
		}
	}
	if castles {
		moves = r.castleMoves(b, side, moves)
	}
	return moves
}

// newMove builds a move record from the current contents of b.
func newMove(b *chess.Board, side chess.Colour, from, to int, special chess.Special) chess.Move {
	return chess.Move{
		Side:          side,
		From:          from,
		To:            to,
		Special:       special,
		Moved:         b.Side(side)[from],
		Captured:      b.Side(side.Opposite())[to],
		CapturedAt:    to,
		HalfMoveClock: b.HalfMoveClock,
	}
}

// pushLimit returns the configured push limit, defaulting to standard chess.
func (r Rules) pushLimit() int {
	if r.PushLimit < 1 {
		return DefaultPushLimit
	}
	return r.PushLimit
}

// pawnMoves generates pushes, captures and en passant for the pawn on pos.
func (r Rules) pawnMoves(b *chess.Board, side chess.Colour, pos int, prev *chess.Move, moves []chess.Move) []chess.Move {
	enemies := b.Side(side.Opposite())
	dir := chess.ColourOffset(side)
	rank, file := b.RankOf(pos), b.FileOf(pos)
	forward := rank + dir

	if b.InBounds(forward, file) {
		to := b.Pos(forward, file)
		if !b.Occupied(to) {
			moves = addPawnMove(b, newMove(b, side, pos, to, chess.Normal), moves)

			// Multi-step push from the starting square
			if b.Side(side)[pos].Virgin {
				for step := 2; step <= r.pushLimit(); step++ {
					if !b.InBounds(rank+dir*step, file) {
						break
					}
					to = b.Pos(rank+dir*step, file)
					if b.Occupied(to) {
						break
					}
					moves = addPawnMove(b, newMove(b, side, pos, to, chess.DoublePush), moves)
				}
			}
		}
	}

	// Captures
	for df := -1; df <= 1; df += 2 {
		if !b.InBounds(forward, file+df) {
			continue
		}
		to := b.Pos(forward, file+df)
		if !enemies[to].Empty() {
			moves = addPawnMove(b, newMove(b, side, pos, to, chess.Normal), moves)
		}
	}

	// En passant: the previous move pushed an enemy pawn alongside this one.
	if prev != nil && prev.Special == chess.DoublePush && prev.Side != side {
		victim := prev.To
		if b.RankOf(victim) == rank && abs(b.FileOf(victim)-file) == 1 && enemies[victim].Is(chess.Pawn) &&
			b.InBounds(forward, b.FileOf(victim)) {
			to := b.Pos(forward, b.FileOf(victim))
			if !b.Occupied(to) {
				m := newMove(b, side, pos, to, chess.EnPassant)
				m.Captured = enemies[victim]
				m.CapturedAt = victim
				moves = addPawnMove(b, m, moves)
			}
		}
	}

	return moves
}

// addPawnMove appends m, expanding it into one move per promotion piece
// when it reaches the far rank.
func addPawnMove(b *chess.Board, m chess.Move, moves []chess.Move) []chess.Move {
	if b.RankOf(m.To) != b.FarRank(m.Side) {
		return append(moves, m)
	}
	for _, promo := range chess.PromotionPieces {
		m.Promotion = promo
		moves = append(moves, m)
	}
	return moves
}

// stepMoves generates knight or king moves from a fixed offset table.
func stepMoves(b *chess.Board, side chess.Colour, pos int, offsets [][2]int, moves []chess.Move) []chess.Move {
	allies := b.Side(side)
	rank, file := b.RankOf(pos), b.FileOf(pos)
	for _, off := range offsets {
		f, r := file+off[0], rank+off[1]
		if !b.InBounds(r, f) {
			continue
		}
		to := b.Pos(r, f)
		if !allies[to].Empty() {
			continue
		}
		moves = append(moves, newMove(b, side, pos, to, chess.Normal))
	}
	return moves
}

// slideMoves casts rays from pos until they leave the board or hit a piece.
// A ray ends on an enemy piece (capture) or just before an allied one.
func slideMoves(b *chess.Board, side chess.Colour, pos int, dirs [][2]int, moves []chess.Move) []chess.Move {
	allies := b.Side(side)
	enemies := b.Side(side.Opposite())
	rank, file := b.RankOf(pos), b.FileOf(pos)
	for _, dir := range dirs {
		f, r := file+dir[0], rank+dir[1]
		for b.InBounds(r, f) {
			to := b.Pos(r, f)
			if !allies[to].Empty() {
				break
			}
			moves = append(moves, newMove(b, side, pos, to, chess.Normal))
			if !enemies[to].Empty() {
				break
			}
			f += dir[0]
			r += dir[1]
		}
	}
	return moves
}

// castleMoves generates one move per castle-map pairing whose king and rook
// are unmoved, with nothing standing between or on their destinations, while
// the king is not in check. Attacks on the king's path are left to the
// legality filter.
func (r Rules) castleMoves(b *chess.Board, side chess.Colour, moves []chess.Move) []chess.Move {
	allies := b.Side(side)
	for king, sq := range allies {
		if !sq.Is(chess.King) || !sq.Virgin || len(b.Castles[king]) == 0 {
			continue
		}
		checked := false
		inCheck := false
		for _, rook := range b.Castles[king] {
			if !allies[rook].Is(chess.Rook) || !allies[rook].Virgin {
				continue
			}
			kingTo, rookTo, ok := r.castleTargets(b, king, rook)
			if !ok || !castleSpanClear(b, king, rook, kingTo, rookTo) {
				continue
			}
			if !checked {
				inCheck = SquareAttacked(b, king, side.Opposite())
				checked = true
			}
			if inCheck {
				break
			}
			moves = append(moves, chess.Move{
				Side:          side,
				From:          king,
				To:            kingTo,
				Special:       chess.Castle,
				Moved:         sq,
				CapturedAt:    kingTo,
				RookFrom:      rook,
				RookTo:        rookTo,
				HalfMoveClock: b.HalfMoveClock,
			})
		}
	}
	return moves
}

// castleTargets returns where king and rook land when castling together.
func (r Rules) castleTargets(b *chess.Board, king, rook int) (int, int, bool) {
	rank := b.RankOf(king)
	kingFile, rookFile := b.FileOf(king), b.FileOf(rook)
	dir := sign(rookFile - kingFile)

	if r.Castle960 {
		kingTo, rookTo := 2, 3
		if dir > 0 {
			kingTo, rookTo = b.Files()-2, b.Files()-3
		}
		if !b.InBounds(rank, kingTo) || !b.InBounds(rank, rookTo) || kingTo == rookTo {
			return 0, 0, false
		}
		return b.Pos(rank, kingTo), b.Pos(rank, rookTo), true
	}

	step := abs(rookFile - kingFile)
	if step > 2 {
		step = 2
	}
	kingTo := kingFile + dir*step
	return b.Pos(rank, kingTo), b.Pos(rank, kingTo-dir), true
}

// castleSpanClear checks that every square covered by the king and rook
// moves, apart from the two castling pieces themselves, is empty.
func castleSpanClear(b *chess.Board, king, rook, kingTo, rookTo int) bool {
	lo, hi := king, king
	for _, pos := range []int{rook, kingTo, rookTo} {
		if pos < lo {
			lo = pos
		}
		if pos > hi {
			hi = pos
		}
	}
	for pos := lo; pos <= hi; pos++ {
		if pos != king && pos != rook && b.Occupied(pos) {
			return false
		}
	}
	return true
}
