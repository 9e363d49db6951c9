package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// applyMove plays a generated move on the board. The move is trusted:
// callers only pass moves produced by the generator for this position.
func applyMove(b *chess.Board, m *chess.Move) {
	allies := b.Side(m.Side)

	switch m.Special {
	case chess.Castle:
		king := allies[m.From]
		rook := allies[m.RookFrom]
		// Clear both origins first: the destinations may overlap them.
		allies[m.From] = chess.Square{}
		allies[m.RookFrom] = chess.Square{}
		allies[m.To] = king.Moved()
		allies[m.RookTo] = rook.Moved()

	default:
		if m.IsCapture() {
			b.Side(m.Side.Opposite())[m.CapturedAt] = chess.Square{}
		}
		allies[m.From] = chess.Square{}
		if m.IsPromotion() {
			allies[m.To] = chess.Square{Kind: m.Promotion}
		} else {
			allies[m.To] = m.Moved.Moved()
		}
	}

	if m.ResetsClock() {
		b.HalfMoveClock = 0
	} else {
		b.HalfMoveClock++
	}
	b.Ply++
}

// undoMove reverses applyMove using the fields stored in the move record.
func undoMove(b *chess.Board, m *chess.Move) {
	allies := b.Side(m.Side)

	switch m.Special {
	case chess.Castle:
		rook := allies[m.RookTo]
		allies[m.To] = chess.Square{}
		allies[m.RookTo] = chess.Square{}
		allies[m.From] = m.Moved
		allies[m.RookFrom] = chess.Square{Kind: rook.Kind, Virgin: true}

	default:
		allies[m.To] = chess.Square{}
		allies[m.From] = m.Moved
		if m.IsCapture() {
			b.Side(m.Side.Opposite())[m.CapturedAt] = m.Captured
		}
	}

	b.HalfMoveClock = m.HalfMoveClock
	b.Ply--
}
