package oracle

import (
	"github.com/dylhunn/dragontoothmg"
)

// Perft counts the leaves of the legal move tree of fen with dragontoothmg.
func Perft(fen string, depth int) (uint64, error) {
	std, err := StandardFEN(fen)
	if err != nil {
		return 0, err
	}
	if depth <= 0 {
		return 1, nil
	}
	board := dragontoothmg.ParseFen(std)
	return perft(&board, depth), nil
}

// PerftDivide returns the dragontoothmg count below each legal move, keyed by
// coordinate notation such as "e2e4" or "a7a8q".
func PerftDivide(fen string, depth int) (map[string]uint64, error) {
	std, err := StandardFEN(fen)
	if err != nil {
		return nil, err
	}
	out := make(map[string]uint64)
	if depth < 1 {
		return out, nil
	}
	board := dragontoothmg.ParseFen(std)
	for _, m := range board.GenerateLegalMoves() {
		unapply := board.Apply(m)
		out[m.String()] = perft(&board, depth-1)
		unapply()
	}
	return out, nil
}

func perft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += perft(b, depth-1)
		unapply()
	}
	return nodes
}
