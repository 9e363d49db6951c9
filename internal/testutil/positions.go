package testutil

import "testing"

// Position is a well-known test position with its perft node counts.
// Nodes[i] is the count at depth i+1.
type Position struct {
	Name  string
	FEN   string
	Nodes []uint64
}

// Well-known positions. Castling rights use the KQkq shorthand where the
// position is standard chess, so the reference generators can read them.
var (
	StartPosition = Position{
		Name:  "start",
		FEN:   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		Nodes: []uint64{20, 400, 8902, 197281},
	}

	Kiwipete = Position{
		Name:  "kiwipete",
		FEN:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		Nodes: []uint64{48, 2039, 97862},
	}

	RookEndgame = Position{
		Name:  "rook endgame",
		FEN:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		Nodes: []uint64{14, 191, 2812, 43238},
	}

	Promotions = Position{
		Name:  "promotions",
		FEN:   "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		Nodes: []uint64{6, 264, 9467},
	}

	Discovered = Position{
		Name:  "discovered check",
		FEN:   "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		Nodes: []uint64{44, 1486, 62379},
	}

	EnPassant = Position{
		Name:  "en passant",
		FEN:   "k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
		Nodes: []uint64{5, 19},
	}

	Underpromotion = Position{
		Name:  "underpromotion",
		FEN:   "1n5k/P7/8/8/8/8/8/7K w - - 0 1",
		Nodes: []uint64{11},
	}
)

// PerftPositions lists every position with known perft counts.
var PerftPositions = []Position{
	StartPosition,
	Kiwipete,
	RookEndgame,
	Promotions,
	Discovered,
	EnPassant,
	Underpromotion,
}

// MaxDepth returns the deepest depth worth running for p. In short mode
// counts above limit nodes are skipped.
func (p Position) MaxDepth(t testing.TB, limit uint64) int {
	t.Helper()
	depth := 0
	for i, n := range p.Nodes {
		if testing.Short() && n > limit {
			break
		}
		depth = i + 1
	}
	return depth
}
