package engine

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Castling notation.
const (
	CastleShort = "O-O"
	CastleLong  = "O-O-O"
)

// BaseNotation returns the algebraic notation of m without disambiguation.
func BaseNotation(b *chess.Board, m *chess.Move) string {
	if m.IsCastle() {
		if b.FileOf(m.RookFrom) > b.FileOf(m.From) {
			return CastleShort
		}
		return CastleLong
	}

	var sb strings.Builder
	if m.Moved.Is(chess.Pawn) {
		if m.IsCapture() {
			sb.WriteString(chess.FileName(b.FileOf(m.From)))
			sb.WriteByte('x')
		}
		sb.WriteString(b.SquareName(m.To))
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter())
		}
		return sb.String()
	}

	sb.WriteByte(m.Moved.Kind.Letter())
	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(b.SquareName(m.To))
	return sb.String()
}

// LegalMove pairs a legal move with its unique notation.
type LegalMove struct {
	Notation string
	Move     chess.Move
}

// LegalSet is the externally visible set of legal moves, keyed by notation.
// Moves keep the order in which they were generated.
type LegalSet struct {
	moves []LegalMove
	index map[string]int
}

// Len returns the number of legal moves.
func (s *LegalSet) Len() int {
	return len(s.moves)
}

// Lookup returns the move with the given notation.
func (s *LegalSet) Lookup(notation string) (chess.Move, bool) {
	i, ok := s.index[notation]
	if !ok {
		return chess.Move{}, false
	}
	return s.moves[i].Move, true
}

// Moves returns the legal moves in generation order.
func (s *LegalSet) Moves() []LegalMove {
	return s.moves
}

// Notations returns the notation keys in generation order.
func (s *LegalSet) Notations() []string {
	out := make([]string, len(s.moves))
	for i, lm := range s.moves {
		out[i] = lm.Notation
	}
	return out
}

// FindLegalMoves names every legal move, disambiguating moves that share a
// base notation by the smallest source coordinate that tells them apart.
func FindLegalMoves(b *chess.Board, legal []chess.Move) *LegalSet {
	bases := make([]string, len(legal))
	groups := make(map[string][]int, len(legal))
	for i := range legal {
		bases[i] = BaseNotation(b, &legal[i])
		groups[bases[i]] = append(groups[bases[i]], i)
	}

	set := &LegalSet{
		moves: make([]LegalMove, 0, len(legal)),
		index: make(map[string]int, len(legal)),
	}
	for i := range legal {
		notation := bases[i]
		if group := groups[notation]; len(group) > 1 {
			notation = disambiguate(b, legal, group, i, notation)
		}
		set.index[notation] = len(set.moves)
		set.moves = append(set.moves, LegalMove{Notation: notation, Move: legal[i]})
	}
	return set
}

// disambiguate inserts the source file, rank, or both of legal[i] into its
// base notation: the file if no colliding move shares it, otherwise the rank
// if no colliding move shares that, otherwise both.
func disambiguate(b *chess.Board, legal []chess.Move, group []int, i int, base string) string {
	file, rank := b.FileOf(legal[i].From), b.RankOf(legal[i].From)
	repeatFile, repeatRank := false, false
	for _, j := range group {
		if j == i {
			continue
		}
		repeatFile = repeatFile || b.FileOf(legal[j].From) == file
		repeatRank = repeatRank || b.RankOf(legal[j].From) == rank
	}

	var coord string
	switch {
	case !repeatFile:
		coord = chess.FileName(file)
	case !repeatRank:
		coord = chess.RankName(rank)
	default:
		coord = chess.FileName(file) + chess.RankName(rank)
	}

	// Castles have no piece letter; the coordinate of the king leads.
	at := 1
	if legal[i].IsCastle() {
		at = 0
	}
	return base[:at] + coord + base[at:]
}
