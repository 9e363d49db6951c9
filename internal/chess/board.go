package chess

import (
	"sort"
	"strconv"
)

// Board represents a rectangular chess board with all state needed for move generation.
type Board struct {
	// Board dimensions, fixed at construction.
	files int
	ranks int

	// Occupancy per side indexed by rank*files + file.
	// A position is never occupied in both arrays at once.
	White []Square
	Black []Square

	// Castles maps a king's home position to the rook positions it was
	// paired with when the position was set up. It is not modified after
	// setup; whether a pairing is still usable is read from the Virgin flags.
	Castles map[int][]int

	// The half-move clock since the last pawn move or capture.
	HalfMoveClock int

	// Plies played since the start of the game. White moves on even plies.
	Ply int
}

// NewBoard creates an empty board of the given dimensions.
// Callers validate the dimensions with ValidDimensions first.
func NewBoard(files, ranks int) *Board {
	return &Board{
		files:   files,
		ranks:   ranks,
		White:   make([]Square, files*ranks),
		Black:   make([]Square, files*ranks),
		Castles: make(map[int][]int),
	}
}

// Files returns the number of files.
func (b *Board) Files() int { return b.files }

// Ranks returns the number of ranks.
func (b *Board) Ranks() int { return b.ranks }

// Size returns the number of positions on the board.
func (b *Board) Size() int { return b.files * b.ranks }

// Pos returns the position index of the given rank and file.
func (b *Board) Pos(rank, file int) int {
	return rank*b.files + file
}

// RankOf returns the zero-based rank of a position.
func (b *Board) RankOf(pos int) int {
	return pos / b.files
}

// FileOf returns the zero-based file of a position.
func (b *Board) FileOf(pos int) int {
	return pos % b.files
}

// InBounds returns true if rank and file lie on the board.
func (b *Board) InBounds(rank, file int) bool {
	return file >= 0 && file < b.files && rank >= 0 && rank < b.ranks
}

// Occupied returns true if either side has a piece on pos.
func (b *Board) Occupied(pos int) bool {
	return !b.White[pos].Empty() || !b.Black[pos].Empty()
}

// Side returns the occupancy array of the given colour.
func (b *Board) Side(c Colour) []Square {
	if c == White {
		return b.White
	}
	return b.Black
}

// SideToMove returns the colour to move, derived from the ply counter.
func (b *Board) SideToMove() Colour {
	if b.Ply%2 == 0 {
		return White
	}
	return Black
}

// HomeRank returns the back rank of the given colour.
func (b *Board) HomeRank(c Colour) int {
	if c == White {
		return 0
	}
	return b.ranks - 1
}

// PawnRank returns the rank on which the given colour's pawns start.
func (b *Board) PawnRank(c Colour) int {
	if c == White {
		return 1
	}
	return b.ranks - 2
}

// FarRank returns the rank on which the given colour's pawns promote.
func (b *Board) FarRank(c Colour) int {
	return b.HomeRank(c.Opposite())
}

// Kings returns the positions of all kings of the given colour.
func (b *Board) Kings(c Colour) []int {
	var kings []int
	for pos, sq := range b.Side(c) {
		if sq.Is(King) {
			kings = append(kings, pos)
		}
	}
	return kings
}

// AddCastle registers a king/rook pairing, keeping rook positions sorted and unique.
func (b *Board) AddCastle(king, rook int) {
	rooks := b.Castles[king]
	for _, r := range rooks {
		if r == rook {
			return
		}
	}
	rooks = append(rooks, rook)
	sort.Ints(rooks)
	b.Castles[king] = rooks
}

// SquareName returns the name of a position, e.g. "e4" or "b10".
func (b *Board) SquareName(pos int) string {
	return FileName(b.FileOf(pos)) + RankName(b.RankOf(pos))
}

// FileName returns the letter of a zero-based file.
func FileName(file int) string {
	return string(rune(FileBase + file))
}

// RankName returns the one-based decimal name of a zero-based rank.
func RankName(rank int) string {
	return strconv.Itoa(rank + 1)
}

// ParseSquare converts a square name into a position on b.
func (b *Board) ParseSquare(name string) (int, bool) {
	if len(name) < 2 {
		return 0, false
	}
	file := int(name[0]) - FileBase
	rank, err := strconv.Atoi(name[1:])
	if err != nil || name[1] == '0' || name[1] == '+' || name[1] == '-' {
		return 0, false
	}
	rank--
	if !b.InBounds(rank, file) {
		return 0, false
	}
	return b.Pos(rank, file), true
}

// Clone creates a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{
		files:         b.files,
		ranks:         b.ranks,
		White:         append([]Square(nil), b.White...),
		Black:         append([]Square(nil), b.Black...),
		Castles:       make(map[int][]int, len(b.Castles)),
		HalfMoveClock: b.HalfMoveClock,
		Ply:           b.Ply,
	}
	for king, rooks := range b.Castles {
		c.Castles[king] = append([]int(nil), rooks...)
	}
	return c
}
