// Package chess provides core chess types for rectangular boards of up to 23x12 squares.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece kind.
type Piece int

const (
	None Piece = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"None", "Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}
	if int(p) >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'R', 'N', 'B', 'Q', 'K'}
	if int(p) >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromLetter converts a piece letter of either case to a piece kind.
// It returns None for anything that is not a piece letter.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return None
	}
}

// PromotionPieces lists the kinds a pawn may promote to, in generation order.
var PromotionPieces = []Piece{Knight, Bishop, Rook, Queen}

// Board dimension limits. Files are lettered 'a'..'w'.
const (
	MaxFiles = 23
	MaxRanks = 12

	FileBase = 'a'
)

// Square is the occupant of one board position for one side.
// Virgin marks a piece that has not moved yet: it enables the multi-step
// pawn push and castling.
type Square struct {
	Kind   Piece
	Virgin bool
}

// Empty returns true if no piece occupies the square.
func (s Square) Empty() bool {
	return s.Kind == None
}

// Is returns true if the square holds the given piece kind.
func (s Square) Is(kind Piece) bool {
	return s.Kind == kind
}

// Moved returns the square as it looks after its piece has moved.
func (s Square) Moved() Square {
	return Square{Kind: s.Kind}
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// ValidDimensions reports whether a board of the given size is supported.
func ValidDimensions(files, ranks int) bool {
	return files >= 1 && files <= MaxFiles && ranks >= 2 && ranks <= MaxRanks
}
