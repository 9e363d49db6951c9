package chess

// Special categorizes the board effect of a move.
type Special int

const (
	// Sentinel marks the history root. Move generation never produces it.
	Sentinel Special = iota
	Normal
	Castle
	DoublePush
	EnPassant
)

// String returns the name of a move kind.
func (s Special) String() string {
	names := []string{"Sentinel", "Normal", "Castle", "DoublePush", "EnPassant"}
	if int(s) >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// Move records everything needed to apply a move and to take it back.
type Move struct {
	// Side that made the move.
	Side Colour

	// Source and target positions. For castling these are the king's squares.
	From int
	To   int

	Special Special

	// The piece as it stood before moving, Virgin flag included.
	Moved Square

	// The captured piece (Kind None if not a capture) and where it stood.
	// CapturedAt differs from To only for en passant.
	Captured   Square
	CapturedAt int

	// The piece promoted to (None if not a promotion).
	Promotion Piece

	// Rook squares of a castling move.
	RookFrom int
	RookTo   int

	// Half-move clock immediately before this move.
	HalfMoveClock int
}

// IsCapture returns true if this move removes an enemy piece.
func (m *Move) IsCapture() bool {
	return !m.Captured.Empty()
}

// IsPromotion returns true if this move is a pawn promotion.
func (m *Move) IsPromotion() bool {
	return m.Promotion != None
}

// IsCastle returns true if this move is a castling move.
func (m *Move) IsCastle() bool {
	return m.Special == Castle
}

// IsSentinel returns true if this is the history root placeholder.
func (m *Move) IsSentinel() bool {
	return m.Special == Sentinel
}

// ResetsClock returns true if the move resets the half-move clock.
func (m *Move) ResetsClock() bool {
	return m.Moved.Is(Pawn) || m.IsCapture()
}
