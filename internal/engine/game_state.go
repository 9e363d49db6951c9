package engine

// FiftyMovePlies is the half-move clock value at which the fifty-move rule applies.
const FiftyMovePlies = 100

// Status describes whether the game can continue.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	FiftyMoveDraw
)

// String returns the name of a status.
func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case FiftyMoveDraw:
		return "fifty-move draw"
	default:
		return "ongoing"
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func (e *Engine) IsCheckmate() bool {
	return e.legal.Len() == 0 && e.InCheck()
}

// IsStalemate returns true if the position is stalemate for the side to move.
func (e *Engine) IsStalemate() bool {
	return e.legal.Len() == 0 && !e.InCheck()
}

// IsFiftyMoveDraw returns true once 100 plies have passed without a pawn move or capture.
func (e *Engine) IsFiftyMoveDraw() bool {
	return e.board.HalfMoveClock >= FiftyMovePlies
}

// Status reports the terminal state of the current position. Mate and
// stalemate take precedence over the fifty-move rule.
func (e *Engine) Status() Status {
	switch {
	case e.IsCheckmate():
		return Checkmate
	case e.IsStalemate():
		return Stalemate
	case e.IsFiftyMoveDraw():
		return FiftyMoveDraw
	default:
		return Ongoing
	}
}
