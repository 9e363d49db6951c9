package engine

// Perft counts the leaf positions of the legal move tree depth plies deep.
// Undone moves kept for redo survive the call.
func (e *Engine) Perft(depth int) uint64 {
	defer e.keepRedo()()
	return e.perft(depth)
}

func (e *Engine) perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	if depth == 1 {
		return uint64(e.legal.Len())
	}

	moves := e.legal.Moves()
	var nodes uint64
	for _, lm := range moves {
		e.play(lm.Move, lm.Notation)
		nodes += e.perft(depth - 1)
		_ = e.UndoLastMove()
	}
	return nodes
}

// PerftDivide returns the perft count below each legal move, keyed by notation.
func (e *Engine) PerftDivide(depth int) map[string]uint64 {
	defer e.keepRedo()()
	out := make(map[string]uint64, e.legal.Len())
	if depth < 1 {
		return out
	}
	for _, lm := range e.legal.Moves() {
		e.play(lm.Move, lm.Notation)
		out[lm.Notation] = e.perft(depth - 1)
		_ = e.UndoLastMove()
	}
	return out
}

// keepRedo saves the redo entries and returns a function restoring them.
func (e *Engine) keepRedo() func() {
	saved := append([]playedMove(nil), e.history[e.cursor:]...)
	return func() {
		e.history = append(e.history[:e.cursor], saved...)
	}
}
