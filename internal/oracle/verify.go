package oracle

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Report compares the engine with the reference generators on one position.
type Report struct {
	FEN       string
	Depth     int
	Nodes     uint64
	Reference uint64
	Missing   []string // Reference moves the engine does not generate
	Extra     []string // Engine moves the reference does not know
}

// OK returns true if the node counts and the move sets agree.
func (r Report) OK() bool {
	return r.Nodes == r.Reference && len(r.Missing) == 0 && len(r.Extra) == 0
}

// String returns a one-line summary of the report.
func (r Report) String() string {
	if r.OK() {
		return fmt.Sprintf("ok depth %d nodes %d", r.Depth, r.Nodes)
	}
	return fmt.Sprintf("MISMATCH depth %d nodes %d reference %d missing %v extra %v",
		r.Depth, r.Nodes, r.Reference, r.Missing, r.Extra)
}

// Verify checks the current position of e: its legal moves against
// notnil/chess and its perft count at depth against dragontoothmg.
// The engine's position and history are left unchanged.
func Verify(e *engine.Engine, depth int) (Report, error) {
	if !Supported(e.Rules()) {
		return Report{}, fmt.Errorf("push limit %d: %w", e.Rules().PushLimit, errors.ErrUnsupportedPosition)
	}
	fen, err := e.FEN()
	if err != nil {
		return Report{}, err
	}

	reference, err := Perft(fen, depth)
	if err != nil {
		return Report{}, err
	}
	notations, err := Notations(fen)
	if err != nil {
		return Report{}, errors.Wrap(err, "reference notation")
	}

	ours := e.LegalMoves()
	return Report{
		FEN:       fen,
		Depth:     depth,
		Nodes:     e.Perft(depth),
		Reference: reference,
		Missing:   difference(notations, ours),
		Extra:     difference(ours, notations),
	}, nil
}

// difference returns the elements of a that are not in b.
func difference(a, b []string) []string {
	in := make(map[string]bool, len(b))
	for _, s := range b {
		in[s] = true
	}
	var out []string
	for _, s := range a {
		if !in[s] {
			out = append(out, s)
		}
	}
	return out
}
