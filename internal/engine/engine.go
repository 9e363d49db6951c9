package engine

import (
	"fmt"
	"unicode"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// playedMove is one entry of the game history.
type playedMove struct {
	move     chess.Move
	notation string
}

// Engine holds one game: the board, the moves played so far and the legal
// moves of the current position. It is not safe for concurrent use; perft
// and search mutate the board while they run.
type Engine struct {
	board  *chess.Board
	rules  Rules
	filter LegalityFilter

	// root stands before the first move. history[:cursor] has been played;
	// history[cursor:] holds undone moves available for redo.
	root    chess.Move
	history []playedMove
	cursor  int

	legal *LegalSet
}

// New creates an engine from a position string. pushLimit is the furthest
// an unmoved pawn may advance (0 selects the standard 2), castle960 selects
// Chess960 castling destinations.
func New(fen string, pushLimit int, castle960 bool) (*Engine, error) {
	board, root, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	if pushLimit < 0 {
		return nil, fmt.Errorf("push limit %d: %w", pushLimit, errors.ErrInvalidConfig)
	}

	rules := Rules{PushLimit: pushLimit, Castle960: castle960}
	e := &Engine{
		board:  board,
		rules:  rules,
		filter: ReplayFilter{Rules: rules},
		root:   root,
	}
	e.refresh()
	return e, nil
}

// NewStandard creates an engine with standard pawn pushes and castling.
func NewStandard(fen string) (*Engine, error) {
	return New(fen, DefaultPushLimit, false)
}

// prev returns the move that led to the current position.
func (e *Engine) prev() *chess.Move {
	if e.cursor == 0 {
		return &e.root
	}
	return &e.history[e.cursor-1].move
}

// refresh recomputes the legal moves of the current position.
func (e *Engine) refresh() {
	candidates := e.rules.GeneratePseudoLegal(e.board, e.board.SideToMove(), e.prev())
	e.legal = FindLegalMoves(e.board, e.filter.Legal(e.board, candidates))
}

// PlayMove plays the legal move with the given notation. A move that is not
// legal leaves the game untouched.
func (e *Engine) PlayMove(notation string) error {
	m, ok := e.legal.Lookup(notation)
	if !ok {
		return &errors.MoveError{Err: errors.ErrIllegalMove, Ply: e.board.Ply, MoveText: notation}
	}
	e.play(m, notation)
	return nil
}

// play applies a move taken from the legal set and discards any redo entries.
func (e *Engine) play(m chess.Move, notation string) {
	applyMove(e.board, &m)
	e.history = append(e.history[:e.cursor], playedMove{move: m, notation: notation})
	e.cursor++
	e.refresh()
}

// UndoLastMove takes back the most recent move.
func (e *Engine) UndoLastMove() error {
	if e.cursor == 0 {
		return &errors.MoveError{Err: errors.ErrNoMoveToUndo, Ply: e.board.Ply}
	}
	e.cursor--
	undoMove(e.board, &e.history[e.cursor].move)
	e.refresh()
	return nil
}

// RedoMove replays the most recently undone move.
func (e *Engine) RedoMove() error {
	if e.cursor == len(e.history) {
		return &errors.MoveError{Err: errors.ErrNoMoveToRedo, Ply: e.board.Ply}
	}
	applyMove(e.board, &e.history[e.cursor].move)
	e.cursor++
	e.refresh()
	return nil
}

// LegalMoves returns the notation of every legal move, sorted. An empty
// result means checkmate or stalemate; InCheck tells them apart.
func (e *Engine) LegalMoves() []string {
	keys := maps.Keys(e.legal.index)
	slices.Sort(keys)
	return keys
}

// IsLegal reports whether notation names a legal move.
func (e *Engine) IsLegal(notation string) bool {
	_, ok := e.legal.index[notation]
	return ok
}

// LastMoveCoordinates returns the last move as source and target squares,
// e.g. "e2e4" or "a7a8q". It returns "" before the first move.
func (e *Engine) LastMoveCoordinates() string {
	if e.cursor == 0 {
		return ""
	}
	m := &e.history[e.cursor-1].move
	coords := e.board.SquareName(m.From) + e.board.SquareName(m.To)
	if m.IsPromotion() {
		coords += string(unicode.ToLower(rune(m.Promotion.Letter())))
	}
	return coords
}

// FEN returns the current position as a position string.
func (e *Engine) FEN() (string, error) {
	return BoardToFEN(e.board, e.prev())
}

// MoveHistory returns the notation of every move played, oldest first.
func (e *Engine) MoveHistory() []string {
	out := make([]string, e.cursor)
	for i := range out {
		out[i] = e.history[i].notation
	}
	return out
}

// InCheck returns true if the side to move is in check.
func (e *Engine) InCheck() bool {
	return IsInCheck(e.board, e.board.SideToMove())
}

// SideToMove returns the colour to move.
func (e *Engine) SideToMove() chess.Colour {
	return e.board.SideToMove()
}

// Ply returns the number of plies since the start of the game.
func (e *Engine) Ply() int {
	return e.board.Ply
}

// HalfMoveClock returns the plies since the last pawn move or capture.
func (e *Engine) HalfMoveClock() int {
	return e.board.HalfMoveClock
}

// Files returns the number of files on the board.
func (e *Engine) Files() int {
	return e.board.Files()
}

// Ranks returns the number of ranks on the board.
func (e *Engine) Ranks() int {
	return e.board.Ranks()
}

// Rules returns the dialect switches the engine was created with.
func (e *Engine) Rules() Rules {
	return e.rules
}

// PositionKey returns a Zobrist key of the current position. The file of a
// preceding double push is part of the key.
func (e *Engine) PositionKey() uint64 {
	epFile := -1
	if prev := e.prev(); prev.Special == chess.DoublePush {
		epFile = e.board.FileOf(prev.To)
	}
	return hashing.PositionHash(e.board, epFile)
}
