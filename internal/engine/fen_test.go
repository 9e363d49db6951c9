package engine

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestFENRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"initial position", InitialFEN},
		{"black to move with en passant", "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b AHah e3 0 2"},
		{"clocks", "4k3/8/8/8/8/8/8/4K3 w - - 37 60"},
		{"ten files", "r3k4r/10/10/10/10/10/10/R3K4R w AJaj - 0 1"},
		{"twelve ranks", "4k3/8/8/8/8/8/8/8/8/8/8/4K3 b - - 12 40"},
		{"widest board", "k22/23/23/23/23/23/23/22K w - - 0 1"},
		{"two ranks", "k1K/3 w - - 0 1"},
		{"two kings sharing a rook", "8/8/8/8/8/8/8/RK2R1KR w AEH - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, root, err := ParseFEN(tt.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q) error: %v", tt.fen, err)
			}
			got, err := BoardToFEN(board, &root)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.fen)
		})
	}
}

func TestFENNormalises(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want string
	}{
		{
			name: "KQkq shorthand",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			want: "r3k2r/8/8/8/8/8/8/R3K2R w AHah - 0 1",
		},
		{
			name: "partial shorthand",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b Kq - 5 20",
			want: "r3k2r/8/8/8/8/8/8/R3K2R b Ha - 5 20",
		},
		{
			name: "unsorted letters",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w haHA - 0 1",
			want: "r3k2r/8/8/8/8/8/8/R3K2R w AHah - 0 1",
		},
		{
			name: "missing clocks",
			fen:  "4k3/8/8/8/8/8/8/4K3 w - -",
			want: "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
		},
		{
			name: "missing fullmove",
			fen:  "4k3/8/8/8/8/8/8/4K3 b - - 7",
			want: "4k3/8/8/8/8/8/8/4K3 b - - 7 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, root, err := ParseFEN(tt.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q) error: %v", tt.fen, err)
			}
			got, err := BoardToFEN(board, &root)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestParseFENState(t *testing.T) {
	board, root, err := ParseFEN(InitialFEN)
	if err != nil {
		t.Fatalf("ParseFEN() error: %v", err)
	}

	testutil.AssertEqual(t, board.Files(), 8)
	testutil.AssertEqual(t, board.Ranks(), 8)
	testutil.AssertEqual(t, board.Ply, 0)
	testutil.AssertEqual(t, board.HalfMoveClock, 0)
	testutil.AssertEqual(t, root.Special, chess.Sentinel)
	testutil.AssertEqual(t, board.Castles, map[int][]int{4: {0, 7}, 60: {56, 63}})

	square := func(c chess.Colour, name string) chess.Square {
		t.Helper()
		pos, ok := board.ParseSquare(name)
		if !ok {
			t.Fatalf("ParseSquare(%q) failed", name)
		}
		return board.Side(c)[pos]
	}
	testutil.AssertEqual(t, square(chess.White, "e1"), chess.Square{Kind: chess.King, Virgin: true})
	testutil.AssertEqual(t, square(chess.White, "a1"), chess.Square{Kind: chess.Rook, Virgin: true})
	testutil.AssertEqual(t, square(chess.White, "b1"), chess.Square{Kind: chess.Knight})
	testutil.AssertEqual(t, square(chess.White, "e2"), chess.Square{Kind: chess.Pawn, Virgin: true})
	testutil.AssertEqual(t, square(chess.Black, "d7"), chess.Square{Kind: chess.Pawn, Virgin: true})
	testutil.AssertEqual(t, square(chess.Black, "h8"), chess.Square{Kind: chess.Rook, Virgin: true})
	testutil.AssertEqual(t, square(chess.Black, "e2"), chess.Square{})
}

func TestParseFENVirginFlags(t *testing.T) {
	board, _, err := ParseFEN("r3k3/8/8/8/4P3/8/3P4/R3K2R w A - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN() error: %v", err)
	}
	tests := []struct {
		colour chess.Colour
		square string
		want   bool
	}{
		{chess.White, "d2", true},
		{chess.White, "e4", false},
		{chess.White, "a1", true},
		{chess.White, "h1", false}, // no castling letter
		{chess.White, "e1", true},
		{chess.Black, "a8", false},
		{chess.Black, "e8", true},
	}
	for _, tt := range tests {
		pos, _ := board.ParseSquare(tt.square)
		testutil.AssertEqual(t, board.Side(tt.colour)[pos].Virgin, tt.want, "%s %s", tt.colour, tt.square)
	}
	testutil.AssertEqual(t, board.Castles, map[int][]int{4: {0}})
}

func TestParseFENPly(t *testing.T) {
	tests := []struct {
		fen  string
		want int
	}{
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 1", 0},
		{"4k3/8/8/8/8/8/8/4K3 b - - 0 1", 1},
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 3", 4},
		{"4k3/8/8/8/8/8/8/4K3 b - - 0 10", 19},
	}
	for _, tt := range tests {
		board, _, err := ParseFEN(tt.fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q) error: %v", tt.fen, err)
		}
		testutil.AssertEqual(t, board.Ply, tt.want, tt.fen)
	}
}

func TestParseFENSharedRook(t *testing.T) {
	board, _, err := ParseFEN("8/8/8/8/8/8/8/RK2R1KR w AEH - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN() error: %v", err)
	}
	// Each rook pairs with the nearest king on either side.
	testutil.AssertEqual(t, board.Castles, map[int][]int{1: {0, 4}, 6: {4, 7}})
}

// A king that has moved and come back is read as unmoved, so a rook it
// shares with another king is paired with it again.
func TestFENRoundTripReturnedKing(t *testing.T) {
	e, err := NewStandard("k7/8/8/8/8/8/8/1K2R1K1 w E - 0 1")
	if err != nil {
		t.Fatalf("NewStandard() error: %v", err)
	}
	for _, m := range []string{"Kg2", "Kb8", "Kg1", "Ka8"} {
		if err := e.PlayMove(m); err != nil {
			t.Fatalf("PlayMove(%q) error: %v", m, err)
		}
	}
	fen, err := e.FEN()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, fen, "k7/8/8/8/8/8/8/1K2R1K1 w E - 4 3")
	testutil.AssertTrue(t, e.IsLegal(CastleShort), "b1 king keeps its castle")
	testutil.AssertFalse(t, e.IsLegal(CastleLong), "g1 king has moved")

	decoded, err := NewStandard(fen)
	testutil.AssertNoError(t, err)
	again, err := decoded.FEN()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, again, fen)
	testutil.AssertTrue(t, decoded.IsLegal(CastleLong), "decoded g1 king is unmoved")
	testutil.AssertEqual(t, len(decoded.LegalMoves()), len(e.LegalMoves())+1)
}

func TestParseFENEnPassantRoot(t *testing.T) {
	board, root, err := ParseFEN("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b AHah e3 0 2")
	if err != nil {
		t.Fatalf("ParseFEN() error: %v", err)
	}
	e2, _ := board.ParseSquare("e2")
	e4, _ := board.ParseSquare("e4")

	testutil.AssertEqual(t, root.Special, chess.DoublePush)
	testutil.AssertEqual(t, root.Side, chess.White)
	testutil.AssertEqual(t, root.From, e2)
	testutil.AssertEqual(t, root.To, e4)
}

func TestParseFENErrors(t *testing.T) {
	thirteenRanks := strings.Repeat("8/", 12) + "8 w - - 0 1"

	tests := []struct {
		name string
		fen  string
	}{
		{"empty string", ""},
		{"too few fields", "8/8/8/8/8/8/8/8 w"},
		{"too many fields", "4k3/8/8/8/8/8/8/4K3 w - - 0 1 extra"},
		{"unknown piece", "4x3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"short rank", "4k3/8/8/8/8/8/8/4K2 w - - 0 1"},
		{"long rank", "4k3/8/8/8/8/8/8/4K4 w - - 0 1"},
		{"zero run", "4k3/8/8/8/8/8/8/4K3/0 w - - 0 1"},
		{"digits read as one run", "4k3/8/8/8/8/8/8/2112K3 w - - 0 1"},
		{"too many files", "24/24 w - - 0 1"},
		{"too many ranks", thirteenRanks},
		{"single rank", "4k3 w - - 0 1"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"castling without rook", "4k3/8/8/8/8/8/8/4K3 w H - 0 1"},
		{"castling without king", "r6r/8/8/8/8/8/8/R6R w AH - 0 1"},
		{"castling digit", "4k3/8/8/8/8/8/8/R3K3 w A1 - 0 1"},
		{"shorthand without rook", "4k3/8/8/8/8/8/8/4K3 w K - 0 1"},
		{"en passant off board", "4k3/8/8/8/8/8/8/4K3 w - e9 0 1"},
		{"en passant without pawn", "4k3/8/8/8/8/8/8/4K3 b - e3 0 1"},
		{"en passant on back rank", "4k3/8/8/8/8/8/8/4K3 b - e1 0 1"},
		{"en passant zero rank", "4k3/8/8/8/4P3/8/8/4K3 b - e03 0 1"},
		{"negative halfmove", "4k3/8/8/8/8/8/8/4K3 w - - -1 1"},
		{"text halfmove", "4k3/8/8/8/8/8/8/4K3 w - - x 1"},
		{"zero fullmove", "4k3/8/8/8/8/8/8/4K3 w - - 0 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)

			var fe *errors.FENError
			testutil.AssertTrue(t, stderrors.As(err, &fe), "error %v is not a FENError", err)
		})
	}
}

func TestParseFENErrorLocation(t *testing.T) {
	_, _, err := ParseFEN("4k3/8/8/8/8/8/8/4Kz2 w - - 0 1")
	var fe *errors.FENError
	if !stderrors.As(err, &fe) {
		t.Fatalf("ParseFEN() error = %v, want FENError", err)
	}
	testutil.AssertEqual(t, fe.Field, "placement")
	testutil.AssertEqual(t, fe.Got, "z")
	testutil.AssertEqual(t, fe.Index, len("4k3/8/8/8/8/8/8/4K"))
}

func TestBoardToFENDualOccupancy(t *testing.T) {
	board := chess.NewBoard(8, 8)
	board.White[0] = chess.Square{Kind: chess.Rook}
	board.Black[0] = chess.Square{Kind: chess.Rook}

	_, err := BoardToFEN(board, nil)
	testutil.AssertErrorIs(t, err, errors.ErrInternalInvariant)
}
