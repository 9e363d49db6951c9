// Package engine provides chess move generation, legality checking and
// game history for rectangular boards of up to 23x12 squares.
package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position,
// with castling rights given per rook file.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w AHah - 0 1"

// ParseFEN decodes a position string into a board and the history root.
// The root is a Sentinel move unless the string names an en passant square,
// in which case it is a placeholder DoublePush so the first legal-move
// computation can offer the capture.
func ParseFEN(fen string) (*chess.Board, chess.Move, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, chess.Move{}, errors.NewFENError("", -1, "", fmt.Sprintf("expected 4 to 6 fields, got %d", len(parts)))
	}

	board, err := parsePlacement(parts[0])
	if err != nil {
		return nil, chess.Move{}, err
	}

	black, err := parseSideToMove(parts[1])
	if err != nil {
		return nil, chess.Move{}, err
	}

	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, chess.Move{}, err
	}

	halfMove, fullMove, err := parseClocks(parts)
	if err != nil {
		return nil, chess.Move{}, err
	}
	board.HalfMoveClock = halfMove
	board.Ply = 2 * (fullMove - 1)
	if black {
		board.Ply++
	}

	root, err := parseEnPassant(board, parts[3])
	if err != nil {
		return nil, chess.Move{}, err
	}
	root.HalfMoveClock = halfMove

	return board, root, nil
}

// placementWidth counts the files described by one rank of the placement field.
func placementWidth(row string) int {
	width := 0
	for i := 0; i < len(row); i++ {
		if isDigit(row[i]) {
			n, end := readNumber(row, i)
			width += n
			i = end - 1
			continue
		}
		width++
	}
	return width
}

// parsePlacement parses the piece placement field of a FEN string.
func parsePlacement(placement string) (*chess.Board, error) {
	rows := strings.Split(placement, "/")
	files := placementWidth(rows[0])
	ranks := len(rows)
	if !chess.ValidDimensions(files, ranks) {
		return nil, errors.NewFENError("placement", -1, "",
			fmt.Sprintf("board of %dx%d exceeds %dx%d", files, ranks, chess.MaxFiles, chess.MaxRanks))
	}

	board := chess.NewBoard(files, ranks)
	offset := 0
	for i, row := range rows {
		rank := ranks - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if isDigit(c) {
				n, end := readNumber(row, j)
				if n == 0 {
					return nil, errors.NewFENError("placement", offset+j, row[j:end], "empty run of zero squares")
				}
				file += n
				j = end - 1
				continue
			}

			piece := chess.PieceFromLetter(c)
			if piece == chess.None {
				return nil, errors.NewFENError("placement", offset+j, string(c), "unexpected character")
			}
			if file < files {
				colour := chess.White
				if unicode.IsLower(rune(c)) {
					colour = chess.Black
				}
				sq := chess.Square{Kind: piece}
				switch piece {
				case chess.King:
					sq.Virgin = true
				case chess.Pawn:
					sq.Virgin = rank == board.PawnRank(colour)
				}
				board.Side(colour)[board.Pos(rank, file)] = sq
			}
			file++
		}
		if file != files {
			return nil, errors.NewFENError("placement", offset, row,
				fmt.Sprintf("rank %d has %d squares, want %d", rank+1, file, files))
		}
		offset += len(row) + 1
	}
	return board, nil
}

// parseSideToMove parses the side to move field. It reports whether black is to move.
func parseSideToMove(side string) (bool, error) {
	switch side {
	case "w":
		return false, nil
	case "b":
		return true, nil
	default:
		return false, errors.NewFENError("side", -1, side, "side to move must be w or b")
	}
}

// parseCastlingRights parses per-file castling letters and pairs every named
// rook with the nearest virgin king on each side of it along the home rank.
func parseCastlingRights(board *chess.Board, rights string) error {
	if rights == "-" {
		return nil
	}

	for i := 0; i < len(rights); i++ {
		c := rights[i]
		var colour chess.Colour
		var file int
		switch {
		case c >= 'A' && c <= 'Z':
			colour, file = chess.White, int(c-'A')
		case c >= 'a' && c <= 'z':
			colour, file = chess.Black, int(c-'a')
		default:
			return errors.NewFENError("castling", i, string(c), "unexpected character")
		}

		if file >= board.Files() {
			var ok bool
			file, ok = xfenRookFile(board, colour, unicode.ToLower(rune(c)))
			if !ok {
				return errors.NewFENError("castling", i, string(c), "file outside the board")
			}
		}

		if err := pairRook(board, colour, file); err != nil {
			return &errors.FENError{Err: err, Field: "castling", Index: i, Got: string(c)}
		}
	}
	return nil
}

// xfenRookFile resolves the K/Q shorthand to the outermost rook on that side
// of the first king on the home rank.
func xfenRookFile(board *chess.Board, colour chess.Colour, letter rune) (int, bool) {
	if letter != 'k' && letter != 'q' {
		return 0, false
	}
	allies := board.Side(colour)
	home := board.HomeRank(colour)

	kingFile := -1
	for file := 0; file < board.Files(); file++ {
		if allies[board.Pos(home, file)].Is(chess.King) {
			kingFile = file
			break
		}
	}
	if kingFile < 0 {
		return 0, false
	}

	if letter == 'k' {
		for file := board.Files() - 1; file > kingFile; file-- {
			if allies[board.Pos(home, file)].Is(chess.Rook) {
				return file, true
			}
		}
		return 0, false
	}
	for file := 0; file < kingFile; file++ {
		if allies[board.Pos(home, file)].Is(chess.Rook) {
			return file, true
		}
	}
	return 0, false
}

// pairRook registers the rook on the given home-rank file with the closest
// virgin king to its left and to its right.
func pairRook(board *chess.Board, colour chess.Colour, file int) error {
	allies := board.Side(colour)
	home := board.HomeRank(colour)
	rookPos := board.Pos(home, file)
	if !allies[rookPos].Is(chess.Rook) {
		return fmt.Errorf("no rook on %s: %w", board.SquareName(rookPos), errors.ErrInvalidFEN)
	}

	paired := false
	for kingFile := file - 1; kingFile >= 0; kingFile-- {
		kingPos := board.Pos(home, kingFile)
		if allies[kingPos].Is(chess.King) && allies[kingPos].Virgin {
			board.AddCastle(kingPos, rookPos)
			paired = true
			break
		}
	}
	for kingFile := file + 1; kingFile < board.Files(); kingFile++ {
		kingPos := board.Pos(home, kingFile)
		if allies[kingPos].Is(chess.King) && allies[kingPos].Virgin {
			board.AddCastle(kingPos, rookPos)
			paired = true
			break
		}
	}
	if !paired {
		return fmt.Errorf("no king to castle with rook on %s: %w", board.SquareName(rookPos), errors.ErrInvalidFEN)
	}

	allies[rookPos].Virgin = true
	return nil
}

// parseEnPassant parses the en passant target square and builds the history root.
func parseEnPassant(board *chess.Board, field string) (chess.Move, error) {
	pusher := board.SideToMove().Opposite()
	if field == "-" {
		return chess.Move{Side: pusher, Special: chess.Sentinel}, nil
	}

	target, ok := board.ParseSquare(field)
	if !ok {
		return chess.Move{}, errors.NewFENError("en passant", -1, field, "not a square on the board")
	}

	dir := chess.ColourOffset(pusher)
	rank, file := board.RankOf(target), board.FileOf(target)
	if !board.InBounds(rank+dir, file) || !board.InBounds(rank-dir, file) {
		return chess.Move{}, errors.NewFENError("en passant", -1, field, "square cannot follow a pawn push")
	}
	pawnPos := board.Pos(rank+dir, file)
	if !board.Side(pusher)[pawnPos].Is(chess.Pawn) || board.Occupied(target) {
		return chess.Move{}, errors.NewFENError("en passant", -1, field, "no pushed pawn in front of the square")
	}

	return chess.Move{
		Side:       pusher,
		From:       board.Pos(rank-dir, file),
		To:         pawnPos,
		Special:    chess.DoublePush,
		Moved:      chess.Square{Kind: chess.Pawn, Virgin: true},
		CapturedAt: pawnPos,
	}, nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
// Missing fields default to 0 and 1.
func parseClocks(parts []string) (int, int, error) {
	halfMove, fullMove := 0, 1
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return 0, 0, errors.NewFENError("halfmove clock", -1, parts[4], "not a non-negative number")
		}
		halfMove = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return 0, 0, errors.NewFENError("fullmove number", -1, parts[5], "not a positive number")
		}
		fullMove = n
	}
	return halfMove, fullMove, nil
}

// BoardToFEN converts a board to a FEN string. last is the most recent move
// (or the history root) and decides the en passant field.
func BoardToFEN(board *chess.Board, last *chess.Move) (string, error) {
	var sb strings.Builder

	if err := writePlacement(&sb, board); err != nil {
		return "", err
	}
	sb.WriteByte(' ')
	if board.SideToMove() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board, last)
	fmt.Fprintf(&sb, " %d %d", board.HalfMoveClock, board.Ply/2+1)

	return sb.String(), nil
}

// writePlacement writes the piece placement to the builder.
func writePlacement(sb *strings.Builder, board *chess.Board) error {
	for rank := board.Ranks() - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < board.Files(); file++ {
			pos := board.Pos(rank, file)
			white, black := board.White[pos], board.Black[pos]
			if white.Empty() && black.Empty() {
				empty++
				continue
			}
			if !white.Empty() && !black.Empty() {
				return fmt.Errorf("both sides occupy %s: %w", board.SquareName(pos), errors.ErrInternalInvariant)
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			if !white.Empty() {
				sb.WriteByte(white.Kind.Letter())
			} else {
				sb.WriteByte(byte(unicode.ToLower(rune(black.Kind.Letter()))))
			}
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return nil
}

// writeCastlingRights writes one letter per rook file whose rook and king are
// both still unmoved. Stale castle-map entries are ignored.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	written := false
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		base := byte('A')
		if colour == chess.Black {
			base = 'a'
		}
		allies := board.Side(colour)

		seen := make(map[int]bool)
		var files []int
		for king, rooks := range board.Castles {
			if !allies[king].Is(chess.King) || !allies[king].Virgin {
				continue
			}
			for _, rook := range rooks {
				file := board.FileOf(rook)
				if allies[rook].Is(chess.Rook) && allies[rook].Virgin && !seen[file] {
					seen[file] = true
					files = append(files, file)
				}
			}
		}
		sort.Ints(files)
		for _, file := range files {
			sb.WriteByte(base + byte(file))
			written = true
		}
	}
	if !written {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the square passed over by a double push, if the last move was one.
func writeEnPassant(sb *strings.Builder, board *chess.Board, last *chess.Move) {
	if last == nil || last.Special != chess.DoublePush {
		sb.WriteByte('-')
		return
	}
	rank := board.RankOf(last.To) - chess.ColourOffset(last.Side)
	sb.WriteString(board.SquareName(board.Pos(rank, board.FileOf(last.To))))
}

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// readNumber reads the decimal number starting at s[i] and returns it with
// the index just past its last digit.
func readNumber(s string, i int) (int, int) {
	n := 0
	end := i
	for end < len(s) && isDigit(s[end]) {
		if n < 1000 {
			n = n*10 + int(s[end]-'0')
		}
		end++
	}
	return n, end
}
