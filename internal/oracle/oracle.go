// Package oracle cross-checks the rules engine against third-party move
// generators. The reference libraries only know standard chess, so every
// entry point first converts the position with StandardFEN and refuses
// anything that cannot be expressed there.
package oracle

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

const (
	standardFiles = 8
	standardRanks = 8
	kingFile      = 4
)

// Supported reports whether rules produce the standard move tree on a
// standard board. Chess960 castling destinations coincide with the standard
// ones when king and rooks start on their usual files.
func Supported(rules engine.Rules) bool {
	return rules.PushLimit == 0 || rules.PushLimit == engine.DefaultPushLimit
}

// StandardFEN converts a position to a FEN string with KQkq castling
// letters. It returns ErrUnsupportedPosition for boards that are not 8x8,
// for sides without exactly one king, for pawns on a back rank and for
// castling pairings outside the standard corners.
func StandardFEN(fen string) (string, error) {
	board, root, err := engine.ParseFEN(fen)
	if err != nil {
		return "", err
	}
	if board.Files() != standardFiles || board.Ranks() != standardRanks {
		return "", unsupported("%dx%d board", board.Files(), board.Ranks())
	}

	var rights strings.Builder
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if kings := board.Kings(colour); len(kings) != 1 {
			return "", unsupported("%s has %d kings", colour, len(kings))
		}
		for _, rank := range []int{0, standardRanks - 1} {
			for file := 0; file < standardFiles; file++ {
				if board.Side(colour)[board.Pos(rank, file)].Is(chess.Pawn) {
					return "", unsupported("%s pawn on %s", colour, board.SquareName(board.Pos(rank, file)))
				}
			}
		}
		r, err := castlingRights(board, colour)
		if err != nil {
			return "", err
		}
		rights.WriteString(r)
	}

	out, err := engine.BoardToFEN(board, &root)
	if err != nil {
		return "", err
	}
	fields := strings.Fields(out)
	fields[2] = rights.String()
	if fields[2] == "" {
		fields[2] = "-"
	}
	return strings.Join(fields, " "), nil
}

// castlingRights returns the KQ letters (kq for Black) of the live castling
// pairings of colour.
func castlingRights(board *chess.Board, colour chess.Colour) (string, error) {
	allies := board.Side(colour)
	home := board.HomeRank(colour)
	short, long := false, false

	for king, rooks := range board.Castles {
		if !allies[king].Is(chess.King) || !allies[king].Virgin {
			continue
		}
		for _, rook := range rooks {
			if !allies[rook].Is(chess.Rook) || !allies[rook].Virgin {
				continue
			}
			if king != board.Pos(home, kingFile) {
				return "", unsupported("%s king castles from %s", colour, board.SquareName(king))
			}
			switch rook {
			case board.Pos(home, standardFiles-1):
				short = true
			case board.Pos(home, 0):
				long = true
			default:
				return "", unsupported("%s rook castles from %s", colour, board.SquareName(rook))
			}
		}
	}

	var sb strings.Builder
	if short {
		sb.WriteByte('K')
	}
	if long {
		sb.WriteByte('Q')
	}
	if colour == chess.Black {
		return strings.ToLower(sb.String()), nil
	}
	return sb.String(), nil
}

func unsupported(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errors.ErrUnsupportedPosition)
}
