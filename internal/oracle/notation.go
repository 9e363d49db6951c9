package oracle

import (
	"strings"

	"github.com/notnil/chess"
	"golang.org/x/exp/slices"
)

// Notations returns the sorted algebraic notation of every legal move of fen
// as written by notnil/chess, without check and mate suffixes.
func Notations(fen string) ([]string, error) {
	std, err := StandardFEN(fen)
	if err != nil {
		return nil, err
	}
	opt, err := chess.FEN(std)
	if err != nil {
		return nil, err
	}

	game := chess.NewGame(opt)
	pos := game.Position()
	moves := game.ValidMoves()

	out := make([]string, 0, len(moves))
	for _, m := range moves {
		san := chess.AlgebraicNotation{}.Encode(pos, m)
		out = append(out, strings.TrimRight(san, "+#"))
	}
	slices.Sort(out)
	return out, nil
}
