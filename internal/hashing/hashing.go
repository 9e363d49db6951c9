// Package hashing provides Zobrist position keys and a memo table for
// perft counts keyed by them.
package hashing

import (
	"math/bits"
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

const maxSquares = chess.MaxFiles * chess.MaxRanks

// zobristKeys holds one random key per piece placement plus the extra
// state that changes which moves are legal.
type zobristKeys struct {
	// colour, kind, virgin, position
	pieces [2][chess.King + 1][2][maxSquares]uint64
	black  uint64
	epFile [chess.MaxFiles]uint64
	dims   [chess.MaxFiles + 1][chess.MaxRanks + 1]uint64
	// castle pairings, king position then rook position
	castleKing [maxSquares]uint64
	castleRook [maxSquares]uint64
}

// The seed is fixed so keys are stable between runs.
var keys = newZobristKeys(0x5eed)

func newZobristKeys(seed int64) *zobristKeys {
	r := rand.New(rand.NewSource(seed))
	k := &zobristKeys{black: r.Uint64()}
	for c := range k.pieces {
		for kind := range k.pieces[c] {
			for v := range k.pieces[c][kind] {
				for pos := range k.pieces[c][kind][v] {
					k.pieces[c][kind][v][pos] = r.Uint64()
				}
			}
		}
	}
	for f := range k.epFile {
		k.epFile[f] = r.Uint64()
	}
	for f := range k.dims {
		for rk := range k.dims[f] {
			k.dims[f][rk] = r.Uint64()
		}
	}
	for pos := range k.castleKing {
		k.castleKing[pos] = r.Uint64()
		k.castleRook[pos] = r.Uint64()
	}
	return k
}

// castlePair returns the key of one king/rook pairing. The halves go through
// a splitmix finaliser; keys for (k1,r2) and (k2,r1) must not cancel those for
// (k1,r1) and (k2,r2).
func (k *zobristKeys) castlePair(king, rook int) uint64 {
	x := k.castleKing[king] ^ bits.RotateLeft64(k.castleRook[rook], 29)
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// PositionHash returns the Zobrist key of b. epFile is the file of a pawn
// that may be captured en passant on this move, or -1. Virgin flags are part
// of the key since they decide castling and multi-step pushes, and so is
// every castle pairing whose king and rook are both still unmoved.
func PositionHash(b *chess.Board, epFile int) uint64 {
	h := keys.dims[b.Files()][b.Ranks()]
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for pos, sq := range b.Side(colour) {
			if sq.Empty() {
				continue
			}
			v := 0
			if sq.Virgin {
				v = 1
			}
			h ^= keys.pieces[colour][sq.Kind][v][pos]
		}
	}
	if b.SideToMove() == chess.Black {
		h ^= keys.black
	}
	if epFile >= 0 && epFile < chess.MaxFiles {
		h ^= keys.epFile[epFile]
	}
	for king, rooks := range b.Castles {
		colour, ok := unmovedOwner(b, king, chess.King)
		if !ok {
			continue
		}
		for _, rook := range rooks {
			if sq := b.Side(colour)[rook]; sq.Is(chess.Rook) && sq.Virgin {
				h ^= keys.castlePair(king, rook)
			}
		}
	}
	return h
}

// unmovedOwner reports which side has an unmoved piece of the given kind
// on pos.
func unmovedOwner(b *chess.Board, pos int, kind chess.Piece) (chess.Colour, bool) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if sq := b.Side(colour)[pos]; sq.Is(kind) && sq.Virgin {
			return colour, true
		}
	}
	return chess.White, false
}
