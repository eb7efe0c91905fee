package hashing

import (
	"math/rand"

	"github.com/KurranD/ChessGame/internal/chess"
	"github.com/KurranD/ChessGame/internal/engine"
)

// zobristKeys is indexed [colour][piece type][file][rank].
var (
	zobristKeys    [2][chess.NumPieceTypes][chess.BoardSize][chess.BoardSize]uint64
	blackToMoveKey uint64
)

func init() {
	// Fixed seed, so hashes are stable across runs.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for c := range zobristKeys {
		for t := range zobristKeys[c] {
			for f := range zobristKeys[c][t] {
				for r := range zobristKeys[c][t][f] {
					zobristKeys[c][t][f][r] = rnd.Uint64()
				}
			}
		}
	}
	blackToMoveKey = rnd.Uint64()
}

// GenerateZobristHash hashes the piece placement and the side to move.
// Moved flags are not part of the hash.
func GenerateZobristHash(b *engine.Board, toMove chess.Colour) uint64 {
	var hash uint64
	grid := b.Occupancy()
	for f := range grid {
		for r, p := range grid[f] {
			if p != nil {
				hash ^= zobristKeys[p.Colour()][p.Type()][f][r]
			}
		}
	}
	if toMove == chess.Black {
		hash ^= blackToMoveKey
	}
	return hash
}

// WeakHash summarises material only: the piece count of each colour and
// type packed four bits apiece.
func WeakHash(b *engine.Board) uint64 {
	var hash uint64
	for _, pl := range []*chess.Player{b.First(), b.Second()} {
		for _, p := range pl.Pieces() {
			shift := 4 * (uint(p.Colour())*uint(chess.NumPieceTypes) + uint(p.Type()))
			hash += 1 << shift
		}
	}
	return hash
}
