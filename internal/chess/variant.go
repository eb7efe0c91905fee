package chess

import (
	"fmt"

	"github.com/KurranD/ChessGame/internal/errors"
)

// Variant is the movement geometry of one piece type. Both move lists are
// pure geometry: they ignore board edges and occupancy, which the board
// filters afterwards. The set of variants is closed; see VariantFor.
type Variant interface {
	Type() PieceType
	QuietMoves(pos Coord, colour Colour, moved bool) []Coord
	AttackMoves(pos Coord, colour Colour, moved bool) []Coord
	variant()
}

// Ray directions.
var (
	orthogonal = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagonal   = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	allDirs    = [8][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightJump = [8][2]int{{1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {2, 1}, {2, -1}, {-2, 1}, {-2, -1}}
)

// maxRay is the longest offset a sliding piece considers.
const maxRay = BoardSize - 1

// rays walks each direction out to reach squares, nearest first.
func rays(pos Coord, dirs [][2]int, reach int) []Coord {
	moves := make([]Coord, 0, len(dirs)*reach)
	for _, d := range dirs {
		for i := 1; i <= reach; i++ {
			moves = append(moves, pos.Add(d[0]*i, d[1]*i))
		}
	}
	return moves
}

type pawnVariant struct{}

func (pawnVariant) variant()        {}
func (pawnVariant) Type() PieceType { return Pawn }

func (pawnVariant) QuietMoves(pos Coord, colour Colour, moved bool) []Coord {
	dy := colour.Forward()
	moves := []Coord{pos.Add(0, dy)}
	if !moved {
		moves = append(moves, pos.Add(0, 2*dy))
	}
	return moves
}

func (pawnVariant) AttackMoves(pos Coord, colour Colour, _ bool) []Coord {
	dy := colour.Forward()
	return []Coord{pos.Add(1, dy), pos.Add(-1, dy)}
}

type rookVariant struct{}

func (rookVariant) variant()        {}
func (rookVariant) Type() PieceType { return Rook }

func (rookVariant) QuietMoves(pos Coord, _ Colour, _ bool) []Coord {
	return rays(pos, orthogonal[:], maxRay)
}

func (v rookVariant) AttackMoves(pos Coord, colour Colour, moved bool) []Coord {
	return v.QuietMoves(pos, colour, moved)
}

type bishopVariant struct{}

func (bishopVariant) variant()        {}
func (bishopVariant) Type() PieceType { return Bishop }

func (bishopVariant) QuietMoves(pos Coord, _ Colour, _ bool) []Coord {
	return rays(pos, diagonal[:], maxRay)
}

func (v bishopVariant) AttackMoves(pos Coord, colour Colour, moved bool) []Coord {
	return v.QuietMoves(pos, colour, moved)
}

type queenVariant struct{}

func (queenVariant) variant()        {}
func (queenVariant) Type() PieceType { return Queen }

func (queenVariant) QuietMoves(pos Coord, _ Colour, _ bool) []Coord {
	return rays(pos, allDirs[:], maxRay)
}

func (v queenVariant) AttackMoves(pos Coord, colour Colour, moved bool) []Coord {
	return v.QuietMoves(pos, colour, moved)
}

type knightVariant struct{}

func (knightVariant) variant()        {}
func (knightVariant) Type() PieceType { return Knight }

func (knightVariant) QuietMoves(pos Coord, _ Colour, _ bool) []Coord {
	moves := make([]Coord, 0, len(knightJump))
	for _, j := range knightJump {
		moves = append(moves, pos.Add(j[0], j[1]))
	}
	return moves
}

func (v knightVariant) AttackMoves(pos Coord, colour Colour, moved bool) []Coord {
	return v.QuietMoves(pos, colour, moved)
}

type kingVariant struct{}

func (kingVariant) variant()        {}
func (kingVariant) Type() PieceType { return King }

func (kingVariant) QuietMoves(pos Coord, _ Colour, _ bool) []Coord {
	return rays(pos, allDirs[:], 1)
}

func (v kingVariant) AttackMoves(pos Coord, colour Colour, moved bool) []Coord {
	return v.QuietMoves(pos, colour, moved)
}

var variants = [NumPieceTypes]Variant{
	Pawn:   pawnVariant{},
	Rook:   rookVariant{},
	Bishop: bishopVariant{},
	Knight: knightVariant{},
	Queen:  queenVariant{},
	King:   kingVariant{},
}

// VariantFor returns the movement geometry for a piece type.
func VariantFor(t PieceType) (Variant, error) {
	if t < 0 || t >= NumPieceTypes {
		return nil, fmt.Errorf("%s: %w", t, errors.ErrInvalidPieceType)
	}
	return variants[t], nil
}
