// Package chess provides the core piece, player and coordinate types.
package chess

import (
	"fmt"
	"strings"

	"github.com/KurranD/ChessGame/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the lowercase name of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return fmt.Sprintf("colour(%d)", int(c))
}

// Valid reports whether c is one of the two supported colours.
func (c Colour) Valid() bool {
	return c == White || c == Black
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the rank direction pawns of this colour advance in.
// White starts on the high ranks and moves toward rank 0.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// ParseColour converts "white" or "black" (any case) to a Colour.
func ParseColour(s string) (Colour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white":
		return White, nil
	case "black":
		return Black, nil
	}
	return 0, fmt.Errorf("%q: %w", s, errors.ErrInvalidColour)
}

// PieceType is the type tag of a piece.
type PieceType int

const (
	Pawn PieceType = iota
	Rook
	Bishop
	Knight
	Queen
	King
	NumPieceTypes
)

var pieceTypeNames = [NumPieceTypes]string{"pawn", "rook", "bishop", "knight", "queen", "king"}

// String returns the type tag, e.g. "knight".
func (t PieceType) String() string {
	if t >= 0 && t < NumPieceTypes {
		return pieceTypeNames[t]
	}
	return fmt.Sprintf("piece(%d)", int(t))
}

// Letter returns the single uppercase letter for a piece type.
func (t PieceType) Letter() byte {
	letters := []byte{'P', 'R', 'B', 'N', 'Q', 'K'}
	if t >= 0 && int(t) < len(letters) {
		return letters[t]
	}
	return '?'
}

// ParsePieceType converts a type tag to a PieceType.
func ParsePieceType(tag string) (PieceType, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for i, name := range pieceTypeNames {
		if name == tag {
			return PieceType(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", tag, errors.ErrInvalidPieceType)
}

// Board dimensions.
const (
	BoardSize = 8
	FirstRank = 0
	LastRank  = BoardSize - 1
)

// Coord is a (file, rank) index into the board grid. Rank 0 is black's
// back rank, rank 7 is white's.
type Coord struct {
	File int
	Rank int
}

// C is shorthand for Coord{File: file, Rank: rank}.
func C(file, rank int) Coord {
	return Coord{File: file, Rank: rank}
}

// OnBoard reports whether both components lie in [0,7].
func (c Coord) OnBoard() bool {
	return c.File >= 0 && c.File < BoardSize && c.Rank >= 0 && c.Rank < BoardSize
}

// Add returns c offset by (df, dr).
func (c Coord) Add(df, dr int) Coord {
	return Coord{File: c.File + df, Rank: c.Rank + dr}
}

// String returns the algebraic square name ("e2"), or the raw pair when
// the coordinate is off the board.
func (c Coord) String() string {
	if !c.OnBoard() {
		return fmt.Sprintf("(%d,%d)", c.File, c.Rank)
	}
	return string([]byte{byte('a' + c.File), byte('8' - c.Rank)})
}

// ParseCoord converts an algebraic square name such as "e2" to a Coord.
func ParseCoord(s string) (Coord, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Coord{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidCoord)
	}
	return Coord{File: int(s[0] - 'a'), Rank: int('8' - s[1])}, nil
}

// ValidateCoord returns ErrInvalidCoord when c is off the board.
func ValidateCoord(c Coord) error {
	if !c.OnBoard() {
		return fmt.Errorf("%s: %w", c, errors.ErrInvalidCoord)
	}
	return nil
}
