package chess

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/KurranD/ChessGame/internal/errors"
)

// Piece is a single live piece. Pieces are shared by pointer between the
// board grid and the owning player's roster; position and moved flag are
// only changed through the board.
type Piece struct {
	variant  Variant
	colour   Colour
	position Coord
	moved    bool
	id       uuid.UUID

	// handle is the renderer's opaque visual object for this piece.
	handle any
}

// NewPiece creates an unmoved piece of the given type, colour and position.
func NewPiece(t PieceType, colour Colour, pos Coord) (*Piece, error) {
	v, err := VariantFor(t)
	if err != nil {
		return nil, err
	}
	if !colour.Valid() {
		return nil, fmt.Errorf("%s: %w", colour, errors.ErrInvalidColour)
	}
	if err := ValidateCoord(pos); err != nil {
		return nil, err
	}
	return &Piece{
		variant:  v,
		colour:   colour,
		position: pos,
		id:       uuid.New(),
	}, nil
}

// RestorePiece creates a piece with a known moved flag, for positions
// loaded from outside a game such as a FEN string.
func RestorePiece(t PieceType, colour Colour, pos Coord, moved bool) (*Piece, error) {
	p, err := NewPiece(t, colour, pos)
	if err != nil {
		return nil, err
	}
	p.moved = moved
	return p, nil
}

// MustPiece is like NewPiece but panics on invalid arguments.
// It is intended for fixed layouts known to be valid.
func MustPiece(t PieceType, colour Colour, pos Coord) *Piece {
	p, err := NewPiece(t, colour, pos)
	if err != nil {
		panic(err)
	}
	return p
}

// Type returns the piece's type tag.
func (p *Piece) Type() PieceType { return p.variant.Type() }

// Colour returns the piece's colour.
func (p *Piece) Colour() Colour { return p.colour }

// Position returns the piece's board index.
func (p *Piece) Position() Coord { return p.position }

// HasMoved reports whether the piece has moved at least once.
func (p *Piece) HasMoved() bool { return p.moved }

// ID returns the identifier assigned at creation.
func (p *Piece) ID() uuid.UUID { return p.id }

// Handle returns the visual handle attached by the renderer, if any.
func (p *Piece) Handle() any { return p.handle }

// SetHandle attaches a visual handle.
func (p *Piece) SetHandle(h any) { p.handle = h }

// QuietMoves returns the unfiltered non-capturing geometry from the
// piece's current square.
func (p *Piece) QuietMoves() []Coord {
	return p.variant.QuietMoves(p.position, p.colour, p.moved)
}

// AttackMoves returns the unfiltered capturing geometry from the piece's
// current square.
func (p *Piece) AttackMoves() []Coord {
	return p.variant.AttackMoves(p.position, p.colour, p.moved)
}

// MoveTo sets the position and marks the piece as moved. The moved flag is
// never reset. It is the only mutator of a piece's square; the board calls
// it while holding the grid cell, and nothing else may.
func (p *Piece) MoveTo(c Coord) {
	p.position = c
	p.moved = true
}

// String returns e.g. "white knight g1".
func (p *Piece) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %s %s", p.colour, p.Type(), p.position)
}
