package chess

import "fmt"

// Factory creates pieces from their textual description, so callers can
// build rosters without depending on the individual variants.
type Factory struct{}

// Create builds an unmoved piece from a type tag ("pawn", "rook", "bishop",
// "knight", "queen", "king"), a colour name and a board index.
func (Factory) Create(tag, colour string, pos Coord) (*Piece, error) {
	t, err := ParsePieceType(tag)
	if err != nil {
		return nil, fmt.Errorf("create piece: %w", err)
	}
	c, err := ParseColour(colour)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", t, err)
	}
	p, err := NewPiece(t, c, pos)
	if err != nil {
		return nil, fmt.Errorf("create %s %s: %w", c, t, err)
	}
	return p, nil
}
