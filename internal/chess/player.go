package chess

import (
	"fmt"

	"github.com/KurranD/ChessGame/internal/errors"
)

// RosterSize is the number of pieces a player starts with.
const RosterSize = 16

// Player owns the ordered roster of one colour's live pieces.
type Player struct {
	colour Colour
	pieces []*Piece
}

// NewPlayer validates a starting roster: a supported colour and exactly
// RosterSize distinct, non-nil pieces, all of that colour.
func NewPlayer(colour Colour, pieces []*Piece) (*Player, error) {
	if !colour.Valid() {
		return nil, fmt.Errorf("player: %s: %w", colour, errors.ErrInvalidColour)
	}
	if len(pieces) != RosterSize {
		return nil, fmt.Errorf("player %s: %d pieces, need %d: %w",
			colour, len(pieces), RosterSize, errors.ErrRosterSize)
	}
	seen := make(map[*Piece]bool, len(pieces))
	for i, p := range pieces {
		switch {
		case p == nil:
			return nil, fmt.Errorf("player %s: piece %d is nil: %w", colour, i, errors.ErrInvalidPiece)
		case seen[p]:
			return nil, fmt.Errorf("player %s: %s listed twice: %w", colour, p, errors.ErrDuplicatePiece)
		case p.Colour() != colour:
			return nil, fmt.Errorf("player %s: %s: %w", colour, p, errors.ErrColourMismatch)
		}
		seen[p] = true
	}
	roster := make([]*Piece, len(pieces))
	copy(roster, pieces)
	return &Player{colour: colour, pieces: roster}, nil
}

// Colour returns the player's colour.
func (pl *Player) Colour() Colour { return pl.colour }

// Pieces returns a copy of the live roster in its original order.
func (pl *Player) Pieces() []*Piece {
	out := make([]*Piece, len(pl.pieces))
	copy(out, pl.pieces)
	return out
}

// Len returns the number of live pieces.
func (pl *Player) Len() int { return len(pl.pieces) }

// Contains reports whether p is in the live roster.
func (pl *Player) Contains(p *Piece) bool {
	return pl.indexOf(p) >= 0
}

// Remove takes p out of the roster, reporting whether it was present.
func (pl *Player) Remove(p *Piece) bool {
	i := pl.indexOf(p)
	if i < 0 {
		return false
	}
	pl.pieces = append(pl.pieces[:i], pl.pieces[i+1:]...)
	return true
}

// Replace swaps old for repl in place, keeping roster order.
func (pl *Player) Replace(old, repl *Piece) bool {
	i := pl.indexOf(old)
	if i < 0 || repl == nil || repl.Colour() != pl.colour {
		return false
	}
	pl.pieces[i] = repl
	return true
}

// King returns the player's king, or nil once it has been captured.
func (pl *Player) King() *Piece {
	for _, p := range pl.pieces {
		if p.Type() == King {
			return p
		}
	}
	return nil
}

func (pl *Player) indexOf(p *Piece) int {
	if p == nil {
		return -1
	}
	for i, q := range pl.pieces {
		if q == p {
			return i
		}
	}
	return -1
}
