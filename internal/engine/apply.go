package engine

import (
	"github.com/KurranD/ChessGame/internal/chess"
	"github.com/KurranD/ChessGame/internal/errors"
)

// MoveResult describes what ExecuteMove changed.
type MoveResult struct {
	Piece    *chess.Piece // The piece that moved (the pawn, if it promoted)
	From     chess.Coord
	To       chess.Coord
	Captured *chess.Piece // Enemy removed from the target square, if any
	Promoted *chess.Piece // Queen that replaced a promoting pawn, if any
}

// KingCaptured reports whether the move took the opposing king.
func (r MoveResult) KingCaptured() bool {
	return r.Captured != nil && r.Captured.Type() == chess.King
}

// IsCastle reports whether the move was the king half of a castling move.
func (r MoveResult) IsCastle() bool {
	return IsCastle(r.Piece, r.From, r.To)
}

// ExecuteMove moves p to target. It trusts that the move was chosen from
// the candidate list and only rejects malformed arguments: a nil or
// untracked piece, an off-board target or a target held by the mover's
// own colour. All checks happen before the grid is written.
//
// An enemy on the target is taken out of its roster. A pawn reaching the
// first or last rank is replaced, in the roster and on the grid, by a new
// queen of its colour that inherits the pawn's visual handle. The candidate
// list is cleared.
func (b *Board) ExecuteMove(p *chess.Piece, target chess.Coord) (MoveResult, error) {
	if p == nil {
		return MoveResult{}, &errors.MoveError{Err: errors.ErrInvalidPiece, To: target.String()}
	}
	from := p.Position()
	fail := func(err error) (MoveResult, error) {
		return MoveResult{}, &errors.MoveError{Err: err, Piece: p.String(), From: from.String(), To: target.String()}
	}
	if err := chess.ValidateCoord(target); err != nil {
		return fail(errors.ErrInvalidCoord)
	}
	if !b.tracked(p) {
		return fail(errors.ErrUntrackedPiece)
	}
	occupant := b.grid.At(target)
	if occupant != nil && occupant.Colour() == p.Colour() {
		return fail(errors.ErrOccupiedByOwnPiece)
	}

	b.ClearPotentialTargets()
	res := MoveResult{Piece: p, From: from, To: target}
	if occupant != nil {
		b.PlayerFor(occupant.Colour()).Remove(occupant)
		res.Captured = occupant
	}

	b.grid[from.File][from.Rank] = nil
	p.MoveTo(target)

	placed := p
	if p.Type() == chess.Pawn && (target.Rank == chess.FirstRank || target.Rank == chess.LastRank) {
		placed = b.promote(p)
		res.Promoted = placed
	}
	b.grid[target.File][target.Rank] = placed
	return res, nil
}

// promote swaps pawn for a new queen in its player's roster. The caller
// installs the queen on the grid.
func (b *Board) promote(pawn *chess.Piece) *chess.Piece {
	queen := chess.MustPiece(chess.Queen, pawn.Colour(), pawn.Position())
	queen.SetHandle(pawn.Handle())
	b.PlayerFor(pawn.Colour()).Replace(pawn, queen)
	return queen
}
