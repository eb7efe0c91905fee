package engine

import "github.com/KurranD/ChessGame/internal/chess"

// isKnightMove reports whether p jumps rather than slides.
func isKnightMove(p *chess.Piece) bool {
	return p.Type() == chess.Knight
}

// squareOccupiedBy returns the occupant of c if it belongs to pl's roster.
// With the mover's own player it answers "is this my piece", with the
// opponent it answers "is this an enemy piece".
func (b *Board) squareOccupiedBy(pl *chess.Player, c chess.Coord) *chess.Piece {
	occ := b.grid.At(c)
	if occ == nil || pl == nil || !pl.Contains(occ) {
		return nil
	}
	return occ
}

// lineStep returns the unit step from one square toward another along a
// file, a rank or one of the four diagonals. ok is false when the squares
// are equal or not on a common line.
func lineStep(from, to chess.Coord) (df, dr int, ok bool) {
	fileDiff := to.File - from.File
	rankDiff := to.Rank - from.Rank

	switch {
	case fileDiff == 0 && rankDiff == 0:
		return 0, 0, false
	case fileDiff == 0: // same file
		return 0, sign(rankDiff), true
	case rankDiff == 0: // same rank
		return sign(fileDiff), 0, true
	case abs(fileDiff) == abs(rankDiff): // one of the diagonal quadrants
		return sign(fileDiff), sign(rankDiff), true
	}
	return 0, 0, false
}

// PathClear walks from the square after from up to and including to.
// Any occupied square fails when opposing is nil. Otherwise pieces of the
// opposing roster are counted and any other piece fails; more than one
// opposing piece also fails, so a capture can never pass through an enemy
// to reach another one. Knight jumps never call this.
func (b *Board) PathClear(from, to chess.Coord, opposing *chess.Player) bool {
	df, dr, ok := lineStep(from, to)
	if !ok || !to.OnBoard() {
		return false
	}

	blockers := 0
	for sq := from.Add(df, dr); ; sq = sq.Add(df, dr) {
		if occ := b.grid.At(sq); occ != nil {
			if opposing == nil || !opposing.Contains(occ) {
				return false
			}
			blockers++
		}
		if sq == to {
			break
		}
	}
	return blockers <= 1
}

// isTargetValid reports whether p may step quietly onto target.
func (b *Board) isTargetValid(target chess.Coord, p *chess.Piece) bool {
	if isKnightMove(p) {
		return b.grid.At(target) == nil
	}
	return b.PathClear(p.Position(), target, nil)
}

// capturableEnemyAt returns the opposing piece p could capture on target.
// Pawns and knights only need an enemy on the square; sliders and the king
// also need a clear line to it.
func (b *Board) capturableEnemyAt(target chess.Coord, p *chess.Piece, opposing *chess.Player) *chess.Piece {
	switch p.Type() {
	case chess.Pawn, chess.Knight:
	default:
		if !b.PathClear(p.Position(), target, opposing) {
			return nil
		}
	}
	return b.squareOccupiedBy(opposing, target)
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
