package engine

import "github.com/KurranD/ChessGame/internal/chess"

// Rook corner files checked for castling.
var castlingRookFiles = [2]int{0, chess.BoardSize - 1}

// castlingTargets returns the squares an unmoved king may castle to: two
// files toward an unmoved own rook 3 or 4 files away on the king's rank,
// provided every square between them is empty. Attacked squares are not
// considered.
func (b *Board) castlingTargets(king *chess.Piece) []chess.Coord {
	if king.Type() != chess.King || king.HasMoved() {
		return nil
	}
	own := b.PlayerFor(king.Colour())
	pos := king.Position()

	var targets []chess.Coord
	for _, file := range castlingRookFiles {
		dist := abs(file - pos.File)
		if dist < 3 || dist > 4 {
			continue
		}
		rook := b.squareOccupiedBy(own, chess.C(file, pos.Rank))
		if rook == nil || rook.Type() != chess.Rook || rook.HasMoved() {
			continue
		}
		step := sign(file - pos.File)
		// Squares between king and rook, the one beside the rook included.
		if !b.PathClear(pos, chess.C(file-step, pos.Rank), nil) {
			continue
		}
		targets = append(targets, pos.Add(2*step, 0))
	}
	return targets
}

// IsCastle reports whether moving king from one square to another is a
// castling move, i.e. a king move of two files along its rank.
func IsCastle(king *chess.Piece, from, to chess.Coord) bool {
	return king != nil && king.Type() == chess.King &&
		from.Rank == to.Rank && abs(to.File-from.File) == 2
}

// CastlingRook resolves the companion rook of a castling king move and the
// square it must move to (the one the king passed over). It reads the grid
// only, so it can be used before or after the king itself has moved. The
// board does not move the rook; callers do so with ExecuteMove.
func (b *Board) CastlingRook(king *chess.Piece, from, to chess.Coord) (*chess.Piece, chess.Coord, bool) {
	if !IsCastle(king, from, to) {
		return nil, chess.Coord{}, false
	}
	step := sign(to.File - from.File)
	for sq := to.Add(step, 0); sq.OnBoard(); sq = sq.Add(step, 0) {
		occ := b.grid.At(sq)
		if occ == nil {
			continue
		}
		if occ.Type() != chess.Rook || occ.Colour() != king.Colour() || occ.HasMoved() {
			break
		}
		return occ, from.Add(step, 0), true
	}
	return nil, chess.Coord{}, false
}
