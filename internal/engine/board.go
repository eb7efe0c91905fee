// Package engine provides the board occupancy model, pseudo-legal move
// filtering and move execution. A Board is not safe for concurrent use;
// callers serialise access to it.
package engine

import (
	"fmt"

	"github.com/KurranD/ChessGame/internal/chess"
	"github.com/KurranD/ChessGame/internal/errors"
)

// Point is a renderer coordinate, usually the pixel position of a square.
type Point struct {
	X int
	Y int
}

// PositionTable maps each board index to its renderer coordinate,
// indexed [file][rank]. The engine never interprets the values.
type PositionTable [chess.BoardSize][chess.BoardSize]Point

// NewPositionTable lays out squares of the given size from an origin.
func NewPositionTable(originX, originY, squareSize int) PositionTable {
	var t PositionTable
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			t[file][rank] = Point{
				X: originX + squareSize*file,
				Y: originY + squareSize*rank,
			}
		}
	}
	return t
}

// Default pixel layout of the board image.
const (
	DefaultOriginX    = 60
	DefaultOriginY    = 55
	DefaultSquareSize = 75
)

// DefaultPositionTable returns the layout for the default board image.
func DefaultPositionTable() PositionTable {
	return NewPositionTable(DefaultOriginX, DefaultOriginY, DefaultSquareSize)
}

// Grid is the occupancy grid, indexed [file][rank]; nil means empty.
type Grid [chess.BoardSize][chess.BoardSize]*chess.Piece

// At returns the occupant of c, or nil when c is empty or off the board.
func (g *Grid) At(c chess.Coord) *chess.Piece {
	if !c.OnBoard() {
		return nil
	}
	return g[c.File][c.Rank]
}

// Board owns the occupancy grid for one game. Every live piece of both
// players sits in exactly one grid cell matching its position.
type Board struct {
	grid      Grid
	positions PositionTable
	first     *chess.Player
	second    *chess.Player

	// Per-selection scratch, rebuilt by ComputeCandidates.
	selected *chess.Piece
	targets  []Candidate
}

// NewBoard places both players' pieces on a fresh grid. The first player
// must be white and the second black, and no two pieces may share a square.
func NewBoard(positions PositionTable, first, second *chess.Player) (*Board, error) {
	if first == nil || second == nil {
		return nil, fmt.Errorf("new board: missing player: %w", errors.ErrInvalidPiece)
	}
	if first == second || first.Colour() == second.Colour() {
		return nil, fmt.Errorf("new board: both players are %s: %w", first.Colour(), errors.ErrColourMismatch)
	}
	if first.Colour() != chess.White {
		return nil, fmt.Errorf("new board: first player is %s: %w", first.Colour(), errors.ErrColourMismatch)
	}

	b := &Board{positions: positions, first: first, second: second}
	for _, pl := range []*chess.Player{first, second} {
		for _, p := range pl.Pieces() {
			pos := p.Position()
			if occ := b.grid.At(pos); occ != nil {
				return nil, fmt.Errorf("new board: %s and %s: %w", occ, p, errors.ErrDuplicatePiece)
			}
			b.grid[pos.File][pos.Rank] = p
		}
	}
	return b, nil
}

// First returns the white player.
func (b *Board) First() *chess.Player { return b.first }

// Second returns the black player.
func (b *Board) Second() *chess.Player { return b.second }

// PlayerFor returns the player of the given colour.
func (b *Board) PlayerFor(c chess.Colour) *chess.Player {
	if c == b.first.Colour() {
		return b.first
	}
	return b.second
}

// Opponent returns the player opposing the given colour.
func (b *Board) Opponent(c chess.Colour) *chess.Player {
	return b.PlayerFor(c.Opposite())
}

// PieceAt returns the occupant of c, or nil.
func (b *Board) PieceAt(c chess.Coord) *chess.Piece {
	return b.grid.At(c)
}

// Occupancy returns a snapshot of the grid. Pieces are shared, the grid
// itself is a copy.
func (b *Board) Occupancy() Grid {
	return b.grid
}

// Positions returns the renderer coordinate table.
func (b *Board) Positions() PositionTable {
	return b.positions
}

// PointAt returns the renderer coordinate of c.
func (b *Board) PointAt(c chess.Coord) (Point, bool) {
	if !c.OnBoard() {
		return Point{}, false
	}
	return b.positions[c.File][c.Rank], true
}

// tracked reports whether p is live on this board at its recorded position.
func (b *Board) tracked(p *chess.Piece) bool {
	return p != nil && b.grid.At(p.Position()) == p
}

// Remove takes a tracked piece off the grid and out of its player's roster.
func (b *Board) Remove(p *chess.Piece) error {
	if !b.tracked(p) {
		return fmt.Errorf("remove %s: %w", p, errors.ErrUntrackedPiece)
	}
	pos := p.Position()
	b.grid[pos.File][pos.Rank] = nil
	b.PlayerFor(p.Colour()).Remove(p)
	b.ClearPotentialTargets()
	return nil
}
