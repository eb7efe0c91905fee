package engine

import (
	"sort"
	"testing"

	"github.com/KurranD/ChessGame/internal/chess"
)

func at(pt chess.PieceType, c chess.Colour, file, rank int) Placement {
	return Placement{Type: pt, Colour: c, At: chess.C(file, rank)}
}

func movedAt(pt chess.PieceType, c chess.Colour, file, rank int) Placement {
	p := at(pt, c, file, rank)
	p.Moved = true
	return p
}

// mustBoard builds a board holding only the given pieces.
func mustBoard(t *testing.T, placements ...Placement) *Board {
	t.Helper()
	b, err := NewBoardFromPlacements(DefaultPositionTable(), placements)
	if err != nil {
		t.Fatalf("NewBoardFromPlacements error: %v", err)
	}
	return b
}

func mustFEN(t *testing.T, fen string) *Board {
	t.Helper()
	b, _, err := NewBoardFromFEN(DefaultPositionTable(), fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return b
}

func mustPiece(t *testing.T, b *Board, file, rank int) *chess.Piece {
	t.Helper()
	p := b.PieceAt(chess.C(file, rank))
	if p == nil {
		t.Fatalf("no piece on %v", chess.C(file, rank))
	}
	return p
}

// sortedTargets returns the candidate squares in file, rank order.
func sortedTargets(cands []Candidate) []chess.Coord {
	out := make([]chess.Coord, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.Target)
	}
	sortCoords(out)
	return out
}

func sortCoords(cs []chess.Coord) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].File != cs[j].File {
			return cs[i].File < cs[j].File
		}
		return cs[i].Rank < cs[j].Rank
	})
}

// checkInvariants verifies grid and rosters agree.
func checkInvariants(t *testing.T, b *Board) {
	t.Helper()
	live := 0
	for _, pl := range []*chess.Player{b.First(), b.Second()} {
		for _, p := range pl.Pieces() {
			if p.Colour() != pl.Colour() {
				t.Errorf("%v in the %v roster", p, pl.Colour())
			}
			if got := b.PieceAt(p.Position()); got != p {
				t.Errorf("grid at %v = %v; want %v", p.Position(), got, p)
			}
			live++
		}
	}
	occupied := 0
	grid := b.Occupancy()
	for file := range grid {
		for rank := range grid[file] {
			if grid[file][rank] != nil {
				occupied++
			}
		}
	}
	if occupied != live {
		t.Errorf("grid holds %d pieces; rosters hold %d", occupied, live)
	}
}
