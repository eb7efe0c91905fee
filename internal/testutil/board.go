package testutil

import (
	"testing"

	"github.com/KurranD/ChessGame/internal/chess"
	"github.com/KurranD/ChessGame/internal/engine"
)

// MustStandardBoard returns a board in the starting position.
func MustStandardBoard(t testing.TB) *engine.Board {
	t.Helper()
	b, err := engine.NewStandardBoard(engine.DefaultPositionTable())
	if err != nil {
		t.Fatalf("NewStandardBoard: %v", err)
	}
	return b
}

// MustBoardFromFEN builds a board from a FEN string and returns it with
// the side to move. It calls t.Fatal if the FEN is rejected.
func MustBoardFromFEN(t testing.TB, fen string) (*engine.Board, chess.Colour) {
	t.Helper()
	b, toMove, err := engine.NewBoardFromFEN(engine.DefaultPositionTable(), fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
	}
	return b, toMove
}

// Square parses an algebraic square such as "e2".
func Square(t testing.TB, s string) chess.Coord {
	t.Helper()
	c, err := chess.ParseCoord(s)
	if err != nil {
		t.Fatalf("ParseCoord(%q): %v", s, err)
	}
	return c
}

// Squares parses a list of algebraic squares.
func Squares(t testing.TB, ss ...string) []chess.Coord {
	t.Helper()
	out := make([]chess.Coord, 0, len(ss))
	for _, s := range ss {
		out = append(out, Square(t, s))
	}
	return out
}
