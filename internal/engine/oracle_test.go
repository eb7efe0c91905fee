package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/KurranD/ChessGame/internal/chess"
)

// Cross-checks against the dragontoothmg bitboard move generator.

// bitIndex maps a coordinate to a dragontoothmg square (a1 = 0, h8 = 63).
func bitIndex(c chess.Coord) uint8 {
	return uint8((chess.LastRank-c.Rank)*chess.BoardSize + c.File)
}

func fromBitIndex(i uint8) chess.Coord {
	return chess.C(int(i)%chess.BoardSize, chess.LastRank-int(i)/chess.BoardSize)
}

type fromTo struct {
	From, To chess.Coord
}

func TestStartPositionMatchesOracle(t *testing.T) {
	for _, side := range []string{"w", "b"} {
		t.Run(side, func(t *testing.T) {
			fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR " + side + " KQkq - 0 1"
			oracle := dragontoothmg.ParseFen(fen)
			var want []fromTo
			for _, m := range oracle.GenerateLegalMoves() {
				want = append(want, fromTo{fromBitIndex(m.From()), fromBitIndex(m.To())})
			}

			b, toMove, err := NewBoardFromFEN(DefaultPositionTable(), fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN error: %v", err)
			}
			var got []fromTo
			for _, p := range b.PlayerFor(toMove).Pieces() {
				for _, c := range b.ComputeCandidates(p) {
					got = append(got, fromTo{p.Position(), c.Target})
				}
			}

			if len(got) != 20 {
				t.Errorf("%d candidate moves; want 20", len(got))
			}
			if diff := cmp.Diff(want, got, sortFromTo); diff != "" {
				t.Errorf("moves mismatch (-oracle +board):\n%s", diff)
			}
		})
	}
}

var sortFromTo = cmpopts.SortSlices(func(a, b fromTo) bool {
	return moveKey(a) < moveKey(b)
})

func moveKey(m fromTo) int {
	return int(bitIndex(m.From))*64 + int(bitIndex(m.To))
}

// Slider rays with only enemy blockers equal the magic-bitboard attack
// set: every empty square up to and including the first blocker.
func TestSliderRaysMatchOracle(t *testing.T) {
	tests := []struct {
		name     string
		piece    chess.PieceType
		at       chess.Coord
		blockers []chess.Coord
	}{
		{"rook open board", chess.Rook, chess.C(3, 4), nil},
		{"rook corner", chess.Rook, chess.C(0, 0), []chess.Coord{chess.C(0, 3), chess.C(5, 0)}},
		{"rook boxed", chess.Rook, chess.C(4, 4), []chess.Coord{chess.C(4, 3), chess.C(4, 5), chess.C(3, 4), chess.C(5, 4)}},
		{"rook far blockers", chess.Rook, chess.C(2, 5), []chess.Coord{chess.C(2, 1), chess.C(7, 5), chess.C(2, 6), chess.C(0, 2)}},
		{"bishop open board", chess.Bishop, chess.C(3, 3), nil},
		{"bishop edge", chess.Bishop, chess.C(7, 4), []chess.Coord{chess.C(5, 2), chess.C(6, 5)}},
		{"bishop screened", chess.Bishop, chess.C(2, 5), []chess.Coord{chess.C(4, 3), chess.C(5, 2), chess.C(1, 6), chess.C(3, 6)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placements := []Placement{at(tt.piece, chess.White, tt.at.File, tt.at.Rank)}
			var occ uint64
			for _, c := range tt.blockers {
				placements = append(placements, movedAt(chess.Pawn, chess.Black, c.File, c.Rank))
				occ |= 1 << bitIndex(c)
			}
			b := mustBoard(t, placements...)
			slider := mustPiece(t, b, tt.at.File, tt.at.Rank)

			var attacks uint64
			if tt.piece == chess.Rook {
				attacks = dragontoothmg.CalculateRookMoveBitboard(bitIndex(tt.at), occ)
			} else {
				attacks = dragontoothmg.CalculateBishopMoveBitboard(bitIndex(tt.at), occ)
			}
			var want []chess.Coord
			for i := uint8(0); i < 64; i++ {
				if attacks&(1<<i) != 0 {
					want = append(want, fromBitIndex(i))
				}
			}
			sortCoords(want)

			cands := b.ComputeCandidates(slider)
			if diff := cmp.Diff(want, sortedTargets(cands)); diff != "" {
				t.Errorf("targets mismatch (-oracle +board):\n%s", diff)
			}
			for _, c := range cands {
				if c.IsCapture() != (occ&(1<<bitIndex(c.Target)) != 0) {
					t.Errorf("candidate %v capture=%v", c.Target, c.IsCapture())
				}
			}
		})
	}
}
