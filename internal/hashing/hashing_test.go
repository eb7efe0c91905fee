package hashing

import (
	"testing"

	"github.com/KurranD/ChessGame/internal/chess"
	"github.com/KurranD/ChessGame/internal/engine"
)

func mustBoard(t testing.TB, fen string) *engine.Board {
	t.Helper()
	b, _, err := engine.NewBoardFromFEN(engine.DefaultPositionTable(), fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
	}
	return b
}

func TestZobristHashConsistency(t *testing.T) {
	board1 := mustBoard(t, engine.InitialFEN)
	board2, err := engine.NewStandardBoard(engine.DefaultPositionTable())
	if err != nil {
		t.Fatal(err)
	}

	hash1 := GenerateZobristHash(board1, chess.White)
	hash2 := GenerateZobristHash(board2, chess.White)
	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	board1 := mustBoard(t, engine.InitialFEN)
	board2 := mustBoard(t, engine.InitialFEN)

	pawn := board2.PieceAt(chess.C(4, 6))
	if _, err := board2.ExecuteMove(pawn, chess.C(4, 4)); err != nil {
		t.Fatal(err)
	}

	if GenerateZobristHash(board1, chess.White) == GenerateZobristHash(board2, chess.White) {
		t.Error("Different positions produced the same hash")
	}
	if GenerateZobristHash(board1, chess.White) == GenerateZobristHash(board1, chess.Black) {
		t.Error("Side to move does not change the hash")
	}
}

func TestZobristHashIgnoresMovedFlag(t *testing.T) {
	board := mustBoard(t, "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	before := GenerateZobristHash(board, chess.White)

	rook := board.PieceAt(chess.C(0, 7))
	if _, err := board.ExecuteMove(rook, chess.C(0, 6)); err != nil {
		t.Fatal(err)
	}
	if _, err := board.ExecuteMove(rook, chess.C(0, 7)); err != nil {
		t.Fatal(err)
	}
	if got := GenerateZobristHash(board, chess.White); got != before {
		t.Errorf("hash after returning rook = %x, want %x", got, before)
	}
}

func TestWeakHash(t *testing.T) {
	board1 := mustBoard(t, engine.InitialFEN)
	board2 := mustBoard(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	if WeakHash(board1) != WeakHash(board2) {
		t.Error("same material produced different weak hashes")
	}

	board3 := mustBoard(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKB1R w KQkq - 0 1")
	if WeakHash(board1) == WeakHash(board3) {
		t.Error("missing knight not reflected in weak hash")
	}
}

func TestDuplicateDetector(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)
	sig := GameSignature{Hash: 42, Plies: 4, WeakHash: 7}

	if detector.CheckAndAdd(sig) {
		t.Error("First game was marked as duplicate")
	}
	if !detector.CheckAndAdd(sig) {
		t.Error("Duplicate game was not detected")
	}
	if detector.DuplicateCount() != 1 {
		t.Errorf("DuplicateCount() = %d; want 1", detector.DuplicateCount())
	}

	// Different ply count is still a duplicate without exact matching.
	if !detector.CheckAndAdd(GameSignature{Hash: 42, Plies: 10, WeakHash: 7}) {
		t.Error("same position with different length not detected")
	}
	if detector.CheckAndAdd(GameSignature{Hash: 42, Plies: 4, WeakHash: 8}) {
		t.Error("hash collision with different material marked duplicate")
	}
	if detector.UniqueCount() != 2 {
		t.Errorf("UniqueCount() = %d; want 2", detector.UniqueCount())
	}

	detector.Reset()
	if detector.UniqueCount() != 0 || detector.DuplicateCount() != 0 {
		t.Error("Reset did not clear the detector")
	}
}

func TestDuplicateDetectorExactMatch(t *testing.T) {
	detector := NewDuplicateDetector(true, 0)
	detector.CheckAndAdd(GameSignature{Hash: 1, Plies: 4})
	if detector.CheckAndAdd(GameSignature{Hash: 1, Plies: 6}) {
		t.Error("exact matching ignored the ply count")
	}
	if !detector.CheckAndAdd(GameSignature{Hash: 1, Plies: 6}) {
		t.Error("exact duplicate not detected")
	}
}

func TestDuplicateDetectorCapacity(t *testing.T) {
	detector := NewDuplicateDetector(false, 2)
	for h := uint64(1); h <= 3; h++ {
		detector.CheckAndAdd(GameSignature{Hash: h})
	}
	if !detector.IsFull() || detector.UniqueCount() != 2 {
		t.Errorf("IsFull() = %v, UniqueCount() = %d; want true, 2", detector.IsFull(), detector.UniqueCount())
	}
	if detector.CheckAndAdd(GameSignature{Hash: 3}) {
		t.Error("unstored signature reported as duplicate")
	}
	if !detector.CheckAndAdd(GameSignature{Hash: 1}) {
		t.Error("stored signature not detected once full")
	}
}
