package hashing

import (
	"sync"
	"testing"

	"github.com/KurranD/ChessGame/internal/chess"
	"github.com/KurranD/ChessGame/internal/engine"
)

func TestThreadSafeDuplicateDetector_Concurrent(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)
	board := mustBoard(t, engine.InitialFEN)
	sig := GameSignature{
		Hash:     GenerateZobristHash(board, chess.White),
		WeakHash: WeakHash(board),
	}

	const numGames = 100
	const numWorkers = 10
	gamesPerWorker := numGames / numWorkers

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < gamesPerWorker; j++ {
				detector.CheckAndAdd(sig)
			}
		}()
	}
	wg.Wait()

	if detector.DuplicateCount() != numGames-1 {
		t.Errorf("DuplicateCount() = %d; want %d", detector.DuplicateCount(), numGames-1)
	}
	if detector.UniqueCount() != 1 {
		t.Errorf("UniqueCount() = %d; want 1", detector.UniqueCount())
	}
}

func TestThreadSafeDuplicateDetector_DifferentPositions(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)

	const numWorkers = 8
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			detector.CheckAndAdd(GameSignature{Hash: uint64(id) + 1})
		}(i)
	}
	wg.Wait()

	if detector.DuplicateCount() != 0 {
		t.Errorf("DuplicateCount() = %d; want 0", detector.DuplicateCount())
	}
	if detector.UniqueCount() != numWorkers {
		t.Errorf("UniqueCount() = %d; want %d", detector.UniqueCount(), numWorkers)
	}
}

func TestThreadSafeDuplicateDetector_Capacity(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 1)
	if detector.IsFull() {
		t.Error("empty detector reports full")
	}
	detector.CheckAndAdd(GameSignature{Hash: 9})
	if !detector.IsFull() {
		t.Error("detector at capacity not full")
	}
}
