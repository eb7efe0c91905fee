package worker

import (
	stderrors "errors"
	"sort"

	"github.com/KurranD/ChessGame/internal/chess"
	"github.com/KurranD/ChessGame/internal/engine"
	"github.com/KurranD/ChessGame/internal/errors"
	"github.com/KurranD/ChessGame/internal/hashing"
	"github.com/KurranD/ChessGame/internal/processing"
)

// BoardFactory builds a fresh board and the side to move for one game.
type BoardFactory func() (*engine.Board, chess.Colour, error)

// ReplayFunc returns a ProcessFunc that replays each item on its own board.
// When detector is non-nil, games that complete are checked for a final
// position already reached by another game.
func ReplayFunc(newBoard BoardFactory, detector *hashing.ThreadSafeDuplicateDetector) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		res := ProcessResult{Item: item, Index: item.Index}
		board, toMove, err := newBoard()
		if err != nil {
			res.Error = err
			return res
		}

		g, err := processing.ReplayLine(board, toMove, item.Script)
		var se *errors.ScriptError
		if stderrors.As(err, &se) {
			se.File = item.Source
		}
		res.Game = g
		res.Analysis = processing.AnalyzeGame(g)
		res.Error = err
		if err == nil && detector != nil {
			res.Duplicate = detector.CheckAndAdd(res.Analysis.Signature())
		}
		return res
	}
}

// RunAll starts the pool, feeds it items and returns the results in item
// order. With stopOnError the pool stops at the first failed result and
// no further items are fed, so later items may have no result.
func (p *Pool) RunAll(items []WorkItem, stopOnError bool) []ProcessResult {
	p.Start()
	go func() {
		for _, item := range items {
			if p.TrySubmit(item) {
				continue
			}
			if p.IsStopped() {
				break
			}
			p.Submit(item)
		}
		p.Close()
	}()

	results := make([]ProcessResult, 0, len(items))
	for r := range p.Results() {
		if stopOnError && r.Error != nil {
			p.Stop()
		}
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}
