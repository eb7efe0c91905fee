package main

import (
	"fmt"
	"io"
	"os"

	"github.com/KurranD/ChessGame/internal/config"
	"github.com/KurranD/ChessGame/internal/hashing"
	"github.com/KurranD/ChessGame/internal/output"
	"github.com/KurranD/ChessGame/internal/processing"
	"github.com/KurranD/ChessGame/internal/worker"
)

// replayStats counts what happened to the replayed games.
type replayStats struct {
	total      int
	output     int
	failed     int
	duplicates int
}

// collectInputs builds the work items from -m, the named files or stdin.
func collectInputs(cfg *config.Config, args []string) ([]worker.WorkItem, error) {
	if *moveList != "" {
		return []worker.WorkItem{{
			Source: "-m",
			Script: processing.ScriptLine{Text: *moveList},
		}}, nil
	}

	if len(args) == 0 {
		return processInput(os.Stdin, "stdin", cfg, nil)
	}

	var items []worker.WorkItem
	for _, filename := range args {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", filename, err)
		}
		items, err = processInput(file, filename, cfg, items)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		if err != nil {
			return nil, err
		}
	}
	return items, nil
}

// processInput reads one script and appends a work item per game.
func processInput(r io.Reader, name string, cfg *config.Config, items []worker.WorkItem) ([]worker.WorkItem, error) {
	lines, err := processing.ReadScript(r)
	if err != nil {
		return items, fmt.Errorf("%s: %w", name, err)
	}
	cfg.Logf(2, "%s: %d game(s)\n", name, len(lines))
	for _, line := range lines {
		items = append(items, worker.WorkItem{Source: name, Script: line, Index: len(items)})
	}
	return items, nil
}

// replayAll replays items in parallel and writes the results in input
// order. Duplicates are dropped from the output when detector is set.
func replayAll(items []worker.WorkItem, cfg *config.Config, detector *hashing.ThreadSafeDuplicateDetector, gw output.GameWriter) (replayStats, error) {
	stats := replayStats{total: len(items)}
	if len(items) == 0 {
		return stats, gw.Close()
	}

	numWorkers := cfg.Replay.Workers
	if numWorkers > len(items) {
		numWorkers = len(items)
	}
	pool := worker.NewPoolWithOptions(worker.ReplayFunc(cfg.Board.NewBoard, detector),
		worker.WithWorkers(numWorkers),
		worker.WithBufferSize(cfg.Replay.BufferSize))
	cfg.Logf(2, "replaying %d game(s) on %d worker(s)\n", len(items), pool.NumWorkers())
	results := pool.RunAll(items, cfg.Replay.StopOnError)

	for _, res := range results {
		if res.Error != nil {
			stats.failed++
			cfg.Logf(1, "%v\n", res.Error)
		}
		if res.Duplicate {
			stats.duplicates++
			cfg.Logf(2, "game %d: duplicate final position\n", res.Index+1)
			continue
		}
		if err := gw.WriteGame(res); err != nil {
			return stats, err
		}
		stats.output++
	}
	return stats, gw.Close()
}
