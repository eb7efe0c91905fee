// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/KurranD/ChessGame/internal/config"
)

var (
	// Input options
	moveList = flag.String("m", "", "Replay this move list (e.g. \"e2e4 e7e5\") instead of reading files")
	startFEN = flag.String("start", "", "Start every game from this FEN position")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	jsonStream   = flag.Bool("stream", false, "With -J, write one JSON object per game instead of an array")
	showFEN      = flag.Bool("fen", false, "Show the final piece placement")
	noBoard      = flag.Bool("noboard", false, "Don't draw the final position")
	showSquare   = flag.String("show", "", "List the candidates of the piece on this square after each game")

	// Board layout
	originX    = flag.Int("originx", 0, "X pixel of the a8 square (0 = default)")
	originY    = flag.Int("originy", 0, "Y pixel of the a8 square (0 = default)")
	squareSize = flag.Int("squaresize", 0, "Square size in pixels (0 = default)")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress games whose final position was already reached")
	exactDuplicates    = flag.Bool("exact", false, "Duplicates must also have the same number of plies")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Replay options
	stopOnError = flag.Bool("stop", false, "Stop at the first game with an illegal move")
	workers     = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no game count)")
	verbose = flag.Bool("v", false, "Log every game as it is replayed")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyBoardFlags(cfg)
	applyReplayFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyOutputFlags configures result output.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.JSONStream = *jsonStream
	cfg.Output.ShowFEN = *showFEN
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.ShowSquare = *showSquare
}

// applyBoardFlags configures the layout and starting position.
func applyBoardFlags(cfg *config.Config) {
	if *originX > 0 {
		cfg.Board.OriginX = *originX
	}
	if *originY > 0 {
		cfg.Board.OriginY = *originY
	}
	if *squareSize > 0 {
		cfg.Board.SquareSize = *squareSize
	}
	cfg.Board.StartFEN = *startFEN
}

// applyReplayFlags configures the worker pool.
func applyReplayFlags(cfg *config.Config) {
	if *workers > 0 {
		cfg.Replay.Workers = *workers
	}
	cfg.Replay.StopOnError = *stopOnError
}
