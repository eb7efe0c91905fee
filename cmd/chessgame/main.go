// chessgame replays chess games given as coordinate move lists on a
// pseudo-legal rules engine and reports the resulting positions.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/KurranD/ChessGame/internal/config"
	"github.com/KurranD/ChessGame/internal/hashing"
	"github.com/KurranD/ChessGame/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessgame version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	detector := setupDuplicateDetector()

	items, err := collectInputs(cfg, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gw := output.NewGameWriter(cfg.OutputFile, cfg)
	stats, err := replayAll(items, cfg, detector, gw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	// Report statistics
	if cfg.Verbosity > 0 {
		reportStatistics(cfg, stats)
	}
	if stats.failed > 0 {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// setupDuplicateDetector creates the detector when -D is given.
func setupDuplicateDetector() *hashing.ThreadSafeDuplicateDetector {
	if !*suppressDuplicates {
		return nil
	}
	return hashing.NewThreadSafeDuplicateDetector(*exactDuplicates, *duplicateCapacity)
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(cfg *config.Config, s replayStats) {
	if s.duplicates > 0 || *suppressDuplicates {
		cfg.Logf(1, "%d game(s) output, %d duplicate(s), %d failed out of %d.\n", s.output, s.duplicates, s.failed, s.total)
		return
	}
	cfg.Logf(1, "%d game(s) replayed, %d failed out of %d.\n", s.output, s.failed, s.total)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessgame [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess games written as coordinate moves, one game per line.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nScript format:\n")
	fmt.Fprintf(os.Stderr, "  e2e4 e7e5 g1f3    one game per line, moves as <from><to>\n")
	fmt.Fprintf(os.Stderr, "  # comment         blank lines and '#' lines are skipped\n")
	fmt.Fprintf(os.Stderr, "\nCastling is a king move of two files; pawns reaching the last rank become queens.\n")
	fmt.Fprintf(os.Stderr, "A game ends when a king is captured. Check is not enforced.\n")
}
