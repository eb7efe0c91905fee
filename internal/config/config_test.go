package config

import (
	"bytes"
	"errors"
	"testing"

	"github.com/KurranD/ChessGame/internal/chess"
	"github.com/KurranD/ChessGame/internal/engine"
	chesserr "github.com/KurranD/ChessGame/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.JSONFormat {
		t.Error("JSONFormat should be false by default")
	}
	if cfg.ShowFEN {
		t.Error("ShowFEN should be false by default")
	}
	if !cfg.ShowBoard {
		t.Error("ShowBoard should be true by default")
	}
	if cfg.ShowSquare != "" {
		t.Errorf("ShowSquare = %q, want empty", cfg.ShowSquare)
	}
}

// TestBoardConfig_Defaults verifies the default layout matches the board image
func TestBoardConfig_Defaults(t *testing.T) {
	cfg := NewBoardConfig()

	if cfg.OriginX != 60 || cfg.OriginY != 55 || cfg.SquareSize != 75 {
		t.Errorf("layout = %d/%d/%d, want 60/55/75", cfg.OriginX, cfg.OriginY, cfg.SquareSize)
	}
	if cfg.PositionTable() != engine.DefaultPositionTable() {
		t.Error("PositionTable() differs from the default table")
	}
}

// TestConfig_Validate verifies configuration validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			modify:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "zero square size",
			modify:  func(c *Config) { c.Board.SquareSize = 0 },
			wantErr: true,
		},
		{
			name:    "negative square size",
			modify:  func(c *Config) { c.Board.SquareSize = -75 },
			wantErr: true,
		},
		{
			name:    "no workers",
			modify:  func(c *Config) { c.Replay.Workers = 0 },
			wantErr: true,
		},
		{
			name:    "no buffer",
			modify:  func(c *Config) { c.Replay.BufferSize = 0 },
			wantErr: true,
		},
		{
			name:    "negative verbosity",
			modify:  func(c *Config) { c.Verbosity = -1 },
			wantErr: true,
		},
		{
			name:    "valid start FEN",
			modify:  func(c *Config) { c.Board.StartFEN = "4k3/8/8/8/8/8/8/4K3 w - - 0 1" },
			wantErr: false,
		},
		{
			name:    "broken start FEN",
			modify:  func(c *Config) { c.Board.StartFEN = "4k3/8/8 w" },
			wantErr: true,
		},
		{
			name:    "start FEN with too much material",
			modify:  func(c *Config) { c.Board.StartFEN = "4k3/8/8/8/8/8/8/QQ2K3 w - - 0 1" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserr.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestBoardConfig_NewBoard verifies both starting position sources
func TestBoardConfig_NewBoard(t *testing.T) {
	cfg := NewBoardConfig()
	b, toMove, err := cfg.NewBoard()
	if err != nil {
		t.Fatalf("NewBoard() error = %v", err)
	}
	if toMove != chess.White || b.First().Len() != chess.RosterSize {
		t.Errorf("standard board: to move %v, %d white pieces", toMove, b.First().Len())
	}

	cfg.StartFEN = "4k3/8/8/8/8/8/8/4K3 b - - 0 1"
	b, toMove, err = cfg.NewBoard()
	if err != nil {
		t.Fatalf("NewBoard() error = %v", err)
	}
	if toMove != chess.Black || b.First().Len() != 1 || b.Second().Len() != 1 {
		t.Errorf("FEN board: to move %v, %d/%d pieces", toMove, b.First().Len(), b.Second().Len())
	}
}

// TestConfig_Logf verifies verbosity gating of diagnostics
func TestConfig_Logf(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().WithLog(buf).WithVerbosity(1).Build()

	cfg.Logf(1, "games: %d\n", 3)
	cfg.Logf(2, "ply %d\n", 7)

	if got := buf.String(); got != "games: 3\n" {
		t.Errorf("log = %q, want %q", got, "games: 3\n")
	}

	cfg.LogFile = nil
	cfg.Logf(0, "dropped\n")
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithJSONOutput(true).
		WithFEN(true).
		WithDiagram(false).
		WithJSONStream(true).
		WithCandidates("e2").
		WithLayout(0, 0, 40).
		WithStartFEN(engine.InitialFEN).
		WithWorkers(3).
		WithStopOnError(true).
		WithOutput(out).
		WithVerbosity(2).
		Build()

	if !cfg.Output.JSONFormat || !cfg.Output.JSONStream || !cfg.Output.ShowFEN || cfg.Output.ShowBoard {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Output.ShowSquare != "e2" {
		t.Errorf("ShowSquare = %q, want e2", cfg.Output.ShowSquare)
	}
	if cfg.Board.SquareSize != 40 || cfg.Board.StartFEN != engine.InitialFEN {
		t.Errorf("Board = %+v", cfg.Board)
	}
	if cfg.Replay.Workers != 3 || !cfg.Replay.StopOnError {
		t.Errorf("Replay = %+v", cfg.Replay)
	}
	if cfg.OutputFile != out {
		t.Error("WithOutput did not set OutputFile")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
