package config

import (
	"fmt"

	"github.com/KurranD/ChessGame/internal/chess"
	"github.com/KurranD/ChessGame/internal/engine"
	"github.com/KurranD/ChessGame/internal/errors"
)

// BoardConfig holds the board layout and the starting position.
type BoardConfig struct {
	// Pixel layout handed to the position table
	OriginX    int
	OriginY    int
	SquareSize int

	// StartFEN replaces the standard starting position when set
	StartFEN string
}

// NewBoardConfig creates a BoardConfig for the default board image.
func NewBoardConfig() *BoardConfig {
	return &BoardConfig{
		OriginX:    engine.DefaultOriginX,
		OriginY:    engine.DefaultOriginY,
		SquareSize: engine.DefaultSquareSize,
	}
}

// Validate checks that the board configuration is valid.
func (b *BoardConfig) Validate() error {
	if b.SquareSize <= 0 {
		return fmt.Errorf("square size %d: %w", b.SquareSize, errors.ErrInvalidConfig)
	}
	if b.StartFEN != "" {
		if _, _, err := engine.NewBoardFromFEN(b.PositionTable(), b.StartFEN); err != nil {
			return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	return nil
}

// PositionTable returns the renderer table for this layout.
func (b *BoardConfig) PositionTable() engine.PositionTable {
	return engine.NewPositionTable(b.OriginX, b.OriginY, b.SquareSize)
}

// NewBoard builds a board in the configured starting position and returns
// the side to move.
func (b *BoardConfig) NewBoard() (*engine.Board, chess.Colour, error) {
	if b.StartFEN == "" {
		board, err := engine.NewStandardBoard(b.PositionTable())
		return board, chess.White, err
	}
	return engine.NewBoardFromFEN(b.PositionTable(), b.StartFEN)
}
