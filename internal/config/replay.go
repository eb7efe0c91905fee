package config

import (
	"fmt"
	"runtime"

	"github.com/KurranD/ChessGame/internal/errors"
)

// ReplayConfig holds settings for replaying move scripts.
type ReplayConfig struct {
	// Workers is the number of games replayed in parallel
	Workers int

	// BufferSize is the worker pool channel capacity
	BufferSize int

	// StopOnError abandons the remaining games after the first failure
	StopOnError bool
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{
		Workers:    runtime.NumCPU(),
		BufferSize: 64,
	}
}

// Validate checks that the replay configuration is valid.
func (r *ReplayConfig) Validate() error {
	if r.Workers < 1 {
		return fmt.Errorf("workers %d: %w", r.Workers, errors.ErrInvalidConfig)
	}
	if r.BufferSize < 1 {
		return fmt.Errorf("buffer size %d: %w", r.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
