// Package errors provides sentinel errors and error types for the rules engine.
// Construction and mutation failures wrap one of the sentinels below so that
// callers can inspect them with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for construction-time validation.
var (
	// ErrInvalidColour indicates a colour other than white or black.
	ErrInvalidColour = errors.New("unsupported colour")

	// ErrInvalidCoord indicates a board index outside [0,7].
	ErrInvalidCoord = errors.New("coordinate off the board")

	// ErrInvalidPieceType indicates an unrecognised piece type tag.
	ErrInvalidPieceType = errors.New("invalid piece type")

	// ErrRosterSize indicates a starting roster without exactly 16 pieces.
	ErrRosterSize = errors.New("wrong number of pieces")

	// ErrInvalidPiece indicates a missing (nil) piece.
	ErrInvalidPiece = errors.New("not a chess piece")

	// ErrDuplicatePiece indicates the same piece listed twice or two pieces
	// on one square.
	ErrDuplicatePiece = errors.New("duplicate piece")

	// ErrColourMismatch indicates pieces or players of the wrong colour.
	ErrColourMismatch = errors.New("colour mismatch")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")
)

// Sentinel errors for mutation-time arguments and the replay driver.
var (
	// ErrUntrackedPiece indicates a piece the board does not hold.
	ErrUntrackedPiece = errors.New("piece not on this board")

	// ErrOccupiedByOwnPiece indicates a move onto a friendly piece.
	ErrOccupiedByOwnPiece = errors.New("target occupied by own piece")

	// ErrIllegalMove indicates a move that is not among the computed candidates.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidScript indicates a malformed move in a replay script.
	ErrInvalidScript = errors.New("invalid move script")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError carries the context of a rejected board mutation.
type MoveError struct {
	Err   error  // The underlying error
	Piece string // Description of the piece, e.g. "white rook a1"
	From  string // Source square (if known)
	To    string // Requested target
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}
	switch {
	case e.From != "" && e.To != "":
		parts = append(parts, fmt.Sprintf("%s-%s", e.From, e.To))
	case e.To != "":
		parts = append(parts, "to "+e.To)
	}

	context := "move"
	if len(parts) > 0 {
		context = "move " + strings.Join(parts, " ")
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ScriptError locates a failure inside a replay script.
type ScriptError struct {
	Err  error  // The underlying error
	File string // Script file name (empty for command-line input)
	Line int    // Line number (1-based, 0 if unknown)
	Ply  int    // Ply within the game (1-based, 0 if not applicable)
	Move string // The move text that failed
}

// Error returns a formatted error message with location and context.
func (e *ScriptError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, loc)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ", "), e.Err)
		}
		return e.Err.Error()
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}
	return "script error"
}

// Unwrap returns the underlying error.
func (e *ScriptError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
