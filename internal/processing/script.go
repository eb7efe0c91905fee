package processing

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/KurranD/ChessGame/internal/chess"
	"github.com/KurranD/ChessGame/internal/engine"
	"github.com/KurranD/ChessGame/internal/errors"
)

// ScriptLine is one game of a move script.
type ScriptLine struct {
	Line int // 1-based line number in the source
	Text string
}

// ReadScript splits a script into games, one per line. Blank lines and
// lines starting with '#' are skipped.
func ReadScript(r io.Reader) ([]ScriptLine, error) {
	var lines []ScriptLine
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, ScriptLine{Line: n, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return lines, nil
}

// ParseMoves parses whitespace-separated coordinate moves.
func ParseMoves(text string) ([]Move, error) {
	fields := strings.Fields(text)
	moves := make([]Move, 0, len(fields))
	for i, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, &errors.ScriptError{Err: err, Ply: i + 1, Move: f}
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// ReplayLine plays one script line on board. The game is returned even when
// a move fails, holding the position reached before the failure.
func ReplayLine(board *engine.Board, toMove chess.Colour, line ScriptLine) (*Game, error) {
	g := NewGame(board, toMove)
	moves, err := ParseMoves(line.Text)
	if err == nil {
		err = g.PlayAll(moves)
	}
	if se, ok := err.(*errors.ScriptError); ok {
		se.Line = line.Line
	}
	return g, err
}
