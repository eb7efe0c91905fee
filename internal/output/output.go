// Package output formats replayed games as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/KurranD/ChessGame/internal/chess"
	"github.com/KurranD/ChessGame/internal/config"
	"github.com/KurranD/ChessGame/internal/engine"
	"github.com/KurranD/ChessGame/internal/processing"
	"github.com/KurranD/ChessGame/internal/worker"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame writes one replayed game in text form.
func OutputGame(res worker.ProcessResult, cfg *config.Config, w io.Writer) {
	fmt.Fprintf(w, "[Game %d]", res.Index+1)
	if loc := location(res); loc != "" {
		fmt.Fprintf(w, " %s", loc)
	}
	fmt.Fprintln(w)

	if res.Game != nil {
		outputMoves(res.Game, w)
	}
	if res.Error != nil {
		fmt.Fprintf(w, "error: %v\n", res.Error)
	}
	if res.Analysis != nil {
		outputSummary(res, w)
	}
	if res.Game != nil {
		outputPosition(res.Game, cfg, w)
	}

	// Blank line between games
	fmt.Fprintln(w)
}

// location returns "file:line" for items read from a script.
func location(res worker.ProcessResult) string {
	src, line := res.Item.Source, res.Item.Script.Line
	switch {
	case src != "" && line > 0:
		return fmt.Sprintf("%s:%d", src, line)
	case src != "":
		return src
	case line > 0:
		return fmt.Sprintf("line %d", line)
	}
	return ""
}

// outputMoves writes the played moves with move numbers, then the result.
func outputMoves(g *processing.Game, w io.Writer) {
	ow := NewOutputWriter(w, 80)
	for i, ply := range g.Plies() {
		moveNum := (ply.Number + 1) / 2
		if ply.Colour == chess.White {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			// Black to move at start
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(ply.Move.String())
	}
	ow.Write(gameResult(g))
	ow.NewLine()
}

// gameResult returns "1-0" or "0-1" once a king is captured, else "*".
func gameResult(g *processing.Game) string {
	winner, over := g.Winner()
	switch {
	case !over:
		return "*"
	case winner == chess.White:
		return "1-0"
	default:
		return "0-1"
	}
}

func outputSummary(res worker.ProcessResult, w io.Writer) {
	a := res.Analysis
	fmt.Fprintf(w, "plies %d, captures %d, promotions %d, castles %d\n",
		a.Plies, a.Captures, a.Promotions, a.Castles)

	var notes []string
	if a.KingCaptured {
		notes = append(notes, fmt.Sprintf("%s captured the king", a.Winner))
	}
	if a.RepetitionDetected() {
		notes = append(notes, "position repeated three times")
	}
	if res.Duplicate {
		notes = append(notes, "duplicate final position")
	}
	if len(notes) > 0 {
		fmt.Fprintln(w, strings.Join(notes, "; "))
	}
}

func outputPosition(g *processing.Game, cfg *config.Config, w io.Writer) {
	if cfg.Output.ShowFEN {
		fmt.Fprintf(w, "fen: %s\n", FENPlacement(g.Board()))
	}
	if cfg.Output.ShowBoard {
		fmt.Fprint(w, strings.TrimLeft(RenderBoard(g.Board()), "\n"))
	}
	if cfg.Output.ShowSquare != "" {
		outputCandidates(g, cfg.Output.ShowSquare, w)
	}
}

func outputCandidates(g *processing.Game, square string, w io.Writer) {
	p, cands, err := candidatesOn(g, square)
	if err != nil {
		fmt.Fprintf(w, "candidates %s: %v\n", square, err)
		return
	}
	targets := make([]string, len(cands))
	for i, c := range cands {
		targets[i] = c.Target.String()
		if c.IsCapture() {
			targets[i] += "x"
		}
	}
	fmt.Fprintf(w, "candidates %s (%s %s): %s\n", p.Position(), p.Colour(), p.Type(), strings.Join(targets, " "))
}

// candidatesOn computes the candidates of the piece on an algebraic square.
func candidatesOn(g *processing.Game, square string) (*chess.Piece, []engine.Candidate, error) {
	c, err := chess.ParseCoord(square)
	if err != nil {
		return nil, nil, err
	}
	return g.Candidates(c)
}
