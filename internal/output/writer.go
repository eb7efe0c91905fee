package output

import (
	"encoding/json"
	"io"

	"github.com/KurranD/ChessGame/internal/config"
	"github.com/KurranD/ChessGame/internal/worker"
)

// GameWriter is the interface for writing replayed games to output.
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(res worker.ProcessResult) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns the writer selected by cfg.
func NewGameWriter(w io.Writer, cfg *config.Config) GameWriter {
	if cfg.Output.JSONFormat {
		if cfg.Output.JSONStream {
			return NewJSONWriterSingle(w, cfg)
		}
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes games in text form as they arrive.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteGame writes a game in text form.
func (tw *TextWriter) WriteGame(res worker.ProcessResult) error {
	OutputGame(res, tw.cfg, tw.w)
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	games  []*JSONGame
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:     w,
		cfg:   cfg,
		games: make([]*JSONGame, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(res worker.ProcessResult) error {
	if jw.single {
		return OutputGameJSON(res, jw.cfg, jw.w)
	}
	// Converted now: the game's board keeps changing if it is replayed further.
	jw.games = append(jw.games, GameToJSON(res, jw.cfg))
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&JSONOutput{Games: jw.games}); err != nil {
		return err
	}
	jw.games = jw.games[:0]
	return nil
}

// Close writes any buffered games.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
