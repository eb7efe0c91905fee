package config

// OutputConfig holds settings related to result output.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// JSONStream writes one JSON object per game as it is replayed
	// instead of a single array at the end
	JSONStream bool

	// ShowFEN adds the final piece placement in FEN form
	ShowFEN bool

	// ShowBoard draws the final position as a text diagram
	ShowBoard bool

	// ShowSquare lists the candidates of the piece on this square
	// (algebraic, e.g. "e2") after the replay; empty disables it
	ShowSquare string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard: true,
	}
}
