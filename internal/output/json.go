package output

import (
	"encoding/json"
	"io"

	"github.com/KurranD/ChessGame/internal/chess"
	"github.com/KurranD/ChessGame/internal/config"
	"github.com/KurranD/ChessGame/internal/processing"
	"github.com/KurranD/ChessGame/internal/worker"
)

// JSONGame represents a replayed game in JSON format.
type JSONGame struct {
	Index      int             `json:"index"`
	Source     string          `json:"source,omitempty"`
	Line       int             `json:"line,omitempty"`
	Moves      []JSONPly       `json:"moves"`
	Result     string          `json:"result"`
	PlyCount   int             `json:"plyCount"`
	Captures   int             `json:"captures"`
	Promotions int             `json:"promotions"`
	Castles    int             `json:"castles"`
	Repetition bool            `json:"repetition,omitempty"`
	Duplicate  bool            `json:"duplicate,omitempty"`
	FinalFEN   string          `json:"finalFEN,omitempty"`
	Candidates *JSONCandidates `json:"candidates,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// JSONPly represents one executed half-move in JSON format.
type JSONPly struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	UCI        string `json:"uci"`
	Piece      string `json:"piece"`
	PieceID    string `json:"pieceId"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Castle     bool   `json:"castle,omitempty"`
}

// JSONCandidates lists the candidate moves of one piece.
type JSONCandidates struct {
	Square  string          `json:"square"`
	Piece   string          `json:"piece,omitempty"`
	Targets []JSONCandidate `json:"targets,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// JSONCandidate is a single candidate target.
type JSONCandidate struct {
	Target  string `json:"target"`
	Capture string `json:"capture,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputGameJSON outputs a single game in JSON format.
func OutputGameJSON(res worker.ProcessResult, cfg *config.Config, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(res, cfg))
}

// GameToJSON converts a replay result to JSON format.
func GameToJSON(res worker.ProcessResult, cfg *config.Config) *JSONGame {
	jg := &JSONGame{
		Index:  res.Index + 1,
		Source: res.Item.Source,
		Line:   res.Item.Script.Line,
		Moves:  []JSONPly{},
		Result: "*",
	}
	if res.Error != nil {
		jg.Error = res.Error.Error()
	}
	if a := res.Analysis; a != nil {
		jg.PlyCount = a.Plies
		jg.Captures = a.Captures
		jg.Promotions = a.Promotions
		jg.Castles = a.Castles
		jg.Repetition = a.RepetitionDetected()
	}
	jg.Duplicate = res.Duplicate

	g := res.Game
	if g == nil {
		return jg
	}
	jg.Result = gameResult(g)
	for _, ply := range g.Plies() {
		jg.Moves = append(jg.Moves, convertPly(ply))
	}
	if cfg.Output.ShowFEN {
		jg.FinalFEN = FENPlacement(g.Board())
	}
	if cfg.Output.ShowSquare != "" {
		jg.Candidates = convertCandidates(g, cfg.Output.ShowSquare)
	}
	return jg
}

func convertPly(ply processing.Ply) JSONPly {
	res := ply.Result
	jp := JSONPly{
		Color:   ply.Colour.String(),
		UCI:     ply.Move.String(),
		Piece:   res.Piece.Type().String(),
		PieceID: res.Piece.ID().String(),
		Castle:  ply.Rook != nil,
	}
	if ply.Colour == chess.White {
		jp.MoveNumber = (ply.Number + 1) / 2
	}
	if res.Captured != nil {
		jp.Captured = res.Captured.Type().String()
	}
	if res.Promoted != nil {
		jp.Promotion = res.Promoted.Type().String()
	}
	return jp
}

func convertCandidates(g *processing.Game, square string) *JSONCandidates {
	jc := &JSONCandidates{Square: square}
	p, cands, err := candidatesOn(g, square)
	if err != nil {
		jc.Error = err.Error()
		return jc
	}
	jc.Piece = p.Colour().String() + " " + p.Type().String()
	for _, c := range cands {
		cand := JSONCandidate{Target: c.Target.String()}
		if c.IsCapture() {
			cand.Capture = c.Capturable.Type().String()
		}
		jc.Targets = append(jc.Targets, cand)
	}
	return jc
}
