// Package processing replays move scripts on a board: turn order, move
// selection from the computed candidates, castling and game end.
package processing

import (
	"fmt"

	"github.com/KurranD/ChessGame/internal/chess"
	"github.com/KurranD/ChessGame/internal/engine"
	"github.com/KurranD/ChessGame/internal/errors"
	"github.com/KurranD/ChessGame/internal/hashing"
)

// Move is a move in coordinate notation, e.g. e2e4.
type Move struct {
	From chess.Coord
	To   chess.Coord
}

// ParseMove parses a coordinate-notation move.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("move %q: want <from><to>: %w", s, errors.ErrInvalidScript)
	}
	from, err := chess.ParseCoord(s[:2])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %v: %w", s, err, errors.ErrInvalidScript)
	}
	to, err := chess.ParseCoord(s[2:])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %v: %w", s, err, errors.ErrInvalidScript)
	}
	return Move{From: from, To: to}, nil
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// Ply is one executed half-move.
type Ply struct {
	Number int
	Colour chess.Colour
	Move   Move
	Result engine.MoveResult

	// Companion rook of a castling move
	Rook   *chess.Piece
	RookTo chess.Coord
}

// Game drives one board through a sequence of moves. A Game is not safe
// for concurrent use.
type Game struct {
	board  *engine.Board
	toMove chess.Colour
	plies  []Ply
	hashes []uint64 // position after each ply, starting position first
	over   bool
	winner chess.Colour
}

// NewGame starts a game on board with the given side to move.
func NewGame(board *engine.Board, toMove chess.Colour) *Game {
	return &Game{
		board:  board,
		toMove: toMove,
		hashes: []uint64{hashing.GenerateZobristHash(board, toMove)},
	}
}

// NewStandardGame starts a game from the standard position, white to move.
func NewStandardGame(positions engine.PositionTable) (*Game, error) {
	b, err := engine.NewStandardBoard(positions)
	if err != nil {
		return nil, err
	}
	return NewGame(b, chess.White), nil
}

// Board returns the board being played on.
func (g *Game) Board() *engine.Board { return g.board }

// ToMove returns the colour whose turn it is.
func (g *Game) ToMove() chess.Colour { return g.toMove }

// Plies returns the executed half-moves.
func (g *Game) Plies() []Ply {
	out := make([]Ply, len(g.plies))
	copy(out, g.plies)
	return out
}

// Over reports whether a king has been captured.
func (g *Game) Over() bool { return g.over }

// Winner returns the colour that captured the opposing king.
func (g *Game) Winner() (chess.Colour, bool) {
	return g.winner, g.over
}

// Candidates selects the piece on c and returns its candidate moves.
func (g *Game) Candidates(c chess.Coord) (*chess.Piece, []engine.Candidate, error) {
	p := g.board.PieceAt(c)
	if p == nil {
		return nil, nil, errors.Wrapf(errors.ErrIllegalMove, "no piece on %s", c)
	}
	return p, g.board.ComputeCandidates(p), nil
}

// Play executes m for the side to move. The move must start on one of
// that side's pieces and land on one of the piece's candidates. A
// castling king move also moves its rook.
func (g *Game) Play(m Move) (Ply, error) {
	ply := Ply{Number: len(g.plies) + 1, Colour: g.toMove, Move: m}
	fail := func(err error) (Ply, error) {
		return Ply{}, &errors.ScriptError{Err: err, Ply: ply.Number, Move: m.String()}
	}

	if g.over {
		return fail(errors.Wrapf(errors.ErrIllegalMove, "game over, %s has won", g.winner))
	}
	p := g.board.PieceAt(m.From)
	if p == nil {
		return fail(errors.Wrapf(errors.ErrIllegalMove, "no piece on %s", m.From))
	}
	if p.Colour() != g.toMove {
		return fail(errors.Wrapf(errors.ErrIllegalMove, "%s to move", g.toMove))
	}
	if !hasTarget(g.board.ComputeCandidates(p), m.To) {
		return fail(errors.Wrapf(errors.ErrIllegalMove, "%s cannot reach %s", p, m.To))
	}

	res, err := g.board.ExecuteMove(p, m.To)
	if err != nil {
		return fail(err)
	}
	ply.Result = res

	if res.IsCastle() {
		if rook, to, ok := g.board.CastlingRook(p, res.From, res.To); ok {
			if _, err := g.board.ExecuteMove(rook, to); err != nil {
				return fail(err)
			}
			ply.Rook, ply.RookTo = rook, to
		}
	}

	if res.KingCaptured() {
		g.over = true
		g.winner = g.toMove
	}
	g.toMove = g.toMove.Opposite()
	g.plies = append(g.plies, ply)
	g.hashes = append(g.hashes, hashing.GenerateZobristHash(g.board, g.toMove))
	return ply, nil
}

// PlayAll plays moves in order and stops at the first failure.
func (g *Game) PlayAll(moves []Move) error {
	for _, m := range moves {
		if _, err := g.Play(m); err != nil {
			return err
		}
	}
	return nil
}

func hasTarget(cands []engine.Candidate, target chess.Coord) bool {
	for _, c := range cands {
		if c.Target == target {
			return true
		}
	}
	return false
}
