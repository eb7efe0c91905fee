package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/KurranD/ChessGame/internal/chess"
	"github.com/KurranD/ChessGame/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Placement puts one piece of a colour on a square.
type Placement struct {
	Type   chess.PieceType
	Colour chess.Colour
	At     chess.Coord
	Moved  bool
}

// Position is a parsed FEN: the pieces and the side to move.
type Position struct {
	Placements []Placement
	ToMove     chess.Colour
}

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c rune) (chess.PieceType, bool) {
	switch unicode.ToLower(c) {
	case 'k':
		return chess.King, true
	case 'q':
		return chess.Queen, true
	case 'r':
		return chess.Rook, true
	case 'n':
		return chess.Knight, true
	case 'b':
		return chess.Bishop, true
	case 'p':
		return chess.Pawn, true
	}
	return 0, false
}

// ParseFEN reads the placement, side-to-move and castling fields of a FEN
// string; the remaining fields are ignored. Pawns off their home rank are
// marked moved. When a castling field is present, kings and corner rooks
// without a matching right are marked moved.
func ParseFEN(fen string) (Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return Position{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	placements, err := parsePiecePositions(parts[0])
	if err != nil {
		return Position{}, err
	}

	pos := Position{Placements: placements, ToMove: chess.White}
	if len(parts) > 1 {
		switch parts[1] {
		case "w":
		case "b":
			pos.ToMove = chess.Black
		default:
			return Position{}, fmt.Errorf("side to move %q: %w", parts[1], errors.ErrInvalidFEN)
		}
	}
	if len(parts) > 2 {
		applyCastlingRights(pos.Placements, parts[2])
	}
	return pos, nil
}

// parsePiecePositions parses the piece placement field. The first FEN row
// is rank index 0.
func parsePiecePositions(field string) ([]Placement, error) {
	var placements []Placement
	rank, file := 0, 0
	for _, c := range field {
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return nil, fmt.Errorf("row %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
			}
			rank++
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			t, ok := ConvertFENCharToPiece(c)
			if !ok {
				return nil, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			at := chess.C(file, rank)
			if !at.OnBoard() {
				return nil, fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			_, pawnRank := HomeRanks(colour)
			placements = append(placements, Placement{
				Type:   t,
				Colour: colour,
				At:     at,
				Moved:  t == chess.Pawn && rank != pawnRank,
			})
			file++
		}
		if file > chess.BoardSize {
			return nil, fmt.Errorf("row %d overflows: %w", rank+1, errors.ErrInvalidFEN)
		}
	}
	if rank != chess.BoardSize-1 || file != chess.BoardSize {
		return nil, fmt.Errorf("incomplete placement %q: %w", field, errors.ErrInvalidFEN)
	}
	return placements, nil
}

// applyCastlingRights marks kings and corner rooks that have lost their
// castling rights as moved.
func applyCastlingRights(placements []Placement, field string) {
	rights := map[chess.Colour][2]bool{} // [queenside, kingside]
	for _, c := range field {
		colour := chess.White
		if unicode.IsLower(c) {
			colour = chess.Black
		}
		r := rights[colour]
		switch unicode.ToLower(c) {
		case 'q':
			r[0] = true
		case 'k':
			r[1] = true
		}
		rights[colour] = r
	}

	for i := range placements {
		p := &placements[i]
		back, _ := HomeRanks(p.Colour)
		r := rights[p.Colour]
		switch {
		case p.Type == chess.King:
			p.Moved = p.At.Rank != back || (!r[0] && !r[1])
		case p.Type == chess.Rook && p.At.Rank == back && p.At.File == 0:
			p.Moved = !r[0]
		case p.Type == chess.Rook && p.At.Rank == back && p.At.File == chess.BoardSize-1:
			p.Moved = !r[1]
		case p.Type == chess.Rook:
			p.Moved = true
		}
	}
}

// NewBoardFromPlacements builds a board holding exactly the given pieces.
// Each piece takes the slot of an unused piece of its type in the standard
// starting roster, so each side may use at most the starting number of
// each piece type. Players keep the roster order of the slots that were
// used.
func NewBoardFromPlacements(positions PositionTable, placements []Placement) (*Board, error) {
	rosters := [2][]*chess.Piece{StandardRoster(chess.White), StandardRoster(chess.Black)}
	used := make(map[*chess.Piece]bool, len(placements))
	occupied := make(map[chess.Coord]bool, len(placements))

	for _, pl := range placements {
		if !pl.Colour.Valid() {
			return nil, fmt.Errorf("place %s: %w", pl.Colour, errors.ErrInvalidColour)
		}
		if err := chess.ValidateCoord(pl.At); err != nil {
			return nil, fmt.Errorf("place %s %s: %w", pl.Colour, pl.Type, err)
		}
		if occupied[pl.At] {
			return nil, fmt.Errorf("two pieces on %s: %w", pl.At, errors.ErrDuplicatePiece)
		}
		occupied[pl.At] = true

		roster := rosters[pl.Colour]
		slot := unusedSlot(roster, pl.Type, used)
		if slot < 0 {
			return nil, fmt.Errorf("too many %s %ss: %w", pl.Colour, pl.Type, errors.ErrRosterSize)
		}
		p, err := chess.RestorePiece(pl.Type, pl.Colour, pl.At, pl.Moved)
		if err != nil {
			return nil, err
		}
		roster[slot] = p
		used[p] = true
	}

	white, err := chess.NewPlayer(chess.White, rosters[chess.White])
	if err != nil {
		return nil, fmt.Errorf("white player: %w", err)
	}
	black, err := chess.NewPlayer(chess.Black, rosters[chess.Black])
	if err != nil {
		return nil, fmt.Errorf("black player: %w", err)
	}

	b := &Board{positions: positions, first: white, second: black}
	for _, pl := range []*chess.Player{white, black} {
		for _, p := range pl.Pieces() {
			if !used[p] {
				pl.Remove(p)
				continue
			}
			pos := p.Position()
			b.grid[pos.File][pos.Rank] = p
		}
	}
	return b, nil
}

// NewBoardFromFEN builds a board from a FEN string and returns the side
// to move.
func NewBoardFromFEN(positions PositionTable, fen string) (*Board, chess.Colour, error) {
	pos, err := ParseFEN(fen)
	if err != nil {
		return nil, chess.White, err
	}
	b, err := NewBoardFromPlacements(positions, pos.Placements)
	if err != nil {
		return nil, chess.White, err
	}
	return b, pos.ToMove, nil
}

// unusedSlot returns the index of the first piece of type t in roster
// that has not been replaced yet, or -1.
func unusedSlot(roster []*chess.Piece, t chess.PieceType, used map[*chess.Piece]bool) int {
	for i, p := range roster {
		if !used[p] && p.Type() == t {
			return i
		}
	}
	return -1
}
