package engine

import (
	"fmt"

	"github.com/KurranD/ChessGame/internal/chess"
)

// backRank is the piece order from file 0 to file 7 on both back ranks.
var backRank = [chess.BoardSize]chess.PieceType{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// HomeRanks returns the back rank and pawn rank of a colour. Black starts
// on ranks 0 and 1, white on ranks 7 and 6.
func HomeRanks(c chess.Colour) (back, pawns int) {
	if c == chess.Black {
		return chess.FirstRank, chess.FirstRank + 1
	}
	return chess.LastRank, chess.LastRank - 1
}

// StandardRoster returns the sixteen starting pieces of a colour, back
// rank first, each in file order.
func StandardRoster(c chess.Colour) []*chess.Piece {
	back, pawns := HomeRanks(c)
	pieces := make([]*chess.Piece, 0, chess.RosterSize)
	for file, t := range backRank {
		pieces = append(pieces, chess.MustPiece(t, c, chess.C(file, back)))
	}
	for file := 0; file < chess.BoardSize; file++ {
		pieces = append(pieces, chess.MustPiece(chess.Pawn, c, chess.C(file, pawns)))
	}
	return pieces
}

// NewStandardBoard returns a board in the starting position.
func NewStandardBoard(positions PositionTable) (*Board, error) {
	white, err := chess.NewPlayer(chess.White, StandardRoster(chess.White))
	if err != nil {
		return nil, fmt.Errorf("white player: %w", err)
	}
	black, err := chess.NewPlayer(chess.Black, StandardRoster(chess.Black))
	if err != nil {
		return nil, fmt.Errorf("black player: %w", err)
	}
	return NewBoard(positions, white, black)
}
