package output

import (
	notnil "github.com/notnil/chess"

	"github.com/KurranD/ChessGame/internal/chess"
	"github.com/KurranD/ChessGame/internal/engine"
)

var whitePieces = [chess.NumPieceTypes]notnil.Piece{
	chess.Pawn:   notnil.WhitePawn,
	chess.Rook:   notnil.WhiteRook,
	chess.Bishop: notnil.WhiteBishop,
	chess.Knight: notnil.WhiteKnight,
	chess.Queen:  notnil.WhiteQueen,
	chess.King:   notnil.WhiteKing,
}

var blackPieces = [chess.NumPieceTypes]notnil.Piece{
	chess.Pawn:   notnil.BlackPawn,
	chess.Rook:   notnil.BlackRook,
	chess.Bishop: notnil.BlackBishop,
	chess.Knight: notnil.BlackKnight,
	chess.Queen:  notnil.BlackQueen,
	chess.King:   notnil.BlackKing,
}

// squareOf maps a grid coordinate to a notnil square. Rank 0 of the grid
// is the eighth rank.
func squareOf(c chess.Coord) notnil.Square {
	return notnil.NewSquare(notnil.File(c.File), notnil.Rank(chess.LastRank-c.Rank))
}

func pieceOf(p *chess.Piece) notnil.Piece {
	if p.Colour() == chess.White {
		return whitePieces[p.Type()]
	}
	return blackPieces[p.Type()]
}

// displayBoard converts both rosters to a board the renderer understands.
func displayBoard(b *engine.Board) *notnil.Board {
	m := make(map[notnil.Square]notnil.Piece, b.First().Len()+b.Second().Len())
	for _, pl := range []*chess.Player{b.First(), b.Second()} {
		for _, p := range pl.Pieces() {
			m[squareOf(p.Position())] = pieceOf(p)
		}
	}
	return notnil.NewBoard(m)
}

// RenderBoard draws the position as a text diagram, eighth rank on top.
func RenderBoard(b *engine.Board) string {
	return displayBoard(b).Draw()
}

// FENPlacement returns the piece placement field of the position's FEN.
func FENPlacement(b *engine.Board) string {
	return displayBoard(b).String()
}
