package processing

import (
	"github.com/KurranD/ChessGame/internal/chess"
	"github.com/KurranD/ChessGame/internal/hashing"
)

// GameAnalysis holds counters gathered from a replayed game.
type GameAnalysis struct {
	Plies      int
	Captures   int
	Promotions int
	Castles    int

	KingCaptured bool
	Winner       chess.Colour

	HasRepetition bool     // some position occurred three times
	Positions     []uint64 // Zobrist hashes, starting position first
	WeakHash      uint64
}

// RepetitionDetected returns true if the game has a threefold repetition.
func (ga *GameAnalysis) RepetitionDetected() bool {
	return ga.HasRepetition
}

// FinalHash returns the hash of the last position.
func (ga *GameAnalysis) FinalHash() uint64 {
	if len(ga.Positions) == 0 {
		return 0
	}
	return ga.Positions[len(ga.Positions)-1]
}

// Signature identifies the final position for duplicate detection.
func (ga *GameAnalysis) Signature() hashing.GameSignature {
	return hashing.GameSignature{
		Hash:     ga.FinalHash(),
		Plies:    ga.Plies,
		WeakHash: ga.WeakHash,
	}
}

// AnalyzeGame summarises the plies played so far.
func AnalyzeGame(g *Game) *GameAnalysis {
	analysis := &GameAnalysis{
		Plies:     len(g.plies),
		Positions: append([]uint64(nil), g.hashes...),
		WeakHash:  hashing.WeakHash(g.board),
	}
	analysis.Winner, analysis.KingCaptured = g.Winner()

	for _, ply := range g.plies {
		if ply.Result.Captured != nil {
			analysis.Captures++
		}
		if ply.Result.Promoted != nil {
			analysis.Promotions++
		}
		if ply.Rook != nil {
			analysis.Castles++
		}
	}

	positionCount := make(map[uint64]int, len(g.hashes))
	for _, h := range g.hashes {
		positionCount[h]++
		if positionCount[h] >= 3 {
			analysis.HasRepetition = true
		}
	}
	return analysis
}
