package engine

import "github.com/KurranD/ChessGame/internal/chess"

// Candidate is one square the selected piece may move to. Capturable is
// the enemy piece standing on Target, or nil for a quiet move.
type Candidate struct {
	Target     chess.Coord
	Capturable *chess.Piece
}

// IsCapture reports whether taking this candidate captures a piece.
func (c Candidate) IsCapture() bool {
	return c.Capturable != nil
}

// ComputeCandidates replaces the board's candidate list with the
// pseudo-legal targets of p and records p as the selected piece. Quiet
// moves come first, then captures, then castling targets. Moves that would
// leave the king attacked are not filtered out. A piece that is not on this
// board has no candidates.
func (b *Board) ComputeCandidates(p *chess.Piece) []Candidate {
	b.selected = p
	b.targets = b.targets[:0]
	if !b.tracked(p) {
		return nil
	}

	for _, target := range p.QuietMoves() {
		if !target.OnBoard() || !b.isTargetValid(target, p) {
			continue
		}
		b.targets = append(b.targets, Candidate{Target: target})
	}

	opposing := b.Opponent(p.Colour())
	for _, target := range p.AttackMoves() {
		if !target.OnBoard() {
			continue
		}
		if enemy := b.capturableEnemyAt(target, p, opposing); enemy != nil {
			b.targets = append(b.targets, Candidate{Target: target, Capturable: enemy})
		}
	}

	for _, target := range b.castlingTargets(p) {
		b.targets = append(b.targets, Candidate{Target: target})
	}

	return b.PotentialTargets(p)
}

// PotentialTargets returns a copy of the candidates computed for p. It
// returns nil when the list was computed for another piece or cleared.
func (b *Board) PotentialTargets(p *chess.Piece) []Candidate {
	if p == nil || p != b.selected || len(b.targets) == 0 {
		return nil
	}
	out := make([]Candidate, len(b.targets))
	copy(out, b.targets)
	return out
}

// Selected returns the piece the current candidate list belongs to.
func (b *Board) Selected() *chess.Piece {
	return b.selected
}

// ClearPotentialTargets discards the candidate list and the selection.
func (b *Board) ClearPotentialTargets() {
	b.selected = nil
	b.targets = b.targets[:0]
}

// FindCandidate returns the candidate of p that lands on target.
func (b *Board) FindCandidate(p *chess.Piece, target chess.Coord) (Candidate, bool) {
	if p == nil || p != b.selected {
		return Candidate{}, false
	}
	for _, c := range b.targets {
		if c.Target == target {
			return c, true
		}
	}
	return Candidate{}, false
}
