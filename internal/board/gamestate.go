package board

// GameState classifies a position as still being played or decided.
type GameState uint8

const (
	Active GameState = iota
	Checkmate
	Draw
)

func (s GameState) String() string {
	switch s {
	case Active:
		return "active"
	case Checkmate:
		return "checkmate"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// classify recomputes GameState from scratch. Called by refreshCaches
// once Checkers, Pinned and the legal-move cache are up to date. Only
// the forced draw rules (stalemate, 75 moves, fivefold repetition,
// insufficient material) end the game here; the claimable 50-move and
// threefold variants stay queries.
func (p *Position) classify() GameState {
	if !p.HasLegalMoves() {
		if p.InCheck() {
			return Checkmate
		}
		return Draw // stalemate
	}
	if p.Is75MoveRule() || p.IsFivefoldRepetition() || p.IsInsufficientMaterial() {
		return Draw
	}
	return Active
}

// IsGameOver reports whether the game has ended by checkmate or a
// forced draw.
func (p *Position) IsGameOver() bool {
	return p.GameState != Active
}

// IsCheckmate reports whether the side to move has been checkmated.
func (p *Position) IsCheckmate() bool {
	return p.GameState == Checkmate
}

// IsStalemate reports whether the side to move has no legal move and is
// not in check.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}

// IsDraw reports whether the position is drawn by any rule.
func (p *Position) IsDraw() bool {
	return p.GameState == Draw
}

// Is50MoveRule reports whether 50 full moves (100 half-moves) have
// passed since the last pawn move or capture.
func (p *Position) Is50MoveRule() bool {
	return p.HalfMoveClock >= 100
}

// Is75MoveRule reports whether 75 full moves (150 half-moves) have
// passed since the last pawn move or capture, the stricter rule under
// which a draw is forced rather than merely claimable.
func (p *Position) Is75MoveRule() bool {
	return p.HalfMoveClock >= 150
}

// IsThreefoldRepetition reports whether the current position (by
// Zobrist hash) has occurred at least three times.
func (p *Position) IsThreefoldRepetition() bool {
	return p.RepetitionCounts[p.Hash] >= 3
}

// IsFivefoldRepetition reports whether the current position has
// occurred at least five times, the stricter rule under which a draw is
// forced rather than merely claimable.
func (p *Position) IsFivefoldRepetition() bool {
	return p.RepetitionCounts[p.Hash] >= 5
}

// IsInsufficientMaterial reports whether neither side has enough
// material remaining to deliver checkmate by any sequence of legal
// moves: king vs king, king+minor vs king, or king+bishop vs
// king+bishop on matching-color squares.
func (p *Position) IsInsufficientMaterial() bool {
	if p.Pieces[White][Pawn]|p.Pieces[Black][Pawn] != 0 {
		return false
	}
	if p.Pieces[White][Rook]|p.Pieces[Black][Rook]|p.Pieces[White][Queen]|p.Pieces[Black][Queen] != 0 {
		return false
	}

	wMinor := p.Pieces[White][Knight].PopCount() + p.Pieces[White][Bishop].PopCount()
	bMinor := p.Pieces[Black][Knight].PopCount() + p.Pieces[Black][Bishop].PopCount()

	if wMinor == 0 && bMinor == 0 {
		return true
	}
	if wMinor+bMinor == 1 {
		return true
	}
	if wMinor == 1 && bMinor == 1 &&
		p.Pieces[White][Bishop] != 0 && p.Pieces[Black][Bishop] != 0 {
		wsq := p.Pieces[White][Bishop].LSB()
		bsq := p.Pieces[Black][Bishop].LSB()
		return squareColor(wsq) == squareColor(bsq)
	}
	return false
}

func squareColor(sq Square) int {
	return (sq.File() + sq.Rank()) & 1
}
