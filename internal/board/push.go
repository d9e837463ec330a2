package board

// Push applies move to the position if it is legal, maintaining the
// Zobrist hash incrementally and rebuilding the check/pin/game-state
// caches for the new side to move. It returns false and leaves the
// position unchanged if the game is already decided or move is not
// legal in the current position.
func (p *Position) Push(m Move) bool {
	if p.GameState != Active || !p.legal.Contains(m) {
		return false
	}

	p.history = append(p.history, p.snapshot())

	us := p.SideToMove
	them := us.Other()
	from, to := m.From(), m.To()
	moving := p.PieceAt(from)

	hash := p.Hash
	if p.epIsCapturable() {
		hash ^= ZobristEnPassant(p.EnPassant.File())
	}

	isPawnMove := moving.Kind() == Pawn
	isCapture := false

	capturedSq := to
	if m.IsEnPassant() {
		if us == White {
			capturedSq = to - 8
		} else {
			capturedSq = to + 8
		}
	}
	if captured := p.PieceAt(capturedSq); captured != NoPiece {
		isCapture = true
		hash ^= ZobristPiece(captured.Color(), captured.Kind(), capturedSq)
		p.removePiece(capturedSq)
	}

	hash ^= ZobristPiece(us, moving.Kind(), from)
	p.removePiece(from)

	newKind := moving.Kind()
	if m.IsPromotion() {
		newKind = m.Promotion()
	}
	p.setPiece(NewPiece(newKind, us), to)
	hash ^= ZobristPiece(us, newKind, to)

	if m.IsCastling() {
		rookFrom, rookTo := castlingRookSquares(to)
		rook := p.PieceAt(rookFrom)
		hash ^= ZobristPiece(us, Rook, rookFrom)
		p.removePiece(rookFrom)
		p.setPiece(rook, rookTo)
		hash ^= ZobristPiece(us, Rook, rookTo)
	}

	hash ^= ZobristCastling(p.CastlingRights)
	p.CastlingRights &^= castlingRightsLost(from) | castlingRightsLost(to)
	hash ^= ZobristCastling(p.CastlingRights)

	p.EnPassant = NoSquare
	if isPawnMove && absSquareDiff(from, to) == 16 {
		if us == White {
			p.EnPassant = from + 8
		} else {
			p.EnPassant = from - 8
		}
	}

	if isPawnMove || isCapture {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}
	if us == Black {
		p.FullMoveNumber++
	}

	hash ^= ZobristSideToMove()
	p.SideToMove = them
	if p.epIsCapturable() {
		hash ^= ZobristEnPassant(p.EnPassant.File())
	}

	p.Hash = hash
	p.RepetitionCounts[p.Hash]++
	p.refreshCaches()

	return true
}

// Undo reverses the most recent Push, restoring the exact prior
// position. It returns false if there is no move to undo.
func (p *Position) Undo() bool {
	if len(p.history) == 0 {
		return false
	}

	p.RepetitionCounts[p.Hash]--
	if p.RepetitionCounts[p.Hash] <= 0 {
		delete(p.RepetitionCounts, p.Hash)
	}

	snap := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]
	p.restore(snap)

	return true
}

func (p *Position) snapshot() UndoInfo {
	return UndoInfo{
		Pieces:         p.Pieces,
		Occupied:       p.Occupied,
		AllOccupied:    p.AllOccupied,
		SideToMove:     p.SideToMove,
		CastlingRights: p.CastlingRights,
		EnPassant:      p.EnPassant,
		HalfMoveClock:  p.HalfMoveClock,
		FullMoveNumber: p.FullMoveNumber,
		Hash:           p.Hash,
		Checkers:       p.Checkers,
		Pinned:         p.Pinned,
		GameState:      p.GameState,
		legal:          p.legal,
	}
}

func (p *Position) restore(s UndoInfo) {
	p.Pieces = s.Pieces
	p.Occupied = s.Occupied
	p.AllOccupied = s.AllOccupied
	p.SideToMove = s.SideToMove
	p.CastlingRights = s.CastlingRights
	p.EnPassant = s.EnPassant
	p.HalfMoveClock = s.HalfMoveClock
	p.FullMoveNumber = s.FullMoveNumber
	p.Hash = s.Hash
	p.Checkers = s.Checkers
	p.Pinned = s.Pinned
	p.GameState = s.GameState
	p.legal = s.legal
}

func castlingRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case G1:
		return H1, F1
	case C1:
		return A1, D1
	case G8:
		return H8, F8
	case C8:
		return A8, D8
	default:
		return NoSquare, NoSquare
	}
}

// castlingRightsLost returns the castling-rights bits that are revoked
// when a king or rook moves away from, or is captured on, sq.
func castlingRightsLost(sq Square) CastlingRights {
	switch sq {
	case E1:
		return WKingSide | WQueenSide
	case A1:
		return WQueenSide
	case H1:
		return WKingSide
	case E8:
		return BKingSide | BQueenSide
	case A8:
		return BQueenSide
	case H8:
		return BKingSide
	default:
		return NoCastling
	}
}

func absSquareDiff(a, b Square) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
