package board

// computeLegalMoves filters a pseudo-legal move list down to moves that
// do not leave the mover's own king in check, without mutating the
// position: each candidate is checked against the cached Checkers/Pinned
// sets (or, for king moves and en passant, a small local occupancy
// simulation) rather than being made and unmade.
func (p *Position) computeLegalMoves() *MoveList {
	pseudo := p.generatePseudoLegal()
	legal := NewMoveList()

	us := p.SideToMove
	them := us.Other()
	ksq := p.KingSquare(us)
	numCheckers := p.Checkers.PopCount()

	var checkMask Bitboard
	switch numCheckers {
	case 0:
		checkMask = Universe
	case 1:
		checkerSq := p.Checkers.LSB()
		checkMask = p.Checkers
		if isSlider(p.PieceAt(checkerSq).Kind()) {
			checkMask |= Between(checkerSq, ksq)
		}
	default:
		checkMask = Empty
	}

	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.Get(i)
		if p.isLegalMove(m, us, them, ksq, numCheckers, checkMask) {
			legal.Add(m)
		}
	}
	return legal
}

func isSlider(pt PieceKind) bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

func (p *Position) isLegalMove(m Move, us, them Color, ksq Square, numCheckers int, checkMask Bitboard) bool {
	from, to := m.From(), m.To()

	if p.PieceAt(from).Kind() == King {
		if m.IsCastling() {
			return true // generation already verified path safety and check-free start
		}
		occAfter := (p.AllOccupied &^ SquareBB(from)) | SquareBB(to)
		return p.AttackersByColor(to, them, occAfter) == 0
	}

	if numCheckers >= 2 {
		return false
	}

	if m.IsEnPassant() {
		return p.isLegalEnPassant(m, us, them, ksq, numCheckers, checkMask)
	}

	if numCheckers == 1 && checkMask&SquareBB(to) == 0 {
		return false
	}

	if p.Pinned&SquareBB(from) != 0 && Line(ksq, from)&SquareBB(to) == 0 {
		return false
	}

	return true
}

func (p *Position) isLegalEnPassant(m Move, us, them Color, ksq Square, numCheckers int, checkMask Bitboard) bool {
	from, to := m.From(), m.To()

	var capturedSq Square
	if us == White {
		capturedSq = to - 8
	} else {
		capturedSq = to + 8
	}

	if numCheckers == 1 && checkMask&(SquareBB(to)|SquareBB(capturedSq)) == 0 {
		return false
	}
	if p.Pinned&SquareBB(from) != 0 && Line(ksq, from)&SquareBB(to) == 0 {
		return false
	}

	occAfter := p.AllOccupied &^ SquareBB(from) &^ SquareBB(capturedSq) | SquareBB(to)
	return p.AttackersByColor(ksq, them, occAfter) == 0
}

// HasLegalMoves reports whether the side to move has any legal move.
func (p *Position) HasLegalMoves() bool {
	return p.legal.Len() > 0
}
