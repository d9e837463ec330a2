package board

// generatePseudoLegal produces every move the side to move could make
// ignoring whether its own king ends up in check. Legality (pins, check
// masks, king-safety simulation) is applied afterward by computeLegalMoves.
func (p *Position) generatePseudoLegal() *MoveList {
	ml := NewMoveList()
	us := p.SideToMove
	them := us.Other()
	occ := p.AllOccupied
	own := p.Occupied[us]
	enemy := p.Occupied[them]

	p.genPawnMoves(ml, us, enemy, occ)
	p.genLeaperMoves(ml, KnightMasks, us, Knight, own)
	p.genSliderMoves(ml, BishopAttacks, us, Bishop, own, occ)
	p.genSliderMoves(ml, RookAttacks, us, Rook, own, occ)
	p.genSliderMoves(ml, QueenAttacks, us, Queen, own, occ)
	p.genLeaperMoves(ml, KingMasks, us, King, own)

	if p.Checkers == 0 {
		p.genCastling(ml, us)
	}

	return ml
}

func addPromotions(ml *MoveList, from, to Square) {
	ml.Add(NewPromotion(from, to, Queen))
	ml.Add(NewPromotion(from, to, Rook))
	ml.Add(NewPromotion(from, to, Bishop))
	ml.Add(NewPromotion(from, to, Knight))
}

func (p *Position) genPawnMoves(ml *MoveList, us Color, enemy, occ Bitboard) {
	empty := ^occ
	promRank := PawnPromotionRank[us]
	pawns := p.Pieces[us][Pawn]

	for pawns != 0 {
		from := pawns.PopLSB()

		single := PawnSinglePushMask(from, us) & empty
		if single != 0 {
			to := single.LSB()
			if SquareBB(to)&promRank != 0 {
				addPromotions(ml, from, to)
			} else {
				ml.Add(NewMove(from, to))
			}

			double := PawnDoublePushMask(from, us)
			if double != 0 && double&empty != 0 {
				ml.Add(NewMove(from, double.LSB()))
			}
		}

		attacks := PawnAtkMask(from, us) & enemy
		for attacks != 0 {
			to := attacks.PopLSB()
			if SquareBB(to)&promRank != 0 {
				addPromotions(ml, from, to)
			} else {
				ml.Add(NewMove(from, to))
			}
		}

		if p.EnPassant != NoSquare && PawnAtkMask(from, us)&SquareBB(p.EnPassant) != 0 {
			ml.Add(NewEnPassant(from, p.EnPassant))
		}
	}
}

func (p *Position) genLeaperMoves(ml *MoveList, masks func(Square) Bitboard, us Color, kind PieceKind, own Bitboard) {
	pieces := p.Pieces[us][kind]
	for pieces != 0 {
		from := pieces.PopLSB()
		targets := masks(from) &^ own
		for targets != 0 {
			ml.Add(NewMove(from, targets.PopLSB()))
		}
	}
}

func (p *Position) genSliderMoves(ml *MoveList, attacksFn func(Square, Bitboard) Bitboard, us Color, kind PieceKind, own, occ Bitboard) {
	pieces := p.Pieces[us][kind]
	for pieces != 0 {
		from := pieces.PopLSB()
		targets := attacksFn(from, occ) &^ own
		for targets != 0 {
			ml.Add(NewMove(from, targets.PopLSB()))
		}
	}
}

func (p *Position) genCastling(ml *MoveList, us Color) {
	them := us.Other()

	if us == White {
		if p.CastlingRights&WKingSide != 0 &&
			p.AllOccupied&(SquareBB(F1)|SquareBB(G1)) == 0 &&
			!p.IsSquareAttacked(F1, them) && !p.IsSquareAttacked(G1, them) {
			ml.Add(NewCastling(E1, G1))
		}
		if p.CastlingRights&WQueenSide != 0 &&
			p.AllOccupied&(SquareBB(B1)|SquareBB(C1)|SquareBB(D1)) == 0 &&
			!p.IsSquareAttacked(D1, them) && !p.IsSquareAttacked(C1, them) {
			ml.Add(NewCastling(E1, C1))
		}
		return
	}

	if p.CastlingRights&BKingSide != 0 &&
		p.AllOccupied&(SquareBB(F8)|SquareBB(G8)) == 0 &&
		!p.IsSquareAttacked(F8, them) && !p.IsSquareAttacked(G8, them) {
		ml.Add(NewCastling(E8, G8))
	}
	if p.CastlingRights&BQueenSide != 0 &&
		p.AllOccupied&(SquareBB(B8)|SquareBB(C8)|SquareBB(D8)) == 0 &&
		!p.IsSquareAttacked(D8, them) && !p.IsSquareAttacked(C8, them) {
		ml.Add(NewCastling(E8, C8))
	}
}
