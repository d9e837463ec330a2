package board

// Tensor is the fixed-shape board encoding fed to an Evaluator: 21
// planes of 8x8 float32, rank 8 (black's back rank) in row 0 to match
// the Serialize() row order.
//
// Planes:
//
//	 0- 5  white pawn, knight, bishop, rook, queen, king occupancy
//	 6-11  black pawn, knight, bishop, rook, queen, king occupancy
//	12     side to move (all 1 if white, all 0 if black)
//	13-16  castling rights K, Q, k, q: a single 1 on the rook's home
//	       square while the right is held
//	17     en-passant target square (one-hot, all 0 if none)
//	18     all 1 if the position is checkmate
//	19     all 1 if the position is drawn
//	20     all 1 if the game is still active
type Tensor [21][8][8]float32

// tensorPlane maps a PieceKind to its plane offset within a color block.
// The network's plane order (pawn, knight, bishop, rook, queen, king)
// differs from the PieceKind array order.
var tensorPlane = [6]int{
	Pawn:   0,
	Knight: 1,
	Bishop: 2,
	Rook:   3,
	Queen:  4,
	King:   5,
}

func planeRowCol(sq Square) (row, col int) {
	return 7 - sq.Rank(), sq.File()
}

func fillPlane(t *Tensor, plane int, v float32) {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			t[plane][r][c] = v
		}
	}
}

// ToTensor encodes the position into the fixed 21x8x8 representation.
func (p *Position) ToTensor() Tensor {
	var t Tensor

	for pt := Pawn; pt <= King; pt++ {
		bb := p.Pieces[White][pt]
		for bb != 0 {
			r, c := planeRowCol(bb.PopLSB())
			t[tensorPlane[pt]][r][c] = 1
		}
		bb = p.Pieces[Black][pt]
		for bb != 0 {
			r, c := planeRowCol(bb.PopLSB())
			t[6+tensorPlane[pt]][r][c] = 1
		}
	}

	if p.SideToMove == White {
		fillPlane(&t, 12, 1)
	}

	castlingHome := [4]struct {
		right CastlingRights
		rook  Square
	}{
		{WKingSide, H1},
		{WQueenSide, A1},
		{BKingSide, H8},
		{BQueenSide, A8},
	}
	for i, ch := range castlingHome {
		if p.CastlingRights&ch.right != 0 {
			r, c := planeRowCol(ch.rook)
			t[13+i][r][c] = 1
		}
	}

	if p.EnPassant != NoSquare {
		r, c := planeRowCol(p.EnPassant)
		t[17][r][c] = 1
	}

	switch p.GameState {
	case Checkmate:
		fillPlane(&t, 18, 1)
	case Draw:
		fillPlane(&t, 19, 1)
	default:
		fillPlane(&t, 20, 1)
	}

	return t
}
