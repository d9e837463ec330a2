package board

// Color represents the color of a piece or player.
// Encoding fixed at WHITE=1, BLACK=0 since both color-indexed arrays and
// the side-to-move Zobrist XOR key rely on this exact numbering.
type Color uint8

const (
	Black   Color = 0
	White   Color = 1
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// Symbol returns the FEN side-to-move symbol ("w" or "b").
func (c Color) Symbol() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PieceKind represents the type of a chess piece.
// Encoding fixed at PAWN=0, ROOK=1, BISHOP=2, KNIGHT=3, QUEEN=4, KING=5
// since it indexes bitboard arrays and Zobrist tables.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Rook
	Bishop
	Knight
	Queen
	King
	NoPieceKind PieceKind = 6
)

// String returns the piece kind name.
func (pt PieceKind) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the FEN character for the piece kind (lowercase).
func (pt PieceKind) Char() byte {
	chars := []byte{'p', 'r', 'b', 'n', 'q', 'k', ' '}
	if pt > NoPieceKind {
		return ' '
	}
	return chars[pt]
}

// IsPromotable returns true if pt is one of the four legal promotion kinds.
func (pt PieceKind) IsPromotable() bool {
	return pt == Rook || pt == Bishop || pt == Knight || pt == Queen
}

// PieceValue gives the material value of each PieceKind in centipawns,
// indexed by the kind's numeric encoding.
var PieceValue = [7]int{100, 500, 330, 320, 900, 20000, 0}

// Piece combines PieceKind and Color into a single value.
// Encoded as: kind + color*6.
type Piece uint8

const (
	WhitePawn   Piece = Piece(Pawn) + Piece(White)*6
	WhiteRook   Piece = Piece(Rook) + Piece(White)*6
	WhiteBishop Piece = Piece(Bishop) + Piece(White)*6
	WhiteKnight Piece = Piece(Knight) + Piece(White)*6
	WhiteQueen  Piece = Piece(Queen) + Piece(White)*6
	WhiteKing   Piece = Piece(King) + Piece(White)*6
	BlackPawn   Piece = Piece(Pawn) + Piece(Black)*6
	BlackRook   Piece = Piece(Rook) + Piece(Black)*6
	BlackBishop Piece = Piece(Bishop) + Piece(Black)*6
	BlackKnight Piece = Piece(Knight) + Piece(Black)*6
	BlackQueen  Piece = Piece(Queen) + Piece(Black)*6
	BlackKing   Piece = Piece(King) + Piece(Black)*6
	NoPiece     Piece = 12
)

// NewPiece creates a Piece from PieceKind and Color.
func NewPiece(pt PieceKind, c Color) Piece {
	if pt >= NoPieceKind || c >= NoColor {
		return NoPiece
	}
	return Piece(pt) + Piece(c)*6
}

// Kind returns the PieceKind of the piece.
func (p Piece) Kind() PieceKind {
	if p >= NoPiece {
		return NoPieceKind
	}
	return PieceKind(p % 6)
}

// Color returns the Color of the piece.
func (p Piece) Color() Color {
	if p >= NoPiece {
		return NoColor
	}
	return Color(p / 6)
}

// String returns the FEN character for the piece.
// Uppercase for WHITE, lowercase for BLACK.
func (p Piece) String() string {
	if p >= NoPiece {
		return ""
	}
	chars := "prbnqkPRBNQK"
	return string(chars[p])
}

// PieceFromChar converts a FEN character to a Piece.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return WhitePawn
	case 'R':
		return WhiteRook
	case 'B':
		return WhiteBishop
	case 'N':
		return WhiteKnight
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'r':
		return BlackRook
	case 'b':
		return BlackBishop
	case 'n':
		return BlackKnight
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// Value returns the material value of the piece in centipawns.
func (p Piece) Value() int {
	return PieceValue[p.Kind()]
}
