package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func planeSum(t Tensor, plane int) float32 {
	var sum float32
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			sum += t[plane][r][c]
		}
	}
	return sum
}

func TestToTensorStartingPosition(t *testing.T) {
	tensor := NewPosition().ToTensor()

	// White pawns occupy rank 2, which is row 6 with rank 8 in row 0.
	for c := 0; c < 8; c++ {
		require.Equal(t, float32(1), tensor[0][6][c], "white pawn file %d", c)
	}
	// Plane order within a color block is pawn, knight, bishop, rook,
	// queen, king.
	require.Equal(t, float32(1), tensor[1][7][1], "white knight b1")
	require.Equal(t, float32(1), tensor[1][7][6], "white knight g1")
	require.Equal(t, float32(1), tensor[2][7][2], "white bishop c1")
	require.Equal(t, float32(1), tensor[3][7][0], "white rook a1")
	require.Equal(t, float32(1), tensor[4][7][3], "white queen d1")
	require.Equal(t, float32(1), tensor[5][7][4], "white king e1")
	require.Equal(t, float32(1), tensor[6][1][0], "black pawn a7")
	require.Equal(t, float32(1), tensor[11][0][4], "black king e8")

	require.Equal(t, float32(64), planeSum(tensor, 12), "white to move")

	// Castling planes carry a single 1 on the rook's home square.
	require.Equal(t, float32(1), planeSum(tensor, 13))
	require.Equal(t, float32(1), tensor[13][7][7], "K right marks h1")
	require.Equal(t, float32(1), tensor[14][7][0], "Q right marks a1")
	require.Equal(t, float32(1), tensor[15][0][7], "k right marks h8")
	require.Equal(t, float32(1), tensor[16][0][0], "q right marks a8")

	require.Zero(t, planeSum(tensor, 17), "no en passant")
	require.Zero(t, planeSum(tensor, 18))
	require.Zero(t, planeSum(tensor, 19))
	require.Equal(t, float32(64), planeSum(tensor, 20), "game active")
}

func TestToTensorSideAndEnPassant(t *testing.T) {
	pos := NewPosition()
	push(t, pos, "e2e4")

	tensor := pos.ToTensor()
	require.Zero(t, planeSum(tensor, 12), "black to move")
	require.Equal(t, float32(1), planeSum(tensor, 17))
	require.Equal(t, float32(1), tensor[17][5][4], "en passant target e3")

	// The pushed pawn moved within the white pawn plane.
	require.Equal(t, float32(1), tensor[0][4][4], "white pawn e4")
	require.Zero(t, tensor[0][6][4], "e2 vacated")
}

func TestToTensorTerminalPlanes(t *testing.T) {
	mate := NewPosition()
	push(t, mate, "e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7")
	tensor := mate.ToTensor()
	require.Equal(t, float32(64), planeSum(tensor, 18), "checkmate plane")
	require.Zero(t, planeSum(tensor, 19))
	require.Zero(t, planeSum(tensor, 20))

	stale := mustParse(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	tensor = stale.ToTensor()
	require.Zero(t, planeSum(tensor, 18))
	require.Equal(t, float32(64), planeSum(tensor, 19), "draw plane")
	require.Zero(t, planeSum(tensor, 20))
}

func TestToTensorLostCastlingRights(t *testing.T) {
	pos := mustParse(t, "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	push(t, pos, "e1g1")

	tensor := pos.ToTensor()
	require.Zero(t, planeSum(tensor, 13), "white rights spent")
	require.Zero(t, planeSum(tensor, 14))
	require.Equal(t, float32(1), tensor[15][0][7])
	require.Equal(t, float32(1), tensor[16][0][0])
}
