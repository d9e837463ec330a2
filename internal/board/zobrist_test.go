package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// playRandomGame plays up to maxPlies random legal moves, invoking
// check after every push.
func playRandomGame(t *testing.T, pos *Position, rng *rand.Rand, maxPlies int, check func(*Position)) {
	t.Helper()
	for ply := 0; ply < maxPlies && !pos.IsGameOver(); ply++ {
		moves := pos.LegalMoves()
		m := moves.Get(rng.Intn(moves.Len()))
		require.True(t, pos.Push(m), "push %s in %s", m, pos.ToFEN())
		check(pos)
	}
}

func TestIncrementalHashMatchesRebuild(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	rng := rand.New(rand.NewSource(42))
	for _, fen := range fens {
		pos := mustParse(t, fen)
		playRandomGame(t, pos, rng, 120, func(p *Position) {
			require.Equal(t, p.ComputeHash(), p.Hash,
				"incremental hash diverged in %s", p.ToFEN())
		})
	}
}

func TestOccupancyInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pos := NewPosition()

	playRandomGame(t, pos, rng, 200, func(p *Position) {
		for _, c := range [2]Color{White, Black} {
			var union Bitboard
			for pt := Pawn; pt <= King; pt++ {
				union |= p.Pieces[c][pt]
			}
			require.Equal(t, union, p.Occupied[c])
		}
		require.Equal(t, p.Occupied[White]|p.Occupied[Black], p.AllOccupied)

		// Every occupied square resolves to a piece of the matching
		// color, every empty square to none.
		for sq := A1; sq <= H8; sq++ {
			piece := p.PieceAt(sq)
			if p.AllOccupied.IsSet(sq) {
				require.NotEqual(t, NoPiece, piece, "square %s", sq)
				require.True(t, p.Pieces[piece.Color()][piece.Kind()].IsSet(sq))
			} else {
				require.Equal(t, NoPiece, piece, "square %s", sq)
			}
		}
	})
}

func TestFENRoundTripPreservesPosition(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	pos := NewPosition()

	playRandomGame(t, pos, rng, 150, func(p *Position) {
		if p.IsFivefoldRepetition() {
			// A fresh parse has no repetition history to classify from.
			return
		}
		rebuilt, err := ParseFEN(p.ToFEN())
		require.NoError(t, err, "emitted FEN must parse: %s", p.ToFEN())
		require.Equal(t, p.ToFEN(), rebuilt.ToFEN())
		require.Equal(t, p.Hash, rebuilt.Hash)
		if diff := positionDiff(p, rebuilt); diff != "" {
			t.Fatalf("FEN round trip changed position (-played +rebuilt):\n%s", diff)
		}
	})
}

// A set but uncapturable en-passant square must not change the hash:
// otherwise two transpositions of the same position would fail to count
// as repetitions.
func TestEnPassantHashedOnlyWhenCapturable(t *testing.T) {
	uncapturable := mustParse(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	noEP := mustParse(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	require.Equal(t, noEP.Hash, uncapturable.Hash)

	capturable := mustParse(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	ignored := mustParse(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq - 0 3")
	require.NotEqual(t, ignored.Hash, capturable.Hash)
}

func TestHashDetectsSideToMove(t *testing.T) {
	white := mustParse(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	black := mustParse(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	require.NotEqual(t, white.Hash, black.Hash)
}

func TestHashIsReproducible(t *testing.T) {
	// Keys come from a fixed-seed generator, so a known position always
	// hashes to the same value within one process and across runs.
	a := NewPosition()
	b := NewPosition()
	require.Equal(t, a.Hash, b.Hash)

	push(t, a, "e2e4", "e7e5")
	push(t, b, "e2e4", "e7e5")
	require.Equal(t, a.Hash, b.Hash)
}
