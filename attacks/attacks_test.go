package attacks_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kasparov-go/chesscore/attacks"
	"github.com/kasparov-go/chesscore/types"
)

func init() { attacks.Init() }

func TestKnightAttacksCorner(t *testing.T) {
	a := attacks.Knight(types.A1)
	require.Equal(t, 2, popcount(a))
	require.NotZero(t, a&types.B3.Bit())
	require.NotZero(t, a&types.C2.Bit())
}

func TestKingAttacksCenter(t *testing.T) {
	a := attacks.King(types.E4)
	require.Equal(t, 8, popcount(a))
}

func TestPawnAttacksDiffer(t *testing.T) {
	white := attacks.Pawn(types.White, types.E4)
	black := attacks.Pawn(types.Black, types.E4)
	require.NotEqual(t, white, black)
	require.NotZero(t, white&types.D5.Bit())
	require.NotZero(t, white&types.F5.Bit())
	require.NotZero(t, black&types.D3.Bit())
	require.NotZero(t, black&types.F3.Bit())
}

func TestSlidingStopsAtFirstBlocker(t *testing.T) {
	// Rook on a1, blocker on a4: attack set must include a2, a3, a4 but
	// not a5 or beyond.
	occupied := types.A4.Bit()
	a := attacks.Sliding(types.Rook, types.A1, occupied)
	require.NotZero(t, a&types.A2.Bit())
	require.NotZero(t, a&types.A3.Bit())
	require.NotZero(t, a&types.A4.Bit())
	require.Zero(t, a&types.A5.Bit())
}

func TestSlidingEmptyBoardReachesEdge(t *testing.T) {
	a := attacks.Sliding(types.Bishop, types.A1, 0)
	require.NotZero(t, a&types.H8.Bit())
}

func TestSlidingRejectsNonSlider(t *testing.T) {
	require.Zero(t, attacks.Sliding(types.Knight, types.D4, 0))
}

type fakeBoard struct {
	pieces   map[types.Color]map[types.PieceType]types.Bitboard
	occupied types.Bitboard
}

func (b fakeBoard) PieceBB(c types.Color, pt types.PieceType) types.Bitboard {
	return b.pieces[c][pt]
}
func (b fakeBoard) Occupied() types.Bitboard { return b.occupied }

func TestIsSquareAttackedByRook(t *testing.T) {
	board := fakeBoard{
		pieces: map[types.Color]map[types.PieceType]types.Bitboard{
			types.White: {types.Rook: types.A1.Bit()},
			types.Black: {},
		},
		occupied: types.A1.Bit(),
	}
	require.True(t, attacks.IsSquareAttacked(board, types.A5, types.White))
	require.False(t, attacks.IsSquareAttacked(board, types.B5, types.White))
}

func popcount(bb types.Bitboard) int {
	n := 0
	for bb != 0 {
		n++
		bb &= bb - 1
	}
	return n
}
