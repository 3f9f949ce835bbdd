package bitutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kasparov-go/chesscore/bitutil"
	"github.com/kasparov-go/chesscore/types"
)

func TestLSBAndPopLSB(t *testing.T) {
	for i := 0; i < 64; i++ {
		bb := types.Bitboard(1) << uint(i)
		require.Equal(t, types.Square(i), bitutil.LSB(bb))

		popped := bitutil.PopLSB(&bb)
		require.Equal(t, types.Square(i), popped)
		require.Zero(t, bb)
	}

	empty := types.Bitboard(0)
	require.Equal(t, types.NoSquare, bitutil.PopLSB(&empty))
}

func TestMSB(t *testing.T) {
	require.Equal(t, types.NoSquare, bitutil.MSB(0))
	require.Equal(t, types.H8, bitutil.MSB(types.Bitboard(0x8000000000000000)))
	require.Equal(t, types.A1, bitutil.MSB(types.Bitboard(1)))
}

func TestPopCount(t *testing.T) {
	require.Equal(t, 1, bitutil.PopCount(0x8000000000000000))
	require.Equal(t, 64, bitutil.PopCount(0xFFFFFFFFFFFFFFFF))
	require.Equal(t, 0, bitutil.PopCount(0))
}

func TestRankAndFileMask(t *testing.T) {
	require.Equal(t, types.Bitboard(0xFF), bitutil.RankMask(0))
	require.Equal(t, types.Bitboard(0xFF00000000000000), bitutil.RankMask(7))
	require.Equal(t, types.Bitboard(0x0101010101010101), bitutil.FileMask(0))
}

func TestDiagMasks(t *testing.T) {
	d := bitutil.DiagMask(types.A1)
	require.NotZero(t, d&types.A1.Bit())
	require.NotZero(t, d&types.H8.Bit())

	ad := bitutil.AntiDiagMask(types.H1)
	require.NotZero(t, ad&types.H1.Bit())
	require.NotZero(t, ad&types.A8.Bit())
}
