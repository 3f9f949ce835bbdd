package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kasparov-go/chesscore/types"
)

func TestSquareRoundTrip(t *testing.T) {
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			sq := types.NewSquare(file, rank)
			require.Equal(t, file, sq.File())
			require.Equal(t, rank, sq.Rank())
		}
	}
}

func TestSquareString(t *testing.T) {
	require.Equal(t, "a1", types.A1.String())
	require.Equal(t, "h8", types.H8.String())
	require.Equal(t, "e4", types.NewSquare(4, 3).String())
	require.Equal(t, "-", types.NoSquare.String())
}

func TestColorOpponent(t *testing.T) {
	require.Equal(t, types.Black, types.White.Opponent())
	require.Equal(t, types.White, types.Black.Opponent())
	require.Equal(t, types.NoColor, types.NoColor.Opponent())
}

func TestPieceTypeValue(t *testing.T) {
	require.Equal(t, 1, types.Pawn.Value())
	require.Equal(t, 9, types.Queen.Value())
	require.Equal(t, 0, types.King.Value())
	require.Equal(t, 0, types.NoPieceType.Value())
}

func TestPieceTypeLetter(t *testing.T) {
	require.Equal(t, byte('P'), types.Pawn.Letter())
	require.Equal(t, byte('K'), types.King.Letter())
	require.Equal(t, byte(0), types.NoPieceType.Letter())
}

func TestMoveNullAndValid(t *testing.T) {
	require.True(t, types.NullMove.IsNull())
	require.False(t, types.NullMove.Valid())

	m := types.Move{From: types.E2, To: types.E4, Promotion: types.NoPieceType}
	require.True(t, m.Valid())
	require.False(t, m.IsNull())
}
