package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kasparov-go/chesscore"
	"github.com/kasparov-go/chesscore/fen"
	"github.com/kasparov-go/chesscore/oracle"
)

func TestFoolsMateIsCheckmate(t *testing.T) {
	p, err := fen.Parse("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	require.True(t, oracle.IsCheckmate(p))
	require.False(t, oracle.IsStalemate(p))
}

func TestStartingPositionIsNeitherMateNorStalemate(t *testing.T) {
	p := &chesscore.Position{}
	p.Reset()
	require.False(t, oracle.IsCheckmate(p))
	require.False(t, oracle.IsStalemate(p))
}

func TestStalematePosition(t *testing.T) {
	// Classic stalemate: black king in the corner, no legal moves, not in check.
	p, err := fen.Parse("7k/5K2/6Q1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	require.True(t, oracle.IsStalemate(p))
	require.False(t, oracle.IsCheckmate(p))
}

func TestInsufficientMaterialMatrix(t *testing.T) {
	cases := []struct {
		name       string
		fenStr     string
		expectDraw bool
	}{
		{"king vs king", "8/8/4k3/8/8/4K3/8/8 w - - 0 1", true},
		{"king+bishop vs king", "8/8/4k3/8/8/3BK3/8/8 w - - 0 1", true},
		{"king+knight vs king", "8/8/4k3/8/8/3NK3/8/8 w - - 0 1", true},
		{"king+bishop vs king+bishop same color", "8/3b4/4k3/8/8/3BK3/8/8 w - - 0 1", true},
		{"king+bishop vs king+bishop opposite color", "8/4b3/4k3/8/8/3BK3/8/8 w - - 0 1", false},
		{"king+rook vs king is sufficient", "8/8/4k3/8/8/3RK3/8/8 w - - 0 1", false},
		{"two knights is not forced but not flagged insufficient here", "8/8/4k3/8/8/2NNK3/8/8 w - - 0 1", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := fen.Parse(tc.fenStr)
			require.NoError(t, err)
			require.Equal(t, tc.expectDraw, oracle.IsInsufficientMaterial(p))
		})
	}
}

func TestFiftyMoveDraw(t *testing.T) {
	p := &chesscore.Position{}
	p.Reset()
	p.HalfmoveClock = 99
	require.False(t, oracle.IsFiftyMoveDraw(p))
	p.HalfmoveClock = 100
	require.True(t, oracle.IsFiftyMoveDraw(p))
}
