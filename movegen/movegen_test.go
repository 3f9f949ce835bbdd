package movegen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kasparov-go/chesscore"
	"github.com/kasparov-go/chesscore/movegen"
	"github.com/kasparov-go/chesscore/types"
)

func startPos() *chesscore.Position {
	p := &chesscore.Position{}
	p.Reset()
	return p
}

func TestStartingPositionHasTwentyLegalMoves(t *testing.T) {
	legal := movegen.Legal(startPos())
	require.Len(t, legal, 20)
}

func TestLegalIsSubsetOfPseudo(t *testing.T) {
	p := startPos()
	pseudo := movegen.Pseudo(p)
	legal := movegen.Legal(p)

	pseudoSet := make(map[types.Move]bool, len(pseudo))
	for _, m := range pseudo {
		pseudoSet[m] = true
	}
	for _, m := range legal {
		require.True(t, pseudoSet[m], "legal move %+v missing from pseudo-legal set", m)
	}
}

func TestLegalMovesNeverLeaveMoverInCheck(t *testing.T) {
	p := startPos()
	for _, m := range movegen.Legal(p) {
		trial := p.Copy()
		require.True(t, trial.MakeMove(m))
	}
}

func TestPinnedPieceCannotMoveOffPinLine(t *testing.T) {
	// White king d1, white rook d2 pinned by black rook d8 along the
	// d-file: the rook may shuffle along the file but can't step aside.
	p := &chesscore.Position{}
	p.Pieces[types.White][types.King] = types.D1.Bit()
	p.Pieces[types.White][types.Rook] = types.D2.Bit()
	p.Pieces[types.Black][types.King] = types.A8.Bit()
	p.Pieces[types.Black][types.Rook] = types.D8.Bit()
	p.ActiveColor = types.White
	p.EPTarget = types.NoSquare

	for _, m := range movegen.Legal(p) {
		if m.From == types.D2 {
			require.Equal(t, types.D2.File(), m.To.File(), "pinned rook must stay on the d-file")
		}
	}
}

func TestCastlingBlockedWhenPathAttacked(t *testing.T) {
	p := &chesscore.Position{}
	p.Pieces[types.White][types.King] = types.E1.Bit()
	p.Pieces[types.White][types.Rook] = types.H1.Bit()
	p.Pieces[types.Black][types.King] = types.A8.Bit()
	p.Pieces[types.Black][types.Rook] = types.F8.Bit() // attacks f1, the king's transit square
	p.ActiveColor = types.White
	p.CastlingRights = types.WhiteKingside
	p.EPTarget = types.NoSquare

	for _, m := range movegen.Legal(p) {
		require.False(t, m.From == types.E1 && m.To == types.G1, "castling through an attacked square must be excluded")
	}
}

func TestCastlingAvailableWhenClear(t *testing.T) {
	p := &chesscore.Position{}
	p.Pieces[types.White][types.King] = types.E1.Bit()
	p.Pieces[types.White][types.Rook] = types.H1.Bit()
	p.Pieces[types.Black][types.King] = types.A8.Bit()
	p.ActiveColor = types.White
	p.CastlingRights = types.WhiteKingside
	p.EPTarget = types.NoSquare

	found := false
	for _, m := range movegen.Legal(p) {
		if m.From == types.E1 && m.To == types.G1 {
			found = true
		}
	}
	require.True(t, found, "expected O-O to be available")
}

func TestEnPassantGenerated(t *testing.T) {
	p := &chesscore.Position{}
	p.Pieces[types.White][types.Pawn] = types.E5.Bit()
	p.Pieces[types.Black][types.Pawn] = types.D5.Bit()
	p.Pieces[types.White][types.King] = types.E1.Bit()
	p.Pieces[types.Black][types.King] = types.E8.Bit()
	p.ActiveColor = types.White
	p.EPTarget = types.D6

	found := false
	for _, m := range movegen.Legal(p) {
		if m.From == types.E5 && m.To == types.D6 {
			found = true
		}
	}
	require.True(t, found, "expected en passant capture to d6")
}

func TestPromotionGeneratesFourMoves(t *testing.T) {
	p := &chesscore.Position{}
	p.Pieces[types.White][types.Pawn] = types.A7.Bit()
	p.Pieces[types.White][types.King] = types.E1.Bit()
	p.Pieces[types.Black][types.King] = types.E8.Bit()
	p.ActiveColor = types.White
	p.EPTarget = types.NoSquare

	count := 0
	for _, m := range movegen.Legal(p) {
		if m.From == types.A7 && m.To == types.A8 {
			count++
		}
	}
	require.Equal(t, 4, count)
}
