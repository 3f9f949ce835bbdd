package chesscore

import (
	"github.com/kasparov-go/chesscore/attacks"
	"github.com/kasparov-go/chesscore/bitutil"
	"github.com/kasparov-go/chesscore/types"
)

// MakeMove applies m to the position unconditionally and returns whether
// the side that just moved left its own king safe. It is the caller's
// responsibility to have already established that m is pseudo-legal
// (movegen.Pseudo); MakeMove only adds the king-safety check that
// pseudo-legal generation cannot cheaply do on its own.
//
// The move is applied before the self-check runs, so on a false return the
// position is left in the post-move state, not rolled back. Callers that
// need the filtered legal move list (movegen.Legal) operate on Copy() so a
// rejected trial move never corrupts the original position; MakeMove
// itself never allocates a copy.
func (p *Position) MakeMove(m types.Move) bool {
	mover := p.ActiveColor
	opponent := mover.Opponent()
	_, movedType := p.PieceAt(m.From)
	_, capturedType := p.PieceAt(m.To)
	isEnPassant := movedType == types.Pawn && m.To == p.EPTarget && p.EPTarget != types.NoSquare

	switch {
	case movedType == types.King && abs(m.To.File()-m.From.File()) == 2:
		p.applyCastle(mover, m)
	case isEnPassant:
		p.applyEnPassant(mover, m)
		capturedType = types.Pawn
	case movedType == types.Pawn && (m.To.Rank() == 0 || m.To.Rank() == 7):
		p.applyPromotion(mover, m)
	default:
		p.applyNormal(mover, m)
	}

	p.updateEPTarget(mover, movedType, m)
	p.updateCastlingRights(mover, movedType, m)
	p.updateClocks(movedType, capturedType, mover)

	p.ActiveColor = opponent
	king := bitutil.LSB(p.Pieces[mover][types.King])
	return !attacks.IsSquareAttacked(p, king, opponent)
}

// clear removes any piece of color c standing on sq from its bitboard.
func (p *Position) clear(c types.Color, sq types.Square) {
	for pt := types.Pawn; pt <= types.King; pt++ {
		p.Pieces[c][pt] &^= sq.Bit()
	}
}

// applyNormal handles quiet moves and captures of any non-pawn-special,
// non-castling, non-promotion kind.
func (p *Position) applyNormal(mover types.Color, m types.Move) {
	_, movedType := p.PieceAt(m.From)
	p.clear(mover.Opponent(), m.To)
	p.Pieces[mover][movedType] &^= m.From.Bit()
	p.Pieces[mover][movedType] |= m.To.Bit()
}

// applyEnPassant removes the captured pawn, which stands beside the
// destination square rather than on it.
func (p *Position) applyEnPassant(mover types.Color, m types.Move) {
	p.Pieces[mover][types.Pawn] &^= m.From.Bit()
	p.Pieces[mover][types.Pawn] |= m.To.Bit()

	var capturedSq types.Square
	if mover == types.White {
		capturedSq = types.NewSquare(m.To.File(), m.To.Rank()-1)
	} else {
		capturedSq = types.NewSquare(m.To.File(), m.To.Rank()+1)
	}
	p.Pieces[mover.Opponent()][types.Pawn] &^= capturedSq.Bit()
}

// applyPromotion replaces the pawn reaching the back rank with m.Promotion,
// handling a capture-promotion exactly as a normal capture plus swap.
func (p *Position) applyPromotion(mover types.Color, m types.Move) {
	p.clear(mover.Opponent(), m.To)
	p.Pieces[mover][types.Pawn] &^= m.From.Bit()
	p.Pieces[mover][m.Promotion] |= m.To.Bit()
}

// castleRookSquares maps a king destination square to the rook's origin
// and destination squares for that castling move.
var castleRookSquares = map[types.Square][2]types.Square{
	types.G1: {types.H1, types.F1},
	types.C1: {types.A1, types.D1},
	types.G8: {types.H8, types.F8},
	types.C8: {types.A8, types.D8},
}

func (p *Position) applyCastle(mover types.Color, m types.Move) {
	p.Pieces[mover][types.King] &^= m.From.Bit()
	p.Pieces[mover][types.King] |= m.To.Bit()

	rook := castleRookSquares[m.To]
	p.Pieces[mover][types.Rook] &^= rook[0].Bit()
	p.Pieces[mover][types.Rook] |= rook[1].Bit()
}

// updateEPTarget sets the en passant target square after a pawn double
// push, and clears it otherwise: en passant is only ever capturable on the
// very next move.
func (p *Position) updateEPTarget(mover types.Color, movedType types.PieceType, m types.Move) {
	p.EPTarget = types.NoSquare
	if movedType != types.Pawn {
		return
	}
	diff := m.To.Rank() - m.From.Rank()
	if diff == 2 {
		p.EPTarget = types.NewSquare(m.From.File(), m.From.Rank()+1)
	} else if diff == -2 {
		p.EPTarget = types.NewSquare(m.From.File(), m.From.Rank()-1)
	}
}

// updateCastlingRights revokes rights whenever a king moves, or a rook
// moves off (or is captured on) its starting square.
func (p *Position) updateCastlingRights(mover types.Color, movedType types.PieceType, m types.Move) {
	if movedType == types.King {
		if mover == types.White {
			p.CastlingRights &^= types.WhiteKingside | types.WhiteQueenside
		} else {
			p.CastlingRights &^= types.BlackKingside | types.BlackQueenside
		}
	}

	revoke := func(sq types.Square, right types.CastlingRights) {
		if m.From == sq || m.To == sq {
			p.CastlingRights &^= right
		}
	}
	revoke(types.A1, types.WhiteQueenside)
	revoke(types.H1, types.WhiteKingside)
	revoke(types.A8, types.BlackQueenside)
	revoke(types.H8, types.BlackKingside)
}

// updateClocks resets the halfmove clock on pawn moves and captures, and
// increments the fullmove number after black's move.
func (p *Position) updateClocks(movedType, capturedType types.PieceType, mover types.Color) {
	if movedType == types.Pawn || capturedType != types.NoPieceType {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}
	if mover == types.Black {
		p.FullmoveNumber++
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
