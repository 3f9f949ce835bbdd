// Package oracle answers the termination questions that sit outside move
// generation proper: is the side to move checkmated, stalemated, is the
// material on the board insufficient to force mate, and has the fifty-move
// clock expired. Every function is a free function over a *chesscore.Position
// rather than a stateful game object, since the oracle is purely
// computational and has no use for move history beyond the halfmove clock
// the position already carries.
package oracle

import (
	"github.com/kasparov-go/chesscore"
	"github.com/kasparov-go/chesscore/bitutil"
	"github.com/kasparov-go/chesscore/movegen"
	"github.com/kasparov-go/chesscore/types"
)

// IsCheckmate reports whether the side to move has no legal moves and its
// king is currently attacked.
func IsCheckmate(p *chesscore.Position) bool {
	return p.InCheck() && len(movegen.Legal(p)) == 0
}

// IsStalemate reports whether the side to move has no legal moves but its
// king is not currently attacked.
func IsStalemate(p *chesscore.Position) bool {
	return !p.InCheck() && len(movegen.Legal(p)) == 0
}

// IsFiftyMoveDraw reports whether the halfmove clock has reached 100
// (fifty full moves without a pawn move or a capture by either side).
func IsFiftyMoveDraw(p *chesscore.Position) bool {
	return p.HalfmoveClock >= 100
}

// IsInsufficientMaterial reports whether neither side has enough material
// left to deliver checkmate against any sequence of legal moves by the
// other. It recognizes exactly the positions conventionally agreed to be
// dead draws:
//   - king versus king;
//   - king and a single minor piece (knight or bishop) versus king;
//   - king and bishop versus king and bishop, both bishops on the same
//     color of square.
func IsInsufficientMaterial(p *chesscore.Position) bool {
	white := material(p, types.White)
	black := material(p, types.Black)

	if white.total == 0 && black.total == 0 {
		return true
	}
	if white.total == 0 && black.isLoneMinor() {
		return true
	}
	if black.total == 0 && white.isLoneMinor() {
		return true
	}
	if white.isLoneBishop() && black.isLoneBishop() {
		return bishopSquareColor(white.bishops) == bishopSquareColor(black.bishops)
	}
	return false
}

// sideMaterial tallies the non-king, non-pawn pieces of one color: any
// rook, queen, or pawn on the board rules out insufficient material
// outright, so only knight/bishop counts and bishop squares matter here.
type sideMaterial struct {
	total   int
	knights int
	bishops types.Bitboard
}

func material(p *chesscore.Position, c types.Color) sideMaterial {
	if p.PieceBB(c, types.Pawn) != 0 || p.PieceBB(c, types.Rook) != 0 || p.PieceBB(c, types.Queen) != 0 {
		return sideMaterial{total: 2} // any value > 1 blocks every insufficient-material branch
	}
	knights := bitutil.PopCount(p.PieceBB(c, types.Knight))
	bishops := p.PieceBB(c, types.Bishop)
	return sideMaterial{
		total:   knights + bitutil.PopCount(bishops),
		knights: knights,
		bishops: bishops,
	}
}

func (m sideMaterial) isLoneMinor() bool  { return m.total == 1 }
func (m sideMaterial) isLoneBishop() bool { return m.total == 1 && m.knights == 0 }

// bishopSquareColor returns 0 or 1 for the color of square the single
// bishop in bb stands on (light or dark), following the standard
// (file+rank)%2 parity rule.
func bishopSquareColor(bb types.Bitboard) int {
	sq := bitutil.LSB(bb)
	return (sq.File() + sq.Rank()) % 2
}
