// Package chesscore implements a rule-exact bitboard chess position: the
// board representation, FEN-independent state, and the move-application
// state machine. Move generation, the termination oracle, and the text
// interfaces live in sibling packages built on top of this one.
package chesscore

import (
	"github.com/kasparov-go/chesscore/attacks"
	"github.com/kasparov-go/chesscore/bitutil"
	"github.com/kasparov-go/chesscore/types"
)

// Position is the complete state of a chess game at one point in time:
// twelve piece bitboards (one per color per piece type), whose side to
// move, castling rights, the en passant target square, and the two move
// counters needed for the fifty-move rule and FEN's fullmove field.
//
// Invariants maintained by every exported mutator:
//   - no two piece bitboards of the same color share a square;
//   - each color has exactly one king;
//   - no pawn occupies the first or eighth rank;
//   - AllPieces and Occupied are always consistent with Pieces.
type Position struct {
	Pieces         [2][6]types.Bitboard
	ActiveColor    types.Color
	CastlingRights types.CastlingRights
	EPTarget       types.Square
	HalfmoveClock  int
	FullmoveNumber int
}

// PieceBB returns the bitboard of pieces of color c and type pt. It
// implements attacks.BoardView.
func (p *Position) PieceBB(c types.Color, pt types.PieceType) types.Bitboard {
	return p.Pieces[c][pt]
}

// AllPieces returns the union of every piece bitboard of color c.
func (p *Position) AllPieces(c types.Color) types.Bitboard {
	var bb types.Bitboard
	for pt := types.Pawn; pt <= types.King; pt++ {
		bb |= p.Pieces[c][pt]
	}
	return bb
}

// Occupied returns every occupied square on the board. It implements
// attacks.BoardView.
func (p *Position) Occupied() types.Bitboard {
	return p.AllPieces(types.White) | p.AllPieces(types.Black)
}

// PieceAt returns the color and type of the piece standing on sq, or
// (types.NoColor, types.NoPieceType) if the square is empty.
func (p *Position) PieceAt(sq types.Square) (types.Color, types.PieceType) {
	bit := sq.Bit()
	for c := types.White; c <= types.Black; c++ {
		for pt := types.Pawn; pt <= types.King; pt++ {
			if p.Pieces[c][pt]&bit != 0 {
				return c, pt
			}
		}
	}
	return types.NoColor, types.NoPieceType
}

// Copy returns an independent copy of the position; mutating the result
// never affects the receiver. Used by the move generator's legality
// filter so trial moves never corrupt the caller's position.
func (p *Position) Copy() *Position {
	cp := *p
	return &cp
}

// Reset sets the position to the standard chess starting position.
func (p *Position) Reset() {
	*p = Position{
		Pieces: [2][6]types.Bitboard{
			types.White: {
				types.Pawn:   bitutil.RankMask(1),
				types.Knight: types.B1.Bit() | types.G1.Bit(),
				types.Bishop: types.C1.Bit() | types.F1.Bit(),
				types.Rook:   types.A1.Bit() | types.H1.Bit(),
				types.Queen:  types.D1.Bit(),
				types.King:   types.E1.Bit(),
			},
			types.Black: {
				types.Pawn:   bitutil.RankMask(6),
				types.Knight: types.B8.Bit() | types.G8.Bit(),
				types.Bishop: types.C8.Bit() | types.F8.Bit(),
				types.Rook:   types.A8.Bit() | types.H8.Bit(),
				types.Queen:  types.D8.Bit(),
				types.King:   types.E8.Bit(),
			},
		},
		ActiveColor:    types.White,
		CastlingRights: types.WhiteKingside | types.WhiteQueenside | types.BlackKingside | types.BlackQueenside,
		EPTarget:       types.NoSquare,
		HalfmoveClock:  0,
		FullmoveNumber: 1,
	}
}

// InCheck reports whether the side to move's king is currently attacked.
func (p *Position) InCheck() bool {
	king := bitutil.LSB(p.Pieces[p.ActiveColor][types.King])
	return attacks.IsSquareAttacked(p, king, p.ActiveColor.Opponent())
}

var _ attacks.BoardView = (*Position)(nil)
