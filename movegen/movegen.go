// Package movegen implements the two-phase move generator: pseudo-legal
// generation for every piece of the side to move, followed by a legality
// filter that applies each pseudo-legal move to a scratch copy of the
// position and discards it if the mover's own king ends up attacked.
package movegen

import (
	"github.com/kasparov-go/chesscore"
	"github.com/kasparov-go/chesscore/attacks"
	"github.com/kasparov-go/chesscore/bitutil"
	"github.com/kasparov-go/chesscore/types"
)

// promotionPieces lists every piece a pawn may promote to, queen first
// since it's the overwhelmingly common choice.
var promotionPieces = [4]types.PieceType{types.Queen, types.Rook, types.Bishop, types.Knight}

// castlingPath describes, for one side's one castling direction, the
// squares that must be empty and the squares (including the king's own
// square) that must not be attacked for the move to be legal.
type castlingPath struct {
	right       types.CastlingRights
	kingTo      types.Square
	emptyMask   types.Bitboard
	safeSquares []types.Square
}

var castlingPaths = map[types.Color][2]castlingPath{
	types.White: {
		{types.WhiteKingside, types.G1, types.F1.Bit() | types.G1.Bit(), []types.Square{types.E1, types.F1, types.G1}},
		{types.WhiteQueenside, types.C1, types.B1.Bit() | types.C1.Bit() | types.D1.Bit(), []types.Square{types.E1, types.D1, types.C1}},
	},
	types.Black: {
		{types.BlackKingside, types.G8, types.F8.Bit() | types.G8.Bit(), []types.Square{types.E8, types.F8, types.G8}},
		{types.BlackQueenside, types.C8, types.B8.Bit() | types.C8.Bit() | types.D8.Bit(), []types.Square{types.E8, types.D8, types.C8}},
	},
}

// Pseudo generates every pseudo-legal move for the side to move: moves
// that respect each piece's movement rules and never capture a friendly
// piece, but that may leave the mover's own king in check.
func Pseudo(p *chesscore.Position) []types.Move {
	var moves []types.Move
	mover := p.ActiveColor
	allies := p.AllPieces(mover)
	enemies := p.AllPieces(mover.Opponent())
	occupied := p.Occupied()

	moves = genPawnMoves(p, mover, enemies, occupied, moves)

	for pt := types.Knight; pt <= types.Queen; pt++ {
		bb := p.PieceBB(mover, pt)
		for bb != 0 {
			from := bitutil.PopLSB(&bb)
			targets := pieceAttacks(pt, from, occupied) &^ allies
			moves = appendTargets(moves, from, targets)
		}
	}

	king := bitutil.LSB(p.PieceBB(mover, types.King))
	targets := attacks.King(king) &^ allies
	moves = appendTargets(moves, king, targets)
	moves = genCastlingMoves(p, mover, king, moves)

	return moves
}

// Legal filters Pseudo's output down to moves that don't leave the
// mover's own king in check, using the copy-make approach: each candidate
// is applied to a scratch copy of p so the caller's position is never
// mutated.
func Legal(p *chesscore.Position) []types.Move {
	pseudo := Pseudo(p)
	legal := make([]types.Move, 0, len(pseudo))
	for _, m := range pseudo {
		trial := p.Copy()
		if trial.MakeMove(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// InCheck reports whether the side to move's king is currently attacked.
func InCheck(p *chesscore.Position) bool { return p.InCheck() }

func pieceAttacks(pt types.PieceType, from types.Square, occupied types.Bitboard) types.Bitboard {
	switch pt {
	case types.Knight:
		return attacks.Knight(from)
	case types.Bishop, types.Rook, types.Queen:
		return attacks.Sliding(pt, from, occupied)
	default:
		return 0
	}
}

func appendTargets(moves []types.Move, from types.Square, targets types.Bitboard) []types.Move {
	for targets != 0 {
		to := bitutil.PopLSB(&targets)
		moves = append(moves, types.Move{From: from, To: to, Promotion: types.NoPieceType})
	}
	return moves
}

func genPawnMoves(p *chesscore.Position, mover types.Color, enemies, occupied types.Bitboard, moves []types.Move) []types.Move {
	pawns := p.PieceBB(mover, types.Pawn)
	forward, startRank, promoRank := 8, 1, 7
	if mover == types.Black {
		forward, startRank, promoRank = -8, 6, 0
	}

	for pawns != 0 {
		from := bitutil.PopLSB(&pawns)

		one := types.Square(int(from) + forward)
		if one >= 0 && one < 64 && occupied&one.Bit() == 0 {
			moves = appendPawnMove(moves, from, one, promoRank)

			if from.Rank() == startRank {
				two := types.Square(int(from) + 2*forward)
				if occupied&two.Bit() == 0 {
					moves = append(moves, types.Move{From: from, To: two, Promotion: types.NoPieceType})
				}
			}
		}

		captures := attacks.Pawn(mover, from) & (enemies | epBit(p))
		for captures != 0 {
			to := bitutil.PopLSB(&captures)
			moves = appendPawnMove(moves, from, to, promoRank)
		}
	}
	return moves
}

func epBit(p *chesscore.Position) types.Bitboard {
	if p.EPTarget == types.NoSquare {
		return 0
	}
	return p.EPTarget.Bit()
}

func appendPawnMove(moves []types.Move, from, to types.Square, promoRank int) []types.Move {
	if to.Rank() == promoRank {
		for _, promo := range promotionPieces {
			moves = append(moves, types.Move{From: from, To: to, Promotion: promo})
		}
		return moves
	}
	return append(moves, types.Move{From: from, To: to, Promotion: types.NoPieceType})
}

// genCastlingMoves appends the side's available castling moves, checking
// the three preconditions of §4.5: the right is held, the squares between
// king and rook are empty, and neither the king's current square, the
// square it passes through, nor its destination is attacked.
func genCastlingMoves(p *chesscore.Position, mover types.Color, king types.Square, moves []types.Move) []types.Move {
	occupied := p.Occupied()
	opponent := mover.Opponent()

	for _, path := range castlingPaths[mover] {
		if p.CastlingRights&path.right == 0 {
			continue
		}
		if occupied&path.emptyMask != 0 {
			continue
		}
		safe := true
		for _, sq := range path.safeSquares {
			if attacks.IsSquareAttacked(p, sq, opponent) {
				safe = false
				break
			}
		}
		if safe {
			moves = append(moves, types.Move{From: king, To: path.kingTo, Promotion: types.NoPieceType})
		}
	}
	return moves
}
