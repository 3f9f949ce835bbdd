// Package bitutil implements bitboard primitives shared by the position,
// the move generator, and the rule oracle: population count,
// least/most significant bit extraction, and rank/file/diagonal masks.
package bitutil

import (
	"math/bits"

	"github.com/kasparov-go/chesscore/types"
)

// PopCount returns the number of set bits in the bitboard.
func PopCount(bb types.Bitboard) int { return bits.OnesCount64(uint64(bb)) }

// LSB returns the index of the least significant set bit, or
// types.NoSquare if the bitboard is empty.
func LSB(bb types.Bitboard) types.Square {
	if bb == 0 {
		return types.NoSquare
	}
	return types.Square(bits.TrailingZeros64(uint64(bb)))
}

// MSB returns the index of the most significant set bit, or
// types.NoSquare if the bitboard is empty.
func MSB(bb types.Bitboard) types.Square {
	if bb == 0 {
		return types.NoSquare
	}
	return types.Square(63 - bits.LeadingZeros64(uint64(bb)))
}

// PopLSB clears the least significant set bit of *bb and returns its
// square index, or types.NoSquare if the bitboard was already empty.
func PopLSB(bb *types.Bitboard) types.Square {
	sq := LSB(*bb)
	if sq != types.NoSquare {
		*bb &= *bb - 1
	}
	return sq
}

// RankMask returns the bitboard of every square on the given rank
// (0 = first rank .. 7 = eighth rank).
func RankMask(rank int) types.Bitboard {
	return types.Bitboard(0xFF) << uint(8*rank)
}

// FileMask returns the bitboard of every square on the given file
// (0 = a-file .. 7 = h-file).
func FileMask(file int) types.Bitboard {
	const aFile = types.Bitboard(0x0101010101010101)
	return aFile << uint(file)
}

// diagMasks[d] is every square where rank-file+7 == d, i.e. the 15
// diagonals running from bottom-left to top-right (a1-h8 direction).
var diagMasks [15]types.Bitboard

// antiDiagMasks[d] is every square where rank+file == d, i.e. the 15
// diagonals running from bottom-right to top-left (h1-a8 direction).
var antiDiagMasks [15]types.Bitboard

func init() {
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8
		diagMasks[rank-file+7] |= types.Square(sq).Bit()
		antiDiagMasks[rank+file] |= types.Square(sq).Bit()
	}
}

// DiagMask returns the a1-h8-direction diagonal containing the square.
func DiagMask(sq types.Square) types.Bitboard {
	return diagMasks[sq.Rank()-sq.File()+7]
}

// AntiDiagMask returns the h1-a8-direction diagonal containing the square.
func AntiDiagMask(sq types.Square) types.Bitboard {
	return antiDiagMasks[sq.Rank()+sq.File()]
}
