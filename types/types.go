// Package types contains declarations of the chess core's fundamental data
// model: squares, colors, piece types, bitboards, and moves. It has no
// dependencies of its own, so every other package can build on it without
// risking an import cycle with the attack tables or the position.
package types

// Square indexes one of the 64 board squares as rank*8+file: rank 0 is
// the first rank, file 0 is the a-file. NoSquare is the sentinel used
// wherever "no square" is a valid answer (an empty en passant target, an
// unset king square, and so on).
type Square int

const NoSquare Square = -1

// NewSquare builds the Square for the given zero-based file (a=0..h=7) and
// zero-based rank (1st rank=0..8th rank=7).
func NewSquare(file, rank int) Square { return Square(rank*8 + file) }

func (s Square) File() int { return int(s) % 8 }
func (s Square) Rank() int { return int(s) / 8 }

// Bit returns the single-bit Bitboard for the square.
func (s Square) Bit() Bitboard { return Bitboard(1) << uint(s) }

func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// Each square, mirroring the teacher's flat SA1..SH8 constants so callers
// and tests can refer to squares by name instead of by NewSquare(file, rank).
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// Color is one of white, black, or the "no color" sentinel used for empty
// squares.
type Color int

const (
	White Color = iota
	Black
	NoColor
)

// Opponent returns the other playing color. NoColor maps to itself.
func (c Color) Opponent() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColor
	}
}

func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		return "-"
	}
}

// PieceType is one of the six chess pieces, or the "none" sentinel for an
// empty square.
type PieceType int

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

const NoPieceType PieceType = -1

// pieceValues holds the conventional material value of each piece type
// (pawn 1, knight and bishop 3, rook 5, queen 9). The king is never
// traded, so its value is 0.
var pieceValues = [6]int{1, 3, 3, 5, 9, 0}

// Value returns the conventional material value of the piece type, or 0
// for NoPieceType.
func (pt PieceType) Value() int {
	if pt < Pawn || pt > King {
		return 0
	}
	return pieceValues[pt]
}

// Letter returns the uppercase FEN letter for the piece type ('P'..'K'),
// or 0 for NoPieceType.
func (pt PieceType) Letter() byte {
	if pt < Pawn || pt > King {
		return 0
	}
	return "PNBRQK"[pt]
}

// Bitboard is a 64-bit square set: bit i is set iff some property holds at
// square i.
type Bitboard uint64

// CastlingRights is a 4-bit mask over the four castling privileges,
// numbered the same way as the teacher's CastlingWhiteShort..CastlingBlackLong.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// Move is the structurally valid (from, to, promotion) triple described by
// the data model. Promotion is NoPieceType for every non-promoting move.
type Move struct {
	From, To  Square
	Promotion PieceType
}

// NullMove is the literal "no move" value, encoded in UCI as "0000".
var NullMove = Move{From: NoSquare, To: NoSquare, Promotion: NoPieceType}

// Valid reports whether both squares of the move are real squares. It does
// not check pseudo-legality or legality.
func (m Move) Valid() bool { return m.From != NoSquare && m.To != NoSquare }

func (m Move) IsNull() bool { return m == NullMove }

// Result enumerates the possible outcomes of a chess game. No function in
// the core returns a Result: the oracle package answers the conditions
// behind ResultCheckmate, ResultStalemate, ResultInsufficientMaterial, and
// ResultFiftyMove as boolean queries. The remaining values are for
// external collaborators (a UCI driver, a tournament runner) that layer
// repetition detection, timeouts, resignation, and draw offers on top of
// the core.
type Result int

const (
	ResultUnscored Result = iota
	ResultCheckmate
	ResultStalemate
	ResultInsufficientMaterial
	ResultFiftyMove
	ResultThreefoldRepetition
	ResultTimeout
	ResultResignation
	ResultDrawByAgreement
)
