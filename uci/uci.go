// Package uci encodes and decodes chess moves in UCI's long algebraic move
// text: four or five characters, "e2e4" or "e7e8q", built from the two
// squares and an optional promotion letter. Unlike the flat encode-only
// helper this is generalized from, Parse also validates its input and
// returns an error instead of panicking on malformed text.
package uci

import (
	"fmt"

	"github.com/kasparov-go/chesscore/types"
)

// NullMoveText is the UCI encoding of the null move, sent by some engines
// to mean "I have no move to make."
const NullMoveText = "0000"

var promotionLetters = map[byte]types.PieceType{
	'n': types.Knight,
	'b': types.Bishop,
	'r': types.Rook,
	'q': types.Queen,
}

var promotionBytes = map[types.PieceType]byte{
	types.Knight: 'n',
	types.Bishop: 'b',
	types.Rook:   'r',
	types.Queen:  'q',
}

// Parse decodes a UCI move text string. It rejects any string that is not
// exactly 4 or 5 characters long, whose square fields are out of the
// a1-h8 range, or whose fifth character (when present) is not one of
// n/b/r/q, returning an error rather than panicking.
func Parse(s string) (types.Move, error) {
	if s == NullMoveText {
		return types.NullMove, nil
	}
	if len(s) != 4 && len(s) != 5 {
		return types.Move{}, fmt.Errorf("uci: move text must be 4 or 5 characters, got %q", s)
	}

	from, err := parseSquare(s[0:2])
	if err != nil {
		return types.Move{}, err
	}
	to, err := parseSquare(s[2:4])
	if err != nil {
		return types.Move{}, err
	}

	promotion := types.NoPieceType
	if len(s) == 5 {
		pt, ok := promotionLetters[s[4]]
		if !ok {
			return types.Move{}, fmt.Errorf("uci: unrecognized promotion letter %q", s[4])
		}
		promotion = pt
	}

	return types.Move{From: from, To: to, Promotion: promotion}, nil
}

func parseSquare(s string) (types.Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return types.NoSquare, fmt.Errorf("uci: malformed square %q", s)
	}
	return types.NewSquare(int(s[0]-'a'), int(s[1]-'1')), nil
}

// Format encodes m as UCI move text. The null move formats as "0000".
func Format(m types.Move) string {
	if m.IsNull() {
		return NullMoveText
	}
	b := []byte{
		byte('a' + m.From.File()), byte('1' + m.From.Rank()),
		byte('a' + m.To.File()), byte('1' + m.To.Rank()),
	}
	if m.Promotion != types.NoPieceType {
		b = append(b, promotionBytes[m.Promotion])
	}
	return string(b)
}
