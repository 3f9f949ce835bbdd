// Package fen converts between Forsyth-Edwards Notation strings and
// chesscore.Position values. Unlike the flat bitboard-array encoding this
// is generalized from, Parse validates its input and returns an error on
// malformed FEN instead of panicking; no position is returned when parsing
// fails.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kasparov-go/chesscore"
	"github.com/kasparov-go/chesscore/bitutil"
	"github.com/kasparov-go/chesscore/types"
)

var pieceSymbols = [2][6]byte{
	types.White: {'P', 'N', 'B', 'R', 'Q', 'K'},
	types.Black: {'p', 'n', 'b', 'r', 'q', 'k'},
}

// Parse parses a complete six-field FEN string into a new *chesscore.Position.
// It returns an error, without mutating any caller state, if the string
// does not have exactly six space-separated fields or any field fails to
// parse.
func Parse(fenStr string) (*chesscore.Position, error) {
	fields := strings.Fields(fenStr)
	if len(fields) != 6 {
		return nil, fmt.Errorf("fen: expected 6 fields, got %d", len(fields))
	}

	pieces, err := parsePlacement(fields[0])
	if err != nil {
		return nil, fmt.Errorf("fen: piece placement: %w", err)
	}

	activeColor, err := parseActiveColor(fields[1])
	if err != nil {
		return nil, err
	}

	castling, err := parseCastling(fields[2])
	if err != nil {
		return nil, err
	}

	epTarget, err := parseEPTarget(fields[3])
	if err != nil {
		return nil, err
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("fen: halfmove clock: %w", err)
	}
	fullmove, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("fen: fullmove number: %w", err)
	}

	return &chesscore.Position{
		Pieces:         pieces,
		ActiveColor:    activeColor,
		CastlingRights: castling,
		EPTarget:       epTarget,
		HalfmoveClock:  halfmove,
		FullmoveNumber: fullmove,
	}, nil
}

func parsePlacement(field string) ([2][6]types.Bitboard, error) {
	var pieces [2][6]types.Bitboard
	rank, file := 7, 0

	for _, ch := range field {
		switch {
		case ch == '/':
			if file != 8 {
				return pieces, fmt.Errorf("rank %d has %d squares, want 8", rank+1, file)
			}
			rank--
			file = 0
		case ch >= '1' && ch <= '8':
			file += int(ch - '0')
		default:
			c, pt, err := symbolToPiece(byte(ch))
			if err != nil {
				return pieces, err
			}
			if rank < 0 || file > 7 {
				return pieces, fmt.Errorf("piece placement overruns the board")
			}
			sq := types.NewSquare(file, rank)
			pieces[c][pt] |= sq.Bit()
			file++
		}
	}
	if rank != 0 || file != 8 {
		return pieces, fmt.Errorf("piece placement does not describe exactly 8 ranks")
	}
	return pieces, nil
}

func symbolToPiece(ch byte) (types.Color, types.PieceType, error) {
	for c := types.White; c <= types.Black; c++ {
		for pt := types.Pawn; pt <= types.King; pt++ {
			if pieceSymbols[c][pt] == ch {
				return c, pt, nil
			}
		}
	}
	return types.NoColor, types.NoPieceType, fmt.Errorf("unrecognized piece symbol %q", ch)
}

func parseActiveColor(field string) (types.Color, error) {
	switch field {
	case "w":
		return types.White, nil
	case "b":
		return types.Black, nil
	default:
		return types.NoColor, fmt.Errorf("fen: active color must be 'w' or 'b', got %q", field)
	}
}

func parseCastling(field string) (types.CastlingRights, error) {
	if field == "-" {
		return 0, nil
	}
	var rights types.CastlingRights
	for _, ch := range field {
		switch ch {
		case 'K':
			rights |= types.WhiteKingside
		case 'Q':
			rights |= types.WhiteQueenside
		case 'k':
			rights |= types.BlackKingside
		case 'q':
			rights |= types.BlackQueenside
		default:
			// Chess960-style file-letter castling fields are a recognized
			// stub: they parse as "no castling" rather than an error.
			return 0, nil
		}
	}
	return rights, nil
}

func parseEPTarget(field string) (types.Square, error) {
	if field == "-" {
		return types.NoSquare, nil
	}
	if len(field) != 2 || field[0] < 'a' || field[0] > 'h' || field[1] < '1' || field[1] > '8' {
		return types.NoSquare, fmt.Errorf("fen: malformed en passant target %q", field)
	}
	return types.NewSquare(int(field[0]-'a'), int(field[1]-'1')), nil
}

// Format serializes pos into its six-field FEN string. Format(p) followed
// by Parse never changes the position's semantic content, though Parse
// does not reconstruct history a FEN string never carried in the first
// place (such as prior repetitions).
func Format(p *chesscore.Position) string {
	var b strings.Builder
	b.Grow(64)

	b.WriteString(formatPlacement(p))
	b.WriteByte(' ')
	b.WriteString(p.ActiveColor.String())
	b.WriteByte(' ')
	b.WriteString(formatCastling(p.CastlingRights))
	b.WriteByte(' ')
	if p.EPTarget == types.NoSquare {
		b.WriteByte('-')
	} else {
		b.WriteString(p.EPTarget.String())
	}
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.HalfmoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.FullmoveNumber))
	return b.String()
}

func formatPlacement(p *chesscore.Position) string {
	var board [8][8]byte
	for c := types.White; c <= types.Black; c++ {
		for pt := types.Pawn; pt <= types.King; pt++ {
			bb := p.PieceBB(c, pt)
			for bb != 0 {
				sq := bitutil.PopLSB(&bb)
				board[sq.Rank()][sq.File()] = pieceSymbols[c][pt]
			}
		}
	}

	var b strings.Builder
	b.Grow(72)
	for rank := 7; rank >= 0; rank-- {
		var empty byte
		for file := 0; file < 8; file++ {
			ch := board[rank][file]
			if ch == 0 {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte('0' + empty)
				empty = 0
			}
			b.WriteByte(ch)
		}
		if empty > 0 {
			b.WriteByte('0' + empty)
		}
		if rank != 0 {
			b.WriteByte('/')
		}
	}
	return b.String()
}

func formatCastling(rights types.CastlingRights) string {
	var b strings.Builder
	if rights&types.WhiteKingside != 0 {
		b.WriteByte('K')
	}
	if rights&types.WhiteQueenside != 0 {
		b.WriteByte('Q')
	}
	if rights&types.BlackKingside != 0 {
		b.WriteByte('k')
	}
	if rights&types.BlackQueenside != 0 {
		b.WriteByte('q')
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}

