// Package render draws a chesscore.Position as either a plain-text board
// or an SVG diagram, grounded on the teacher's format.Position text
// layout and generalized to a common Renderer contract so cmd/board can
// pick either output without caring which one it got.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/kasparov-go/chesscore"
	"github.com/kasparov-go/chesscore/types"
)

// Renderer draws pos to w in some board-diagram format.
type Renderer interface {
	Render(w io.Writer, pos *chesscore.Position) error
}

var pieceSymbols = [2][6]rune{
	types.White: {'♙', '♘', '♗', '♖', '♕', '♔'},
	types.Black: {'♟', '♞', '♝', '♜', '♛', '♚'},
}

func symbolAt(p *chesscore.Position, sq types.Square) rune {
	c, pt := p.PieceAt(sq)
	if pt == types.NoPieceType {
		return '.'
	}
	return pieceSymbols[c][pt]
}

// Text renders the board as an 8x8 grid of Unicode piece glyphs, file
// labels, and a summary of side to move, en passant target, and castling
// rights, the way a terminal driver would print a position for a human
// to read.
type Text struct{}

func (Text) Render(w io.Writer, p *chesscore.Position) error {
	for rank := 7; rank >= 0; rank-- {
		if _, err := fmt.Fprintf(w, "%d  ", rank+1); err != nil {
			return err
		}
		for file := 0; file < 8; file++ {
			sq := types.NewSquare(file, rank)
			if _, err := fmt.Fprintf(w, "%c  ", symbolAt(p, sq)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "   a  b  c  d  e  f  g  h"); err != nil {
		return err
	}

	activeColor := "white"
	if p.ActiveColor == types.Black {
		activeColor = "black"
	}
	epTarget := "none"
	if p.EPTarget != types.NoSquare {
		epTarget = p.EPTarget.String()
	}

	_, err := fmt.Fprintf(w, "Active color: %s\nEn passant: %s\nCastling rights: %s\n",
		activeColor, epTarget, castlingString(p.CastlingRights))
	return err
}

func castlingString(rights types.CastlingRights) string {
	var b []byte
	if rights&types.WhiteKingside != 0 {
		b = append(b, 'K')
	}
	if rights&types.WhiteQueenside != 0 {
		b = append(b, 'Q')
	}
	if rights&types.BlackKingside != 0 {
		b = append(b, 'k')
	}
	if rights&types.BlackQueenside != 0 {
		b = append(b, 'q')
	}
	if len(b) == 0 {
		return "-"
	}
	return string(b)
}

// SVG renders the board as a scored vector-graphics diagram, built on
// github.com/ajstarks/svgo, matching how the pack's own chess viewers
// draw a board (mikeb26-corentings-chess, barakmich-chess).
type SVG struct {
	// SquareSize is the pixel size of one board square. Defaults to 60
	// when zero.
	SquareSize int
}

const (
	lightSquareFill = "#eeeed2"
	darkSquareFill  = "#769656"
)

func (s SVG) Render(w io.Writer, p *chesscore.Position) error {
	size := s.SquareSize
	if size == 0 {
		size = 60
	}
	board := 8 * size

	canvas := svg.New(w)
	canvas.Start(board, board)
	defer canvas.End()

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x := file * size
			y := (7 - rank) * size
			fill := lightSquareFill
			if (file+rank)%2 == 0 {
				fill = darkSquareFill
			}
			canvas.Rect(x, y, size, size, "fill:"+fill)

			sq := types.NewSquare(file, rank)
			c, pt := p.PieceAt(sq)
			if pt == types.NoPieceType {
				continue
			}
			glyph := string(pieceSymbols[c][pt])
			canvas.Text(x+size/2, y+size*2/3, glyph,
				fmt.Sprintf("text-anchor:middle;font-size:%dpx", size*3/4))
		}
	}
	return nil
}

var (
	_ Renderer = Text{}
	_ Renderer = SVG{}
)
