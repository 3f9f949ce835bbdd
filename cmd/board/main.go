// Command board loads a FEN string and renders it, demonstrating the
// printboard driver obligation without implementing the UCI command loop
// itself (that remains an external collaborator's job).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kasparov-go/chesscore/fen"
	"github.com/kasparov-go/chesscore/render"
)

func main() {
	fenStr := flag.String("fen", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "FEN string to render")
	svg := flag.Bool("svg", false, "render as SVG instead of text")
	flag.Parse()

	pos, err := fen.Parse(*fenStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "board: invalid fen:", err)
		os.Exit(1)
	}

	var renderer render.Renderer = render.Text{}
	if *svg {
		renderer = render.SVG{}
	}

	if err := renderer.Render(os.Stdout, pos); err != nil {
		fmt.Fprintln(os.Stderr, "board: render failed:", err)
		os.Exit(1)
	}
}
