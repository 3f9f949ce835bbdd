// Command perft walks the move generation tree of strictly legal moves to
// a given depth and counts the leaf nodes, the standard correctness and
// performance harness for a chess move generator. It is the external
// consumer the core's move generator and FEN parser are built for,
// grounded on the teacher's internal/perft/perft.go, generalized to load
// depth/expected-node-count fixtures from a YAML file (perft results are
// widely published in that kind of table) instead of hardcoding one
// starting position.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/kasparov-go/chesscore"
	"github.com/kasparov-go/chesscore/fen"
	"github.com/kasparov-go/chesscore/movegen"
)

// Fixture names one perft case: starting from fenStr, the number of leaf
// nodes reachable in exactly depth plies of strictly legal moves.
type Fixture struct {
	Name  string `yaml:"name"`
	FEN   string `yaml:"fen"`
	Depth int    `yaml:"depth"`
	Nodes int64  `yaml:"nodes"`
}

func main() {
	fenStr := flag.String("fen", "", "FEN to run a single perft against (ignored when -fixtures is set)")
	depth := flag.Int("depth", 5, "search depth for -fen mode")
	fixturesPath := flag.String("fixtures", "", "path to a YAML file of {name, fen, depth, nodes} fixtures to verify")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "perft: failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *fixturesPath != "" {
		runFixtures(logger, *fixturesPath)
		return
	}
	if *fenStr == "" {
		*fenStr = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	}
	runSingle(logger, *fenStr, *depth)
}

func runSingle(logger *zap.Logger, fenStr string, depth int) {
	pos, err := fen.Parse(fenStr)
	if err != nil {
		logger.Fatal("invalid fen", zap.String("fen", fenStr), zap.Error(err))
	}

	start := time.Now()
	nodes := perft(pos, depth)
	elapsed := time.Since(start)

	logger.Info("perft complete",
		zap.String("fen", fenStr),
		zap.Int("depth", depth),
		zap.Int64("nodes", nodes),
		zap.Duration("elapsed", elapsed),
	)
}

func runFixtures(logger *zap.Logger, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal("failed to read fixtures file", zap.String("path", path), zap.Error(err))
	}

	var fixtures []Fixture
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		logger.Fatal("failed to parse fixtures file", zap.String("path", path), zap.Error(err))
	}

	failures := 0
	for _, f := range fixtures {
		pos, err := fen.Parse(f.FEN)
		if err != nil {
			logger.Error("fixture has invalid fen", zap.String("name", f.Name), zap.Error(err))
			failures++
			continue
		}

		start := time.Now()
		nodes := perft(pos, f.Depth)
		elapsed := time.Since(start)

		if nodes != f.Nodes {
			failures++
			logger.Error("perft mismatch",
				zap.String("name", f.Name),
				zap.Int("depth", f.Depth),
				zap.Int64("want", f.Nodes),
				zap.Int64("got", nodes),
				zap.Duration("elapsed", elapsed),
			)
			continue
		}
		logger.Info("perft ok",
			zap.String("name", f.Name),
			zap.Int("depth", f.Depth),
			zap.Int64("nodes", nodes),
			zap.Duration("elapsed", elapsed),
		)
	}

	if failures > 0 {
		logger.Fatal("perft fixtures failed", zap.Int("failures", failures), zap.Int("total", len(fixtures)))
	}
}

// perft counts the leaf nodes of the strictly-legal move tree rooted at
// pos, to the given depth.
func perft(pos *chesscore.Position, depth int) int64 {
	legal := movegen.Legal(pos)
	if depth == 1 {
		return int64(len(legal))
	}

	var nodes int64
	for _, m := range legal {
		child := pos.Copy()
		child.MakeMove(m)
		nodes += perft(child, depth-1)
	}
	return nodes
}
