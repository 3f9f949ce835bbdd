// Package policy declares the move-selection contract the core hands off
// to: a single-method interface so a caller can plug in anything from a
// uniform-random chooser to a trained evaluator without the core ever
// depending on the concrete choice. Only a minimal reference
// implementation lives here; real move-selection policies are an external
// concern.
package policy

import (
	"math/rand"

	"github.com/kasparov-go/chesscore"
	"github.com/kasparov-go/chesscore/types"
)

// Policy selects one move from a list of legal moves. Implementations
// must return types.NullMove if legal is empty, and must not mutate pos.
type Policy interface {
	SelectMove(pos *chesscore.Position, legal []types.Move) types.Move
}

// FirstLegal always picks the first move in the legal slice. It is
// deterministic, useful mainly for tests and perft-style harnesses that
// need a policy but don't care which move it picks.
type FirstLegal struct{}

func (FirstLegal) SelectMove(_ *chesscore.Position, legal []types.Move) types.Move {
	if len(legal) == 0 {
		return types.NullMove
	}
	return legal[0]
}

// Random picks uniformly among the legal moves using the given source of
// randomness, so callers control reproducibility.
type Random struct {
	Rand *rand.Rand
}

func (r Random) SelectMove(_ *chesscore.Position, legal []types.Move) types.Move {
	if len(legal) == 0 {
		return types.NullMove
	}
	return legal[r.Rand.Intn(len(legal))]
}

var _ Policy = FirstLegal{}
var _ Policy = Random{}
