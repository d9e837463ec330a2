// Package engine ties the board, the search and the network interfaces
// together behind a small move-selection façade.
package engine

import (
	"log"
	"math"

	"chesscore/internal/board"
	"chesscore/internal/mcts"
)

// Engine selects moves for a position, either through a full MCTS or by
// a single direct network inference. The evaluator and move-index
// mapping are fixed at construction and shared by both paths.
type Engine struct {
	evaluator mcts.Evaluator
	moveIndex mcts.MoveIndex
	search    *mcts.MCTS
}

// New creates an engine around an evaluator and its move-index mapping.
func New(evaluator mcts.Evaluator, moveIndex mcts.MoveIndex) *Engine {
	return &Engine{
		evaluator: evaluator,
		moveIndex: moveIndex,
		search:    mcts.New(evaluator, moveIndex),
	}
}

// SelectMove runs an MCTS with the given number of visits and returns
// the chosen move as a UCI string. It returns false if the position is
// terminal.
func (e *Engine) SelectMove(pos *board.Position, visits int) (string, bool) {
	return e.search.Search(pos, visits)
}

// DirectSelectMove returns the legal move the policy head ranks
// highest, from a single network inference with no tree search. It
// returns false if the position is terminal.
func (e *Engine) DirectSelectMove(pos *board.Position) (string, bool) {
	if pos.IsGameOver() {
		return "", false
	}

	tensor := pos.ToTensor()
	policy, _ := e.evaluator.Evaluate(&tensor)

	legal := pos.LegalMoves()
	bestIndex := -1
	bestLogit := math.Inf(-1)
	for i := 0; i < legal.Len(); i++ {
		idx, ok := e.moveIndex.IndexOf(legal.Get(i).String())
		if !ok {
			continue
		}
		if l := float64(policy[idx]); l > bestLogit {
			bestLogit = l
			bestIndex = idx
		}
	}
	if bestIndex < 0 {
		log.Panicf("engine: no legal move of a non-terminal position is in the policy mapping: %s",
			pos.ToFEN())
	}

	return e.moveIndex.UCIOf(bestIndex), true
}
