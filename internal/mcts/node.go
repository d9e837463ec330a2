package mcts

import "chesscore/internal/board"

// Node is a single state in the search tree. Children are owned by
// their parent through the Children map; Parent is a non-owning back
// reference, so the tree forms no ownership cycle.
type Node struct {
	Position *board.Position
	Parent   *Node
	Children map[string]*Node

	// Prior is the normalized policy probability assigned to the move
	// that reached this node, in [0, 1].
	Prior float32

	VisitCount uint32
	TotalValue float64
	MeanValue  float64
}

// NewNode creates a node owning pos.
func NewNode(pos *board.Position, parent *Node, prior float32) *Node {
	return &Node{
		Position: pos,
		Parent:   parent,
		Children: make(map[string]*Node),
		Prior:    prior,
	}
}

// IsLeaf reports whether the node has not been expanded yet.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsTerminal reports whether the node's position ends the game.
func (n *Node) IsTerminal() bool {
	return n.Position.IsGameOver()
}

// update folds a backpropagated value into the node's statistics.
func (n *Node) update(value float64) {
	n.VisitCount++
	n.TotalValue += value
	n.MeanValue = n.TotalValue / float64(n.VisitCount)
}
