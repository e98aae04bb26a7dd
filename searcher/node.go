package searcher

import (
	"math"

	"golang.org/x/exp/rand"

	"azul/game"
)

// node is one vertex of the search tree. Statistics are credited to the
// player who moved into the node's state, so selection at a node maximizes
// the chooser's own winning chances.
type node struct {
	parent   *node
	state    game.GameState
	player   int
	untried  []game.GameState
	children []*node
	rewards  float64
	visits   int
}

func newNode(parent *node, state game.GameState) *node {
	return &node{
		parent:  parent,
		state:   state,
		player:  state.LastPlayer(),
		untried: state.LegalSuccessors(),
	}
}

// expandable reports whether the node still has unexplored successors.
func (n *node) expandable() bool {
	return len(n.untried) > 0
}

// expand detaches one unexplored successor at random and attaches it as a
// new child.
func (n *node) expand() *node {
	i := rand.Intn(len(n.untried))
	state := n.untried[i]
	n.untried[i] = n.untried[len(n.untried)-1]
	n.untried = n.untried[:len(n.untried)-1]

	child := newNode(n, state)
	n.children = append(n.children, child)
	return child
}

// selectChild returns the child with the maximum UCB1 score.
func (n *node) selectChild() *node {
	if n.visits == 0 {
		panic("node has children but no visits")
	}
	normalizer := CSquared * math.Log(float64(n.visits))

	var best *node
	maxScore := math.Inf(-1)
	for _, child := range n.children {
		score := ucb1(child.rewards, child.visits, normalizer)
		if score > maxScore {
			maxScore = score
			best = child
		}
	}
	return best
}

// mostVisitedChild returns the child explored most often, the move
// recommendation after the search budget is spent. Nil if the node has no
// children.
func (n *node) mostVisitedChild() *node {
	var best *node
	maxVisits := -1
	for _, child := range n.children {
		if child.visits > maxVisits {
			maxVisits = child.visits
			best = child
		}
	}
	return best
}

func ucb1(rewards float64, visits int, normalizer float64) float64 {
	if visits == 0 { // Prevent division by zero
		panic("cannot compute UCB1: 0 visits")
	}
	return rewards/float64(visits) + math.Sqrt(normalizer/float64(visits))
}
