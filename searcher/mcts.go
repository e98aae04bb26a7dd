package searcher

import (
	"time"

	"github.com/rs/zerolog/log"

	"azul/game"
)

type Option func(m *MCTS)

// MCTS is a Monte Carlo tree searcher over any game.GameState. Each
// simulation selects down the tree by UCB1, expands one unexplored
// successor, rolls the game out to a terminal state with random play, and
// backs the result up the path. States whose LegalSuccessors are empty but
// whose Winners are too act as rollout-only leaves; the rollout pushes
// through them via RandomSuccessor.
type MCTS struct {
	iterations int
	duration   time.Duration
	metrics    Collector
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{
		metrics: NewNoopCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.iterations <= 0 && m.duration <= 0 {
		panic("Must specify search iterations or duration")
	}
	return m
}

// Search spends the configured budget exploring from state and returns the
// successor reached by the most-visited root move, along with the search
// metrics. It returns nil when the state has no successors.
func (m *MCTS) Search(state game.GameState) (game.GameState, SearchMetric) {
	root := newNode(nil, state)
	m.metrics.Start()

	if m.iterations > 0 {
		for i := 0; i < m.iterations; i++ {
			m.simulate(root)
			m.metrics.AddIteration()
		}
	} else {
		deadline := time.Now().Add(m.duration)
		for time.Now().Before(deadline) {
			m.simulate(root)
			m.metrics.AddIteration()
		}
	}
	metric := m.metrics.Complete()

	best := root.mostVisitedChild()
	if best == nil {
		log.Warn().Msg("search found no successors")
		return nil, metric
	}
	log.Debug().
		Int("visits", best.visits).
		Float64("rewards", best.rewards).
		Msg("search complete")
	return best.state, metric
}

func (m *MCTS) simulate(root *node) {
	newNode := selectThenExpand(root)
	winners := m.rollout(newNode.state)
	backup(newNode, winners)
}

func selectThenExpand(root *node) *node {
	n := root
	for {
		if n.expandable() {
			return n.expand()
		}
		if len(n.children) == 0 { // Terminal or round-boundary leaf
			return n
		}
		n = n.selectChild()
	}
}

func (m *MCTS) rollout(state game.GameState) []int {
	winners := state.Winners()
	for len(winners) == 0 {
		next := state.RandomSuccessor()
		if next == nil {
			break
		}
		state = next
		winners = state.Winners()
	}
	if len(winners) > 0 {
		m.metrics.AddFullPlayout()
	}
	return winners
}

func backup(n *node, winners []int) {
	for ; n != nil; n = n.parent {
		n.visits++
		for _, winner := range winners {
			if winner == n.player {
				n.rewards += Win
				break
			}
		}
	}
}
