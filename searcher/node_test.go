package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeExpand(t *testing.T) {
	n := newNode(nil, raceState{position: 0, target: 4, last: -1})
	require.Len(t, n.untried, 2)
	require.True(t, n.expandable())

	first := n.expand()

	require.Len(t, n.untried, 1)
	require.Len(t, n.children, 1)
	require.Equal(t, n, first.parent)
	require.Equal(t, 0, first.player, "child is credited to the player who moved into it")

	second := n.expand()

	require.False(t, n.expandable())
	require.NotEqual(t, first.state.(raceState).position, second.state.(raceState).position,
		"expansion must not repeat a successor")
}

func TestNodeSelectChild(t *testing.T) {
	t.Run("prefers the higher reward rate at equal visits", func(t *testing.T) {
		parent := &node{visits: 20}
		better := &node{rewards: 9, visits: 10}
		worse := &node{rewards: 2, visits: 10}
		parent.children = []*node{worse, better}

		require.Equal(t, better, parent.selectChild())
	})

	t.Run("exploration favors the barely visited child", func(t *testing.T) {
		parent := &node{visits: 1000}
		exploited := &node{rewards: 600, visits: 998}
		neglected := &node{rewards: 1, visits: 2}
		parent.children = []*node{exploited, neglected}

		require.Equal(t, neglected, parent.selectChild(),
			"UCB1 should pull visits toward the under-explored child")
	})

	t.Run("panics on an unvisited parent", func(t *testing.T) {
		parent := &node{children: []*node{{rewards: 1, visits: 1}}}
		require.Panics(t, func() {
			parent.selectChild()
		})
	})
}

func TestNodeMostVisitedChild(t *testing.T) {
	t.Run("nil without children", func(t *testing.T) {
		n := &node{}
		require.Nil(t, n.mostVisitedChild())
	})

	t.Run("picks by visits, not rewards", func(t *testing.T) {
		lucky := &node{rewards: 5, visits: 5}
		solid := &node{rewards: 30, visits: 60}
		n := &node{children: []*node{lucky, solid}}

		require.Equal(t, solid, n.mostVisitedChild())
	})
}

func TestBackup(t *testing.T) {
	root := &node{player: -1}
	mid := &node{parent: root, player: 0}
	leaf := &node{parent: mid, player: 1}

	backup(leaf, []int{1})

	require.Equal(t, 1, leaf.visits)
	require.Equal(t, Win, leaf.rewards)
	require.Equal(t, 1, mid.visits)
	require.Equal(t, Loss, mid.rewards, "losing player's node gets no reward")
	require.Equal(t, 1, root.visits)

	backup(leaf, []int{0, 1})

	require.Equal(t, Win+Win, leaf.rewards, "shared wins credit every winner")
	require.Equal(t, Win, mid.rewards)
}
