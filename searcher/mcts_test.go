package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"azul/game"
	"golang.org/x/exp/rand"
)

// raceState is a minimal two-player game for exercising the searcher: from
// position p a player moves to p+1 or p+2, and whoever reaches the target
// wins. Positions target-1 and target-2 are winning for the mover; a
// position 3 away is losing.
type raceState struct {
	position int
	target   int
	last     int // player who moved last, -1 initially
}

func (s raceState) LastPlayer() int {
	return s.last
}

func (s raceState) mover() int {
	if s.last == -1 {
		return 0
	}
	return 1 - s.last
}

func (s raceState) LegalSuccessors() []game.GameState {
	if s.position >= s.target {
		return nil
	}
	var successors []game.GameState
	for _, step := range []int{1, 2} {
		if s.position+step <= s.target {
			successors = append(successors, raceState{
				position: s.position + step,
				target:   s.target,
				last:     s.mover(),
			})
		}
	}
	return successors
}

func (s raceState) RandomSuccessor() game.GameState {
	successors := s.LegalSuccessors()
	if len(successors) == 0 {
		return nil
	}
	return successors[rand.Intn(len(successors))]
}

func (s raceState) Winners() []int {
	if s.position >= s.target {
		return []int{s.last}
	}
	return nil
}

func TestNewMCTS(t *testing.T) {
	t.Run("panics without a budget", func(t *testing.T) {
		require.Panics(t, func() {
			NewMCTS()
		})
	})

	t.Run("accepts an iteration budget", func(t *testing.T) {
		require.NotPanics(t, func() {
			NewMCTS(WithIterations(10))
		})
	})
}

func TestSearch(t *testing.T) {
	t.Run("finds the winning move", func(t *testing.T) {
		// From position 0 with target 4, moving to 1 leaves the opponent 3
		// short - the only winning move.
		state := raceState{position: 0, target: 4, last: -1}
		mcts := NewMCTS(WithIterations(400))

		next, _ := mcts.Search(state)

		require.NotNil(t, next)
		require.Equal(t, 1, next.(raceState).position)
	})

	t.Run("takes an immediate win", func(t *testing.T) {
		state := raceState{position: 2, target: 4, last: -1}
		mcts := NewMCTS(WithIterations(200))

		next, _ := mcts.Search(state)

		require.Equal(t, 4, next.(raceState).position)
		require.Equal(t, []int{0}, next.Winners())
	})

	t.Run("returns nil on a terminal state", func(t *testing.T) {
		state := raceState{position: 4, target: 4, last: 1}
		mcts := NewMCTS(WithIterations(50))

		next, _ := mcts.Search(state)

		require.Nil(t, next)
	})

	t.Run("collects metrics when asked", func(t *testing.T) {
		state := raceState{position: 0, target: 6, last: -1}
		mcts := NewMCTS(WithIterations(100), WithMetrics())

		_, metric := mcts.Search(state)

		require.Equal(t, 100, metric.Iterations)
		require.Equal(t, 100, metric.FullPlayouts, "every race-game rollout reaches a terminal state")
		require.False(t, metric.StartTime.IsZero())
	})

	t.Run("searches an Azul opening", func(t *testing.T) {
		state, err := game.NewAzulState(2, nil)
		require.NoError(t, err)
		mcts := NewMCTS(WithIterations(50))

		next, _ := mcts.Search(state)

		require.NotNil(t, next)
		require.Equal(t, 0, next.LastPlayer(), "successor reflects the first player's move")
	})
}

func TestRollout(t *testing.T) {
	t.Run("walks to a terminal state", func(t *testing.T) {
		mcts := NewMCTS(WithIterations(1))

		winners := mcts.rollout(raceState{position: 0, target: 3, last: -1})

		require.Len(t, winners, 1)
	})

	t.Run("terminal state short-circuits", func(t *testing.T) {
		mcts := NewMCTS(WithIterations(1))

		winners := mcts.rollout(raceState{position: 3, target: 3, last: 0})

		require.Equal(t, []int{0}, winners)
	})
}
