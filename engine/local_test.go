package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"azul/game"
	"azul/searcher"
)

func TestLocalEngine(t *testing.T) {
	t.Run("rejects a seat count mismatch", func(t *testing.T) {
		state, err := game.NewAzulState(3, nil)
		require.NoError(t, err)

		require.Panics(t, func() {
			LocalEngine(state, []Agent{RandomAgent{}})
		})
	})

	t.Run("random agents play a full game to a winner", func(t *testing.T) {
		state, err := game.NewAzulState(2, nil)
		require.NoError(t, err)
		e := LocalEngine(state, []Agent{RandomAgent{}, RandomAgent{}})

		winners, err := e.Run()

		require.NoError(t, err)
		require.NotEmpty(t, winners)
		for _, winner := range winners {
			require.GreaterOrEqual(t, winner, 0)
			require.Less(t, winner, 2)
		}
		require.Equal(t, winners, e.State.Winners())
		require.Equal(t, 100, e.State.TileCount(), "tile conservation holds at game end")
	})

	t.Run("search agent plays a full game", func(t *testing.T) {
		state, err := game.NewAzulState(2, nil)
		require.NoError(t, err)
		mcts := searcher.NewMCTS(searcher.WithIterations(10))
		e := LocalEngine(state, []Agent{NewMCTSAgent(mcts), RandomAgent{}})

		winners, err := e.Run()

		require.NoError(t, err)
		require.NotEmpty(t, winners)
	})
}
