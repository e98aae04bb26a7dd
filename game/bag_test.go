package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTileBag(t *testing.T) {
	bag := NewTileBag()

	require.Equal(t, 100, bag.Remaining(), "game starts with 20 tiles of each of 5 colors")
	require.Equal(t, 0, bag.LidCount())
}

func TestDrawRandom(t *testing.T) {
	t.Run("draw removes exactly one tile", func(t *testing.T) {
		bag := NewTileBag()

		color, err := bag.DrawRandom()

		require.NoError(t, err)
		require.True(t, color.Valid())
		require.Equal(t, 99, bag.Remaining())
	})

	t.Run("empty bag refills from the lid before drawing", func(t *testing.T) {
		bag := NewTileBag()
		require.NoError(t, bag.RemoveExact(map[Color]int{
			Blue: 20, Yellow: 20, Red: 20, Black: 20, White: 20,
		}))
		bag.AddToLid(Red, 3)

		color, err := bag.DrawRandom()

		require.NoError(t, err)
		require.Equal(t, Red, color)
		require.Equal(t, 2, bag.Remaining())
		require.Equal(t, 0, bag.LidCount())
	})

	t.Run("fails only when bag and lid are both empty", func(t *testing.T) {
		bag := NewTileBag()
		require.NoError(t, bag.RemoveExact(map[Color]int{
			Blue: 20, Yellow: 20, Red: 20, Black: 20, White: 20,
		}))

		_, err := bag.DrawRandom()

		require.Error(t, err)
	})

	t.Run("drained color disappears from the bag", func(t *testing.T) {
		bag := NewTileBag()
		require.NoError(t, bag.RemoveExact(map[Color]int{
			Yellow: 20, Red: 20, Black: 20, White: 20,
		}))
		require.NoError(t, bag.RemoveExact(map[Color]int{Blue: 19}))

		color, err := bag.DrawRandom()

		require.NoError(t, err)
		require.Equal(t, Blue, color, "only blue remained")
		require.NotContains(t, bag.bag, Blue, "zero-count colors must not linger")
	})
}

func TestRemoveExact(t *testing.T) {
	t.Run("removes every requested tile", func(t *testing.T) {
		bag := NewTileBag()

		err := bag.RemoveExact(map[Color]int{Blue: 2, White: 1})

		require.NoError(t, err)
		require.Equal(t, 97, bag.Remaining())
	})

	t.Run("fails atomically when any color is short", func(t *testing.T) {
		bag := NewTileBag()
		require.NoError(t, bag.RemoveExact(map[Color]int{Blue: 20}))

		err := bag.RemoveExact(map[Color]int{Yellow: 5, Blue: 1})

		require.Error(t, err)
		require.Equal(t, 80, bag.Remaining(), "failed removal must not take any tiles")
		require.Equal(t, 20, bag.bag[Yellow])
	})
}

func TestRefillBagFromLid(t *testing.T) {
	bag := NewTileBag()
	bag.AddToLid(Red, 4)
	bag.AddToLid(Black, 2)

	bag.RefillBagFromLid()

	require.Equal(t, 106, bag.Remaining())
	require.Equal(t, 0, bag.LidCount())
	require.Equal(t, 24, bag.bag[Red])
}

func TestTileBagCopy(t *testing.T) {
	bag := NewTileBag()
	bag.AddToLid(Blue, 1)

	bagCopy := bag.Copy()
	require.NoError(t, bagCopy.RemoveExact(map[Color]int{White: 10}))
	bagCopy.AddToLid(Blue, 5)

	require.Equal(t, 100, bag.Remaining(), "copy mutations must not leak back")
	require.Equal(t, 1, bag.LidCount())
}
