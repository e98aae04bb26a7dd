package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	t.Run("accepts the five tile symbols", func(t *testing.T) {
		for _, color := range Colors {
			parsed, err := ParseColor(color.String())
			require.NoError(t, err)
			require.Equal(t, color, parsed)
		}
	})

	t.Run("rejects anything else", func(t *testing.T) {
		for _, bad := range []string{"X", "b", "", "BB", "1"} {
			_, err := ParseColor(bad)
			require.Error(t, err, "%q is outside the alphabet", bad)
		}
	})
}

func TestParseTiles(t *testing.T) {
	t.Run("counts repeated symbols", func(t *testing.T) {
		tiles, err := ParseTiles("BBYW")

		require.NoError(t, err)
		require.Equal(t, map[Color]int{Blue: 2, Yellow: 1, White: 1}, tiles)
	})

	t.Run("fails on the first bad symbol", func(t *testing.T) {
		_, err := ParseTiles("BBQW")
		require.Error(t, err)
	})
}
