package game

import "fmt"

// Color is one of the five Azul tile colors.
type Color int

const (
	Blue Color = iota
	Yellow
	Red
	Black
	White
)

// NumColors is the size of the tile alphabet.
const NumColors = 5

// Colors lists every color in canonical order. Iterating this slice instead
// of ranging over maps keeps move generation and draws deterministic.
var Colors = [NumColors]Color{Blue, Yellow, Red, Black, White}

var colorLetters = [NumColors]string{"B", "Y", "R", "K", "W"}

func (c Color) String() string {
	if c < 0 || c >= NumColors {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorLetters[c]
}

// Valid reports whether c is one of the five tile colors.
func (c Color) Valid() bool {
	return c >= 0 && c < NumColors
}

// ParseColor converts a single-letter tile symbol into a Color. Anything
// outside {B, Y, R, K, W} is an invalid configuration.
func ParseColor(s string) (Color, error) {
	for i, letter := range colorLetters {
		if s == letter {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("invalid tile %q (one of {B, Y, R, K, W} required)", s)
}

// ParseTiles converts a string of tile symbols (e.g. "BBYW") into per-color
// counts. It fails on the first symbol outside the alphabet.
func ParseTiles(s string) (map[Color]int, error) {
	tiles := make(map[Color]int)
	for _, r := range s {
		color, err := ParseColor(string(r))
		if err != nil {
			return nil, err
		}
		tiles[color]++
	}
	return tiles, nil
}
