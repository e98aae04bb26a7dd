package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"azul/game"
)

var output = termenv.NewOutput(os.Stdout)

// ANSI palette indices for the five tile colors. Black gets a visible gray.
var tileColors = map[game.Color]string{
	game.Blue:   "12",
	game.Yellow: "11",
	game.Red:    "9",
	game.Black:  "8",
	game.White:  "15",
}

func tile(c game.Color) string {
	return output.String(c.String()).
		Foreground(output.Color(tileColors[c])).
		Bold().
		String()
}

// render produces the board view shown between turns: every location's
// contents and every player's rows, wall, floor line, and score.
func render(s *game.AzulState) string {
	var sb strings.Builder

	for i := 0; i < s.NumLocations(); i++ {
		loc := s.Location(i)
		if loc.Kind() == game.TableLocation {
			sb.WriteString(fmt.Sprintf("%2d Table:   %s", i, renderTiles(loc.Tiles())))
			if loc.HasFirstPlayerMarker() {
				sb.WriteString(" [1]")
			}
		} else {
			sb.WriteString(fmt.Sprintf("%2d Display: %s", i, renderTiles(loc.Tiles())))
		}
		sb.WriteString("\n")
	}

	for p := 0; p < s.NumPlayers(); p++ {
		board := s.Board(p)
		sb.WriteString(fmt.Sprintf("--- Player %d (score %d) ---\n", p, board.Score()))
		for row := 0; row < game.WallSize; row++ {
			sb.WriteString(strings.Repeat(" ", game.WallSize-row-1))
			color, count := board.Row(row)
			for cell := row; cell >= 0; cell-- {
				if cell < count {
					sb.WriteString(tile(color))
				} else {
					sb.WriteString(".")
				}
			}
			sb.WriteString("  ")
			for col := 0; col < game.WallSize; col++ {
				mandated := game.WallColorAt(row, col)
				if board.WallFilled(row, col) {
					sb.WriteString(tile(mandated))
				} else {
					// Empty wall cells show their mandated color in lowercase.
					sb.WriteString(strings.ToLower(mandated.String()))
				}
			}
			sb.WriteString("\n")
		}
		sb.WriteString("Floor:")
		for _, slot := range board.Floor() {
			if slot.Marker {
				sb.WriteString(" 1")
			} else {
				sb.WriteString(" " + tile(slot.Color))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderTiles(tiles map[game.Color]int) string {
	var sb strings.Builder
	for _, color := range game.Colors {
		for i := 0; i < tiles[color]; i++ {
			sb.WriteString(tile(color))
		}
	}
	if sb.Len() == 0 {
		return "(empty)"
	}
	return sb.String()
}
