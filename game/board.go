package game

import (
	"fmt"
	"strings"
)

// WallSize is the side length of the wall and the number of pattern rows.
const WallSize = 5

// FloorSize is the number of floor-line slots.
const FloorSize = 7

// FloorWeights are the fixed per-slot floor-line penalties, applied left to
// right at the end of each round.
var FloorWeights = [FloorSize]int{-1, -1, -2, -2, -2, -3, -3}

// patternRow is one staging row. Row r holds at most r+1 tiles, all of one
// color; count == 0 means the row is empty.
type patternRow struct {
	color Color
	count int
}

// FloorSlot is one occupied floor-line slot: either a colored tile or the
// first-player marker.
type FloorSlot struct {
	Marker bool
	Color  Color
}

// Board is one player's side of the game: pattern rows, wall, floor line,
// and running score.
type Board struct {
	rows  [WallSize]patternRow
	wall  [WallSize][WallSize]bool
	floor []FloorSlot
	score int
}

// NewBoard returns an empty player board.
func NewBoard() *Board {
	return &Board{}
}

// Copy returns a deep copy sharing no mutable structure with the receiver.
func (b *Board) Copy() *Board {
	boardCopy := *b
	boardCopy.floor = make([]FloorSlot, len(b.floor))
	copy(boardCopy.floor, b.floor)
	return &boardCopy
}

// WallColumn returns the column the given color occupies in the given wall
// row. Row 0 follows the canonical color order; each later row shifts it one
// column to the right.
func WallColumn(row int, color Color) int {
	return (row + int(color)) % WallSize
}

// WallColorAt returns the color mandated for a wall cell.
func WallColorAt(row, col int) Color {
	return Color(((col - row) + WallSize) % WallSize)
}

// IsLegalPlacement reports whether tiles of the given color may be added to
// the given pattern row: the wall must not already hold that color in the
// row, and the row must not hold a different color. A full row does not by
// itself make a placement illegal; the excess simply overflows to the floor.
func (b *Board) IsLegalPlacement(color Color, row int) bool {
	if b.wall[row][WallColumn(row, color)] {
		return false
	}
	if b.rows[row].count > 0 && b.rows[row].color != color {
		return false
	}
	return true
}

// Place adds count tiles of the given color to the given pattern row,
// overflowing into the floor line once the row is full. It returns the
// number of tiles that fit nowhere and must be discarded to the lid.
func (b *Board) Place(count int, color Color, row int) int {
	space := (row + 1) - b.rows[row].count
	placed := count
	if placed > space {
		placed = space
	}
	if placed > 0 {
		b.rows[row].color = color
		b.rows[row].count += placed
	}
	return b.PlaceOnFloor(count-placed, color)
}

// PlaceOnFloor adds count tiles of the given color directly to the floor
// line's leftmost empty slots and returns how many did not fit.
func (b *Board) PlaceOnFloor(count int, color Color) int {
	for count > 0 && len(b.floor) < FloorSize {
		b.floor = append(b.floor, FloorSlot{Color: color})
		count--
	}
	return count
}

// AddFirstPlayerMarker puts the first-player marker into the leftmost empty
// floor slot. It is lost if the floor line is already full.
func (b *Board) AddFirstPlayerMarker() {
	if len(b.floor) < FloorSize {
		b.floor = append(b.floor, FloorSlot{Marker: true})
	}
}

// ScoreRound performs end-of-round scoring: every full pattern row places
// one tile on the wall and scores it, the floor line is penalized and
// cleared, and the score is clamped at zero. The returned map holds every
// tile that left the board and must go back to the lid.
func (b *Board) ScoreRound() map[Color]int {
	leftovers := make(map[Color]int)

	for row := 0; row < WallSize; row++ {
		if b.rows[row].count != row+1 {
			continue
		}
		color := b.rows[row].color
		col := WallColumn(row, color)
		b.wall[row][col] = true
		b.score += b.placementScore(row, col)
		if row > 0 {
			leftovers[color] += row
		}
		b.rows[row] = patternRow{}
	}

	for i, slot := range b.floor {
		b.score += FloorWeights[i]
		if !slot.Marker {
			leftovers[slot.Color]++
		}
	}
	b.floor = nil

	if b.score < 0 {
		b.score = 0
	}
	return leftovers
}

// placementScore scores a newly placed wall tile: the sum of its horizontal
// and vertical contiguous runs when each is at least two long, or one point
// for an isolated tile.
func (b *Board) placementScore(row, col int) int {
	horizontal := 1
	for c := col - 1; c >= 0 && b.wall[row][c]; c-- {
		horizontal++
	}
	for c := col + 1; c < WallSize && b.wall[row][c]; c++ {
		horizontal++
	}

	vertical := 1
	for r := row - 1; r >= 0 && b.wall[r][col]; r-- {
		vertical++
	}
	for r := row + 1; r < WallSize && b.wall[r][col]; r++ {
		vertical++
	}

	score := 0
	if horizontal >= 2 {
		score += horizontal
	}
	if vertical >= 2 {
		score += vertical
	}
	if score == 0 {
		score = 1
	}
	return score
}

// Score returns the player's running score.
func (b *Board) Score() int {
	return b.score
}

// FinalScore returns the running score plus end-of-game bonuses: 2 points
// per complete wall row, 7 per complete column, and 10 per color with all
// five tiles on the wall.
func (b *Board) FinalScore() int {
	final := b.score
	final += 2 * b.CompletedRowCount()

	for col := 0; col < WallSize; col++ {
		complete := true
		for row := 0; row < WallSize; row++ {
			if !b.wall[row][col] {
				complete = false
				break
			}
		}
		if complete {
			final += 7
		}
	}

	for _, color := range Colors {
		complete := true
		for row := 0; row < WallSize; row++ {
			if !b.wall[row][WallColumn(row, color)] {
				complete = false
				break
			}
		}
		if complete {
			final += 10
		}
	}
	return final
}

// HasCompletedRow reports whether any wall row is fully filled. This is the
// trigger that ends the game at the next round boundary.
func (b *Board) HasCompletedRow() bool {
	return b.CompletedRowCount() > 0
}

// CompletedRowCount returns how many wall rows are fully filled. Used to
// break final-score ties.
func (b *Board) CompletedRowCount() int {
	completed := 0
	for row := 0; row < WallSize; row++ {
		full := true
		for col := 0; col < WallSize; col++ {
			if !b.wall[row][col] {
				full = false
				break
			}
		}
		if full {
			completed++
		}
	}
	return completed
}

// Row returns the color and fill count of a pattern row. The color is
// meaningful only when the count is positive.
func (b *Board) Row(row int) (Color, int) {
	return b.rows[row].color, b.rows[row].count
}

// WallFilled reports whether the wall cell at the given position holds its
// mandated tile.
func (b *Board) WallFilled(row, col int) bool {
	return b.wall[row][col]
}

// Floor returns a copy of the occupied floor-line slots, leftmost first.
func (b *Board) Floor() []FloorSlot {
	floor := make([]FloorSlot, len(b.floor))
	copy(floor, b.floor)
	return floor
}

// TileCount returns the number of tiles sitting on the board: pattern rows,
// floor line (excluding the marker), and wall.
func (b *Board) TileCount() int {
	total := 0
	for _, row := range b.rows {
		total += row.count
	}
	for _, slot := range b.floor {
		if !slot.Marker {
			total++
		}
	}
	for row := 0; row < WallSize; row++ {
		for col := 0; col < WallSize; col++ {
			if b.wall[row][col] {
				total++
			}
		}
	}
	return total
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < WallSize; row++ {
		sb.WriteString(strings.Repeat(" ", WallSize-row-1))
		for cell := row; cell >= 0; cell-- {
			if cell < b.rows[row].count {
				sb.WriteString(b.rows[row].color.String())
			} else {
				sb.WriteString(".")
			}
		}
		sb.WriteString("  ")
		for col := 0; col < WallSize; col++ {
			if b.wall[row][col] {
				sb.WriteString(WallColorAt(row, col).String())
			} else {
				sb.WriteString(".")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Floor: [")
	for i, slot := range b.floor {
		if i > 0 {
			sb.WriteString(" ")
		}
		if slot.Marker {
			sb.WriteString("1")
		} else {
			sb.WriteString(slot.Color.String())
		}
	}
	sb.WriteString("]\n")
	sb.WriteString(fmt.Sprintf("Score: %d", b.score))
	return sb.String()
}
