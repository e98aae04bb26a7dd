package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
)

// TilesPerColor is how many tiles of each color the game starts with.
const TilesPerColor = 20

// TileBag tracks the tiles circulating between the draw bag and the lid of
// the game box. Both multisets map color to count; a color is present only
// with a positive count.
type TileBag struct {
	bag map[Color]int
	lid map[Color]int
}

// NewTileBag returns a bag holding 20 tiles of each color and an empty lid.
func NewTileBag() *TileBag {
	bag := make(map[Color]int, NumColors)
	for _, color := range Colors {
		bag[color] = TilesPerColor
	}
	return &TileBag{
		bag: bag,
		lid: make(map[Color]int),
	}
}

// Copy returns a deep copy sharing no maps with the receiver.
func (tb *TileBag) Copy() *TileBag {
	bagCopy := make(map[Color]int, len(tb.bag))
	for color, count := range tb.bag {
		bagCopy[color] = count
	}
	lidCopy := make(map[Color]int, len(tb.lid))
	for color, count := range tb.lid {
		lidCopy[color] = count
	}
	return &TileBag{bag: bagCopy, lid: lidCopy}
}

// Remaining returns the number of tiles currently drawable from the bag.
func (tb *TileBag) Remaining() int {
	total := 0
	for _, count := range tb.bag {
		total += count
	}
	return total
}

// LidCount returns the number of tiles waiting in the lid.
func (tb *TileBag) LidCount() int {
	total := 0
	for _, count := range tb.lid {
		total += count
	}
	return total
}

// DrawRandom removes and returns one tile drawn uniformly at random from the
// bag, weighted by tile count. An empty bag is first refilled from the lid;
// drawing fails only if bag and lid are both empty, which cannot happen under
// correct tile accounting.
func (tb *TileBag) DrawRandom() (Color, error) {
	if tb.Remaining() == 0 {
		tb.RefillBagFromLid()
	}

	total := tb.Remaining()
	if total == 0 {
		return 0, fmt.Errorf("cannot draw a tile: bag and lid are both empty")
	}

	k := rand.Intn(total)
	for _, color := range Colors {
		count := tb.bag[color]
		if k < count {
			tb.removeFromBag(color, 1)
			return color, nil
		}
		k -= count
	}
	panic("tile draw index out of range")
}

// RemoveExact removes the requested tiles from the bag. The whole request is
// validated before anything is mutated, so a failed removal has no effect.
func (tb *TileBag) RemoveExact(tiles map[Color]int) error {
	for color, count := range tiles {
		if !color.Valid() {
			return fmt.Errorf("invalid tile %v", color)
		}
		if tb.bag[color] < count {
			return fmt.Errorf("cannot remove %d %v tiles from the bag: only %d available",
				count, color, tb.bag[color])
		}
	}
	for color, count := range tiles {
		tb.removeFromBag(color, count)
	}
	return nil
}

// AddToLid places n discarded tiles of the given color into the lid.
func (tb *TileBag) AddToLid(color Color, n int) {
	if n > 0 {
		tb.lid[color] += n
	}
}

// AddAllToLid places a whole batch of discarded tiles into the lid.
func (tb *TileBag) AddAllToLid(tiles map[Color]int) {
	for color, count := range tiles {
		tb.AddToLid(color, count)
	}
}

// RefillBagFromLid empties the lid back into the bag. Deterministic
// withdrawals cannot trigger a refill mid-way, so callers that plan to remove
// more tiles than remain in the bag must call this up front.
func (tb *TileBag) RefillBagFromLid() {
	for color, count := range tb.lid {
		tb.bag[color] += count
	}
	tb.lid = make(map[Color]int)
}

func (tb *TileBag) removeFromBag(color Color, n int) {
	tb.bag[color] -= n
	if tb.bag[color] <= 0 {
		delete(tb.bag, color)
	}
}

func (tb *TileBag) String() string {
	return fmt.Sprintf("Bag: %s, Lid: %s", formatTiles(tb.bag), formatTiles(tb.lid))
}

func formatTiles(tiles map[Color]int) string {
	parts := make([]string, 0, len(tiles))
	for _, color := range Colors {
		if count := tiles[color]; count > 0 {
			parts = append(parts, fmt.Sprintf("%v=%d", color, count))
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
