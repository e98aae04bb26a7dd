package game

import "fmt"

// LocationKind distinguishes the two acquisition areas players take tiles
// from during a round.
type LocationKind int

const (
	// DisplayLocation is one of the 2N+1 factory displays refilled with four
	// tiles at the start of each round.
	DisplayLocation LocationKind = iota
	// TableLocation is the shared overflow area in the middle of the table.
	// It also carries the first-player marker at the start of each round.
	TableLocation
)

// Location holds the tiles currently sitting in one acquisition area. A
// color is present in the map only with a positive count; an empty map means
// no tiles are there.
type Location struct {
	kind              LocationKind
	tiles             map[Color]int
	firstPlayerMarker bool
}

// NewDisplay returns an empty factory display.
func NewDisplay() *Location {
	return &Location{kind: DisplayLocation, tiles: make(map[Color]int)}
}

// NewTable returns an empty table carrying the first-player marker.
func NewTable() *Location {
	return &Location{kind: TableLocation, tiles: make(map[Color]int), firstPlayerMarker: true}
}

// Copy returns a deep copy sharing no maps with the receiver.
func (l *Location) Copy() *Location {
	tilesCopy := make(map[Color]int, len(l.tiles))
	for color, count := range l.tiles {
		tilesCopy[color] = count
	}
	return &Location{kind: l.kind, tiles: tilesCopy, firstPlayerMarker: l.firstPlayerMarker}
}

// Kind returns whether this location is a display or the table.
func (l *Location) Kind() LocationKind {
	return l.kind
}

// IsEmpty reports whether the location holds no tiles. The first-player
// marker is not a tile and does not count.
func (l *Location) IsEmpty() bool {
	return len(l.tiles) == 0
}

// HasColor reports whether at least one tile of the given color is here.
func (l *Location) HasColor(color Color) bool {
	return l.tiles[color] > 0
}

// Count returns the number of tiles currently at the location.
func (l *Location) Count() int {
	total := 0
	for _, count := range l.tiles {
		total += count
	}
	return total
}

// Tiles returns a copy of the location's tile counts.
func (l *Location) Tiles() map[Color]int {
	tiles := make(map[Color]int, len(l.tiles))
	for color, count := range l.tiles {
		tiles[color] = count
	}
	return tiles
}

// Add places n tiles of the given color at the location.
func (l *Location) Add(color Color, n int) {
	if n > 0 {
		l.tiles[color] += n
	}
}

// AddAll places a whole batch of tiles at the location.
func (l *Location) AddAll(tiles map[Color]int) {
	for color, count := range tiles {
		l.Add(color, count)
	}
}

// TakeAll removes and returns every tile of the given color. It fails if the
// color is not offered here.
func (l *Location) TakeAll(color Color) (int, error) {
	count := l.tiles[color]
	if count == 0 {
		return 0, fmt.Errorf("no %v tiles at this location", color)
	}
	delete(l.tiles, color)
	return count, nil
}

// RemoveAllTiles empties the location and returns what it held. Used to move
// a display's leftovers onto the table after a take.
func (l *Location) RemoveAllTiles() map[Color]int {
	tiles := l.tiles
	l.tiles = make(map[Color]int)
	return tiles
}

// HasFirstPlayerMarker reports whether the marker is still on the table.
// Always false for displays.
func (l *Location) HasFirstPlayerMarker() bool {
	return l.firstPlayerMarker
}

// TakeFirstPlayerMarker clears the marker from the table.
func (l *Location) TakeFirstPlayerMarker() {
	l.firstPlayerMarker = false
}

// PlaceFirstPlayerMarker puts the marker back on the table for a new round.
func (l *Location) PlaceFirstPlayerMarker() {
	l.firstPlayerMarker = true
}

func (l *Location) String() string {
	if l.kind == TableLocation {
		return fmt.Sprintf("Table: %s, marker=%t", formatTiles(l.tiles), l.firstPlayerMarker)
	}
	return fmt.Sprintf("Display: %s", formatTiles(l.tiles))
}
