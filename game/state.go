package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"

	"golang.org/x/exp/rand"
)

// TableIndex is the location index of the table; displays occupy the
// indices after it.
const TableIndex = 0

// AzulState is the complete state of one Azul game: the tile bag, the table
// plus 2N+1 displays, one board per player, and the turn bookkeeping.
//
// Round boundaries are special: once every location is empty the state
// scores itself and sets up the next round. Because the tile combinations a
// random refill can produce are far too many to enumerate, round boundaries
// are not expandable - LegalSuccessors returns nothing there and the search
// engine pushes through them with RandomSuccessor instead. Winners is
// non-empty only once some wall row has been completed.
type AzulState struct {
	bag       *TileBag
	locations []*Location
	boards    []*Board

	numPlayers     int
	lastPlayer     int
	currentPlayer  int
	nextRoundFirst int
}

// NewAzulState creates a game for 2-4 players with the displays filled by
// the given refill policy (random when nil).
func NewAzulState(numPlayers int, refill RefillPolicy) (*AzulState, error) {
	if numPlayers < 2 || numPlayers > 4 {
		return nil, fmt.Errorf("tried to start a game with %d players (2-4 required)", numPlayers)
	}

	numDisplays := 2*numPlayers + 1
	locations := make([]*Location, 1+numDisplays)
	locations[TableIndex] = NewTable()
	for i := 1; i < len(locations); i++ {
		locations[i] = NewDisplay()
	}

	boards := make([]*Board, numPlayers)
	for i := range boards {
		boards[i] = NewBoard()
	}

	s := &AzulState{
		bag:            NewTileBag(),
		locations:      locations,
		boards:         boards,
		numPlayers:     numPlayers,
		lastPlayer:     -1,
		currentPlayer:  0,
		nextRoundFirst: -1,
	}

	if refill == nil {
		refill = RandomRefill{}
	}
	if err := refill.Refill(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Copy returns a fully independent deep copy. Simulated futures must never
// alias the state they were derived from.
func (s *AzulState) Copy() *AzulState {
	locations := make([]*Location, len(s.locations))
	for i, loc := range s.locations {
		locations[i] = loc.Copy()
	}
	boards := make([]*Board, len(s.boards))
	for i, board := range s.boards {
		boards[i] = board.Copy()
	}
	return &AzulState{
		bag:            s.bag.Copy(),
		locations:      locations,
		boards:         boards,
		numPlayers:     s.numPlayers,
		lastPlayer:     s.lastPlayer,
		currentPlayer:  s.currentPlayer,
		nextRoundFirst: s.nextRoundFirst,
	}
}

// ApplyMove takes every tile of the given color from the given location and
// places them on the current player's board: into pattern row 0-4, or
// directly onto the floor line when row is -1.
//
// Any rule violation returns a descriptive error and leaves the state
// untouched. If the move empties the last location, the round is scored and
// the next round is set up; the refill policy fills the displays then (pass
// nil to skip the refill, as the search does when expanding). A refill
// rejected by the policy is reported after scoring has already happened;
// RefillIfNeeded can retry it with a corrected deal.
func (s *AzulState) ApplyMove(location int, color Color, row int, refill RefillPolicy) error {
	if location < 0 || location >= len(s.locations) {
		return fmt.Errorf("tried to make a move from tile location %d (0-%d required)",
			location, len(s.locations)-1)
	}
	loc := s.locations[location]
	if loc.IsEmpty() {
		return fmt.Errorf("tried to take a tile from an empty tile location (%d)", location)
	}
	if !color.Valid() {
		return fmt.Errorf("invalid tile %v (one of {B, Y, R, K, W} required)", color)
	}
	if !loc.HasColor(color) {
		return fmt.Errorf("tried to take %v from tile location %d, but there is no such tile there",
			color, location)
	}
	if row < -1 || row >= WallSize {
		return fmt.Errorf("tried to add tiles to row %d (0-4 required, or -1 for the floor line)", row)
	}
	board := s.boards[s.currentPlayer]
	if row != -1 && !board.IsLegalPlacement(color, row) {
		return fmt.Errorf("tried to add the color %v to row %d, but it is not legal to do so", color, row)
	}

	taken, err := loc.TakeAll(color)
	if err != nil {
		return err
	}

	var overflow int
	if row == -1 {
		overflow = board.PlaceOnFloor(taken, color)
	} else {
		overflow = board.Place(taken, color, row)
	}
	s.bag.AddToLid(color, overflow)

	if location == TableIndex {
		if loc.HasFirstPlayerMarker() {
			loc.TakeFirstPlayerMarker()
			board.AddFirstPlayerMarker()
			s.nextRoundFirst = s.currentPlayer
		}
	} else {
		// Whatever the player left behind in the display moves to the table.
		s.locations[TableIndex].AddAll(loc.RemoveAllTiles())
	}

	s.lastPlayer = s.currentPlayer

	if !s.RoundOver() {
		s.currentPlayer = (s.currentPlayer + 1) % s.numPlayers
		return nil
	}

	// Round complete: score every board and return the leftovers to the lid.
	for _, b := range s.boards {
		s.bag.AddAllToLid(b.ScoreRound())
	}

	if s.nextRoundFirst != -1 {
		s.currentPlayer = s.nextRoundFirst
	} else {
		s.currentPlayer = (s.currentPlayer + 1) % s.numPlayers
	}

	if len(s.Winners()) == 0 {
		if refill != nil {
			if err := refill.Refill(s); err != nil {
				return err
			}
		}
		s.locations[TableIndex].PlaceFirstPlayerMarker()
		s.nextRoundFirst = -1
	}
	return nil
}

// RefillIfNeeded fills the displays for the next round when the state sits
// at a non-terminal round boundary without tiles in play. It is a no-op
// mid-round and once the game is over. Used after adopting a search result,
// since the search expands states without refilling.
func (s *AzulState) RefillIfNeeded(refill RefillPolicy) error {
	if !s.RoundOver() || len(s.Winners()) != 0 {
		return nil
	}
	return refill.Refill(s)
}

// checkRefillAllowed panics if any tiles are still in play. Refilling
// mid-round is an internal sequencing bug, not a user error.
func (s *AzulState) checkRefillAllowed() {
	for _, loc := range s.locations {
		if !loc.IsEmpty() {
			panic("tried to refill displays while tiles are still in play")
		}
	}
}

// RoundOver reports whether every location is empty, the instant that
// triggers scoring and the next refill.
func (s *AzulState) RoundOver() bool {
	for _, loc := range s.locations {
		if !loc.IsEmpty() {
			return false
		}
	}
	return true
}

// LastPlayer returns the player who moved last, or -1 at game start.
func (s *AzulState) LastPlayer() int {
	return s.lastPlayer
}

// CurrentPlayer returns the player who must act now.
func (s *AzulState) CurrentPlayer() int {
	return s.currentPlayer
}

// NumPlayers returns the number of players in the game.
func (s *AzulState) NumPlayers() int {
	return s.numPlayers
}

// NumLocations returns the number of acquisition locations, table included.
func (s *AzulState) NumLocations() int {
	return len(s.locations)
}

// Location returns a copy of the location at the given index.
func (s *AzulState) Location(i int) *Location {
	return s.locations[i].Copy()
}

// Board returns a copy of the given player's board.
func (s *AzulState) Board(player int) *Board {
	return s.boards[player].Copy()
}

func (s *AzulState) displays() []*Location {
	return s.locations[TableIndex+1:]
}

// LegalSuccessors returns a successor state for every legal move of the
// current player. Round boundaries are not expandable and yield nothing.
// For each location and color, placements into pattern rows are preferred; a
// floor-line move is offered only when no row placement is legal.
func (s *AzulState) LegalSuccessors() []GameState {
	if s.RoundOver() {
		return nil
	}

	var successors []GameState
	board := s.boards[s.currentPlayer]

	for locIdx, loc := range s.locations {
		if loc.IsEmpty() {
			continue
		}
		for _, color := range Colors {
			if !loc.HasColor(color) {
				continue
			}
			placedInRow := false
			for row := 0; row < WallSize; row++ {
				if !board.IsLegalPlacement(color, row) {
					continue
				}
				next := s.Copy()
				if err := next.ApplyMove(locIdx, color, row, nil); err != nil {
					panic(fmt.Sprintf("legal placement rejected: %v", err))
				}
				successors = append(successors, next)
				placedInRow = true
			}
			if !placedInRow {
				next := s.Copy()
				if err := next.ApplyMove(locIdx, color, -1, nil); err != nil {
					panic(fmt.Sprintf("floor-line move rejected: %v", err))
				}
				successors = append(successors, next)
			}
		}
	}
	return successors
}

// RandomSuccessor returns one randomly chosen continuation. At a round
// boundary it first refills the displays randomly on a private clone, which
// is how the simulation phase pushes through the combinatorial refill step.
// Callers must check Winners before calling; on a terminal state a refill
// would resurrect a finished game.
func (s *AzulState) RandomSuccessor() GameState {
	source := s
	if s.RoundOver() {
		clone := s.Copy()
		if err := (RandomRefill{}).Refill(clone); err != nil {
			return nil
		}
		source = clone
	}

	successors := source.LegalSuccessors()
	if len(successors) == 0 {
		return nil
	}
	return successors[rand.Intn(len(successors))]
}

// Winners returns the winning player indices: empty until some wall row has
// been completed, then the players with the best final score, ties broken by
// most completed wall rows, remaining ties shared.
func (s *AzulState) Winners() []int {
	gameOver := false
	for _, b := range s.boards {
		if b.HasCompletedRow() {
			gameOver = true
			break
		}
	}
	if !gameOver {
		return nil
	}

	var winners []int
	bestScore, bestRows := -1, -1
	for i, b := range s.boards {
		score := b.FinalScore()
		rows := b.CompletedRowCount()
		switch {
		case score > bestScore:
			winners = []int{i}
			bestScore, bestRows = score, rows
		case score == bestScore && rows > bestRows:
			winners = []int{i}
			bestRows = rows
		case score == bestScore && rows == bestRows:
			winners = append(winners, i)
		}
	}
	return winners
}

// TileCount returns the number of tiles in the whole system: bag, lid,
// locations, and boards. It is always 100 outside of a move application.
func (s *AzulState) TileCount() int {
	total := s.bag.Remaining() + s.bag.LidCount()
	for _, loc := range s.locations {
		total += loc.Count()
	}
	for _, b := range s.boards {
		total += b.TileCount()
	}
	return total
}

// Hash returns an fnv-1a digest of the full state.
func (s *AzulState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(s.numPlayers))
	binary.Write(hasher, binary.LittleEndian, int64(s.lastPlayer))
	binary.Write(hasher, binary.LittleEndian, int64(s.currentPlayer))
	binary.Write(hasher, binary.LittleEndian, int64(s.nextRoundFirst))

	for _, color := range Colors {
		binary.Write(hasher, binary.LittleEndian, int64(s.bag.bag[color]))
		binary.Write(hasher, binary.LittleEndian, int64(s.bag.lid[color]))
	}

	for _, loc := range s.locations {
		for _, color := range Colors {
			binary.Write(hasher, binary.LittleEndian, int64(loc.tiles[color]))
		}
		binary.Write(hasher, binary.LittleEndian, loc.firstPlayerMarker)
	}

	for _, b := range s.boards {
		for row := 0; row < WallSize; row++ {
			binary.Write(hasher, binary.LittleEndian, int64(b.rows[row].color))
			binary.Write(hasher, binary.LittleEndian, int64(b.rows[row].count))
			for col := 0; col < WallSize; col++ {
				binary.Write(hasher, binary.LittleEndian, b.wall[row][col])
			}
		}
		for _, slot := range b.floor {
			binary.Write(hasher, binary.LittleEndian, slot.Marker)
			binary.Write(hasher, binary.LittleEndian, int64(slot.Color))
		}
		binary.Write(hasher, binary.LittleEndian, int64(b.score))
	}

	return StateHash(hasher.Sum64())
}

func (s *AzulState) String() string {
	var sb strings.Builder
	sb.WriteString("===================================================================\n")
	sb.WriteString(fmt.Sprintf("Last Player = %d\n", s.lastPlayer))
	sb.WriteString(fmt.Sprintf("Current Player = %d\n", s.currentPlayer))
	sb.WriteString(fmt.Sprintf("Player to start next round = %d\n", s.nextRoundFirst))
	sb.WriteString(s.bag.String())
	for _, loc := range s.locations {
		sb.WriteString("\n" + loc.String())
	}
	for i, b := range s.boards {
		sb.WriteString("\n===================================================================")
		sb.WriteString(fmt.Sprintf("\nPlayer %d\n%s", i, b))
	}
	return sb.String()
}
