package game

import "fmt"

// TilesPerDisplay is how many tiles each display receives at refill.
const TilesPerDisplay = 4

// RefillPolicy supplies the tiles that fill the displays at the start of a
// round. The driver injects one; the core never reads input itself.
type RefillPolicy interface {
	Refill(s *AzulState) error
}

// RandomRefill draws every display tile uniformly at random from the bag,
// refilling the bag from the lid whenever it runs dry mid-deal.
type RandomRefill struct{}

func (RandomRefill) Refill(s *AzulState) error {
	s.checkRefillAllowed()
	for _, display := range s.displays() {
		for i := 0; i < TilesPerDisplay; i++ {
			color, err := s.bag.DrawRandom()
			if err != nil {
				return fmt.Errorf("refilling displays: %w", err)
			}
			display.Add(color, 1)
		}
	}
	return nil
}

// FixedDeal refills the displays with an externally supplied deal, one
// 4-tile string per display (e.g. "BBYW"). The whole deal is validated for
// shape and bag availability before any tile moves, so a rejected deal has
// no effect on the state.
type FixedDeal struct {
	Displays []string
}

func (d FixedDeal) Refill(s *AzulState) error {
	s.checkRefillAllowed()

	numDisplays := len(s.displays())
	if len(d.Displays) != numDisplays {
		return fmt.Errorf("deal has %d displays, %d required", len(d.Displays), numDisplays)
	}

	deal := make([]map[Color]int, numDisplays)
	needed := make(map[Color]int)
	for i, tileString := range d.Displays {
		tiles, err := ParseTiles(tileString)
		if err != nil {
			return fmt.Errorf("display %d: %w", i+1, err)
		}
		total := 0
		for color, count := range tiles {
			total += count
			needed[color] += count
		}
		if total != TilesPerDisplay {
			return fmt.Errorf("display %d: %d tiles supplied, %d required", i+1, total, TilesPerDisplay)
		}
		deal[i] = tiles
	}

	// A deterministic withdrawal cannot trigger a lid refill mid-way, so pull
	// the lid back into the bag up front when the bag alone cannot cover the
	// deal.
	if s.bag.Remaining() < TilesPerDisplay*numDisplays {
		s.bag.RefillBagFromLid()
	}

	if err := s.bag.RemoveExact(needed); err != nil {
		return err
	}

	for i, display := range s.displays() {
		display.AddAll(deal[i])
	}
	return nil
}
