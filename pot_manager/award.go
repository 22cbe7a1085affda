package pot_manager

import (
	"github.com/thoas/go-funk"
)

type Award struct {
	SeatID int   `json:"seat_id"`
	Amount int64 `json:"amount"`
}

// Distribute splits the pot evenly between the winners. Odd chips are handed
// out one at a time following order, which lists seats by priority; winners
// missing from order come last in the order given.
func Distribute(pot Pot, winners []int, order []int) ([]Award, error) {
	if len(winners) == 0 {
		return nil, ErrNoWinners
	}

	for _, w := range winners {
		if !pot.IsEligible(w) {
			return nil, ErrWinnerNotEligible
		}
	}

	ordered := funk.FilterInt(order, func(seatID int) bool {
		return funk.ContainsInt(winners, seatID)
	})
	for _, w := range winners {
		if !funk.ContainsInt(ordered, w) {
			ordered = append(ordered, w)
		}
	}

	count := int64(len(ordered))
	share := pot.Size / count
	remainder := pot.Size % count

	awards := make([]Award, 0, len(ordered))
	for i, seatID := range ordered {
		amount := share
		if int64(i) < remainder {
			amount++
		}
		awards = append(awards, Award{SeatID: seatID, Amount: amount})
	}

	return awards, nil
}
