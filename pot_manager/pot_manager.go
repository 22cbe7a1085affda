package pot_manager

import (
	"errors"
	"sort"

	"github.com/thoas/go-funk"
)

var (
	ErrNoWinners         = errors.New("pot manager: no winners")
	ErrWinnerNotEligible = errors.New("pot manager: winner is not eligible")
)

type Pot struct {
	Size            int64 `json:"size"`
	EligiblePlayers []int `json:"eligible_players"`
}

func (p Pot) IsEligible(seatID int) bool {
	return funk.ContainsInt(p.EligiblePlayers, seatID)
}

func (p Pot) Clone() Pot {
	return Pot{
		Size:            p.Size,
		EligiblePlayers: append([]int{}, p.EligiblePlayers...),
	}
}

// Contribution is what a hand participant has put into the pots so far.
type Contribution struct {
	SeatID int
	Amount int64
	Folded bool
}

// PotManager keeps the pots of one hand.
type PotManager struct {
	pots []Pot
}

func NewPotManager() *PotManager {
	return &PotManager{
		pots: make([]Pot, 0),
	}
}

// Update recomputes the pots from the contributions. A seat that lost its
// eligibility for a pot never gets it back.
func (pm *PotManager) Update(contributions []Contribution) {
	pots := CalcPots(contributions)
	for i := 0; i < len(pots) && i < len(pm.pots); i++ {
		previous := pm.pots[i].EligiblePlayers
		pots[i].EligiblePlayers = funk.FilterInt(pots[i].EligiblePlayers, func(seatID int) bool {
			return funk.ContainsInt(previous, seatID)
		})
	}
	pm.pots = pots
}

func (pm *PotManager) Pots() []Pot {
	pots := make([]Pot, 0, len(pm.pots))
	for _, p := range pm.pots {
		pots = append(pots, p.Clone())
	}
	return pots
}

func (pm *PotManager) Total() int64 {
	total := int64(0)
	for _, p := range pm.pots {
		total += p.Size
	}
	return total
}

func (pm *PotManager) Reset() {
	pm.pots = make([]Pot, 0)
}

// CalcPots splits the contributions into a main pot and side pots, one per
// distinct amount committed by a seat that has not folded. Chips a folded
// seat put in above the highest of those amounts go to the last pot.
func CalcPots(contributions []Contribution) []Pot {
	levels := make([]int64, 0)
	for _, c := range contributions {
		if !c.Folded && c.Amount > 0 {
			levels = append(levels, c.Amount)
		}
	}
	levels = funk.UniqInt64(levels)
	sort.Slice(levels, func(i, j int) bool {
		return levels[i] < levels[j]
	})

	if len(levels) == 0 {
		main := Pot{EligiblePlayers: make([]int, 0)}
		for _, c := range contributions {
			main.Size += c.Amount
			if !c.Folded {
				main.EligiblePlayers = append(main.EligiblePlayers, c.SeatID)
			}
		}
		sort.Ints(main.EligiblePlayers)
		return []Pot{main}
	}

	pots := make([]Pot, 0, len(levels))
	previous := int64(0)
	for i, level := range levels {
		pot := Pot{EligiblePlayers: make([]int, 0)}
		isLast := i == len(levels)-1

		for _, c := range contributions {
			portion := c.Amount
			if portion > level && !isLast {
				portion = level
			}
			portion -= previous
			if portion > 0 {
				pot.Size += portion
			}

			if !c.Folded && c.Amount >= level {
				pot.EligiblePlayers = append(pot.EligiblePlayers, c.SeatID)
			}
		}

		sort.Ints(pot.EligiblePlayers)
		pots = append(pots, pot)
		previous = level
	}

	return pots
}
