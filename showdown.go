package holdemtable

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/thoas/go-funk"
	"github.com/weedbox/holdemtable/card"
	"github.com/weedbox/holdemtable/evaluator"
	"github.com/weedbox/holdemtable/pot_manager"
)

type Winner struct {
	SeatID      int             `json:"seat_id"`
	Amount      int64           `json:"amount"`
	HoleCards   *card.HoleCards `json:"hole_cards,omitempty"`
	Description string          `json:"description,omitempty"`
}

// PotResult tells who won a pot. Uncontested pots carry no hole cards.
type PotResult struct {
	Pot     Pot      `json:"pot"`
	Winners []Winner `json:"winners"`
}

func (r PotResult) clone() PotResult {
	winners := make([]Winner, 0, len(r.Winners))
	for _, w := range r.Winners {
		if w.HoleCards != nil {
			hc := *w.HoleCards
			w.HoleCards = &hc
		}
		winners = append(winners, w)
	}
	return PotResult{Pot: r.Pot.Clone(), Winners: winners}
}

// Showdown awards every pot and ends the hand. A nil ranker falls back to the
// table's ranker. Nothing changes when an error is returned.
func (t *Table) Showdown(ranker evaluator.HandRanker) error {
	t.mu.Lock()
	defer t.flushEvents()
	defer t.mu.Unlock()

	if err := t.showdown(ranker); err != nil {
		t.emitErrorEvent(TableEvent_Showdown, UnsetValue, err)
		return err
	}
	return nil
}

func (t *Table) showdown(ranker evaluator.HandRanker) error {
	if t.hand == nil {
		return ErrNoHandInProgress
	}

	h := t.hand
	if !h.bettingRoundsCompleted {
		return ErrShowdownNotReady
	}

	if ranker == nil {
		ranker = t.ranker
	}

	results, err := t.settle(ranker)
	if err != nil {
		return err
	}

	for _, r := range results {
		for _, w := range r.Winners {
			h.players[w.SeatID].Win(w.Amount)
		}
	}

	h.end()
	t.hand = nil
	t.winnerList = results
	t.turnSerial++

	t.eventLogger(TableEvent_Showdown, UnsetValue).WithFields(logrus.Fields{
		"hand_id": h.id,
		"pots":    len(results),
	}).Info("hand settled")
	t.emitEvent(TableEvent_Showdown, UnsetValue)
	return nil
}

// settle works out the awards of every pot without touching the stacks.
func (t *Table) settle(ranker evaluator.HandRanker) ([]PotResult, error) {
	h := t.hand
	order := clockwiseFrom(h.button)
	describer := evaluator.NewEvaluator()

	results := make([]PotResult, 0)
	for _, pot := range h.potManager.Pots() {
		eligible := funk.FilterInt(pot.EligiblePlayers, h.isContender)

		contested := len(eligible) > 1
		winners := eligible
		if contested {
			ranked, err := t.rankPot(ranker, eligible)
			if err != nil {
				return nil, err
			}
			winners = ranked
		}

		awards, err := pot_manager.Distribute(Pot{Size: pot.Size, EligiblePlayers: eligible}, winners, order)
		if err != nil {
			return nil, fmt.Errorf("table: distribute pot: %w", err)
		}

		result := PotResult{Pot: pot, Winners: make([]Winner, 0, len(awards))}
		for _, a := range awards {
			w := Winner{SeatID: a.SeatID, Amount: a.Amount}
			if contested {
				hc := *h.holeCards[a.SeatID]
				w.HoleCards = &hc
				if desc, err := describer.Describe(append(hc.Cards(), h.communityCards...)); err == nil {
					w.Description = desc
				}
			}
			result.Winners = append(result.Winners, w)
		}
		results = append(results, result)
	}

	return results, nil
}

// rankPot returns the best ranked seats among eligible.
func (t *Table) rankPot(ranker evaluator.HandRanker, eligible []int) ([]int, error) {
	h := t.hand
	hands := make([]evaluator.SeatHand, 0, len(eligible))
	for _, seatID := range eligible {
		hands = append(hands, evaluator.SeatHand{
			SeatID:    seatID,
			HoleCards: *h.holeCards[seatID],
		})
	}

	ranking, err := ranker.RankHands(h.communityCards.Clone(), hands)
	if err != nil {
		return nil, fmt.Errorf("table: rank hands: %w", err)
	}

	for _, group := range ranking {
		winners := funk.FilterInt(group, func(seatID int) bool {
			return funk.ContainsInt(eligible, seatID)
		})
		if len(winners) > 0 {
			return funk.UniqInt(winners), nil
		}
	}

	return nil, ErrInvalidRanking
}
