package evaluator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/weedbox/holdemtable/card"
	"github.com/weedbox/pokerface/combination"
)

// CombinationRanker ranks hands with pokerface combination powers.
type CombinationRanker struct {
	rankings combination.PowerRankings
}

func NewCombinationRanker() *CombinationRanker {
	return &CombinationRanker{
		rankings: combination.CombinationPowerStandard,
	}
}

// Power returns the best five-card combination out of hole cards plus five
// community cards.
func (cr *CombinationRanker) Power(cards card.CardList) (*combination.PowerState, error) {
	if len(cards) != 7 {
		return nil, ErrInvalidHandSize
	}

	symbols := make([]string, 0, len(cards))
	for _, c := range cards {
		if !c.IsValid() {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCard, c)
		}
		symbols = append(symbols, toCombinationSymbol(c))
	}

	var best *combination.PowerState
	for _, cc := range combination.GetPossibleCombinations(symbols, 5) {
		ps := combination.CalculatePower(cr.rankings, cc)
		if best == nil || ps.Score > best.Score {
			best = ps
		}
	}

	return best, nil
}

func (cr *CombinationRanker) RankHands(communityCards card.CardList, hands []SeatHand) ([][]int, error) {
	type scored struct {
		seatID int
		score  uint64
	}

	scores := make([]scored, 0, len(hands))
	for _, h := range hands {
		ps, err := cr.Power(append(h.HoleCards.Cards(), communityCards...))
		if err != nil {
			return nil, fmt.Errorf("seat %d: %w", h.SeatID, err)
		}
		scores = append(scores, scored{seatID: h.SeatID, score: ps.Score})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	ranking := make([][]int, 0)
	for i, s := range scores {
		if i > 0 && s.score == scores[i-1].score {
			ranking[len(ranking)-1] = append(ranking[len(ranking)-1], s.seatID)
			continue
		}
		ranking = append(ranking, []int{s.seatID})
	}

	return ranking, nil
}

// combination cards are written suit first, for example "SA" or "HT"
func toCombinationSymbol(c card.Card) string {
	return strings.ToUpper(c.Suit.Letter()) + c.Rank.String()
}
