package evaluator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/paulhankin/poker"
	"github.com/weedbox/holdemtable/card"
)

var (
	ErrInvalidHandSize = errors.New("evaluator: a hand needs exactly 7 cards")
	ErrInvalidCard     = errors.New("evaluator: invalid card")
)

type SeatHand struct {
	SeatID    int            `json:"seat_id"`
	HoleCards card.HoleCards `json:"hole_cards"`
}

// HandRanker orders the hands of one pot. The result lists groups of seat IDs,
// best group first; seats in the same group tie.
type HandRanker interface {
	RankHands(communityCards card.CardList, hands []SeatHand) ([][]int, error)
}

type HandRankerFunc func(communityCards card.CardList, hands []SeatHand) ([][]int, error)

func (f HandRankerFunc) RankHands(communityCards card.CardList, hands []SeatHand) ([][]int, error) {
	return f(communityCards, hands)
}

// Evaluator ranks seven-card hold'em hands.
type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Strength scores hole cards plus five community cards. Higher is better.
func (e *Evaluator) Strength(cards card.CardList) (int16, error) {
	hand, err := toPokerHand(cards)
	if err != nil {
		return 0, err
	}
	return poker.Eval7(&hand), nil
}

// Describe names the best five-card hand, for example "ace-high flush".
func (e *Evaluator) Describe(cards card.CardList) (string, error) {
	hand, err := toPokerHand(cards)
	if err != nil {
		return "", err
	}
	return poker.Describe(hand[:])
}

func (e *Evaluator) RankHands(communityCards card.CardList, hands []SeatHand) ([][]int, error) {
	type scored struct {
		seatID int
		score  int16
	}

	scores := make([]scored, 0, len(hands))
	for _, h := range hands {
		cards := append(h.HoleCards.Cards(), communityCards...)
		score, err := e.Strength(cards)
		if err != nil {
			return nil, fmt.Errorf("seat %d: %w", h.SeatID, err)
		}
		scores = append(scores, scored{seatID: h.SeatID, score: score})
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

func toPokerHand(cards card.CardList) ([7]poker.Card, error) {
	var hand [7]poker.Card
	if len(cards) != len(hand) {
		return hand, ErrInvalidHandSize
	}

	for i, c := range cards {
		pc, err := toPokerCard(c)
		if err != nil {
			return hand, err
		}
		hand[i] = pc
	}

	return hand, nil
}

var pokerSuits = map[card.Suit]poker.Suit{
	card.Clubs:    poker.Club,
	card.Diamonds: poker.Diamond,
	card.Hearts:   poker.Heart,
	card.Spades:   poker.Spade,
}

func toPokerCard(c card.Card) (poker.Card, error) {
	var pc poker.Card

	suit, ok := pokerSuits[c.Suit]
	if !ok || !c.Rank.IsValid() {
		return pc, fmt.Errorf("%w: %v", ErrInvalidCard, c)
	}

	// poker ranks run from 1 (ace) to 13 (king)
	rank := poker.Rank(int(c.Rank) + 2)
	if c.Rank == card.Ace {
		rank = poker.Rank(1)
	}

	pc, err := poker.MakeCard(suit, rank)
	if err != nil {
		return pc, fmt.Errorf("%w: %v", ErrInvalidCard, err)
	}
	return pc, nil
}
