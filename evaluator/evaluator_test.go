package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/weedbox/holdemtable/card"
)

func holeCards(s string) card.HoleCards {
	cards := card.MustParseCards(s)
	return card.HoleCards{First: cards[0], Second: cards[1]}
}

func Test_RankHands(t *testing.T) {
	board := card.MustParseCards("2c 7d 9h Js Kd")
	hands := []SeatHand{
		{SeatID: 0, HoleCards: holeCards("3c 4d")}, // king high
		{SeatID: 3, HoleCards: holeCards("Kh Ks")}, // trip kings
		{SeatID: 5, HoleCards: holeCards("Jh 5c")}, // pair of jacks
		{SeatID: 8, HoleCards: holeCards("Jc 5d")}, // pair of jacks
	}

	ranking, err := NewEvaluator().RankHands(board, hands)
	assert.NoError(t, err)
	assert.Equal(t, [][]int{{3}, {5, 8}, {0}}, ranking)
}

func Test_RankHands_BoardPlays(t *testing.T) {
	board := card.MustParseCards("Ts Js Qs Ks As")
	hands := []SeatHand{
		{SeatID: 1, HoleCards: holeCards("2c 3d")},
		{SeatID: 2, HoleCards: holeCards("4h 5h")},
	}

	ranking, err := NewEvaluator().RankHands(board, hands)
	assert.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}}, ranking)
}

func Test_Strength(t *testing.T) {
	e := NewEvaluator()

	flush, err := e.Strength(card.MustParseCards("Ah 2h 5h 9h Jh 3c 4d"))
	assert.NoError(t, err)
	pair, err := e.Strength(card.MustParseCards("Ah Ad 5h 9c Jh 3c 7d"))
	assert.NoError(t, err)
	assert.Greater(t, flush, pair)

	desc, err := e.Describe(card.MustParseCards("Ah 2h 5h 9h Jh 3c 4d"))
	assert.NoError(t, err)
	assert.NotEmpty(t, desc)

	_, err = e.Strength(card.MustParseCards("Ah 2h 5h"))
	assert.ErrorIs(t, err, ErrInvalidHandSize)

	_, err = e.RankHands(card.MustParseCards("Ah 2h 5h"), []SeatHand{{SeatID: 0, HoleCards: holeCards("Kc Kd")}})
	assert.ErrorIs(t, err, ErrInvalidHandSize)
}

func Test_HandRankerFunc(t *testing.T) {
	var ranker HandRanker = HandRankerFunc(func(communityCards card.CardList, hands []SeatHand) ([][]int, error) {
		return [][]int{{hands[len(hands)-1].SeatID}}, nil
	})

	ranking, err := ranker.RankHands(nil, []SeatHand{{SeatID: 2}, {SeatID: 6}})
	assert.NoError(t, err)
	assert.Equal(t, [][]int{{6}}, ranking)
}
