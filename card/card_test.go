package card

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseCard(t *testing.T) {
	c, err := ParseCard("Ah")
	assert.Nil(t, err)
	assert.Equal(t, Ace, c.Rank)
	assert.Equal(t, Hearts, c.Suit)
	assert.Equal(t, "Ah", c.String())

	c, err = ParseCard("10s")
	assert.Nil(t, err)
	assert.Equal(t, NewCard(Ten, Spades), c)
	assert.Equal(t, "Ts", c.String())

	_, err = ParseCard("1h")
	assert.ErrorIs(t, err, ErrInvalidRank)

	_, err = ParseCard("Ax")
	assert.ErrorIs(t, err, ErrInvalidSuit)

	_, err = ParseCard("A")
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func Test_RankAndSuitNames(t *testing.T) {
	expected := []string{"2", "3", "4", "5", "6", "7", "8", "9", "T", "J", "Q", "K", "A"}
	for rank := Two; rank <= Ace; rank++ {
		assert.Equal(t, expected[rank], rank.String())
	}
	assert.Equal(t, "clubs", Clubs.String())
	assert.Equal(t, "diamonds", Diamonds.String())
	assert.Equal(t, "hearts", Hearts.String())
	assert.Equal(t, "spades", Spades.String())
}

func Test_CardJSON(t *testing.T) {
	hc := HoleCards{First: NewCard(Queen, Diamonds), Second: NewCard(Two, Clubs)}

	encoded, err := json.Marshal(hc)
	assert.Nil(t, err)
	assert.JSONEq(t, `{"first":{"rank":"Q","suit":"diamonds"},"second":{"rank":"2","suit":"clubs"}}`, string(encoded))

	var decoded HoleCards
	assert.Nil(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, hc, decoded)
}

func Test_MustParseCards(t *testing.T) {
	cards := MustParseCards("Ah Kd 9c")
	assert.Equal(t, 3, len(cards))
	assert.Equal(t, "Ah Kd 9c", cards.String())
	assert.True(t, cards.Contains(NewCard(King, Diamonds)))
	assert.False(t, cards.Contains(NewCard(King, Spades)))

	assert.Panics(t, func() { MustParseCards("Ah Zz") })
}
