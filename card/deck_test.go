package card

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewDeck(t *testing.T) {
	d := NewDeck()
	assert.Equal(t, DeckSize, d.Len())

	seen := make(map[Card]bool)
	for d.Len() > 0 {
		c, err := d.Draw()
		assert.Nil(t, err)
		assert.True(t, c.IsValid())
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
	assert.Equal(t, DeckSize, len(seen))

	_, err := d.Draw()
	assert.ErrorIs(t, err, ErrDeckExhausted)
}

func Test_DeckShuffleIsDeterministicForSeed(t *testing.T) {
	d1 := NewDeck()
	d1.Shuffle(rand.New(rand.NewSource(42)))
	d2 := NewDeck()
	d2.Shuffle(rand.New(rand.NewSource(42)))

	c1, err := d1.DrawN(DeckSize)
	assert.Nil(t, err)
	c2, err := d2.DrawN(DeckSize)
	assert.Nil(t, err)
	assert.Equal(t, c1, c2)
	assert.NotEqual(t, NewDeck().cards, c1)
}

func Test_StackedShuffler(t *testing.T) {
	top := MustParseCards("As Ks 2c 2d Qh")
	d := NewDeck()
	d.Shuffle(NewStackedShuffler(top))

	drawn, err := d.DrawN(len(top))
	assert.Nil(t, err)
	assert.Equal(t, top, drawn)

	// the rest of the deck is still made of distinct cards
	rest, err := d.DrawN(d.Len())
	assert.Nil(t, err)
	assert.Equal(t, DeckSize-len(top), len(rest))
	seen := make(map[Card]bool)
	for _, c := range append(drawn, rest...) {
		assert.False(t, seen[c])
		seen[c] = true
	}

	_, err = d.DrawN(1)
	assert.ErrorIs(t, err, ErrDeckExhausted)
}
