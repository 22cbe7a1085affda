package card

import "errors"

const DeckSize = 52

var (
	ErrDeckExhausted = errors.New("card: deck exhausted")
)

// Shuffler is the randomness source consumed when a deck is shuffled.
// *math/rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type Deck struct {
	cards CardList
}

// NewDeck returns the 52 cards in suit-major order.
func NewDeck() *Deck {
	cards := make(CardList, 0, DeckSize)
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return &Deck{cards: cards}
}

func (d *Deck) Shuffle(rng Shuffler) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckExhausted
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

func (d *Deck) DrawN(n int) (CardList, error) {
	if n > len(d.cards) {
		return nil, ErrDeckExhausted
	}
	cards := d.cards[:n].Clone()
	d.cards = d.cards[n:]
	return cards, nil
}

// Burn discards the top card.
func (d *Deck) Burn() error {
	_, err := d.Draw()
	return err
}
