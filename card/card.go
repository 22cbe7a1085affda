package card

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidRank = errors.New("card: invalid rank")
	ErrInvalidSuit = errors.New("card: invalid suit")
	ErrInvalidCard = errors.New("card: invalid card")
)

type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankSymbols = "23456789TJQKA"

func (r Rank) IsValid() bool {
	return r <= Ace
}

func (r Rank) String() string {
	if !r.IsValid() {
		return "?"
	}
	return string(rankSymbols[r])
}

func (r Rank) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, ErrInvalidRank
	}
	return []byte(r.String()), nil
}

func (r *Rank) UnmarshalText(text []byte) error {
	rank, err := ParseRank(string(text))
	if err != nil {
		return err
	}
	*r = rank
	return nil
}

func ParseRank(s string) (Rank, error) {
	if s == "10" {
		return Ten, nil
	}
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRank, s)
	}
	idx := strings.IndexByte(rankSymbols, strings.ToUpper(s)[0])
	if idx < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRank, s)
	}
	return Rank(idx), nil
}

type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var suitNames = [...]string{"clubs", "diamonds", "hearts", "spades"}

func (s Suit) IsValid() bool {
	return s <= Spades
}

func (s Suit) String() string {
	if !s.IsValid() {
		return "?"
	}
	return suitNames[s]
}

// Letter returns the one-letter form used in card strings (c, d, h, s).
func (s Suit) Letter() string {
	if !s.IsValid() {
		return "?"
	}
	return suitNames[s][:1]
}

func (s Suit) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, ErrInvalidSuit
	}
	return []byte(s.String()), nil
}

func (s *Suit) UnmarshalText(text []byte) error {
	suit, err := ParseSuit(string(text))
	if err != nil {
		return err
	}
	*s = suit
	return nil
}

// ParseSuit accepts either the full suit name or its letter.
func ParseSuit(s string) (Suit, error) {
	lower := strings.ToLower(s)
	for idx, name := range suitNames {
		if lower == name || lower == name[:1] {
			return Suit(idx), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSuit, s)
}

type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

func (c Card) IsValid() bool {
	return c.Rank.IsValid() && c.Suit.IsValid()
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.Letter()
}

// Index maps the card to 0..51, suit-major.
func (c Card) Index() int {
	return int(c.Suit)*13 + int(c.Rank)
}

// ParseCard parses strings such as "Ah", "Td" or "10s".
func ParseCard(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rank, err := ParseRank(s[:len(s)-1])
	if err != nil {
		return Card{}, err
	}

	suit, err := ParseSuit(s[len(s)-1:])
	if err != nil {
		return Card{}, err
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustParseCards parses a space separated card list and panics on bad input.
func MustParseCards(s string) CardList {
	fields := strings.Fields(s)
	cards := make(CardList, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			panic(err)
		}
		cards = append(cards, c)
	}
	return cards
}
