package card

import "strings"

type CardList []Card

func (cl CardList) String() string {
	parts := make([]string, 0, len(cl))
	for _, c := range cl {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}

func (cl CardList) Contains(target Card) bool {
	for _, c := range cl {
		if c == target {
			return true
		}
	}
	return false
}

func (cl CardList) Clone() CardList {
	if cl == nil {
		return nil
	}
	return append(CardList(nil), cl...)
}

// HoleCards are the two private cards of a seat.
type HoleCards struct {
	First  Card `json:"first"`
	Second Card `json:"second"`
}

func (hc HoleCards) Cards() CardList {
	return CardList{hc.First, hc.Second}
}

func (hc HoleCards) String() string {
	return hc.First.String() + " " + hc.Second.String()
}
