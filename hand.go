package holdemtable

import (
	"github.com/google/uuid"
	"github.com/thoas/go-funk"
	"github.com/weedbox/holdemtable/betting_round"
	"github.com/weedbox/holdemtable/blind"
	"github.com/weedbox/holdemtable/card"
	"github.com/weedbox/holdemtable/pot_manager"
	"github.com/weedbox/holdemtable/seat_manager"
)

type automaticActionEntry struct {
	action AutomaticAction
	// biggest bet of the round when the entry was registered
	biggestBet int64
}

// hand is the state of the hand being played. players holds the participants
// by seat and keeps them even if a folded participant stands up.
type hand struct {
	id                     string
	forcedBets             blind.ForcedBets
	button                 int
	sbSeatID               int
	bbSeatID               int
	deck                   *card.Deck
	players                []*seat_manager.Player
	folded                 []bool
	holeCards              []*card.HoleCards
	communityCards         card.CardList
	roundOfBetting         RoundOfBetting
	bettingRound           *betting_round.BettingRound
	bettingRoundsCompleted bool
	potManager             *pot_manager.PotManager
	automaticActions       []*automaticActionEntry
}

func newHand(forcedBets blind.ForcedBets, button int, participants map[int]*seat_manager.Player) *hand {
	h := &hand{
		id:               uuid.New().String(),
		forcedBets:       forcedBets,
		button:           button,
		sbSeatID:         UnsetValue,
		bbSeatID:         UnsetValue,
		deck:             card.NewDeck(),
		players:          make([]*seat_manager.Player, NumSeats),
		folded:           make([]bool, NumSeats),
		holeCards:        make([]*card.HoleCards, NumSeats),
		communityCards:   make(card.CardList, 0, 5),
		roundOfBetting:   RoundOfBetting_Preflop,
		potManager:       pot_manager.NewPotManager(),
		automaticActions: make([]*automaticActionEntry, NumSeats),
	}

	for seatID, p := range participants {
		h.players[seatID] = p
	}

	return h
}

// seatOrder lists the participants clockwise starting left of the button.
func (h *hand) seatOrder() []int {
	return funk.FilterInt(clockwiseFrom(h.button), func(seatID int) bool {
		return h.players[seatID] != nil
	})
}

func (h *hand) isParticipant(seatID int) bool {
	return isValidSeatID(seatID) && h.players[seatID] != nil
}

func (h *hand) isContender(seatID int) bool {
	return h.isParticipant(seatID) && !h.folded[seatID]
}

func (h *hand) contenders() []*seat_manager.Player {
	players := make([]*seat_manager.Player, NumSeats)
	for seatID, p := range h.players {
		if h.isContender(seatID) {
			players[seatID] = p
		}
	}
	return players
}

func (h *hand) numContenders() int {
	count := 0
	for seatID := range h.players {
		if h.isContender(seatID) {
			count++
		}
	}
	return count
}

func (h *hand) dealHoleCards() error {
	order := h.seatOrder()
	dealt := make(map[int]card.CardList)
	for i := 0; i < 2; i++ {
		for _, seatID := range order {
			c, err := h.deck.Draw()
			if err != nil {
				return err
			}
			dealt[seatID] = append(dealt[seatID], c)
		}
	}

	for seatID, cards := range dealt {
		h.holeCards[seatID] = &card.HoleCards{First: cards[0], Second: cards[1]}
	}
	return nil
}

// postForcedBets takes the antes into the pot and puts the blinds in front
// of their payers. Every post is capped at the payer's stack.
func (h *hand) postForcedBets() {
	order := h.seatOrder()

	for _, seatID := range order {
		h.players[seatID].PayAnte(h.forcedBets.Ante)
	}

	if len(order) == 2 {
		// heads-up: the button posts the small blind
		h.sbSeatID = h.button
		h.bbSeatID = order[0]
	} else {
		h.sbSeatID = order[0]
		h.bbSeatID = order[1]
	}

	h.players[h.sbSeatID].Bet(h.forcedBets.Blinds.Small)
	h.players[h.bbSeatID].Bet(h.forcedBets.Blinds.Big)
}

func (h *hand) startPreflop() {
	biggestBet := h.forcedBets.Blinds.Big
	if sb := h.players[h.sbSeatID].BetSize(); sb > biggestBet {
		biggestBet = sb
	}

	firstToAct := (h.bbSeatID + 1) % NumSeats
	h.bettingRound = betting_round.NewBettingRound(h.contenders(), firstToAct, biggestBet, h.forcedBets.MinBet())
}

func (h *hand) startNextRound() {
	firstToAct := (h.button + 1) % NumSeats
	h.bettingRound = betting_round.NewBettingRound(h.contenders(), firstToAct, 0, h.forcedBets.MinBet())
}

// dealStreet burns a card and deals the community cards of the next round.
func (h *hand) dealStreet() error {
	count := 1
	if len(h.communityCards) == 0 {
		count = 3
	}

	if err := h.deck.Burn(); err != nil {
		return err
	}

	cards, err := h.deck.DrawN(count)
	if err != nil {
		return err
	}

	h.communityCards = append(h.communityCards, cards...)
	return nil
}

func (h *hand) contributions() []pot_manager.Contribution {
	contributions := make([]pot_manager.Contribution, 0)
	for seatID, p := range h.players {
		if p == nil {
			continue
		}
		contributions = append(contributions, pot_manager.Contribution{
			SeatID: seatID,
			Amount: p.Potted(),
			Folded: h.folded[seatID],
		})
	}
	return contributions
}

func (h *hand) updatePots() {
	h.potManager.Update(h.contributions())
}

func (h *hand) collectBets() {
	for _, p := range h.players {
		if p != nil {
			p.CollectBet()
		}
	}
	h.updatePots()
}

// fold moves the chips the seat has in front of it into the pots.
func (h *hand) fold(seatID int) {
	h.folded[seatID] = true
	h.automaticActions[seatID] = nil
	h.players[seatID].CollectBet()
	h.updatePots()
}

func (h *hand) maskedHoleCards() []*card.HoleCards {
	holeCards := make([]*card.HoleCards, NumSeats)
	for seatID, hc := range h.holeCards {
		if hc != nil && h.isContender(seatID) {
			copied := *hc
			holeCards[seatID] = &copied
		}
	}
	return holeCards
}

func (h *hand) end() {
	for _, p := range h.players {
		if p != nil {
			p.ResetHand()
		}
	}
	h.potManager.Reset()
}

func isValidSeatID(seatID int) bool {
	return seatID >= 0 && seatID < NumSeats
}

// clockwiseFrom lists every seat starting left of seatID and ending with it.
func clockwiseFrom(seatID int) []int {
	seatIDs := make([]int, 0, NumSeats)
	for i := 1; i <= NumSeats; i++ {
		seatIDs = append(seatIDs, (seatID+i)%NumSeats)
	}
	return seatIDs
}
