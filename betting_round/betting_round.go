package betting_round

import (
	"errors"

	"github.com/weedbox/holdemtable/seat_manager"
)

var (
	ErrRoundNotInProgress = errors.New("betting round: not in progress")
	ErrIllegalAction      = errors.New("betting round: illegal action")
	ErrInvalidAmount      = errors.New("betting round: invalid amount")
)

// BettingRound drives one street of betting. players is indexed by seat and
// holds nil for seats that are not contending in the hand.
type BettingRound struct {
	players     []*seat_manager.Player
	pending     []bool
	playerToAct int
	biggestBet  int64
	minRaise    int64
}

// NewBettingRound starts a round where firstToAct is the first seat asked to
// act (or the first one after it that can act). biggestBet is the round total
// every player has to match; minRaise is the smallest raise increment.
func NewBettingRound(players []*seat_manager.Player, firstToAct int, biggestBet int64, minRaise int64) *BettingRound {
	br := &BettingRound{
		players:     append([]*seat_manager.Player{}, players...),
		pending:     make([]bool, len(players)),
		playerToAct: seat_manager.UnsetSeatID,
		biggestBet:  biggestBet,
		minRaise:    minRaise,
	}

	for seatID := range br.players {
		br.pending[seatID] = br.isActive(seatID)
	}

	br.playerToAct = br.nextToAct(firstToAct - 1)
	return br
}

func (br *BettingRound) InProgress() bool {
	return br.NumContenders() > 1 && br.playerToAct != seat_manager.UnsetSeatID
}

func (br *BettingRound) PlayerToAct() int {
	if !br.InProgress() {
		return seat_manager.UnsetSeatID
	}
	return br.playerToAct
}

func (br *BettingRound) BiggestBet() int64 {
	return br.biggestBet
}

func (br *BettingRound) MinRaise() int64 {
	return br.minRaise
}

// IsContender reports seats that have not folded.
func (br *BettingRound) IsContender(seatID int) bool {
	return seatID >= 0 && seatID < len(br.players) && br.players[seatID] != nil
}

// IsActive reports contenders that still have chips behind.
func (br *BettingRound) IsActive(seatID int) bool {
	return seatID >= 0 && seatID < len(br.players) && br.isActive(seatID)
}

func (br *BettingRound) NumContenders() int {
	count := 0
	for _, p := range br.players {
		if p != nil {
			count++
		}
	}
	return count
}

func (br *BettingRound) NumActivePlayers() int {
	count := 0
	for seatID := range br.players {
		if br.isActive(seatID) {
			count++
		}
	}
	return count
}

// LegalActions of the player to act. The range is empty once the round is
// over.
func (br *BettingRound) LegalActions() ActionRange {
	if !br.InProgress() {
		return ActionRange{}
	}
	return br.legalActions(br.players[br.playerToAct])
}

// ActionTaken applies the action of the player to act. amount is the round
// total for a bet or a raise and is ignored otherwise. Nothing changes when
// an error is returned.
func (br *BettingRound) ActionTaken(action Action, amount int64) error {
	if !br.InProgress() {
		return ErrRoundNotInProgress
	}

	seatID := br.playerToAct
	p := br.players[seatID]

	legal := br.legalActions(p)
	if !legal.Actions.Contains(action) {
		return ErrIllegalAction
	}

	if action.IsAggressive() && !legal.ChipRange.Contains(amount) {
		return ErrInvalidAmount
	}

	switch action {
	case ActionFold:
		br.players[seatID] = nil
	case ActionCheck:
	case ActionCall:
		p.Bet(br.biggestBet)
	case ActionBet, ActionRaise:
		if increment := amount - br.biggestBet; increment > br.minRaise {
			br.minRaise = increment
		}
		p.Bet(amount)
		br.biggestBet = amount

		// everybody else has to answer the new bet
		for other := range br.players {
			br.pending[other] = other != seatID && br.isActive(other)
		}
	}

	br.pending[seatID] = false
	br.playerToAct = br.nextToAct(seatID)
	return nil
}
