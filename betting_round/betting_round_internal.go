package betting_round

import (
	"github.com/weedbox/holdemtable/seat_manager"
)

func (br *BettingRound) isActive(seatID int) bool {
	p := br.players[seatID]
	return p != nil && p.Stack() > 0
}

func (br *BettingRound) cost(p *seat_manager.Player) int64 {
	return br.biggestBet - p.BetSize()
}

func (br *BettingRound) needsToAct(seatID int, numActive int) bool {
	if !br.isActive(seatID) {
		return false
	}

	facingCost := br.cost(br.players[seatID]) > 0

	// a lone player with chips does not bet against all-in players
	if numActive == 1 {
		return facingCost
	}

	return br.pending[seatID] || facingCost
}

// nextToAct walks clockwise from startSeatID (exclusive) to the next seat
// that owes an action.
func (br *BettingRound) nextToAct(startSeatID int) int {
	size := len(br.players)
	if size == 0 || br.NumContenders() <= 1 {
		return seat_manager.UnsetSeatID
	}

	numActive := br.NumActivePlayers()
	for i := 1; i <= size; i++ {
		seatID := ((startSeatID+i)%size + size) % size
		if br.needsToAct(seatID, numActive) {
			return seatID
		}
	}

	return seat_manager.UnsetSeatID
}

func (br *BettingRound) legalActions(p *seat_manager.Player) ActionRange {
	ar := ActionRange{
		Actions: NewActionSet(ActionFold),
	}

	available := p.Available()
	if br.cost(p) <= 0 {
		ar.Actions = ar.Actions.With(ActionCheck)
		if br.biggestBet == 0 {
			if p.Stack() > 0 {
				ar.Actions = ar.Actions.With(ActionBet)
			}
		} else if available > br.biggestBet {
			ar.Actions = ar.Actions.With(ActionRaise)
		}
	} else {
		ar.Actions = ar.Actions.With(ActionCall)
		if available > br.biggestBet {
			ar.Actions = ar.Actions.With(ActionRaise)
		}
	}

	if ar.CanBetOrRaise() {
		minAmount := br.biggestBet + br.minRaise
		if minAmount > available {
			minAmount = available
		}
		ar.ChipRange = ChipRange{
			Min: minAmount,
			Max: available,
		}
	}

	return ar
}
