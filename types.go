package holdemtable

import (
	"github.com/weedbox/holdemtable/betting_round"
	"github.com/weedbox/holdemtable/blind"
	"github.com/weedbox/holdemtable/evaluator"
	"github.com/weedbox/holdemtable/pot_manager"
	"github.com/weedbox/holdemtable/seat_manager"
)

type (
	Action      = betting_round.Action
	ActionSet   = betting_round.ActionSet
	ActionRange = betting_round.ActionRange
	ChipRange   = betting_round.ChipRange
	ForcedBets  = blind.ForcedBets
	HandRanker  = evaluator.HandRanker
	Pot         = pot_manager.Pot
	SeatArray   = seat_manager.SeatArray
	PlayerState = seat_manager.PlayerState
)

const (
	ActionFold  = betting_round.ActionFold
	ActionCheck = betting_round.ActionCheck
	ActionCall  = betting_round.ActionCall
	ActionBet   = betting_round.ActionBet
	ActionRaise = betting_round.ActionRaise
)

type RoundOfBetting int

const (
	RoundOfBetting_Preflop RoundOfBetting = iota
	RoundOfBetting_Flop
	RoundOfBetting_Turn
	RoundOfBetting_River
)

var roundNames = [...]string{"preflop", "flop", "turn", "river"}

func (r RoundOfBetting) String() string {
	if r < RoundOfBetting_Preflop || r > RoundOfBetting_River {
		return "unknown"
	}
	return roundNames[r]
}

func (r RoundOfBetting) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// CommunityCardCount is the number of community cards dealt once the round
// starts.
func (r RoundOfBetting) CommunityCardCount() int {
	switch r {
	case RoundOfBetting_Flop:
		return 3
	case RoundOfBetting_Turn:
		return 4
	case RoundOfBetting_River:
		return 5
	}
	return 0
}
