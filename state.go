package holdemtable

import (
	"encoding/json"

	"github.com/weedbox/holdemtable/blind"
	"github.com/weedbox/holdemtable/card"
)

// TableState is a point-in-time copy of the public table state. Hole cards
// are left out.
type TableState struct {
	ID                        string             `json:"id"`
	UpdateSerial              int64              `json:"update_serial"`
	TurnSerial                int64              `json:"turn_serial"`
	HandID                    string             `json:"hand_id"`
	HandCount                 int                `json:"hand_count"`
	ForcedBets                blind.ForcedBets   `json:"forced_bets"`
	Seats                     SeatArray          `json:"seats"`
	HandPlayers               SeatArray          `json:"hand_players"`
	Button                    int                `json:"button"`
	Positions                 [][]string         `json:"positions"`
	IsHandInProgress          bool               `json:"is_hand_in_progress"`
	IsBettingRoundInProgress  bool               `json:"is_betting_round_in_progress"`
	AreBettingRoundsCompleted bool               `json:"are_betting_rounds_completed"`
	RoundOfBetting            RoundOfBetting     `json:"round_of_betting"`
	PlayerToAct               int                `json:"player_to_act"`
	NumActivePlayers          int                `json:"num_active_players"`
	LegalActions              ActionRange        `json:"legal_actions"`
	Pots                      []Pot              `json:"pots"`
	CommunityCards            card.CardList      `json:"community_cards"`
	AutomaticActions          []*AutomaticAction `json:"automatic_actions"`
	Winners                   []PotResult        `json:"winners"`
}

// State returns a snapshot of the table.
func (t *Table) State() *TableState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state()
}

func (t *Table) GetJSON() (string, error) {
	encoded, err := json.Marshal(t.State())
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func (t *Table) state() *TableState {
	return &TableState{
		ID:                        t.id,
		UpdateSerial:              t.updateSerial,
		TurnSerial:                t.turnSerial,
		HandID:                    t.handID(),
		HandCount:                 t.handCount,
		ForcedBets:                t.forcedBets,
		Seats:                     t.sm.Seats(),
		HandPlayers:               t.handPlayers(),
		Button:                    t.button,
		Positions:                 t.positions(),
		IsHandInProgress:          t.hand != nil,
		IsBettingRoundInProgress:  t.isBettingRoundInProgress(),
		AreBettingRoundsCompleted: t.areBettingRoundsCompleted(),
		RoundOfBetting:            t.roundOfBetting(),
		PlayerToAct:               t.playerToAct(),
		NumActivePlayers:          t.numActivePlayers(),
		LegalActions:              t.legalActions(),
		Pots:                      t.pots(),
		CommunityCards:            t.communityCards(),
		AutomaticActions:          t.automaticActions(),
		Winners:                   t.winners(),
	}
}
