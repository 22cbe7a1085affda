package holdemtable

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/weedbox/holdemtable/blind"
	"github.com/weedbox/holdemtable/card"
	"github.com/weedbox/holdemtable/evaluator"
	"github.com/weedbox/holdemtable/seat_manager"
)

// Table is a hold'em table. It is safe for concurrent use; every command is
// applied atomically or not at all.
type Table struct {
	id     string
	mu     sync.RWMutex
	logger logrus.FieldLogger
	ranker evaluator.HandRanker

	sm         seat_manager.SeatManager
	forcedBets blind.ForcedBets
	hand       *hand
	button     int
	handCount  int
	winnerList []PotResult

	// updateSerial counts events, turnSerial counts changes of the turn
	updateSerial int64
	turnSerial   int64

	events              []tableEvent
	onTableUpdated      func(event string, state *TableState)
	onTableErrorUpdated func(event string, err error)
}

func NewTable(setting TableSetting, opts ...TableOpt) (*Table, error) {
	if err := setting.ForcedBets.Validate(); err != nil {
		return nil, err
	}

	t := &Table{
		id:                  setting.TableID,
		logger:              logrus.StandardLogger(),
		ranker:              evaluator.NewEvaluator(),
		sm:                  seat_manager.NewSeatManager(NumSeats),
		forcedBets:          setting.ForcedBets,
		button:              UnsetValue,
		onTableUpdated:      func(string, *TableState) {},
		onTableErrorUpdated: func(string, error) {},
	}

	if t.id == "" {
		t.id = uuid.New().String()
	}

	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

func (t *Table) ID() string {
	return t.id
}

func (t *Table) Seats() SeatArray {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.sm.Seats()
}

func (t *Table) ForcedBets() blind.ForcedBets {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.forcedBets
}

func (t *Table) IsHandInProgress() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.hand != nil
}

func (t *Table) IsBettingRoundInProgress() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.isBettingRoundInProgress()
}

func (t *Table) AreBettingRoundsCompleted() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.areBettingRoundsCompleted()
}

// HandPlayers returns the seats of the players who have not folded in the
// running hand.
func (t *Table) HandPlayers() SeatArray {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.handPlayers()
}

// Button is the button of the running hand, or of the last one.
func (t *Table) Button() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.button
}

func (t *Table) PlayerToAct() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.playerToAct()
}

// NumActivePlayers counts the players who have neither folded nor gone
// all-in.
func (t *Table) NumActivePlayers() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.numActivePlayers()
}

func (t *Table) Pots() []Pot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.pots()
}

func (t *Table) RoundOfBetting() RoundOfBetting {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.roundOfBetting()
}

func (t *Table) CommunityCards() card.CardList {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.communityCards()
}

func (t *Table) LegalActions() ActionRange {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.legalActions()
}

func (t *Table) AutomaticActions() []*AutomaticAction {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.automaticActions()
}

func (t *Table) CanSetAutomaticAction(seatID int) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.hand != nil && t.hand.canSetAutomaticAction(seatID)
}

func (t *Table) LegalAutomaticActions(seatID int) AutomaticActionSet {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.hand == nil {
		return 0
	}
	return t.hand.legalAutomaticActions(seatID)
}

// HoleCards returns the hole cards of the players who have not folded,
// indexed by seat.
func (t *Table) HoleCards() []*card.HoleCards {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.hand == nil {
		return nil
	}
	return t.hand.maskedHoleCards()
}

func (t *Table) HandID() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.handID()
}

func (t *Table) HandCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.handCount
}

func (t *Table) UpdateSerial() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.updateSerial
}

// TurnSerial identifies the current turn for ActForTurn and ExpireTurn.
func (t *Table) TurnSerial() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.turnSerial
}

// Winners describes the last showdown.
func (t *Table) Winners() []PotResult {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.winners()
}

func (t *Table) handID() string {
	if t.hand == nil {
		return ""
	}
	return t.hand.id
}

func (t *Table) isBettingRoundInProgress() bool {
	return t.hand != nil && t.hand.isBettingRoundInProgress()
}

func (t *Table) areBettingRoundsCompleted() bool {
	return t.hand != nil && t.hand.bettingRoundsCompleted
}

func (t *Table) handPlayers() SeatArray {
	sa := seat_manager.NewSeatArray(NumSeats)
	if t.hand == nil {
		return sa
	}

	for seatID, p := range t.hand.players {
		if t.hand.isContender(seatID) {
			sa.Players[seatID] = p.State()
			sa.Occupied[seatID] = true
		}
	}
	return sa
}

func (t *Table) playerToAct() int {
	if !t.isBettingRoundInProgress() {
		return UnsetValue
	}
	return t.hand.bettingRound.PlayerToAct()
}

func (t *Table) numActivePlayers() int {
	if t.hand == nil || t.hand.bettingRound == nil {
		return 0
	}
	return t.hand.bettingRound.NumActivePlayers()
}

func (t *Table) pots() []Pot {
	if t.hand == nil {
		return nil
	}
	return t.hand.potManager.Pots()
}

func (t *Table) roundOfBetting() RoundOfBetting {
	if t.hand == nil {
		return RoundOfBetting_Preflop
	}
	return t.hand.roundOfBetting
}

func (t *Table) communityCards() card.CardList {
	if t.hand == nil {
		return nil
	}
	return t.hand.communityCards.Clone()
}

func (t *Table) legalActions() ActionRange {
	if !t.isBettingRoundInProgress() {
		return ActionRange{}
	}
	return t.hand.bettingRound.LegalActions()
}

func (t *Table) automaticActions() []*AutomaticAction {
	if t.hand == nil {
		return nil
	}
	return t.hand.automaticActionList()
}

func (t *Table) winners() []PotResult {
	if t.winnerList == nil {
		return nil
	}
	results := make([]PotResult, 0, len(t.winnerList))
	for _, r := range t.winnerList {
		results = append(results, r.clone())
	}
	return results
}
