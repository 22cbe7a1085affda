package actor

import (
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/weedbox/holdemtable"
	"github.com/weedbox/timebank"
)

type ActionProbability struct {
	Action holdemtable.Action
	Weight float64
}

var (
	actionProbabilities = []ActionProbability{
		{Action: holdemtable.ActionCheck, Weight: 0.2},
		{Action: holdemtable.ActionCall, Weight: 0.35},
		{Action: holdemtable.ActionFold, Weight: 0.15},
		{Action: holdemtable.ActionRaise, Weight: 0.2},
		{Action: holdemtable.ActionBet, Weight: 0.1},
	}
)

type ActionTakenFunc func(seatID int, action holdemtable.Action, amount int64)

// BotRunner plays a seat with random legal actions.
type BotRunner struct {
	table         *holdemtable.Table
	seatID        int
	rng           *rand.Rand
	rngMu         sync.Mutex
	thinkingTime  time.Duration
	timebank      *timebank.TimeBank
	logger        logrus.FieldLogger
	fnMu          sync.RWMutex
	onActionTaken ActionTakenFunc
}

func NewBotRunner(table *holdemtable.Table, seatID int, rng *rand.Rand) *BotRunner {
	return &BotRunner{
		table:         table,
		seatID:        seatID,
		rng:           rng,
		timebank:      timebank.NewTimeBank(),
		logger:        logrus.StandardLogger(),
		onActionTaken: func(int, holdemtable.Action, int64) {},
	}
}

func (br *BotRunner) SeatID() int {
	return br.seatID
}

// Humanized delays every move by a random time up to maxThinkingTime.
func (br *BotRunner) Humanized(maxThinkingTime time.Duration) {
	br.thinkingTime = maxThinkingTime
}

func (br *BotRunner) OnActionTaken(fn ActionTakenFunc) {
	br.fnMu.Lock()
	defer br.fnMu.Unlock()
	br.onActionTaken = fn
}

// UpdateTableState reacts to a table event and moves when it is the bot's
// turn.
func (br *BotRunner) UpdateTableState(state *holdemtable.TableState) error {
	if !state.IsBettingRoundInProgress || state.PlayerToAct != br.seatID {
		return nil
	}

	if br.thinkingTime <= 0 {
		return br.RequestMove(state)
	}

	thinkingTime := time.Duration(br.int63n(int64(br.thinkingTime)) + 1)
	return br.timebank.NewTask(thinkingTime, func(isCancelled bool) {
		if isCancelled {
			return
		}

		go func() {
			if err := br.RequestMove(state); err != nil {
				br.logger.WithField("seat", br.seatID).WithError(err).Warn("bot move rejected")
			}
		}()
	})
}

// RequestMove picks a legal action for the turn described by state.
func (br *BotRunner) RequestMove(state *holdemtable.TableState) error {
	legal := state.LegalActions
	actions := legal.Actions.Actions()
	if len(actions) == 0 {
		return nil
	}

	action := actions[0]
	if len(actions) > 1 {
		action = br.calcAction(actions)
	}

	amount := int64(0)
	if action.IsAggressive() {
		amount = legal.ChipRange.Min
		if spread := legal.ChipRange.Max - legal.ChipRange.Min; spread > 0 {
			amount += br.int63n(spread + 1)
		}
	}

	if err := br.table.ActForTurn(br.seatID, state.TurnSerial, action, amount); err != nil {
		return err
	}

	br.fnMu.RLock()
	onActionTaken := br.onActionTaken
	br.fnMu.RUnlock()

	onActionTaken(br.seatID, action, amount)
	return nil
}

func (br *BotRunner) calcActionProbabilities(actions []holdemtable.Action) []ActionProbability {
	candidates := make([]ActionProbability, 0)
	totalWeight := 0.0
	for _, action := range actions {
		for _, p := range actionProbabilities {
			if action == p.Action {
				candidates = append(candidates, p)
				totalWeight += p.Weight
				break
			}
		}
	}

	// cumulative, scaled to 1
	weightLevel := 0.0
	for i := range candidates {
		weightLevel += candidates[i].Weight / totalWeight
		candidates[i].Weight = weightLevel
	}

	return candidates
}

func (br *BotRunner) calcAction(actions []holdemtable.Action) holdemtable.Action {
	br.rngMu.Lock()
	randomNum := br.rng.Float64()
	br.rngMu.Unlock()

	for _, p := range br.calcActionProbabilities(actions) {
		if randomNum < p.Weight {
			return p.Action
		}
	}

	return actions[len(actions)-1]
}

func (br *BotRunner) int63n(n int64) int64 {
	br.rngMu.Lock()
	defer br.rngMu.Unlock()
	return br.rng.Int63n(n)
}
