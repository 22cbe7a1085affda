package testcases

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/weedbox/holdemtable"
	"github.com/weedbox/holdemtable/blind"
	"github.com/weedbox/holdemtable/card"
)

// Decider picks the move of the player to act.
type Decider func(state *holdemtable.TableState) (holdemtable.Action, int64)

func NewDefaultTableSetting() holdemtable.TableSetting {
	return holdemtable.TableSetting{
		TableID:    "table-testcase",
		ForcedBets: blind.NewForcedBets(0, 10, 20),
	}
}

func NewTable(t *testing.T, stacks map[int]int64) *holdemtable.Table {
	table, err := holdemtable.NewTable(NewDefaultTableSetting())
	require.NoError(t, err, "create table failed")

	for seatID, stack := range stacks {
		require.NoError(t, table.SitDown(seatID, stack), "seat %d sit down error", seatID)
	}
	return table
}

func NewRNG() card.Shuffler {
	return rand.New(rand.NewSource(7))
}

// PlayHand drives the running hand to the end, ranking with ranker (nil for
// the table's ranker).
func PlayHand(t *testing.T, table *holdemtable.Table, decide Decider, ranker holdemtable.HandRanker) {
	for table.IsHandInProgress() {
		switch {
		case table.IsBettingRoundInProgress():
			state := table.State()
			action, amount := decide(state)
			require.NoError(t, table.ActionTaken(action, amount), "seat %d %s %d error", state.PlayerToAct, action, amount)
		case table.AreBettingRoundsCompleted():
			require.NoError(t, table.Showdown(ranker), "showdown error")
		default:
			require.NoError(t, table.EndBettingRound(), "end betting round error")
		}
	}
}

// CheckOrCall keeps every player in the hand without raising.
func CheckOrCall(state *holdemtable.TableState) (holdemtable.Action, int64) {
	if state.LegalActions.Actions.Contains(holdemtable.ActionCall) {
		return holdemtable.ActionCall, 0
	}
	return holdemtable.ActionCheck, 0
}

// FoldOrCheck gives up whenever a bet has to be matched.
func FoldOrCheck(state *holdemtable.TableState) (holdemtable.Action, int64) {
	if state.LegalActions.Actions.Contains(holdemtable.ActionCheck) {
		return holdemtable.ActionCheck, 0
	}
	return holdemtable.ActionFold, 0
}

func TotalChips(table *holdemtable.Table) int64 {
	state := table.State()

	total := int64(0)
	for seatID := 0; seatID < state.Seats.Len(); seatID++ {
		if ps, ok := state.Seats.Get(seatID); ok {
			total += ps.Stack + ps.BetSize
		}
	}
	for _, pot := range state.Pots {
		total += pot.Size
	}
	return total
}

func Stack(t *testing.T, table *holdemtable.Table, seatID int) int64 {
	ps, ok := table.Seats().Get(seatID)
	require.True(t, ok, "seat %d is empty", seatID)
	return ps.Stack
}
