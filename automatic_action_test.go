package holdemtable

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_AutomaticAction_Names(t *testing.T) {
	for _, aa := range allAutomaticActions {
		parsed, err := ParseAutomaticAction(aa.String())
		require.NoError(t, err)
		assert.Equal(t, aa, parsed)
	}

	_, err := ParseAutomaticAction("raise")
	assert.Error(t, err)

	set := NewAutomaticActionSet(AutomaticAction_Fold, AutomaticAction_CallAny)
	assert.True(t, set.Contains(AutomaticAction_CallAny))
	assert.False(t, set.Contains(AutomaticAction_Check))

	encoded, err := json.Marshal(set)
	require.NoError(t, err)
	assert.JSONEq(t, `["fold", "call any"]`, string(encoded))
}

func Test_AutomaticAction_Legality(t *testing.T) {
	table := newTestTable(t, map[int]int64{0: 1000, 1: 1000, 2: 1000})

	assert.False(t, table.CanSetAutomaticAction(2))
	assert.ErrorIs(t, table.SetAutomaticAction(2, AutomaticAction_Fold), ErrCannotSetAutomaticAction)

	require.NoError(t, table.StartHandWithButton(newRNG(), 0))

	// the player to act decides by hand
	assert.False(t, table.CanSetAutomaticAction(0))
	assert.ErrorIs(t, table.SetAutomaticAction(0, AutomaticAction_Fold), ErrCannotSetAutomaticAction)
	assert.ErrorIs(t, table.SetAutomaticAction(12, AutomaticAction_Fold), ErrInvalidSeat)

	// small blind faces 10 more
	assert.Equal(t, NewAutomaticActionSet(
		AutomaticAction_Fold,
		AutomaticAction_Call,
		AutomaticAction_CallAny,
		AutomaticAction_AllIn,
	), table.LegalAutomaticActions(1))

	// big blind faces nothing
	assert.Equal(t, NewAutomaticActionSet(
		AutomaticAction_Fold,
		AutomaticAction_CheckFold,
		AutomaticAction_Check,
		AutomaticAction_CallAny,
		AutomaticAction_AllIn,
	), table.LegalAutomaticActions(2))

	err := table.SetAutomaticAction(1, AutomaticAction_Check)
	assert.ErrorIs(t, err, ErrIllegalAutomaticAction)
	assert.ErrorIs(t, err, ErrIllegalAction)
	assert.Nil(t, table.AutomaticActions()[1])

	require.NoError(t, table.SetAutomaticAction(2, AutomaticAction_Check))
	require.NotNil(t, table.AutomaticActions()[2])
	assert.Equal(t, AutomaticAction_Check, *table.AutomaticActions()[2])

	require.NoError(t, table.ClearAutomaticAction(2))
	assert.Nil(t, table.AutomaticActions()[2])
}

func Test_AutomaticAction_CheckFoldChecks(t *testing.T) {
	table := newTestTable(t, map[int]int64{0: 1000, 1: 1000, 2: 1000})
	require.NoError(t, table.StartHandWithButton(newRNG(), 0))
	require.NoError(t, table.SetAutomaticAction(2, AutomaticAction_CheckFold))

	require.NoError(t, table.ActionTaken(ActionCall, 0))
	require.NoError(t, table.ActionTaken(ActionCall, 0))

	// the big blind checked by itself and the round is over
	assert.False(t, table.IsBettingRoundInProgress())
	assert.Equal(t, 3, table.HandPlayers().Count())
	assert.Nil(t, table.AutomaticActions()[2])

	manual := newTestTable(t, map[int]int64{0: 1000, 1: 1000, 2: 1000})
	require.NoError(t, manual.StartHandWithButton(newRNG(), 0))
	require.NoError(t, manual.ActionTaken(ActionCall, 0))
	require.NoError(t, manual.ActionTaken(ActionCall, 0))
	require.NoError(t, manual.ActionTaken(ActionCheck, 0))

	assert.Equal(t, manual.Seats(), table.Seats())
	assert.Equal(t, manual.Pots(), table.Pots())
	assert.Equal(t, manual.HandPlayers(), table.HandPlayers())
}

func Test_AutomaticAction_CheckFoldFolds(t *testing.T) {
	table := newTestTable(t, map[int]int64{0: 1000, 1: 1000, 2: 1000})
	require.NoError(t, table.StartHandWithButton(newRNG(), 0))
	require.NoError(t, table.SetAutomaticAction(2, AutomaticAction_CheckFold))

	require.NoError(t, table.ActionTaken(ActionRaise, 60))

	// facing the raise the registration turned into a fold
	require.NotNil(t, table.AutomaticActions()[2])
	assert.Equal(t, AutomaticAction_Fold, *table.AutomaticActions()[2])

	require.NoError(t, table.ActionTaken(ActionFold, 0))
	assert.False(t, table.IsBettingRoundInProgress())
	assert.Equal(t, 1, table.HandPlayers().Count())
	assert.Nil(t, table.AutomaticActions()[2])

	manual := newTestTable(t, map[int]int64{0: 1000, 1: 1000, 2: 1000})
	require.NoError(t, manual.StartHandWithButton(newRNG(), 0))
	require.NoError(t, manual.ActionTaken(ActionRaise, 60))
	require.NoError(t, manual.ActionTaken(ActionFold, 0))
	require.NoError(t, manual.ActionTaken(ActionFold, 0))

	assert.Equal(t, manual.Seats(), table.Seats())
	assert.Equal(t, manual.Pots(), table.Pots())
	assert.Equal(t, manual.HandPlayers(), table.HandPlayers())
}

func Test_AutomaticAction_CallAnyIsOneShot(t *testing.T) {
	table := newTestTable(t, map[int]int64{0: 1000, 1: 1000, 2: 1000})
	require.NoError(t, table.StartHandWithButton(newRNG(), 0))
	require.NoError(t, table.SetAutomaticAction(2, AutomaticAction_CallAny))

	require.NoError(t, table.ActionTaken(ActionRaise, 100))
	require.NoError(t, table.ActionTaken(ActionFold, 0))

	// the big blind called the raise and its registration is spent
	assert.False(t, table.IsBettingRoundInProgress())
	assert.Nil(t, table.AutomaticActions()[2])
	ps, _ := table.Seats().Get(2)
	assert.Equal(t, int64(100), ps.BetSize)

	require.NoError(t, table.EndBettingRound())
	assert.Equal(t, RoundOfBetting_Flop, table.RoundOfBetting())

	// a second bet waits for a decision
	require.NoError(t, table.ActionTaken(ActionBet, 50))
	require.NoError(t, table.ActionTaken(ActionRaise, 200))
	assert.Equal(t, 2, table.PlayerToAct())
	assert.Equal(t, int64(3000), chipsOnTable(table))
}

func Test_AutomaticAction_CallDroppedWhenBetChanges(t *testing.T) {
	table := newTestTable(t, map[int]int64{0: 1000, 1: 1000, 2: 1000})
	require.NoError(t, table.StartHandWithButton(newRNG(), 0))
	require.NoError(t, table.SetAutomaticAction(1, AutomaticAction_Call))

	require.NoError(t, table.ActionTaken(ActionRaise, 60))

	assert.Equal(t, 1, table.PlayerToAct())
	assert.Nil(t, table.AutomaticActions()[1])
}

func Test_AutomaticAction_CallAnyTurnsIntoCall(t *testing.T) {
	table := newTestTable(t, map[int]int64{0: 1000, 1: 1000, 2: 300})
	require.NoError(t, table.StartHandWithButton(newRNG(), 0))
	require.NoError(t, table.SetAutomaticAction(2, AutomaticAction_CallAny))

	// calling 500 puts the big blind all-in
	require.NoError(t, table.ActionTaken(ActionRaise, 500))
	require.NotNil(t, table.AutomaticActions()[2])
	assert.Equal(t, AutomaticAction_Call, *table.AutomaticActions()[2])

	require.NoError(t, table.ActionTaken(ActionFold, 0))
	ps, _ := table.Seats().Get(2)
	assert.Equal(t, PlayerState{Stack: 0, BetSize: 300, TotalChips: 300}, ps)
}

func Test_AutomaticAction_AllIn(t *testing.T) {
	table := newTestTable(t, map[int]int64{0: 1000, 1: 1000, 2: 1000})
	require.NoError(t, table.StartHandWithButton(newRNG(), 0))
	require.NoError(t, table.SetAutomaticAction(1, AutomaticAction_AllIn))

	require.NoError(t, table.ActionTaken(ActionCall, 0))

	ps, _ := table.Seats().Get(1)
	assert.Equal(t, PlayerState{Stack: 0, BetSize: 1000, TotalChips: 1000}, ps)
	assert.Equal(t, 2, table.PlayerToAct())
}

func Test_AutomaticAction_ChecksRoundDown(t *testing.T) {
	table := newTestTable(t, map[int]int64{0: 1000, 1: 1000, 2: 1000})
	require.NoError(t, table.StartHandWithButton(newRNG(), 0))
	require.NoError(t, table.ActionTaken(ActionCall, 0))
	require.NoError(t, table.ActionTaken(ActionCall, 0))
	require.NoError(t, table.ActionTaken(ActionCheck, 0))

	assert.ErrorIs(t, table.SetAutomaticAction(1, AutomaticAction_Check), ErrCannotSetAutomaticAction)

	require.NoError(t, table.EndBettingRound())
	require.NoError(t, table.SetAutomaticAction(2, AutomaticAction_Check))
	require.NoError(t, table.SetAutomaticAction(0, AutomaticAction_Check))

	// seat 1 checks, then the registrations check the round down
	require.NoError(t, table.ActionTaken(ActionCheck, 0))
	assert.False(t, table.IsBettingRoundInProgress())
	require.NoError(t, table.EndBettingRound())
	assert.Equal(t, RoundOfBetting_Turn, table.RoundOfBetting())
}
