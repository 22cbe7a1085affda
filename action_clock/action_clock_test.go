package action_clock

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weedbox/holdemtable"
)

func newClockTable(t *testing.T, duration time.Duration) (*holdemtable.Table, *ActionClock) {
	table, err := holdemtable.NewTable(holdemtable.NewDefaultTableSetting())
	require.NoError(t, err)
	for _, seatID := range []int{0, 1, 2} {
		require.NoError(t, table.SitDown(seatID, 1000))
	}

	options := NewActionClockOptions()
	options.Duration = duration
	clock := NewActionClock(table, options)

	table.OnTableUpdated(func(event string, state *holdemtable.TableState) {
		assert.NoError(t, clock.Track(state))
	})
	return table, clock
}

func Test_ActionClock_FoldsPlayersFacingABet(t *testing.T) {
	table, clock := newClockTable(t, 20*time.Millisecond)

	var mu sync.Mutex
	expired := make([]int, 0)
	clock.OnExpire(func(seatID int) {
		mu.Lock()
		defer mu.Unlock()
		expired = append(expired, seatID)
	})

	// button 0, blinds on 1 and 2, seat 0 is first to act
	require.NoError(t, table.StartHandWithButton(rand.New(rand.NewSource(1)), 0))

	assert.Eventually(t, func() bool {
		return !table.IsBettingRoundInProgress()
	}, 3*time.Second, 5*time.Millisecond)

	// seats 0 and 1 face the big blind and fold, the big blind wins
	mu.Lock()
	assert.Equal(t, []int{0, 1}, expired)
	mu.Unlock()

	hp := table.HandPlayers()
	assert.Equal(t, 1, hp.Count())
	_, ok := hp.Get(2)
	assert.True(t, ok)
}

func Test_ActionClock_IgnoresFinishedTurns(t *testing.T) {
	table, clock := newClockTable(t, 50*time.Millisecond)
	defer clock.Stop()

	require.NoError(t, table.StartHandWithButton(rand.New(rand.NewSource(1)), 0))
	turn := table.TurnSerial()

	// the player acts in time
	require.NoError(t, table.ActionTaken(holdemtable.ActionCall, 0))
	assert.ErrorIs(t, table.ExpireTurn(0, turn), holdemtable.ErrStaleTurn)

	clock.Stop()
	time.Sleep(100 * time.Millisecond)

	// the stopped clock left seat 1 alone
	assert.Equal(t, 1, table.PlayerToAct())
	assert.True(t, table.IsBettingRoundInProgress())
}
