package testcases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weedbox/holdemtable"
)

func TestTableGame_Preflop_Walk(t *testing.T) {
	// given conditions
	table := NewTable(t, map[int]int64{0: 15000, 1: 15000, 2: 15000})

	settled := false
	table.OnTableUpdated(func(event string, state *holdemtable.TableState) {
		DebugPrinter(event, state)

		if event == holdemtable.TableEvent_Showdown {
			settled = true
			assert.Len(t, state.Winners, 1)
			assert.Nil(t, state.Winners[0].Winners[0].HoleCards)
		}
	})

	// button 0, sb 1, bb 2
	require.NoError(t, table.StartHandWithButton(NewRNG(), 0))
	PlayHand(t, table, FoldOrCheck, nil)

	assert.True(t, settled)
	assert.Equal(t, 1, table.HandCount())
	assert.Equal(t, int64(15000), Stack(t, table, 0))
	assert.Equal(t, int64(14990), Stack(t, table, 1))
	assert.Equal(t, int64(15010), Stack(t, table, 2))
	assert.Equal(t, int64(45000), TotalChips(table))
}
