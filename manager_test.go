package holdemtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Manager(t *testing.T) {
	m := NewManager()

	setting := NewDefaultTableSetting()
	setting.TableID = "table-1"
	table, err := m.CreateTable(setting)
	require.NoError(t, err)

	_, err = m.CreateTable(setting)
	assert.ErrorIs(t, err, ErrManagerTableExists)

	got, err := m.GetTable("table-1")
	require.NoError(t, err)
	assert.Same(t, table, got)

	_, err = m.GetTable("table-2")
	assert.ErrorIs(t, err, ErrManagerTableNotFound)
	assert.ErrorIs(t, m.PlayerSitDown("table-2", 0, 100), ErrManagerTableNotFound)

	require.NoError(t, m.PlayerSitDown("table-1", 0, 1000))
	require.NoError(t, m.PlayerSitDown("table-1", 1, 1000))
	require.NoError(t, m.StartHand("table-1", newRNG()))
	assert.ErrorIs(t, m.CloseTable("table-1"), ErrHandInProgress)

	// button 0 posts the small blind heads-up and acts first
	assert.ErrorIs(t, m.PlayerAct("table-1", 1, table.TurnSerial(), ActionCheck, 0), ErrStaleTurn)
	require.NoError(t, m.PlayerSetAutomaticAction("table-1", 1, AutomaticAction_Check))
	require.NoError(t, m.PlayerAct("table-1", 0, table.TurnSerial(), ActionFold, 0))

	require.NoError(t, table.EndBettingRound())
	require.NoError(t, table.Showdown(nil))

	chips, err := m.PlayerStandUp("table-1", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1010), chips)

	require.NoError(t, m.CloseTable("table-1"))
	_, err = m.GetTable("table-1")
	assert.ErrorIs(t, err, ErrManagerTableNotFound)

	m.Reset()
}
