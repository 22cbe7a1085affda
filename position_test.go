package holdemtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Positions(t *testing.T) {
	table := newTestTable(t, map[int]int64{0: 1000, 2: 1000, 5: 1000, 8: 1000})
	assert.Nil(t, table.Positions())

	require.NoError(t, table.StartHandWithButton(newRNG(), 5))

	positions := table.Positions()
	require.Len(t, positions, NumSeats)
	assert.Equal(t, []string{Position_Dealer}, positions[5])
	assert.Equal(t, []string{Position_SB}, positions[8])
	assert.Equal(t, []string{Position_BB}, positions[0])
	assert.Equal(t, []string{Position_UG}, positions[2])
	assert.Nil(t, positions[1])
	assert.Equal(t, positions, table.State().Positions)
}

func Test_Positions_HeadsUp(t *testing.T) {
	table := newTestTable(t, map[int]int64{3: 1000, 6: 1000})
	require.NoError(t, table.StartHandWithButton(newRNG(), 6))

	positions := table.Positions()
	assert.Equal(t, []string{Position_Dealer, Position_SB}, positions[6])
	assert.Equal(t, []string{Position_BB}, positions[3])
}

func Test_RotateIntArray(t *testing.T) {
	assert.Equal(t, []int{2, 3, 4, 0, 1}, rotateIntArray([]int{0, 1, 2, 3, 4}, 2))
	assert.Equal(t, []int{0, 1}, rotateIntArray([]int{0, 1}, 2))
	assert.Empty(t, rotateIntArray(nil, 0))
}
