package seat_manager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_InitSeatManager(t *testing.T) {
	sm := NewSeatManager(9)

	assert.Equal(t, 9, sm.MaxSeat())
	assert.Equal(t, 0, sm.Seats().Count())
	assert.Equal(t, 9, sm.Seats().Len())
	assert.Equal(t, UnsetSeatID, sm.FirstSeatIDWithChips())
	assert.Equal(t, UnsetSeatID, sm.NextSeatIDWithChips(3))
	for seatID := 0; seatID < 9; seatID++ {
		assert.Nil(t, sm.Player(seatID))
		assert.False(t, sm.IsOccupied(seatID))
	}
}

func Test_SitDown(t *testing.T) {
	sm := NewSeatManager(9)

	p, err := sm.SitDown(2, 1000)
	assert.NoError(t, err)
	assert.Equal(t, int64(1000), p.Stack())
	assert.True(t, sm.IsOccupied(2))

	_, err = sm.SitDown(2, 500)
	assert.ErrorIs(t, err, ErrSeatAlreadyIsTaken)
	assert.ErrorIs(t, err, ErrInvalidSeat)

	_, err = sm.SitDown(9, 500)
	assert.ErrorIs(t, err, ErrInvalidSeat)

	_, err = sm.SitDown(-1, 500)
	assert.ErrorIs(t, err, ErrInvalidSeat)

	_, err = sm.SitDown(3, 0)
	assert.ErrorIs(t, err, ErrInvalidBuyIn)
	assert.False(t, sm.IsOccupied(3))

	seats := sm.Seats()
	ps, ok := seats.Get(2)
	assert.True(t, ok)
	assert.Equal(t, PlayerState{Stack: 1000}, ps)
	_, ok = seats.Get(3)
	assert.False(t, ok)

	DebugPrintSeats("Test_SitDown", sm)
}

func Test_StandUp(t *testing.T) {
	sm := NewSeatManager(9)
	_, err := sm.SitDown(4, 300)
	assert.NoError(t, err)

	p, err := sm.StandUp(4)
	assert.NoError(t, err)
	assert.Equal(t, int64(300), p.Stack())
	assert.False(t, sm.IsOccupied(4))

	_, err = sm.StandUp(4)
	assert.ErrorIs(t, err, ErrSeatIsEmpty)
	assert.ErrorIs(t, err, ErrInvalidSeat)

	_, err = sm.StandUp(12)
	assert.ErrorIs(t, err, ErrInvalidSeat)
}

func Test_SeatIDsWithChips(t *testing.T) {
	sm := NewSeatManager(9)
	for _, seatID := range []int{1, 4, 7} {
		_, err := sm.SitDown(seatID, 100)
		assert.NoError(t, err)
	}

	// seat 4 goes broke
	broke := sm.Player(4)
	broke.Bet(100)
	broke.CollectBet()
	broke.ResetHand()

	assert.Equal(t, []int{1, 4, 7}, sm.OccupiedSeatIDs())
	assert.Equal(t, []int{1, 7}, sm.SeatIDsWithChips())
	assert.Equal(t, 1, sm.FirstSeatIDWithChips())
	assert.Equal(t, 7, sm.NextSeatIDWithChips(1))
	assert.Equal(t, 1, sm.NextSeatIDWithChips(7))
	assert.Equal(t, 1, sm.NextSeatIDWithChips(UnsetSeatID))

	_, err := sm.StandUp(7)
	assert.NoError(t, err)
	// wraps around to the start seat itself
	assert.Equal(t, 1, sm.NextSeatIDWithChips(1))
}
