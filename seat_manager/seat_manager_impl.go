package seat_manager

import (
	"sync"

	"github.com/thoas/go-funk"
)

type seatManager struct {
	maxSeat int
	seats   []*Player // index: seat_id (from 0 to maxSeat - 1), nil when empty
	mu      sync.RWMutex
}

func (sm *seatManager) SitDown(seatID int, buyIn int64) (*Player, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.isValidSeatID(seatID) {
		return nil, ErrInvalidSeat
	}

	if sm.seats[seatID] != nil {
		return nil, ErrSeatAlreadyIsTaken
	}

	if buyIn <= 0 {
		return nil, ErrInvalidBuyIn
	}

	p := NewPlayer(buyIn)
	sm.seats[seatID] = p
	return p, nil
}

func (sm *seatManager) StandUp(seatID int) (*Player, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.isValidSeatID(seatID) {
		return nil, ErrInvalidSeat
	}

	p := sm.seats[seatID]
	if p == nil {
		return nil, ErrSeatIsEmpty
	}

	sm.seats[seatID] = nil
	return p, nil
}

func (sm *seatManager) MaxSeat() int {
	return sm.maxSeat
}

func (sm *seatManager) Player(seatID int) *Player {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.isValidSeatID(seatID) {
		return nil
	}
	return sm.seats[seatID]
}

func (sm *seatManager) IsOccupied(seatID int) bool {
	return sm.Player(seatID) != nil
}

func (sm *seatManager) Seats() SeatArray {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	sa := NewSeatArray(sm.maxSeat)
	for seatID, p := range sm.seats {
		if p != nil {
			sa.Players[seatID] = p.State()
			sa.Occupied[seatID] = true
		}
	}
	return sa
}

func (sm *seatManager) OccupiedSeatIDs() []int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.getSeatIDsBy(func(p *Player) bool {
		return p != nil
	})
}

func (sm *seatManager) SeatIDsWithChips() []int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.getSeatIDsBy(hasChips)
}

func (sm *seatManager) FirstSeatIDWithChips() int {
	seatIDs := sm.SeatIDsWithChips()
	if len(seatIDs) == 0 {
		return UnsetSeatID
	}
	return seatIDs[0]
}

func (sm *seatManager) NextSeatIDWithChips(startSeatID int) int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.nextSeatIDBy(startSeatID, hasChips)
}

func (sm *seatManager) allSeatIDs() []int {
	seatIDs := make([]int, sm.maxSeat)
	for i := range seatIDs {
		seatIDs[i] = i
	}
	return seatIDs
}

func (sm *seatManager) getSeatIDsBy(matcher func(p *Player) bool) []int {
	return funk.Filter(sm.allSeatIDs(), func(seatID int) bool {
		return matcher(sm.seats[seatID])
	}).([]int)
}
