package seat_manager

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSeat        = errors.New("seat manager: invalid seat")
	ErrSeatAlreadyIsTaken = fmt.Errorf("%w: seat is already taken", ErrInvalidSeat)
	ErrSeatIsEmpty        = fmt.Errorf("%w: seat is empty", ErrInvalidSeat)
	ErrInvalidBuyIn       = errors.New("seat manager: invalid buy-in")
)

type SeatManager interface {
	SitDown(seatID int, buyIn int64) (*Player, error)
	StandUp(seatID int) (*Player, error)

	MaxSeat() int
	Player(seatID int) *Player
	IsOccupied(seatID int) bool
	Seats() SeatArray
	OccupiedSeatIDs() []int
	SeatIDsWithChips() []int
	FirstSeatIDWithChips() int
	NextSeatIDWithChips(startSeatID int) int
}

// SeatArray is a snapshot of every seat. Players[i] holds meaningful values
// only when Occupied[i] is true.
type SeatArray struct {
	Players  []PlayerState `json:"players"`
	Occupied []bool        `json:"occupied"`
}

func NewSeatArray(size int) SeatArray {
	return SeatArray{
		Players:  make([]PlayerState, size),
		Occupied: make([]bool, size),
	}
}

func (sa SeatArray) Len() int {
	return len(sa.Occupied)
}

func (sa SeatArray) Get(seatID int) (PlayerState, bool) {
	if seatID < 0 || seatID >= len(sa.Occupied) || !sa.Occupied[seatID] {
		return PlayerState{}, false
	}
	return sa.Players[seatID], true
}

func (sa SeatArray) Count() int {
	count := 0
	for _, occupied := range sa.Occupied {
		if occupied {
			count++
		}
	}
	return count
}

func NewSeatManager(maxSeats int) SeatManager {
	return &seatManager{
		maxSeat: maxSeats,
		seats:   make([]*Player, maxSeats),
	}
}
