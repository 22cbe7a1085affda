package open_hand_manager

import (
	"errors"
	"sync"

	"github.com/weedbox/syncsaga"
)

var (
	ErrParticipantNotFound = errors.New("open_hand_manager: participant not found")
)

// OpenHandManager waits for the players of the next hand to be ready.
type OpenHandManager interface {
	Ready(seatID int) error
	Setup(handCount int, seatIDs []int)
	Stop()
	GetState() OpenHandState
}

type openHandManager struct {
	mu              sync.Mutex
	onOpenHandReady func(state OpenHandState)
	rg              *syncsaga.ReadyGroup
	state           *OpenHandState
}

type OpenHandOption struct {
	// Timeout in seconds, after which everyone left is readied
	Timeout         int
	OnOpenHandReady func(state OpenHandState)
}

type OpenHandState struct {
	Timeout      int                          `json:"timeout"`
	HandCount    int                          `json:"hand_count"`
	Participants map[int]*OpenHandParticipant `json:"participants"` // key: seat_id
}

type OpenHandParticipant struct {
	SeatID  int  `json:"seat_id"`
	IsReady bool `json:"is_ready"`
}

func (s OpenHandState) clone() OpenHandState {
	participants := make(map[int]*OpenHandParticipant, len(s.Participants))
	for seatID, p := range s.Participants {
		copied := *p
		participants[seatID] = &copied
	}
	s.Participants = participants
	return s
}
