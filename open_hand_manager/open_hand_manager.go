package open_hand_manager

import (
	"github.com/weedbox/syncsaga"
)

func NewOpenHandManager(options OpenHandOption) OpenHandManager {
	m := newOpenHandManager(options)
	m.state = &OpenHandState{
		Timeout:      options.Timeout,
		HandCount:    0,
		Participants: make(map[int]*OpenHandParticipant),
	}
	return m
}

// NewOpenHandManagerFromState resumes a wait from a saved state. The
// participants already ready stay ready.
func NewOpenHandManagerFromState(state OpenHandState, options OpenHandOption) OpenHandManager {
	m := newOpenHandManager(options)
	m.state = &OpenHandState{
		Timeout:      options.Timeout,
		HandCount:    state.HandCount,
		Participants: make(map[int]*OpenHandParticipant),
	}

	m.mu.Lock()
	m.readyGroupResetParticipants()
	ready := make([]int, 0)
	for seatID, participant := range state.Participants {
		m.readyGroupAddParticipant(seatID, false)
		if participant.IsReady {
			ready = append(ready, seatID)
		}
	}
	m.mu.Unlock()

	m.rg.OnCompleted(func(rg *syncsaga.ReadyGroup) {
		m.readyGroupOnCompleted()
	})
	m.rg.Start()

	for _, seatID := range ready {
		_ = m.Ready(seatID)
	}

	return m
}

func newOpenHandManager(options OpenHandOption) *openHandManager {
	onOpenHandReady := options.OnOpenHandReady
	if onOpenHandReady == nil {
		onOpenHandReady = func(OpenHandState) {}
	}

	return &openHandManager{
		onOpenHandReady: onOpenHandReady,
		rg: syncsaga.NewReadyGroup(syncsaga.WithTimeout(options.Timeout, func(rg *syncsaga.ReadyGroup) {
			// Auto Ready By Default
			for idx, isReady := range rg.GetParticipantStates() {
				if !isReady {
					rg.Ready(idx)
				}
			}
		})),
	}
}

func (m *openHandManager) Ready(seatID int) error {
	return m.readyGroupReady(seatID)
}

// Setup starts waiting for the given seats before hand number handCount.
func (m *openHandManager) Setup(handCount int, seatIDs []int) {
	m.rg.Stop()

	m.mu.Lock()
	m.state.HandCount = handCount
	m.readyGroupResetParticipants()
	for _, seatID := range seatIDs {
		m.readyGroupAddParticipant(seatID, false)
	}
	m.mu.Unlock()

	m.rg.OnCompleted(func(rg *syncsaga.ReadyGroup) {
		m.readyGroupOnCompleted()
	})
	m.rg.Start()
}

func (m *openHandManager) Stop() {
	m.rg.Stop()
}

func (m *openHandManager) GetState() OpenHandState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone()
}
