package open_hand_manager

// callers hold m.mu
func (m *openHandManager) readyGroupResetParticipants() {
	m.rg.ResetParticipants()
	m.state.Participants = map[int]*OpenHandParticipant{}
}

// callers hold m.mu
func (m *openHandManager) readyGroupAddParticipant(seatID int, isReady bool) {
	m.state.Participants[seatID] = &OpenHandParticipant{
		SeatID:  seatID,
		IsReady: isReady,
	}
	m.rg.Add(int64(seatID), isReady)
}

func (m *openHandManager) readyGroupOnCompleted() {
	m.mu.Lock()
	for _, participant := range m.state.Participants {
		participant.IsReady = true
	}
	state := m.state.clone()
	m.mu.Unlock()

	m.onOpenHandReady(state)
}

func (m *openHandManager) readyGroupReady(seatID int) error {
	m.mu.Lock()
	participant, exist := m.state.Participants[seatID]
	if !exist {
		m.mu.Unlock()
		return ErrParticipantNotFound
	}
	participant.IsReady = true
	m.mu.Unlock()

	m.rg.Ready(int64(seatID))
	return nil
}
