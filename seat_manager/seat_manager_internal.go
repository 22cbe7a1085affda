package seat_manager

func hasChips(p *Player) bool {
	return p != nil && p.Stack() > 0
}

func (sm *seatManager) isValidSeatID(seatID int) bool {
	return seatID >= 0 && seatID < sm.maxSeat
}

// nextSeatIDBy walks clockwise from startSeatID (exclusive) and may come back
// to startSeatID itself as the last candidate.
func (sm *seatManager) nextSeatIDBy(startSeatID int, matcher func(p *Player) bool) int {
	if startSeatID < 0 {
		startSeatID = sm.maxSeat - 1
	}

	for i := 1; i <= sm.maxSeat; i++ {
		seatID := (startSeatID + i) % sm.maxSeat
		if matcher(sm.seats[seatID]) {
			return seatID
		}
	}
	return UnsetSeatID
}
