package holdemtable

const (
	Position_Dealer = "dealer"
	Position_SB     = "sb"
	Position_BB     = "bb"
	Position_UG     = "ug"
	Position_UG2    = "ug2"
	Position_MP     = "mp"
	Position_MP2    = "mp2"
	Position_HJ     = "hj"
	Position_CO     = "co"
)

// Positions labels every participant of the running hand by seat. Seats out
// of the hand are nil.
func (t *Table) Positions() [][]string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.positions()
}

func (t *Table) positions() [][]string {
	if t.hand == nil {
		return nil
	}

	positionMap := make([][]string, NumSeats)

	// button first
	order := t.hand.seatOrder()
	order = rotateIntArray(order, len(order)-1)

	for i, labels := range newPositions(len(order)) {
		positionMap[order[i]] = append([]string{}, labels...)
	}
	return positionMap
}

func newPositions(playerCount int) [][]string {
	switch playerCount {
	case 9:
		return [][]string{
			{Position_Dealer},
			{Position_SB},
			{Position_BB},
			{Position_UG},
			{Position_UG2},
			{Position_MP},
			{Position_MP2},
			{Position_HJ},
			{Position_CO},
		}
	case 8:
		return [][]string{
			{Position_Dealer},
			{Position_SB},
			{Position_BB},
			{Position_UG},
			{Position_UG2},
			{Position_MP},
			{Position_HJ},
			{Position_CO},
		}
	case 7:
		return [][]string{
			{Position_Dealer},
			{Position_SB},
			{Position_BB},
			{Position_UG},
			{Position_MP},
			{Position_HJ},
			{Position_CO},
		}
	case 6:
		return [][]string{
			{Position_Dealer},
			{Position_SB},
			{Position_BB},
			{Position_UG},
			{Position_HJ},
			{Position_CO},
		}
	case 5:
		return [][]string{
			{Position_Dealer},
			{Position_SB},
			{Position_BB},
			{Position_UG},
			{Position_CO},
		}
	case 4:
		return [][]string{
			{Position_Dealer},
			{Position_SB},
			{Position_BB},
			{Position_UG},
		}
	case 3:
		return [][]string{
			{Position_Dealer},
			{Position_SB},
			{Position_BB},
		}
	case 2:
		return [][]string{
			{Position_Dealer, Position_SB},
			{Position_BB},
		}
	default:
		return make([][]string, 0)
	}
}

/*
rotateIntArray rotates source so that startIndex becomes the first element.

Example:
  - Given: []int{0, 1, 2, 3, 4}, startIndex = 2
  - Output: []int{2, 3, 4, 0, 1}
*/
func rotateIntArray(source []int, startIndex int) []int {
	if len(source) == 0 {
		return source
	}
	startIndex = startIndex % len(source)
	rotated := make([]int, 0, len(source))
	return append(append(rotated, source[startIndex:]...), source[:startIndex]...)
}
