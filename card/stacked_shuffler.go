package card

// StackedShuffler arranges a fresh deck so that the given cards are drawn
// first, in order. The remaining cards keep a deterministic order. It is
// meant for replays and tests.
type StackedShuffler struct {
	top CardList
}

func NewStackedShuffler(top CardList) *StackedShuffler {
	return &StackedShuffler{top: top.Clone()}
}

func (s *StackedShuffler) Shuffle(n int, swap func(i, j int)) {
	// positions[cardIndex] = position of that card in the fresh deck
	positions := make([]int, n)
	order := make([]int, n)
	for i := 0; i < n; i++ {
		positions[i] = i
		order[i] = i
	}

	for i, c := range s.top {
		if i >= n {
			return
		}
		j := positions[c.Index()]
		if j == i {
			continue
		}
		swap(i, j)
		a, b := order[i], order[j]
		order[i], order[j] = b, a
		positions[a], positions[b] = j, i
	}
}
