package testcases

import (
	"fmt"

	"github.com/weedbox/holdemtable"
)

func DebugPrintHandStarted(state *holdemtable.TableState) {
	fmt.Printf("---------- hand (%d) started ----------\n", state.HandCount)
	fmt.Println("[Table ID] ", state.ID)
	fmt.Println("[Hand ID] ", state.HandID)
	fmt.Println("[Button] ", state.Button)
	for seatID := 0; seatID < state.HandPlayers.Len(); seatID++ {
		ps, ok := state.HandPlayers.Get(seatID)
		if !ok {
			continue
		}
		fmt.Printf("seat: %d, stack: %d, bet: %d\n", seatID, ps.Stack, ps.BetSize)
	}
	fmt.Println()
}

func DebugPrintHandSettled(state *holdemtable.TableState) {
	fmt.Printf("---------- hand (%d) settled ----------\n", state.HandCount)
	for i, result := range state.Winners {
		fmt.Printf("[Pot %d] size: %d, eligible: %v\n", i, result.Pot.Size, result.Pot.EligiblePlayers)
		for _, w := range result.Winners {
			cards := "X"
			if w.HoleCards != nil {
				cards = w.HoleCards.String()
			}
			fmt.Printf("seat: %d, won: %d, cards: %s, hand: %s\n", w.SeatID, w.Amount, cards, w.Description)
		}
	}

	fmt.Println("[Seats]")
	for seatID := 0; seatID < state.Seats.Len(); seatID++ {
		if ps, ok := state.Seats.Get(seatID); ok {
			fmt.Printf("seat: %d, stack: %d\n", seatID, ps.Stack)
		}
	}
	fmt.Println()
}

// DebugPrinter prints the hand openings and settlements of a table.
func DebugPrinter(event string, state *holdemtable.TableState) {
	switch event {
	case holdemtable.TableEvent_HandStarted:
		DebugPrintHandStarted(state)
	case holdemtable.TableEvent_Showdown:
		DebugPrintHandSettled(state)
	}
}
