package seat_manager

import "fmt"

func DebugPrintSeats(msg string, sm SeatManager) {
	seats := sm.Seats()
	fmt.Printf("[%s] occupied: %d\n", msg, seats.Count())
	for i := 0; i < seats.Len(); i++ {
		ps, ok := seats.Get(i)
		if !ok {
			fmt.Printf("Seat %d is empty\n", i)
		} else {
			fmt.Printf("Seat %d is occupied. Stack: %d, BetSize: %d, TotalChips: %d\n", i, ps.Stack, ps.BetSize, ps.TotalChips)
		}
	}
}
