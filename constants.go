package holdemtable

const (
	// General
	UnsetValue = -1

	// NumSeats is the capacity of every table.
	NumSeats = 9
)
