package seat_manager

// Player keeps the chips of one seated player.
//   - stack: chips not committed in the current hand
//   - betSize: chips committed in the current betting round, not yet potted
//   - totalChips: chips committed in the whole hand, potted or not
type Player struct {
	stack      int64
	betSize    int64
	totalChips int64
}

type PlayerState struct {
	Stack      int64 `json:"stack"`
	BetSize    int64 `json:"bet_size"`
	TotalChips int64 `json:"total_chips"`
}

func NewPlayer(stack int64) *Player {
	return &Player{stack: stack}
}

func (p *Player) Stack() int64 {
	return p.stack
}

func (p *Player) BetSize() int64 {
	return p.betSize
}

func (p *Player) TotalChips() int64 {
	return p.totalChips
}

// Available is the largest round total the player can reach.
func (p *Player) Available() int64 {
	return p.stack + p.betSize
}

func (p *Player) IsAllIn() bool {
	return p.stack == 0
}

// Bet raises the round total to amount, capped at Available, and returns the
// chips moved from the stack.
func (p *Player) Bet(amount int64) int64 {
	if amount > p.Available() {
		amount = p.Available()
	}
	if amount <= p.betSize {
		return 0
	}

	moved := amount - p.betSize
	p.stack -= moved
	p.betSize = amount
	p.totalChips += moved
	return moved
}

// PayAnte moves up to amount chips straight into the pot.
func (p *Player) PayAnte(amount int64) int64 {
	if amount > p.stack {
		amount = p.stack
	}
	if amount <= 0 {
		return 0
	}

	p.stack -= amount
	p.totalChips += amount
	return amount
}

// CollectBet empties the round bet. The chips stay accounted in totalChips.
func (p *Player) CollectBet() int64 {
	collected := p.betSize
	p.betSize = 0
	return collected
}

// Potted is the part of totalChips that already sits in the pots.
func (p *Player) Potted() int64 {
	return p.totalChips - p.betSize
}

func (p *Player) Win(amount int64) {
	p.stack += amount
}

func (p *Player) ResetHand() {
	p.betSize = 0
	p.totalChips = 0
}

func (p *Player) State() PlayerState {
	return PlayerState{
		Stack:      p.stack,
		BetSize:    p.betSize,
		TotalChips: p.totalChips,
	}
}
