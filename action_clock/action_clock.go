package action_clock

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/weedbox/holdemtable"
	"github.com/weedbox/timebank"
)

type ActionClockOptions struct {
	Duration time.Duration
	Logger   logrus.FieldLogger
}

func NewActionClockOptions() *ActionClockOptions {
	return &ActionClockOptions{
		Duration: 15 * time.Second,
		Logger:   logrus.StandardLogger(),
	}
}

// ActionClock gives the player to act a limited time. When it runs out the
// table checks for the player, or folds when a check is not possible.
type ActionClock struct {
	table    *holdemtable.Table
	tb       *timebank.TimeBank
	options  *ActionClockOptions
	mu       sync.Mutex
	seatID   int
	serial   int64
	stopped  bool
	onExpire func(seatID int)
}

func NewActionClock(table *holdemtable.Table, options *ActionClockOptions) *ActionClock {
	if options == nil {
		options = NewActionClockOptions()
	}
	if options.Logger == nil {
		options.Logger = logrus.StandardLogger()
	}

	return &ActionClock{
		table:    table,
		tb:       timebank.NewTimeBank(),
		options:  options,
		seatID:   holdemtable.UnsetValue,
		serial:   holdemtable.UnsetValue,
		onExpire: func(int) {},
	}
}

// OnExpire is called after the table acted for a player who ran out of time.
func (c *ActionClock) OnExpire(fn func(seatID int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onExpire = fn
}

// Track starts the clock of the turn described by state. Repeated states of
// the same turn keep the running clock.
func (c *ActionClock) Track(state *holdemtable.TableState) error {
	if !state.IsBettingRoundInProgress || state.PlayerToAct == holdemtable.UnsetValue {
		return nil
	}

	c.mu.Lock()
	if c.stopped || (c.seatID == state.PlayerToAct && c.serial == state.TurnSerial) {
		c.mu.Unlock()
		return nil
	}
	c.seatID = state.PlayerToAct
	c.serial = state.TurnSerial
	c.mu.Unlock()

	seatID, serial := state.PlayerToAct, state.TurnSerial
	return c.tb.NewTask(c.options.Duration, func(isCancelled bool) {
		if isCancelled {
			return
		}

		go c.expire(seatID, serial)
	})
}

// Stop disarms the clock for good.
func (c *ActionClock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
}

func (c *ActionClock) expire(seatID int, serial int64) {
	c.mu.Lock()
	stopped := c.stopped
	onExpire := c.onExpire
	c.mu.Unlock()

	if stopped {
		return
	}

	err := c.table.ExpireTurn(seatID, serial)
	if errors.Is(err, holdemtable.ErrStaleTurn) {
		return
	}
	if err != nil {
		c.options.Logger.WithFields(logrus.Fields{
			"table_id": c.table.ID(),
			"seat":     seatID,
		}).WithError(err).Warn("action clock failed to expire turn")
		return
	}

	onExpire(seatID)
}
