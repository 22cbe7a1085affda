package holdemtable

import (
	"github.com/sirupsen/logrus"
)

const (
	TableEvent_ForcedBetsUpdated    = "ForcedBetsUpdated"
	TableEvent_SitDown              = "SitDown"
	TableEvent_StandUp              = "StandUp"
	TableEvent_HandStarted          = "HandStarted"
	TableEvent_ActionTaken          = "ActionTaken"
	TableEvent_AutomaticActionTaken = "AutomaticActionTaken"
	TableEvent_AutomaticActionSet   = "AutomaticActionSet"
	TableEvent_TurnExpired          = "TurnExpired"
	TableEvent_BettingRoundEnded    = "BettingRoundEnded"
	TableEvent_Showdown             = "Showdown"
)

type tableEvent struct {
	name  string
	state *TableState
	err   error
}

func (t *Table) OnTableUpdated(fn func(event string, state *TableState)) {
	if fn == nil {
		fn = func(string, *TableState) {}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.onTableUpdated = fn
}

func (t *Table) OnTableErrorUpdated(fn func(event string, err error)) {
	if fn == nil {
		fn = func(string, error) {}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.onTableErrorUpdated = fn
}

func (t *Table) eventLogger(eventName string, seatID int) logrus.FieldLogger {
	fields := logrus.Fields{
		"table_id": t.id,
		"event":    eventName,
		"serial":   t.updateSerial,
	}
	if t.hand != nil {
		fields["hand_id"] = t.hand.id
	}
	if seatID != UnsetValue {
		fields["seat"] = seatID
	}
	return t.logger.WithFields(fields)
}

// emitEvent queues a snapshot; it is delivered once the table is unlocked.
func (t *Table) emitEvent(eventName string, seatID int) {
	t.updateSerial++
	t.eventLogger(eventName, seatID).Debug("emit event")
	t.events = append(t.events, tableEvent{name: eventName, state: t.state()})
}

func (t *Table) emitErrorEvent(eventName string, seatID int, err error) {
	t.eventLogger(eventName, seatID).WithError(err).Debug("emit error event")
	t.events = append(t.events, tableEvent{name: eventName, err: err})
}

func (t *Table) flushEvents() {
	t.mu.Lock()
	events := t.events
	t.events = nil
	onTableUpdated := t.onTableUpdated
	onTableErrorUpdated := t.onTableErrorUpdated
	t.mu.Unlock()

	for _, e := range events {
		if e.err != nil {
			onTableErrorUpdated(e.name, e.err)
			continue
		}
		onTableUpdated(e.name, e.state)
	}
}
