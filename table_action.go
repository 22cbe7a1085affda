package holdemtable

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/weedbox/holdemtable/blind"
	"github.com/weedbox/holdemtable/card"
	"github.com/weedbox/holdemtable/seat_manager"
)

// SetForcedBets applies from the next hand on.
func (t *Table) SetForcedBets(forcedBets blind.ForcedBets) error {
	t.mu.Lock()
	defer t.flushEvents()
	defer t.mu.Unlock()

	if err := forcedBets.Validate(); err != nil {
		t.emitErrorEvent(TableEvent_ForcedBetsUpdated, UnsetValue, err)
		return err
	}

	t.forcedBets = forcedBets
	t.emitEvent(TableEvent_ForcedBetsUpdated, UnsetValue)
	return nil
}

func (t *Table) SitDown(seatID int, buyIn int64) error {
	t.mu.Lock()
	defer t.flushEvents()
	defer t.mu.Unlock()

	if _, err := t.sm.SitDown(seatID, buyIn); err != nil {
		t.emitErrorEvent(TableEvent_SitDown, seatID, err)
		return err
	}

	t.emitEvent(TableEvent_SitDown, seatID)
	return nil
}

// StandUp frees the seat and returns the chips the player leaves with.
func (t *Table) StandUp(seatID int) (int64, error) {
	t.mu.Lock()
	defer t.flushEvents()
	defer t.mu.Unlock()

	if t.hand != nil && t.hand.isContender(seatID) {
		t.emitErrorEvent(TableEvent_StandUp, seatID, ErrPlayerBusy)
		return 0, ErrPlayerBusy
	}

	p, err := t.sm.StandUp(seatID)
	if err != nil {
		t.emitErrorEvent(TableEvent_StandUp, seatID, err)
		return 0, err
	}

	if t.hand != nil {
		t.hand.automaticActions[seatID] = nil
	}

	t.emitEvent(TableEvent_StandUp, seatID)
	return p.Stack(), nil
}

// StartHand deals a new hand with the button moved to the next seat.
func (t *Table) StartHand(rng card.Shuffler) error {
	return t.StartHandWithButton(rng, UnsetValue)
}

// StartHandWithButton deals a new hand with the button on the given seat.
// UnsetValue moves the button to the next seat.
func (t *Table) StartHandWithButton(rng card.Shuffler, button int) error {
	t.mu.Lock()
	defer t.flushEvents()
	defer t.mu.Unlock()

	if err := t.startHand(rng, button); err != nil {
		t.emitErrorEvent(TableEvent_HandStarted, button, err)
		return err
	}
	return nil
}

// ActionTaken applies the action of the player to act. amount is the round
// total of a bet or a raise and is ignored for other actions.
func (t *Table) ActionTaken(action Action, amount int64) error {
	t.mu.Lock()
	defer t.flushEvents()
	defer t.mu.Unlock()

	if err := t.takeAction(action, amount, TableEvent_ActionTaken); err != nil {
		t.emitErrorEvent(TableEvent_ActionTaken, t.playerToAct(), err)
		return err
	}
	return nil
}

// ActForTurn is ActionTaken for callers acting on an earlier snapshot. It
// fails with ErrStaleTurn unless seatID is still to act in turnSerial.
func (t *Table) ActForTurn(seatID int, turnSerial int64, action Action, amount int64) error {
	t.mu.Lock()
	defer t.flushEvents()
	defer t.mu.Unlock()

	if !t.isCurrentTurn(seatID, turnSerial) {
		return ErrStaleTurn
	}

	if err := t.takeAction(action, amount, TableEvent_ActionTaken); err != nil {
		t.emitErrorEvent(TableEvent_ActionTaken, seatID, err)
		return err
	}
	return nil
}

// ExpireTurn checks, or folds when checking is not possible, for the player
// to act. turnSerial must match the turn the caller timed out.
func (t *Table) ExpireTurn(seatID int, turnSerial int64) error {
	t.mu.Lock()
	defer t.flushEvents()
	defer t.mu.Unlock()

	if !t.isCurrentTurn(seatID, turnSerial) {
		return ErrStaleTurn
	}

	action := ActionFold
	if t.legalActions().Actions.Contains(ActionCheck) {
		action = ActionCheck
	}

	return t.takeAction(action, 0, TableEvent_TurnExpired)
}

func (t *Table) EndBettingRound() error {
	t.mu.Lock()
	defer t.flushEvents()
	defer t.mu.Unlock()

	if err := t.endBettingRound(); err != nil {
		t.emitErrorEvent(TableEvent_BettingRoundEnded, UnsetValue, err)
		return err
	}
	return nil
}

func (t *Table) SetAutomaticAction(seatID int, aa AutomaticAction) error {
	t.mu.Lock()
	defer t.flushEvents()
	defer t.mu.Unlock()

	if err := t.setAutomaticAction(seatID, aa); err != nil {
		t.emitErrorEvent(TableEvent_AutomaticActionSet, seatID, err)
		return err
	}

	t.emitEvent(TableEvent_AutomaticActionSet, seatID)
	return nil
}

func (t *Table) ClearAutomaticAction(seatID int) error {
	t.mu.Lock()
	defer t.flushEvents()
	defer t.mu.Unlock()

	if !isValidSeatID(seatID) {
		return ErrInvalidSeat
	}

	if t.hand == nil || t.hand.automaticActions[seatID] == nil {
		return nil
	}

	t.hand.automaticActions[seatID] = nil
	t.emitEvent(TableEvent_AutomaticActionSet, seatID)
	return nil
}

func (t *Table) startHand(rng card.Shuffler, button int) error {
	if t.hand != nil {
		return ErrHandInProgress
	}

	if rng == nil {
		return ErrInvalidShuffler
	}

	seatIDs := t.sm.SeatIDsWithChips()
	if len(seatIDs) < 2 {
		return ErrNotEnoughPlayers
	}

	if button == UnsetValue {
		button = t.sm.NextSeatIDWithChips(t.button)
	} else if !t.sm.IsOccupied(button) || t.sm.Player(button).Stack() == 0 {
		return ErrInvalidButton
	}

	participants := make(map[int]*seat_manager.Player)
	for _, seatID := range seatIDs {
		participants[seatID] = t.sm.Player(seatID)
	}

	h := newHand(t.forcedBets, button, participants)
	h.deck.Shuffle(rng)
	if err := h.dealHoleCards(); err != nil {
		return fmt.Errorf("table: deal hole cards: %w", err)
	}
	h.postForcedBets()
	h.updatePots()
	h.startPreflop()

	t.hand = h
	t.button = button
	t.handCount++
	t.turnSerial++
	t.winnerList = nil

	t.eventLogger(TableEvent_HandStarted, button).WithFields(logrus.Fields{
		"players": len(seatIDs),
		"sb":      h.sbSeatID,
		"bb":      h.bbSeatID,
	}).Info("hand started")
	t.emitEvent(TableEvent_HandStarted, button)
	return nil
}

func (t *Table) takeAction(action Action, amount int64, eventName string) error {
	if t.hand == nil {
		return ErrNoHandInProgress
	}

	if !t.isBettingRoundInProgress() {
		return ErrOutOfTurn
	}

	seatID := t.hand.bettingRound.PlayerToAct()
	if err := t.applyAction(seatID, action, amount); err != nil {
		return err
	}

	t.eventLogger(eventName, seatID).WithField("action", action.String()).WithField("amount", amount).Debug("action taken")
	t.emitEvent(eventName, seatID)

	t.applyAutomaticActions()
	return nil
}

func (t *Table) applyAction(seatID int, action Action, amount int64) error {
	if err := t.hand.bettingRound.ActionTaken(action, amount); err != nil {
		return err
	}

	if action == ActionFold {
		t.hand.fold(seatID)
	}

	t.turnSerial++
	return nil
}

// applyAutomaticActions plays the registrations of the players to act, one
// after the other.
func (t *Table) applyAutomaticActions() {
	t.hand.amendAutomaticActions()

	for {
		seatID, aa, ok := t.hand.nextAutomaticAction()
		if !ok {
			return
		}

		action, amount := t.hand.resolveAutomaticAction(aa)
		if err := t.applyAction(seatID, action, amount); err != nil {
			t.eventLogger(TableEvent_AutomaticActionTaken, seatID).WithError(err).Warn("automatic action rejected")
			return
		}

		t.eventLogger(TableEvent_AutomaticActionTaken, seatID).WithField("automatic_action", aa.String()).Debug("automatic action taken")
		t.emitEvent(TableEvent_AutomaticActionTaken, seatID)
	}
}

func (t *Table) endBettingRound() error {
	if t.hand == nil {
		return ErrNoHandInProgress
	}

	h := t.hand
	if h.bettingRoundsCompleted {
		return ErrBettingRoundsCompleted
	}

	if h.bettingRound.InProgress() {
		return ErrRoundNotComplete
	}

	h.collectBets()

	switch {
	case h.numContenders() <= 1:
		h.bettingRoundsCompleted = true
	case h.bettingRound.NumActivePlayers() <= 1:
		for len(h.communityCards) < 5 {
			if err := h.dealStreet(); err != nil {
				return fmt.Errorf("table: deal community cards: %w", err)
			}
		}
		h.roundOfBetting = RoundOfBetting_River
		h.bettingRoundsCompleted = true
	case h.roundOfBetting < RoundOfBetting_River:
		if err := h.dealStreet(); err != nil {
			return fmt.Errorf("table: deal community cards: %w", err)
		}
		h.roundOfBetting++
		h.startNextRound()
	default:
		h.bettingRoundsCompleted = true
	}

	t.turnSerial++
	t.eventLogger(TableEvent_BettingRoundEnded, UnsetValue).WithField("round", h.roundOfBetting.String()).Debug("betting round ended")
	t.emitEvent(TableEvent_BettingRoundEnded, UnsetValue)

	t.applyAutomaticActions()
	return nil
}

func (t *Table) isCurrentTurn(seatID int, turnSerial int64) bool {
	return turnSerial == t.turnSerial && t.isBettingRoundInProgress() && t.playerToAct() == seatID
}

func (t *Table) setAutomaticAction(seatID int, aa AutomaticAction) error {
	if !isValidSeatID(seatID) {
		return ErrInvalidSeat
	}

	if t.hand == nil {
		return ErrCannotSetAutomaticAction
	}

	return t.hand.setAutomaticAction(seatID, aa)
}
