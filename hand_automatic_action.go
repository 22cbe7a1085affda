package holdemtable

func (h *hand) isBettingRoundInProgress() bool {
	return !h.bettingRoundsCompleted && h.bettingRound != nil && h.bettingRound.InProgress()
}

func (h *hand) canSetAutomaticAction(seatID int) bool {
	if !isValidSeatID(seatID) || !h.isBettingRoundInProgress() {
		return false
	}
	return h.bettingRound.IsActive(seatID) && h.bettingRound.PlayerToAct() != seatID
}

func (h *hand) legalAutomaticActions(seatID int) AutomaticActionSet {
	if !h.canSetAutomaticAction(seatID) {
		return 0
	}

	p := h.players[seatID]
	biggestBet := h.bettingRound.BiggestBet()

	set := NewAutomaticActionSet(AutomaticAction_Fold, AutomaticAction_AllIn)
	if biggestBet-p.BetSize() <= 0 {
		set = set.With(AutomaticAction_CheckFold).With(AutomaticAction_Check)
	} else {
		set = set.With(AutomaticAction_Call)
	}

	if biggestBet < p.Available() {
		set = set.With(AutomaticAction_CallAny)
	}

	return set
}

func (h *hand) setAutomaticAction(seatID int, aa AutomaticAction) error {
	if !h.canSetAutomaticAction(seatID) {
		return ErrCannotSetAutomaticAction
	}

	if !h.legalAutomaticActions(seatID).Contains(aa) {
		return ErrIllegalAutomaticAction
	}

	h.automaticActions[seatID] = &automaticActionEntry{
		action:     aa,
		biggestBet: h.bettingRound.BiggestBet(),
	}
	return nil
}

// amendAutomaticActions adapts the registrations to the bets on the table.
//   - check/fold becomes fold once the seat faces a bet
//   - check is dropped once the seat faces a bet
//   - call is dropped once the bet it meant to call changed
//   - call any becomes call once calling means going all-in
func (h *hand) amendAutomaticActions() {
	if h.bettingRound == nil {
		return
	}

	biggestBet := h.bettingRound.BiggestBet()
	for seatID, entry := range h.automaticActions {
		if entry == nil {
			continue
		}

		if !h.bettingRound.IsActive(seatID) {
			h.automaticActions[seatID] = nil
			continue
		}

		p := h.players[seatID]
		facingCost := biggestBet-p.BetSize() > 0

		switch entry.action {
		case AutomaticAction_CheckFold:
			if facingCost {
				entry.action = AutomaticAction_Fold
			}
		case AutomaticAction_Check:
			if facingCost {
				h.automaticActions[seatID] = nil
			}
		case AutomaticAction_Call:
			if biggestBet != entry.biggestBet {
				h.automaticActions[seatID] = nil
			}
		case AutomaticAction_CallAny:
			if biggestBet >= p.Available() {
				entry.action = AutomaticAction_Call
				entry.biggestBet = biggestBet
			}
		}
	}
}

// resolveAutomaticAction turns the registration of the player to act into an
// action and an amount.
func (h *hand) resolveAutomaticAction(aa AutomaticAction) (Action, int64) {
	legal := h.bettingRound.LegalActions()

	callOrCheck := func() Action {
		if legal.Actions.Contains(ActionCall) {
			return ActionCall
		}
		return ActionCheck
	}

	switch aa {
	case AutomaticAction_CheckFold:
		if legal.Actions.Contains(ActionCheck) {
			return ActionCheck, 0
		}
		return ActionFold, 0
	case AutomaticAction_Check:
		return ActionCheck, 0
	case AutomaticAction_Call, AutomaticAction_CallAny:
		return callOrCheck(), 0
	case AutomaticAction_AllIn:
		if legal.Actions.Contains(ActionRaise) {
			return ActionRaise, legal.ChipRange.Max
		}
		if legal.Actions.Contains(ActionBet) {
			return ActionBet, legal.ChipRange.Max
		}
		return callOrCheck(), 0
	}

	return ActionFold, 0
}

// nextAutomaticAction pops the registration of the player to act, if any.
func (h *hand) nextAutomaticAction() (int, AutomaticAction, bool) {
	if !h.isBettingRoundInProgress() {
		return UnsetValue, 0, false
	}

	h.amendAutomaticActions()

	seatID := h.bettingRound.PlayerToAct()
	entry := h.automaticActions[seatID]
	if entry == nil {
		return seatID, 0, false
	}

	h.automaticActions[seatID] = nil
	return seatID, entry.action, true
}

func (h *hand) automaticActionList() []*AutomaticAction {
	actions := make([]*AutomaticAction, NumSeats)
	for seatID, entry := range h.automaticActions {
		if entry != nil {
			aa := entry.action
			actions[seatID] = &aa
		}
	}
	return actions
}
