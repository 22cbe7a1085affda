package betting_round

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Action uint8

const (
	ActionFold Action = 1 << iota
	ActionCheck
	ActionCall
	ActionBet
	ActionRaise
)

var actionNames = map[Action]string{
	ActionFold:  "fold",
	ActionCheck: "check",
	ActionCall:  "call",
	ActionBet:   "bet",
	ActionRaise: "raise",
}

var allActions = []Action{ActionFold, ActionCheck, ActionCall, ActionBet, ActionRaise}

// IsAggressive reports bets and raises, the actions that carry an amount.
func (a Action) IsAggressive() bool {
	return a == ActionBet || a == ActionRaise
}

func (a Action) IsValid() bool {
	_, ok := actionNames[a]
	return ok
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

func (a Action) MarshalText() ([]byte, error) {
	if !a.IsValid() {
		return nil, fmt.Errorf("betting round: unknown action %d", a)
	}
	return []byte(a.String()), nil
}

func (a *Action) UnmarshalText(text []byte) error {
	action, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = action
	return nil
}

func ParseAction(s string) (Action, error) {
	for action, name := range actionNames {
		if strings.EqualFold(s, name) {
			return action, nil
		}
	}
	return 0, fmt.Errorf("betting round: unknown action %q", s)
}

// ActionSet is a set of actions.
type ActionSet uint8

func NewActionSet(actions ...Action) ActionSet {
	var set ActionSet
	for _, a := range actions {
		set = set.With(a)
	}
	return set
}

func (s ActionSet) With(a Action) ActionSet {
	return s | ActionSet(a)
}

func (s ActionSet) Contains(a Action) bool {
	return a.IsValid() && s&ActionSet(a) != 0
}

func (s ActionSet) IsEmpty() bool {
	return s == 0
}

func (s ActionSet) Actions() []Action {
	actions := make([]Action, 0)
	for _, a := range allActions {
		if s.Contains(a) {
			actions = append(actions, a)
		}
	}
	return actions
}

func (s ActionSet) String() string {
	names := make([]string, 0)
	for _, a := range s.Actions() {
		names = append(names, a.String())
	}
	return "[" + strings.Join(names, " ") + "]"
}

func (s ActionSet) MarshalJSON() ([]byte, error) {
	names := make([]string, 0)
	for _, a := range s.Actions() {
		names = append(names, a.String())
	}
	return json.Marshal(names)
}

type ChipRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

func (cr ChipRange) Contains(amount int64) bool {
	return amount >= cr.Min && amount <= cr.Max
}

// ActionRange is the set of legal actions of the player to act. ChipRange
// bounds the round total of a bet or a raise and is zero when neither is
// legal.
type ActionRange struct {
	Actions   ActionSet `json:"actions"`
	ChipRange ChipRange `json:"chip_range"`
}

func (ar ActionRange) CanBetOrRaise() bool {
	return ar.Actions.Contains(ActionBet) || ar.Actions.Contains(ActionRaise)
}
