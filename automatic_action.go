package holdemtable

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AutomaticAction is an instruction a seat registers before its turn.
type AutomaticAction uint8

const (
	AutomaticAction_Fold AutomaticAction = 1 << iota
	AutomaticAction_CheckFold
	AutomaticAction_Check
	AutomaticAction_Call
	AutomaticAction_CallAny
	AutomaticAction_AllIn
)

var automaticActionNames = map[AutomaticAction]string{
	AutomaticAction_Fold:      "fold",
	AutomaticAction_CheckFold: "check/fold",
	AutomaticAction_Check:     "check",
	AutomaticAction_Call:      "call",
	AutomaticAction_CallAny:   "call any",
	AutomaticAction_AllIn:     "all in",
}

var allAutomaticActions = []AutomaticAction{
	AutomaticAction_Fold,
	AutomaticAction_CheckFold,
	AutomaticAction_Check,
	AutomaticAction_Call,
	AutomaticAction_CallAny,
	AutomaticAction_AllIn,
}

func (aa AutomaticAction) IsValid() bool {
	_, ok := automaticActionNames[aa]
	return ok
}

func (aa AutomaticAction) String() string {
	if name, ok := automaticActionNames[aa]; ok {
		return name
	}
	return "unknown"
}

func (aa AutomaticAction) MarshalText() ([]byte, error) {
	if !aa.IsValid() {
		return nil, fmt.Errorf("table: unknown automatic action %d", aa)
	}
	return []byte(aa.String()), nil
}

func (aa *AutomaticAction) UnmarshalText(text []byte) error {
	parsed, err := ParseAutomaticAction(string(text))
	if err != nil {
		return err
	}
	*aa = parsed
	return nil
}

func ParseAutomaticAction(s string) (AutomaticAction, error) {
	for aa, name := range automaticActionNames {
		if strings.EqualFold(s, name) {
			return aa, nil
		}
	}
	return 0, fmt.Errorf("table: unknown automatic action %q", s)
}

type AutomaticActionSet uint8

func NewAutomaticActionSet(actions ...AutomaticAction) AutomaticActionSet {
	var set AutomaticActionSet
	for _, aa := range actions {
		set = set.With(aa)
	}
	return set
}

func (s AutomaticActionSet) With(aa AutomaticAction) AutomaticActionSet {
	return s | AutomaticActionSet(aa)
}

func (s AutomaticActionSet) Contains(aa AutomaticAction) bool {
	return aa.IsValid() && s&AutomaticActionSet(aa) != 0
}

func (s AutomaticActionSet) IsEmpty() bool {
	return s == 0
}

func (s AutomaticActionSet) Actions() []AutomaticAction {
	actions := make([]AutomaticAction, 0)
	for _, aa := range allAutomaticActions {
		if s.Contains(aa) {
			actions = append(actions, aa)
		}
	}
	return actions
}

func (s AutomaticActionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Actions())
}
