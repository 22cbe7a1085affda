package holdemtable

import (
	"github.com/weedbox/holdemtable/blind"
)

type TableSetting struct {
	TableID    string           `json:"table_id"`
	ForcedBets blind.ForcedBets `json:"forced_bets"`
}

func NewDefaultTableSetting() TableSetting {
	return TableSetting{
		ForcedBets: blind.NewForcedBets(0, 10, 20),
	}
}
