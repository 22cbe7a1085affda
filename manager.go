package holdemtable

import (
	"errors"
	"sync"

	"github.com/weedbox/holdemtable/card"
)

var (
	ErrManagerTableNotFound = errors.New("manager: table not found")
	ErrManagerTableExists   = errors.New("manager: table already exists")
)

// Manager keeps the tables of a process by table ID.
type Manager interface {
	Reset()

	// Table Actions
	GetTable(tableID string) (*Table, error)
	CreateTable(setting TableSetting, opts ...TableOpt) (*Table, error)
	CloseTable(tableID string) error
	StartHand(tableID string, rng card.Shuffler) error

	// Player Table Actions
	PlayerSitDown(tableID string, seatID int, buyIn int64) error
	PlayerStandUp(tableID string, seatID int) (int64, error)

	// Player Hand Actions
	PlayerAct(tableID string, seatID int, turnSerial int64, action Action, amount int64) error
	PlayerSetAutomaticAction(tableID string, seatID int, aa AutomaticAction) error
}

type manager struct {
	tables sync.Map
}

func NewManager() Manager {
	return &manager{
		tables: sync.Map{},
	}
}

func (m *manager) Reset() {
	m.tables = sync.Map{}
}

func (m *manager) GetTable(tableID string) (*Table, error) {
	table, exist := m.tables.Load(tableID)
	if !exist {
		return nil, ErrManagerTableNotFound
	}
	return table.(*Table), nil
}

func (m *manager) CreateTable(setting TableSetting, opts ...TableOpt) (*Table, error) {
	table, err := NewTable(setting, opts...)
	if err != nil {
		return nil, err
	}

	if _, loaded := m.tables.LoadOrStore(table.ID(), table); loaded {
		return nil, ErrManagerTableExists
	}
	return table, nil
}

// CloseTable forgets a table between hands.
func (m *manager) CloseTable(tableID string) error {
	table, err := m.GetTable(tableID)
	if err != nil {
		return err
	}

	if table.IsHandInProgress() {
		return ErrHandInProgress
	}

	m.tables.Delete(tableID)
	return nil
}

func (m *manager) StartHand(tableID string, rng card.Shuffler) error {
	table, err := m.GetTable(tableID)
	if err != nil {
		return err
	}

	return table.StartHand(rng)
}

func (m *manager) PlayerSitDown(tableID string, seatID int, buyIn int64) error {
	table, err := m.GetTable(tableID)
	if err != nil {
		return err
	}

	return table.SitDown(seatID, buyIn)
}

func (m *manager) PlayerStandUp(tableID string, seatID int) (int64, error) {
	table, err := m.GetTable(tableID)
	if err != nil {
		return 0, err
	}

	return table.StandUp(seatID)
}

func (m *manager) PlayerAct(tableID string, seatID int, turnSerial int64, action Action, amount int64) error {
	table, err := m.GetTable(tableID)
	if err != nil {
		return err
	}

	return table.ActForTurn(seatID, turnSerial, action, amount)
}

func (m *manager) PlayerSetAutomaticAction(tableID string, seatID int, aa AutomaticAction) error {
	table, err := m.GetTable(tableID)
	if err != nil {
		return err
	}

	return table.SetAutomaticAction(seatID, aa)
}
