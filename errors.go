package holdemtable

import (
	"errors"
	"fmt"

	"github.com/weedbox/holdemtable/betting_round"
	"github.com/weedbox/holdemtable/blind"
	"github.com/weedbox/holdemtable/seat_manager"
)

var (
	ErrInvalidForcedBets = blind.ErrInvalidForcedBets

	ErrInvalidSeat  = seat_manager.ErrInvalidSeat
	ErrSeatOccupied = seat_manager.ErrSeatAlreadyIsTaken
	ErrSeatEmpty    = seat_manager.ErrSeatIsEmpty
	ErrInvalidBuyIn = seat_manager.ErrInvalidBuyIn
	ErrPlayerBusy   = errors.New("table: player is still in the hand")

	ErrNotEnoughPlayers = errors.New("table: not enough players")
	ErrInvalidButton    = errors.New("table: invalid button")
	ErrInvalidShuffler  = errors.New("table: invalid shuffler")
	ErrHandInProgress   = errors.New("table: hand in progress")
	ErrNoHandInProgress = errors.New("table: no hand in progress")
	ErrOutOfTurn        = errors.New("table: no betting round in progress")
	ErrStaleTurn        = errors.New("table: turn is over")

	ErrIllegalAction = betting_round.ErrIllegalAction
	ErrInvalidAmount = betting_round.ErrInvalidAmount

	ErrRoundNotComplete       = errors.New("table: betting round not complete")
	ErrBettingRoundsCompleted = errors.New("table: betting rounds already completed")
	ErrShowdownNotReady       = errors.New("table: showdown not ready")
	ErrInvalidRanking         = errors.New("table: hand ranking names no eligible seat")

	ErrCannotSetAutomaticAction = errors.New("table: automatic action cannot be set")
	ErrIllegalAutomaticAction   = fmt.Errorf("%w: automatic action", ErrIllegalAction)
)
