package blind

import (
	"errors"
)

var (
	ErrInvalidForcedBets = errors.New("blind: invalid forced bets")
)

type Blinds struct {
	Small int64 `json:"small"`
	Big   int64 `json:"big"`
}

type ForcedBets struct {
	Ante   int64  `json:"ante"`
	Blinds Blinds `json:"blinds"`
}

func NewForcedBets(ante, small, big int64) ForcedBets {
	return ForcedBets{
		Ante: ante,
		Blinds: Blinds{
			Small: small,
			Big:   big,
		},
	}
}

// Validate requires every amount to be non-negative and at least one of them
// to be positive.
func (fb ForcedBets) Validate() error {
	if fb.Ante < 0 || fb.Blinds.Small < 0 || fb.Blinds.Big < 0 {
		return ErrInvalidForcedBets
	}

	if fb.Ante == 0 && fb.Blinds.Small == 0 && fb.Blinds.Big == 0 {
		return ErrInvalidForcedBets
	}

	return nil
}

// MinBet is the smallest opening bet and the initial raise increment of
// every betting round.
func (fb ForcedBets) MinBet() int64 {
	if fb.Blinds.Big > 0 {
		return fb.Blinds.Big
	}
	return 1
}
