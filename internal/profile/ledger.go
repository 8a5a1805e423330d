package profile

import (
	"fmt"

	"github.com/osse101/EmberForge_Go/internal/domain"
	"github.com/osse101/EmberForge_Go/internal/economy"
)

// profileLedger is an economy.Ledger over a profile's balance. It is only
// used while the profile's lock is held.
type profileLedger struct {
	p *domain.Profile
}

var _ economy.Ledger = (*profileLedger)(nil)

func (l *profileLedger) Balance() int {
	return l.p.Balance
}

func (l *profileLedger) Add(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	l.p.Balance += amount
	return nil
}

func (l *profileLedger) Subtract(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	l.p.Balance = economy.SubtractClamped(l.p.Balance, amount)
	return nil
}
