package economy

import (
	"fmt"
	"sync"

	"github.com/osse101/EmberForge_Go/internal/domain"
)

// Ledger is a non-negative integer currency balance
type Ledger interface {
	Balance() int
	// Add credits amount; negative amounts are rejected
	Add(amount int) error
	// Subtract debits amount, clamping the balance at zero
	Subtract(amount int) error
}

// MemoryLedger is a Ledger held in memory
type MemoryLedger struct {
	mu      sync.Mutex
	balance int
}

// NewMemoryLedger creates a ledger with an opening balance (negative opens at 0)
func NewMemoryLedger(opening int) *MemoryLedger {
	if opening < 0 {
		opening = 0
	}
	return &MemoryLedger{balance: opening}
}

func (l *MemoryLedger) Balance() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

func (l *MemoryLedger) Add(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balance += amount
	return nil
}

func (l *MemoryLedger) Subtract(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balance = SubtractClamped(l.balance, amount)
	return nil
}

// SubtractClamped returns balance-amount, floored at zero
func SubtractClamped(balance, amount int) int {
	if amount >= balance {
		return 0
	}
	return balance - amount
}
