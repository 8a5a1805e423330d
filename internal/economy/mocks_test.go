package economy

import "github.com/stretchr/testify/mock"

// MockLedger implements Ledger for testing
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) Balance() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockLedger) Add(amount int) error {
	args := m.Called(amount)
	return args.Error(0)
}

func (m *MockLedger) Subtract(amount int) error {
	args := m.Called(amount)
	return args.Error(0)
}
