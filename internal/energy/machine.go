package energy

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/osse101/EmberForge_Go/internal/domain"
	"github.com/osse101/EmberForge_Go/internal/logger"
)

// Machine is the energy regeneration state machine. Energy is only ever
// written through setEnergy, which clamps to [domain.MinEnergy,
// domain.MaxEnergy]. A Machine is not safe for concurrent use; callers
// serialize access per profile.
type Machine struct {
	energy         int
	sleeping       bool
	sleepStartedAt *time.Time

	// carry holds regeneration not yet credited as a whole point, so many
	// short ticks add up to the same total as one long tick
	carry float64

	now func() time.Time
}

// TickResult reports what a Tick did
type TickResult struct {
	Gained int
	Woke   bool
}

// New creates an awake machine with the given energy (clamped)
func New(energy int, now func() time.Time) *Machine {
	if now == nil {
		now = time.Now
	}
	m := &Machine{now: now}
	m.setEnergy(energy)
	return m
}

// Restore rebuilds a machine from a persisted profile. A stored energy
// outside the valid range is reset to 0 and the machine forced awake; the
// second return value reports that this happened.
func Restore(ctx context.Context, p domain.EnergyProfile, now func() time.Time) (*Machine, bool) {
	m := New(p.CurrentEnergy, now)
	if p.CurrentEnergy < domain.MinEnergy || p.CurrentEnergy > domain.MaxEnergy {
		logger.FromContext(ctx).Warn(LogMsgEnergyHealed,
			"observed_energy", p.CurrentEnergy,
			"was_sleeping", p.IsSleeping)
		m.setEnergy(domain.MinEnergy)
		return m, true
	}

	if p.IsSleeping {
		m.sleeping = true
		if p.SleepStartedAt != nil {
			t := *p.SleepStartedAt
			m.sleepStartedAt = &t
		}
		if p.RegenCarry >= -0.5 && p.RegenCarry < 0.5 {
			m.carry = p.RegenCarry
		}
	}
	return m, false
}

func (m *Machine) setEnergy(v int) {
	m.energy = max(domain.MinEnergy, min(domain.MaxEnergy, v))
}

func (m *Machine) Energy() int { return m.energy }

func (m *Machine) IsSleeping() bool { return m.sleeping }

// SleepStartedAt returns a copy of the sleep start stamp, or nil when awake
func (m *Machine) SleepStartedAt() *time.Time {
	if m.sleepStartedAt == nil {
		return nil
	}
	t := *m.sleepStartedAt
	return &t
}

// Mode returns the current state
func (m *Machine) Mode() Mode {
	if m.sleeping {
		return ModeSleeping
	}
	return ModeAwake
}

// Snapshot returns the persistable form of the machine
func (m *Machine) Snapshot() domain.EnergyProfile {
	return domain.EnergyProfile{
		CurrentEnergy:  m.energy,
		IsSleeping:     m.sleeping,
		SleepStartedAt: m.SleepStartedAt(),
		RegenCarry:     m.carry,
	}
}

// StartSleep moves Awake to Sleeping and stamps the start time. It returns
// false when already sleeping.
func (m *Machine) StartSleep() bool {
	if m.sleeping {
		return false
	}
	t := m.now()
	m.sleeping = true
	m.sleepStartedAt = &t
	m.carry = 0
	return true
}

// WakeUp moves Sleeping to Awake with energy unchanged. It returns false
// when already awake.
func (m *Machine) WakeUp() bool {
	if !m.sleeping {
		return false
	}
	m.wake()
	return true
}

func (m *Machine) wake() {
	m.sleeping = false
	m.sleepStartedAt = nil
	m.carry = 0
}

// Spend removes amount from energy. Spending while sleeping wakes the
// machine first; implicitWake reports that transition, and it stands even
// when the spend itself then fails for lack of energy.
func (m *Machine) Spend(amount int) (implicitWake bool, err error) {
	if amount < 0 {
		return false, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	if m.sleeping {
		m.wake()
		implicitWake = true
	}
	if amount > m.energy {
		return implicitWake, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientEnergy, amount, m.energy)
	}
	m.setEnergy(m.energy - amount)
	return implicitWake, nil
}

// Tick credits regeneration for elapsed sleeping time at a rate of a full
// bar per FullRecovery. Reaching full energy wakes the machine in the same
// call. Tick does nothing while awake or for non-positive elapsed time.
func (m *Machine) Tick(elapsed time.Duration) TickResult {
	if !m.sleeping || elapsed <= 0 {
		return TickResult{}
	}

	m.carry += elapsed.Seconds() * float64(domain.MaxEnergy) / FullRecovery.Seconds()
	credit := int(math.Floor(m.carry + 0.5))
	m.carry -= float64(credit)

	before := m.energy
	m.setEnergy(m.energy + credit)
	result := TickResult{Gained: m.energy - before}

	if m.energy >= domain.MaxEnergy {
		m.wake()
		result.Woke = true
	}
	return result
}
