package domain

import "time"

// EnergyProfile is the persisted part of the energy state machine.
// SleepStartedAt is kept for offline recovery; the online tick does not read it.
// RegenCarry is regeneration earned but not yet credited as a whole point.
type EnergyProfile struct {
	CurrentEnergy  int        `json:"current_energy"`
	IsSleeping     bool       `json:"is_sleeping"`
	SleepStartedAt *time.Time `json:"sleep_started_at,omitempty"`
	RegenCarry     float64    `json:"regen_carry,omitempty"`
}
