package energy

import "time"

// =============================================================================
// Regeneration
// =============================================================================

const (
	// FullRecovery is the sleeping time needed to go from empty to full
	FullRecovery = 4 * time.Hour
)

// =============================================================================
// Modes
// =============================================================================

// Mode is the state machine's current state
type Mode string

const (
	ModeAwake    Mode = "awake"
	ModeSleeping Mode = "sleeping"
)

// =============================================================================
// Log Messages
// =============================================================================

const (
	LogMsgEnergyHealed = "Energy out of range on restore, reset to 0 and forced awake"
)
