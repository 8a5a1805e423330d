package domain

// Item level bounds
const (
	MinItemLevel = 1
	MaxItemLevel = 999
)

// Energy bounds
const (
	MinEnergy = 0
	MaxEnergy = 100
)

// EmptySlot is the persisted sentinel for a slot without an instance
const EmptySlot = ""

// EncodingSeparator splits the archetype key from the level in a slot encoding
const EncodingSeparator = "|"

// DefaultProfileSlots is the slot capacity used when none is configured
const DefaultProfileSlots = 30
