package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "item.improved")
const (
	// EventTypeRewardsGenerated is published after a reward batch has been claimed
	EventTypeRewardsGenerated = "rewards.generated"

	// EventTypeItemImproved is published when the forge raises an instance's level
	EventTypeItemImproved = "item.improved"

	// EventTypeItemSold is published when an instance is sold back for currency
	EventTypeItemSold = "item.sold"

	// EventTypeEnergyWoke is published on every sleeping -> awake transition
	EventTypeEnergyWoke = "energy.woke"

	// EventTypeEnergyAnomaly is published when persisted energy had to be self-healed
	EventTypeEnergyAnomaly = "energy.anomaly"
)

// Wake reasons carried by energy.woke events
const (
	WakeReasonManual   = "manual"
	WakeReasonImplicit = "implicit"
	WakeReasonFull     = "full"
)
