package profile

// CacheSchemaVersion invalidates cached profiles when the record shape changes
const CacheSchemaVersion = "1.0"

// Log Messages
const (
	LogMsgProfileCreated   = "Profile created"
	LogMsgRewardsClaimed   = "Rewards claimed"
	LogMsgRewardsOverflow  = "Rewards did not fit in free slots"
	LogMsgItemSold         = "Item sold"
	LogMsgEnergyHealed     = "Persisted energy self-healed"
	LogMsgSlotUndecodable  = "Slot encoding could not be decoded"
	LogMsgPublishFailed    = "Failed to publish event"
	LogMsgTickFailed       = "Energy tick failed for profile"
	LogMsgSleepingTicked   = "Ticked sleeping profiles"
	LogMsgProfileCacheMiss = "Profile cache miss"
)

// Error Messages
const (
	ErrMsgSlotFmt         = "slot %d: %w"
	ErrMsgListSleepingFmt = "failed to list sleeping profiles: %w"
)
