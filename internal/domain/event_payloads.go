package domain

// RewardsGeneratedPayload is the payload for rewards.generated
type RewardsGeneratedPayload struct {
	ProfileID  string   `json:"profile_id"`
	Archetypes []string `json:"archetypes"`
	Stored     int      `json:"stored"`
	Overflow   int      `json:"overflow"`
	Timestamp  int64    `json:"timestamp"`
}

// ItemImprovedPayload is the payload for item.improved
type ItemImprovedPayload struct {
	ProfileID  string `json:"profile_id"`
	InstanceID string `json:"instance_id"`
	Archetype  string `json:"archetype"`
	OldLevel   int    `json:"old_level"`
	NewLevel   int    `json:"new_level"`
	Cost       int    `json:"cost"`
	Timestamp  int64  `json:"timestamp"`
}

// ItemSoldPayload is the payload for item.sold
type ItemSoldPayload struct {
	ProfileID  string `json:"profile_id"`
	InstanceID string `json:"instance_id"`
	Archetype  string `json:"archetype"`
	Level      int    `json:"level"`
	Price      int    `json:"price"`
	Timestamp  int64  `json:"timestamp"`
}

// EnergyWokePayload is the payload for energy.woke
type EnergyWokePayload struct {
	ProfileID string `json:"profile_id"`
	Reason    string `json:"reason"`
	Energy    int    `json:"energy"`
	Timestamp int64  `json:"timestamp"`
}

// EnergyAnomalyPayload is the payload for energy.anomaly
type EnergyAnomalyPayload struct {
	ProfileID     string `json:"profile_id"`
	ObservedValue int    `json:"observed_value"`
	WasSleeping   bool   `json:"was_sleeping"`
	Timestamp     int64  `json:"timestamp"`
}
