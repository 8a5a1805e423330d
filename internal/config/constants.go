package config

import "time"

const (
	// Configuration file paths
	ConfigPathArchetypes  = "configs/items/archetypes.json"
	ConfigPathLootCatalog = "configs/loot/tiers.yaml"
)

// Storage backends
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	MaintenanceDBName = "postgres"
)

// Defaults
const (
	DefaultLootTierCount       = 5
	DefaultForgeBaseCost       = 100.0
	DefaultForgeCostMultiplier = 1.2
	DefaultProfileCacheSize    = 1024
	DefaultProfileCacheTTL     = 5 * time.Minute
	DefaultEnergyTickInterval  = 10 * time.Second
	DefaultEventMaxRetries     = 5
	DefaultEventRetryDelay     = 2 * time.Second
	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"
)
