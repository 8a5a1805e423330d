package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/EmberForge_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string
	APIKey      string // API key for authentication

	TrustedProxies []string // peers whose X-Forwarded-For is believed

	Storage    string // "memory" or "postgres"
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBMaxConns int

	ArchetypesPath  string
	LootCatalogPath string
	LootTierCount   int
	LootRandomSeed  uint64 // 0 draws from the shared unseeded source

	ForgeBaseCost       float64
	ForgeCostMultiplier float64
	ForgeMaxLevel       int

	ProfileSlotCapacity int
	ProfileCacheSize    int
	ProfileCacheTTL     time.Duration

	EnergyTickInterval time.Duration

	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		Environment:     getEnv("ENVIRONMENT", "dev"),
		ServiceName:     getEnv("SERVICE_NAME", "ember-forge"),
		Version:         getEnv("VERSION", "dev"),
		APIKey:          getEnv("API_KEY", ""),
		Storage:         getEnv("STORAGE", StorageMemory),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBName:          getEnv("DB_NAME", "emberforge"),
		ArchetypesPath:  getEnv("ARCHETYPES_PATH", ConfigPathArchetypes),
		LootCatalogPath: getEnv("LOOT_CATALOG_PATH", ConfigPathLootCatalog),

		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", DefaultEventDeadLetterPath),
		TrustedProxies:      getEnvAsList("TRUSTED_PROXIES"),
	}

	var err error
	if cfg.Port, err = getEnvAsInt("PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.DBMaxConns, err = getEnvAsInt("DB_MAX_CONNS", 10); err != nil {
		return nil, err
	}
	if cfg.LootTierCount, err = getEnvAsInt("LOOT_TIER_COUNT", DefaultLootTierCount); err != nil {
		return nil, err
	}
	if cfg.LootRandomSeed, err = getEnvAsUint("LOOT_RANDOM_SEED", 0); err != nil {
		return nil, err
	}
	if cfg.ForgeBaseCost, err = getEnvAsFloat("FORGE_BASE_COST", DefaultForgeBaseCost); err != nil {
		return nil, err
	}
	if cfg.ForgeCostMultiplier, err = getEnvAsFloat("FORGE_COST_MULTIPLIER", DefaultForgeCostMultiplier); err != nil {
		return nil, err
	}
	if cfg.ForgeMaxLevel, err = getEnvAsInt("FORGE_MAX_LEVEL", domain.MaxItemLevel); err != nil {
		return nil, err
	}
	if cfg.ProfileSlotCapacity, err = getEnvAsInt("PROFILE_SLOT_CAPACITY", domain.DefaultProfileSlots); err != nil {
		return nil, err
	}
	if cfg.ProfileCacheSize, err = getEnvAsInt("PROFILE_CACHE_SIZE", DefaultProfileCacheSize); err != nil {
		return nil, err
	}
	if cfg.ProfileCacheTTL, err = getEnvAsDuration("PROFILE_CACHE_TTL", DefaultProfileCacheTTL); err != nil {
		return nil, err
	}
	if cfg.EnergyTickInterval, err = getEnvAsDuration("ENERGY_TICK_INTERVAL", DefaultEnergyTickInterval); err != nil {
		return nil, err
	}

	if cfg.EventMaxRetries, err = getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries); err != nil {
		return nil, err
	}
	if cfg.EventRetryDelay, err = getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	// Validate API key is set
	if c.APIKey == "" {
		return fmt.Errorf("API_KEY environment variable must be set for security")
	}
	if c.Storage != StorageMemory && c.Storage != StoragePostgres {
		return fmt.Errorf("invalid STORAGE value %q: expected %s or %s", c.Storage, StorageMemory, StoragePostgres)
	}
	if c.LootTierCount < 1 {
		return fmt.Errorf("LOOT_TIER_COUNT must be at least 1, got %d", c.LootTierCount)
	}
	if c.ForgeBaseCost <= 0 {
		return fmt.Errorf("FORGE_BASE_COST must be positive, got %v", c.ForgeBaseCost)
	}
	if c.ForgeCostMultiplier <= 0 {
		return fmt.Errorf("FORGE_COST_MULTIPLIER must be positive, got %v", c.ForgeCostMultiplier)
	}
	if c.ForgeMaxLevel < domain.MinItemLevel+1 || c.ForgeMaxLevel > domain.MaxItemLevel {
		return fmt.Errorf("FORGE_MAX_LEVEL must be in [%d, %d], got %d", domain.MinItemLevel+1, domain.MaxItemLevel, c.ForgeMaxLevel)
	}
	if c.ProfileSlotCapacity < 1 {
		return fmt.Errorf("PROFILE_SLOT_CAPACITY must be at least 1, got %d", c.ProfileSlotCapacity)
	}
	if c.EnergyTickInterval <= 0 {
		return fmt.Errorf("ENERGY_TICK_INTERVAL must be positive, got %s", c.EnergyTickInterval)
	}
	if c.EventMaxRetries < 0 {
		return fmt.Errorf("EVENT_MAX_RETRIES must not be negative, got %d", c.EventMaxRetries)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated variable, dropping blank entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

func getEnvAsUint(key string, defaultValue uint64) (uint64, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return f, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return c.connString(c.DBName)
}

// GetMaintenanceConnString points at the server's "postgres" database, for
// creating or dropping DBName
func (c *Config) GetMaintenanceConnString() string {
	return c.connString(MaintenanceDBName)
}

func (c *Config) connString(dbName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		dbName,
	)
}
