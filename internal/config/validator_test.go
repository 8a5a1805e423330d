package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv(t *testing.T) {
	t.Run("missing schema version", func(t *testing.T) {
		t.Setenv("ENV_SCHEMA_VERSION", "")
		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
	})

	t.Run("schema version mismatch", func(t *testing.T) {
		t.Setenv("ENV_SCHEMA_VERSION", "0.9")
		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mismatch")
	})

	t.Run("memory storage only needs base vars", func(t *testing.T) {
		t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
		t.Setenv("API_KEY", "k")
		t.Setenv("STORAGE", StorageMemory)
		t.Setenv("DB_USER", "")
		assert.NoError(t, ValidateEnv())
	})

	t.Run("postgres storage lists missing db vars", func(t *testing.T) {
		t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
		t.Setenv("API_KEY", "k")
		t.Setenv("STORAGE", StoragePostgres)
		t.Setenv("DB_USER", "")
		t.Setenv("DB_PASSWORD", "")
		t.Setenv("DB_HOST", "h")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("DB_NAME", "n")

		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_USER")
		assert.Contains(t, err.Error(), "DB_PASSWORD")
		assert.NotContains(t, err.Error(), "DB_HOST")
	})
}

func TestValidateEnvWithWarnings(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("API_KEY", "generate_with_openssl_rand_hex_32")
	t.Setenv("STORAGE", StorageMemory)

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Len(t, warnings, 2)
}
