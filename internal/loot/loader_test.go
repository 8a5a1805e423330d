package loot

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalog(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		data := []byte(`
version: "1.0"
tiers:
  - name: common
    weight: 70
    items: [dagger_rusty, cap_leather]
  - name: rare
    weight: 30
    items: [axe_steel, not_in_repository]
`)
		c, err := ParseCatalog(data, testRepository(), 2)
		require.NoError(t, err)
		assert.Equal(t, 2, c.TierCount())

		tier, ok := c.Tier(2)
		require.True(t, ok)
		assert.Equal(t, "rare", tier.Name)
		require.Len(t, tier.Candidates, 2)
		assert.Nil(t, tier.Candidates[1])
	})

	t.Run("invalid YAML", func(t *testing.T) {
		_, err := ParseCatalog([]byte("tiers: [::"), testRepository(), 5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrContextFailedToParseCatalog)
	})

	t.Run("schema violation", func(t *testing.T) {
		_, err := ParseCatalog([]byte(`version: "1.0"`), testRepository(), 5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})

	t.Run("advisory issues do not fail the load", func(t *testing.T) {
		data := []byte(`
version: "1.0"
tiers:
  - weight: 10
    items: []
`)
		c, err := ParseCatalog(data, testRepository(), 5)
		require.NoError(t, err)
		assert.NotEmpty(t, c.Validate(5))
	})
}

func TestLoadCatalog_ProjectFile(t *testing.T) {
	path := filepath.Join("..", "..", "configs", "loot", "tiers.yaml")
	c, err := LoadCatalog(path, testRepository(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, c.TierCount())

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"), testRepository(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrContextFailedToReadCatalog)
}
