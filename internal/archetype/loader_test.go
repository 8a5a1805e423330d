package archetype

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/EmberForge_Go/internal/domain"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	l := NewLoader()

	t.Run("valid catalog", func(t *testing.T) {
		path := createTempFile(t, `{
			"version": "1.0",
			"archetypes": [
				{"name": "sword_iron", "display_text": "Iron Sword", "price": 80, "slot": "weapon", "rarity": "UNCOMMON",
				 "base_stats": {"attack": 10, "crit_chance": 3}}
			]
		}`)

		config, err := l.Load(path)
		require.NoError(t, err)
		require.Len(t, config.Archetypes, 1)
		a := config.Archetypes[0]
		assert.Equal(t, "sword_iron", a.Name)
		assert.Equal(t, domain.EquipSlotWeapon, a.Slot)
		assert.Equal(t, domain.RarityUncommon, a.Rarity)
		assert.Equal(t, 10, a.BaseStats.Attack)
		assert.Equal(t, 3, a.BaseStats.CritChance)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := l.Load("/nonexistent/archetypes.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read archetype catalog")
	})

	t.Run("schema violation", func(t *testing.T) {
		path := createTempFile(t, `{"version": "1.0", "archetypes": [{"name": "sword_iron", "price": 80, "slot": "belt", "rarity": "RARE", "base_stats": {}}]}`)
		_, err := l.Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})
}

func TestLoader_Validate(t *testing.T) {
	l := NewLoader()

	tests := []struct {
		name    string
		config  *Config
		wantErr error
	}{
		{name: "nil config", config: nil, wantErr: ErrInvalidConfig},
		{name: "empty catalog", config: &Config{}, wantErr: ErrInvalidConfig},
		{
			name: "duplicate name",
			config: &Config{Archetypes: []domain.ItemArchetype{
				{Name: "ring_copper"}, {Name: "ring_copper"},
			}},
			wantErr: ErrDuplicateName,
		},
		{
			name:    "negative price",
			config:  &Config{Archetypes: []domain.ItemArchetype{{Name: "ring_copper", Price: -1}}},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "negative stat",
			config:  &Config{Archetypes: []domain.ItemArchetype{{Name: "ring_copper", BaseStats: domain.Stats{Luck: -2}}}},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "valid",
			config: &Config{Archetypes: []domain.ItemArchetype{
				{Name: "ring_copper", Price: 30}, {Name: "sword_iron", Price: 80},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := l.Validate(tt.config)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
		})
	}
}

func TestLoadRepository_ProjectCatalog(t *testing.T) {
	path, err := filepath.Abs(filepath.Join("..", "..", "configs", "items", ConfigFileName))
	require.NoError(t, err)

	repo, err := LoadRepository(path)
	require.NoError(t, err)
	assert.Positive(t, repo.Len())

	sword, ok := repo.Find("sword_iron")
	require.True(t, ok)
	assert.Equal(t, "Iron Sword", sword.DisplayText)

	// potion_mana has no display_text in the file
	potion, ok := repo.Find("potion_mana")
	require.True(t, ok)
	assert.Equal(t, "Potion Mana", potion.DisplayText)
}
