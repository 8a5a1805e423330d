package archetype

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/osse101/EmberForge_Go/internal/domain"
	"github.com/osse101/EmberForge_Go/internal/logger"
	"github.com/osse101/EmberForge_Go/internal/validation"
)

// Sentinel errors for the archetype loader
var (
	ErrDuplicateName = errors.New("duplicate archetype name")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config is the on-disk archetype catalog
type Config struct {
	Version     string                 `json:"version"`
	Description string                 `json:"description"`
	Archetypes  []domain.ItemArchetype `json:"archetypes"`
}

// Loader reads and checks archetype catalogs
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
}

type loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader backed by the archetype JSON schema
func NewLoader() Loader {
	return &loader{schemaValidator: validation.NewSchemaValidator()}
}

// Load reads a catalog file and validates it against the schema
func (l *loader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, validation.ArchetypesSchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}
	return &config, nil
}

// Validate applies the semantic checks the schema cannot express
func (l *loader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Archetypes) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoArchetypesDefined)
	}

	seen := make(map[string]bool, len(config.Archetypes))
	for i := range config.Archetypes {
		a := &config.Archetypes[i]
		if a.Name == "" {
			return fmt.Errorf(ErrFmtEmptyName, ErrInvalidConfig, i)
		}
		if seen[a.Name] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateName, a.Name)
		}
		seen[a.Name] = true

		if a.Price < 0 {
			return fmt.Errorf(ErrFmtNegativePrice, ErrInvalidConfig, a.Name)
		}
		if hasNegativeStat(a.BaseStats) {
			return fmt.Errorf(ErrFmtNegativeStat, ErrInvalidConfig, a.Name)
		}
	}
	return nil
}

func hasNegativeStat(s domain.Stats) bool {
	for _, v := range []int{s.HP, s.Mana, s.Attack, s.Defense, s.AttackSpeed, s.CritChance, s.CritDamage, s.Luck, s.Dexterity} {
		if v < 0 {
			return true
		}
	}
	return false
}

// LoadRepository loads, validates and indexes the catalog at path
func LoadRepository(path string) (*Repository, error) {
	l := NewLoader()
	config, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	if err := l.Validate(config); err != nil {
		return nil, err
	}

	repo := NewRepository(config.Archetypes)
	logger.Info(LogMsgCatalogLoaded, "path", path, "count", repo.Len(), "version", config.Version)
	return repo, nil
}
