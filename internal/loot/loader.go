package loot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/EmberForge_Go/internal/archetype"
	"github.com/osse101/EmberForge_Go/internal/logger"
	"github.com/osse101/EmberForge_Go/internal/validation"
)

// CatalogFile is the YAML document describing the reward tiers
type CatalogFile struct {
	Version     string    `yaml:"version" json:"version"`
	Description string    `yaml:"description" json:"description,omitempty"`
	Tiers       []TierDef `yaml:"tiers" json:"tiers"`
}

// LoadCatalog reads a YAML catalog, checks its shape against the catalog
// schema and resolves it. Semantic problems are logged at WARN and do not
// fail the load.
func LoadCatalog(path string, finder archetype.Finder, expectedTiers int) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadCatalog, err)
	}
	return ParseCatalog(data, finder, expectedTiers)
}

// ParseCatalog is LoadCatalog without the file read
func ParseCatalog(data []byte, finder archetype.Finder, expectedTiers int) (*Catalog, error) {
	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToParseCatalog, err)
	}

	if err := validation.NewSchemaValidator().ValidateDocument(file, validation.LootCatalogSchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for loot catalog: %w", err)
	}

	catalog := NewCatalog(file.Tiers, finder)
	for _, issue := range catalog.Validate(expectedTiers) {
		logger.Warn(LogMsgCatalogIssue, LogFieldIssue, issue)
	}
	logger.Info(LogMsgCatalogLoaded, "tiers", catalog.TierCount(), "version", file.Version)
	return catalog, nil
}
