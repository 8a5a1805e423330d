package archetype

// ConfigFileName is the default archetype catalog file name
const ConfigFileName = "archetypes.json"

// Error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read archetype catalog: %w"
	ErrMsgParseConfigFailed    = "failed to parse archetype catalog: %w"
	ErrMsgConfigNil            = "config is nil"
	ErrMsgNoArchetypesDefined  = "no archetypes defined"
)

// Format strings used with fmt.Errorf
const (
	ErrFmtEmptyName     = "%w: archetype at index %d has empty name"
	ErrFmtNegativePrice = "%w: archetype '%s' has negative price"
	ErrFmtNegativeStat  = "%w: archetype '%s' has negative base stat"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Archetype catalog loaded"
)
