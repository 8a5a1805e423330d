package loot

// DistributionMode controls how draws are spread across a policy's tier allow-list
type DistributionMode string

const (
	// DistributionRandom picks one allowed tier uniformly for every draw
	DistributionRandom DistributionMode = "random"
	// DistributionEven cycles through the allowed tiers in order
	DistributionEven DistributionMode = "even"
)

// ExpectedWeightTotal is the sum a well-formed catalog's tier weights add up to
const ExpectedWeightTotal = 100

// ConfigVersion is the catalog file version this loader understands
const ConfigVersion = "1.0"

// Error context messages for wrapped errors during catalog loading
const (
	ErrContextFailedToReadCatalog  = "failed to read loot catalog"
	ErrContextFailedToParseCatalog = "failed to parse loot catalog"
)

// Advisory catalog issue formats
const (
	IssueFmtNegativeWeight  = "tier %d has negative weight %d"
	IssueFmtNoCandidates    = "tier %d has no valid candidates"
	IssueFmtWeightTotal     = "tier weights sum to %d, expected %d"
	IssueFmtTierCount       = "catalog has %d tiers, expected %d"
	IssueFmtUnresolvedEntry = "tier %d references unknown archetype %q"
	IssueMsgNoTiers         = "catalog has no tiers"
)

// Log messages
const (
	LogMsgCatalogLoaded    = "Loot catalog loaded"
	LogMsgCatalogIssue     = "Loot catalog issue"
	LogMsgRewardsGenerated = "Rewards generated"
)

// Log field keys for structured logging
const (
	LogFieldIssue = "issue"
	LogFieldTier  = "tier"
	LogFieldCount = "count"
)
