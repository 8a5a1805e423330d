package economy

// Reference cost curve
const (
	DefaultBaseCost       = 100
	DefaultCostMultiplier = 1.2
)

// Resale placeholder: half the purchase price plus a quarter of what the
// previous level cost to reach. Unconfirmed product numbers.
const (
	ResalePriceDivisor = 2
	ResaleForgeDivisor = 4
)

// Error messages
const (
	ErrMsgImproveFmt      = "improve %s at level %d: %w"
	ErrMsgInsufficientFmt = "%w: cost %d, balance %d"
	ErrMsgLedgerDebitFmt  = "failed to debit %d: %w"
)

// Log messages
const (
	LogMsgItemImproved   = "Item improved"
	LogMsgImproveBlocked = "Improve rejected"
)
