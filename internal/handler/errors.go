package handler

// Generic HTTP error messages for client responses.
// These never carry internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidSlot           = "Slot must be a non-negative integer"
	ErrMsgMissingProfileID      = "Missing profile id"
)

// User-facing messages derived from domain errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgProfileNotFoundError   = "Profile not found"
	ErrMsgArchetypeNotFoundError = "Item not found"
	ErrMsgInvalidPolicyError     = "Reward policy is not valid for this catalog"
	ErrMsgCorruptSlotError       = "Slot data could not be read"
	ErrMsgSlotOutOfRangeError    = "Slot does not exist"
	ErrMsgSlotEmptyError         = "Slot is empty"
	ErrMsgNoFreeSlotError        = "Inventory is full"
	ErrMsgNotEnoughMoneyError    = "Not enough money"
	ErrMsgAlreadyMaxLevelError   = "Item is already at max level"
	ErrMsgNotEnoughEnergyError   = "Not enough energy"
	ErrMsgInvalidAmountError     = "Amount must not be negative"
	ErrMsgInvalidInputError      = "Invalid request. Please check your inputs."
)

// Validation field messages
const (
	ValidationMsgRequired = "This field is required"
	ValidationMsgDuration = "Must be a non-negative duration such as 10s or 1m30s"
	ValidationMsgOneOf    = "Must be one of: %s"
	ValidationMsgGte      = "Must be at least %s"
	ValidationMsgLte      = "Must be at most %s"
	ValidationMsgInvalid  = "Invalid value"
	ValidationMsgFormat   = "Invalid request format"
)

// Log messages
const (
	LogMsgDecodeFailedFmt   = "Failed to decode %s request"
	LogMsgDecodedFmt        = "%s request decoded"
	LogMsgServiceFailedFmt  = "%s failed"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteBufferFailed = "Failed to write response buffer"
)
