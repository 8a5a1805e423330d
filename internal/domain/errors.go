package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgArchetypeNotFound = "archetype not found"
	ErrMsgInvalidPolicy     = "invalid reward policy"
	ErrMsgInvalidEncoding   = "invalid instance encoding"

	// Forge errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgAlreadyMaxLevel   = "already max level"

	// Energy errors
	ErrMsgInsufficientEnergy = "insufficient energy"

	// Profile errors
	ErrMsgProfileNotFound = "profile not found"
	ErrMsgSlotOutOfRange  = "slot out of range"
	ErrMsgSlotEmpty       = "slot is empty"
	ErrMsgNoFreeSlot      = "no free slot"

	// Input errors
	ErrMsgInvalidAmount = "invalid amount"
	ErrMsgInvalidInput  = "invalid input"

	// Database errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrArchetypeNotFound = errors.New(ErrMsgArchetypeNotFound)
	ErrInvalidPolicy     = errors.New(ErrMsgInvalidPolicy)
	ErrInvalidEncoding   = errors.New(ErrMsgInvalidEncoding)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrAlreadyMaxLevel   = errors.New(ErrMsgAlreadyMaxLevel)

	ErrInsufficientEnergy = errors.New(ErrMsgInsufficientEnergy)

	ErrProfileNotFound = errors.New(ErrMsgProfileNotFound)
	ErrSlotOutOfRange  = errors.New(ErrMsgSlotOutOfRange)
	ErrSlotEmpty       = errors.New(ErrMsgSlotEmpty)
	ErrNoFreeSlot      = errors.New(ErrMsgNoFreeSlot)

	ErrInvalidAmount = errors.New(ErrMsgInvalidAmount)
	ErrInvalidInput  = errors.New(ErrMsgInvalidInput)
)
