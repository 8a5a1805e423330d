package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/EmberForge_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a domain event
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// Domain event types
const (
	RewardsGenerated Type = domain.EventTypeRewardsGenerated
	ItemImproved     Type = domain.EventTypeItemImproved
	ItemSold         Type = domain.EventTypeItemSold
	EnergyWoke       Type = domain.EventTypeEnergyWoke
	EnergyAnomaly    Type = domain.EventTypeEnergyAnomaly
)

// AllTypes lists every domain event type
var AllTypes = []Type{RewardsGenerated, ItemImproved, ItemSold, EnergyWoke, EnergyAnomaly}

// NewRewardsGeneratedEvent creates a rewards.generated event
func NewRewardsGeneratedEvent(profileID string, archetypes []string, stored, overflow int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RewardsGenerated,
		Payload: domain.RewardsGeneratedPayload{
			ProfileID:  profileID,
			Archetypes: archetypes,
			Stored:     stored,
			Overflow:   overflow,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewItemImprovedEvent creates an item.improved event
func NewItemImprovedEvent(profileID, instanceID, archetype string, oldLevel, newLevel, cost int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemImproved,
		Payload: domain.ItemImprovedPayload{
			ProfileID:  profileID,
			InstanceID: instanceID,
			Archetype:  archetype,
			OldLevel:   oldLevel,
			NewLevel:   newLevel,
			Cost:       cost,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewItemSoldEvent creates an item.sold event
func NewItemSoldEvent(profileID, instanceID, archetype string, level, price int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemSold,
		Payload: domain.ItemSoldPayload{
			ProfileID:  profileID,
			InstanceID: instanceID,
			Archetype:  archetype,
			Level:      level,
			Price:      price,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewEnergyWokeEvent creates an energy.woke event; reason is one of the
// domain.WakeReason values
func NewEnergyWokeEvent(profileID, reason string, energy int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EnergyWoke,
		Payload: domain.EnergyWokePayload{
			ProfileID: profileID,
			Reason:    reason,
			Energy:    energy,
			Timestamp: time.Now().Unix(),
		},
		Metadata: Metadata{"reason": reason},
	}
}

// NewEnergyAnomalyEvent creates an energy.anomaly event
func NewEnergyAnomalyEvent(profileID string, observed int, wasSleeping bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EnergyAnomaly,
		Payload: domain.EnergyAnomalyPayload{
			ProfileID:     profileID,
			ObservedValue: observed,
			WasSleeping:   wasSleeping,
			Timestamp:     time.Now().Unix(),
		},
	}
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// DecodePayload decodes an event payload into T via type assertion then JSON fallback.
// Events published in-process already carry the struct; events read back
// from the dead-letter file need the JSON round-trip.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
