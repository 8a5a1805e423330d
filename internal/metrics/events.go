package metrics

import (
	"context"

	"github.com/osse101/EmberForge_Go/internal/domain"
	"github.com/osse101/EmberForge_Go/internal/event"
	"github.com/osse101/EmberForge_Go/internal/logger"
)

// EventMetricsCollector subscribes to domain events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every domain event type
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent updates the counters for one event. Undecodable payloads are
// logged and skipped; metrics never fail a publish.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.RewardsGenerated:
		var p domain.RewardsGeneratedPayload
		if p, err = event.DecodePayload[domain.RewardsGeneratedPayload](evt.Payload); err == nil {
			for _, name := range p.Archetypes[:min(p.Stored, len(p.Archetypes))] {
				RewardsGranted.WithLabelValues(name).Inc()
			}
			RewardsOverflowed.Add(float64(p.Overflow))
		}

	case event.ItemImproved:
		var p domain.ItemImprovedPayload
		if p, err = event.DecodePayload[domain.ItemImprovedPayload](evt.Payload); err == nil {
			ItemsImproved.WithLabelValues(p.Archetype).Inc()
			ForgeCurrencySpent.Add(float64(p.Cost))
		}

	case event.ItemSold:
		var p domain.ItemSoldPayload
		if p, err = event.DecodePayload[domain.ItemSoldPayload](evt.Payload); err == nil {
			ItemsSold.WithLabelValues(p.Archetype).Inc()
			CurrencyEarned.Add(float64(p.Price))
		}

	case event.EnergyWoke:
		var p domain.EnergyWokePayload
		if p, err = event.DecodePayload[domain.EnergyWokePayload](evt.Payload); err == nil {
			EnergyWakes.WithLabelValues(p.Reason).Inc()
		}

	case event.EnergyAnomaly:
		EnergyAnomalies.Inc()
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
