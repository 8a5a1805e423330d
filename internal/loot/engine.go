package loot

import (
	"context"

	"github.com/osse101/EmberForge_Go/internal/archetype"
	"github.com/osse101/EmberForge_Go/internal/domain"
	"github.com/osse101/EmberForge_Go/internal/logger"
	"github.com/osse101/EmberForge_Go/internal/utils"
)

// Engine is the Loot Tier Engine. It holds no mutable state besides the
// random source, so one Engine can serve concurrent callers when rnd is
// safe for concurrent use (the default is).
type Engine struct {
	catalog *Catalog
	finder  archetype.Finder
	rnd     func() float64
}

// NewEngine creates an Engine. A nil rnd uses utils.RandomFloat.
func NewEngine(catalog *Catalog, finder archetype.Finder, rnd func() float64) *Engine {
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	return &Engine{catalog: catalog, finder: finder, rnd: rnd}
}

// Catalog returns the catalog the engine draws from
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Validate checks a policy against this engine's catalog
func (e *Engine) Validate(policy RewardPolicy) error {
	return ValidatePolicy(policy, e.catalog.TierCount(), e.finder)
}

// GenerateRewards produces the archetypes an encounter yields. A count of
// zero or less returns an empty list without looking at the rest of the
// policy. Invalid policies are rejected before any draw. Draws that land on
// a tier with no candidates are skipped, never retried.
func (e *Engine) GenerateRewards(ctx context.Context, policy RewardPolicy) ([]domain.ItemArchetype, error) {
	if policy.Count <= 0 {
		return []domain.ItemArchetype{}, nil
	}
	if err := e.Validate(policy); err != nil {
		return nil, err
	}

	rewards := make([]domain.ItemArchetype, 0, policy.Count+len(policy.ForcedRewards))
	draw := func(tier int) {
		if a, ok := e.catalog.SampleItem(tier, e.rnd); ok {
			rewards = append(rewards, a)
		}
	}

	allow := policy.Tiers
	switch {
	case len(allow) == 0:
		for i := 0; i < policy.Count; i++ {
			draw(e.catalog.SampleTier(e.rnd))
		}
	case policy.Mode == DistributionEven && len(allow) > 1:
		rounds := (policy.Count + len(allow) - 1) / len(allow)
	roundRobin:
		for r := 0; r < rounds; r++ {
			for _, tier := range allow {
				if len(rewards) >= policy.Count {
					break roundRobin
				}
				draw(tier)
			}
		}
	default:
		for i := 0; i < policy.Count; i++ {
			draw(allow[intn(e.rnd, len(allow))])
		}
	}

	for _, key := range policy.ForcedRewards {
		if a, ok := e.finder.Find(key); ok {
			rewards = append(rewards, a)
		}
	}

	logger.FromContext(ctx).Debug(LogMsgRewardsGenerated,
		LogFieldCount, len(rewards),
		"requested", policy.Count,
		"forced", len(policy.ForcedRewards))
	return rewards, nil
}
