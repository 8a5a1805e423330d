package loot

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/EmberForge_Go/internal/archetype"
	"github.com/osse101/EmberForge_Go/internal/domain"
)

// RewardPolicy is the per-encounter reward configuration. Tiers holds
// 1-based tier indices; an empty list means global weights across all tiers.
type RewardPolicy struct {
	Count         int              `json:"count" validate:"gte=0"`
	Tiers         []int            `json:"tiers,omitempty" validate:"omitempty,dive,gte=1"`
	Mode          DistributionMode `json:"mode,omitempty" validate:"omitempty,oneof=even random"`
	ForcedRewards []string         `json:"forced_rewards,omitempty" validate:"omitempty,dive,required"`
}

var policyValidate = validator.New()

// ValidatePolicy checks a policy against a catalog of tierCount tiers.
// Every failure wraps domain.ErrInvalidPolicy.
func ValidatePolicy(policy RewardPolicy, tierCount int, finder archetype.Finder) error {
	if err := policyValidate.Struct(policy); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidPolicy, err)
	}
	for _, t := range policy.Tiers {
		if t > tierCount {
			return fmt.Errorf("%w: tier %d outside [1, %d]", domain.ErrInvalidPolicy, t, tierCount)
		}
	}
	if finder != nil {
		for _, key := range policy.ForcedRewards {
			if _, ok := finder.Find(key); !ok {
				return fmt.Errorf("%w: forced reward: %w: %s", domain.ErrInvalidPolicy, domain.ErrArchetypeNotFound, key)
			}
		}
	}
	return nil
}

// IsValidPolicy is the boolean form of ValidatePolicy
func IsValidPolicy(policy RewardPolicy, tierCount int, finder archetype.Finder) bool {
	return ValidatePolicy(policy, tierCount, finder) == nil
}
