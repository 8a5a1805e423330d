package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/EmberForge_Go/internal/domain"
	"github.com/osse101/EmberForge_Go/internal/event"
	"github.com/osse101/EmberForge_Go/internal/logger"
	"github.com/osse101/EmberForge_Go/internal/loot"
	"github.com/osse101/EmberForge_Go/internal/progression"
)

// ClaimRewards generates loot for policy and stores each reward as a new
// level 1 instance in the first free slot. Rewards that do not fit are
// reported in Overflow rather than failing the claim. bonusCurrency is
// credited to the balance in the same write.
func (s *service) ClaimRewards(ctx context.Context, profileID string, policy loot.RewardPolicy, bonusCurrency int) (*ClaimResult, error) {
	if bonusCurrency < 0 {
		return nil, fmt.Errorf("%w: bonus currency %d", domain.ErrInvalidAmount, bonusCurrency)
	}

	rewards, err := s.generator.GenerateRewards(ctx, policy)
	if err != nil {
		return nil, err
	}

	result := &ClaimResult{Stored: []SlotView{}, Overflow: []string{}}
	_, err = s.mutate(ctx, profileID, func(st *state) error {
		names := make([]string, 0, len(rewards))
		for _, arch := range rewards {
			names = append(names, arch.Name)

			inst := progression.NewInstance(arch.Name)
			free, err := st.profile.Store(progression.EncodeSlot(inst))
			if errors.Is(err, domain.ErrNoFreeSlot) {
				result.Overflow = append(result.Overflow, arch.Name)
				continue
			}

			item := newItemView(inst, arch)
			result.Stored = append(result.Stored, SlotView{Index: free, Item: &item})
		}

		if err := st.ledger.Add(bonusCurrency); err != nil {
			return err
		}
		result.Balance = st.ledger.Balance()

		st.emit(event.NewRewardsGeneratedEvent(profileID, names, len(result.Stored), len(result.Overflow)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgRewardsClaimed, "profile_id", profileID, "stored", len(result.Stored), "bonus", bonusCurrency)
	if len(result.Overflow) > 0 {
		log.Warn(LogMsgRewardsOverflow, "profile_id", profileID, "overflow", result.Overflow)
	}
	return result, nil
}
