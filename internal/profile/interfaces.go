package profile

import (
	"context"
	"time"

	"github.com/osse101/EmberForge_Go/internal/domain"
	"github.com/osse101/EmberForge_Go/internal/loot"
)

// RewardGenerator produces reward archetypes for a policy
type RewardGenerator interface {
	GenerateRewards(ctx context.Context, policy loot.RewardPolicy) ([]domain.ItemArchetype, error)
}

// ManagementService creates and reads profiles
type ManagementService interface {
	Create(ctx context.Context, openingBalance int) (*View, error)
	Get(ctx context.Context, profileID string) (*View, error)
}

// RewardService stores generated loot in a profile
type RewardService interface {
	ClaimRewards(ctx context.Context, profileID string, policy loot.RewardPolicy, bonusCurrency int) (*ClaimResult, error)
}

// ForgeService spends and earns currency against the items in a profile
type ForgeService interface {
	PreviewImprove(ctx context.Context, profileID string, slot int) (*ImprovePreview, error)
	Improve(ctx context.Context, profileID string, slot int) (*ImproveOutcome, error)
	Sell(ctx context.Context, profileID string, slot int) (*SaleResult, error)
}

// EnergyService drives a profile's energy state machine
type EnergyService interface {
	StartSleep(ctx context.Context, profileID string) (*View, error)
	WakeUp(ctx context.Context, profileID string) (*View, error)
	Spend(ctx context.Context, profileID string, amount int) (*View, error)
	TickEnergy(ctx context.Context, profileID string, elapsed time.Duration) (*TickOutcome, error)
	// TickSleeping credits every sleeping profile for the time between since
	// and now, counted from its own sleep start when that is later
	TickSleeping(ctx context.Context, since, now time.Time) (int, error)
}

// Service is the full profile orchestration surface
type Service interface {
	ManagementService
	RewardService
	ForgeService
	EnergyService
}
