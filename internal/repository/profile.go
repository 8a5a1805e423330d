package repository

import (
	"context"

	"github.com/osse101/EmberForge_Go/internal/domain"
)

// Profile persists player profiles. Lookups of unknown ids return an error
// wrapping domain.ErrProfileNotFound.
type Profile interface {
	CreateProfile(ctx context.Context, profile *domain.Profile) error
	GetProfile(ctx context.Context, profileID string) (*domain.Profile, error)
	// ListSleepingProfiles returns the ids of every profile whose energy
	// machine is in the sleeping state
	ListSleepingProfiles(ctx context.Context) ([]string, error)

	BeginTx(ctx context.Context) (ProfileTx, error)
}

// ProfileTx is a unit of work over one or more profiles
type ProfileTx interface {
	Tx
	// GetProfileForUpdate reads a profile and holds it until the tx ends
	GetProfileForUpdate(ctx context.Context, profileID string) (*domain.Profile, error)
	SaveProfile(ctx context.Context, profile *domain.Profile) error
}
