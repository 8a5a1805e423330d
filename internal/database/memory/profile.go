// Package memory holds the process-local profile store used when no
// database is configured.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osse101/EmberForge_Go/internal/domain"
	"github.com/osse101/EmberForge_Go/internal/repository"
)

var errTxClosed = errors.New(domain.ErrMsgTxClosed)

// ProfileRepository stores profiles in a map. Reads and writes exchange
// deep copies, so callers never share slot slices with the store.
type ProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*domain.Profile
	now      func() time.Time
}

// NewProfileRepository creates an empty store
func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{
		profiles: make(map[string]*domain.Profile),
		now:      time.Now,
	}
}

var _ repository.Profile = (*ProfileRepository)(nil)

func (r *ProfileRepository) CreateProfile(_ context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.profiles[profile.ID]; exists {
		return fmt.Errorf("%w: profile %s already exists", domain.ErrInvalidInput, profile.ID)
	}
	profile.UpdatedAt = profile.CreatedAt
	r.profiles[profile.ID] = profile.Clone()
	return nil
}

func (r *ProfileRepository) GetProfile(_ context.Context, profileID string) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[profileID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, profileID)
	}
	return p.Clone(), nil
}

func (r *ProfileRepository) ListSleepingProfiles(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for id, p := range r.profiles {
		if p.Energy.IsSleeping {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// BeginTx returns a tx that buffers saves until Commit
func (r *ProfileRepository) BeginTx(_ context.Context) (repository.ProfileTx, error) {
	return &profileTx{repo: r, pending: make(map[string]*domain.Profile)}, nil
}

type profileTx struct {
	repo    *ProfileRepository
	pending map[string]*domain.Profile
	closed  bool
}

func (t *profileTx) GetProfileForUpdate(ctx context.Context, profileID string) (*domain.Profile, error) {
	if t.closed {
		return nil, errTxClosed
	}
	if p, ok := t.pending[profileID]; ok {
		return p.Clone(), nil
	}
	return t.repo.GetProfile(ctx, profileID)
}

func (t *profileTx) SaveProfile(_ context.Context, profile *domain.Profile) error {
	if t.closed {
		return errTxClosed
	}
	t.repo.mu.RLock()
	_, exists := t.repo.profiles[profile.ID]
	t.repo.mu.RUnlock()
	if !exists {
		return fmt.Errorf("%w: %s", domain.ErrProfileNotFound, profile.ID)
	}
	profile.UpdatedAt = t.repo.now()
	t.pending[profile.ID] = profile.Clone()
	return nil
}

func (t *profileTx) Commit(_ context.Context) error {
	if t.closed {
		return errTxClosed
	}
	t.closed = true

	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	for id, p := range t.pending {
		t.repo.profiles[id] = p
	}
	return nil
}

func (t *profileTx) Rollback(_ context.Context) error {
	if t.closed {
		return errTxClosed
	}
	t.closed = true
	t.pending = nil
	return nil
}
