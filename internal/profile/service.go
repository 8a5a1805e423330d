package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/EmberForge_Go/internal/archetype"
	"github.com/osse101/EmberForge_Go/internal/concurrency"
	"github.com/osse101/EmberForge_Go/internal/domain"
	"github.com/osse101/EmberForge_Go/internal/economy"
	"github.com/osse101/EmberForge_Go/internal/energy"
	"github.com/osse101/EmberForge_Go/internal/event"
	"github.com/osse101/EmberForge_Go/internal/logger"
	"github.com/osse101/EmberForge_Go/internal/progression"
	"github.com/osse101/EmberForge_Go/internal/repository"
)

// Config tunes a Service
type Config struct {
	SlotCapacity int
	CacheSize    int
	CacheTTL     time.Duration
	// Now stamps sleep starts; defaults to time.Now
	Now func() time.Time
}

type service struct {
	repo      repository.Profile
	finder    archetype.Finder
	generator RewardGenerator
	forge     *economy.Forge
	bus       event.Bus
	locks     *concurrency.LockManager
	cache     *profileCache
	slots     int
	now       func() time.Time
}

// NewService wires the profile orchestrator. bus may be nil.
func NewService(repo repository.Profile, finder archetype.Finder, generator RewardGenerator, forge *economy.Forge, bus event.Bus, cfg Config) Service {
	if cfg.SlotCapacity < 1 {
		cfg.SlotCapacity = domain.DefaultProfileSlots
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &service{
		repo:      repo,
		finder:    finder,
		generator: generator,
		forge:     forge,
		bus:       bus,
		locks:     concurrency.NewLockManager(),
		cache:     newProfileCache(cfg.CacheSize, cfg.CacheTTL),
		slots:     cfg.SlotCapacity,
		now:       cfg.Now,
	}
}

// state is the working set of one mutation: the profile record plus the
// live energy machine and ledger built over it
type state struct {
	profile *domain.Profile
	machine *energy.Machine
	ledger  *profileLedger
	events  []event.Event
}

func (st *state) emit(evt event.Event) {
	st.events = append(st.events, evt)
}

// instance decodes the instance in slot
func (st *state) instance(slot int, finder archetype.Finder) (*progression.Instance, domain.ItemArchetype, error) {
	return decodeSlot(st.profile, slot, finder)
}

func decodeSlot(p *domain.Profile, slot int, finder archetype.Finder) (*progression.Instance, domain.ItemArchetype, error) {
	if slot < 0 || slot >= len(p.Slots) {
		return nil, domain.ItemArchetype{}, fmt.Errorf(ErrMsgSlotFmt, slot, domain.ErrSlotOutOfRange)
	}
	rec := p.Slots[slot]
	if rec.IsEmpty() {
		return nil, domain.ItemArchetype{}, fmt.Errorf(ErrMsgSlotFmt, slot, domain.ErrSlotEmpty)
	}
	inst, err := progression.DecodeSlot(rec, finder)
	if err != nil {
		return nil, domain.ItemArchetype{}, fmt.Errorf(ErrMsgSlotFmt, slot, err)
	}
	arch, _ := finder.Find(inst.ArchetypeKey())
	return inst, arch, nil
}

// mutate runs fn against the stored profile under the profile's lock and
// inside a repository transaction. When fn fails nothing is written, unless
// fn set keep: then the state is committed and fn's error still returned.
// Events collected by fn are published after the lock is released, and only
// when the write committed.
func (s *service) mutate(ctx context.Context, profileID string, fn func(st *state) error) (*domain.Profile, error) {
	var (
		st     *state
		result error
	)
	err := s.locks.WithLock(profileID, func() error {
		tx, err := s.repo.BeginTx(ctx)
		if err != nil {
			return err
		}
		defer repository.SafeRollback(ctx, tx)

		p, err := tx.GetProfileForUpdate(ctx, profileID)
		if err != nil {
			return err
		}

		st = s.newState(ctx, p)
		if result = fn(st); result != nil {
			if keep, ok := result.(keepError); ok {
				result = keep.err
			} else {
				return result
			}
		}

		p.Energy = st.machine.Snapshot()
		if err := tx.SaveProfile(ctx, p); err != nil {
			return err
		}
		if err := tx.Commit(ctx); err != nil {
			return err
		}
		s.cache.Set(p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, st.events)
	return st.profile, result
}

// keepError marks a failure whose state changes still have to be committed
type keepError struct {
	err error
}

func (k keepError) Error() string { return k.err.Error() }

func (k keepError) Unwrap() error { return k.err }

func (s *service) newState(ctx context.Context, p *domain.Profile) *state {
	m, healed := energy.Restore(ctx, p.Energy, s.now)
	st := &state{profile: p, machine: m, ledger: &profileLedger{p: p}}
	if healed {
		logger.FromContext(ctx).Warn(LogMsgEnergyHealed, "profile_id", p.ID, "observed_energy", p.Energy.CurrentEnergy)
		st.emit(event.NewEnergyAnomalyEvent(p.ID, p.Energy.CurrentEnergy, p.Energy.IsSleeping))
	}
	return st
}

func (s *service) publish(ctx context.Context, events []event.Event) {
	if s.bus == nil {
		return
	}
	for _, evt := range events {
		if err := s.bus.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Error(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
		}
	}
}

// load returns the committed profile, from cache when possible
func (s *service) load(ctx context.Context, profileID string) (*domain.Profile, error) {
	if p, ok := s.cache.Get(profileID); ok {
		return p, nil
	}
	logger.FromContext(ctx).Debug(LogMsgProfileCacheMiss, "profile_id", profileID)

	p, err := s.repo.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(p)
	return p, nil
}

func (s *service) view(ctx context.Context, p *domain.Profile) *View {
	return buildView(ctx, p, s.finder)
}

// Create stores a new awake profile with full energy and empty slots
func (s *service) Create(ctx context.Context, openingBalance int) (*View, error) {
	if openingBalance < 0 {
		return nil, fmt.Errorf("%w: opening balance %d", domain.ErrInvalidAmount, openingBalance)
	}

	p := &domain.Profile{
		ID:        uuid.NewString(),
		Balance:   openingBalance,
		Slots:     make([]domain.SlotRecord, s.slots),
		Energy:    energy.New(domain.MaxEnergy, s.now).Snapshot(),
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.CreateProfile(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	s.cache.Set(p)

	logger.FromContext(ctx).Info(LogMsgProfileCreated, "profile_id", p.ID, "slots", s.slots)
	return s.view(ctx, p), nil
}

// Get returns the profile view
func (s *service) Get(ctx context.Context, profileID string) (*View, error) {
	p, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, p), nil
}
