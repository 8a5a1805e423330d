package profile

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/EmberForge_Go/internal/archetype"
	"github.com/osse101/EmberForge_Go/internal/database/memory"
	"github.com/osse101/EmberForge_Go/internal/domain"
	"github.com/osse101/EmberForge_Go/internal/economy"
	"github.com/osse101/EmberForge_Go/internal/event"
	"github.com/osse101/EmberForge_Go/internal/loot"
)

var testNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

var (
	ironSword = domain.ItemArchetype{
		Name: "sword_iron", DisplayText: "Iron Sword", Price: 80,
		Slot: domain.EquipSlotWeapon, Rarity: domain.RarityCommon,
		BaseStats: domain.Stats{Attack: 10},
	}
	manaPotion = domain.ItemArchetype{
		Name: "potion_mana", DisplayText: "Potion Mana", Price: 10,
		Slot: domain.EquipSlotAccessory, Rarity: domain.RarityCommon,
		BaseStats: domain.Stats{Mana: 25},
	}
)

type fixedGenerator struct {
	rewards []domain.ItemArchetype
	err     error
}

func (g *fixedGenerator) GenerateRewards(_ context.Context, _ loot.RewardPolicy) ([]domain.ItemArchetype, error) {
	return g.rewards, g.err
}

type recorder struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *recorder) handle(_ context.Context, evt event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

func (r *recorder) types() []event.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]event.Type, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func (r *recorder) last() event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

type fixture struct {
	svc    *service
	repo   *memory.ProfileRepository
	gen    *fixedGenerator
	events *recorder
	clock  *time.Time
}

func newFixture(t *testing.T, slots int) *fixture {
	t.Helper()

	bus := event.NewMemoryBus()
	rec := &recorder{}
	for _, typ := range event.AllTypes {
		bus.Subscribe(typ, rec.handle)
	}

	now := testNow
	f := &fixture{
		repo:   memory.NewProfileRepository(),
		gen:    &fixedGenerator{},
		events: rec,
		clock:  &now,
	}
	finder := archetype.NewRepository([]domain.ItemArchetype{ironSword, manaPotion})
	f.svc = NewService(f.repo, finder, f.gen, economy.NewForge(economy.DefaultCostCurve()), bus, Config{
		SlotCapacity: slots,
		CacheSize:    16,
		CacheTTL:     time.Minute,
		Now:          func() time.Time { return *f.clock },
	}).(*service)
	return f
}

// create makes a profile and returns its id
func (f *fixture) create(t *testing.T, balance int) string {
	t.Helper()
	v, err := f.svc.Create(context.Background(), balance)
	require.NoError(t, err)
	return v.ID
}

// put writes a raw slot record straight into the store
func (f *fixture) put(t *testing.T, profileID string, edit func(p *domain.Profile)) {
	t.Helper()
	ctx := context.Background()
	tx, err := f.repo.BeginTx(ctx)
	require.NoError(t, err)
	p, err := tx.GetProfileForUpdate(ctx, profileID)
	require.NoError(t, err)
	edit(p)
	require.NoError(t, tx.SaveProfile(ctx, p))
	require.NoError(t, tx.Commit(ctx))
	f.svc.cache.Invalidate(profileID)
}

func (f *fixture) stored(t *testing.T, profileID string) *domain.Profile {
	t.Helper()
	p, err := f.repo.GetProfile(context.Background(), profileID)
	require.NoError(t, err)
	return p
}
