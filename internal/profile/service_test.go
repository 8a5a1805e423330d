package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/EmberForge_Go/internal/domain"
	"github.com/osse101/EmberForge_Go/internal/energy"
	"github.com/osse101/EmberForge_Go/internal/event"
)

func TestService_Create(t *testing.T) {
	f := newFixture(t, 4)
	ctx := context.Background()

	v, err := f.svc.Create(ctx, 150)
	require.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.Equal(t, 150, v.Balance)
	assert.Equal(t, domain.MaxEnergy, v.Energy.Current)
	assert.Equal(t, energy.ModeAwake, v.Energy.Mode)
	assert.Len(t, v.Slots, 4)
	assert.Equal(t, 4, v.FreeSlots)

	stored := f.stored(t, v.ID)
	assert.Equal(t, testNow, stored.CreatedAt)
}

func TestService_CreateRejectsNegativeBalance(t *testing.T) {
	f := newFixture(t, 4)
	_, err := f.svc.Create(context.Background(), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestService_GetMissing(t *testing.T) {
	f := newFixture(t, 4)
	_, err := f.svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestService_GetShowsInvalidSlots(t *testing.T) {
	f := newFixture(t, 3)
	id := f.create(t, 0)
	f.put(t, id, func(p *domain.Profile) {
		p.Slots[0] = domain.SlotRecord{InstanceID: "i-1", Encoding: "sword_iron|4"}
		p.Slots[1] = domain.SlotRecord{InstanceID: "i-2", Encoding: "unknown_thing|2"}
	})

	v, err := f.svc.Get(context.Background(), id)
	require.NoError(t, err)

	require.NotNil(t, v.Slots[0].Item)
	assert.Equal(t, "i-1", v.Slots[0].Item.InstanceID)
	assert.Equal(t, 4, v.Slots[0].Item.Level)
	assert.Equal(t, 13, v.Slots[0].Item.Stats.Attack)

	assert.True(t, v.Slots[1].Invalid)
	assert.False(t, v.Slots[1].Empty, "an undecodable slot is not free")
	assert.Equal(t, "unknown_thing|2", v.Slots[1].Encoding)

	assert.True(t, v.Slots[2].Empty)
	assert.Equal(t, 1, v.FreeSlots)
}

func TestService_GetHealsCorruptEnergyInView(t *testing.T) {
	f := newFixture(t, 1)
	id := f.create(t, 0)
	f.put(t, id, func(p *domain.Profile) {
		p.Energy = domain.EnergyProfile{CurrentEnergy: 9999, IsSleeping: true}
	})

	v, err := f.svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Zero(t, v.Energy.Current)
	assert.Equal(t, energy.ModeAwake, v.Energy.Mode)
}

func TestService_MutationPersistsHealAndPublishesAnomaly(t *testing.T) {
	f := newFixture(t, 1)
	id := f.create(t, 0)
	f.put(t, id, func(p *domain.Profile) {
		p.Energy = domain.EnergyProfile{CurrentEnergy: -40}
	})

	_, err := f.svc.StartSleep(context.Background(), id)
	require.NoError(t, err)

	stored := f.stored(t, id)
	assert.Zero(t, stored.Energy.CurrentEnergy)
	assert.True(t, stored.Energy.IsSleeping)
	assert.Contains(t, f.events.types(), event.EnergyAnomaly)
}

func TestService_FailedMutationWritesNothing(t *testing.T) {
	f := newFixture(t, 1)
	id := f.create(t, 10)
	f.put(t, id, func(p *domain.Profile) {
		p.Slots[0] = domain.SlotRecord{InstanceID: "i-1", Encoding: "sword_iron|1"}
	})
	before := f.stored(t, id)

	_, err := f.svc.Improve(context.Background(), id, 0)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	after := f.stored(t, id)
	assert.Equal(t, before.Balance, after.Balance)
	assert.Equal(t, before.Slots, after.Slots)
	assert.Empty(t, f.events.types())
}
