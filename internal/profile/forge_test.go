package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/EmberForge_Go/internal/domain"
	"github.com/osse101/EmberForge_Go/internal/event"
)

func withSword(level string) func(p *domain.Profile) {
	return func(p *domain.Profile) {
		p.Slots[0] = domain.SlotRecord{InstanceID: "inst-1", Encoding: "sword_iron|" + level}
	}
}

func TestPreviewImprove(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	id := f.create(t, 150)
	f.put(t, id, withSword("1"))

	preview, err := f.svc.PreviewImprove(ctx, id, 0)
	require.NoError(t, err)
	assert.Equal(t, 100, preview.Cost)
	assert.True(t, preview.CanAfford)
	assert.False(t, preview.AtMaxLevel)
	assert.Equal(t, 10, preview.Item.Stats.Attack)
	assert.Equal(t, 11, preview.ProjectedStats.Attack)

	assert.Equal(t, "sword_iron|1", f.stored(t, id).Slots[0].Encoding, "preview never mutates")
}

func TestPreviewImprove_AtMax(t *testing.T) {
	f := newFixture(t, 1)
	id := f.create(t, 0)
	f.put(t, id, withSword("999"))

	preview, err := f.svc.PreviewImprove(context.Background(), id, 0)
	require.NoError(t, err)
	assert.True(t, preview.AtMaxLevel)
	assert.Zero(t, preview.Cost)
	assert.False(t, preview.CanAfford)
	assert.Equal(t, preview.Item.Stats, preview.ProjectedStats)
}

func TestImprove_Success(t *testing.T) {
	f := newFixture(t, 1)
	id := f.create(t, 400)
	f.put(t, id, withSword("1"))

	out, err := f.svc.Improve(context.Background(), id, 0)
	require.NoError(t, err)
	assert.Equal(t, 100, out.Cost)
	assert.Equal(t, 1, out.OldLevel)
	assert.Equal(t, 2, out.NewLevel)
	assert.Equal(t, 300, out.NewBalance)
	assert.Equal(t, "inst-1", out.Item.InstanceID)
	assert.Equal(t, 11, out.Item.Stats.Attack)

	stored := f.stored(t, id)
	assert.Equal(t, "sword_iron|2", stored.Slots[0].Encoding)
	assert.Equal(t, "inst-1", stored.Slots[0].InstanceID, "identity survives the level-up")
	assert.Equal(t, 300, stored.Balance)

	evt := f.events.last()
	require.Equal(t, event.ItemImproved, evt.Type)
	payload := evt.Payload.(domain.ItemImprovedPayload)
	assert.Equal(t, 2, payload.NewLevel)
	assert.Equal(t, 100, payload.Cost)
}

func TestImprove_Failures(t *testing.T) {
	tests := []struct {
		name    string
		balance int
		slots   func(p *domain.Profile)
		slot    int
		want    error
	}{
		{name: "insufficient funds", balance: 50, slots: withSword("1"), want: domain.ErrInsufficientFunds},
		{name: "already max", balance: 1_000_000, slots: withSword("999"), want: domain.ErrAlreadyMaxLevel},
		{name: "empty slot", balance: 500, slots: func(*domain.Profile) {}, want: domain.ErrSlotEmpty},
		{name: "slot out of range", balance: 500, slots: withSword("1"), slot: 7, want: domain.ErrSlotOutOfRange},
		{name: "negative slot", balance: 500, slots: withSword("1"), slot: -1, want: domain.ErrSlotOutOfRange},
		{
			name:    "undecodable slot",
			balance: 500,
			slots: func(p *domain.Profile) {
				p.Slots[0] = domain.SlotRecord{Encoding: "sword_iron|abc"}
			},
			want: domain.ErrInvalidEncoding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 2)
			id := f.create(t, tt.balance)
			f.put(t, id, tt.slots)
			before := f.stored(t, id)

			_, err := f.svc.Improve(context.Background(), id, tt.slot)
			require.ErrorIs(t, err, tt.want)

			after := f.stored(t, id)
			assert.Equal(t, before.Balance, after.Balance)
			assert.Equal(t, before.Slots, after.Slots)
		})
	}
}

func TestSell(t *testing.T) {
	f := newFixture(t, 2)
	id := f.create(t, 5)
	f.put(t, id, withSword("2"))

	sale, err := f.svc.Sell(context.Background(), id, 0)
	require.NoError(t, err)
	// 80/2 + cost(1)/4
	assert.Equal(t, 65, sale.Price)
	assert.Equal(t, 70, sale.NewBalance)
	assert.Equal(t, "inst-1", sale.Item.InstanceID)

	stored := f.stored(t, id)
	assert.True(t, stored.Slots[0].IsEmpty())
	assert.Empty(t, stored.Slots[0].InstanceID)
	assert.Equal(t, 70, stored.Balance)
	assert.Equal(t, event.ItemSold, f.events.last().Type)

	_, err = f.svc.Sell(context.Background(), id, 0)
	assert.ErrorIs(t, err, domain.ErrSlotEmpty)
}
