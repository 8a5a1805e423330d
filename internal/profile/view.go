package profile

import (
	"context"
	"time"

	"github.com/osse101/EmberForge_Go/internal/archetype"
	"github.com/osse101/EmberForge_Go/internal/domain"
	"github.com/osse101/EmberForge_Go/internal/economy"
	"github.com/osse101/EmberForge_Go/internal/energy"
	"github.com/osse101/EmberForge_Go/internal/logger"
	"github.com/osse101/EmberForge_Go/internal/progression"
)

// ItemView is a decoded instance with its computed stats
type ItemView struct {
	InstanceID  string           `json:"instance_id"`
	Archetype   string           `json:"archetype"`
	DisplayText string           `json:"display_text"`
	Slot        domain.EquipSlot `json:"slot"`
	Rarity      domain.Rarity    `json:"rarity"`
	Level       int              `json:"level"`
	Stats       domain.Stats     `json:"stats"`
}

// SlotView is one inventory slot. A slot whose encoding could not be
// decoded is reported as Invalid with its raw encoding, never as empty.
type SlotView struct {
	Index    int       `json:"index"`
	Empty    bool      `json:"empty"`
	Invalid  bool      `json:"invalid,omitempty"`
	Encoding string    `json:"encoding,omitempty"`
	Item     *ItemView `json:"item,omitempty"`
}

// EnergyView is the energy state as shown to callers
type EnergyView struct {
	Current        int         `json:"current"`
	Mode           energy.Mode `json:"mode"`
	SleepStartedAt *time.Time  `json:"sleep_started_at,omitempty"`
}

// View is the read model of a profile
type View struct {
	ID        string     `json:"id"`
	Balance   int        `json:"balance"`
	Energy    EnergyView `json:"energy"`
	Slots     []SlotView `json:"slots"`
	FreeSlots int        `json:"free_slots"`
}

// ClaimResult reports a reward claim
type ClaimResult struct {
	Stored   []SlotView `json:"stored"`
	Overflow []string   `json:"overflow"`
	Balance  int        `json:"balance"`
}

// ImprovePreview is the "before you buy" quote for one slot
type ImprovePreview struct {
	Item           ItemView     `json:"item"`
	Cost           int          `json:"cost"`
	AtMaxLevel     bool         `json:"at_max_level"`
	CanAfford      bool         `json:"can_afford"`
	Balance        int          `json:"balance"`
	ProjectedStats domain.Stats `json:"projected_stats"`
}

// ImproveOutcome is a completed forge purchase
type ImproveOutcome struct {
	economy.ImproveResult
	Item ItemView `json:"item"`
}

// SaleResult is a completed sale
type SaleResult struct {
	Item       ItemView `json:"item"`
	Price      int      `json:"price"`
	NewBalance int      `json:"new_balance"`
}

// TickOutcome reports a manual energy tick
type TickOutcome struct {
	Gained  int   `json:"gained"`
	Woke    bool  `json:"woke"`
	Profile *View `json:"profile"`
}

func newItemView(inst *progression.Instance, arch domain.ItemArchetype) ItemView {
	return ItemView{
		InstanceID:  inst.ID(),
		Archetype:   inst.ArchetypeKey(),
		DisplayText: arch.DisplayText,
		Slot:        arch.Slot,
		Rarity:      arch.Rarity,
		Level:       inst.Level(),
		Stats:       inst.Stats(arch),
	}
}

func buildSlotView(ctx context.Context, index int, rec domain.SlotRecord, finder archetype.Finder) SlotView {
	view := SlotView{Index: index}
	if rec.IsEmpty() {
		view.Empty = true
		return view
	}

	inst, err := progression.DecodeSlot(rec, finder)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgSlotUndecodable, "slot", index, "encoding", rec.Encoding, "error", err)
		view.Invalid = true
		view.Encoding = rec.Encoding
		return view
	}
	arch, _ := finder.Find(inst.ArchetypeKey())
	item := newItemView(inst, arch)
	view.Item = &item
	return view
}

// buildView renders p. The energy fields come from a restored machine, so a
// corrupt stored value is shown healed even before the next write.
func buildView(ctx context.Context, p *domain.Profile, finder archetype.Finder) *View {
	m, _ := energy.Restore(ctx, p.Energy, nil)

	v := &View{
		ID:      p.ID,
		Balance: p.Balance,
		Energy: EnergyView{
			Current:        m.Energy(),
			Mode:           m.Mode(),
			SleepStartedAt: m.SleepStartedAt(),
		},
		Slots: make([]SlotView, len(p.Slots)),
	}
	for i, rec := range p.Slots {
		v.Slots[i] = buildSlotView(ctx, i, rec, finder)
		if v.Slots[i].Empty {
			v.FreeSlots++
		}
	}
	return v
}
