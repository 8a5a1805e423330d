package profile

import (
	"context"
	"errors"

	"github.com/osse101/EmberForge_Go/internal/domain"
	"github.com/osse101/EmberForge_Go/internal/event"
	"github.com/osse101/EmberForge_Go/internal/logger"
	"github.com/osse101/EmberForge_Go/internal/progression"
)

// PreviewImprove quotes the next level of the instance in slot without
// changing anything
func (s *service) PreviewImprove(ctx context.Context, profileID string, slot int) (*ImprovePreview, error) {
	p, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}
	inst, arch, err := decodeSlot(p, slot, s.finder)
	if err != nil {
		return nil, err
	}

	preview := &ImprovePreview{
		Item:           newItemView(inst, arch),
		Balance:        p.Balance,
		ProjectedStats: s.forge.ProjectedStats(inst, arch),
	}
	cost, err := s.forge.Quote(inst)
	switch {
	case errors.Is(err, domain.ErrAlreadyMaxLevel):
		preview.AtMaxLevel = true
	case err != nil:
		return nil, err
	default:
		preview.Cost = cost
		preview.CanAfford = p.Balance >= cost
	}
	return preview, nil
}

// Improve buys one level for the instance in slot
func (s *service) Improve(ctx context.Context, profileID string, slot int) (*ImproveOutcome, error) {
	var outcome *ImproveOutcome
	_, err := s.mutate(ctx, profileID, func(st *state) error {
		inst, arch, err := st.instance(slot, s.finder)
		if err != nil {
			return err
		}

		result, err := s.forge.ImproveWithLedger(ctx, inst, st.ledger)
		if err != nil {
			return err
		}
		st.profile.Slots[slot] = progression.EncodeSlot(inst)

		outcome = &ImproveOutcome{ImproveResult: result, Item: newItemView(inst, arch)}
		st.emit(event.NewItemImprovedEvent(profileID, inst.ID(), inst.ArchetypeKey(), result.OldLevel, result.NewLevel, result.Cost))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// Sell removes the instance in slot and credits its resale price
func (s *service) Sell(ctx context.Context, profileID string, slot int) (*SaleResult, error) {
	var sale *SaleResult
	_, err := s.mutate(ctx, profileID, func(st *state) error {
		inst, arch, err := st.instance(slot, s.finder)
		if err != nil {
			return err
		}

		price := s.forge.Curve().ResalePrice(arch, inst.Level())
		if err := st.ledger.Add(price); err != nil {
			return err
		}
		st.profile.Slots[slot] = progression.EncodeSlot(nil)

		sale = &SaleResult{Item: newItemView(inst, arch), Price: price, NewBalance: st.ledger.Balance()}
		st.emit(event.NewItemSoldEvent(profileID, inst.ID(), inst.ArchetypeKey(), inst.Level(), price))
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgItemSold,
		"profile_id", profileID,
		"archetype", sale.Item.Archetype,
		"level", sale.Item.Level,
		"price", sale.Price)
	return sale, nil
}
