package economy

import (
	"context"
	"fmt"

	"github.com/osse101/EmberForge_Go/internal/domain"
	"github.com/osse101/EmberForge_Go/internal/logger"
	"github.com/osse101/EmberForge_Go/internal/progression"
)

// ImproveResult describes a successful level-up purchase
type ImproveResult struct {
	Cost       int `json:"cost"`
	OldLevel   int `json:"old_level"`
	NewLevel   int `json:"new_level"`
	NewBalance int `json:"new_balance"`
}

// Forge is the Improvement Economy
type Forge struct {
	curve CostCurve
}

// NewForge creates a Forge priced by curve
func NewForge(curve CostCurve) *Forge {
	return &Forge{curve: curve}
}

// Curve returns the forge's cost curve
func (f *Forge) Curve() CostCurve {
	return f.curve
}

// MaxLevel is the highest level the forge will raise an instance to
func (f *Forge) MaxLevel() int {
	return f.curve.maxLevel()
}

// Quote returns the price of the next level. It fails with
// domain.ErrAlreadyMaxLevel when there is no next level.
func (f *Forge) Quote(inst *progression.Instance) (int, error) {
	if inst.Level() >= f.MaxLevel() {
		return 0, domain.ErrAlreadyMaxLevel
	}
	return f.curve.Cost(inst.Level()), nil
}

// Improve spends from balance to raise inst by one level. Either the level
// and the returned balance both change, or the call fails and inst is left
// untouched. The max-level check runs before the funds check.
func (f *Forge) Improve(inst *progression.Instance, balance int) (ImproveResult, error) {
	cost, err := f.Quote(inst)
	if err != nil {
		return ImproveResult{}, fmt.Errorf(ErrMsgImproveFmt, inst.ArchetypeKey(), inst.Level(), err)
	}
	if balance < cost {
		return ImproveResult{}, fmt.Errorf(ErrMsgImproveFmt, inst.ArchetypeKey(), inst.Level(),
			fmt.Errorf(ErrMsgInsufficientFmt, domain.ErrInsufficientFunds, cost, balance))
	}

	old := inst.Level()
	if !inst.LevelUp() {
		return ImproveResult{}, fmt.Errorf(ErrMsgImproveFmt, inst.ArchetypeKey(), old, domain.ErrAlreadyMaxLevel)
	}
	return ImproveResult{
		Cost:       cost,
		OldLevel:   old,
		NewLevel:   inst.Level(),
		NewBalance: balance - cost,
	}, nil
}

// ImproveWithLedger runs Improve against a ledger's balance and debits the
// cost only after the level-up succeeded. The caller must hold the owning
// profile's lock so the ledger cannot move between the read and the debit.
func (f *Forge) ImproveWithLedger(ctx context.Context, inst *progression.Instance, ledger Ledger) (ImproveResult, error) {
	log := logger.FromContext(ctx)

	working := inst.Clone()
	result, err := f.Improve(working, ledger.Balance())
	if err != nil {
		log.Debug(LogMsgImproveBlocked, "archetype", inst.ArchetypeKey(), "level", inst.Level(), "error", err)
		return ImproveResult{}, err
	}

	if err := ledger.Subtract(result.Cost); err != nil {
		return ImproveResult{}, fmt.Errorf(ErrMsgLedgerDebitFmt, result.Cost, err)
	}
	inst.SetLevel(working.Level())
	result.NewBalance = ledger.Balance()

	log.Info(LogMsgItemImproved,
		"instance_id", inst.ID(),
		"archetype", inst.ArchetypeKey(),
		"new_level", result.NewLevel,
		"cost", result.Cost)
	return result, nil
}

// ProjectedStats previews the stats at min(level+1, max level) without
// touching inst
func (f *Forge) ProjectedStats(inst *progression.Instance, archetype domain.ItemArchetype) domain.Stats {
	next := min(inst.Level()+1, f.MaxLevel())
	if next < inst.Level() {
		next = inst.Level()
	}
	return progression.StatsAtLevel(archetype, next)
}
