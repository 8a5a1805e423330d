package loot

import (
	"github.com/osse101/EmberForge_Go/internal/archetype"
	"github.com/osse101/EmberForge_Go/internal/domain"
)

// sequence returns a deterministic roll source that cycles through vals
func sequence(vals ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := vals[i%len(vals)]
		i++
		return v
	}
}

func testRepository() *archetype.Repository {
	return archetype.NewRepository([]domain.ItemArchetype{
		{Name: "dagger_rusty", Rarity: domain.RarityCommon},
		{Name: "cap_leather", Rarity: domain.RarityCommon},
		{Name: "sword_iron", Rarity: domain.RarityUncommon},
		{Name: "axe_steel", Rarity: domain.RarityRare},
		{Name: "blade_ember", Rarity: domain.RarityEpic},
		{Name: "hammer_sunforged", Rarity: domain.RarityLegendary},
	})
}

// referenceCatalog mirrors the shipped five-tier weights
func referenceCatalog() *Catalog {
	return NewCatalog([]TierDef{
		{Name: "common", Weight: 40, Items: []string{"dagger_rusty", "cap_leather"}},
		{Name: "uncommon", Weight: 30, Items: []string{"sword_iron"}},
		{Name: "rare", Weight: 20, Items: []string{"axe_steel"}},
		{Name: "epic", Weight: 8, Items: []string{"blade_ember"}},
		{Name: "legendary", Weight: 2, Items: []string{"hammer_sunforged"}},
	}, testRepository())
}

func names(rewards []domain.ItemArchetype) []string {
	out := make([]string, len(rewards))
	for i, r := range rewards {
		out[i] = r.Name
	}
	return out
}
