package loot

import (
	"fmt"

	"github.com/osse101/EmberForge_Go/internal/archetype"
	"github.com/osse101/EmberForge_Go/internal/domain"
)

// TierDef is one tier as written in the catalog file
type TierDef struct {
	Name   string   `yaml:"name" json:"name,omitempty"`
	Weight int      `yaml:"weight" json:"weight"`
	Items  []string `yaml:"items" json:"items"`
}

// Tier is a resolved rarity bucket. A nil candidate is an entry whose
// archetype key did not resolve; sampling skips it.
type Tier struct {
	Name       string
	Weight     int
	Candidates []*domain.ItemArchetype
}

// Catalog is the immutable RewardTierCatalog. Tier indices exposed to
// callers are 1-based.
type Catalog struct {
	tiers      []Tier
	unresolved []string
}

// NewCatalog resolves every tier entry through finder once, up front
func NewCatalog(defs []TierDef, finder archetype.Finder) *Catalog {
	c := &Catalog{tiers: make([]Tier, len(defs))}
	for i, def := range defs {
		tier := Tier{
			Name:       def.Name,
			Weight:     def.Weight,
			Candidates: make([]*domain.ItemArchetype, 0, len(def.Items)),
		}
		for _, key := range def.Items {
			a, ok := finder.Find(key)
			if !ok {
				tier.Candidates = append(tier.Candidates, nil)
				c.unresolved = append(c.unresolved, fmt.Sprintf(IssueFmtUnresolvedEntry, i+1, key))
				continue
			}
			tier.Candidates = append(tier.Candidates, &a)
		}
		c.tiers[i] = tier
	}
	return c
}

// TierCount returns the number of tiers
func (c *Catalog) TierCount() int {
	return len(c.tiers)
}

// Tier returns a copy of the 1-based tier
func (c *Catalog) Tier(index int) (Tier, bool) {
	if index < 1 || index > len(c.tiers) {
		return Tier{}, false
	}
	return c.tiers[index-1], true
}

// Validate reports advisory problems. Generation tolerates all of them.
// expectedTiers <= 0 skips the tier count check.
func (c *Catalog) Validate(expectedTiers int) []string {
	var issues []string
	if len(c.tiers) == 0 {
		return []string{IssueMsgNoTiers}
	}
	if expectedTiers > 0 && len(c.tiers) != expectedTiers {
		issues = append(issues, fmt.Sprintf(IssueFmtTierCount, len(c.tiers), expectedTiers))
	}

	total := 0
	for i, tier := range c.tiers {
		if tier.Weight < 0 {
			issues = append(issues, fmt.Sprintf(IssueFmtNegativeWeight, i+1, tier.Weight))
		}
		total += tier.Weight
		if len(validCandidates(tier)) == 0 {
			issues = append(issues, fmt.Sprintf(IssueFmtNoCandidates, i+1))
		}
	}
	if total != ExpectedWeightTotal {
		issues = append(issues, fmt.Sprintf(IssueFmtWeightTotal, total, ExpectedWeightTotal))
	}
	return append(issues, c.unresolved...)
}

// SampleTier draws a 1-based tier index by weight. Boundaries are half-open,
// so the first tier whose cumulative weight exceeds the draw wins. Negative
// weights count as zero; a zero total falls back to a uniform pick.
func (c *Catalog) SampleTier(rnd func() float64) int {
	if len(c.tiers) == 0 {
		return 0
	}

	total := 0
	for _, tier := range c.tiers {
		total += effectiveWeight(tier)
	}
	if total == 0 {
		return intn(rnd, len(c.tiers)) + 1
	}

	roll := intn(rnd, total)
	cumul := 0
	for i, tier := range c.tiers {
		cumul += effectiveWeight(tier)
		if cumul > roll {
			return i + 1
		}
	}
	return len(c.tiers)
}

// SampleItem draws uniformly among the tier's resolved candidates. It
// returns false when the tier is unknown or has nothing to offer.
func (c *Catalog) SampleItem(tierIndex int, rnd func() float64) (domain.ItemArchetype, bool) {
	tier, ok := c.Tier(tierIndex)
	if !ok {
		return domain.ItemArchetype{}, false
	}
	survivors := validCandidates(tier)
	if len(survivors) == 0 {
		return domain.ItemArchetype{}, false
	}
	return *survivors[intn(rnd, len(survivors))], true
}

func validCandidates(tier Tier) []*domain.ItemArchetype {
	out := make([]*domain.ItemArchetype, 0, len(tier.Candidates))
	for _, a := range tier.Candidates {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}

func effectiveWeight(tier Tier) int {
	if tier.Weight < 0 {
		return 0
	}
	return tier.Weight
}

// intn maps a [0,1) roll onto [0,n)
func intn(rnd func() float64, n int) int {
	i := int(rnd() * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
