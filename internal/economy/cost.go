package economy

import (
	"math"

	"github.com/osse101/EmberForge_Go/internal/domain"
)

// CostCurve prices one level-up as round(BaseCost * level^Multiplier)
type CostCurve struct {
	BaseCost   int
	Multiplier float64
	MaxLevel   int
}

// DefaultCostCurve is the reference curve: cost(1)=100, cost(2)=230
func DefaultCostCurve() CostCurve {
	return CostCurve{
		BaseCost:   DefaultBaseCost,
		Multiplier: DefaultCostMultiplier,
		MaxLevel:   domain.MaxItemLevel,
	}
}

// Cost returns the price of raising an instance from level to level+1.
// Levels below 1 are priced as level 1.
func (c CostCurve) Cost(level int) int {
	if level < domain.MinItemLevel {
		level = domain.MinItemLevel
	}
	return int(math.Round(float64(c.BaseCost) * math.Pow(float64(level), c.Multiplier)))
}

// maxLevel is the forge cap, never above the instance cap
func (c CostCurve) maxLevel() int {
	if c.MaxLevel <= domain.MinItemLevel || c.MaxLevel > domain.MaxItemLevel {
		return domain.MaxItemLevel
	}
	return c.MaxLevel
}

// ResalePrice is what a shop pays back for an instance at level
func (c CostCurve) ResalePrice(archetype domain.ItemArchetype, level int) int {
	price := archetype.Price / ResalePriceDivisor
	if level > domain.MinItemLevel {
		price += c.Cost(level-1) / ResaleForgeDivisor
	}
	return price
}
