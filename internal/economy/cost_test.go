package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/EmberForge_Go/internal/domain"
)

func TestCostCurve_ReferenceValues(t *testing.T) {
	c := DefaultCostCurve()

	assert.Equal(t, 100, c.Cost(1))
	assert.Equal(t, 230, c.Cost(2))
	assert.Equal(t, 374, c.Cost(3))
}

func TestCostCurve_BelowOnePricedAsOne(t *testing.T) {
	c := DefaultCostCurve()
	assert.Equal(t, c.Cost(1), c.Cost(0))
	assert.Equal(t, c.Cost(1), c.Cost(-10))
}

func TestCostCurve_StrictlyIncreasing(t *testing.T) {
	c := DefaultCostCurve()
	prev := c.Cost(1)
	for level := 2; level < domain.MaxItemLevel; level++ {
		cur := c.Cost(level)
		if !assert.Greater(t, cur, prev, "cost(%d) <= cost(%d)", level, level-1) {
			return
		}
		prev = cur
	}
}

func TestCostCurve_MaxLevel(t *testing.T) {
	tests := []struct {
		configured, want int
	}{
		{0, domain.MaxItemLevel},
		{1, domain.MaxItemLevel},
		{2, 2},
		{50, 50},
		{999, 999},
		{5000, domain.MaxItemLevel},
	}
	for _, tt := range tests {
		c := CostCurve{BaseCost: 100, Multiplier: 1.2, MaxLevel: tt.configured}
		assert.Equal(t, tt.want, c.maxLevel(), "configured %d", tt.configured)
	}
}

func TestCostCurve_ResalePrice(t *testing.T) {
	c := DefaultCostCurve()
	sword := domain.ItemArchetype{Name: "sword_iron", Price: 80}

	assert.Equal(t, 40, c.ResalePrice(sword, 1))
	// 40 + cost(1)/4
	assert.Equal(t, 65, c.ResalePrice(sword, 2))
	// 40 + cost(2)/4 = 40 + 57
	assert.Equal(t, 97, c.ResalePrice(sword, 3))

	prev := c.ResalePrice(sword, 1)
	for level := 2; level <= 100; level++ {
		cur := c.ResalePrice(sword, level)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}
