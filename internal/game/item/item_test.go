package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestConsumableCatalog_Complete(t *testing.T) {
	require.Len(t, ConsumableKinds, 14)
	for _, k := range ConsumableKinds {
		assert.True(t, k.Valid())
		assert.NotEmpty(t, k.DisplayName())
		assert.Positive(t, k.BuyPrice(), "price missing for %s", k)
	}
}

func TestConsumable_SellPriceIsHalfBuyPrice(t *testing.T) {
	for _, k := range ConsumableKinds {
		assert.Equal(t, k.BuyPrice()/2, k.SellPrice())
	}
	// odd prices truncate
	assert.Equal(t, 0, Bait.SellPrice())
	assert.Equal(t, 2, Fish.SellPrice())
}

func TestConsumableAt_SelectionIndex(t *testing.T) {
	k, ok := ConsumableAt(0)
	require.True(t, ok)
	assert.Equal(t, Bait, k)

	k, ok = ConsumableAt(len(ConsumableKinds) - 1)
	require.True(t, ok)
	assert.Equal(t, RunicTablets, k)

	_, ok = ConsumableAt(len(ConsumableKinds))
	assert.False(t, ok)
	_, ok = ConsumableAt(-1)
	assert.False(t, ok)
}

func TestWeaponCatalog_Stats(t *testing.T) {
	require.Len(t, WeaponKinds, 6)

	spec := WoodenSword.Spec()
	assert.Equal(t, 10, spec.Damage)
	assert.Equal(t, 100, spec.Durability)
	assert.Equal(t, 10, spec.Price)

	spec = WizardStaff.Spec()
	assert.Equal(t, 1000, spec.Damage)
	assert.Equal(t, 2000, spec.Durability)
	assert.Equal(t, 10000, spec.Price)
}

func TestArmorCatalog_Stats(t *testing.T) {
	require.Len(t, ArmorKinds, 6)

	spec := LeatherArmor.Spec()
	assert.Equal(t, 10, spec.Defense)
	assert.Equal(t, 100, spec.Durability)
	assert.Equal(t, 50, spec.Price)

	spec = MysticArmor.Spec()
	assert.Equal(t, 1000, spec.Defense)
	assert.Equal(t, 10000, spec.Durability)
	assert.Equal(t, 10000, spec.Price)
}

func TestWeaponAt_SelectionIndex(t *testing.T) {
	k, ok := WeaponAt(3)
	require.True(t, ok)
	assert.Equal(t, SteelSword, k)

	_, ok = WeaponAt(6)
	assert.False(t, ok)
}

func TestGearState_WearWithoutBreak(t *testing.T) {
	g := GearState{Owned: true, Equipped: true, Durability: 100}
	broke := g.Wear(4, 100)
	assert.False(t, broke)
	assert.Equal(t, 96, g.Durability)
	assert.True(t, g.Owned)
	assert.True(t, g.Equipped)
}

func TestGearState_BreaksAtZero(t *testing.T) {
	g := GearState{Owned: true, Equipped: true, Durability: 3}
	broke := g.Wear(3, 100)
	assert.True(t, broke)
	assert.Equal(t, GearState{Durability: 100}, g)
}

func TestGearState_BreaksBelowZero(t *testing.T) {
	g := GearState{Owned: true, Durability: 2}
	broke := g.Wear(4, 150)
	assert.True(t, broke)
	assert.Equal(t, GearState{Durability: 150}, g)
}

func TestProperty_GearState_DurabilityBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		def := rapid.IntRange(1, 10000).Draw(t, "default")
		g := GearState{Owned: true, Durability: def}
		wears := rapid.SliceOfN(rapid.IntRange(1, 4), 1, 200).Draw(t, "wears")

		for _, w := range wears {
			broke := g.Wear(w, def)
			if g.Durability < 0 || g.Durability > def {
				t.Fatalf("durability %d out of [0, %d]", g.Durability, def)
			}
			if broke {
				if g.Owned || g.Equipped || g.Durability != def {
					t.Fatalf("broken piece not reset: %+v", g)
				}
				return
			}
			if g.Durability == 0 {
				t.Fatalf("unbroken piece at zero durability")
			}
		}
	})
}
