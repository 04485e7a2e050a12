// Package item defines the closed catalogs of consumables, weapons, and
// armor, together with the per-player state tracked for each kind. Catalog
// stats and prices are rules of the economy, not content, so they live in
// code rather than data files.
package item

// ConsumableKind identifies one stackable consumable item.
type ConsumableKind string

const (
	// Bait is fishing bait.
	Bait ConsumableKind = "bait"
	// Seeds are plantable seeds.
	Seeds ConsumableKind = "seeds"
	// Furs are animal furs.
	Furs ConsumableKind = "furs"
	// Fish is raw fish, the input to cooking.
	Fish ConsumableKind = "fish"
	// Food is cooked food.
	Food ConsumableKind = "food"
	// Wood is felled lumber.
	Wood ConsumableKind = "wood"
	// Ore is mined ore, the input to smithing.
	Ore ConsumableKind = "ore"
	// Ingots are smelted metal bars.
	Ingots ConsumableKind = "ingots"
	// Potions are healing potions.
	Potions ConsumableKind = "potions"
	// Rubies are precious gems.
	Rubies ConsumableKind = "rubies"
	// MagicScrolls are enchanted scrolls.
	MagicScrolls ConsumableKind = "magic_scrolls"
	// Bones are monster bones.
	Bones ConsumableKind = "bones"
	// DragonHides are dragon hides.
	DragonHides ConsumableKind = "dragon_hides"
	// RunicTablets are runic tablets.
	RunicTablets ConsumableKind = "runic_tablets"
)

// ConsumableKinds lists every consumable in stable display order. The index
// of a kind in this slice is its selection index in menus.
var ConsumableKinds = []ConsumableKind{
	Bait,
	Seeds,
	Furs,
	Fish,
	Food,
	Wood,
	Ore,
	Ingots,
	Potions,
	Rubies,
	MagicScrolls,
	Bones,
	DragonHides,
	RunicTablets,
}

// consumableNames maps each kind to its human-readable label.
var consumableNames = map[ConsumableKind]string{
	Bait:         "Bait",
	Seeds:        "Seeds",
	Furs:         "Furs",
	Fish:         "Fish",
	Food:         "Food",
	Wood:         "Wood",
	Ore:          "Ore",
	Ingots:       "Ingots",
	Potions:      "Potions",
	Rubies:       "Rubies",
	MagicScrolls: "Magic Scrolls",
	Bones:        "Bones",
	DragonHides:  "Dragon Hides",
	RunicTablets: "Runic Tablets",
}

// consumablePrices maps each kind to its buy price in gold. The sell price
// is always half the buy price, by fiat of the economy.
var consumablePrices = map[ConsumableKind]int{
	Bait:         1,
	Seeds:        1,
	Furs:         50,
	Fish:         5,
	Food:         10,
	Wood:         10,
	Ore:          15,
	Ingots:       30,
	Potions:      20,
	Rubies:       100,
	MagicScrolls: 200,
	Bones:        10,
	DragonHides:  50,
	RunicTablets: 300,
}

// DisplayName returns the human-readable label for the kind.
//
// Postcondition: returns the catalog label, or the raw kind string for an
// unknown kind.
func (k ConsumableKind) DisplayName() string {
	if name, ok := consumableNames[k]; ok {
		return name
	}
	return string(k)
}

// BuyPrice returns the shop buy price in gold.
//
// Precondition: k is a catalog kind.
func (k ConsumableKind) BuyPrice() int {
	return consumablePrices[k]
}

// SellPrice returns the shop sell price: half the buy price, truncated.
//
// Postcondition: SellPrice() == BuyPrice() / 2.
func (k ConsumableKind) SellPrice() int {
	return consumablePrices[k] / 2
}

// Valid reports whether k is a catalog consumable kind.
func (k ConsumableKind) Valid() bool {
	_, ok := consumableNames[k]
	return ok
}

// ConsumableAt returns the consumable at the given selection index.
//
// Postcondition: ok is true iff 0 <= index < len(ConsumableKinds).
func ConsumableAt(index int) (ConsumableKind, bool) {
	if index < 0 || index >= len(ConsumableKinds) {
		return "", false
	}
	return ConsumableKinds[index], true
}
