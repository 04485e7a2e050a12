package player

import (
	"strconv"

	"github.com/albion-rpg/albion/internal/game/gameerr"
	"github.com/albion-rpg/albion/internal/game/item"
)

// ItemInventory maps each consumable kind to its held quantity.
//
// Invariant: every quantity is >= 0.
type ItemInventory map[item.ConsumableKind]int

// NewItemInventory returns an inventory with every consumable at zero.
func NewItemInventory() ItemInventory {
	inv := make(ItemInventory, len(item.ConsumableKinds))
	for _, k := range item.ConsumableKinds {
		inv[k] = 0
	}
	return inv
}

// Add credits qty of the kind.
//
// Precondition: qty >= 0; a negative quantity fails with InvalidInput.
func (inv ItemInventory) Add(k item.ConsumableKind, qty int) error {
	if qty < 0 {
		return gameerr.InvalidInput("quantity must not be negative")
	}
	inv[k] += qty
	return nil
}

// Remove debits qty of the kind, failing if the holding cannot cover it.
//
// Postcondition: on error, inv is unchanged.
func (inv ItemInventory) Remove(k item.ConsumableKind, qty int) error {
	if qty < 0 {
		return gameerr.InvalidInput("quantity must not be negative")
	}
	if inv[k] < qty {
		return gameerr.NotEnoughItem(k.DisplayName())
	}
	inv[k] -= qty
	return nil
}

// Rows returns the tabular readout: one row per consumable kind.
func (inv ItemInventory) Rows() [][]string {
	rows := make([][]string, 0, len(item.ConsumableKinds))
	for _, k := range item.ConsumableKinds {
		rows = append(rows, []string{k.DisplayName(), strconv.Itoa(inv[k])})
	}
	return rows
}

// WeaponInventory maps each weapon kind to its per-player state.
type WeaponInventory map[item.WeaponKind]item.GearState

// NewWeaponInventory returns an inventory with every weapon unowned and at
// factory durability.
func NewWeaponInventory() WeaponInventory {
	inv := make(WeaponInventory, len(item.WeaponKinds))
	for _, k := range item.WeaponKinds {
		inv[k] = item.NewGearState(k.Spec().Durability)
	}
	return inv
}

// Rows returns the tabular readout: one row per weapon kind.
func (inv WeaponInventory) Rows() [][]string {
	rows := make([][]string, 0, len(item.WeaponKinds))
	for _, k := range item.WeaponKinds {
		spec := k.Spec()
		state := inv[k]
		rows = append(rows, []string{
			spec.Name,
			strconv.Itoa(spec.Damage),
			strconv.Itoa(state.Durability) + "/" + strconv.Itoa(spec.Durability),
			yesNo(state.Owned),
			yesNo(state.Equipped),
		})
	}
	return rows
}

// ArmorInventory maps each armor kind to its per-player state.
type ArmorInventory map[item.ArmorKind]item.GearState

// NewArmorInventory returns an inventory with every armor piece unowned
// and at factory durability.
func NewArmorInventory() ArmorInventory {
	inv := make(ArmorInventory, len(item.ArmorKinds))
	for _, k := range item.ArmorKinds {
		inv[k] = item.NewGearState(k.Spec().Durability)
	}
	return inv
}

// Rows returns the tabular readout: one row per armor kind.
func (inv ArmorInventory) Rows() [][]string {
	rows := make([][]string, 0, len(item.ArmorKinds))
	for _, k := range item.ArmorKinds {
		spec := k.Spec()
		state := inv[k]
		rows = append(rows, []string{
			spec.Name,
			strconv.Itoa(spec.Defense),
			strconv.Itoa(state.Durability) + "/" + strconv.Itoa(spec.Durability),
			yesNo(state.Owned),
			yesNo(state.Equipped),
		})
	}
	return rows
}
