// Package player defines the Player aggregate: every piece of state a
// single profile owns, the arithmetic on it, and the lifecycle operations.
// All core subsystems mutate a *Player exclusively; persistence is the
// storage layer's concern.
package player

import (
	"github.com/albion-rpg/albion/internal/game/gameerr"
	"github.com/albion-rpg/albion/internal/game/item"
)

// StartingGold is the wallet balance of a freshly created player.
const StartingGold = 10

// Settings holds the profile identity and mode flags.
//
// Invariant: Username contains no path separators; PasswordHash is opaque
// and non-empty for persisted players.
type Settings struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"`
	Developer    bool   `yaml:"developer"`
	Hardmode     bool   `yaml:"hardmode"`
}

// Equipment records which weapon and armor piece are currently worn.
// An empty kind means the slot is empty.
//
// Invariant: a referenced kind's inventory entry has Owned == true and
// Equipped == true; at most one weapon and one armor piece are equipped.
type Equipment struct {
	Weapon item.WeaponKind `yaml:"weapon,omitempty"`
	Armor  item.ArmorKind  `yaml:"armor,omitempty"`
}

// HasWeapon reports whether a weapon is equipped.
func (e Equipment) HasWeapon() bool { return e.Weapon != "" }

// HasArmor reports whether an armor piece is equipped.
func (e Equipment) HasArmor() bool { return e.Armor != "" }

// Player is the aggregate root: one per profile file. It exclusively owns
// all sub-state; no field is shared with another player.
type Player struct {
	Settings     Settings        `yaml:"settings"`
	Health       Health          `yaml:"health"`
	XP           XP              `yaml:"xp"`
	Achievements Achievements    `yaml:"achievements"`
	Bank         Bank            `yaml:"bank"`
	Guilds       Memberships     `yaml:"guilds"`
	Equipment    Equipment       `yaml:"equipment"`
	Items        ItemInventory   `yaml:"items"`
	Weapons      WeaponInventory `yaml:"weapons"`
	Armor        ArmorInventory  `yaml:"armor"`
}

// New returns a freshly seeded player for the given credentials.
//
// Postcondition: wallet == StartingGold, full health, zero experience,
// nothing owned, nothing equipped, no achievements.
func New(username, passwordHash string) *Player {
	return &Player{
		Settings: Settings{Username: username, PasswordHash: passwordHash},
		Health:   NewHealth(),
		XP:       NewXP(),
		Bank:     NewBank(),
		Guilds:   NewMemberships(),
		Items:    NewItemInventory(),
		Weapons:  NewWeaponInventory(),
		Armor:    NewArmorInventory(),
	}
}

// Reset wipes the player back to a fresh profile, preserving only the
// username and password hash.
//
// Postcondition: *p == *New(p.Settings.Username, p.Settings.PasswordHash).
func (p *Player) Reset() {
	*p = *New(p.Settings.Username, p.Settings.PasswordHash)
}

// Die applies the death penalty: the wallet, all inventories, experience,
// achievements, and health are cleared. Bank accounts, guild memberships,
// and settings survive.
//
// Postcondition: equipment slots are empty, since no gear is owned.
func (p *Player) Die() {
	p.Bank.Wallet = 0
	p.Items = NewItemInventory()
	p.Weapons = NewWeaponInventory()
	p.Armor = NewArmorInventory()
	p.Equipment = Equipment{}
	p.XP = NewXP()
	p.Achievements = Achievements{}
	p.Health.Reset()
}

// EquipWeapon equips the given weapon, unequipping any previous one.
//
// Precondition: the weapon must be owned, else ErrNotOwned.
// Postcondition: exactly one weapon has Equipped == true and it is k.
func (p *Player) EquipWeapon(k item.WeaponKind) error {
	state, ok := p.Weapons[k]
	if !ok || !state.Owned {
		return gameerr.ErrNotOwned
	}
	if p.Equipment.HasWeapon() {
		prev := p.Weapons[p.Equipment.Weapon]
		prev.Equipped = false
		p.Weapons[p.Equipment.Weapon] = prev
	}
	state.Equipped = true
	p.Weapons[k] = state
	p.Equipment.Weapon = k
	return nil
}

// UnequipWeapon clears the weapon slot if one is equipped.
func (p *Player) UnequipWeapon() {
	if !p.Equipment.HasWeapon() {
		return
	}
	state := p.Weapons[p.Equipment.Weapon]
	state.Equipped = false
	p.Weapons[p.Equipment.Weapon] = state
	p.Equipment.Weapon = ""
}

// EquipArmor equips the given armor piece, unequipping any previous one.
//
// Precondition: the piece must be owned, else ErrNotOwned.
// Postcondition: exactly one armor piece has Equipped == true and it is k.
func (p *Player) EquipArmor(k item.ArmorKind) error {
	state, ok := p.Armor[k]
	if !ok || !state.Owned {
		return gameerr.ErrNotOwned
	}
	if p.Equipment.HasArmor() {
		prev := p.Armor[p.Equipment.Armor]
		prev.Equipped = false
		p.Armor[p.Equipment.Armor] = prev
	}
	state.Equipped = true
	p.Armor[k] = state
	p.Equipment.Armor = k
	return nil
}

// UnequipArmor clears the armor slot if one is equipped.
func (p *Player) UnequipArmor() {
	if !p.Equipment.HasArmor() {
		return
	}
	state := p.Armor[p.Equipment.Armor]
	state.Equipped = false
	p.Armor[p.Equipment.Armor] = state
	p.Equipment.Armor = ""
}

// RepairEquipment clears any equipment slot that refers to an unowned
// piece. The mismatch is tolerated at rest and repaired here on battle
// entry.
func (p *Player) RepairEquipment() {
	if p.Equipment.HasWeapon() && !p.Weapons[p.Equipment.Weapon].Owned {
		p.UnequipWeapon()
	}
	if p.Equipment.HasArmor() && !p.Armor[p.Equipment.Armor].Owned {
		p.UnequipArmor()
	}
}

// WearWeapon applies wear to the equipped weapon and reports whether it
// broke. A broken weapon leaves the equipment slot empty.
//
// Precondition: a weapon is equipped.
func (p *Player) WearWeapon(amount int) (broke bool) {
	k := p.Equipment.Weapon
	state := p.Weapons[k]
	broke = state.Wear(amount, k.Spec().Durability)
	p.Weapons[k] = state
	if broke {
		p.Equipment.Weapon = ""
	}
	return broke
}

// WearArmor applies wear to the equipped armor and reports whether it
// broke. A broken piece leaves the equipment slot empty.
//
// Precondition: an armor piece is equipped.
func (p *Player) WearArmor(amount int) (broke bool) {
	k := p.Equipment.Armor
	state := p.Armor[k]
	broke = state.Wear(amount, k.Spec().Durability)
	p.Armor[k] = state
	if broke {
		p.Equipment.Armor = ""
	}
	return broke
}

// EvaluateAchievements latches the derived achievements from the current
// state.
func (p *Player) EvaluateAchievements() {
	p.Achievements.Evaluate(p.Bank.NetWorth(), p.XP.TotalLevel(), p.Settings.Developer)
}
