package item

// GearState is the per-player state of one weapon or armor kind. Static
// stats (damage, defense, price, factory durability) live in the catalog;
// only ownership, equip state and remaining durability are per-player.
//
// Invariant: 0 <= Durability <= the kind's factory durability.
// Invariant: Equipped implies Owned.
type GearState struct {
	Owned      bool `yaml:"owned"`
	Equipped   bool `yaml:"equipped"`
	Durability int  `yaml:"durability"`
}

// NewGearState returns the state of an unowned piece at factory durability.
func NewGearState(defaultDurability int) GearState {
	return GearState{Durability: defaultDurability}
}

// Wear subtracts amount from the piece's durability and reports whether it
// broke. A broken piece is no longer owned or equipped and its durability
// resets to the factory value; the caller must clear the matching
// equipment slot.
//
// Precondition: amount > 0; defaultDurability is the kind's factory value.
// Postcondition: if broke, g == NewGearState(defaultDurability);
// otherwise 0 < g.Durability <= defaultDurability.
func (g *GearState) Wear(amount, defaultDurability int) (broke bool) {
	if g.Durability-amount <= 0 {
		*g = NewGearState(defaultDurability)
		return true
	}
	g.Durability -= amount
	return false
}
