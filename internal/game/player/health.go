package player

import (
	"strconv"

	"github.com/albion-rpg/albion/internal/game/dice"
)

// MaxHP is the hit point and hunger ceiling.
const MaxHP = 100

// Health tracks a player's hit points and hunger.
//
// Invariant: 0 <= HP <= MaxHP; 0 <= Hunger <= MaxHP.
type Health struct {
	HP     int `yaml:"hp"`
	Hunger int `yaml:"hunger"`
}

// NewHealth returns full health: 100 hit points, no hunger.
func NewHealth() Health {
	return Health{HP: MaxHP, Hunger: 0}
}

// Reset restores the initial state.
func (h *Health) Reset() {
	*h = NewHealth()
}

// Heal applies the post-turn recovery tick: a random 1-5 hit points,
// capped at MaxHP. It is a no-op unless the player is unhurt by hunger
// (Hunger == 0) and below full hit points.
//
// Postcondition: returns the amount healed (0 when the guard fails).
func (h *Health) Heal(src dice.Source) int {
	if h.Hunger != 0 || h.HP >= MaxHP {
		return 0
	}
	gained := dice.Between(src, 1, 5)
	if h.HP+gained > MaxHP {
		gained = MaxHP - h.HP
	}
	h.HP += gained
	return gained
}

// Restore brings the player to full hit points and clears hunger. Used
// after combat victories.
//
// Postcondition: HP == MaxHP; Hunger == 0.
func (h *Health) Restore() {
	h.HP = MaxHP
	h.Hunger = 0
}

// Rows returns the tabular readout of the health state.
func (h Health) Rows() [][]string {
	return [][]string{
		{"Health", strconv.Itoa(h.HP)},
		{"Hunger", strconv.Itoa(h.Hunger)},
	}
}
