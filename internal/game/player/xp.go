package player

import (
	"strconv"

	"github.com/albion-rpg/albion/internal/game/dice"
	"github.com/albion-rpg/albion/internal/game/gameerr"
)

// Skill identifies one of the fixed skill domains.
type Skill string

const (
	// SkillCombat is advanced by winning battles.
	SkillCombat Skill = "combat"
	// SkillFishing is advanced by working the fishing guild.
	SkillFishing Skill = "fishing"
	// SkillCooking is advanced by working the cooking guild.
	SkillCooking Skill = "cooking"
	// SkillWoodcutting is advanced by working the woodcutting guild.
	SkillWoodcutting Skill = "woodcutting"
	// SkillMining is advanced by working the mining guild.
	SkillMining Skill = "mining"
	// SkillSmithing is advanced by working the smithing guild.
	SkillSmithing Skill = "smithing"
	// SkillThieving is advanced by working the thieving guild.
	SkillThieving Skill = "thieving"
)

// Skills lists every skill in stable display order.
var Skills = []Skill{
	SkillCombat,
	SkillFishing,
	SkillCooking,
	SkillWoodcutting,
	SkillMining,
	SkillSmithing,
	SkillThieving,
}

// skillNames maps each skill to its human-readable label.
var skillNames = map[Skill]string{
	SkillCombat:      "Combat",
	SkillFishing:     "Fishing",
	SkillCooking:     "Cooking",
	SkillWoodcutting: "Woodcutting",
	SkillMining:      "Mining",
	SkillSmithing:    "Smithing",
	SkillThieving:    "Thieving",
}

// DisplayName returns the human-readable label for the skill.
func (s Skill) DisplayName() string {
	if name, ok := skillNames[s]; ok {
		return name
	}
	return string(s)
}

// Level derives a level from an experience total.
//
// Postcondition: Level(xp) == xp/100 + 1; Level(0) == 1.
func Level(xp int) int {
	return xp/100 + 1
}

// XP maps each skill to its non-negative experience total.
//
// Invariant: every value is >= 0.
type XP map[Skill]int

// NewXP returns an XP table with every skill at zero.
func NewXP() XP {
	x := make(XP, len(Skills))
	for _, s := range Skills {
		x[s] = 0
	}
	return x
}

// Add credits amount experience to the skill.
//
// Precondition: amount >= 0; a negative amount fails with InvalidInput.
func (x XP) Add(s Skill, amount int) error {
	if amount < 0 {
		return gameerr.InvalidInput("experience amount must not be negative")
	}
	x[s] += amount
	return nil
}

// Subtract debits amount experience from the skill, failing if the result
// would be negative.
//
// Postcondition: on error, x is unchanged.
func (x XP) Subtract(s Skill, amount int) error {
	if amount < 0 {
		return gameerr.InvalidInput("experience amount must not be negative")
	}
	if x[s] < amount {
		return gameerr.InvalidInput("experience would drop below zero")
	}
	x[s] -= amount
	return nil
}

// Multiply scales the skill's experience by factor.
//
// Precondition: factor >= 0; a negative factor fails with InvalidInput.
func (x XP) Multiply(s Skill, factor int) error {
	if factor < 0 {
		return gameerr.InvalidInput("experience factor must not be negative")
	}
	x[s] *= factor
	return nil
}

// Divide divides the skill's experience by divisor.
//
// Precondition: divisor > 0; zero or negative fails with InvalidInput.
func (x XP) Divide(s Skill, divisor int) error {
	if divisor <= 0 {
		return gameerr.InvalidInput("experience divisor must be positive")
	}
	x[s] /= divisor
	return nil
}

// Increment credits a random 1-4 experience to the skill and returns the
// amount gained.
func (x XP) Increment(s Skill, src dice.Source) int {
	gained := dice.Between(src, 1, 4)
	x[s] += gained
	return gained
}

// Total returns the sum of experience across all skills.
func (x XP) Total() int {
	total := 0
	for _, v := range x {
		total += v
	}
	return total
}

// TotalLevel returns the level derived from the total experience.
func (x XP) TotalLevel() int {
	return Level(x.Total())
}

// Rows returns the tabular readout: one row per skill plus a total row.
func (x XP) Rows() [][]string {
	rows := make([][]string, 0, len(Skills)+1)
	for _, s := range Skills {
		rows = append(rows, []string{
			s.DisplayName(),
			strconv.Itoa(x[s]),
			strconv.Itoa(Level(x[s])),
		})
	}
	rows = append(rows, []string{
		"Total",
		strconv.Itoa(x.Total()),
		strconv.Itoa(x.TotalLevel()),
	})
	return rows
}
