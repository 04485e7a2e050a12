package player

import "strconv"

// GuildKind identifies one skill guild.
type GuildKind string

const (
	// GuildFishing is the fishing guild.
	GuildFishing GuildKind = "fishing"
	// GuildCooking is the cooking guild.
	GuildCooking GuildKind = "cooking"
	// GuildWoodcutting is the woodcutting guild.
	GuildWoodcutting GuildKind = "woodcutting"
	// GuildMining is the mining guild.
	GuildMining GuildKind = "mining"
	// GuildSmithing is the smithing guild.
	GuildSmithing GuildKind = "smithing"
	// GuildThieving is the thieving guild.
	GuildThieving GuildKind = "thieving"
)

// GuildKinds lists every guild in stable display order. The index of a
// kind in this slice is its selection index in menus.
var GuildKinds = []GuildKind{
	GuildFishing,
	GuildCooking,
	GuildWoodcutting,
	GuildMining,
	GuildSmithing,
	GuildThieving,
}

// guildNames maps each guild to its human-readable label.
var guildNames = map[GuildKind]string{
	GuildFishing:     "Fishing Guild",
	GuildCooking:     "Cooking Guild",
	GuildWoodcutting: "Woodcutting Guild",
	GuildMining:      "Mining Guild",
	GuildSmithing:    "Smithing Guild",
	GuildThieving:    "Thieving Guild",
}

// guildPrices is the fixed membership price catalog, in gold.
var guildPrices = map[GuildKind]int{
	GuildFishing:     100,
	GuildCooking:     150,
	GuildWoodcutting: 300,
	GuildMining:      500,
	GuildSmithing:    1000,
	GuildThieving:    10,
}

// guildSkills maps each guild to the skill its work advances.
var guildSkills = map[GuildKind]Skill{
	GuildFishing:     SkillFishing,
	GuildCooking:     SkillCooking,
	GuildWoodcutting: SkillWoodcutting,
	GuildMining:      SkillMining,
	GuildSmithing:    SkillSmithing,
	GuildThieving:    SkillThieving,
}

// DisplayName returns the human-readable label for the guild.
func (k GuildKind) DisplayName() string {
	if name, ok := guildNames[k]; ok {
		return name
	}
	return string(k)
}

// Price returns the guild's membership price in gold.
func (k GuildKind) Price() int {
	return guildPrices[k]
}

// Skill returns the skill this guild's work advances.
func (k GuildKind) Skill() Skill {
	return guildSkills[k]
}

// Valid reports whether k is a catalog guild kind.
func (k GuildKind) Valid() bool {
	_, ok := guildNames[k]
	return ok
}

// GuildAt returns the guild at the given selection index.
//
// Postcondition: ok is true iff 0 <= index < len(GuildKinds).
func GuildAt(index int) (GuildKind, bool) {
	if index < 0 || index >= len(GuildKinds) {
		return "", false
	}
	return GuildKinds[index], true
}

// Membership is the per-player state of one guild.
//
// Invariant: working a priced guild requires Joined == true.
type Membership struct {
	Joined bool `yaml:"joined"`
	Price  int  `yaml:"price"`
}

// Memberships maps each guild to the player's membership state.
type Memberships map[GuildKind]Membership

// NewMemberships returns an unjoined membership table seeded with the
// catalog prices.
func NewMemberships() Memberships {
	m := make(Memberships, len(GuildKinds))
	for _, k := range GuildKinds {
		m[k] = Membership{Price: guildPrices[k]}
	}
	return m
}

// Joined reports whether the player has joined the guild.
func (m Memberships) Joined(k GuildKind) bool {
	return m[k].Joined
}

// Join marks the guild as joined. Payment is the caller's concern.
func (m Memberships) Join(k GuildKind) {
	ms := m[k]
	ms.Joined = true
	m[k] = ms
}

// Rows returns the tabular readout: one row per guild with price and
// membership status.
func (m Memberships) Rows() [][]string {
	rows := make([][]string, 0, len(GuildKinds))
	for _, k := range GuildKinds {
		rows = append(rows, []string{
			k.DisplayName(),
			strconv.Itoa(m[k].Price),
			yesNo(m[k].Joined),
		})
	}
	return rows
}
