package combat

import (
	"github.com/albion-rpg/albion/internal/game/dice"
	"github.com/albion-rpg/albion/internal/game/player"
)

// EnemyKind identifies one enemy in the closed bestiary.
type EnemyKind string

const (
	Goblin      EnemyKind = "goblin"
	Orc         EnemyKind = "orc"
	Troll       EnemyKind = "troll"
	Skeleton    EnemyKind = "skeleton"
	Zombie      EnemyKind = "zombie"
	Bandit      EnemyKind = "bandit"
	DireWolf    EnemyKind = "dire_wolf"
	CaveBear    EnemyKind = "cave_bear"
	GiantSpider EnemyKind = "giant_spider"
	DarkMage    EnemyKind = "dark_mage"
	Ogre        EnemyKind = "ogre"
	Ghoul       EnemyKind = "ghoul"
	Harpy       EnemyKind = "harpy"
	Minotaur    EnemyKind = "minotaur"
	Basilisk    EnemyKind = "basilisk"
	Wraith      EnemyKind = "wraith"
	StoneGolem  EnemyKind = "stone_golem"
	Imp         EnemyKind = "imp"
	Werewolf    EnemyKind = "werewolf"
	Vampire     EnemyKind = "vampire"
	Dragon      EnemyKind = "dragon"
)

// EnemyKinds lists the full bestiary; encounters draw uniformly from it.
var EnemyKinds = []EnemyKind{
	Goblin,
	Orc,
	Troll,
	Skeleton,
	Zombie,
	Bandit,
	DireWolf,
	CaveBear,
	GiantSpider,
	DarkMage,
	Ogre,
	Ghoul,
	Harpy,
	Minotaur,
	Basilisk,
	Wraith,
	StoneGolem,
	Imp,
	Werewolf,
	Vampire,
	Dragon,
}

// enemyNames maps each kind to its human-readable label.
var enemyNames = map[EnemyKind]string{
	Goblin:      "Goblin",
	Orc:         "Orc",
	Troll:       "Troll",
	Skeleton:    "Skeleton",
	Zombie:      "Zombie",
	Bandit:      "Bandit",
	DireWolf:    "Dire Wolf",
	CaveBear:    "Cave Bear",
	GiantSpider: "Giant Spider",
	DarkMage:    "Dark Mage",
	Ogre:        "Ogre",
	Ghoul:       "Ghoul",
	Harpy:       "Harpy",
	Minotaur:    "Minotaur",
	Basilisk:    "Basilisk",
	Wraith:      "Wraith",
	StoneGolem:  "Stone Golem",
	Imp:         "Imp",
	Werewolf:    "Werewolf",
	Vampire:     "Vampire",
	Dragon:      "Dragon",
}

// DisplayName returns the human-readable label for the kind.
func (k EnemyKind) DisplayName() string {
	if name, ok := enemyNames[k]; ok {
		return name
	}
	return string(k)
}

// Enemy is one generated opponent: its combat stats and the rewards it
// pays out on defeat.
type Enemy struct {
	Kind    EnemyKind
	HP      int
	Damage  int
	Rewards []Reward
}

// GenerateEnemy rolls a fresh enemy scaled to the player's current state:
// a uniform kind, hit points at the player's HP plus or minus 10-30
// (floored at 1), damage at a tenth of the player's HP plus 1-10, and a
// reward bundle gated by the player's total level.
//
// Precondition: p and src must be non-nil.
// Postcondition: HP >= 1; Damage >= 1; Rewards is non-empty.
func GenerateEnemy(p *player.Player, src dice.Source) Enemy {
	kind := EnemyKinds[src.Intn(len(EnemyKinds))]

	hp := p.Health.HP
	delta := dice.Between(src, 10, 30)
	if dice.CoinFlip(src) {
		hp += delta
	} else {
		hp -= delta
	}
	if hp < 1 {
		hp = 1
	}

	damage := p.Health.HP/10 + dice.Between(src, 1, 10)

	return Enemy{
		Kind:    kind,
		HP:      hp,
		Damage:  damage,
		Rewards: GenerateRewards(p.XP.TotalLevel(), src),
	}
}
