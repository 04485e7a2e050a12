package combat

import (
	"github.com/albion-rpg/albion/internal/game/dice"
	"github.com/albion-rpg/albion/internal/game/item"
	"github.com/albion-rpg/albion/internal/game/player"
)

// RewardType tags one victory reward entry.
type RewardType string

const (
	// RewardItem credits a consumable quantity.
	RewardItem RewardType = "item"
	// RewardGold credits the wallet.
	RewardGold RewardType = "gold"
	// RewardXP credits combat experience.
	RewardXP RewardType = "xp"
)

// Reward is one entry of a victory payout.
type Reward struct {
	Type   RewardType
	Item   item.ConsumableKind // set when Type == RewardItem
	Amount int
}

// rewardTier is one level gate of the payout table: above Level, the tier
// contributes its Item plus a gold and an experience roll in [Lo, Hi].
type rewardTier struct {
	Level int
	Item  item.ConsumableKind
	Lo    int
	Hi    int
}

// rewardTiers is the fixed level-gated payout table.
var rewardTiers = []rewardTier{
	{Level: 10, Item: item.MagicScrolls, Lo: 10, Hi: 20},
	{Level: 25, Item: item.DragonHides, Lo: 20, Hi: 50},
	{Level: 50, Item: item.Rubies, Lo: 50, Hi: 75},
	{Level: 100, Item: item.RunicTablets, Lo: 75, Hi: 100},
}

// GenerateRewards composes a victory payout for the given total level:
// always 1-3 potions and 1-3 bones, plus one tier item (1-3 of it) per
// cleared level gate, then a combat experience entry and a gold entry
// that both start at 0-10 and accumulate a [Lo, Hi] roll per cleared gate.
//
// Precondition: src must be non-nil.
// Postcondition: the last two entries are the RewardXP and RewardGold
// totals, in that order.
func GenerateRewards(level int, src dice.Source) []Reward {
	rewards := []Reward{
		{Type: RewardItem, Item: item.Potions, Amount: dice.Between(src, 1, 3)},
		{Type: RewardItem, Item: item.Bones, Amount: dice.Between(src, 1, 3)},
	}

	xpReward := dice.Between(src, 0, 10)
	goldReward := dice.Between(src, 0, 10)

	for _, tier := range rewardTiers {
		if level <= tier.Level {
			break
		}
		rewards = append(rewards, Reward{
			Type:   RewardItem,
			Item:   tier.Item,
			Amount: dice.Between(src, 1, 3),
		})
		goldReward += dice.Between(src, tier.Lo, tier.Hi)
		xpReward += dice.Between(src, tier.Lo, tier.Hi)
	}

	rewards = append(rewards,
		Reward{Type: RewardXP, Amount: xpReward},
		Reward{Type: RewardGold, Amount: goldReward},
	)
	return rewards
}

// ApplyRewards credits every reward entry to the player: items to the
// inventory, gold to the wallet, experience to the combat skill.
//
// Precondition: every Amount is >= 0, as produced by GenerateRewards.
func ApplyRewards(p *player.Player, rewards []Reward) {
	for _, r := range rewards {
		switch r.Type {
		case RewardItem:
			_ = p.Items.Add(r.Item, r.Amount)
		case RewardGold:
			_ = p.Bank.Earn(r.Amount)
		case RewardXP:
			_ = p.XP.Add(player.SkillCombat, r.Amount)
		}
	}
}
