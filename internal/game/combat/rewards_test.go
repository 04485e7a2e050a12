package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/albion-rpg/albion/internal/game/dice"
	"github.com/albion-rpg/albion/internal/game/item"
	"github.com/albion-rpg/albion/internal/game/player"
)

// rewardItems collects the item kinds present in a payout.
func rewardItems(rewards []Reward) []item.ConsumableKind {
	var kinds []item.ConsumableKind
	for _, r := range rewards {
		if r.Type == RewardItem {
			kinds = append(kinds, r.Item)
		}
	}
	return kinds
}

func TestGenerateRewards_LevelOne(t *testing.T) {
	rewards := GenerateRewards(1, dice.NewSeededSource(1))

	assert.Equal(t, []item.ConsumableKind{item.Potions, item.Bones}, rewardItems(rewards))

	// xp and gold entries close the payout, in that order
	require.GreaterOrEqual(t, len(rewards), 4)
	assert.Equal(t, RewardXP, rewards[len(rewards)-2].Type)
	assert.Equal(t, RewardGold, rewards[len(rewards)-1].Type)
}

func TestGenerateRewards_GateBoundaries(t *testing.T) {
	src := dice.NewSeededSource(2)

	// level 10 is not above the first gate
	assert.Len(t, rewardItems(GenerateRewards(10, src)), 2)
	// level 11 clears it
	assert.Equal(t,
		[]item.ConsumableKind{item.Potions, item.Bones, item.MagicScrolls},
		rewardItems(GenerateRewards(11, src)))
	// level 101 clears all four gates
	assert.Equal(t,
		[]item.ConsumableKind{
			item.Potions, item.Bones,
			item.MagicScrolls, item.DragonHides, item.Rubies, item.RunicTablets,
		},
		rewardItems(GenerateRewards(101, src)))
}

func TestGenerateRewards_ScriptedAmounts(t *testing.T) {
	// potions Intn(3)=2 → 3; bones Intn(3)=0 → 1; xp Intn(11)=5 → 5;
	// gold Intn(11)=7 → 7; level 1 clears no gates.
	src := dice.NewScriptedSource(2, 0, 5, 7)
	rewards := GenerateRewards(1, src)

	require.Len(t, rewards, 4)
	assert.Equal(t, Reward{Type: RewardItem, Item: item.Potions, Amount: 3}, rewards[0])
	assert.Equal(t, Reward{Type: RewardItem, Item: item.Bones, Amount: 1}, rewards[1])
	assert.Equal(t, Reward{Type: RewardXP, Amount: 5}, rewards[2])
	assert.Equal(t, Reward{Type: RewardGold, Amount: 7}, rewards[3])
}

func TestApplyRewards_CreditsEverything(t *testing.T) {
	p := player.New("alice", "hash")
	p.Bank.Wallet = 0

	ApplyRewards(p, []Reward{
		{Type: RewardItem, Item: item.Potions, Amount: 2},
		{Type: RewardItem, Item: item.Bones, Amount: 3},
		{Type: RewardXP, Amount: 15},
		{Type: RewardGold, Amount: 25},
	})

	assert.Equal(t, 2, p.Items[item.Potions])
	assert.Equal(t, 3, p.Items[item.Bones])
	assert.Equal(t, 15, p.XP[player.SkillCombat])
	assert.Equal(t, 25, p.Bank.Wallet)
}

func TestProperty_GenerateRewards_AmountsInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		level := rapid.IntRange(1, 200).Draw(t, "level")
		seed := rapid.Uint64().Draw(t, "seed")

		rewards := GenerateRewards(level, dice.NewSeededSource(seed))
		for _, r := range rewards {
			if r.Amount < 0 {
				t.Fatalf("negative reward amount: %+v", r)
			}
			if r.Type == RewardItem && (r.Amount < 1 || r.Amount > 3) {
				t.Fatalf("item amount out of [1,3]: %+v", r)
			}
		}
		if rewards[len(rewards)-2].Type != RewardXP || rewards[len(rewards)-1].Type != RewardGold {
			t.Fatalf("payout must end with xp then gold: %+v", rewards)
		}
	})
}
