package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/albion-rpg/albion/internal/game/dice"
	"github.com/albion-rpg/albion/internal/game/player"
)

func TestBestiary_TwentyOneKinds(t *testing.T) {
	require.Len(t, EnemyKinds, 21)
	for _, k := range EnemyKinds {
		assert.NotEmpty(t, k.DisplayName())
	}
}

func TestGenerateEnemy_Scripted(t *testing.T) {
	p := player.New("alice", "hash")
	p.Health.HP = 50

	// kind Intn(21)=0 → Goblin; delta Intn(21)=2 → 12; flip Intn(2)=0 →
	// plus; damage Intn(10)=4 → 50/10+5 = 10; then reward draws.
	src := dice.NewScriptedSource(0, 2, 0, 4, 0, 0, 0, 0)
	enemy := GenerateEnemy(p, src)

	assert.Equal(t, Goblin, enemy.Kind)
	assert.Equal(t, 62, enemy.HP)
	assert.Equal(t, 10, enemy.Damage)
	assert.NotEmpty(t, enemy.Rewards)
}

func TestGenerateEnemy_HPFlooredAtOne(t *testing.T) {
	p := player.New("bob", "hash")
	p.Health.HP = 5

	// delta 15 with the minus sign would give -10; clamps to 1
	src := dice.NewScriptedSource(0, 5, 1, 0, 0, 0, 0, 0)
	enemy := GenerateEnemy(p, src)

	assert.Equal(t, 1, enemy.HP)
}

func TestProperty_GenerateEnemy_Bounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hp := rapid.IntRange(1, 100).Draw(t, "hp")
		seed := rapid.Uint64().Draw(t, "seed")

		p := player.New("prop", "hash")
		p.Health.HP = hp
		enemy := GenerateEnemy(p, dice.NewSeededSource(seed))

		if enemy.HP < 1 {
			t.Fatalf("enemy hp %d < 1", enemy.HP)
		}
		if enemy.HP > hp+30 {
			t.Fatalf("enemy hp %d above ceiling %d", enemy.HP, hp+30)
		}
		if enemy.Damage < hp/10+1 || enemy.Damage > hp/10+10 {
			t.Fatalf("enemy damage %d out of range for hp %d", enemy.Damage, hp)
		}
	})
}
