package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albion-rpg/albion/internal/game/gameerr"
	"github.com/albion-rpg/albion/internal/game/item"
)

func TestNew_FreshProfile(t *testing.T) {
	p := New("alice", "hash")

	assert.Equal(t, "alice", p.Settings.Username)
	assert.Equal(t, "hash", p.Settings.PasswordHash)
	assert.False(t, p.Settings.Developer)
	assert.False(t, p.Settings.Hardmode)

	assert.Equal(t, StartingGold, p.Bank.Wallet)
	assert.Equal(t, 100, p.Health.HP)
	assert.Equal(t, 0, p.Health.Hunger)
	assert.Zero(t, p.XP.Total())
	assert.False(t, p.Equipment.HasWeapon())
	assert.False(t, p.Equipment.HasArmor())
	assert.Equal(t, Achievements{}, p.Achievements)

	for _, k := range item.ConsumableKinds {
		assert.Zero(t, p.Items[k])
	}
	for _, k := range item.WeaponKinds {
		assert.False(t, p.Weapons[k].Owned)
		assert.Equal(t, k.Spec().Durability, p.Weapons[k].Durability)
	}
	for _, k := range GuildKinds {
		assert.False(t, p.Guilds.Joined(k))
		assert.Equal(t, k.Price(), p.Guilds[k].Price)
	}
}

func TestReset_PreservesIdentityOnly(t *testing.T) {
	p := New("bob", "hash")
	p.Settings.Hardmode = true
	p.Bank.Wallet = 999
	p.Bank.Account2 = 50
	require.NoError(t, p.XP.Add(SkillCombat, 500))
	p.Guilds.Join(GuildFishing)

	p.Reset()

	assert.Equal(t, New("bob", "hash"), p)
}

func TestDie_ClearsProgressKeepsAccounts(t *testing.T) {
	p := New("carol", "hash")
	p.Bank.Wallet = 500
	p.Bank.Account1 = 300
	require.NoError(t, p.Items.Add(item.Fish, 10))
	require.NoError(t, p.XP.Add(SkillMining, 40))
	p.Achievements.MonstersKilled = 3
	p.Guilds.Join(GuildThieving)
	p.Health.HP = 1

	buyGear(t, p, item.IronSword, item.LeatherArmor)

	p.Die()

	assert.Zero(t, p.Bank.Wallet)
	assert.Equal(t, 300, p.Bank.Account1, "accounts survive death")
	assert.Zero(t, p.Items[item.Fish])
	assert.Zero(t, p.XP.Total())
	assert.Equal(t, Achievements{}, p.Achievements)
	assert.Equal(t, NewHealth(), p.Health)
	assert.False(t, p.Equipment.HasWeapon())
	assert.False(t, p.Equipment.HasArmor())
	assert.True(t, p.Guilds.Joined(GuildThieving), "memberships survive death")
}

// buyGear grants and equips a weapon and armor directly, bypassing the shop.
func buyGear(t *testing.T, p *Player, w item.WeaponKind, a item.ArmorKind) {
	t.Helper()
	ws := p.Weapons[w]
	ws.Owned = true
	p.Weapons[w] = ws
	as := p.Armor[a]
	as.Owned = true
	p.Armor[a] = as
	require.NoError(t, p.EquipWeapon(w))
	require.NoError(t, p.EquipArmor(a))
}

func TestEquipWeapon_RequiresOwnership(t *testing.T) {
	p := New("dan", "hash")
	err := p.EquipWeapon(item.WoodenSword)
	require.ErrorIs(t, err, gameerr.ErrNotOwned)
	assert.False(t, p.Equipment.HasWeapon())
}

func TestEquipWeapon_SwapsExclusively(t *testing.T) {
	p := New("erin", "hash")
	for _, k := range []item.WeaponKind{item.WoodenSword, item.SteelSword} {
		s := p.Weapons[k]
		s.Owned = true
		p.Weapons[k] = s
	}

	require.NoError(t, p.EquipWeapon(item.WoodenSword))
	require.NoError(t, p.EquipWeapon(item.SteelSword))

	assert.Equal(t, item.SteelSword, p.Equipment.Weapon)
	assert.False(t, p.Weapons[item.WoodenSword].Equipped)
	assert.True(t, p.Weapons[item.SteelSword].Equipped)

	equipped := 0
	for _, k := range item.WeaponKinds {
		if p.Weapons[k].Equipped {
			equipped++
		}
	}
	assert.Equal(t, 1, equipped, "at most one weapon equipped")
}

func TestUnequip(t *testing.T) {
	p := New("frank", "hash")
	buyGear(t, p, item.WoodenSword, item.LeatherArmor)

	p.UnequipWeapon()
	p.UnequipArmor()

	assert.False(t, p.Equipment.HasWeapon())
	assert.False(t, p.Equipment.HasArmor())
	assert.False(t, p.Weapons[item.WoodenSword].Equipped)
	assert.True(t, p.Weapons[item.WoodenSword].Owned)
}

func TestRepairEquipment_ClearsUnownedReference(t *testing.T) {
	p := New("gail", "hash")
	buyGear(t, p, item.WoodenSword, item.LeatherArmor)

	// simulate a stale slot pointing at gear lost elsewhere
	s := p.Weapons[item.WoodenSword]
	s.Owned = false
	p.Weapons[item.WoodenSword] = s

	p.RepairEquipment()

	assert.False(t, p.Equipment.HasWeapon())
	assert.Equal(t, item.LeatherArmor, p.Equipment.Armor, "owned armor untouched")
}

func TestWearArmor_BreakClearsSlot(t *testing.T) {
	p := New("hugh", "hash")
	buyGear(t, p, item.WoodenSword, item.LeatherArmor)

	// Leather has 100 durability; wear it down in steps of 4
	broke := false
	for i := 0; i < 25; i++ {
		broke = p.WearArmor(4)
	}
	require.True(t, broke)

	state := p.Armor[item.LeatherArmor]
	assert.False(t, state.Owned)
	assert.Equal(t, item.LeatherArmor.Spec().Durability, state.Durability)
	assert.False(t, p.Equipment.HasArmor())
}

func TestEvaluateAchievements_Latching(t *testing.T) {
	p := New("iris", "hash")
	p.EvaluateAchievements()
	assert.Equal(t, Achievements{}, p.Achievements)

	p.Bank.Account1 = MillionGold
	require.NoError(t, p.XP.Add(SkillCombat, 9900))
	p.Settings.Developer = true
	p.EvaluateAchievements()

	assert.True(t, p.Achievements.EarnedMillionGold)
	assert.True(t, p.Achievements.Level100Reached)
	assert.True(t, p.Achievements.HackedTheGame)

	// latched bits survive the conditions going away
	p.Bank.Account1 = 0
	p.Settings.Developer = false
	p.EvaluateAchievements()
	assert.True(t, p.Achievements.EarnedMillionGold)
	assert.True(t, p.Achievements.HackedTheGame)
}
