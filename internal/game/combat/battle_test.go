package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/albion-rpg/albion/internal/game/dice"
	"github.com/albion-rpg/albion/internal/game/item"
	"github.com/albion-rpg/albion/internal/game/player"
)

// scriptUI is a UI double that replays canned answers.
type scriptUI struct {
	actions   []Action
	actionIdx int
	confirm   bool
	lines     []string
}

func (u *scriptUI) Sayf(format string, args ...any) {
	u.lines = append(u.lines, format)
}

func (u *scriptUI) Confirm(string) (bool, error) {
	return u.confirm, nil
}

func (u *scriptUI) ChooseAction(*Enemy, *player.Player) (Action, error) {
	if u.actionIdx >= len(u.actions) {
		return ActionAttack, nil
	}
	a := u.actions[u.actionIdx]
	u.actionIdx++
	return a, nil
}

func (u *scriptUI) ManageInventory(*player.Player) error { return nil }

// countingSaver records save calls.
type countingSaver struct {
	saves int
	last  player.Player
}

func (s *countingSaver) Save(p *player.Player) error {
	s.saves++
	s.last = *p
	return nil
}

// equippedPlayer returns a player wearing the given gear.
func equippedPlayer(t *testing.T, w item.WeaponKind, a item.ArmorKind) *player.Player {
	t.Helper()
	p := player.New("fighter", "hash")
	ws := p.Weapons[w]
	ws.Owned = true
	p.Weapons[w] = ws
	as := p.Armor[a]
	as.Owned = true
	p.Armor[a] = as
	require.NoError(t, p.EquipWeapon(w))
	require.NoError(t, p.EquipArmor(a))
	return p
}

func TestWander_OneHitVictory(t *testing.T) {
	p := equippedPlayer(t, item.WoodenSword, item.LeatherArmor)
	p.Health.HP = 20

	// enemy: kind 0, delta 12 minus → hp 8, damage 20/10+1=3,
	// rewards potions 1 / bones 1 / xp 0 / gold 0;
	// player turn: flip 0 = hit, wear 1 → enemy hp 8 < damage 10 → victory.
	src := dice.NewScriptedSource(0, 2, 1, 0, 0, 0, 0, 0, 0, 0)
	ui := &scriptUI{actions: []Action{ActionAttack}}
	saver := &countingSaver{}
	engine := NewEngine(src, ui, saver, zap.NewNop())

	outcome, err := engine.Wander(p)
	require.NoError(t, err)

	assert.Equal(t, OutcomeVictory, outcome)
	assert.Equal(t, 1, p.Achievements.MonstersKilled)
	assert.Equal(t, 100, p.Health.HP, "victory restores health")
	assert.Equal(t, 0, p.Health.Hunger)
	assert.Equal(t, 1, p.Items[item.Potions])
	assert.Equal(t, 1, p.Items[item.Bones])
	assert.Equal(t, 1, saver.saves, "victory saves")
	assert.Equal(t, 1, saver.last.Achievements.MonstersKilled)
}

func TestWander_RetreatExitsCleanly(t *testing.T) {
	p := equippedPlayer(t, item.WoodenSword, item.LeatherArmor)
	ui := &scriptUI{actions: []Action{ActionRetreat}}
	saver := &countingSaver{}
	engine := NewEngine(dice.NewSeededSource(5), ui, saver, zap.NewNop())

	outcome, err := engine.Wander(p)
	require.NoError(t, err)

	assert.Equal(t, OutcomeRetreat, outcome)
	assert.Zero(t, saver.saves, "retreat does not save")
	assert.Zero(t, p.Achievements.MonstersKilled)
}

func TestWander_UnderEquippedDecline(t *testing.T) {
	p := player.New("bare", "hash")
	ui := &scriptUI{confirm: false}
	engine := NewEngine(dice.NewSeededSource(1), ui, &countingSaver{}, zap.NewNop())

	outcome, err := engine.Wander(p)
	require.NoError(t, err)
	assert.Equal(t, OutcomeDeclined, outcome)
}

func TestWander_PreludeRepairsStaleEquipment(t *testing.T) {
	p := equippedPlayer(t, item.WoodenSword, item.LeatherArmor)
	ws := p.Weapons[item.WoodenSword]
	ws.Owned = false
	p.Weapons[item.WoodenSword] = ws

	ui := &scriptUI{confirm: false}
	engine := NewEngine(dice.NewSeededSource(1), ui, &countingSaver{}, zap.NewNop())

	outcome, err := engine.Wander(p)
	require.NoError(t, err)

	// the stale weapon slot was cleared, leaving the player under-equipped
	assert.Equal(t, OutcomeDeclined, outcome)
	assert.False(t, p.Equipment.HasWeapon())
}

func TestPlayerTurn_MissWithoutWeapon(t *testing.T) {
	p := player.New("bare", "hash")
	enemy := Enemy{Kind: Goblin, HP: 50, Damage: 5}
	engine := NewEngine(dice.NewScriptedSource(0), &scriptUI{}, &countingSaver{}, zap.NewNop())

	next := engine.playerTurn(p, &enemy)

	assert.Equal(t, stateEnemyTurn, next)
	assert.Equal(t, 50, enemy.HP, "no weapon means no damage even on a hit flip")
}

func TestPlayerTurn_WeaponBreakUnequips(t *testing.T) {
	p := equippedPlayer(t, item.WoodenSword, item.LeatherArmor)
	ws := p.Weapons[item.WoodenSword]
	ws.Durability = 2
	p.Weapons[item.WoodenSword] = ws

	enemy := Enemy{Kind: Orc, HP: 500, Damage: 5}
	// flip 0 = hit; wear Intn(4)=3 → 4 ≥ 2 → break
	engine := NewEngine(dice.NewScriptedSource(0, 3), &scriptUI{}, &countingSaver{}, zap.NewNop())

	next := engine.playerTurn(p, &enemy)

	assert.Equal(t, stateEnemyTurn, next)
	assert.Equal(t, 490, enemy.HP, "the breaking swing still lands")
	assert.False(t, p.Equipment.HasWeapon())
	state := p.Weapons[item.WoodenSword]
	assert.False(t, state.Owned)
	assert.Equal(t, 100, state.Durability)
}

func TestEnemyTurn_ArmorNegatesAndWears(t *testing.T) {
	p := equippedPlayer(t, item.WoodenSword, item.SteelArmor)
	before := p.Armor[item.SteelArmor].Durability

	enemy := Enemy{Kind: Troll, HP: 50, Damage: 40}
	// wear Intn(4)=1 → 2; flip 0 = hit; damage 40-100 floored to 0 → negated
	engine := NewEngine(dice.NewScriptedSource(1, 0), &scriptUI{}, &countingSaver{}, zap.NewNop())

	next := engine.enemyTurn(p, &enemy)

	assert.Equal(t, statePostTurnHeal, next)
	assert.Equal(t, 100, p.Health.HP)
	assert.Equal(t, before-2, p.Armor[item.SteelArmor].Durability)
}

func TestEnemyTurn_HitReducesHP(t *testing.T) {
	p := player.New("bare", "hash")
	p.Health.HP = 50

	enemy := Enemy{Kind: Bandit, HP: 50, Damage: 12}
	// no armor → no wear draw; flip 0 = hit
	engine := NewEngine(dice.NewScriptedSource(0), &scriptUI{}, &countingSaver{}, zap.NewNop())

	next := engine.enemyTurn(p, &enemy)

	assert.Equal(t, statePostTurnHeal, next)
	assert.Equal(t, 38, p.Health.HP)
}

func TestEnemyTurn_LethalHitDefeats(t *testing.T) {
	p := player.New("bare", "hash")
	p.Health.HP = 5

	enemy := Enemy{Kind: Dragon, HP: 50, Damage: 60}
	engine := NewEngine(dice.NewScriptedSource(0), &scriptUI{}, &countingSaver{}, zap.NewNop())

	next := engine.enemyTurn(p, &enemy)
	assert.Equal(t, stateDefeat, next)
}

func TestDefeat_NormalModeRevives(t *testing.T) {
	p := player.New("soft", "hash")
	p.Health.HP = 3
	p.Bank.Wallet = 55
	saver := &countingSaver{}
	engine := NewEngine(dice.NewSeededSource(1), &scriptUI{}, saver, zap.NewNop())

	enemy := Enemy{Kind: Ogre}
	require.NoError(t, engine.defeat(p, &enemy))

	assert.Equal(t, 100, p.Health.HP)
	assert.Equal(t, 55, p.Bank.Wallet, "normal defeat keeps possessions")
	assert.Equal(t, 1, saver.saves)
}

func TestDefeat_HardmodeDieBranch(t *testing.T) {
	p := player.New("hard", "hash")
	p.Settings.Hardmode = true
	p.Bank.Wallet = 500
	p.Bank.Account1 = 77
	require.NoError(t, p.XP.Add(player.SkillCombat, 40))
	saver := &countingSaver{}

	// flip 0 → die branch
	engine := NewEngine(dice.NewScriptedSource(0), &scriptUI{}, saver, zap.NewNop())
	require.NoError(t, engine.defeat(p, &Enemy{Kind: Wraith}))

	assert.Zero(t, p.Bank.Wallet)
	assert.Equal(t, 77, p.Bank.Account1, "death keeps bank accounts")
	assert.Zero(t, p.XP.Total())
	assert.Equal(t, 100, p.Health.HP)
	assert.True(t, p.Settings.Hardmode, "death keeps settings")
	assert.Equal(t, 1, saver.saves)
}

func TestDefeat_HardmodeResetBranch(t *testing.T) {
	p := player.New("hard", "hash")
	p.Settings.Hardmode = true
	p.Bank.Wallet = 500
	p.Bank.Account1 = 77
	saver := &countingSaver{}

	// flip 1 → reset branch
	engine := NewEngine(dice.NewScriptedSource(1), &scriptUI{}, saver, zap.NewNop())
	require.NoError(t, engine.defeat(p, &Enemy{Kind: Wraith}))

	assert.Equal(t, player.New("hard", "hash"), p, "reset wipes to a fresh profile")
	assert.Equal(t, 1, saver.saves)
	assert.Equal(t, *player.New("hard", "hash"), saver.last, "the wiped profile is what was saved")
}

func TestStronghold_CompletesAndLatches(t *testing.T) {
	p := equippedPlayer(t, item.WizardStaff, item.MysticArmor)
	ui := &scriptUI{confirm: true}
	saver := &countingSaver{}
	engine := NewEngine(dice.NewSeededSource(99), ui, saver, zap.NewNop())

	outcome, err := engine.Stronghold(p, 3)
	require.NoError(t, err)

	assert.Equal(t, OutcomeVictory, outcome)
	assert.True(t, p.Achievements.StrongholdDefeated)
	assert.Equal(t, 3, p.Achievements.MonstersKilled)
	assert.Equal(t, 4, saver.saves, "one save per victory plus the completion save")
}
